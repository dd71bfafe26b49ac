package libs_test

import (
	"strings"
	"testing"

	"cafeteria-yv/config"
	"cafeteria-yv/libs"
)

func setCloudName(t *testing.T, name string) {
	t.Helper()
	old := config.AppConfig
	config.AppConfig = &config.Config{CloudinaryCloudName: name, CloudinaryFolder: "cafeteria"}
	t.Cleanup(func() { config.AppConfig = old })
}

func TestBuildImageURL(t *testing.T) {
	setCloudName(t, "mi-cafeteria")

	tests := []struct {
		name     string
		publicID string
		opts     libs.ImageOptions
		want     string
	}{
		{
			name:     "defaults",
			publicID: "cafeteria/latte",
			want:     "https://res.cloudinary.com/mi-cafeteria/image/upload/c_fill,q_auto/cafeteria/latte.jpg",
		},
		{
			name:     "with_dimensions",
			publicID: "cafeteria/latte",
			opts:     libs.ImageOptions{Width: 300, Height: 200},
			want:     "https://res.cloudinary.com/mi-cafeteria/image/upload/w_300,h_200,c_fill,q_auto/cafeteria/latte.jpg",
		},
		{
			name:     "custom_format",
			publicID: "cafeteria/latte",
			opts:     libs.ImageOptions{Crop: "fit", Format: "webp", Quality: "80"},
			want:     "https://res.cloudinary.com/mi-cafeteria/image/upload/c_fit,q_80/cafeteria/latte.webp",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := libs.BuildImageURL(tt.publicID, tt.opts); got != tt.want {
				t.Errorf("BuildImageURL() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBuildImageURL_BlankRefIsPlaceholder(t *testing.T) {
	setCloudName(t, "mi-cafeteria")

	if got := libs.BuildImageURL("", libs.ImageOptions{}); got != libs.PlaceholderImage {
		t.Errorf("blank ref = %q, want placeholder", got)
	}
}

func TestBuildImageURL_AbsoluteURLPassesThrough(t *testing.T) {
	setCloudName(t, "mi-cafeteria")

	url := "https://example.com/img.png"
	if got := libs.BuildImageURL(url, libs.ImageOptions{}); got != url {
		t.Errorf("absolute ref = %q, want pass-through", got)
	}
}

func TestBuildImageURL_NoCloudName(t *testing.T) {
	setCloudName(t, "")

	got := libs.BuildImageURL("cafeteria/latte", libs.ImageOptions{})
	if !strings.HasPrefix(got, "/static/") {
		t.Errorf("without cloud name = %q, want placeholder", got)
	}
}
