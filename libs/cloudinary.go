package libs

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"

	"cafeteria-yv/config"
)

// PlaceholderImage is served for products with a blank image reference.
const PlaceholderImage = "/static/placeholder.png"

type ImageOptions struct {
	Width   int
	Height  int
	Crop    string
	Format  string
	Quality string
}

// BuildImageURL builds a Cloudinary delivery URL from a public id. It only
// formats the URL, no upload happens here. A blank public id yields the
// placeholder; an already absolute reference passes through untouched.
func BuildImageURL(publicID string, opts ImageOptions) string {
	if publicID == "" {
		return PlaceholderImage
	}
	if strings.HasPrefix(publicID, "http://") || strings.HasPrefix(publicID, "https://") {
		return publicID
	}

	cloudName := ""
	if config.AppConfig != nil {
		cloudName = config.AppConfig.CloudinaryCloudName
	}
	if cloudName == "" {
		return PlaceholderImage
	}

	if opts.Crop == "" {
		opts.Crop = "fill"
	}
	if opts.Format == "" {
		opts.Format = "jpg"
	}
	if opts.Quality == "" {
		opts.Quality = "auto"
	}

	transformations := []string{}
	if opts.Width > 0 {
		transformations = append(transformations, fmt.Sprintf("w_%d", opts.Width))
	}
	if opts.Height > 0 {
		transformations = append(transformations, fmt.Sprintf("h_%d", opts.Height))
	}
	transformations = append(transformations, "c_"+opts.Crop, "q_"+opts.Quality)

	t := strings.Join(transformations, ",") + "/"
	return fmt.Sprintf("https://res.cloudinary.com/%s/image/upload/%s%s.%s",
		cloudName, t, publicID, opts.Format)
}

// UploadProductImage pushes a local file to Cloudinary and returns its secure
// URL. The local file is removed after the attempt.
func UploadProductImage(localPath string) (string, error) {
	if _, err := os.Stat(localPath); os.IsNotExist(err) {
		return "", fmt.Errorf("file not found: %s", localPath)
	}

	cld, err := newClient()
	if err != nil {
		return "", err
	}

	resp, err := cld.Upload.Upload(context.Background(), localPath, uploader.UploadParams{
		PublicID: fmt.Sprintf("product_%d", time.Now().UnixNano()),
		Folder:   config.AppConfig.CloudinaryFolder,
	})

	os.Remove(localPath)

	if err != nil {
		return "", err
	}
	if resp == nil || (resp.SecureURL == "" && resp.URL == "") {
		return "", fmt.Errorf("cloudinary returned no URL")
	}
	if resp.SecureURL != "" {
		return resp.SecureURL, nil
	}
	return resp.URL, nil
}

func newClient() (*cloudinary.Cloudinary, error) {
	if cldURL := os.Getenv("CLOUDINARY_URL"); cldURL != "" {
		cld, err := cloudinary.NewFromURL(cldURL)
		if err != nil {
			return nil, fmt.Errorf("cloudinary init from URL fail: %v", err)
		}
		return cld, nil
	}

	cloudName := os.Getenv("CLOUDINARY_CLOUD_NAME")
	apiKey := os.Getenv("CLOUDINARY_API_KEY")
	apiSecret := os.Getenv("CLOUDINARY_API_SECRET")
	if cloudName == "" || apiKey == "" || apiSecret == "" {
		return nil, fmt.Errorf("cloudinary environment variables not set")
	}

	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("cloudinary init from params fail: %v", err)
	}
	return cld, nil
}
