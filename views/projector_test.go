package views_test

import (
	"strings"
	"testing"

	"cafeteria-yv/config"
	"cafeteria-yv/libs"
	"cafeteria-yv/models"
	"cafeteria-yv/views"
)

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		name  string
		input int
		want  string
	}{
		{name: "zero", input: 0, want: "0"},
		{name: "hundreds", input: 999, want: "999"},
		{name: "ten_thousand", input: 10000, want: "10.000"},
		{name: "millions", input: 1234567, want: "1.234.567"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := views.FormatAmount(tt.input); got != tt.want {
				t.Errorf("FormatAmount(%d) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestEscapeText(t *testing.T) {
	got := views.EscapeText(`<script>alert("x")</script>`)
	if strings.Contains(got, "<script>") {
		t.Errorf("markup not escaped: %q", got)
	}
}

func TestProjectCart(t *testing.T) {
	snap := models.CartSnapshot{
		Items: []models.CartLine{
			{Name: "Latte", Price: 3500, Quantity: 2, Subtotal: 7000},
			{Name: "<b>Hack</b>", Price: 10000, Quantity: 1, Subtotal: 10000},
		},
		Total: 17000,
		Count: 3,
	}

	view := views.ProjectCart(snap)

	if view.Empty {
		t.Error("cart should not be empty")
	}
	if view.Count != 3 {
		t.Errorf("count = %d, want 3", view.Count)
	}
	if view.TotalDisplay != "$17.000" {
		t.Errorf("total display = %q, want $17.000", view.TotalDisplay)
	}
	if len(view.Rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(view.Rows))
	}
	if view.Rows[0].QuantityDisplay != "x2" {
		t.Errorf("quantity display = %q, want x2", view.Rows[0].QuantityDisplay)
	}
	if view.Rows[1].SubtotalDisplay != "$10.000" {
		t.Errorf("subtotal display = %q, want $10.000", view.Rows[1].SubtotalDisplay)
	}
	if strings.Contains(view.Rows[1].Name, "<b>") {
		t.Errorf("row name not escaped: %q", view.Rows[1].Name)
	}
}

func TestProjectCart_Empty(t *testing.T) {
	view := views.ProjectCart(models.CartSnapshot{})

	if !view.Empty {
		t.Error("expected empty view")
	}
	if view.TotalDisplay != "$0" {
		t.Errorf("total display = %q, want $0", view.TotalDisplay)
	}
}

func TestProjectMenu(t *testing.T) {
	snap := models.CatalogSnapshot{
		Products: []models.Product{
			{ID: 1, Name: "Latte", Price: 10000, Category: "General"},
			{ID: 2, Name: "Croissant", Price: 2500, Category: "General"},
		},
		Categories: []string{"General"},
	}

	cards := views.ProjectMenu(snap)

	if len(cards) != 2 {
		t.Fatalf("cards = %d, want 2", len(cards))
	}
	for i, card := range cards {
		if card.Index != i {
			t.Errorf("card %d has index %d", i, card.Index)
		}
		if !card.HasAddButton {
			t.Errorf("card %d should have an add button", i)
		}
	}
	if cards[0].PriceDisplay != "$10.000" {
		t.Errorf("price display = %q, want $10.000", cards[0].PriceDisplay)
	}
}

func TestProjectMenu_ResolvesImages(t *testing.T) {
	old := config.AppConfig
	config.AppConfig = &config.Config{CloudinaryCloudName: "mi-cafeteria"}
	t.Cleanup(func() { config.AppConfig = old })

	snap := models.CatalogSnapshot{
		Products: []models.Product{
			{ID: 1, Name: "Latte", Price: 3500, Category: "General"},
			{ID: 2, Name: "Croissant", Price: 2500, Category: "General", ImageRef: "https://example.com/c.png"},
			{ID: 3, Name: "Muffin", Price: 2000, Category: "General", ImageRef: "cafeteria/muffin"},
		},
		Categories: []string{"General"},
	}

	cards := views.ProjectMenu(snap)

	if cards[0].ImageURL != libs.PlaceholderImage {
		t.Errorf("blank image ref projected as %q, want the placeholder", cards[0].ImageURL)
	}
	if cards[1].ImageURL != "https://example.com/c.png" {
		t.Errorf("absolute image ref rewritten to %q", cards[1].ImageURL)
	}
	if !strings.Contains(cards[2].ImageURL, "res.cloudinary.com/mi-cafeteria") {
		t.Errorf("public id not resolved to a delivery URL: %q", cards[2].ImageURL)
	}
}

func TestProjectAdmin_ResolvesThumbnailKeepsRawRef(t *testing.T) {
	snap := models.CatalogSnapshot{
		Products:   []models.Product{{ID: 1, Name: "Latte", Price: 3500, Category: "General"}},
		Categories: []string{"General"},
	}

	view := views.ProjectAdmin(snap)

	if view.Products[0].ImageURL != libs.PlaceholderImage {
		t.Errorf("blank image ref projected as %q, want the placeholder", view.Products[0].ImageURL)
	}
	if view.Products[0].ImageRef != "" {
		t.Errorf("raw image ref changed: %q", view.Products[0].ImageRef)
	}
}

func TestProjectAdmin_MarksDefaultCategoryNonDeletable(t *testing.T) {
	snap := models.CatalogSnapshot{
		Categories: []string{"General", "Bakery"},
	}

	view := views.ProjectAdmin(snap)

	if len(view.Categories) != 2 {
		t.Fatalf("categories = %d, want 2", len(view.Categories))
	}
	if view.Categories[0].Deletable {
		t.Error("index 0 must be non-deletable")
	}
	if !view.Categories[1].Deletable {
		t.Error("index 1 must be deletable")
	}
}

func TestProjectReport(t *testing.T) {
	cartSnap := models.CartSnapshot{
		Items: []models.CartLine{{Name: "Latte", Price: 10000, Quantity: 1, Subtotal: 10000}},
		Total: 10000,
		Count: 1,
	}
	menuSnap := models.CatalogSnapshot{
		Products:   []models.Product{{ID: 1, Name: "Latte", Price: 10000, Category: "General"}},
		Categories: []string{"General"},
	}

	report := views.ProjectReport(cartSnap, menuSnap)

	if report.CartCount != 1 {
		t.Errorf("cart count = %d, want 1", report.CartCount)
	}
	if report.TotalDisplay != "$10.000" {
		t.Errorf("total display = %q", report.TotalDisplay)
	}
	if report.MenuCount != 1 {
		t.Errorf("menu count = %d, want 1", report.MenuCount)
	}
	if len(report.CartRows) != 1 || len(report.Menu) != 1 {
		t.Errorf("report tables: %d cart rows, %d menu rows", len(report.CartRows), len(report.Menu))
	}
}
