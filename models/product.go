package models

type Product struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Price    int    `json:"price"`
	Category string `json:"category"`
	ImageRef string `json:"image_ref"`
}

// CatalogSnapshot pairs the product and category collections. After any
// catalog mutation every product category is a member of Categories, with
// Categories[0] acting as the non-deletable fallback.
type CatalogSnapshot struct {
	Products   []Product `json:"products"`
	Categories []string  `json:"categories"`
}

// SeedProduct is a page-supplied initial menu entry, adopted only when no
// persisted catalog exists.
type SeedProduct struct {
	Name     string `json:"name"`
	Price    int    `json:"price"`
	ImageRef string `json:"image_ref"`
}
