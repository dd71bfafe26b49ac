package models

// CartLine is one aggregated cart entry for a uniquely named item.
// Subtotal is always recomputed as Price*Quantity, never set independently.
type CartLine struct {
	Name     string `json:"name"`
	Price    int    `json:"price"`
	Quantity int    `json:"quantity"`
	Subtotal int    `json:"subtotal"`
}

type CartSnapshot struct {
	Items []CartLine `json:"items"`
	Total int        `json:"total"`
	Count int        `json:"count"`
}
