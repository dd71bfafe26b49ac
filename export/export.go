// Package export serializes model snapshots into the stable JSON shapes the
// external test-automation harness polls. Projections only, no side effects.
package export

import (
	"encoding/json"

	"cafeteria-yv/models"
	"cafeteria-yv/views"
)

// CartJSON renders the cart snapshot as {items, total, count}. Item fields are
// name, price, quantity, subtotal, in insertion order.
func CartJSON(snap models.CartSnapshot) string {
	if snap.Items == nil {
		snap.Items = []models.CartLine{}
	}
	data, err := json.Marshal(snap)
	if err != nil {
		return `{"items":[],"total":0,"count":0}`
	}
	return string(data)
}

type menuEntry struct {
	Index        int    `json:"index"`
	Name         string `json:"name"`
	Price        string `json:"price"`
	HasAddButton bool   `json:"hasAddButton"`
}

// MenuJSON renders the currently projected product listing as an ordered array
// of {index, name, price, hasAddButton}, with price as its display string.
func MenuJSON(cards []views.MenuCard) string {
	entries := make([]menuEntry, 0, len(cards))
	for _, card := range cards {
		entries = append(entries, menuEntry{
			Index:        card.Index,
			Name:         card.Name,
			Price:        card.PriceDisplay,
			HasAddButton: card.HasAddButton,
		})
	}
	data, err := json.Marshal(entries)
	if err != nil {
		return "[]"
	}
	return string(data)
}
