package export_test

import (
	"encoding/json"
	"testing"

	"cafeteria-yv/export"
	"cafeteria-yv/models"
	"cafeteria-yv/views"
)

func TestCartJSON(t *testing.T) {
	snap := models.CartSnapshot{
		Items: []models.CartLine{
			{Name: "Latte", Price: 5000, Quantity: 2, Subtotal: 10000},
		},
		Total: 10000,
		Count: 2,
	}

	raw := export.CartJSON(snap)

	var decoded struct {
		Items []struct {
			Name     string `json:"name"`
			Price    int    `json:"price"`
			Quantity int    `json:"quantity"`
			Subtotal int    `json:"subtotal"`
		} `json:"items"`
		Total int `json:"total"`
		Count int `json:"count"`
	}
	if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
		t.Fatalf("export is not valid JSON: %v", err)
	}

	if len(decoded.Items) != 1 {
		t.Fatalf("items = %d, want 1", len(decoded.Items))
	}
	item := decoded.Items[0]
	if item.Name != "Latte" || item.Price != 5000 || item.Quantity != 2 || item.Subtotal != 10000 {
		t.Errorf("unexpected item: %+v", item)
	}
	if decoded.Total != 10000 || decoded.Count != 2 {
		t.Errorf("total/count = %d/%d, want 10000/2", decoded.Total, decoded.Count)
	}
}

func TestCartJSON_EmptyCartHasItemsArray(t *testing.T) {
	raw := export.CartJSON(models.CartSnapshot{})

	var decoded map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
		t.Fatalf("export is not valid JSON: %v", err)
	}
	if string(decoded["items"]) != "[]" {
		t.Errorf("items = %s, want []", decoded["items"])
	}
}

func TestMenuJSON(t *testing.T) {
	cards := views.ProjectMenu(models.CatalogSnapshot{
		Products: []models.Product{
			{ID: 1, Name: "Latte", Price: 10000, Category: "General"},
		},
		Categories: []string{"General"},
	})

	raw := export.MenuJSON(cards)

	var decoded []struct {
		Index        int    `json:"index"`
		Name         string `json:"name"`
		Price        string `json:"price"`
		HasAddButton bool   `json:"hasAddButton"`
	}
	if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
		t.Fatalf("export is not valid JSON: %v", err)
	}

	if len(decoded) != 1 {
		t.Fatalf("entries = %d, want 1", len(decoded))
	}
	entry := decoded[0]
	if entry.Index != 0 || entry.Name != "Latte" || entry.Price != "$10.000" || !entry.HasAddButton {
		t.Errorf("unexpected entry: %+v", entry)
	}
}

func TestMenuJSON_Empty(t *testing.T) {
	if got := export.MenuJSON(nil); got != "[]" {
		t.Errorf("empty menu export = %q, want []", got)
	}
}
