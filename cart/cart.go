package cart

import (
	"strconv"
	"strings"
	"sync"

	"cafeteria-yv/models"
	"cafeteria-yv/store"
)

// Cart is the session-scoped shopping cart: an ordered list of lines keyed by
// product name, persisted through the store on every mutation.
type Cart struct {
	mu    sync.Mutex
	items []models.CartLine
	store *store.Store
}

func New(s *store.Store) *Cart {
	c := &Cart{store: s}
	c.Reload()
	return c
}

// ParsePrice strips every non-digit character from a human-entered price and
// interprets the remainder as a base-10 integer. It reports false when no
// digits remain or the value is not positive.
func ParsePrice(text string) (int, bool) {
	var b strings.Builder
	for _, r := range text {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return 0, false
	}
	price, err := strconv.Atoi(b.String())
	if err != nil || price <= 0 {
		return 0, false
	}
	return price, true
}

// Add merges an item into the cart by name. Unparsable or non-positive prices
// are silently ignored. A repeat add keeps the unit price recorded on first
// insertion regardless of the price text supplied now.
func (c *Cart) Add(name, priceText string) {
	price, ok := ParsePrice(priceText)
	if !ok || name == "" {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].Name == name {
			c.items[i].Quantity++
			c.items[i].Subtotal = c.items[i].Price * c.items[i].Quantity
			c.persist()
			return
		}
	}

	c.items = append(c.items, models.CartLine{
		Name:     name,
		Price:    price,
		Quantity: 1,
		Subtotal: price,
	})
	c.persist()
}

// Remove deletes the line at the given position. Out-of-range indexes are a
// no-op; the relative order of the remaining lines is unchanged.
func (c *Cart) Remove(index int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if index < 0 || index >= len(c.items) {
		return
	}
	c.items = append(c.items[:index], c.items[index+1:]...)
	c.persist()
}

// Snapshot derives the current cart view. Total and count are computed on
// every call, never cached.
func (c *Cart) Snapshot() models.CartSnapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	snap := models.CartSnapshot{Items: make([]models.CartLine, len(c.items))}
	copy(snap.Items, c.items)
	for _, item := range c.items {
		snap.Total += item.Subtotal
		snap.Count += item.Quantity
	}
	return snap
}

// Reload replaces the in-memory cart with whatever the store currently holds.
// Absent or corrupt state resets to an empty cart.
func (c *Cart) Reload() {
	c.mu.Lock()
	defer c.mu.Unlock()

	var items []models.CartLine
	if !c.store.Load(store.CartKey, &items) {
		items = nil
	}
	c.items = items
}

func (c *Cart) persist() {
	c.store.Save(store.CartKey, c.items)
}
