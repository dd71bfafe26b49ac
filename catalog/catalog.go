package catalog

import (
	"strings"
	"sync"

	"cafeteria-yv/models"
	"cafeteria-yv/store"
)

// DefaultCategory is the immutable first category; products whose category is
// deleted or unknown fall back to it.
const DefaultCategory = "General"

// DefaultSeed is the menu adopted on first boot when no persisted catalog
// exists yet. Shared by every entrypoint.
var DefaultSeed = []models.SeedProduct{
	{Name: "Café Espresso", Price: 2500},
	{Name: "Cappuccino", Price: 3000},
	{Name: "Latte", Price: 3500},
	{Name: "Muffin de Chocolate", Price: 2000},
	{Name: "Croissant", Price: 2500},
}

// Catalog is the paired collection of products and categories. Every mutation
// persists both collections together, so a reader never observes a product
// pointing at a category that no longer exists.
type Catalog struct {
	mu         sync.Mutex
	products   []models.Product
	categories []string
	store      *store.Store
}

func New(s *store.Store) *Catalog {
	return &Catalog{store: s}
}

// Bootstrap initializes the catalog. A persisted catalog wins; otherwise the
// supplied seed list is adopted with every product in the default category;
// otherwise the catalog starts empty. The category list always holds at least
// the default entry at index 0.
func (c *Catalog) Bootstrap(seed []models.SeedProduct) {
	c.mu.Lock()
	defer c.mu.Unlock()

	loadedProducts := c.store.Load(store.MenuKey, &c.products)
	loadedCategories := c.store.Load(store.CategoriesKey, &c.categories)

	if !loadedProducts && len(seed) > 0 {
		c.products = make([]models.Product, 0, len(seed))
		for i, p := range seed {
			c.products = append(c.products, models.Product{
				ID:       i + 1,
				Name:     p.Name,
				Price:    p.Price,
				Category: DefaultCategory,
				ImageRef: p.ImageRef,
			})
		}
	}

	if !loadedCategories || len(c.categories) == 0 {
		c.categories = []string{DefaultCategory}
	}

	// The two keys can go out of step when one file is lost or corrupted.
	// Products left pointing at a category that no longer exists are folded
	// back into the default so the pair invariant holds from the start.
	changed := !loadedProducts || !loadedCategories
	for i := range c.products {
		if !c.hasCategory(c.products[i].Category) {
			c.products[i].Category = c.categories[0]
			changed = true
		}
	}

	if changed {
		c.persist()
	}
}

// UpsertProduct replaces the product with the given id in place, or appends a
// new product with id max(existing)+1 when id is zero or unknown-less. Empty
// names and non-positive prices are rejected as a no-op. An unknown category
// falls back to the default.
func (c *Catalog) UpsertProduct(id int, name string, price int, category, imageRef string) bool {
	name = strings.TrimSpace(name)
	if name == "" || price <= 0 {
		return false
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.hasCategory(category) {
		category = c.categories[0]
	}

	if id > 0 {
		for i := range c.products {
			if c.products[i].ID == id {
				c.products[i].Name = name
				c.products[i].Price = price
				c.products[i].Category = category
				c.products[i].ImageRef = imageRef
				c.persist()
				return true
			}
		}
		return false
	}

	c.products = append(c.products, models.Product{
		ID:       c.nextID(),
		Name:     name,
		Price:    price,
		Category: category,
		ImageRef: imageRef,
	})
	c.persist()
	return true
}

// DeleteProduct removes the product with the given id; unknown ids are a no-op.
func (c *Catalog) DeleteProduct(id int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.products {
		if c.products[i].ID == id {
			c.products = append(c.products[:i], c.products[i+1:]...)
			c.persist()
			return true
		}
	}
	return false
}

// AddCategory appends a category name. Empty or duplicate names are a no-op.
func (c *Catalog) AddCategory(name string) bool {
	name = strings.TrimSpace(name)
	if name == "" {
		return false
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.hasCategory(name) {
		return false
	}
	c.categories = append(c.categories, name)
	c.persist()
	return true
}

// DeleteCategory removes the category at the given index and reassigns every
// product in it to the default category. Index 0 (the default) cannot be
// deleted. Products and categories are persisted together.
func (c *Catalog) DeleteCategory(index int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if index <= 0 || index >= len(c.categories) {
		return false
	}

	removed := c.categories[index]
	c.categories = append(c.categories[:index], c.categories[index+1:]...)

	for i := range c.products {
		if c.products[i].Category == removed {
			c.products[i].Category = c.categories[0]
		}
	}
	c.persist()
	return true
}

// Snapshot copies the current catalog pair.
func (c *Catalog) Snapshot() models.CatalogSnapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	snap := models.CatalogSnapshot{
		Products:   make([]models.Product, len(c.products)),
		Categories: make([]string, len(c.categories)),
	}
	copy(snap.Products, c.products)
	copy(snap.Categories, c.categories)
	return snap
}

func (c *Catalog) hasCategory(name string) bool {
	for _, cat := range c.categories {
		if cat == name {
			return true
		}
	}
	return false
}

func (c *Catalog) nextID() int {
	max := 0
	for _, p := range c.products {
		if p.ID > max {
			max = p.ID
		}
	}
	return max + 1
}

func (c *Catalog) persist() {
	c.store.Save(store.MenuKey, c.products)
	c.store.Save(store.CategoriesKey, c.categories)
}
