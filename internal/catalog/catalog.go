// Package catalog holds the fixed laundry price list: a typed,
// immutable table keyed by item id, validated once at load time.
package catalog

import (
	"fmt"

	"github.com/oparantho/saakwa-laundry-platform/internal/models"
)

type Catalog struct {
	items      []models.CatalogItem
	byID       map[string]models.CatalogItem
	categories []string
	byCategory map[string][]models.CatalogItem
}

// Load builds the catalog from the built-in price list. It fails on
// duplicate ids, empty names and negative prices so a bad table edit
// is caught at process start rather than at checkout.
func Load() (*Catalog, error) {
	return New(defaultItems)
}

func New(items []models.CatalogItem) (*Catalog, error) {
	c := &Catalog{
		byID:       make(map[string]models.CatalogItem, len(items)),
		byCategory: make(map[string][]models.CatalogItem),
	}

	for _, item := range items {
		if item.ID == "" {
			return nil, fmt.Errorf("catalog item with empty id (name %q)", item.Name)
		}

		if item.Name == "" {
			return nil, fmt.Errorf("catalog item %q has empty name", item.ID)
		}

		if item.UnitPrice < 0 {
			return nil, fmt.Errorf("catalog item %q has negative price %d", item.ID, item.UnitPrice)
		}

		if _, exists := c.byID[item.ID]; exists {
			return nil, fmt.Errorf("duplicate catalog item id %q", item.ID)
		}

		c.byID[item.ID] = item
		c.items = append(c.items, item)

		if _, seen := c.byCategory[item.Category]; !seen {
			c.categories = append(c.categories, item.Category)
		}

		c.byCategory[item.Category] = append(c.byCategory[item.Category], item)
	}

	return c, nil
}

func (c *Catalog) Lookup(id string) (models.CatalogItem, bool) {
	item, ok := c.byID[id]

	return item, ok
}

// AllItems returns every item in table order.
func (c *Catalog) AllItems() []models.CatalogItem {
	out := make([]models.CatalogItem, len(c.items))
	copy(out, c.items)

	return out
}

// ItemsByCategory returns the items of one category; an unknown
// category yields an empty slice, never an error.
func (c *Catalog) ItemsByCategory(category string) []models.CatalogItem {
	items := c.byCategory[category]
	out := make([]models.CatalogItem, len(items))
	copy(out, items)

	return out
}

// Categories returns category names in table order.
func (c *Catalog) Categories() []string {
	out := make([]string, len(c.categories))
	copy(out, c.categories)

	return out
}

func (c *Catalog) Len() int {
	return len(c.items)
}
