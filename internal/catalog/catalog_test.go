package catalog_test

import (
	"testing"

	"github.com/oparantho/saakwa-laundry-platform/internal/catalog"
	"github.com/oparantho/saakwa-laundry-platform/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	c, err := catalog.Load()

	require.NoError(t, err)
	assert.Positive(t, c.Len())
	assert.Equal(t, len(c.AllItems()), c.Len())
}

func TestNewValidation(t *testing.T) {
	t.Run("Duplicate ID", func(t *testing.T) {
		_, err := catalog.New([]models.CatalogItem{
			{ID: "jeans", Name: "Jeans", UnitPrice: 1900, Category: "Casual Wear"},
			{ID: "jeans", Name: "Jeans Again", UnitPrice: 1700, Category: "Casual Wear"},
		})

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "duplicate")
	})

	t.Run("Empty ID", func(t *testing.T) {
		_, err := catalog.New([]models.CatalogItem{{Name: "Mystery", UnitPrice: 100}})

		assert.Error(t, err)
	})

	t.Run("Empty Name", func(t *testing.T) {
		_, err := catalog.New([]models.CatalogItem{{ID: "mystery", UnitPrice: 100}})

		assert.Error(t, err)
	})

	t.Run("Negative Price", func(t *testing.T) {
		_, err := catalog.New([]models.CatalogItem{{ID: "refund", Name: "Refund", UnitPrice: -1}})

		assert.Error(t, err)
	})
}

func TestLookup(t *testing.T) {
	c, err := catalog.Load()
	require.NoError(t, err)

	t.Run("Known Item", func(t *testing.T) {
		item, ok := c.Lookup("jeans")

		require.True(t, ok)
		assert.Equal(t, "Jeans", item.Name)
		assert.Equal(t, int64(1900), item.UnitPrice)
		assert.Equal(t, "Casual Wear", item.Category)
	})

	t.Run("Unknown Item", func(t *testing.T) {
		_, ok := c.Lookup("dry-cleaning-robot")

		assert.False(t, ok)
	})
}

func TestItemsByCategory(t *testing.T) {
	c, err := catalog.Load()
	require.NoError(t, err)

	t.Run("Known Category", func(t *testing.T) {
		items := c.ItemsByCategory("Casual Wear")

		require.NotEmpty(t, items)
		for _, item := range items {
			assert.Equal(t, "Casual Wear", item.Category)
		}
	})

	t.Run("Unknown Category Yields Empty", func(t *testing.T) {
		assert.Empty(t, c.ItemsByCategory("Spacesuits"))
	})

	t.Run("Categories Cover All Items", func(t *testing.T) {
		var total int
		for _, cat := range c.Categories() {
			total += len(c.ItemsByCategory(cat))
		}

		assert.Equal(t, c.Len(), total)
	})
}
