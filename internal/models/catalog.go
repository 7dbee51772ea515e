package models

// CatalogItem is one entry of the fixed laundry price list. Prices are
// integer naira; items are loaded once at startup and never mutated.
type CatalogItem struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	UnitPrice int64  `json:"unit_price"`
	Category  string `json:"category"`
	Icon      string `json:"icon"`
}
