package models

// CartLine holds one selected catalog item and its quantity. Name and
// unit price are snapshotted from the catalog when the line is created
// so the client never supplies a price.
type CartLine struct {
	ItemID    string `json:"item_id"`
	Name      string `json:"name"`
	UnitPrice int64  `json:"unit_price"`
	Quantity  int    `json:"quantity"`
	Icon      string `json:"icon,omitempty"`
}

func (l CartLine) LineTotal() int64 {
	return l.UnitPrice * int64(l.Quantity)
}

// Cart keeps at most one line per item id, in insertion order. The
// order is irrelevant for totals but stable for display.
type Cart struct {
	Lines []CartLine `json:"lines"`
}

func (c *Cart) AddOrIncrement(item CatalogItem) {
	for i := range c.Lines {
		if c.Lines[i].ItemID == item.ID {
			c.Lines[i].Quantity++
			return
		}
	}

	c.Lines = append(c.Lines, CartLine{
		ItemID:    item.ID,
		Name:      item.Name,
		UnitPrice: item.UnitPrice,
		Icon:      item.Icon,
		Quantity:  1,
	})
}

// Decrement lowers the quantity of an item by one; a line reaching
// zero is removed, never kept at quantity 0. Unknown ids are a no-op.
func (c *Cart) Decrement(itemID string) {
	for i := range c.Lines {
		if c.Lines[i].ItemID != itemID {
			continue
		}

		c.Lines[i].Quantity--
		if c.Lines[i].Quantity <= 0 {
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
		}

		return
	}
}

func (c *Cart) QuantityOf(itemID string) int {
	for _, line := range c.Lines {
		if line.ItemID == itemID {
			return line.Quantity
		}
	}

	return 0
}

func (c *Cart) Clear() {
	c.Lines = nil
}

func (c *Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}

func (c *Cart) TotalItems() int {
	var count int
	for _, line := range c.Lines {
		count += line.Quantity
	}

	return count
}
