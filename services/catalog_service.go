package services

import "github.com/yashrajoria/checkout-demo/models"

// CatalogService resolves item ids against the fixed demo catalog.
type CatalogService interface {
	// Lookup returns the item for the given id, or false when nothing matches.
	Lookup(id string) (*models.CatalogItem, bool)

	// Items returns the whole catalog in display order.
	Items() []models.CatalogItem
}

// The catalog is a process-lifetime constant table; prices are minor units
// and are the only authoritative amounts in the system.
type staticCatalog struct {
	items []models.CatalogItem
	byID  map[string]int
}

// NewCatalogService builds the static demo catalog.
func NewCatalogService() CatalogService {
	items := []models.CatalogItem{
		{ID: "1", Title: "The Art of Doom", UnitAmount: 1500},
		{ID: "2", Title: "The Making of Prince of Persia: Journals 1985-1993", UnitAmount: 2500},
		{ID: "3", Title: "Terraforming Mars", UnitAmount: 2300},
	}
	byID := make(map[string]int, len(items))
	for i, it := range items {
		byID[it.ID] = i
	}
	return &staticCatalog{items: items, byID: byID}
}

func (c *staticCatalog) Lookup(id string) (*models.CatalogItem, bool) {
	i, ok := c.byID[id]
	if !ok {
		return nil, false
	}
	item := c.items[i]
	return &item, true
}

func (c *staticCatalog) Items() []models.CatalogItem {
	out := make([]models.CatalogItem, len(c.items))
	copy(out, c.items)
	return out
}
