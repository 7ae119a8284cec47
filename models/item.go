package models

// CatalogItem is a purchasable entry with a fixed id, title and price.
// Amounts are integer minor currency units (cents) until display time.
type CatalogItem struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	UnitAmount int64  `json:"unit_amount"`
}
