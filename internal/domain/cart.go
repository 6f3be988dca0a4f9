package domain

// CartItem pairs a product with a purchase quantity. A cart holds at most one
// item per distinct product ID; quantity is always >= 1 (an item driven to
// zero is removed, not kept).
type CartItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// CartSummary carries the derived totals of a cart ledger. All values are
// recomputed from the items on every read, never stored.
type CartSummary struct {
	TotalItems    int     `json:"totalItems"`
	Subtotal      float64 `json:"subtotal"`
	TotalDiscount float64 `json:"totalDiscount"`
	Total         float64 `json:"total"`
}

// SummarizeCart computes the derived totals over a ledger snapshot.
func SummarizeCart(items []CartItem) CartSummary {
	var s CartSummary
	for _, it := range items {
		q := float64(it.Quantity)
		s.TotalItems += it.Quantity
		s.Subtotal += it.Product.Price * q
		s.TotalDiscount += it.Product.Price * it.Product.Discount / 100 * q
	}
	s.Total = s.Subtotal - s.TotalDiscount
	return s
}
