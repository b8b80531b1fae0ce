package models

// CartItem is one line item of the in-memory cart. Product is the full
// snapshot taken at add time, so a later catalog edit does not change an
// already-added line.
type CartItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

func (i CartItem) LineTotal() float64 {
	return i.Product.Price * float64(i.Quantity)
}
