package models

import "time"

// CartItem is a single line in a shopping cart. Price is the price the
// customer saw when adding the item; checkout re-validates it against the
// live product record.
type CartItem struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	Image     string  `json:"image,omitempty"`
}

// Cart is the transient shopping cart held in the cart store, keyed by
// user ID. It never touches the relational database.
type Cart struct {
	UserID    string     `json:"user_id"`
	Items     []CartItem `json:"items"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// Subtotal returns the sum of price*quantity over all items.
func (c *Cart) Subtotal() float64 {
	var subtotal float64
	for _, item := range c.Items {
		subtotal += item.Price * float64(item.Quantity)
	}
	return subtotal
}

// CartTotals is the aggregate money breakdown computed from a validated cart.
type CartTotals struct {
	Subtotal     float64 `json:"subtotal"`
	ShippingCost float64 `json:"shipping_cost"`
	VATAmount    float64 `json:"vat_amount"`
	TotalAmount  float64 `json:"total_amount"`
}

// ItemValidation is the per-item outcome of cart validation. Price is the
// live product price at validation time; checkout snapshots it onto the
// order line so the order total always matches the sum of its lines.
type ItemValidation struct {
	ProductID string  `json:"product_id"`
	Valid     bool    `json:"valid"`
	Price     float64 `json:"price,omitempty"`
	Reason    string  `json:"reason,omitempty"`
}
