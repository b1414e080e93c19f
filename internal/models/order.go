package models

import "time"

// OrderStatus tracks the fulfillment lifecycle of an order.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusConfirmed  OrderStatus = "confirmed"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// PaymentStatus tracks the payment lifecycle of an order, independent of
// the fulfillment status.
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusFailed   PaymentStatus = "failed"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

// ValidOrderStatus reports whether s is a known order status value.
func ValidOrderStatus(s OrderStatus) bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusProcessing,
		OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// ValidPaymentStatus reports whether s is a known payment status value.
func ValidPaymentStatus(s PaymentStatus) bool {
	switch s {
	case PaymentStatusPending, PaymentStatusPaid, PaymentStatusFailed, PaymentStatusRefunded:
		return true
	}
	return false
}

// OrderItem is a line of an order. Price and name are snapshots taken at
// checkout so later product edits never change what the customer bought.
type OrderItem struct {
	ID          string  `json:"id" gorm:"primaryKey;type:varchar(36)"`
	OrderID     string  `json:"order_id" gorm:"index;type:varchar(36)"`
	ProductID   string  `json:"product_id" gorm:"type:varchar(36)"`
	ProductName string  `json:"product_name" gorm:"type:varchar(100)"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"` // Price at the time of order

	Product *Product `json:"product,omitempty" gorm:"foreignKey:ProductID"`
}

// Order represents a customer order.
type Order struct {
	ID               string        `json:"id" gorm:"primaryKey;type:varchar(36)"`
	OrderNumber      string        `json:"order_number" gorm:"uniqueIndex;type:varchar(32)"`
	UserID           string        `json:"user_id" gorm:"index;type:varchar(36)"`
	AddressID        string        `json:"address_id" gorm:"type:varchar(36)"`
	Items            []OrderItem   `json:"items" gorm:"foreignKey:OrderID"`
	TotalAmount      float64       `json:"total_amount"`
	ShippingCost     float64       `json:"shipping_cost"`
	VATAmount        float64       `json:"vat_amount"`
	Status           OrderStatus   `json:"status" gorm:"type:varchar(20);index"`
	PaymentStatus    PaymentStatus `json:"payment_status" gorm:"type:varchar(20);index"`
	PaymentMethod    string        `json:"payment_method" gorm:"type:varchar(32)"`
	TransactionID    *string       `json:"transaction_id,omitempty" gorm:"type:varchar(100)"`
	PaymentGatewayID *string       `json:"payment_gateway_id,omitempty" gorm:"type:varchar(100)"`
	DeliveredAt      *time.Time    `json:"delivered_at,omitempty"` // Actual delivery date, set when status becomes delivered
	CreatedAt        time.Time     `json:"created_at"`
	UpdatedAt        time.Time     `json:"updated_at"`

	User    *User    `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Address *Address `json:"address,omitempty" gorm:"foreignKey:AddressID"`
}

// OrderSummary is the client-safe shape returned right after checkout.
type OrderSummary struct {
	ID            string      `json:"id"`
	OrderNumber   string      `json:"order_number"`
	TotalAmount   float64     `json:"total_amount"`
	Status        OrderStatus `json:"status"`
	PaymentMethod string      `json:"payment_method"`
}
