package order

import "time"

type OrderStatus string

// Status transitions are owned by the fulfillment surface; this service
// only writes the initial status supplied with the order.
const (
	StatusPending        OrderStatus = "pending"
	StatusToShip         OrderStatus = "to_ship"
	StatusOutForDelivery OrderStatus = "out_for_delivery"
	StatusDelivered      OrderStatus = "delivered"
	StatusCancelled      OrderStatus = "cancelled"
)

type Order struct {
	ID                int64        `json:"order_id"`
	UserID            int64        `json:"user_id"`
	TotalAmount       float64      `json:"total_amount"`
	DeliveryAddressID int64        `json:"delivery_address_id"`
	OrderStatus       OrderStatus  `json:"order_status"`
	PaymentMethod     string       `json:"payment_method"`
	PaymentStatus     string       `json:"payment_status"`
	GcashRef          *string      `json:"gcash_ref,omitempty"`
	OrderDate         string       `json:"order_date"`
	DeliveryDate      *string      `json:"delivery_date"`
	Notes             string       `json:"notes"`
	CreatedAt         time.Time    `json:"created_at"`
	Items             []*OrderItem `json:"order_items"`
}

type OrderItem struct {
	ItemID    int64   `json:"item_id"`
	OrderID   int64   `json:"order_id"`
	ProductID int64   `json:"product_id"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`

	// Joined product snapshot for list endpoints.
	ProductName string `json:"product_name,omitempty"`
}

// PesosPerPoint: one purchase point is earned for every ₱20 of order total.
const PesosPerPoint = 20
