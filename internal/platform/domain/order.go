package domain

import "time"

// Order statuses.
const (
	OrderPending        = "pending"
	OrderConfirmed      = "confirmed"
	OrderPreparing      = "preparing"
	OrderOutForDelivery = "out_for_delivery"
	OrderDelivered      = "delivered"
	OrderCancelled      = "cancelled"
)

// orderTransitions is the allowed status machine. Cancellation is only
// reachable before the kitchen starts preparing.
var orderTransitions = map[string][]string{
	OrderPending:        {OrderConfirmed, OrderCancelled},
	OrderConfirmed:      {OrderPreparing, OrderCancelled},
	OrderPreparing:      {OrderOutForDelivery},
	OrderOutForDelivery: {OrderDelivered},
}

// ValidOrderStatus reports whether s names a known status.
func ValidOrderStatus(s string) bool {
	switch s {
	case OrderPending, OrderConfirmed, OrderPreparing,
		OrderOutForDelivery, OrderDelivered, OrderCancelled:
		return true
	}
	return false
}

// CanTransitionOrder reports whether an order may move from one status to
// another.
func CanTransitionOrder(from, to string) bool {
	for _, next := range orderTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Order is a customer order against one outlet. Customer contact fields
// are snapshots taken at order time so later profile edits don't rewrite
// history.
type Order struct {
	ID              string
	CustomerID      string // empty for guest orders
	OutletID        string
	CustomerName    string
	CustomerPhone   string
	CustomerEmail   string
	DeliveryAddress string
	Pincode         string
	TotalAmount     float64
	Status          string
	DeliveryAgentID string // empty until assigned
	Notes           string
	CreatedAt       time.Time
	UpdatedAt       time.Time

	Items []OrderItem
}

// OrderItem snapshots one product line at order time.
type OrderItem struct {
	ID           string
	OrderID      string
	ProductID    string
	ProductName  string
	ProductPrice float64
	ProductImage string
	Quantity     int
	Subtotal     float64
	CreatedAt    time.Time
}

// OrderUpdate enumerates the mutable order fields. Status changes are
// validated against the transition table by the service.
type OrderUpdate struct {
	Status          *string
	DeliveryAgentID *string
}
