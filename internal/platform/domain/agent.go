package domain

import "time"

// DeliveryAgent is a courier attached to a single outlet.
type DeliveryAgent struct {
	ID        string
	OutletID  string
	Name      string
	Phone     string
	Email     string // optional
	IsActive  bool
	CreatedBy string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// DeliveryAgentUpdate enumerates every mutable agent field.
type DeliveryAgentUpdate struct {
	Name     *string
	Phone    *string
	Email    *string
	IsActive *bool
}
