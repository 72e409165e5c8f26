package domain

import "time"

// Product is a catalogue entry shared across outlets.
type Product struct {
	ID          string
	Name        string
	Description string
	BasePrice   float64
	Category    string
	ImageURL    string
	IsActive    bool
	CreatedBy   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ProductUpdate enumerates every mutable product field.
type ProductUpdate struct {
	Name        *string
	Description *string
	BasePrice   *float64
	Category    *string
	ImageURL    *string
	IsActive    *bool
}

// OutletProduct links a product to an outlet with optional per-outlet
// price override.
type OutletProduct struct {
	ID          string
	OutletID    string
	ProductID   string
	IsAvailable bool
	CustomPrice *float64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// MenuItem is a product as it appears on one outlet's menu: catalogue data
// plus availability and the effective price for that outlet.
type MenuItem struct {
	Product

	IsAvailable bool
	// Price is the custom outlet price when set, otherwise the base price.
	Price float64
}
