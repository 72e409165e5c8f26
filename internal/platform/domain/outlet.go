package domain

import "time"

// DefaultDeliveryRadiusKm applies when an outlet is created without an
// explicit radius.
const DefaultDeliveryRadiusKm = 10.0

// Outlet is a physical service location with a delivery radius and owner.
// An outlet without coordinates can only be matched by exact pincode
// equality; one with coordinates is matched by geodesic distance against
// its own radius.
type Outlet struct {
	ID               string
	Name             string
	Address          string
	Pincode          string
	Phone            string // optional
	Latitude         *float64
	Longitude        *float64
	DeliveryRadiusKm float64
	OwnerID          string
	IsActive         bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// HasCoordinates reports whether the outlet has been geocoded.
func (o Outlet) HasCoordinates() bool {
	return o.Latitude != nil && o.Longitude != nil
}

// OutletUpdate enumerates every mutable outlet field. Nil means "leave
// unchanged"; there is deliberately no free-form map-based update path.
type OutletUpdate struct {
	Name             *string
	Address          *string
	Pincode          *string
	Phone            *string
	Latitude         *float64
	Longitude        *float64
	DeliveryRadiusKm *float64
	IsActive         *bool
}

// IsZero reports whether the update would change nothing.
func (u OutletUpdate) IsZero() bool {
	return u.Name == nil && u.Address == nil && u.Pincode == nil &&
		u.Phone == nil && u.Latitude == nil && u.Longitude == nil &&
		u.DeliveryRadiusKm == nil && u.IsActive == nil
}

// OutletAdmin is a persisted grant of an administrative role to a user for
// a specific outlet. Distinct from ownership: owners hold implicit full
// rights and never appear in this table for their own outlet.
type OutletAdmin struct {
	ID        string
	OutletID  string
	UserID    string
	Role      string
	CreatedAt time.Time
}

// OutletAdminInfo is an admin grant joined with the granted user's profile,
// as returned by admin listings.
type OutletAdminInfo struct {
	OutletAdmin

	User User
}
