package platformsdk

import "time"

// ErrorResponse is the standard error envelope every endpoint returns on
// failure.
type ErrorResponse struct {
	// Error is a stable machine-readable code (e.g. "invalid_request",
	// "forbidden", "invitation_expired")
	Error string `json:"error"`

	// ErrorDescription is a human-readable description of the error
	ErrorDescription string `json:"error_description"`
}

// ============================================================================
// Service Area
// ============================================================================

// ServiceabilityByCoordinatesRequest asks which outlets deliver to a point.
type ServiceabilityByCoordinatesRequest struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`

	// MaxDistanceKm optionally caps results tighter than each outlet's
	// own delivery radius.
	MaxDistanceKm *float64 `json:"max_distance_km,omitempty"`
}

// OutletSummary is the public view of an outlet in serviceability results.
type OutletSummary struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	Address          string  `json:"address"`
	Pincode          string  `json:"pincode"`
	Phone            string  `json:"phone,omitempty"`
	DeliveryRadiusKm float64 `json:"delivery_radius_km"`

	// DistanceKm is present for distance-based matches and absent for
	// exact pincode matches.
	DistanceKm *float64 `json:"distance_km,omitempty"`
}

// ServiceabilityResponse reports whether an area is served and by whom.
type ServiceabilityResponse struct {
	Serviceable bool            `json:"serviceable"`
	Outlets     []OutletSummary `json:"outlets,omitempty"`

	// Message is set when the area is not serviceable.
	Message string `json:"message,omitempty"`
}

// ============================================================================
// Outlets
// ============================================================================

// CreateOutletRequest registers a new outlet for the caller.
type CreateOutletRequest struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Pincode string `json:"pincode"`
	Phone   string `json:"phone,omitempty"`

	// Latitude/Longitude are optional; when omitted the address is
	// geocoded server side.
	Latitude         *float64 `json:"latitude,omitempty"`
	Longitude        *float64 `json:"longitude,omitempty"`
	DeliveryRadiusKm *float64 `json:"delivery_radius_km,omitempty"`

	// AdminEmail optionally issues an admin invitation alongside the
	// outlet.
	AdminEmail string `json:"admin_email,omitempty"`
}

// UpdateOutletRequest is a partial update; omitted fields are unchanged.
type UpdateOutletRequest struct {
	Name             *string  `json:"name,omitempty"`
	Address          *string  `json:"address,omitempty"`
	Pincode          *string  `json:"pincode,omitempty"`
	Phone            *string  `json:"phone,omitempty"`
	Latitude         *float64 `json:"latitude,omitempty"`
	Longitude        *float64 `json:"longitude,omitempty"`
	DeliveryRadiusKm *float64 `json:"delivery_radius_km,omitempty"`
	IsActive         *bool    `json:"is_active,omitempty"`
}

// OutletResponse is the owner/admin view of an outlet.
type OutletResponse struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Address          string    `json:"address"`
	Pincode          string    `json:"pincode"`
	Phone            string    `json:"phone,omitempty"`
	Latitude         *float64  `json:"latitude,omitempty"`
	Longitude        *float64  `json:"longitude,omitempty"`
	DeliveryRadiusKm float64   `json:"delivery_radius_km"`
	OwnerID          string    `json:"owner_id"`
	IsActive         bool      `json:"is_active"`
	IsOwner          bool      `json:"is_owner"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// OutletListResponse groups a user's outlets by relationship.
type OutletListResponse struct {
	Outlets []OutletResponse `json:"outlets"`
}

// ============================================================================
// Invitations & Admins
// ============================================================================

// CreateInvitationRequest invites an email address to administer an
// outlet.
type CreateInvitationRequest struct {
	Email string `json:"email"`
}

// InvitationResponse is the owner's view of an invitation. The token is
// never included; it only travels in the invite email.
type InvitationResponse struct {
	ID         string     `json:"id"`
	Email      string     `json:"email"`
	OutletID   string     `json:"outlet_id"`
	Role       string     `json:"role"`
	Status     string     `json:"status"`
	ExpiresAt  time.Time  `json:"expires_at"`
	CreatedAt  time.Time  `json:"created_at"`
	AcceptedAt *time.Time `json:"accepted_at,omitempty"`
}

// InvitationListResponse lists an outlet's pending invitations.
type InvitationListResponse struct {
	Invitations []InvitationResponse `json:"invitations"`
}

// AcceptInvitationRequest consumes an invitation token.
type AcceptInvitationRequest struct {
	Token string `json:"token"`
}

// AcceptInvitationResponse reports the granted role.
type AcceptInvitationResponse struct {
	OutletID string `json:"outlet_id"`
	Role     string `json:"role"`
}

// OutletAdminResponse is one admin grant joined with the user's profile.
type OutletAdminResponse struct {
	OutletID  string    `json:"outlet_id"`
	UserID    string    `json:"user_id"`
	Role      string    `json:"role"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// OutletAdminListResponse lists an outlet's admin grants.
type OutletAdminListResponse struct {
	Admins []OutletAdminResponse `json:"admins"`
}

// ============================================================================
// Catalogue & Menus
// ============================================================================

// CreateProductRequest adds a catalogue entry.
type CreateProductRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	BasePrice   float64 `json:"base_price"`
	Category    string  `json:"category,omitempty"`
	ImageURL    string  `json:"image_url"`
}

// UpdateProductRequest is a partial update; omitted fields are unchanged.
type UpdateProductRequest struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	BasePrice   *float64 `json:"base_price,omitempty"`
	Category    *string  `json:"category,omitempty"`
	ImageURL    *string  `json:"image_url,omitempty"`
	IsActive    *bool    `json:"is_active,omitempty"`
}

// ProductResponse is a catalogue entry.
type ProductResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	BasePrice   float64   `json:"base_price"`
	Category    string    `json:"category,omitempty"`
	ImageURL    string    `json:"image_url"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ProductListResponse lists catalogue entries.
type ProductListResponse struct {
	Products []ProductResponse `json:"products"`
}

// SetOutletProductRequest puts a product on a menu or adjusts it.
type SetOutletProductRequest struct {
	ProductID   string   `json:"product_id"`
	IsAvailable bool     `json:"is_available"`
	CustomPrice *float64 `json:"custom_price,omitempty"`
}

// MenuItemResponse is one line of a customer-facing menu.
type MenuItemResponse struct {
	ProductID   string  `json:"product_id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Category    string  `json:"category,omitempty"`
	ImageURL    string  `json:"image_url"`
	Price       float64 `json:"price"`
}

// MenuResponse is an outlet's menu.
type MenuResponse struct {
	OutletID string             `json:"outlet_id"`
	Items    []MenuItemResponse `json:"items"`
}

// ============================================================================
// Delivery Agents
// ============================================================================

// CreateAgentRequest registers a courier for an outlet.
type CreateAgentRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email,omitempty"`
}

// UpdateAgentRequest is a partial update; omitted fields are unchanged.
type UpdateAgentRequest struct {
	Name     *string `json:"name,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	Email    *string `json:"email,omitempty"`
	IsActive *bool   `json:"is_active,omitempty"`
}

// AgentResponse is one of an outlet's couriers.
type AgentResponse struct {
	ID        string    `json:"id"`
	OutletID  string    `json:"outlet_id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email,omitempty"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// AgentListResponse lists an outlet's couriers.
type AgentListResponse struct {
	Agents []AgentResponse `json:"agents"`
}

// ============================================================================
// Orders
// ============================================================================

// OrderLineRequest is one requested product line.
type OrderLineRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// PlaceOrderRequest is a checkout payload. Works with or without an
// authenticated session; contact fields are snapshotted either way.
type PlaceOrderRequest struct {
	OutletID        string             `json:"outlet_id"`
	CustomerName    string             `json:"customer_name"`
	CustomerPhone   string             `json:"customer_phone"`
	CustomerEmail   string             `json:"customer_email,omitempty"`
	DeliveryAddress string             `json:"delivery_address"`
	Pincode         string             `json:"pincode"`
	Notes           string             `json:"notes,omitempty"`
	Items           []OrderLineRequest `json:"items"`
}

// UpdateOrderRequest moves an order through fulfilment and/or assigns a
// courier.
type UpdateOrderRequest struct {
	Status          *string `json:"status,omitempty"`
	DeliveryAgentID *string `json:"delivery_agent_id,omitempty"`
}

// OrderItemResponse is one snapshotted order line.
type OrderItemResponse struct {
	ProductID    string  `json:"product_id"`
	ProductName  string  `json:"product_name"`
	ProductPrice float64 `json:"product_price"`
	ProductImage string  `json:"product_image,omitempty"`
	Quantity     int     `json:"quantity"`
	Subtotal     float64 `json:"subtotal"`
}

// OrderResponse is a full order with its lines.
type OrderResponse struct {
	ID              string              `json:"id"`
	OutletID        string              `json:"outlet_id"`
	CustomerName    string              `json:"customer_name"`
	CustomerPhone   string              `json:"customer_phone"`
	CustomerEmail   string              `json:"customer_email,omitempty"`
	DeliveryAddress string              `json:"delivery_address"`
	Pincode         string              `json:"pincode"`
	TotalAmount     float64             `json:"total_amount"`
	Status          string              `json:"status"`
	DeliveryAgentID string              `json:"delivery_agent_id,omitempty"`
	Notes           string              `json:"notes,omitempty"`
	Items           []OrderItemResponse `json:"items"`
	CreatedAt       time.Time           `json:"created_at"`
	UpdatedAt       time.Time           `json:"updated_at"`
}

// OrderListResponse lists orders, newest first.
type OrderListResponse struct {
	Orders []OrderResponse `json:"orders"`
}

// DeliveryOrderResponse is an order from the courier's side, with the
// pickup outlet's contact details inlined.
type DeliveryOrderResponse struct {
	OrderResponse
	OutletName    string `json:"outlet_name"`
	OutletAddress string `json:"outlet_address"`
	OutletPhone   string `json:"outlet_phone,omitempty"`
}

// DeliveryOrderListResponse lists a courier's assigned orders, newest
// first.
type DeliveryOrderListResponse struct {
	Orders []DeliveryOrderResponse `json:"orders"`
}

// ============================================================================
// System
// ============================================================================

// HealthResponse is returned by the liveness and readiness endpoints.
type HealthResponse struct {
	Status  string        `json:"status"`
	Version string        `json:"version,omitempty"`
	Uptime  string        `json:"uptime,omitempty"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks reports per-dependency readiness.
type HealthChecks struct {
	Database string `json:"database"`
}
