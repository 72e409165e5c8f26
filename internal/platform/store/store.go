package store

import (
	"context"
	"errors"
	"time"

	"github.com/scooply/creamery/internal/platform/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite today,
// postgres later) implement this. Sub-repositories keep concerns tidy and
// testable, and make it harder to accidentally nest transactions.
type Store interface {
	Users() Users
	Outlets() Outlets
	OutletAdmins() OutletAdmins
	Invitations() Invitations
	Products() Products
	OutletProducts() OutletProducts
	DeliveryAgents() DeliveryAgents
	Orders() Orders

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction, rolling back when fn
	// returns an error and committing otherwise. Prefer this over Tx.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds
// Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// GetUserByID returns a user by id.
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// UpsertUser inserts or refreshes a profile mirrored from verified
	// session claims.
	UpsertUser(ctx context.Context, u domain.User) error
}

type Outlets interface {
	// CreateOutlet inserts a new outlet (id is provided by app via ULID).
	CreateOutlet(ctx context.Context, o domain.Outlet) error

	// GetOutletByID returns an outlet by id.
	GetOutletByID(ctx context.Context, id string) (domain.Outlet, error)

	// ListActiveOutlets returns all outlets with is_active set, ordered by
	// id so resolver tie-breaks are deterministic.
	ListActiveOutlets(ctx context.Context) ([]domain.Outlet, error)

	// ListOutletsByOwner returns outlets owned by the user.
	ListOutletsByOwner(ctx context.Context, ownerID string) ([]domain.Outlet, error)

	// ListOutletsAdministeredBy returns outlets the user administers via
	// outlet_admin rows (ownership excluded).
	ListOutletsAdministeredBy(ctx context.Context, userID string) ([]domain.Outlet, error)

	// UpdateOutlet applies the non-nil fields and bumps updated_at.
	UpdateOutlet(ctx context.Context, id string, u domain.OutletUpdate) error

	// DeleteOutlet removes the outlet; dependent rows cascade per schema.
	DeleteOutlet(ctx context.Context, id string) error
}

type OutletAdmins interface {
	// CreateOutletAdmin inserts a grant. The UNIQUE(outlet_id, user_id)
	// index maps duplicate grants to ErrAlreadyExists, which is the
	// backstop for concurrent invitation acceptance.
	CreateOutletAdmin(ctx context.Context, a domain.OutletAdmin) error

	// GetOutletAdmin returns the grant for an (outlet, user) pair.
	GetOutletAdmin(ctx context.Context, outletID, userID string) (domain.OutletAdmin, error)

	// ListOutletAdmins returns all grants for an outlet joined with the
	// granted users' profiles.
	ListOutletAdmins(ctx context.Context, outletID string) ([]domain.OutletAdminInfo, error)

	// DeleteOutletAdmin removes a grant.
	DeleteOutletAdmin(ctx context.Context, outletID, userID string) error
}

type Invitations interface {
	// CreateInvitation writes a new invitation (token_hash is the SHA-256
	// fingerprint of the opaque token).
	CreateInvitation(ctx context.Context, inv domain.Invitation) error

	// GetInvitationByTokenHash returns the invitation regardless of status
	// or expiry; the service decides which failure to surface.
	GetInvitationByTokenHash(ctx context.Context, hash string) (domain.Invitation, error)

	// GetInvitationByID returns an invitation by id.
	GetInvitationByID(ctx context.Context, id string) (domain.Invitation, error)

	// ListPendingInvitations returns pending invitations for an outlet.
	ListPendingInvitations(ctx context.Context, outletID string) ([]domain.Invitation, error)

	// MarkInvitationAccepted flips status to accepted and records when
	// (transaction-friendly).
	MarkInvitationAccepted(ctx context.Context, id string, acceptedAt time.Time) error

	// DeleteInvitation removes an invitation row.
	DeleteInvitation(ctx context.Context, id string) error

	// DeleteExpiredInvitations removes pending rows past their expiry.
	// Housekeeping only; acceptance enforces expiry on its own.
	DeleteExpiredInvitations(ctx context.Context) error
}

type Products interface {
	// CreateProduct inserts a catalogue entry.
	CreateProduct(ctx context.Context, p domain.Product) error

	// GetProductByID returns a product by id.
	GetProductByID(ctx context.Context, id string) (domain.Product, error)

	// ListProducts returns catalogue entries, optionally including
	// deactivated ones.
	ListProducts(ctx context.Context, includeInactive bool) ([]domain.Product, error)

	// UpdateProduct applies the non-nil fields and bumps updated_at.
	UpdateProduct(ctx context.Context, id string, u domain.ProductUpdate) error

	// DeleteProduct removes a product.
	DeleteProduct(ctx context.Context, id string) error
}

type OutletProducts interface {
	// UpsertOutletProduct creates or updates the availability row for an
	// (outlet, product) pair.
	UpsertOutletProduct(ctx context.Context, op domain.OutletProduct) error

	// ListMenu returns active, available products for an outlet with their
	// effective prices.
	ListMenu(ctx context.Context, outletID string) ([]domain.MenuItem, error)

	// DeleteOutletProduct removes a product from an outlet's menu.
	DeleteOutletProduct(ctx context.Context, outletID, productID string) error
}

type DeliveryAgents interface {
	// CreateDeliveryAgent inserts a courier for an outlet.
	CreateDeliveryAgent(ctx context.Context, a domain.DeliveryAgent) error

	// GetDeliveryAgentByID returns an agent by id.
	GetDeliveryAgentByID(ctx context.Context, id string) (domain.DeliveryAgent, error)

	// ListDeliveryAgents returns all agents for an outlet.
	ListDeliveryAgents(ctx context.Context, outletID string) ([]domain.DeliveryAgent, error)

	// ListDeliveryAgentsByEmail returns every agent row carrying the
	// email, across outlets. One person can courier for several outlets.
	ListDeliveryAgentsByEmail(ctx context.Context, email string) ([]domain.DeliveryAgent, error)

	// UpdateDeliveryAgent applies the non-nil fields and bumps updated_at.
	UpdateDeliveryAgent(ctx context.Context, id string, u domain.DeliveryAgentUpdate) error

	// DeleteDeliveryAgent removes an agent.
	DeleteDeliveryAgent(ctx context.Context, id string) error
}

type Orders interface {
	// CreateOrder inserts the order row; items are inserted separately so
	// the service can wrap both in one transaction.
	CreateOrder(ctx context.Context, o domain.Order) error

	// CreateOrderItem inserts one order line.
	CreateOrderItem(ctx context.Context, item domain.OrderItem) error

	// GetOrderByID returns an order with its items.
	GetOrderByID(ctx context.Context, id string) (domain.Order, error)

	// ListOrdersByCustomer returns a customer's orders, newest first,
	// items included.
	ListOrdersByCustomer(ctx context.Context, customerID string) ([]domain.Order, error)

	// ListOrdersByOutlet returns an outlet's orders, newest first, items
	// included.
	ListOrdersByOutlet(ctx context.Context, outletID string) ([]domain.Order, error)

	// ListOrdersByAgent returns the orders assigned to a courier, newest
	// first, items included.
	ListOrdersByAgent(ctx context.Context, agentID string) ([]domain.Order, error)

	// UpdateOrder applies the non-nil fields and bumps updated_at.
	UpdateOrder(ctx context.Context, id string, u domain.OrderUpdate) error
}
