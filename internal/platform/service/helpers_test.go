package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/scooply/creamery/internal/platform/domain"
	"github.com/scooply/creamery/internal/platform/geocode"
	platformmail "github.com/scooply/creamery/internal/platform/mail"
	"github.com/scooply/creamery/internal/platform/store"
	"github.com/scooply/creamery/internal/platform/store/drivers/sqlite"
	"github.com/scooply/creamery/pkg/idx"
)

func newTestStore(t *testing.T) store.Store {
	t.Helper()

	s, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.ApplyMigrations())
	return s
}

// fakeGeocoder returns a fixed point, or nil when unset.
type fakeGeocoder struct {
	point *geocode.Point
	err   error
	calls int
}

func (g *fakeGeocoder) Geocode(ctx context.Context, address, pincode string) (*geocode.Point, error) {
	g.calls++
	return g.point, g.err
}

// fakeMailer records sends, optionally failing them.
type fakeMailer struct {
	mu   sync.Mutex
	sent []platformmail.Invitation
	err  error
}

func (m *fakeMailer) SendInvitation(ctx context.Context, inv platformmail.Invitation) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, inv)
	return nil
}

func seedUser(t *testing.T, s store.Store, name, email string) domain.User {
	t.Helper()

	u := domain.User{
		ID:    idx.New().String(),
		Name:  name,
		Email: email,
	}
	require.NoError(t, s.Users().UpsertUser(context.Background(), u))
	return u
}

type outletOpt func(*domain.Outlet)

func withCoords(lat, lon float64) outletOpt {
	return func(o *domain.Outlet) {
		o.Latitude, o.Longitude = &lat, &lon
	}
}

func withRadius(km float64) outletOpt {
	return func(o *domain.Outlet) { o.DeliveryRadiusKm = km }
}

func withPincode(p string) outletOpt {
	return func(o *domain.Outlet) { o.Pincode = p }
}

func inactive() outletOpt {
	return func(o *domain.Outlet) { o.IsActive = false }
}

func seedOutlet(t *testing.T, s store.Store, ownerID, name string, opts ...outletOpt) domain.Outlet {
	t.Helper()

	o := domain.Outlet{
		ID:               idx.New().String(),
		Name:             name,
		Address:          "1 Test Street",
		Pincode:          "600001",
		DeliveryRadiusKm: domain.DefaultDeliveryRadiusKm,
		OwnerID:          ownerID,
		IsActive:         true,
	}
	for _, opt := range opts {
		opt(&o)
	}
	require.NoError(t, s.Outlets().CreateOutlet(context.Background(), o))
	return o
}

func seedProduct(t *testing.T, s store.Store, createdBy string, name string, price float64) domain.Product {
	t.Helper()

	p := domain.Product{
		ID:        idx.New().String(),
		Name:      name,
		BasePrice: price,
		ImageURL:  "https://img.example/" + name + ".png",
		IsActive:  true,
		CreatedBy: createdBy,
	}
	require.NoError(t, s.Products().CreateProduct(context.Background(), p))
	return p
}

func seedMenuItem(t *testing.T, s store.Store, outletID, productID string, customPrice *float64) {
	t.Helper()

	require.NoError(t, s.OutletProducts().UpsertOutletProduct(context.Background(), domain.OutletProduct{
		ID:          idx.New().String(),
		OutletID:    outletID,
		ProductID:   productID,
		IsAvailable: true,
		CustomPrice: customPrice,
	}))
}

func seedInvitation(t *testing.T, s store.Store, outletID, invitedBy, email, tokenHash string, expiresAt time.Time) domain.Invitation {
	t.Helper()

	inv := domain.Invitation{
		ID:        idx.New().String(),
		Email:     email,
		OutletID:  outletID,
		InvitedBy: invitedBy,
		Role:      domain.RoleAdmin,
		TokenHash: tokenHash,
		Status:    domain.InvitationPending,
		ExpiresAt: expiresAt,
	}
	require.NoError(t, s.Invitations().CreateInvitation(context.Background(), inv))
	return inv
}

func ptr[T any](v T) *T { return &v }
