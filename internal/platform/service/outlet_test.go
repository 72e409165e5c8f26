package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/scooply/creamery/internal/platform/domain"
	"github.com/scooply/creamery/internal/platform/geocode"
	"github.com/scooply/creamery/pkg/idx"
)

func setupOutletService(t *testing.T, g *fakeGeocoder) (*OutletService, *fakeMailer) {
	t.Helper()

	s := newTestStore(t)
	mailer := &fakeMailer{}
	invites := &InviteService{Store: s, Mailer: mailer, AppBaseURL: "https://creamery.test"}
	return &OutletService{Store: s, Geocoder: g, Invites: invites}, mailer
}

func TestCreateOutlet(t *testing.T) {
	ctx := context.Background()
	owner := domain.User{ID: idx.New().String(), Name: "Owner", Email: "owner@example.com"}

	t.Run("geocodes when no coordinates supplied", func(t *testing.T) {
		g := &fakeGeocoder{point: &geocode.Point{Latitude: 13.08, Longitude: 80.27}}
		svc, _ := setupOutletService(t, g)

		outlet, err := svc.Create(ctx, owner, CreateOutletInput{
			Name:    "Scoop Shop",
			Address: "1 Marina Road",
			Pincode: "600001",
		})
		require.NoError(t, err)
		require.True(t, outlet.HasCoordinates())
		require.Equal(t, 13.08, *outlet.Latitude)
		require.Equal(t, domain.DefaultDeliveryRadiusKm, outlet.DeliveryRadiusKm)
		require.Equal(t, 1, g.calls)
	})

	t.Run("explicit coordinates skip geocoding", func(t *testing.T) {
		g := &fakeGeocoder{point: &geocode.Point{Latitude: 99, Longitude: 99}}
		svc, _ := setupOutletService(t, g)

		outlet, err := svc.Create(ctx, owner, CreateOutletInput{
			Name:      "Scoop Shop",
			Address:   "1 Marina Road",
			Pincode:   "600001",
			Latitude:  ptr(13.0),
			Longitude: ptr(80.2),
		})
		require.NoError(t, err)
		require.Equal(t, 13.0, *outlet.Latitude)
		require.Zero(t, g.calls)
	})

	t.Run("geocode failure leaves outlet pincode-only", func(t *testing.T) {
		svc, _ := setupOutletService(t, &fakeGeocoder{})

		outlet, err := svc.Create(ctx, owner, CreateOutletInput{
			Name:    "Scoop Shop",
			Address: "1 Marina Road",
			Pincode: "600001",
		})
		require.NoError(t, err)
		require.False(t, outlet.HasCoordinates())
	})

	t.Run("no geocoder configured leaves outlet pincode-only", func(t *testing.T) {
		svc, _ := setupOutletService(t, &fakeGeocoder{})
		svc.Geocoder = nil

		outlet, err := svc.Create(ctx, owner, CreateOutletInput{
			Name:    "Scoop Shop",
			Address: "1 Marina Road",
			Pincode: "600001",
		})
		require.NoError(t, err)
		require.False(t, outlet.HasCoordinates())
	})

	t.Run("lone coordinate is rejected", func(t *testing.T) {
		svc, _ := setupOutletService(t, &fakeGeocoder{})

		_, err := svc.Create(ctx, owner, CreateOutletInput{
			Name: "Scoop Shop", Address: "1 Marina Road", Pincode: "600001",
			Latitude: ptr(13.0),
		})
		require.ErrorIs(t, err, ErrInvalidOutletInput)

		_, err = svc.Create(ctx, owner, CreateOutletInput{
			Name: "Scoop Shop", Address: "1 Marina Road", Pincode: "600001",
			Longitude: ptr(80.2),
		})
		require.ErrorIs(t, err, ErrInvalidOutletInput)
	})

	t.Run("bundled admin invitation", func(t *testing.T) {
		svc, mailer := setupOutletService(t, &fakeGeocoder{})

		outlet, err := svc.Create(ctx, owner, CreateOutletInput{
			Name:       "Scoop Shop",
			Address:    "1 Marina Road",
			Pincode:    "600001",
			AdminEmail: "helper@example.com",
		})
		require.NoError(t, err)

		require.Len(t, mailer.sent, 1)
		require.Equal(t, "helper@example.com", mailer.sent[0].To)

		pending, err := svc.Store.Invitations().ListPendingInvitations(ctx, outlet.ID)
		require.NoError(t, err)
		require.Len(t, pending, 1)
	})

	t.Run("validation", func(t *testing.T) {
		svc, _ := setupOutletService(t, &fakeGeocoder{})

		_, err := svc.Create(ctx, owner, CreateOutletInput{Name: "", Address: "a", Pincode: "600001"})
		require.ErrorIs(t, err, ErrInvalidOutletInput)

		_, err = svc.Create(ctx, owner, CreateOutletInput{Name: "n", Address: "a", Pincode: "60001"})
		require.ErrorIs(t, err, ErrInvalidOutletInput)

		_, err = svc.Create(ctx, owner, CreateOutletInput{
			Name: "n", Address: "a", Pincode: "600001", DeliveryRadiusKm: ptr(200.0),
		})
		require.ErrorIs(t, err, ErrInvalidRadius)
	})
}

func TestUpdateOutlet(t *testing.T) {
	ctx := context.Background()

	g := &fakeGeocoder{point: &geocode.Point{Latitude: 13.10, Longitude: 80.30}}
	svc, _ := setupOutletService(t, g)

	owner := seedUser(t, svc.Store, "Owner", "owner@example.com")
	other := seedUser(t, svc.Store, "Other", "other@example.com")
	outlet := seedOutlet(t, svc.Store, owner.ID, "Scoop Shop")

	t.Run("owner applies a partial update", func(t *testing.T) {
		updated, err := svc.Update(ctx, outlet.ID, owner.ID, domain.OutletUpdate{
			Name:             ptr("Renamed"),
			DeliveryRadiusKm: ptr(25.0),
		})
		require.NoError(t, err)
		require.Equal(t, "Renamed", updated.Name)
		require.Equal(t, 25.0, updated.DeliveryRadiusKm)
		require.Equal(t, outlet.Pincode, updated.Pincode)
	})

	t.Run("new address triggers re-geocoding", func(t *testing.T) {
		before := g.calls
		updated, err := svc.Update(ctx, outlet.ID, owner.ID, domain.OutletUpdate{
			Address: ptr("2 Beach Road"),
		})
		require.NoError(t, err)
		require.Equal(t, before+1, g.calls)
		require.True(t, updated.HasCoordinates())
		require.Equal(t, 13.10, *updated.Latitude)
	})

	t.Run("lone coordinate is rejected", func(t *testing.T) {
		_, err := svc.Update(ctx, outlet.ID, owner.ID, domain.OutletUpdate{
			Address:  ptr("3 Hill Road"),
			Latitude: ptr(13.2),
		})
		require.ErrorIs(t, err, ErrInvalidOutletInput)

		_, err = svc.Update(ctx, outlet.ID, owner.ID, domain.OutletUpdate{
			Longitude: ptr(80.4),
		})
		require.ErrorIs(t, err, ErrInvalidOutletInput)
	})

	t.Run("no geocoder skips re-geocoding", func(t *testing.T) {
		bare, _ := setupOutletService(t, &fakeGeocoder{})
		bare.Geocoder = nil
		o := seedOutlet(t, bare.Store, seedUser(t, bare.Store, "O", "o@example.com").ID, "Bare Shop")

		updated, err := bare.Update(ctx, o.ID, o.OwnerID, domain.OutletUpdate{
			Address: ptr("5 Lake View"),
		})
		require.NoError(t, err)
		require.Equal(t, "5 Lake View", updated.Address)
	})

	t.Run("non-owner is forbidden", func(t *testing.T) {
		_, err := svc.Update(ctx, outlet.ID, other.ID, domain.OutletUpdate{Name: ptr("X")})
		require.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("empty update is rejected", func(t *testing.T) {
		_, err := svc.Update(ctx, outlet.ID, owner.ID, domain.OutletUpdate{})
		require.ErrorIs(t, err, ErrNothingToUpdate)
	})
}

func TestDeleteOutletCascades(t *testing.T) {
	ctx := context.Background()
	svc, _ := setupOutletService(t, &fakeGeocoder{})

	owner := seedUser(t, svc.Store, "Owner", "owner@example.com")
	admin := seedUser(t, svc.Store, "Admin", "admin@example.com")
	outlet := seedOutlet(t, svc.Store, owner.ID, "Scoop Shop")

	require.NoError(t, svc.Store.OutletAdmins().CreateOutletAdmin(ctx, domain.OutletAdmin{
		ID: idx.New().String(), OutletID: outlet.ID, UserID: admin.ID, Role: domain.RoleAdmin,
	}))

	t.Run("non-owner cannot delete", func(t *testing.T) {
		require.ErrorIs(t, svc.Delete(ctx, outlet.ID, admin.ID), ErrForbidden)
	})

	t.Run("owner delete removes dependents", func(t *testing.T) {
		require.NoError(t, svc.Delete(ctx, outlet.ID, owner.ID))

		_, err := svc.Get(ctx, outlet.ID)
		require.ErrorIs(t, err, ErrOutletNotFound)

		admins, err := svc.Store.OutletAdmins().ListOutletAdmins(ctx, outlet.ID)
		require.NoError(t, err)
		require.Empty(t, admins)
	})
}

func TestCanManage(t *testing.T) {
	ctx := context.Background()
	svc, _ := setupOutletService(t, &fakeGeocoder{})

	owner := seedUser(t, svc.Store, "Owner", "owner@example.com")
	admin := seedUser(t, svc.Store, "Admin", "admin@example.com")
	stranger := seedUser(t, svc.Store, "Stranger", "s@example.com")
	outlet := seedOutlet(t, svc.Store, owner.ID, "Scoop Shop")

	require.NoError(t, svc.Store.OutletAdmins().CreateOutletAdmin(ctx, domain.OutletAdmin{
		ID: idx.New().String(), OutletID: outlet.ID, UserID: admin.ID, Role: domain.RoleAdmin,
	}))

	for _, tc := range []struct {
		name   string
		userID string
		want   bool
	}{
		{"owner", owner.ID, true},
		{"admin", admin.ID, true},
		{"stranger", stranger.ID, false},
	} {
		t.Run(tc.name, func(t *testing.T) {
			ok, err := svc.CanManage(ctx, outlet.ID, tc.userID)
			require.NoError(t, err)
			require.Equal(t, tc.want, ok)
		})
	}
}
