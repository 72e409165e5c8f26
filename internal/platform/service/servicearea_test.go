package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/scooply/creamery/internal/platform/geocode"
)

func TestResolveByCoordinates(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	owner := seedUser(t, s, "Owner", "owner@example.com")

	// Chennai central with a 10km radius, and a second outlet ~290km away
	// in Bangalore.
	near := seedOutlet(t, s, owner.ID, "Chennai Central", withCoords(13.0827, 80.2707))
	far := seedOutlet(t, s, owner.ID, "Bangalore", withCoords(12.9716, 77.5946))

	svc := &ServiceAreaService{Store: s, Geocoder: &fakeGeocoder{}}

	t.Run("includes outlets within their radius", func(t *testing.T) {
		matches, err := svc.ResolveByCoordinates(ctx, 13.0600, 80.2500, nil)
		require.NoError(t, err)
		require.Len(t, matches, 1)
		require.Equal(t, near.ID, matches[0].Outlet.ID)
		require.NotNil(t, matches[0].DistanceKm)
		require.InDelta(t, 3.4, *matches[0].DistanceKm, 0.5)
	})

	t.Run("excludes inactive outlets", func(t *testing.T) {
		seedOutlet(t, s, owner.ID, "Closed", withCoords(13.0600, 80.2500), inactive())

		matches, err := svc.ResolveByCoordinates(ctx, 13.0600, 80.2500, nil)
		require.NoError(t, err)
		for _, m := range matches {
			require.NotEqual(t, "Closed", m.Outlet.Name)
		}
	})

	t.Run("excludes outlets without coordinates", func(t *testing.T) {
		seedOutlet(t, s, owner.ID, "No Coords")

		matches, err := svc.ResolveByCoordinates(ctx, 13.0600, 80.2500, nil)
		require.NoError(t, err)
		for _, m := range matches {
			require.NotEqual(t, "No Coords", m.Outlet.Name)
		}
	})

	t.Run("sorts ascending by distance", func(t *testing.T) {
		nearer := seedOutlet(t, s, owner.ID, "Nearer",
			withCoords(12.9750, 77.5960), withRadius(50))
		farther := seedOutlet(t, s, owner.ID, "Farther",
			withCoords(13.1000, 77.7000), withRadius(50))

		matches, err := svc.ResolveByCoordinates(ctx, 12.98, 77.60, nil)
		require.NoError(t, err)
		require.GreaterOrEqual(t, len(matches), 2)
		for i := 1; i < len(matches); i++ {
			require.LessOrEqual(t, *matches[i-1].DistanceKm, *matches[i].DistanceKm)
		}

		index := func(id string) int {
			for i, m := range matches {
				if m.Outlet.ID == id {
					return i
				}
			}
			return -1
		}
		require.Less(t, index(nearer.ID), index(farther.ID))
		require.GreaterOrEqual(t, index(nearer.ID), 0)
	})

	t.Run("max distance override tightens results", func(t *testing.T) {
		matches, err := svc.ResolveByCoordinates(ctx, 13.0600, 80.2500, ptr(1.0))
		require.NoError(t, err)
		require.Empty(t, matches)
	})

	t.Run("rejects out-of-range coordinates", func(t *testing.T) {
		_, err := svc.ResolveByCoordinates(ctx, 91, 0, nil)
		require.ErrorIs(t, err, ErrInvalidCoordinates)

		_, err = svc.ResolveByCoordinates(ctx, 0, 181, nil)
		require.ErrorIs(t, err, ErrInvalidCoordinates)
	})

	t.Run("far outlet never matches a Chennai point", func(t *testing.T) {
		matches, err := svc.ResolveByCoordinates(ctx, 13.0600, 80.2500, nil)
		require.NoError(t, err)
		for _, m := range matches {
			require.NotEqual(t, far.ID, m.Outlet.ID)
		}
	})
}

func TestResolveByPincode(t *testing.T) {
	ctx := context.Background()

	t.Run("rejects malformed pincodes", func(t *testing.T) {
		svc := &ServiceAreaService{Store: newTestStore(t), Geocoder: &fakeGeocoder{}}

		for _, pincode := range []string{"", "12345", "1234567", "60000a"} {
			_, err := svc.ResolveByPincode(ctx, pincode)
			require.ErrorIs(t, err, ErrInvalidPincode, pincode)
		}
	})

	t.Run("geocoded pincode matches by distance", func(t *testing.T) {
		s := newTestStore(t)
		owner := seedUser(t, s, "Owner", "owner@example.com")
		near := seedOutlet(t, s, owner.ID, "Near", withCoords(13.0827, 80.2707), withPincode("600003"))

		svc := &ServiceAreaService{
			Store:    s,
			Geocoder: &fakeGeocoder{point: &geocode.Point{Latitude: 13.0600, Longitude: 80.2500}},
		}

		matches, err := svc.ResolveByPincode(ctx, "600001")
		require.NoError(t, err)
		require.Len(t, matches, 1)
		require.Equal(t, near.ID, matches[0].Outlet.ID)
		require.NotNil(t, matches[0].DistanceKm)
	})

	t.Run("exact pincode matches without coordinates", func(t *testing.T) {
		s := newTestStore(t)
		owner := seedUser(t, s, "Owner", "owner@example.com")
		exact := seedOutlet(t, s, owner.ID, "Exact", withPincode("600001"))

		svc := &ServiceAreaService{Store: s, Geocoder: &fakeGeocoder{}}

		matches, err := svc.ResolveByPincode(ctx, "600001")
		require.NoError(t, err)
		require.Len(t, matches, 1)
		require.Equal(t, exact.ID, matches[0].Outlet.ID)
		require.Nil(t, matches[0].DistanceKm)
	})

	t.Run("unresolvable pincode with no exact match", func(t *testing.T) {
		s := newTestStore(t)
		owner := seedUser(t, s, "Owner", "owner@example.com")
		seedOutlet(t, s, owner.ID, "Elsewhere", withPincode("110001"))

		svc := &ServiceAreaService{Store: s, Geocoder: &fakeGeocoder{}}

		_, err := svc.ResolveByPincode(ctx, "999999")
		require.ErrorIs(t, err, ErrLocationNotResolvable)
	})

	t.Run("geocoder failure degrades to exact matching", func(t *testing.T) {
		s := newTestStore(t)
		owner := seedUser(t, s, "Owner", "owner@example.com")
		exact := seedOutlet(t, s, owner.ID, "Exact", withPincode("600001"), withCoords(13.0827, 80.2707))

		svc := &ServiceAreaService{
			Store:    s,
			Geocoder: &fakeGeocoder{err: context.DeadlineExceeded},
		}

		matches, err := svc.ResolveByPincode(ctx, "600001")
		require.NoError(t, err)
		require.Len(t, matches, 1)
		require.Equal(t, exact.ID, matches[0].Outlet.ID)
	})

	t.Run("exact match is not duplicated by distance match", func(t *testing.T) {
		s := newTestStore(t)
		owner := seedUser(t, s, "Owner", "owner@example.com")
		both := seedOutlet(t, s, owner.ID, "Both", withPincode("600001"), withCoords(13.0827, 80.2707))

		svc := &ServiceAreaService{
			Store:    s,
			Geocoder: &fakeGeocoder{point: &geocode.Point{Latitude: 13.0827, Longitude: 80.2707}},
		}

		matches, err := svc.ResolveByPincode(ctx, "600001")
		require.NoError(t, err)
		require.Len(t, matches, 1)
		require.Equal(t, both.ID, matches[0].Outlet.ID)
	})
}
