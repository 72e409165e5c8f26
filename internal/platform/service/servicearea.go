package service

import (
	"context"
	"errors"
	"log/slog"
	"math"
	"sort"

	"github.com/scooply/creamery/internal/platform/domain"
	"github.com/scooply/creamery/internal/platform/geo"
	"github.com/scooply/creamery/internal/platform/geocode"
	"github.com/scooply/creamery/internal/platform/store"
	"github.com/scooply/creamery/pkg/slogx"
)

var (
	ErrInvalidPincode        = errors.New("pincode must be exactly six digits")
	ErrInvalidCoordinates    = errors.New("invalid coordinates")
	ErrLocationNotResolvable = errors.New("could not resolve a location for this pincode")
)

// OutletMatch is one serviceable outlet. DistanceKm is nil when the match
// came from exact pincode equality rather than a distance computation.
type OutletMatch struct {
	Outlet     domain.Outlet
	DistanceKm *float64
}

// ServiceAreaService decides which outlets can serve a customer location.
type ServiceAreaService struct {
	Store    store.Store
	Geocoder geocode.Geocoder
}

// ResolveByPincode returns the outlets that can deliver to a pincode.
//
// Outlets whose stored pincode equals the input match regardless of
// coordinates. On top of that, the pincode is geocoded and every outlet
// with coordinates within its own delivery radius of that point is
// included. An unresolvable pincode with no exact matches returns
// ErrLocationNotResolvable, which callers present as "not serviceable"
// rather than a hard failure.
func (s *ServiceAreaService) ResolveByPincode(ctx context.Context, pincode string) ([]OutletMatch, error) {
	log := slogx.FromContext(ctx)

	// 1. Validate input shape.
	if !geo.ValidPincode(pincode) {
		return nil, ErrInvalidPincode
	}

	// 2. Load the candidate set once.
	outlets, err := s.Store.Outlets().ListActiveOutlets(ctx)
	if err != nil {
		log.Error("failed to list outlets", slog.Any("error", err))
		return nil, err
	}

	// 3. Exact pincode matches are serviceable with no distance math.
	var exact []OutletMatch
	matched := make(map[string]bool)
	for _, o := range outlets {
		if o.Pincode == pincode {
			exact = append(exact, OutletMatch{Outlet: o})
			matched[o.ID] = true
		}
	}

	// 4. Geocode the pincode. The lookup is best effort: an absent
	// geocoder, a transport error or an empty result all degrade to
	// exact matching only.
	var point *geocode.Point
	if s.Geocoder != nil {
		point, err = s.Geocoder.Geocode(ctx, "", pincode)
		if err != nil {
			log.Warn("geocoding lookup failed, falling back to exact pincode match",
				slog.String("pincode", pincode),
				slog.Any("error", err),
			)
			point = nil
		}
	}
	if point == nil {
		if len(exact) == 0 {
			log.Info("pincode not resolvable and no exact matches",
				slog.String("pincode", pincode),
			)
			return nil, ErrLocationNotResolvable
		}
		return exact, nil
	}

	// 5. Distance-filter the remaining outlets against their own radii.
	ranged := matchByDistance(outlets, point.Latitude, point.Longitude, nil, matched)

	return append(exact, ranged...), nil
}

// ResolveByCoordinates returns active outlets whose delivery radius covers
// the given point, nearest first. maxDistanceKm optionally caps results
// tighter than the outlets' own radii.
func (s *ServiceAreaService) ResolveByCoordinates(ctx context.Context, lat, lon float64, maxDistanceKm *float64) ([]OutletMatch, error) {
	log := slogx.FromContext(ctx)

	if math.IsNaN(lat) || math.IsInf(lat, 0) || math.IsNaN(lon) || math.IsInf(lon, 0) {
		return nil, ErrInvalidCoordinates
	}
	if !geo.ValidCoordinates(lat, lon) {
		return nil, ErrInvalidCoordinates
	}
	if maxDistanceKm != nil && *maxDistanceKm <= 0 {
		return nil, ErrInvalidCoordinates
	}

	outlets, err := s.Store.Outlets().ListActiveOutlets(ctx)
	if err != nil {
		log.Error("failed to list outlets", slog.Any("error", err))
		return nil, err
	}

	return matchByDistance(outlets, lat, lon, maxDistanceKm, nil), nil
}

// matchByDistance filters outlets with coordinates to those whose radius
// covers the point, sorted by ascending distance with outlet id as the
// tie-breaker (ULIDs, so ties fall back to creation order). skip lists
// outlet ids already matched by other means.
func matchByDistance(outlets []domain.Outlet, lat, lon float64, maxDistanceKm *float64, skip map[string]bool) []OutletMatch {
	var matches []OutletMatch
	for _, o := range outlets {
		if skip[o.ID] || !o.HasCoordinates() {
			continue
		}

		d := geo.DistanceKm(lat, lon, *o.Latitude, *o.Longitude)
		if d > o.DeliveryRadiusKm {
			continue
		}
		if maxDistanceKm != nil && d > *maxDistanceKm {
			continue
		}

		dist := d
		matches = append(matches, OutletMatch{Outlet: o, DistanceKm: &dist})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if *matches[i].DistanceKm != *matches[j].DistanceKm {
			return *matches[i].DistanceKm < *matches[j].DistanceKm
		}
		return matches[i].Outlet.ID < matches[j].Outlet.ID
	})
	return matches
}
