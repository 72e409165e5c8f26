package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/scooply/creamery/internal/platform/domain"
	"github.com/scooply/creamery/internal/platform/geo"
	"github.com/scooply/creamery/internal/platform/geocode"
	"github.com/scooply/creamery/internal/platform/store"
	"github.com/scooply/creamery/pkg/idx"
	"github.com/scooply/creamery/pkg/slogx"
)

var (
	ErrOutletNotFound     = errors.New("outlet not found")
	ErrInvalidOutletInput = errors.New("name, address and a six-digit pincode are required")
	ErrNothingToUpdate    = errors.New("update contains no changes")
	ErrInvalidRadius      = errors.New("delivery radius must be positive")
)

// MaxDeliveryRadiusKm caps owner-configured radii.
const MaxDeliveryRadiusKm = 100.0

// CreateOutletInput is everything an owner supplies at creation time.
// Coordinates are optional; when absent the address is geocoded best
// effort. AdminEmail optionally bundles a first admin invitation.
type CreateOutletInput struct {
	Name             string
	Address          string
	Pincode          string
	Phone            string
	Latitude         *float64
	Longitude        *float64
	DeliveryRadiusKm *float64
	AdminEmail       string
}

// OutletService handles outlet management: the owner-facing CRUD around
// the resolver's data.
type OutletService struct {
	Store    store.Store
	Geocoder geocode.Geocoder
	Invites  *InviteService
}

// Create registers an outlet for the owner. When no explicit coordinates
// are given the address is geocoded; a failed lookup leaves the outlet
// matchable by exact pincode only.
func (s *OutletService) Create(ctx context.Context, owner domain.User, input CreateOutletInput) (domain.Outlet, error) {
	log := slogx.FromContext(ctx)

	// 1. Validate.
	input.Name = strings.TrimSpace(input.Name)
	input.Address = strings.TrimSpace(input.Address)
	if input.Name == "" || input.Address == "" || !geo.ValidPincode(input.Pincode) {
		return domain.Outlet{}, ErrInvalidOutletInput
	}
	// Coordinates come as a pair or not at all.
	if (input.Latitude == nil) != (input.Longitude == nil) {
		return domain.Outlet{}, ErrInvalidOutletInput
	}

	radius := domain.DefaultDeliveryRadiusKm
	if input.DeliveryRadiusKm != nil {
		if *input.DeliveryRadiusKm <= 0 || *input.DeliveryRadiusKm > MaxDeliveryRadiusKm {
			return domain.Outlet{}, ErrInvalidRadius
		}
		radius = *input.DeliveryRadiusKm
	}

	// 2. Resolve coordinates when the owner didn't supply any.
	lat, lon := input.Latitude, input.Longitude
	if lat == nil {
		if point := s.geocode(ctx, input.Address, input.Pincode); point != nil {
			lat, lon = &point.Latitude, &point.Longitude
		}
	}

	outlet := domain.Outlet{
		ID:               idx.New().String(),
		Name:             input.Name,
		Address:          input.Address,
		Pincode:          input.Pincode,
		Phone:            strings.TrimSpace(input.Phone),
		Latitude:         lat,
		Longitude:        lon,
		DeliveryRadiusKm: radius,
		OwnerID:          owner.ID,
		IsActive:         true,
	}

	// 3. Persist the owner's profile mirror and the outlet together.
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Users().UpsertUser(ctx, owner); err != nil {
			return err
		}
		return tx.Outlets().CreateOutlet(ctx, outlet)
	})
	if err != nil {
		log.Error("failed to create outlet", slog.Any("error", err))
		return domain.Outlet{}, err
	}

	log.Info("outlet created",
		slog.String("outlet_id", outlet.ID),
		slog.String("owner_id", owner.ID),
		slog.Bool("geocoded", outlet.HasCoordinates()),
	)

	// 4. Bundle the first admin invitation when requested. Failure here
	// never undoes the outlet.
	if email := strings.TrimSpace(input.AdminEmail); email != "" {
		if _, err := s.Invites.Issue(ctx, outlet.ID, email, owner.ID, owner.Name); err != nil {
			log.Warn("bundled invitation failed",
				slog.String("outlet_id", outlet.ID),
				slog.Any("error", err),
			)
		}
	}

	return outlet, nil
}

// geocode resolves coordinates for an address, best effort. An absent
// geocoder and a failed lookup both return nil, leaving the outlet
// matchable by exact pincode only.
func (s *OutletService) geocode(ctx context.Context, address, pincode string) *geocode.Point {
	if s.Geocoder == nil {
		return nil
	}
	point, err := s.Geocoder.Geocode(ctx, address, pincode)
	if err != nil {
		slogx.FromContext(ctx).Warn("geocoding outlet address failed",
			slog.String("pincode", pincode),
			slog.Any("error", err),
		)
		return nil
	}
	return point
}

// Get returns an outlet by id.
func (s *OutletService) Get(ctx context.Context, id string) (domain.Outlet, error) {
	outlet, err := s.Store.Outlets().GetOutletByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Outlet{}, ErrOutletNotFound
		}
		return domain.Outlet{}, err
	}
	return outlet, nil
}

// ListMine returns the outlets a user owns or administers. Owned outlets
// come first.
func (s *OutletService) ListMine(ctx context.Context, userID string) (owned, administered []domain.Outlet, err error) {
	owned, err = s.Store.Outlets().ListOutletsByOwner(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	administered, err = s.Store.Outlets().ListOutletsAdministeredBy(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	return owned, administered, nil
}

// Update applies a partial update, owner only. Clearing coordinates and
// re-geocoding is done by sending a new address without explicit
// coordinates.
func (s *OutletService) Update(ctx context.Context, outletID, callerID string, u domain.OutletUpdate) (domain.Outlet, error) {
	log := slogx.FromContext(ctx)

	if u.IsZero() {
		return domain.Outlet{}, ErrNothingToUpdate
	}
	if u.Pincode != nil && !geo.ValidPincode(*u.Pincode) {
		return domain.Outlet{}, ErrInvalidOutletInput
	}
	if u.DeliveryRadiusKm != nil && (*u.DeliveryRadiusKm <= 0 || *u.DeliveryRadiusKm > MaxDeliveryRadiusKm) {
		return domain.Outlet{}, ErrInvalidRadius
	}
	// Coordinates come as a pair or not at all; a lone latitude or
	// longitude would silently shift the outlet along one axis.
	if (u.Latitude == nil) != (u.Longitude == nil) {
		return domain.Outlet{}, ErrInvalidOutletInput
	}

	outlet, err := s.Store.Outlets().GetOutletByID(ctx, outletID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Outlet{}, ErrOutletNotFound
		}
		return domain.Outlet{}, err
	}
	if outlet.OwnerID != callerID {
		return domain.Outlet{}, ErrForbidden
	}

	// A moved outlet with no explicit coordinates gets re-geocoded.
	if u.Address != nil && u.Latitude == nil {
		pincode := outlet.Pincode
		if u.Pincode != nil {
			pincode = *u.Pincode
		}
		if point := s.geocode(ctx, *u.Address, pincode); point != nil {
			u.Latitude, u.Longitude = &point.Latitude, &point.Longitude
		}
	}

	if err := s.Store.Outlets().UpdateOutlet(ctx, outletID, u); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Outlet{}, ErrOutletNotFound
		}
		log.Error("failed to update outlet", slog.Any("error", err))
		return domain.Outlet{}, err
	}

	return s.Get(ctx, outletID)
}

// Delete removes an outlet and, via schema cascades, its admins,
// invitations, menu and orders. Owner only.
func (s *OutletService) Delete(ctx context.Context, outletID, callerID string) error {
	log := slogx.FromContext(ctx)

	outlet, err := s.Store.Outlets().GetOutletByID(ctx, outletID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrOutletNotFound
		}
		return err
	}
	if outlet.OwnerID != callerID {
		log.Warn("non-owner attempted to delete outlet",
			slog.String("outlet_id", outletID),
			slog.String("caller_id", callerID),
		)
		return ErrForbidden
	}

	if err := s.Store.Outlets().DeleteOutlet(ctx, outletID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrOutletNotFound
		}
		log.Error("failed to delete outlet", slog.Any("error", err))
		return err
	}

	log.Info("outlet deleted", slog.String("outlet_id", outletID))
	return nil
}

// CanManage reports whether the user owns or administers the outlet.
func (s *OutletService) CanManage(ctx context.Context, outletID, userID string) (bool, error) {
	outlet, err := s.Store.Outlets().GetOutletByID(ctx, outletID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return false, ErrOutletNotFound
		}
		return false, err
	}
	if outlet.OwnerID == userID {
		return true, nil
	}

	_, err = s.Store.OutletAdmins().GetOutletAdmin(ctx, outletID, userID)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, store.ErrNotFound) {
		return false, nil
	}
	return false, err
}

// ListAdmins returns an outlet's admin grants with user profiles.
// Visible to anyone who can manage the outlet.
func (s *OutletService) ListAdmins(ctx context.Context, outletID, callerID string) ([]domain.OutletAdminInfo, error) {
	ok, err := s.CanManage(ctx, outletID, callerID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrForbidden
	}
	return s.Store.OutletAdmins().ListOutletAdmins(ctx, outletID)
}

// RemoveAdmin revokes an admin grant, owner only.
func (s *OutletService) RemoveAdmin(ctx context.Context, outletID, userID, callerID string) error {
	outlet, err := s.Store.Outlets().GetOutletByID(ctx, outletID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrOutletNotFound
		}
		return err
	}
	if outlet.OwnerID != callerID {
		return ErrForbidden
	}

	err = s.Store.OutletAdmins().DeleteOutletAdmin(ctx, outletID, userID)
	if errors.Is(err, store.ErrNotFound) {
		return ErrNotAnAdmin
	}
	return err
}

// ErrNotAnAdmin means the targeted user holds no grant on the outlet.
var ErrNotAnAdmin = errors.New("user is not an admin for this outlet")
