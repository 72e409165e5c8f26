package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/scooply/creamery/internal/platform/domain"
	"github.com/scooply/creamery/internal/platform/store"
	"github.com/scooply/creamery/pkg/idx"
	"github.com/scooply/creamery/pkg/slogx"
)

var (
	ErrProductNotFound     = errors.New("product not found")
	ErrInvalidProductInput = errors.New("name, image and a positive base price are required")
)

// ProductService manages the shared catalogue and per-outlet menus.
type ProductService struct {
	Store   store.Store
	Outlets *OutletService
}

// CreateProductInput is the catalogue entry an admin submits.
type CreateProductInput struct {
	Name        string
	Description string
	BasePrice   float64
	Category    string
	ImageURL    string
}

// Create adds a catalogue entry attributed to the caller.
func (s *ProductService) Create(ctx context.Context, creator domain.User, input CreateProductInput) (domain.Product, error) {
	log := slogx.FromContext(ctx)

	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" || input.ImageURL == "" || input.BasePrice <= 0 {
		return domain.Product{}, ErrInvalidProductInput
	}

	product := domain.Product{
		ID:          idx.New().String(),
		Name:        input.Name,
		Description: input.Description,
		BasePrice:   input.BasePrice,
		Category:    input.Category,
		ImageURL:    input.ImageURL,
		IsActive:    true,
		CreatedBy:   creator.ID,
	}

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Users().UpsertUser(ctx, creator); err != nil {
			return err
		}
		return tx.Products().CreateProduct(ctx, product)
	})
	if err != nil {
		log.Error("failed to create product", slog.Any("error", err))
		return domain.Product{}, err
	}

	log.Info("product created",
		slog.String("product_id", product.ID),
		slog.String("created_by", creator.ID),
	)
	return product, nil
}

// Get returns a product by id.
func (s *ProductService) Get(ctx context.Context, id string) (domain.Product, error) {
	p, err := s.Store.Products().GetProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Product{}, ErrProductNotFound
		}
		return domain.Product{}, err
	}
	return p, nil
}

// List returns the catalogue. Deactivated products are only included for
// management views.
func (s *ProductService) List(ctx context.Context, includeInactive bool) ([]domain.Product, error) {
	return s.Store.Products().ListProducts(ctx, includeInactive)
}

// Update applies a partial update, restricted to the product's creator.
func (s *ProductService) Update(ctx context.Context, productID, callerID string, u domain.ProductUpdate) (domain.Product, error) {
	p, err := s.Get(ctx, productID)
	if err != nil {
		return domain.Product{}, err
	}
	if p.CreatedBy != callerID {
		return domain.Product{}, ErrForbidden
	}
	if u.BasePrice != nil && *u.BasePrice <= 0 {
		return domain.Product{}, ErrInvalidProductInput
	}

	if err := s.Store.Products().UpdateProduct(ctx, productID, u); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Product{}, ErrProductNotFound
		}
		return domain.Product{}, err
	}
	return s.Get(ctx, productID)
}

// Delete removes a catalogue entry, restricted to its creator.
func (s *ProductService) Delete(ctx context.Context, productID, callerID string) error {
	p, err := s.Get(ctx, productID)
	if err != nil {
		return err
	}
	if p.CreatedBy != callerID {
		return ErrForbidden
	}

	err = s.Store.Products().DeleteProduct(ctx, productID)
	if errors.Is(err, store.ErrNotFound) {
		return ErrProductNotFound
	}
	return err
}

// SetOutletProduct puts a product on an outlet's menu or adjusts its
// availability and price override. Caller must manage the outlet.
func (s *ProductService) SetOutletProduct(ctx context.Context, outletID, productID, callerID string, available bool, customPrice *float64) error {
	log := slogx.FromContext(ctx)

	ok, err := s.Outlets.CanManage(ctx, outletID, callerID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrForbidden
	}
	if _, err := s.Get(ctx, productID); err != nil {
		return err
	}
	if customPrice != nil && *customPrice <= 0 {
		return ErrInvalidProductInput
	}

	op := domain.OutletProduct{
		ID:          idx.New().String(),
		OutletID:    outletID,
		ProductID:   productID,
		IsAvailable: available,
		CustomPrice: customPrice,
	}
	if err := s.Store.OutletProducts().UpsertOutletProduct(ctx, op); err != nil {
		log.Error("failed to upsert outlet product", slog.Any("error", err))
		return err
	}
	return nil
}

// RemoveOutletProduct takes a product off an outlet's menu.
func (s *ProductService) RemoveOutletProduct(ctx context.Context, outletID, productID, callerID string) error {
	ok, err := s.Outlets.CanManage(ctx, outletID, callerID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrForbidden
	}

	err = s.Store.OutletProducts().DeleteOutletProduct(ctx, outletID, productID)
	if errors.Is(err, store.ErrNotFound) {
		return ErrProductNotFound
	}
	return err
}

// Menu returns the customer-facing menu for an outlet: active, available
// products with effective prices. Public, no caller identity required.
func (s *ProductService) Menu(ctx context.Context, outletID string) ([]domain.MenuItem, error) {
	if _, err := s.Store.Outlets().GetOutletByID(ctx, outletID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrOutletNotFound
		}
		return nil, err
	}
	return s.Store.OutletProducts().ListMenu(ctx, outletID)
}
