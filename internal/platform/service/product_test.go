package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/scooply/creamery/internal/platform/domain"
	"github.com/scooply/creamery/pkg/idx"
)

func TestProductCatalogue(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	outlets := &OutletService{Store: s, Geocoder: &fakeGeocoder{}}
	svc := &ProductService{Store: s, Outlets: outlets}

	creator := domain.User{ID: idx.New().String(), Name: "Owner", Email: "owner@example.com"}
	other := seedUser(t, s, "Other", "other@example.com")

	t.Run("create and fetch", func(t *testing.T) {
		p, err := svc.Create(ctx, creator, CreateProductInput{
			Name:      "Mango Sorbet",
			BasePrice: 150,
			Category:  "sorbet",
			ImageURL:  "https://img.example/mango.png",
		})
		require.NoError(t, err)
		require.True(t, p.IsActive)

		got, err := svc.Get(ctx, p.ID)
		require.NoError(t, err)
		require.Equal(t, "Mango Sorbet", got.Name)
	})

	t.Run("rejects bad input", func(t *testing.T) {
		_, err := svc.Create(ctx, creator, CreateProductInput{Name: "", BasePrice: 10, ImageURL: "x"})
		require.ErrorIs(t, err, ErrInvalidProductInput)

		_, err = svc.Create(ctx, creator, CreateProductInput{Name: "n", BasePrice: 0, ImageURL: "x"})
		require.ErrorIs(t, err, ErrInvalidProductInput)
	})

	t.Run("only the creator updates", func(t *testing.T) {
		p, err := svc.Create(ctx, creator, CreateProductInput{
			Name: "Pista", BasePrice: 130, ImageURL: "https://img.example/p.png",
		})
		require.NoError(t, err)

		_, err = svc.Update(ctx, p.ID, other.ID, domain.ProductUpdate{Name: ptr("Hijacked")})
		require.ErrorIs(t, err, ErrForbidden)

		updated, err := svc.Update(ctx, p.ID, creator.ID, domain.ProductUpdate{BasePrice: ptr(140.0)})
		require.NoError(t, err)
		require.Equal(t, 140.0, updated.BasePrice)
	})

	t.Run("inactive products hidden from the public list", func(t *testing.T) {
		p, err := svc.Create(ctx, creator, CreateProductInput{
			Name: "Seasonal", BasePrice: 99, ImageURL: "https://img.example/s.png",
		})
		require.NoError(t, err)

		_, err = svc.Update(ctx, p.ID, creator.ID, domain.ProductUpdate{IsActive: ptr(false)})
		require.NoError(t, err)

		public, err := svc.List(ctx, false)
		require.NoError(t, err)
		for _, item := range public {
			require.NotEqual(t, p.ID, item.ID)
		}

		all, err := svc.List(ctx, true)
		require.NoError(t, err)
		require.Greater(t, len(all), len(public))
	})
}

func TestOutletMenu(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	outlets := &OutletService{Store: s, Geocoder: &fakeGeocoder{}}
	svc := &ProductService{Store: s, Outlets: outlets}

	owner := seedUser(t, s, "Owner", "owner@example.com")
	stranger := seedUser(t, s, "Stranger", "s@example.com")
	outlet := seedOutlet(t, s, owner.ID, "Scoop Shop")
	vanilla := seedProduct(t, s, owner.ID, "Vanilla", 120)
	choc := seedProduct(t, s, owner.ID, "Chocolate", 140)

	t.Run("manager curates the menu", func(t *testing.T) {
		require.NoError(t, svc.SetOutletProduct(ctx, outlet.ID, vanilla.ID, owner.ID, true, nil))
		require.NoError(t, svc.SetOutletProduct(ctx, outlet.ID, choc.ID, owner.ID, true, ptr(160.0)))

		menu, err := svc.Menu(ctx, outlet.ID)
		require.NoError(t, err)
		require.Len(t, menu, 2)

		prices := map[string]float64{}
		for _, item := range menu {
			prices[item.Name] = item.Price
		}
		require.Equal(t, 120.0, prices["Vanilla"])
		require.Equal(t, 160.0, prices["Chocolate"])
	})

	t.Run("stranger cannot curate", func(t *testing.T) {
		err := svc.SetOutletProduct(ctx, outlet.ID, vanilla.ID, stranger.ID, false, nil)
		require.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("unavailable items drop off the menu", func(t *testing.T) {
		require.NoError(t, svc.SetOutletProduct(ctx, outlet.ID, vanilla.ID, owner.ID, false, nil))

		menu, err := svc.Menu(ctx, outlet.ID)
		require.NoError(t, err)
		require.Len(t, menu, 1)
		require.Equal(t, "Chocolate", menu[0].Name)
	})

	t.Run("removal", func(t *testing.T) {
		require.NoError(t, svc.RemoveOutletProduct(ctx, outlet.ID, choc.ID, owner.ID))

		menu, err := svc.Menu(ctx, outlet.ID)
		require.NoError(t, err)
		require.Empty(t, menu)
	})

	t.Run("menu for unknown outlet", func(t *testing.T) {
		_, err := svc.Menu(ctx, idx.New().String())
		require.ErrorIs(t, err, ErrOutletNotFound)
	})
}
