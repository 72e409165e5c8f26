package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/scooply/creamery/internal/platform/domain"
	"github.com/scooply/creamery/pkg/idx"
)

type orderFixture struct {
	svc     *OrderService
	owner   domain.User
	outlet  domain.Outlet
	product domain.Product
}

func setupOrderService(t *testing.T) orderFixture {
	t.Helper()

	s := newTestStore(t)
	owner := seedUser(t, s, "Owner", "owner@example.com")
	outlet := seedOutlet(t, s, owner.ID, "Scoop Shop")
	product := seedProduct(t, s, owner.ID, "Vanilla", 120)
	seedMenuItem(t, s, outlet.ID, product.ID, nil)

	outlets := &OutletService{Store: s, Geocoder: &fakeGeocoder{}}
	return orderFixture{
		svc:     &OrderService{Store: s, Outlets: outlets},
		owner:   owner,
		outlet:  outlet,
		product: product,
	}
}

func validInput(f orderFixture) PlaceOrderInput {
	return PlaceOrderInput{
		OutletID:        f.outlet.ID,
		CustomerName:    "Priya",
		CustomerPhone:   "9000000000",
		CustomerEmail:   "priya@example.com",
		DeliveryAddress: "2 Beach Road",
		Pincode:         "600001",
		Items:           []OrderLineInput{{ProductID: f.product.ID, Quantity: 2}},
	}
}

func TestPlaceOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("prices come from the menu", func(t *testing.T) {
		f := setupOrderService(t)

		order, err := f.svc.Place(ctx, nil, validInput(f))
		require.NoError(t, err)
		require.Equal(t, domain.OrderPending, order.Status)
		require.Len(t, order.Items, 1)
		require.Equal(t, 120.0, order.Items[0].ProductPrice)
		require.Equal(t, 240.0, order.TotalAmount)
		require.Empty(t, order.CustomerID)

		stored, err := f.svc.Store.Orders().GetOrderByID(ctx, order.ID)
		require.NoError(t, err)
		require.Len(t, stored.Items, 1)
	})

	t.Run("custom outlet price overrides base", func(t *testing.T) {
		f := setupOrderService(t)
		seedMenuItem(t, f.svc.Store, f.outlet.ID, f.product.ID, ptr(99.0))

		order, err := f.svc.Place(ctx, nil, validInput(f))
		require.NoError(t, err)
		require.Equal(t, 99.0, order.Items[0].ProductPrice)
		require.Equal(t, 198.0, order.TotalAmount)
	})

	t.Run("authenticated customer is linked and mirrored", func(t *testing.T) {
		f := setupOrderService(t)
		customer := domain.User{ID: idx.New().String(), Name: "Priya", Email: "priya@example.com"}

		order, err := f.svc.Place(ctx, &customer, validInput(f))
		require.NoError(t, err)
		require.Equal(t, customer.ID, order.CustomerID)

		mine, err := f.svc.ListForCustomer(ctx, customer.ID)
		require.NoError(t, err)
		require.Len(t, mine, 1)
	})

	t.Run("product not on this outlet's menu", func(t *testing.T) {
		f := setupOrderService(t)
		offMenu := seedProduct(t, f.svc.Store, f.owner.ID, "Secret Flavour", 200)

		input := validInput(f)
		input.Items = []OrderLineInput{{ProductID: offMenu.ID, Quantity: 1}}

		_, err := f.svc.Place(ctx, nil, input)
		require.ErrorIs(t, err, ErrProductUnavailable)
	})

	t.Run("validation", func(t *testing.T) {
		f := setupOrderService(t)

		input := validInput(f)
		input.Items = nil
		_, err := f.svc.Place(ctx, nil, input)
		require.ErrorIs(t, err, ErrInvalidOrderInput)

		input = validInput(f)
		input.Items[0].Quantity = 0
		_, err = f.svc.Place(ctx, nil, input)
		require.ErrorIs(t, err, ErrInvalidOrderInput)

		input = validInput(f)
		input.Pincode = "60001"
		_, err = f.svc.Place(ctx, nil, input)
		require.ErrorIs(t, err, ErrInvalidOrderInput)
	})

	t.Run("inactive outlet refuses orders", func(t *testing.T) {
		f := setupOrderService(t)
		closed := seedOutlet(t, f.svc.Store, f.owner.ID, "Closed", inactive())

		input := validInput(f)
		input.OutletID = closed.ID
		_, err := f.svc.Place(ctx, nil, input)
		require.ErrorIs(t, err, ErrOutletNotFound)
	})
}

func TestUpdateOrder(t *testing.T) {
	ctx := context.Background()

	place := func(t *testing.T, f orderFixture) domain.Order {
		order, err := f.svc.Place(ctx, nil, validInput(f))
		require.NoError(t, err)
		return order
	}

	t.Run("walks the fulfilment states", func(t *testing.T) {
		f := setupOrderService(t)
		order := place(t, f)

		for _, status := range []string{
			domain.OrderConfirmed,
			domain.OrderPreparing,
			domain.OrderOutForDelivery,
			domain.OrderDelivered,
		} {
			updated, err := f.svc.Update(ctx, f.outlet.ID, order.ID, f.owner.ID,
				domain.OrderUpdate{Status: ptr(status)})
			require.NoError(t, err, status)
			require.Equal(t, status, updated.Status)
		}
	})

	t.Run("rejects illegal transitions", func(t *testing.T) {
		f := setupOrderService(t)
		order := place(t, f)

		_, err := f.svc.Update(ctx, f.outlet.ID, order.ID, f.owner.ID,
			domain.OrderUpdate{Status: ptr(domain.OrderDelivered)})
		require.ErrorIs(t, err, ErrInvalidStatusTransition)

		_, err = f.svc.Update(ctx, f.outlet.ID, order.ID, f.owner.ID,
			domain.OrderUpdate{Status: ptr("teleported")})
		require.ErrorIs(t, err, ErrInvalidOrderInput)
	})

	t.Run("cancellation only before preparing", func(t *testing.T) {
		f := setupOrderService(t)
		order := place(t, f)

		_, err := f.svc.Update(ctx, f.outlet.ID, order.ID, f.owner.ID,
			domain.OrderUpdate{Status: ptr(domain.OrderConfirmed)})
		require.NoError(t, err)
		_, err = f.svc.Update(ctx, f.outlet.ID, order.ID, f.owner.ID,
			domain.OrderUpdate{Status: ptr(domain.OrderPreparing)})
		require.NoError(t, err)

		_, err = f.svc.Update(ctx, f.outlet.ID, order.ID, f.owner.ID,
			domain.OrderUpdate{Status: ptr(domain.OrderCancelled)})
		require.ErrorIs(t, err, ErrInvalidStatusTransition)
	})

	t.Run("assigns an outlet's own active agent", func(t *testing.T) {
		f := setupOrderService(t)
		order := place(t, f)

		agent := domain.DeliveryAgent{
			ID: idx.New().String(), OutletID: f.outlet.ID,
			Name: "Ravi", Phone: "9111111111", IsActive: true, CreatedBy: f.owner.ID,
		}
		require.NoError(t, f.svc.Store.DeliveryAgents().CreateDeliveryAgent(ctx, agent))

		updated, err := f.svc.Update(ctx, f.outlet.ID, order.ID, f.owner.ID,
			domain.OrderUpdate{DeliveryAgentID: ptr(agent.ID)})
		require.NoError(t, err)
		require.Equal(t, agent.ID, updated.DeliveryAgentID)
	})

	t.Run("rejects another outlet's agent", func(t *testing.T) {
		f := setupOrderService(t)
		order := place(t, f)
		otherOutlet := seedOutlet(t, f.svc.Store, f.owner.ID, "Second Shop")

		agent := domain.DeliveryAgent{
			ID: idx.New().String(), OutletID: otherOutlet.ID,
			Name: "Ravi", Phone: "9111111111", IsActive: true, CreatedBy: f.owner.ID,
		}
		require.NoError(t, f.svc.Store.DeliveryAgents().CreateDeliveryAgent(ctx, agent))

		_, err := f.svc.Update(ctx, f.outlet.ID, order.ID, f.owner.ID,
			domain.OrderUpdate{DeliveryAgentID: ptr(agent.ID)})
		require.ErrorIs(t, err, ErrAgentNotFound)
	})

	t.Run("only managers may update", func(t *testing.T) {
		f := setupOrderService(t)
		order := place(t, f)
		stranger := seedUser(t, f.svc.Store, "Stranger", "s@example.com")

		_, err := f.svc.Update(ctx, f.outlet.ID, order.ID, stranger.ID,
			domain.OrderUpdate{Status: ptr(domain.OrderConfirmed)})
		require.ErrorIs(t, err, ErrForbidden)
	})
}

func TestListForAgent(t *testing.T) {
	ctx := context.Background()

	seedAgent := func(t *testing.T, f orderFixture, outletID, email string) domain.DeliveryAgent {
		t.Helper()
		agent := domain.DeliveryAgent{
			ID: idx.New().String(), OutletID: outletID,
			Name: "Ravi", Phone: "9111111111", Email: email,
			IsActive: true, CreatedBy: f.owner.ID,
		}
		require.NoError(t, f.svc.Store.DeliveryAgents().CreateDeliveryAgent(ctx, agent))
		return agent
	}

	assign := func(t *testing.T, f orderFixture, outletID, orderID, agentID string) {
		t.Helper()
		_, err := f.svc.Update(ctx, outletID, orderID, f.owner.ID,
			domain.OrderUpdate{DeliveryAgentID: ptr(agentID)})
		require.NoError(t, err)
	}

	t.Run("returns assigned orders with pickup outlet", func(t *testing.T) {
		f := setupOrderService(t)
		agent := seedAgent(t, f, f.outlet.ID, "ravi@example.com")

		assigned, err := f.svc.Place(ctx, nil, validInput(f))
		require.NoError(t, err)
		unassigned, err := f.svc.Place(ctx, nil, validInput(f))
		require.NoError(t, err)
		assign(t, f, f.outlet.ID, assigned.ID, agent.ID)

		mine, err := f.svc.ListForAgent(ctx, "ravi@example.com")
		require.NoError(t, err)
		require.Len(t, mine, 1)
		require.Equal(t, assigned.ID, mine[0].ID)
		require.NotEqual(t, unassigned.ID, mine[0].ID)
		require.Len(t, mine[0].Items, 1)
		require.Equal(t, f.outlet.Name, mine[0].Outlet.Name)
		require.Equal(t, f.outlet.Address, mine[0].Outlet.Address)
	})

	t.Run("merges assignments across outlets", func(t *testing.T) {
		f := setupOrderService(t)
		second := seedOutlet(t, f.svc.Store, f.owner.ID, "Second Shop")
		seedMenuItem(t, f.svc.Store, second.ID, f.product.ID, nil)

		first := seedAgent(t, f, f.outlet.ID, "ravi@example.com")
		other := seedAgent(t, f, second.ID, "ravi@example.com")

		orderA, err := f.svc.Place(ctx, nil, validInput(f))
		require.NoError(t, err)
		input := validInput(f)
		input.OutletID = second.ID
		orderB, err := f.svc.Place(ctx, nil, input)
		require.NoError(t, err)

		assign(t, f, f.outlet.ID, orderA.ID, first.ID)
		assign(t, f, second.ID, orderB.ID, other.ID)

		mine, err := f.svc.ListForAgent(ctx, "ravi@example.com")
		require.NoError(t, err)
		require.Len(t, mine, 2)

		outletNames := map[string]string{}
		for _, o := range mine {
			outletNames[o.ID] = o.Outlet.Name
		}
		require.Equal(t, f.outlet.Name, outletNames[orderA.ID])
		require.Equal(t, "Second Shop", outletNames[orderB.ID])
	})

	t.Run("unknown email is refused", func(t *testing.T) {
		f := setupOrderService(t)

		_, err := f.svc.ListForAgent(ctx, "nobody@example.com")
		require.ErrorIs(t, err, ErrForbidden)
	})
}

func TestGetOrderVisibility(t *testing.T) {
	ctx := context.Background()
	f := setupOrderService(t)

	customer := domain.User{ID: idx.New().String(), Name: "Priya", Email: "priya@example.com"}
	order, err := f.svc.Place(ctx, &customer, validInput(f))
	require.NoError(t, err)

	t.Run("customer sees their order", func(t *testing.T) {
		got, err := f.svc.Get(ctx, order.ID, customer.ID)
		require.NoError(t, err)
		require.Equal(t, order.ID, got.ID)
	})

	t.Run("outlet manager sees it", func(t *testing.T) {
		got, err := f.svc.Get(ctx, order.ID, f.owner.ID)
		require.NoError(t, err)
		require.Equal(t, order.ID, got.ID)
	})

	t.Run("stranger does not", func(t *testing.T) {
		stranger := seedUser(t, f.svc.Store, "Stranger", "s@example.com")
		_, err := f.svc.Get(ctx, order.ID, stranger.ID)
		require.ErrorIs(t, err, ErrForbidden)
	})
}
