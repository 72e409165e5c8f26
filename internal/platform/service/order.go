package service

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"strings"

	"github.com/scooply/creamery/internal/platform/domain"
	"github.com/scooply/creamery/internal/platform/geo"
	"github.com/scooply/creamery/internal/platform/store"
	"github.com/scooply/creamery/pkg/idx"
	"github.com/scooply/creamery/pkg/slogx"
)

var (
	ErrOrderNotFound           = errors.New("order not found")
	ErrInvalidOrderInput       = errors.New("invalid order input")
	ErrProductUnavailable      = errors.New("product is not available at this outlet")
	ErrInvalidStatusTransition = errors.New("invalid order status transition")
)

// OrderService places customer orders and runs the fulfilment state
// machine on the outlet side.
type OrderService struct {
	Store   store.Store
	Outlets *OutletService
}

// OrderLineInput is one requested product line.
type OrderLineInput struct {
	ProductID string
	Quantity  int
}

// PlaceOrderInput is a customer's checkout payload. Contact fields are
// snapshotted onto the order.
type PlaceOrderInput struct {
	OutletID        string
	CustomerName    string
	CustomerPhone   string
	CustomerEmail   string
	DeliveryAddress string
	Pincode         string
	Notes           string
	Items           []OrderLineInput
}

// Place creates an order against an outlet's menu. Prices come from the
// menu at order time, never from the client. customer is nil for guest
// checkouts.
func (s *OrderService) Place(ctx context.Context, customer *domain.User, input PlaceOrderInput) (domain.Order, error) {
	log := slogx.FromContext(ctx)

	// 1. Validate the payload shape.
	if strings.TrimSpace(input.CustomerName) == "" ||
		strings.TrimSpace(input.CustomerPhone) == "" ||
		strings.TrimSpace(input.DeliveryAddress) == "" ||
		!geo.ValidPincode(input.Pincode) ||
		len(input.Items) == 0 {
		return domain.Order{}, ErrInvalidOrderInput
	}
	for _, line := range input.Items {
		if line.Quantity <= 0 {
			return domain.Order{}, ErrInvalidOrderInput
		}
	}

	// 2. Outlet must exist and be taking orders.
	outlet, err := s.Store.Outlets().GetOutletByID(ctx, input.OutletID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Order{}, ErrOutletNotFound
		}
		return domain.Order{}, err
	}
	if !outlet.IsActive {
		return domain.Order{}, ErrOutletNotFound
	}

	// 3. Price every line off the outlet's current menu.
	menu, err := s.Store.OutletProducts().ListMenu(ctx, outlet.ID)
	if err != nil {
		return domain.Order{}, err
	}
	byProduct := make(map[string]domain.MenuItem, len(menu))
	for _, item := range menu {
		byProduct[item.Product.ID] = item
	}

	order := domain.Order{
		ID:              idx.New().String(),
		OutletID:        outlet.ID,
		CustomerName:    strings.TrimSpace(input.CustomerName),
		CustomerPhone:   strings.TrimSpace(input.CustomerPhone),
		CustomerEmail:   strings.TrimSpace(input.CustomerEmail),
		DeliveryAddress: strings.TrimSpace(input.DeliveryAddress),
		Pincode:         input.Pincode,
		Status:          domain.OrderPending,
		Notes:           input.Notes,
	}
	if customer != nil {
		order.CustomerID = customer.ID
	}

	for _, line := range input.Items {
		item, ok := byProduct[line.ProductID]
		if !ok {
			return domain.Order{}, ErrProductUnavailable
		}

		subtotal := item.Price * float64(line.Quantity)
		order.Items = append(order.Items, domain.OrderItem{
			ID:           idx.New().String(),
			OrderID:      order.ID,
			ProductID:    item.Product.ID,
			ProductName:  item.Name,
			ProductPrice: item.Price,
			ProductImage: item.ImageURL,
			Quantity:     line.Quantity,
			Subtotal:     subtotal,
		})
		order.TotalAmount += subtotal
	}

	// 4. Write order and lines in one transaction.
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if customer != nil {
			if err := tx.Users().UpsertUser(ctx, *customer); err != nil {
				return err
			}
		}
		if err := tx.Orders().CreateOrder(ctx, order); err != nil {
			return err
		}
		for _, item := range order.Items {
			if err := tx.Orders().CreateOrderItem(ctx, item); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Error("failed to place order", slog.Any("error", err))
		return domain.Order{}, err
	}

	log.Info("order placed",
		slog.String("order_id", order.ID),
		slog.String("outlet_id", outlet.ID),
		slog.Float64("total", order.TotalAmount),
	)
	return order, nil
}

// Get returns an order visible to the caller: its customer, or anyone
// managing the outlet it was placed against.
func (s *OrderService) Get(ctx context.Context, orderID, callerID string) (domain.Order, error) {
	order, err := s.Store.Orders().GetOrderByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Order{}, ErrOrderNotFound
		}
		return domain.Order{}, err
	}

	if order.CustomerID == callerID && callerID != "" {
		return order, nil
	}
	ok, err := s.Outlets.CanManage(ctx, order.OutletID, callerID)
	if err != nil {
		return domain.Order{}, err
	}
	if !ok {
		return domain.Order{}, ErrForbidden
	}
	return order, nil
}

// ListForCustomer returns the caller's own orders, newest first.
func (s *OrderService) ListForCustomer(ctx context.Context, customerID string) ([]domain.Order, error) {
	return s.Store.Orders().ListOrdersByCustomer(ctx, customerID)
}

// ListForOutlet returns an outlet's orders for its managers.
func (s *OrderService) ListForOutlet(ctx context.Context, outletID, callerID string) ([]domain.Order, error) {
	ok, err := s.Outlets.CanManage(ctx, outletID, callerID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrForbidden
	}
	return s.Store.Orders().ListOrdersByOutlet(ctx, outletID)
}

// AgentOrder is an order as a courier sees it: the order plus the
// outlet it has to be picked up from.
type AgentOrder struct {
	domain.Order
	Outlet domain.Outlet
}

// ListForAgent returns the orders assigned to the courier with the
// given email, newest first. The email may be registered against
// several outlets; all assignments are merged.
func (s *OrderService) ListForAgent(ctx context.Context, email string) ([]AgentOrder, error) {
	agents, err := s.Store.DeliveryAgents().ListDeliveryAgentsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if len(agents) == 0 {
		return nil, ErrForbidden
	}

	outlets := make(map[string]domain.Outlet)
	var result []AgentOrder
	for _, agent := range agents {
		orders, err := s.Store.Orders().ListOrdersByAgent(ctx, agent.ID)
		if err != nil {
			return nil, err
		}
		for _, order := range orders {
			outlet, ok := outlets[order.OutletID]
			if !ok {
				outlet, err = s.Store.Outlets().GetOutletByID(ctx, order.OutletID)
				if err != nil {
					return nil, err
				}
				outlets[order.OutletID] = outlet
			}
			result = append(result, AgentOrder{Order: order, Outlet: outlet})
		}
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

// Update moves an order through the fulfilment state machine and/or
// assigns a delivery agent. Manager only.
func (s *OrderService) Update(ctx context.Context, outletID, orderID, callerID string, u domain.OrderUpdate) (domain.Order, error) {
	log := slogx.FromContext(ctx)

	order, err := s.Store.Orders().GetOrderByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Order{}, ErrOrderNotFound
		}
		return domain.Order{}, err
	}
	if order.OutletID != outletID {
		return domain.Order{}, ErrOrderNotFound
	}

	ok, err := s.Outlets.CanManage(ctx, outletID, callerID)
	if err != nil {
		return domain.Order{}, err
	}
	if !ok {
		return domain.Order{}, ErrForbidden
	}

	if u.Status != nil {
		if !domain.ValidOrderStatus(*u.Status) {
			return domain.Order{}, ErrInvalidOrderInput
		}
		if !domain.CanTransitionOrder(order.Status, *u.Status) {
			return domain.Order{}, ErrInvalidStatusTransition
		}
	}

	// An assigned agent must be one of the outlet's own active couriers.
	if u.DeliveryAgentID != nil && *u.DeliveryAgentID != "" {
		agent, err := s.Store.DeliveryAgents().GetDeliveryAgentByID(ctx, *u.DeliveryAgentID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return domain.Order{}, ErrAgentNotFound
			}
			return domain.Order{}, err
		}
		if agent.OutletID != outletID || !agent.IsActive {
			return domain.Order{}, ErrAgentNotFound
		}
	}

	if err := s.Store.Orders().UpdateOrder(ctx, orderID, u); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Order{}, ErrOrderNotFound
		}
		log.Error("failed to update order", slog.Any("error", err))
		return domain.Order{}, err
	}

	updated, err := s.Store.Orders().GetOrderByID(ctx, orderID)
	if err != nil {
		return domain.Order{}, err
	}

	if u.Status != nil {
		log.Info("order status updated",
			slog.String("order_id", orderID),
			slog.String("from", order.Status),
			slog.String("to", *u.Status),
		)
	}
	return updated, nil
}
