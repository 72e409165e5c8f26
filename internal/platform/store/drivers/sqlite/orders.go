package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/scooply/creamery/internal/platform/domain"
	"github.com/scooply/creamery/internal/platform/store"
)

type ordersRepo struct {
	db dbtx
}

const orderColumns = `id, customer_id, outlet_id, customer_name, customer_phone,
	customer_email, delivery_address, pincode, total_amount, status,
	delivery_agent_id, notes, created_at, updated_at`

func scanOrder(row interface{ Scan(...any) error }) (domain.Order, error) {
	var o domain.Order
	var customerID, agentID sql.NullString
	err := row.Scan(&o.ID, &customerID, &o.OutletID, &o.CustomerName,
		&o.CustomerPhone, &o.CustomerEmail, &o.DeliveryAddress, &o.Pincode,
		&o.TotalAmount, &o.Status, &agentID, &o.Notes, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return domain.Order{}, err
	}

	o.CustomerID = mapNullString(customerID)
	o.DeliveryAgentID = mapNullString(agentID)
	return o, nil
}

func (r *ordersRepo) CreateOrder(ctx context.Context, o domain.Order) error {
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO orders (id, customer_id, outlet_id, customer_name, customer_phone,
			customer_email, delivery_address, pincode, total_amount, status,
			delivery_agent_id, notes, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		o.ID, mapStringNull(o.CustomerID), o.OutletID, o.CustomerName,
		o.CustomerPhone, o.CustomerEmail, o.DeliveryAddress, o.Pincode,
		o.TotalAmount, o.Status, mapStringNull(o.DeliveryAgentID), o.Notes,
		now, now)
	return mapConstraint(err)
}

func (r *ordersRepo) CreateOrderItem(ctx context.Context, item domain.OrderItem) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO order_items (id, order_id, product_id, product_name,
			product_price, product_image, quantity, subtotal, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		item.ID, item.OrderID, item.ProductID, item.ProductName,
		item.ProductPrice, item.ProductImage, item.Quantity, item.Subtotal,
		time.Now().UTC())
	return mapConstraint(err)
}

func (r *ordersRepo) GetOrderByID(ctx context.Context, id string) (domain.Order, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE id = ?`, id)

	o, err := scanOrder(row)
	if err != nil {
		return domain.Order{}, mapNotFound(err)
	}

	if err := r.attachItems(ctx, []*domain.Order{&o}); err != nil {
		return domain.Order{}, err
	}
	return o, nil
}

func (r *ordersRepo) ListOrdersByCustomer(ctx context.Context, customerID string) ([]domain.Order, error) {
	return r.listOrders(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE customer_id = ? ORDER BY created_at DESC`,
		customerID)
}

func (r *ordersRepo) ListOrdersByOutlet(ctx context.Context, outletID string) ([]domain.Order, error) {
	return r.listOrders(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE outlet_id = ? ORDER BY created_at DESC`,
		outletID)
}

func (r *ordersRepo) ListOrdersByAgent(ctx context.Context, agentID string) ([]domain.Order, error) {
	return r.listOrders(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE delivery_agent_id = ? ORDER BY created_at DESC`,
		agentID)
}

func (r *ordersRepo) listOrders(ctx context.Context, query string, args ...any) ([]domain.Order, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	refs := make([]*domain.Order, len(orders))
	for i := range orders {
		refs[i] = &orders[i]
	}
	if err := r.attachItems(ctx, refs); err != nil {
		return nil, err
	}
	return orders, nil
}

// attachItems loads items for the given orders in one query.
func (r *ordersRepo) attachItems(ctx context.Context, orders []*domain.Order) error {
	if len(orders) == 0 {
		return nil
	}

	byID := make(map[string]*domain.Order, len(orders))
	placeholders := make([]string, 0, len(orders))
	args := make([]any, 0, len(orders))
	for _, o := range orders {
		byID[o.ID] = o
		placeholders = append(placeholders, "?")
		args = append(args, o.ID)
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, order_id, product_id, product_name, product_price,
			product_image, quantity, subtotal, created_at
		FROM order_items
		WHERE order_id IN (`+strings.Join(placeholders, ", ")+`)
		ORDER BY created_at`, args...)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var item domain.OrderItem
		err := rows.Scan(&item.ID, &item.OrderID, &item.ProductID,
			&item.ProductName, &item.ProductPrice, &item.ProductImage,
			&item.Quantity, &item.Subtotal, &item.CreatedAt)
		if err != nil {
			return err
		}
		if o, ok := byID[item.OrderID]; ok {
			o.Items = append(o.Items, item)
		}
	}
	return rows.Err()
}

func (r *ordersRepo) UpdateOrder(ctx context.Context, id string, u domain.OrderUpdate) error {
	sets := []string{"updated_at = ?"}
	args := []any{time.Now().UTC()}

	if u.Status != nil {
		sets = append(sets, "status = ?")
		args = append(args, *u.Status)
	}
	if u.DeliveryAgentID != nil {
		sets = append(sets, "delivery_agent_id = ?")
		args = append(args, mapStringNull(*u.DeliveryAgentID))
	}

	args = append(args, id)
	res, err := r.db.ExecContext(ctx,
		`UPDATE orders SET `+strings.Join(sets, ", ")+` WHERE id = ?`, args...)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return store.ErrNotFound
	}
	return nil
}
