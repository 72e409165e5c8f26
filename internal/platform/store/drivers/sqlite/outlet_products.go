package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/scooply/creamery/internal/platform/domain"
	"github.com/scooply/creamery/internal/platform/store"
)

type outletProductsRepo struct {
	db dbtx
}

func (r *outletProductsRepo) UpsertOutletProduct(ctx context.Context, op domain.OutletProduct) error {
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO outlet_products (id, outlet_id, product_id, is_available, custom_price, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (outlet_id, product_id) DO UPDATE SET
			is_available = excluded.is_available,
			custom_price = excluded.custom_price,
			updated_at   = excluded.updated_at`,
		op.ID, op.OutletID, op.ProductID, op.IsAvailable,
		mapOptionalFloat(op.CustomPrice), now, now)
	return err
}

func (r *outletProductsRepo) ListMenu(ctx context.Context, outletID string) ([]domain.MenuItem, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT p.id, p.name, p.description, p.base_price, p.category, p.image_url,
			p.is_active, p.created_by, p.created_at, p.updated_at,
			op.is_available, op.custom_price
		FROM outlet_products op
		JOIN products p ON p.id = op.product_id
		WHERE op.outlet_id = ? AND op.is_available = 1 AND p.is_active = 1
		ORDER BY p.category, p.name`, outletID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.MenuItem
	for rows.Next() {
		var item domain.MenuItem
		var customPrice sql.NullFloat64
		err := rows.Scan(&item.ID, &item.Name, &item.Description, &item.BasePrice,
			&item.Category, &item.ImageURL, &item.Product.IsActive, &item.CreatedBy,
			&item.CreatedAt, &item.UpdatedAt, &item.IsAvailable, &customPrice)
		if err != nil {
			return nil, err
		}

		item.Price = item.BasePrice
		if customPrice.Valid {
			item.Price = customPrice.Float64
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *outletProductsRepo) DeleteOutletProduct(ctx context.Context, outletID, productID string) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM outlet_products WHERE outlet_id = ? AND product_id = ?`,
		outletID, productID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return store.ErrNotFound
	}
	return nil
}
