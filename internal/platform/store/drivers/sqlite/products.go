package sqlite

import (
	"context"
	"strings"
	"time"

	"github.com/scooply/creamery/internal/platform/domain"
	"github.com/scooply/creamery/internal/platform/store"
)

type productsRepo struct {
	db dbtx
}

const productColumns = `id, name, description, base_price, category, image_url,
	is_active, created_by, created_at, updated_at`

func scanProduct(row interface{ Scan(...any) error }) (domain.Product, error) {
	var p domain.Product
	err := row.Scan(&p.ID, &p.Name, &p.Description, &p.BasePrice, &p.Category,
		&p.ImageURL, &p.IsActive, &p.CreatedBy, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}

func (r *productsRepo) CreateProduct(ctx context.Context, p domain.Product) error {
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO products (id, name, description, base_price, category, image_url,
			is_active, created_by, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.Name, p.Description, p.BasePrice, p.Category, p.ImageURL,
		p.IsActive, p.CreatedBy, now, now)
	return mapConstraint(err)
}

func (r *productsRepo) GetProductByID(ctx context.Context, id string) (domain.Product, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+productColumns+` FROM products WHERE id = ?`, id)

	p, err := scanProduct(row)
	if err != nil {
		return domain.Product{}, mapNotFound(err)
	}
	return p, nil
}

func (r *productsRepo) ListProducts(ctx context.Context, includeInactive bool) ([]domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products`
	if !includeInactive {
		query += ` WHERE is_active = 1`
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *productsRepo) UpdateProduct(ctx context.Context, id string, u domain.ProductUpdate) error {
	sets := []string{"updated_at = ?"}
	args := []any{time.Now().UTC()}

	if u.Name != nil {
		sets = append(sets, "name = ?")
		args = append(args, *u.Name)
	}
	if u.Description != nil {
		sets = append(sets, "description = ?")
		args = append(args, *u.Description)
	}
	if u.BasePrice != nil {
		sets = append(sets, "base_price = ?")
		args = append(args, *u.BasePrice)
	}
	if u.Category != nil {
		sets = append(sets, "category = ?")
		args = append(args, *u.Category)
	}
	if u.ImageURL != nil {
		sets = append(sets, "image_url = ?")
		args = append(args, *u.ImageURL)
	}
	if u.IsActive != nil {
		sets = append(sets, "is_active = ?")
		args = append(args, *u.IsActive)
	}

	args = append(args, id)
	res, err := r.db.ExecContext(ctx,
		`UPDATE products SET `+strings.Join(sets, ", ")+` WHERE id = ?`, args...)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *productsRepo) DeleteProduct(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return store.ErrNotFound
	}
	return nil
}
