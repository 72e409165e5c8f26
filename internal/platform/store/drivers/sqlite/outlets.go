package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/scooply/creamery/internal/platform/domain"
	"github.com/scooply/creamery/internal/platform/store"
)

type outletsRepo struct {
	db dbtx
}

const outletColumns = `id, name, address, pincode, phone, latitude, longitude,
	delivery_radius_km, owner_id, is_active, created_at, updated_at`

func scanOutlet(row interface{ Scan(...any) error }) (domain.Outlet, error) {
	var (
		o        domain.Outlet
		lat, lon sql.NullFloat64
	)
	err := row.Scan(&o.ID, &o.Name, &o.Address, &o.Pincode, &o.Phone,
		&lat, &lon, &o.DeliveryRadiusKm, &o.OwnerID, &o.IsActive,
		&o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return domain.Outlet{}, err
	}
	o.Latitude = mapNullFloatPtr(lat)
	o.Longitude = mapNullFloatPtr(lon)
	return o, nil
}

func (r *outletsRepo) CreateOutlet(ctx context.Context, o domain.Outlet) error {
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO outlets (id, name, address, pincode, phone, latitude, longitude,
			delivery_radius_km, owner_id, is_active, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		o.ID, o.Name, o.Address, o.Pincode, o.Phone,
		mapOptionalFloat(o.Latitude), mapOptionalFloat(o.Longitude),
		o.DeliveryRadiusKm, o.OwnerID, o.IsActive, now, now)
	return mapConstraint(err)
}

func (r *outletsRepo) GetOutletByID(ctx context.Context, id string) (domain.Outlet, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+outletColumns+` FROM outlets WHERE id = ?`, id)

	o, err := scanOutlet(row)
	if err != nil {
		return domain.Outlet{}, mapNotFound(err)
	}
	return o, nil
}

func (r *outletsRepo) ListActiveOutlets(ctx context.Context) ([]domain.Outlet, error) {
	return r.listOutlets(ctx,
		`SELECT `+outletColumns+` FROM outlets WHERE is_active = 1 ORDER BY id`)
}

func (r *outletsRepo) ListOutletsByOwner(ctx context.Context, ownerID string) ([]domain.Outlet, error) {
	return r.listOutlets(ctx,
		`SELECT `+outletColumns+` FROM outlets WHERE owner_id = ? ORDER BY created_at DESC`,
		ownerID)
}

func (r *outletsRepo) ListOutletsAdministeredBy(ctx context.Context, userID string) ([]domain.Outlet, error) {
	return r.listOutlets(ctx, `
		SELECT o.id, o.name, o.address, o.pincode, o.phone, o.latitude, o.longitude,
			o.delivery_radius_km, o.owner_id, o.is_active, o.created_at, o.updated_at
		FROM outlet_admins a
		INNER JOIN outlets o ON o.id = a.outlet_id
		WHERE a.user_id = ?
		ORDER BY o.created_at DESC`, userID)
}

func (r *outletsRepo) listOutlets(ctx context.Context, query string, args ...any) ([]domain.Outlet, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var outlets []domain.Outlet
	for rows.Next() {
		o, err := scanOutlet(rows)
		if err != nil {
			return nil, err
		}
		outlets = append(outlets, o)
	}
	return outlets, rows.Err()
}

func (r *outletsRepo) UpdateOutlet(ctx context.Context, id string, u domain.OutletUpdate) error {
	sets := []string{"updated_at = ?"}
	args := []any{time.Now().UTC()}

	if u.Name != nil {
		sets = append(sets, "name = ?")
		args = append(args, *u.Name)
	}
	if u.Address != nil {
		sets = append(sets, "address = ?")
		args = append(args, *u.Address)
	}
	if u.Pincode != nil {
		sets = append(sets, "pincode = ?")
		args = append(args, *u.Pincode)
	}
	if u.Phone != nil {
		sets = append(sets, "phone = ?")
		args = append(args, *u.Phone)
	}
	if u.Latitude != nil {
		sets = append(sets, "latitude = ?")
		args = append(args, *u.Latitude)
	}
	if u.Longitude != nil {
		sets = append(sets, "longitude = ?")
		args = append(args, *u.Longitude)
	}
	if u.DeliveryRadiusKm != nil {
		sets = append(sets, "delivery_radius_km = ?")
		args = append(args, *u.DeliveryRadiusKm)
	}
	if u.IsActive != nil {
		sets = append(sets, "is_active = ?")
		args = append(args, *u.IsActive)
	}

	args = append(args, id)
	res, err := r.db.ExecContext(ctx,
		`UPDATE outlets SET `+strings.Join(sets, ", ")+` WHERE id = ?`, args...)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *outletsRepo) DeleteOutlet(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM outlets WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return store.ErrNotFound
	}
	return nil
}
