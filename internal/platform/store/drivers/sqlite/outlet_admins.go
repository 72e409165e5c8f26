package sqlite

import (
	"context"
	"time"

	"github.com/scooply/creamery/internal/platform/domain"
	"github.com/scooply/creamery/internal/platform/store"
)

type outletAdminsRepo struct {
	db dbtx
}

func (r *outletAdminsRepo) CreateOutletAdmin(ctx context.Context, a domain.OutletAdmin) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO outlet_admins (id, outlet_id, user_id, role, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		a.ID, a.OutletID, a.UserID, a.Role, time.Now().UTC())
	return mapConstraint(err)
}

func (r *outletAdminsRepo) GetOutletAdmin(ctx context.Context, outletID, userID string) (domain.OutletAdmin, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, outlet_id, user_id, role, created_at
		FROM outlet_admins WHERE outlet_id = ? AND user_id = ?`,
		outletID, userID)

	var a domain.OutletAdmin
	err := row.Scan(&a.ID, &a.OutletID, &a.UserID, &a.Role, &a.CreatedAt)
	if err != nil {
		return domain.OutletAdmin{}, mapNotFound(err)
	}
	return a, nil
}

func (r *outletAdminsRepo) ListOutletAdmins(ctx context.Context, outletID string) ([]domain.OutletAdminInfo, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT a.id, a.outlet_id, a.user_id, a.role, a.created_at,
			u.id, u.name, u.email, u.image, u.created_at, u.updated_at
		FROM outlet_admins a
		INNER JOIN users u ON u.id = a.user_id
		WHERE a.outlet_id = ?
		ORDER BY a.created_at`, outletID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var admins []domain.OutletAdminInfo
	for rows.Next() {
		var info domain.OutletAdminInfo
		err := rows.Scan(&info.ID, &info.OutletID, &info.UserID, &info.Role, &info.CreatedAt,
			&info.User.ID, &info.User.Name, &info.User.Email, &info.User.Image,
			&info.User.CreatedAt, &info.User.UpdatedAt)
		if err != nil {
			return nil, err
		}
		admins = append(admins, info)
	}
	return admins, rows.Err()
}

func (r *outletAdminsRepo) DeleteOutletAdmin(ctx context.Context, outletID, userID string) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM outlet_admins WHERE outlet_id = ? AND user_id = ?`,
		outletID, userID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return store.ErrNotFound
	}
	return nil
}
