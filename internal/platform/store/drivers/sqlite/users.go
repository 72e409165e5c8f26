package sqlite

import (
	"context"
	"time"

	"github.com/scooply/creamery/internal/platform/domain"
)

type usersRepo struct {
	db dbtx
}

func (r *usersRepo) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, email, image, created_at, updated_at
		FROM users WHERE id = ?`, id)

	var u domain.User
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.Image, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return u, nil
}

func (r *usersRepo) UpsertUser(ctx context.Context, u domain.User) error {
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO users (id, name, email, image, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			email = excluded.email,
			image = excluded.image,
			updated_at = excluded.updated_at`,
		u.ID, u.Name, u.Email, u.Image, now, now)
	return err
}
