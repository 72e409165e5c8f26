package sqlite

import (
	"context"
	"strings"
	"time"

	"github.com/scooply/creamery/internal/platform/domain"
	"github.com/scooply/creamery/internal/platform/store"
)

type deliveryAgentsRepo struct {
	db dbtx
}

const agentColumns = `id, outlet_id, name, phone, email, is_active, created_by, created_at, updated_at`

func scanAgent(row interface{ Scan(...any) error }) (domain.DeliveryAgent, error) {
	var a domain.DeliveryAgent
	err := row.Scan(&a.ID, &a.OutletID, &a.Name, &a.Phone, &a.Email,
		&a.IsActive, &a.CreatedBy, &a.CreatedAt, &a.UpdatedAt)
	return a, err
}

func (r *deliveryAgentsRepo) CreateDeliveryAgent(ctx context.Context, a domain.DeliveryAgent) error {
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO delivery_agents (id, outlet_id, name, phone, email, is_active, created_by, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		a.ID, a.OutletID, a.Name, a.Phone, a.Email, a.IsActive, a.CreatedBy, now, now)
	return mapConstraint(err)
}

func (r *deliveryAgentsRepo) GetDeliveryAgentByID(ctx context.Context, id string) (domain.DeliveryAgent, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+agentColumns+` FROM delivery_agents WHERE id = ?`, id)

	a, err := scanAgent(row)
	if err != nil {
		return domain.DeliveryAgent{}, mapNotFound(err)
	}
	return a, nil
}

func (r *deliveryAgentsRepo) ListDeliveryAgents(ctx context.Context, outletID string) ([]domain.DeliveryAgent, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+agentColumns+` FROM delivery_agents WHERE outlet_id = ? ORDER BY created_at DESC`,
		outletID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var agents []domain.DeliveryAgent
	for rows.Next() {
		a, err := scanAgent(rows)
		if err != nil {
			return nil, err
		}
		agents = append(agents, a)
	}
	return agents, rows.Err()
}

func (r *deliveryAgentsRepo) ListDeliveryAgentsByEmail(ctx context.Context, email string) ([]domain.DeliveryAgent, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+agentColumns+` FROM delivery_agents WHERE email = ? ORDER BY created_at DESC`,
		email)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var agents []domain.DeliveryAgent
	for rows.Next() {
		a, err := scanAgent(rows)
		if err != nil {
			return nil, err
		}
		agents = append(agents, a)
	}
	return agents, rows.Err()
}

func (r *deliveryAgentsRepo) UpdateDeliveryAgent(ctx context.Context, id string, u domain.DeliveryAgentUpdate) error {
	sets := []string{"updated_at = ?"}
	args := []any{time.Now().UTC()}

	if u.Name != nil {
		sets = append(sets, "name = ?")
		args = append(args, *u.Name)
	}
	if u.Phone != nil {
		sets = append(sets, "phone = ?")
		args = append(args, *u.Phone)
	}
	if u.Email != nil {
		sets = append(sets, "email = ?")
		args = append(args, *u.Email)
	}
	if u.IsActive != nil {
		sets = append(sets, "is_active = ?")
		args = append(args, *u.IsActive)
	}

	args = append(args, id)
	res, err := r.db.ExecContext(ctx,
		`UPDATE delivery_agents SET `+strings.Join(sets, ", ")+` WHERE id = ?`, args...)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *deliveryAgentsRepo) DeleteDeliveryAgent(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM delivery_agents WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return store.ErrNotFound
	}
	return nil
}
