package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/scooply/creamery/internal/platform/domain"
	"github.com/scooply/creamery/internal/platform/store"
)

type invitationsRepo struct {
	db dbtx
}

const invitationColumns = `id, email, outlet_id, invited_by, role, token_hash,
	status, expires_at, created_at, accepted_at`

func scanInvitation(row interface{ Scan(...any) error }) (domain.Invitation, error) {
	var (
		inv        domain.Invitation
		acceptedAt sql.NullTime
	)
	err := row.Scan(&inv.ID, &inv.Email, &inv.OutletID, &inv.InvitedBy, &inv.Role,
		&inv.TokenHash, &inv.Status, &inv.ExpiresAt, &inv.CreatedAt, &acceptedAt)
	if err != nil {
		return domain.Invitation{}, err
	}
	inv.AcceptedAt = mapNullTimePtr(acceptedAt)
	return inv, nil
}

func (r *invitationsRepo) CreateInvitation(ctx context.Context, inv domain.Invitation) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO invitations (id, email, outlet_id, invited_by, role, token_hash,
			status, expires_at, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		inv.ID, inv.Email, inv.OutletID, inv.InvitedBy, inv.Role, inv.TokenHash,
		inv.Status, inv.ExpiresAt.UTC(), time.Now().UTC())
	return mapConstraint(err)
}

func (r *invitationsRepo) GetInvitationByTokenHash(ctx context.Context, hash string) (domain.Invitation, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+invitationColumns+` FROM invitations WHERE token_hash = ?`, hash)

	inv, err := scanInvitation(row)
	if err != nil {
		return domain.Invitation{}, mapNotFound(err)
	}
	return inv, nil
}

func (r *invitationsRepo) GetInvitationByID(ctx context.Context, id string) (domain.Invitation, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+invitationColumns+` FROM invitations WHERE id = ?`, id)

	inv, err := scanInvitation(row)
	if err != nil {
		return domain.Invitation{}, mapNotFound(err)
	}
	return inv, nil
}

func (r *invitationsRepo) ListPendingInvitations(ctx context.Context, outletID string) ([]domain.Invitation, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+invitationColumns+` FROM invitations
		WHERE outlet_id = ? AND status = ?
		ORDER BY created_at DESC`,
		outletID, domain.InvitationPending)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var invitations []domain.Invitation
	for rows.Next() {
		inv, err := scanInvitation(rows)
		if err != nil {
			return nil, err
		}
		invitations = append(invitations, inv)
	}
	return invitations, rows.Err()
}

func (r *invitationsRepo) MarkInvitationAccepted(ctx context.Context, id string, acceptedAt time.Time) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE invitations SET status = ?, accepted_at = ?
		WHERE id = ? AND status = ?`,
		domain.InvitationAccepted, acceptedAt.UTC(), id, domain.InvitationPending)
	if err != nil {
		return err
	}
	// Guarded update: a concurrent accept that got there first leaves no
	// pending row to flip.
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *invitationsRepo) DeleteInvitation(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM invitations WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *invitationsRepo) DeleteExpiredInvitations(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM invitations WHERE status = ? AND expires_at < ?`,
		domain.InvitationPending, time.Now().UTC())
	return err
}
