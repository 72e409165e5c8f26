package service

import (
	"context"
	"errors"
	"log/slog"
	"net/mail"
	"strings"
	"time"

	"github.com/scooply/creamery/internal/platform/domain"
	platformmail "github.com/scooply/creamery/internal/platform/mail"
	"github.com/scooply/creamery/internal/platform/store"
	"github.com/scooply/creamery/pkg/cryptox"
	"github.com/scooply/creamery/pkg/idx"
	"github.com/scooply/creamery/pkg/slogx"
)

var (
	ErrInvalidInviteEmail        = errors.New("invalid invitation email")
	ErrInvitationNotFound        = errors.New("invitation not found")
	ErrInvitationExpired         = errors.New("invitation has expired")
	ErrInvitationAlreadyAccepted = errors.New("invitation already accepted")
	ErrEmailMismatch             = errors.New("invitation was sent to a different email address")
	ErrAlreadyAdmin              = errors.New("user is already an admin for this outlet")
)

// InviteService manages the outlet-admin invitation lifecycle: issue,
// accept, cancel. Only outlet owners may issue or cancel; holding an
// admin grant is not enough.
type InviteService struct {
	Store  store.Store
	Mailer platformmail.Mailer

	// AppBaseURL prefixes the accept link placed in invite emails,
	// e.g. "https://creamery.example".
	AppBaseURL string
}

// Issue creates a pending invitation for email on the outlet and sends
// the invite email best effort. The raw token only ever leaves in that
// email; the store holds its fingerprint.
func (s *InviteService) Issue(ctx context.Context, outletID, email, inviterID, inviterName string) (domain.Invitation, error) {
	log := slogx.FromContext(ctx)

	// 1. Validate the target address.
	email = strings.TrimSpace(strings.ToLower(email))
	if _, err := mail.ParseAddress(email); err != nil {
		return domain.Invitation{}, ErrInvalidInviteEmail
	}

	// 2. Only the outlet's owner may invite admins.
	outlet, err := s.Store.Outlets().GetOutletByID(ctx, outletID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Invitation{}, ErrOutletNotFound
		}
		log.Error("failed to fetch outlet", slog.Any("error", err))
		return domain.Invitation{}, err
	}
	if outlet.OwnerID != inviterID {
		log.Warn("non-owner attempted to issue invitation",
			slog.String("outlet_id", outletID),
			slog.String("caller_id", inviterID),
		)
		return domain.Invitation{}, ErrForbidden
	}

	// 3. Generate and fingerprint the opaque token.
	token, err := cryptox.GenerateToken(cryptox.TokenSize256)
	if err != nil {
		log.Error("failed to generate invitation token", slog.Any("error", err))
		return domain.Invitation{}, err
	}

	now := time.Now().UTC()
	inv := domain.Invitation{
		ID:        idx.New().String(),
		Email:     email,
		OutletID:  outletID,
		InvitedBy: inviterID,
		Role:      domain.RoleAdmin,
		TokenHash: cryptox.FingerprintToken(token),
		Status:    domain.InvitationPending,
		ExpiresAt: now.Add(domain.InvitationTTL),
		CreatedAt: now,
	}

	// 4. Persist the invitation. This is the durable step; email is not.
	if err := s.Store.Invitations().CreateInvitation(ctx, inv); err != nil {
		log.Error("failed to create invitation",
			slog.String("outlet_id", outletID),
			slog.Any("error", err),
		)
		return domain.Invitation{}, err
	}

	// 5. Notify best effort. A failed send leaves the invitation
	// acceptable via direct link, so log and move on.
	err = s.Mailer.SendInvitation(ctx, platformmail.Invitation{
		To:          email,
		OutletName:  outlet.Name,
		InviterName: inviterName,
		AcceptURL:   s.AppBaseURL + "/accept-invite?token=" + token,
	})
	if err != nil {
		log.Warn("failed to send invitation email",
			slog.String("invitation_id", inv.ID),
			slog.Any("error", err),
		)
	}

	log.Info("invitation issued",
		slog.String("invitation_id", inv.ID),
		slog.String("outlet_id", outletID),
	)
	return inv, nil
}

// Accept consumes a pending invitation token on behalf of the
// authenticated user, granting them the invitation's role on the outlet.
// Checks run in a fixed order so each failure mode maps to one error:
// unknown token, expiry, replay, wrong account, duplicate grant.
func (s *InviteService) Accept(ctx context.Context, token string, user domain.User) (domain.OutletAdmin, error) {
	log := slogx.FromContext(ctx)

	// 1. Look up by fingerprint. Unknown tokens and cancelled
	// invitations are indistinguishable here, both are NotFound.
	inv, err := s.Store.Invitations().GetInvitationByTokenHash(ctx, cryptox.FingerprintToken(token))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.OutletAdmin{}, ErrInvitationNotFound
		}
		log.Error("failed to fetch invitation", slog.Any("error", err))
		return domain.OutletAdmin{}, err
	}

	// 2. Expiry is enforced lazily here, not by a store sweep.
	now := time.Now().UTC()
	if inv.Expired(now) {
		return domain.OutletAdmin{}, ErrInvitationExpired
	}

	// 3. Single use.
	if inv.Status == domain.InvitationAccepted {
		return domain.OutletAdmin{}, ErrInvitationAlreadyAccepted
	}

	// 4. The token must be consumed by the invited address.
	if !strings.EqualFold(user.Email, inv.Email) {
		log.Warn("invitation email mismatch",
			slog.String("invitation_id", inv.ID),
			slog.String("user_id", user.ID),
		)
		return domain.OutletAdmin{}, ErrEmailMismatch
	}

	// 5. Duplicate-grant guard.
	_, err = s.Store.OutletAdmins().GetOutletAdmin(ctx, inv.OutletID, user.ID)
	if err == nil {
		return domain.OutletAdmin{}, ErrAlreadyAdmin
	}
	if !errors.Is(err, store.ErrNotFound) {
		log.Error("failed to check existing admin grant", slog.Any("error", err))
		return domain.OutletAdmin{}, err
	}

	grant := domain.OutletAdmin{
		ID:       idx.New().String(),
		OutletID: inv.OutletID,
		UserID:   user.ID,
		Role:     inv.Role,
	}

	// 6. Grant and mark accepted atomically. The UNIQUE(outlet_id,
	// user_id) index and the status-guarded update close the race
	// between two concurrent accepts of the same token.
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Users().UpsertUser(ctx, user); err != nil {
			return err
		}
		if err := tx.OutletAdmins().CreateOutletAdmin(ctx, grant); err != nil {
			if errors.Is(err, store.ErrAlreadyExists) {
				return ErrAlreadyAdmin
			}
			return err
		}
		if err := tx.Invitations().MarkInvitationAccepted(ctx, inv.ID, now); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrInvitationAlreadyAccepted
			}
			return err
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrAlreadyAdmin) || errors.Is(err, ErrInvitationAlreadyAccepted) {
			return domain.OutletAdmin{}, err
		}
		log.Error("failed to accept invitation",
			slog.String("invitation_id", inv.ID),
			slog.Any("error", err),
		)
		return domain.OutletAdmin{}, err
	}

	log.Info("invitation accepted",
		slog.String("invitation_id", inv.ID),
		slog.String("outlet_id", inv.OutletID),
		slog.String("user_id", user.ID),
	)
	return grant, nil
}

// Cancel removes a pending invitation. Accepted invitations are kept as
// the audit trail for the grant, so cancelling one reports NotFound.
func (s *InviteService) Cancel(ctx context.Context, outletID, invitationID, callerID string) error {
	log := slogx.FromContext(ctx)

	inv, err := s.Store.Invitations().GetInvitationByID(ctx, invitationID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrInvitationNotFound
		}
		log.Error("failed to fetch invitation", slog.Any("error", err))
		return err
	}
	if inv.OutletID != outletID || inv.Status != domain.InvitationPending {
		return ErrInvitationNotFound
	}

	outlet, err := s.Store.Outlets().GetOutletByID(ctx, inv.OutletID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrInvitationNotFound
		}
		log.Error("failed to fetch outlet", slog.Any("error", err))
		return err
	}
	if outlet.OwnerID != callerID {
		log.Warn("non-owner attempted to cancel invitation",
			slog.String("invitation_id", invitationID),
			slog.String("caller_id", callerID),
		)
		return ErrForbidden
	}

	if err := s.Store.Invitations().DeleteInvitation(ctx, invitationID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrInvitationNotFound
		}
		log.Error("failed to delete invitation", slog.Any("error", err))
		return err
	}

	log.Info("invitation cancelled",
		slog.String("invitation_id", invitationID),
		slog.String("outlet_id", outletID),
	)
	return nil
}

// ListPending returns an outlet's open invitations, owner only.
func (s *InviteService) ListPending(ctx context.Context, outletID, callerID string) ([]domain.Invitation, error) {
	outlet, err := s.Store.Outlets().GetOutletByID(ctx, outletID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrOutletNotFound
		}
		return nil, err
	}
	if outlet.OwnerID != callerID {
		return nil, ErrForbidden
	}
	return s.Store.Invitations().ListPendingInvitations(ctx, outletID)
}
