package domain

import "time"

// Invitation statuses. Expiry is not a stored status: it is enforced
// lazily against ExpiresAt whenever acceptance is attempted, so a pending
// row may sit past its expiry until housekeeping removes it.
const (
	InvitationPending  = "pending"
	InvitationAccepted = "accepted"
)

// RoleAdmin is the default role an invitation grants.
const RoleAdmin = "admin"

// InvitationTTL is how long an invitation stays acceptable.
const InvitationTTL = 7 * 24 * time.Hour

// Invitation is a single-use, time-limited grant of an outlet role to a
// named email address. TokenHash is the SHA-256 fingerprint of the opaque
// token; the raw token only ever travels in the invite email.
type Invitation struct {
	ID         string
	Email      string
	OutletID   string
	InvitedBy  string
	Role       string
	TokenHash  string
	Status     string
	ExpiresAt  time.Time
	CreatedAt  time.Time
	AcceptedAt *time.Time
}

// Expired reports whether the invitation is past its expiry at the given
// instant.
func (i Invitation) Expired(now time.Time) bool {
	return now.After(i.ExpiresAt)
}
