package jwtx

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims are the session claims the platform consumes. Sessions are minted
// by the external auth provider; we only verify and read them. Keeping the
// custom fields additive preserves compatibility with whatever else the
// provider stuffs into its tokens.
type Claims struct {
	jwt.RegisteredClaims

	// Email the provider verified for this user. Invitation acceptance
	// matches against this value.
	Email string `json:"email,omitempty"`

	// Name is the display name for the user.
	Name string `json:"name,omitempty"`
}

// ValidateExpiry checks exp against the current time.
func (c Claims) ValidateExpiry() error {
	if c.ExpiresAt == nil {
		return ErrInvalidClaim
	}
	if time.Now().After(c.ExpiresAt.Time) {
		return ErrExpired
	}
	return nil
}
