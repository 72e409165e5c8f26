package domain

import "time"

// User mirrors the profile the external auth provider holds. Rows are
// upserted from verified session claims the first time a user touches the
// platform; we never store credentials.
type User struct {
	ID        string
	Name      string
	Email     string
	Image     string // optional avatar URL
	CreatedAt time.Time
	UpdatedAt time.Time
}
