// Package service holds the business rules: the service-area resolver,
// the invitation lifecycle, and the outlet/catalogue/order operations.
// Services are stateless; all state lives in the store.
package service

import "errors"

// Sentinels shared across services. Operation-specific ones live next to
// the service that raises them.
var (
	// ErrForbidden means the caller is authenticated but lacks the
	// required role for the target resource.
	ErrForbidden = errors.New("forbidden")
)
