package httpx

import "context"

type ctxKey string

const (
	CtxKeyUserID    ctxKey = "user_id"
	CtxKeyUserEmail ctxKey = "user_email"
	CtxKeyUserName  ctxKey = "user_name"
	CtxKeyClaims    ctxKey = "claims" // full jwtx.Claims if a handler needs them
)

// UserIDFromCtx returns the authenticated user's id, or "" when the request
// went through no authn middleware.
func UserIDFromCtx(ctx context.Context) string {
	if v, ok := ctx.Value(CtxKeyUserID).(string); ok {
		return v
	}
	return ""
}

// UserEmailFromCtx returns the verified email for the authenticated user.
func UserEmailFromCtx(ctx context.Context) string {
	if v, ok := ctx.Value(CtxKeyUserEmail).(string); ok {
		return v
	}
	return ""
}

// UserNameFromCtx returns the display name for the authenticated user.
func UserNameFromCtx(ctx context.Context) string {
	if v, ok := ctx.Value(CtxKeyUserName).(string); ok {
		return v
	}
	return ""
}
