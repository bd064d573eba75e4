package httpx

import "context"

type ctxKey string

const (
	CtxKeyUserID    ctxKey = "user_id"
	CtxKeySessionID ctxKey = "session_id"
)

// ContextWithSession records the authenticated session on the context so
// downstream middleware (rate limiting, page guards) can key off it.
func ContextWithSession(ctx context.Context, sessionID, userID string) context.Context {
	ctx = context.WithValue(ctx, CtxKeySessionID, sessionID)
	ctx = context.WithValue(ctx, CtxKeyUserID, userID)
	return ctx
}

// SessionIDFromContext returns the session id placed by ContextWithSession.
func SessionIDFromContext(ctx context.Context) (string, bool) {
	sid, ok := ctx.Value(CtxKeySessionID).(string)
	return sid, ok && sid != ""
}
