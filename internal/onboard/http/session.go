package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/aussiebroadwan/onboard/internal/onboard/domain"
	"github.com/aussiebroadwan/onboard/internal/onboard/service"
	"github.com/aussiebroadwan/onboard/pkg/httpx"
	"github.com/aussiebroadwan/onboard/pkg/onboardsdk"
	"github.com/aussiebroadwan/onboard/pkg/slogx"
)

// SessionCookieName names the cookie carrying the signed session token.
const SessionCookieName = "onboard_session"

type sessionCtxKey struct{}

func withSession(ctx context.Context, sess domain.Session) context.Context {
	ctx = context.WithValue(ctx, sessionCtxKey{}, sess)
	return httpx.ContextWithSession(ctx, sess.ID, sess.UserID)
}

// SessionFromContext returns the session resolved by LoadSession.
func SessionFromContext(ctx context.Context) (domain.Session, bool) {
	sess, ok := ctx.Value(sessionCtxKey{}).(domain.Session)
	return sess, ok
}

// LoadSession resolves the session cookie on every request. Requests without
// a valid session continue anonymously and a stale cookie is expired. Store
// failures answer 500 and leave the cookie in place.
func LoadSession(sessions *service.SessionManager, secure bool) httpx.Middleware {
	cookies := &cookieWriter{Secure: secure}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			c, err := r.Cookie(SessionCookieName)
			if err != nil || c.Value == "" {
				next.ServeHTTP(w, r)
				return
			}

			ctx := r.Context()
			sess, err := sessions.Current(ctx, c.Value)
			switch {
			case errors.Is(err, service.ErrNoActiveSession):
				cookies.Clear(w)
				next.ServeHTTP(w, r)
				return
			case err != nil:
				// The cookie may still be good; keep it for when the store is back.
				slogx.FromContext(ctx).Error("failed to resolve session", "err", err)
				onboardsdk.ErrServerError.WriteError(w)
				return
			}

			ctx = slogx.WithContext(ctx, slogx.FromContext(ctx).With("session_id", sess.ID))
			next.ServeHTTP(w, r.WithContext(withSession(ctx, sess)))
		})
	}
}

// cookieWriter sets and clears the session cookie.
type cookieWriter struct {
	Secure bool
}

func (c *cookieWriter) Set(w http.ResponseWriter, token string, expiresAt time.Time) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		MaxAge:   int(time.Until(expiresAt).Seconds()),
		HttpOnly: true,
		Secure:   c.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (c *cookieWriter) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   c.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// establish starts a fresh session for u, dropping any session the request
// already carried.
func establish(w http.ResponseWriter, r *http.Request, sessions *service.SessionManager, cookies *cookieWriter, u domain.User) error {
	ctx := r.Context()
	if prev, ok := SessionFromContext(ctx); ok {
		if err := sessions.Clear(ctx, prev.ID); err != nil {
			slogx.FromContext(ctx).Warn("failed to drop previous session", "err", err)
		}
	}

	sess, token, err := sessions.Establish(ctx, u)
	if err != nil {
		return err
	}
	cookies.Set(w, token, sess.ExpiresAt)
	return nil
}
