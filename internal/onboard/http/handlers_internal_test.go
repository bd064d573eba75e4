package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/aussiebroadwan/onboard/internal/onboard/domain"
	"github.com/aussiebroadwan/onboard/internal/onboard/service"
	"github.com/aussiebroadwan/onboard/internal/onboard/store"
	"github.com/aussiebroadwan/onboard/internal/onboard/store/drivers/memory"
	"github.com/aussiebroadwan/onboard/pkg/onboardsdk"
	"github.com/aussiebroadwan/onboard/pkg/sessionx"
	"github.com/stretchr/testify/require"
)

var errStoreDown = errors.New("store down")

// brokenSessions fails every session lookup.
type brokenSessions struct{ store.Sessions }

func (brokenSessions) GetSession(context.Context, string) (domain.Session, error) {
	return domain.Session{}, errStoreDown
}

type brokenStore struct{ store.Store }

func (b brokenStore) Sessions() store.Sessions { return brokenSessions{b.Store.Sessions()} }

func newManager(t *testing.T, st store.Store) *service.SessionManager {
	t.Helper()
	codec, err := sessionx.NewCodec([]byte("test-secret-0123456789abcdef"), "onboard")
	require.NoError(t, err)
	return &service.SessionManager{Store: st, Codec: codec, TTL: time.Hour}
}

func seedUser(t *testing.T, st store.Store) domain.User {
	t.Helper()
	now := time.Now().UTC()
	u := domain.User{
		ID:           "01HZZZZZZZZZZZZZZZZZZZZZZZ",
		Username:     "fox",
		Email:        "fox@example.com",
		PasswordHash: "not-a-real-hash",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	require.NoError(t, st.Users().CreateUser(context.Background(), u))
	return u
}

func TestAvatarSkipsStoreWriteForDeadSession(t *testing.T) {
	ctx := context.Background()
	st := memory.NewStore()
	sessions := newManager(t, st)
	u := seedUser(t, st)

	sess, _, err := sessions.Establish(ctx, u)
	require.NoError(t, err)

	// Logout lands after the middleware resolved the session.
	require.NoError(t, sessions.Clear(ctx, sess.ID))

	h := &AvatarHandler{Accounts: &service.AccountService{Store: st}, Sessions: sessions}
	req := httptest.NewRequest(http.MethodPost, "/api/avatar", strings.NewReader(`{"avatar_url":"fox.png"}`))
	req = req.WithContext(withSession(ctx, sess))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), onboardsdk.ErrorCodeNoActiveSession)

	stored, err := st.Users().GetUserByEmail(ctx, u.Email)
	require.NoError(t, err)
	require.Empty(t, stored.AvatarURL)
}

func TestLoadSessionKeepsCookieOnStoreFailure(t *testing.T) {
	ctx := context.Background()
	st := memory.NewStore()
	u := seedUser(t, st)

	_, token, err := newManager(t, st).Establish(ctx, u)
	require.NoError(t, err)

	broken := newManager(t, brokenStore{st})
	called := false
	h := LoadSession(broken, false)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		called = true
	}))

	req := httptest.NewRequest(http.MethodGet, "/dashboard.html", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: token})
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.False(t, called)
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Contains(t, rec.Body.String(), onboardsdk.ErrorCodeServerError)
	require.Empty(t, rec.Header().Values("Set-Cookie"))
}

func TestLoadSessionClearsRejectedCookie(t *testing.T) {
	st := memory.NewStore()
	h := LoadSession(newManager(t, st), false)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, ok := SessionFromContext(r.Context())
		require.False(t, ok)
		w.WriteHeader(http.StatusNoContent)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "not-a-token"})
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNoContent, rec.Code)
	require.Contains(t, rec.Header().Get("Set-Cookie"), "Max-Age=0")
}
