package httpx_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/aussiebroadwan/onboard/pkg/httpx"
	"github.com/stretchr/testify/require"
)

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
})

func TestIPKeyExtractor(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
		want    string
	}{
		{"remote addr", nil, "192.168.1.1"},
		{"forwarded for wins", map[string]string{"X-Forwarded-For": "203.0.113.1, 192.168.1.1"}, "203.0.113.1"},
		{"real ip fallback", map[string]string{"X-Real-IP": "203.0.113.2"}, "203.0.113.2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = "192.168.1.1:12345"
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			require.Equal(t, tt.want, httpx.IPKeyExtractor(req))
		})
	}
}

func TestJSONFieldKeyExtractor(t *testing.T) {
	t.Run("extracts and normalises field", func(t *testing.T) {
		body := `{"email":"  Alice@Example.com ","password":"pw"}`
		req := httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader(body))

		key := httpx.JSONFieldKeyExtractor("email")(req)
		require.Equal(t, "alice@example.com", key)

		// Body must still be readable by the handler.
		rest, err := io.ReadAll(req.Body)
		require.NoError(t, err)
		require.Equal(t, body, string(rest))
	})

	t.Run("missing field", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"password":"pw"}`))
		require.Empty(t, httpx.JSONFieldKeyExtractor("email")(req))
	})

	t.Run("non-string field", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"email":42}`))
		require.Empty(t, httpx.JSONFieldKeyExtractor("email")(req))
	})

	t.Run("invalid json", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{nope`))
		require.Empty(t, httpx.JSONFieldKeyExtractor("email")(req))
	})
}

func TestSessionKeyExtractor(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	require.Empty(t, httpx.SessionKeyExtractor(req))

	ctx := httpx.ContextWithSession(req.Context(), "sess-1", "user-1")
	require.Equal(t, "sess-1", httpx.SessionKeyExtractor(req.WithContext(ctx)))
}

func TestCompositeKeyExtractor(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"email":"bob@example.com"}`))
	req.RemoteAddr = "192.168.1.1:12345"

	extractor := httpx.CompositeKeyExtractor(":",
		httpx.IPKeyExtractor,
		httpx.JSONFieldKeyExtractor("email"),
		httpx.SessionKeyExtractor, // empty, skipped
	)
	require.Equal(t, "192.168.1.1:bob@example.com", extractor(req))
}

func TestRateLimitMiddleware(t *testing.T) {
	config := httpx.RateLimitConfig{RequestsPerWindow: 3, Window: time.Minute, Burst: 3}

	t.Run("blocks requests over limit", func(t *testing.T) {
		limited := httpx.RateLimitMiddleware(config, httpx.IPKeyExtractor)(okHandler)

		for i := range 3 {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = "192.168.1.1:12345"
			rec := httptest.NewRecorder()
			limited.ServeHTTP(rec, req)
			require.Equal(t, http.StatusOK, rec.Code, "request %d should succeed", i+1)
		}

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "192.168.1.1:12345"
		rec := httptest.NewRecorder()
		limited.ServeHTTP(rec, req)

		require.Equal(t, http.StatusTooManyRequests, rec.Code)
		require.NotEmpty(t, rec.Header().Get("Retry-After"))
		require.Equal(t, "3", rec.Header().Get("X-RateLimit-Limit"))
		require.Equal(t, "1m0s", rec.Header().Get("X-RateLimit-Window"))
		require.Contains(t, rec.Body.String(), "rate_limit_exceeded")
	})

	t.Run("keys are tracked separately", func(t *testing.T) {
		limited := httpx.RateLimitMiddleware(
			httpx.RateLimitConfig{RequestsPerWindow: 1, Window: time.Minute, Burst: 1},
			httpx.IPKeyExtractor,
		)(okHandler)

		for _, addr := range []string{"10.0.0.1:1", "10.0.0.2:1"} {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = addr
			rec := httptest.NewRecorder()
			limited.ServeHTTP(rec, req)
			require.Equal(t, http.StatusOK, rec.Code)
		}
	})

	t.Run("empty key is allowed through", func(t *testing.T) {
		limited := httpx.RateLimitMiddleware(
			httpx.RateLimitConfig{RequestsPerWindow: 1, Window: time.Minute, Burst: 1},
			func(*http.Request) string { return "" },
		)(okHandler)

		for range 3 {
			rec := httptest.NewRecorder()
			limited.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
			require.Equal(t, http.StatusOK, rec.Code)
		}
	})
}

func TestRateLimitByIPAndJSONField(t *testing.T) {
	config := httpx.RateLimitConfig{RequestsPerWindow: 2, Window: time.Minute, Burst: 2}
	limited := httpx.RateLimitByIPAndJSONField(config, "email")(okHandler)

	send := func(email string) int {
		req := httptest.NewRequest(http.MethodPost, "/api/login",
			strings.NewReader(`{"email":"`+email+`","password":"x"}`))
		req.RemoteAddr = "192.168.1.1:12345"
		rec := httptest.NewRecorder()
		limited.ServeHTTP(rec, req)
		return rec.Code
	}

	require.Equal(t, http.StatusOK, send("alice@example.com"))
	require.Equal(t, http.StatusOK, send("alice@example.com"))
	require.Equal(t, http.StatusTooManyRequests, send("alice@example.com"))
	require.Equal(t, http.StatusOK, send("bob@example.com"))
}

func TestRateLimitBySession(t *testing.T) {
	config := httpx.RateLimitConfig{RequestsPerWindow: 1, Window: time.Minute, Burst: 1}
	limited := httpx.RateLimitBySession(config)(okHandler)

	send := func(sid string) int {
		req := httptest.NewRequest(http.MethodPost, "/api/avatar", nil)
		req.RemoteAddr = "192.168.1.1:12345"
		req = req.WithContext(httpx.ContextWithSession(context.Background(), sid, "u"))
		rec := httptest.NewRecorder()
		limited.ServeHTTP(rec, req)
		return rec.Code
	}

	require.Equal(t, http.StatusOK, send("s1"))
	require.Equal(t, http.StatusTooManyRequests, send("s1"))
	require.Equal(t, http.StatusOK, send("s2"))
}

func TestRateLimitProfiles(t *testing.T) {
	require.Less(t, httpx.StrictLimit.RequestsPerWindow, httpx.ModerateLimit.RequestsPerWindow)
	require.Less(t, httpx.ModerateLimit.RequestsPerWindow, httpx.LenientLimit.RequestsPerWindow)
	require.Less(t, httpx.LenientLimit.RequestsPerWindow, httpx.PublicLimit.RequestsPerWindow)
}

func TestParseRateLimitFromEnv(t *testing.T) {
	defaults := httpx.RateLimitConfig{RequestsPerWindow: 10, Window: time.Minute, Burst: 10}

	t.Run("no overrides", func(t *testing.T) {
		require.Equal(t, defaults, httpx.ParseRateLimitFromEnv("ONBOARD_TEST", defaults))
	})

	t.Run("all overrides", func(t *testing.T) {
		t.Setenv("RATELIMIT_ONBOARD_TEST_REQUESTS", "200")
		t.Setenv("RATELIMIT_ONBOARD_TEST_WINDOW_SEC", "30")
		t.Setenv("RATELIMIT_ONBOARD_TEST_BURST", "250")

		got := httpx.ParseRateLimitFromEnv("ONBOARD_TEST", defaults)
		require.Equal(t, httpx.RateLimitConfig{RequestsPerWindow: 200, Window: 30 * time.Second, Burst: 250}, got)
	})

	t.Run("invalid values ignored", func(t *testing.T) {
		t.Setenv("RATELIMIT_ONBOARD_TEST_REQUESTS", "lots")
		t.Setenv("RATELIMIT_ONBOARD_TEST_WINDOW_SEC", "-10")
		t.Setenv("RATELIMIT_ONBOARD_TEST_BURST", "0")

		require.Equal(t, defaults, httpx.ParseRateLimitFromEnv("ONBOARD_TEST", defaults))
	})
}
