package app

import (
	"context"
	"io"
	"log/slog"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/aussiebroadwan/onboard/pkg/onboardsdk"
	"github.com/aussiebroadwan/onboard/pkg/sessionx"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) Config {
	t.Helper()
	dir := t.TempDir()
	return Config{
		Port:                 8080,
		Env:                  "test",
		LogLevel:             "error",
		LogFormat:            "text",
		StoreDriver:          StoreDriverMemory,
		DatabaseFile:         filepath.Join(dir, "onboard.db"),
		PepperFile:           filepath.Join(dir, "pepper"),
		SessionSecretFile:    filepath.Join(dir, "session.secret"),
		SessionTTL:           time.Hour,
		ShutdownGracePeriod:  time.Second,
		HousekeepingInterval: time.Hour,
	}
}

func discard() *slog.Logger { return slog.New(slog.NewTextHandler(io.Discard, nil)) }

func TestLoadConfigDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "ENV", "STORE_DRIVER", "SESSION_TTL", "SESSION_SECRET", "COOKIE_SECURE"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, 8080, cfg.Port)
	require.Equal(t, "dev", cfg.Env)
	require.Equal(t, StoreDriverMemory, cfg.StoreDriver)
	require.Equal(t, 24*time.Hour, cfg.SessionTTL)
	require.Equal(t, "session.secret", cfg.SessionSecretFile)
	require.Empty(t, cfg.SessionSecret)
	require.False(t, cfg.CookieSecure)
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("STORE_DRIVER", "sqlite")
	t.Setenv("SESSION_TTL", "30m")
	t.Setenv("COOKIE_SECURE", "true")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, 9090, cfg.Port)
	require.Equal(t, StoreDriverSQLite, cfg.StoreDriver)
	require.Equal(t, 30*time.Minute, cfg.SessionTTL)
	require.True(t, cfg.CookieSecure)
}

func TestLoadConfigRejects(t *testing.T) {
	t.Run("unknown driver", func(t *testing.T) {
		t.Setenv("STORE_DRIVER", "postgres")
		_, err := LoadConfig()
		require.ErrorContains(t, err, "STORE_DRIVER")
	})

	t.Run("bad duration", func(t *testing.T) {
		t.Setenv("SESSION_TTL", "forever")
		_, err := LoadConfig()
		require.ErrorContains(t, err, "parse env:")
	})

	t.Run("non-positive ttl", func(t *testing.T) {
		t.Setenv("SESSION_TTL", "0s")
		_, err := LoadConfig()
		require.ErrorContains(t, err, "SESSION_TTL")
	})
}

func TestSessionSecretBootstrap(t *testing.T) {
	cfg := testConfig(t)

	first, err := InitSessionCodec(cfg, discard())
	require.NoError(t, err)

	raw, err := os.ReadFile(cfg.SessionSecretFile)
	require.NoError(t, err)
	require.NotEmpty(t, raw)

	second, err := InitSessionCodec(cfg, discard())
	require.NoError(t, err)

	token, err := first.Issue("user", "session", time.Now().Add(time.Hour))
	require.NoError(t, err)
	_, err = second.Parse(token)
	require.NoError(t, err, "secret file must be reused across restarts")
}

func TestSessionSecretFromEnvRejectsWeak(t *testing.T) {
	cfg := testConfig(t)
	cfg.SessionSecret = "short"

	_, err := InitSessionCodec(cfg, discard())
	require.Error(t, err)

	_, statErr := os.Stat(cfg.SessionSecretFile)
	require.True(t, os.IsNotExist(statErr))
}

func TestSessionSecretFromEnvUsedVerbatim(t *testing.T) {
	cfg := testConfig(t)
	// 20 characters that also happen to be valid base64url (15 bytes decoded).
	cfg.SessionSecret = "abcdefghijklmnopqrst"

	codec, err := InitSessionCodec(cfg, discard())
	require.NoError(t, err)

	direct, err := sessionx.NewCodec([]byte(cfg.SessionSecret), sessionIssuer)
	require.NoError(t, err)
	token, err := direct.Issue("user", "session", time.Now().Add(time.Hour))
	require.NoError(t, err)

	_, err = codec.Parse(token)
	require.NoError(t, err)
}

func TestApplicationServesFlow(t *testing.T) {
	for _, driver := range []string{StoreDriverMemory, StoreDriverSQLite} {
		t.Run(driver, func(t *testing.T) {
			cfg := testConfig(t)
			cfg.StoreDriver = driver

			app, err := NewWithLogger(cfg, discard())
			require.NoError(t, err)
			t.Cleanup(func() { _ = app.db.Close() })

			srv := httptest.NewServer(app.Handler())
			t.Cleanup(srv.Close)

			ctx := context.Background()
			c, err := onboardsdk.NewClient(srv.URL)
			require.NoError(t, err)

			ready, err := c.GetReadiness(ctx)
			require.NoError(t, err)
			require.Equal(t, "ok", ready.Status)

			require.NoError(t, c.Signup(ctx, onboardsdk.SignupRequest{Username: "fox", Email: "fox@example.com", Password: "hunter2"}))
			require.NoError(t, c.SelectAvatar(ctx, "fox.png"))
			require.NoError(t, c.Personalize(ctx, []string{"music"}))

			me, err := c.Me(ctx)
			require.NoError(t, err)
			require.Equal(t, "fox.png", me.AvatarURL)
			require.Equal(t, []string{"music"}, me.Preferences)
		})
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := testConfig(t)
	cfg.StoreDriver = "redis"

	_, err := NewWithLogger(cfg, discard())
	require.Error(t, err)
}
