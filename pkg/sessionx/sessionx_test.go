package sessionx_test

import (
	"strings"
	"testing"
	"time"

	"github.com/aussiebroadwan/onboard/pkg/sessionx"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

var secret = []byte("0123456789abcdef0123456789abcdef")

func newCodec(t *testing.T, opts ...sessionx.Option) *sessionx.Codec {
	t.Helper()
	c, err := sessionx.NewCodec(secret, "onboard-test", opts...)
	require.NoError(t, err)
	return c
}

func TestNewCodecRejectsWeakSecret(t *testing.T) {
	_, err := sessionx.NewCodec([]byte("short"), "onboard")
	require.ErrorIs(t, err, sessionx.ErrWeakSecret)
}

func TestIssueAndParse(t *testing.T) {
	c := newCodec(t)

	token, err := c.Issue("user-1", "sess-1", time.Now().Add(time.Hour))
	require.NoError(t, err)

	claims, err := c.Parse(token)
	require.NoError(t, err)
	require.Equal(t, "user-1", claims.Subject)
	require.Equal(t, "sess-1", claims.SID)
	require.Equal(t, "onboard-test", claims.Issuer)
}

func TestIssueRequiresIdentifiers(t *testing.T) {
	c := newCodec(t)

	_, err := c.Issue("", "sess", time.Now().Add(time.Hour))
	require.ErrorIs(t, err, sessionx.ErrInvalidClaim)
	_, err = c.Issue("user", "", time.Now().Add(time.Hour))
	require.ErrorIs(t, err, sessionx.ErrInvalidClaim)
}

func TestParseFailures(t *testing.T) {
	c := newCodec(t)
	valid, err := c.Issue("user-1", "sess-1", time.Now().Add(time.Hour))
	require.NoError(t, err)

	t.Run("empty", func(t *testing.T) {
		_, err := c.Parse("")
		require.ErrorIs(t, err, sessionx.ErrMalformed)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := c.Parse("not.a.jwt")
		require.ErrorIs(t, err, sessionx.ErrMalformed)
	})

	t.Run("tampered signature", func(t *testing.T) {
		parts := strings.Split(valid, ".")
		sig := []byte(parts[2])
		if sig[0] == 'A' {
			sig[0] = 'B'
		} else {
			sig[0] = 'A'
		}
		_, err := c.Parse(parts[0] + "." + parts[1] + "." + string(sig))
		require.ErrorIs(t, err, sessionx.ErrInvalidSig)
	})

	t.Run("other secret", func(t *testing.T) {
		other, err := sessionx.NewCodec([]byte("ffffffffffffffffffffffffffffffff"), "onboard-test")
		require.NoError(t, err)
		_, err = other.Parse(valid)
		require.ErrorIs(t, err, sessionx.ErrInvalidSig)
	})

	t.Run("other issuer", func(t *testing.T) {
		other, err := sessionx.NewCodec(secret, "someone-else")
		require.NoError(t, err)
		_, err = other.Parse(valid)
		require.ErrorIs(t, err, sessionx.ErrIssuer)
	})

	t.Run("none algorithm", func(t *testing.T) {
		unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, sessionx.Claims{
			RegisteredClaims: jwt.RegisteredClaims{
				Issuer:    "onboard-test",
				Subject:   "user-1",
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
			SID: "sess-1",
		}).SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = c.Parse(unsigned)
		require.Error(t, err)
	})
}

func TestParseExpiry(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }
	c := newCodec(t, sessionx.WithClock(clock))

	token, err := c.Issue("user-1", "sess-1", now.Add(time.Minute))
	require.NoError(t, err)

	_, err = c.Parse(token)
	require.NoError(t, err)

	now = now.Add(2 * time.Minute)
	_, err = c.Parse(token)
	require.ErrorIs(t, err, sessionx.ErrExpired)

	lenient := newCodec(t, sessionx.WithClock(clock), sessionx.WithLeeway(5*time.Minute))
	_, err = lenient.Parse(token)
	require.NoError(t, err)
}
