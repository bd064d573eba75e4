// Package sessionx signs and verifies the opaque session tokens stored in
// the browser cookie. A token only names a server-side session; it carries
// no profile data.
package sessionx

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// MinSecretBytes is the shortest signing secret NewCodec accepts.
const MinSecretBytes = 16

var (
	ErrWeakSecret   = errors.New("sessionx: signing secret too short")
	ErrMalformed    = errors.New("sessionx: malformed token")
	ErrInvalidSig   = errors.New("sessionx: invalid signature")
	ErrExpired      = errors.New("sessionx: token expired")
	ErrNotYetValid  = errors.New("sessionx: token not yet valid")
	ErrIssuer       = errors.New("sessionx: issuer mismatch")
	ErrInvalidClaim = errors.New("sessionx: invalid claims")
)

// Claims identify the session (sid) and its owner (sub).
type Claims struct {
	jwt.RegisteredClaims

	SID string `json:"sid"`
}

// Codec issues and parses HS256 session tokens.
type Codec struct {
	secret []byte
	issuer string
	leeway time.Duration
	now    func() time.Time
}

// Option customises a Codec.
type Option func(*Codec)

// WithLeeway allows small clock skew when validating exp/nbf.
func WithLeeway(d time.Duration) Option {
	return func(c *Codec) { c.leeway = d }
}

// WithClock replaces time.Now, mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(c *Codec) { c.now = now }
}

// NewCodec builds a codec that signs with secret and stamps issuer on
// every token.
func NewCodec(secret []byte, issuer string, opts ...Option) (*Codec, error) {
	if len(secret) < MinSecretBytes {
		return nil, fmt.Errorf("%w: got %d bytes, need %d", ErrWeakSecret, len(secret), MinSecretBytes)
	}

	c := &Codec{
		secret: append([]byte(nil), secret...),
		issuer: issuer,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Issue signs a token for session sid owned by subject, valid until expiresAt.
func (c *Codec) Issue(subject, sid string, expiresAt time.Time) (string, error) {
	if subject == "" || sid == "" {
		return "", ErrInvalidClaim
	}

	now := c.now().UTC()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    c.issuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			ID:        sid,
		},
		SID: sid,
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
}

// Parse verifies signature, issuer and expiry and returns the claims.
func (c *Codec) Parse(token string) (Claims, error) {
	if token == "" {
		return Claims{}, ErrMalformed
	}

	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(c.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(c.leeway),
		jwt.WithTimeFunc(c.now),
	)

	var claims Claims
	_, err := parser.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return c.secret, nil
	})
	if err != nil {
		return Claims{}, mapError(err)
	}

	if claims.SID == "" || claims.Subject == "" {
		return Claims{}, ErrInvalidClaim
	}
	return claims, nil
}

func mapError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return ErrExpired
	case errors.Is(err, jwt.ErrTokenNotValidYet):
		return ErrNotYetValid
	case errors.Is(err, jwt.ErrTokenInvalidIssuer):
		return ErrIssuer
	case errors.Is(err, jwt.ErrTokenSignatureInvalid), errors.Is(err, jwt.ErrTokenUnverifiable):
		return ErrInvalidSig
	default:
		return fmt.Errorf("%w: %v", ErrMalformed, err)
	}
}
