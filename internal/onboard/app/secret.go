package app

import (
	"fmt"
	"log/slog"

	"github.com/aussiebroadwan/onboard/pkg/cryptox"
	"github.com/aussiebroadwan/onboard/pkg/sessionx"
)

// sessionIssuer is stamped into every session token.
const sessionIssuer = "onboard"

// InitSessionCodec builds the session token codec from SESSION_SECRET, or
// from SESSION_SECRET_FILE when no secret is configured directly. An
// operator supplied secret is used byte for byte; only the generated file
// secret is base64url decoded.
func InitSessionCodec(cfg Config, logger *slog.Logger) (*sessionx.Codec, error) {
	key := []byte(cfg.SessionSecret)
	if len(key) == 0 {
		secret, err := cryptox.LoadOrGenerateSecret(cfg.SessionSecretFile)
		if err != nil {
			return nil, fmt.Errorf("load session secret: %w", err)
		}
		logger.Info("session secret loaded", "file", cfg.SessionSecretFile)
		key = cryptox.DecodeSecret(secret)
	}

	codec, err := sessionx.NewCodec(key, sessionIssuer)
	if err != nil {
		return nil, fmt.Errorf("session codec: %w", err)
	}
	return codec, nil
}
