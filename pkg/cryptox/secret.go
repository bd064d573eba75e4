package cryptox

import (
	"encoding/base64"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// SecretSize is the number of random bytes in a generated pepper or
// session signing secret.
const SecretSize = TokenSize256

var (
	pepperMu   sync.Mutex
	pepper     string
	pepperFile = "pepper"
)

// SetPepperPath sets the file the pepper is loaded from (or generated into).
// Any previously loaded pepper is discarded.
func SetPepperPath(file string) {
	pepperMu.Lock()
	defer pepperMu.Unlock()

	pepperFile = file
	pepper = ""
}

// GetPepper returns the process pepper, loading or generating it on first use.
func GetPepper() (string, error) {
	pepperMu.Lock()
	defer pepperMu.Unlock()

	if pepper != "" {
		return pepper, nil
	}

	p, err := LoadOrGenerateSecret(pepperFile)
	if err != nil {
		return "", fmt.Errorf("cryptox: pepper: %w", err)
	}
	pepper = p
	return pepper, nil
}

// LoadOrGenerateSecret reads a secret from file, generating a random
// base64url secret and writing it with 0600 permissions when the file does
// not exist yet. Surrounding whitespace in the file is ignored.
func LoadOrGenerateSecret(file string) (string, error) {
	file = filepath.Clean(file)

	raw, err := os.ReadFile(file)
	switch {
	case err == nil:
		secret := strings.TrimSpace(string(raw))
		if secret == "" {
			return "", fmt.Errorf("secret file %s is empty", file)
		}
		return secret, nil
	case !errors.Is(err, fs.ErrNotExist):
		return "", err
	}

	if err := os.MkdirAll(filepath.Dir(file), 0o750); err != nil {
		return "", err
	}

	secret, err := GenerateToken(SecretSize)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(file, []byte(secret), 0o600); err != nil {
		return "", err
	}
	return secret, nil
}

// DecodeSecret returns the raw bytes of a base64url secret produced by
// LoadOrGenerateSecret, or the bytes of s unchanged when it is not base64url.
func DecodeSecret(s string) []byte {
	if b, err := base64.RawURLEncoding.DecodeString(s); err == nil && len(b) > 0 {
		return b
	}
	return []byte(s)
}
