package cryptox

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadOrGenerateSecret(t *testing.T) {
	t.Parallel()

	t.Run("generates then reloads", func(t *testing.T) {
		t.Parallel()
		file := filepath.Join(t.TempDir(), "nested", "session.secret")

		first, err := LoadOrGenerateSecret(file)
		require.NoError(t, err)
		require.Len(t, DecodeSecret(first), SecretSize)

		info, err := os.Stat(file)
		require.NoError(t, err)
		require.Equal(t, os.FileMode(0o600), info.Mode().Perm())

		second, err := LoadOrGenerateSecret(file)
		require.NoError(t, err)
		require.Equal(t, first, second)
	})

	t.Run("trims existing secret", func(t *testing.T) {
		t.Parallel()
		file := filepath.Join(t.TempDir(), "secret")
		require.NoError(t, os.WriteFile(file, []byte("  my-secret\n"), 0o600))

		got, err := LoadOrGenerateSecret(file)
		require.NoError(t, err)
		require.Equal(t, "my-secret", got)
	})

	t.Run("rejects empty file", func(t *testing.T) {
		t.Parallel()
		file := filepath.Join(t.TempDir(), "secret")
		require.NoError(t, os.WriteFile(file, []byte("\n"), 0o600))

		_, err := LoadOrGenerateSecret(file)
		require.Error(t, err)
	})
}

func TestDecodeSecret(t *testing.T) {
	t.Parallel()

	require.Equal(t, []byte("hi"), DecodeSecret("aGk"))
	require.Equal(t, []byte("not base64!"), DecodeSecret("not base64!"))
}
