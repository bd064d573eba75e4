package sqlite_test

import (
	"path/filepath"
	"testing"

	"github.com/aussiebroadwan/onboard/internal/onboard/store"
	"github.com/aussiebroadwan/onboard/internal/onboard/store/drivers/sqlite"
	"github.com/aussiebroadwan/onboard/internal/onboard/store/storetest"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T, dsn string) *sqlite.Store {
	t.Helper()

	s, err := sqlite.NewStore(dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.ApplyMigrations())
	return s
}

func TestSQLiteStore(t *testing.T) {
	storetest.Run(t, func(t *testing.T) store.Store {
		return newTestStore(t, ":memory:")
	})
}

func TestMigrationsAreIdempotent(t *testing.T) {
	s := newTestStore(t, filepath.Join(t.TempDir(), "onboard.db"))
	require.NoError(t, s.ApplyMigrations())
}
