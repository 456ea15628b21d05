package backend

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tally/internal/core"
	"tally/internal/ledger"
	"tally/internal/storage"
)

func TestTypeIsValid(t *testing.T) {
	assert.True(t, FileBackend.IsValid())
	assert.True(t, SQLiteBackend.IsValid())
	assert.False(t, Type("sheets").IsValid())
	assert.False(t, Type("").IsValid())
}

func TestCreateFileBackend(t *testing.T) {
	factory := NewFactory(nil)
	res, err := factory.CreateBackend(context.Background(), Config{
		Type:       FileBackend,
		LedgerPath: filepath.Join(t.TempDir(), "ledger.txt"),
	})
	require.NoError(t, err)
	assert.IsType(t, &ledger.FileStore{}, res.Backend)
	assert.Nil(t, res.Cleanup)
}

// A corrupt ledger must not abort backend creation: the store comes up
// empty and the failure is only reported.
func TestCreateFileBackendCorruptLedger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.txt")
	require.NoError(t, os.WriteFile(path, []byte("garbage\n"), 0644))

	factory := NewFactory(nil)
	res, err := factory.CreateBackend(context.Background(), Config{
		Type:       FileBackend,
		LedgerPath: path,
	})
	require.NoError(t, err)

	all, err := res.Backend.All(context.Background())
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestCreateSQLiteBackend(t *testing.T) {
	factory := NewFactory(nil)
	res, err := factory.CreateBackend(context.Background(), Config{
		Type:         SQLiteBackend,
		SQLiteDBPath: filepath.Join(t.TempDir(), "tally.db"),
	})
	require.NoError(t, err)
	require.NotNil(t, res.Cleanup)
	defer res.Cleanup()

	assert.IsType(t, &storage.SQLiteRepository{}, res.Backend)

	e, err := core.NewExpense("Food", "Market", core.Money{Cents: 713}, core.NewDate(2024, 3, 1))
	require.NoError(t, err)
	require.NoError(t, res.Backend.Add(context.Background(), e))
}

func TestCreateBackendInvalidConfig(t *testing.T) {
	factory := NewFactory(nil)

	_, err := factory.CreateBackend(context.Background(), Config{Type: "sheets"})
	assert.Error(t, err)

	_, err = factory.CreateBackend(context.Background(), Config{Type: FileBackend})
	assert.Error(t, err) // missing ledger path

	_, err = factory.CreateBackend(context.Background(), Config{Type: SQLiteBackend})
	assert.Error(t, err) // missing db path
}
