package database

import (
	"path/filepath"
	"testing"

	"github.com/labelreader/label-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeCreatesDirectory(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "nested", "label.db")

	db, err := Initialize(dbPath, false)
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	assert.FileExists(t, dbPath)
	assert.NoError(t, db.HealthCheck())
}

func TestMigrateAll(t *testing.T) {
	db, err := Initialize(filepath.Join(t.TempDir(), "label.db"), false)
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	require.NoError(t, db.MigrateAll())

	for _, m := range models.AllModels() {
		assert.True(t, db.Migrator().HasTable(m))
	}

	// Migration is idempotent
	require.NoError(t, db.MigrateAll())
}

func TestHealthCheckAfterClose(t *testing.T) {
	db, err := Initialize(filepath.Join(t.TempDir(), "label.db"), false)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	assert.Error(t, db.HealthCheck())
}
