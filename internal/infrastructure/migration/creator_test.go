package migration

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopledger/backend/migrations"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeName(t *testing.T) {
	assert.Equal(t, "add_barcode_index", sanitizeName("Add Barcode-Index"))
	assert.Equal(t, "stock_v2", sanitizeName("  stock  v2!! "))
	assert.Equal(t, "", sanitizeName("***"))
}

func TestCreateMigration_NumbersSequentially(t *testing.T) {
	dir := t.TempDir()

	first, err := CreateMigration(dir, "create catalog")
	require.NoError(t, err)
	assert.Equal(t, 1, first.Version)
	assert.Equal(t, filepath.Join(dir, "000001_create_catalog.up.sql"), first.UpPath)
	assert.FileExists(t, first.DownPath)

	second, err := CreateMigration(dir, "Add payments")
	require.NoError(t, err)
	assert.Equal(t, 2, second.Version)

	body, err := os.ReadFile(second.UpPath)
	require.NoError(t, err)
	assert.Contains(t, string(body), "-- add_payments")

	listed, err := ListMigrations(dir)
	require.NoError(t, err)
	require.Len(t, listed, 2)
	assert.Equal(t, "create_catalog", listed[0].Name)
}

func TestCreateMigration_RejectsEmptyName(t *testing.T) {
	_, err := CreateMigration(t.TempDir(), "!!")
	assert.Error(t, err)
}

func TestListMigrations_MissingDir(t *testing.T) {
	got, err := ListMigrations(filepath.Join(t.TempDir(), "absent"))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestEmbeddedMigrationsArePaired(t *testing.T) {
	ups, err := migrations.FS.ReadDir(".")
	require.NoError(t, err)

	names := map[string]bool{}
	for _, e := range ups {
		names[e.Name()] = true
	}
	for name := range names {
		m := migrationFile.FindStringSubmatch(name)
		if m == nil {
			continue
		}
		assert.True(t, names[m[1]+"_"+m[2]+".down.sql"], "missing down for %s", name)
	}
	assert.True(t, names["000002_create_stock_movements.up.sql"])
}
