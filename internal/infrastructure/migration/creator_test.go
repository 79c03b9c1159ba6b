package migration

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"create integration tables", "create_integration_tables"},
		{"Create-Integration-Tables", "create_integration_tables"},
		{"add__ref__data", "add_ref_data"},
		{"Add Index 2", "add_index_2"},
		{"   spaces   ", "spaces"},
		{"special!@#$chars", "specialchars"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, sanitizeName(tt.input), "input %q", tt.input)
	}
}

func TestCreateMigration(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "migrations")

	mf, err := CreateMigration(dir, "add ref data table", "seed reference data groups")
	require.NoError(t, err)

	assert.Len(t, mf.Version, 14)
	assert.True(t, strings.HasSuffix(mf.UpPath, "_add_ref_data_table.up.sql"), mf.UpPath)
	assert.True(t, strings.HasSuffix(mf.DownPath, "_add_ref_data_table.down.sql"), mf.DownPath)

	up, err := os.ReadFile(mf.UpPath)
	require.NoError(t, err)
	assert.Contains(t, string(up), "seed reference data groups")

	_, err = os.Stat(mf.DownPath)
	require.NoError(t, err)
}

func TestListMigrations(t *testing.T) {
	t.Run("lists up/down pairs once", func(t *testing.T) {
		dir := t.TempDir()
		for _, name := range []string{
			"20250301000001_create_integration_tables.up.sql",
			"20250301000001_create_integration_tables.down.sql",
			"20250302000001_add_ref_data.up.sql",
			"20250302000001_add_ref_data.down.sql",
			"notes.txt",
		} {
			require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0644))
		}

		migrations, err := ListMigrations(dir)
		require.NoError(t, err)
		assert.Equal(t, []string{
			"20250301000001_create_integration_tables",
			"20250302000001_add_ref_data",
		}, migrations)
	})

	t.Run("a missing directory lists nothing", func(t *testing.T) {
		migrations, err := ListMigrations(filepath.Join(t.TempDir(), "absent"))
		require.NoError(t, err)
		assert.Empty(t, migrations)
	})
}
