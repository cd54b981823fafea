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
		{"add accounts table", "add_accounts_table"},
		{"Add-Accounts-Table", "add_accounts_table"},
		{"ADD_ACCOUNTS_TABLE", "add_accounts_table"},
		{"add__accounts__table", "add_accounts_table"},
		{"Add Accounts 123", "add_accounts_123"},
		{"   spaces   ", "spaces"},
		{"special!@#$chars", "specialchars"},
		{"trailing_", "trailing"},
		{"_leading", "leading"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, sanitizeName(tt.input))
		})
	}
}

func TestCreateMigration(t *testing.T) {
	tmpDir := t.TempDir()

	mf, err := CreateMigration(tmpDir, "add accounts table")
	require.NoError(t, err)
	require.NotNil(t, mf)

	// version is a 14-digit timestamp
	assert.Len(t, mf.Version, 14)

	assert.FileExists(t, mf.UpPath)
	assert.FileExists(t, mf.DownPath)
	assert.True(t, strings.HasSuffix(mf.UpPath, "_add_accounts_table.up.sql"))
	assert.True(t, strings.HasSuffix(mf.DownPath, "_add_accounts_table.down.sql"))

	up, err := os.ReadFile(mf.UpPath)
	require.NoError(t, err)
	assert.Contains(t, string(up), "add accounts table")

	down, err := os.ReadFile(mf.DownPath)
	require.NoError(t, err)
	assert.Contains(t, string(down), "rollback")
}

func TestListMigrations(t *testing.T) {
	tmpDir := t.TempDir()

	// empty directory
	migrations, err := ListMigrations(tmpDir)
	require.NoError(t, err)
	assert.Empty(t, migrations)

	// missing directory is not an error
	migrations, err = ListMigrations(filepath.Join(tmpDir, "missing"))
	require.NoError(t, err)
	assert.Empty(t, migrations)

	for _, name := range []string{
		"20240101000000_first.up.sql",
		"20240101000000_first.down.sql",
		"20240102000000_second.up.sql",
		"20240102000000_second.down.sql",
	} {
		require.NoError(t, os.WriteFile(filepath.Join(tmpDir, name), []byte("-- sql"), 0644))
	}

	migrations, err = ListMigrations(tmpDir)
	require.NoError(t, err)
	assert.Equal(t, []string{"20240101000000_first", "20240102000000_second"}, migrations)
}
