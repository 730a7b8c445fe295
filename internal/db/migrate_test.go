package db

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFiles_OrderAndFilter(t *testing.T) {
	fsys := fstest.MapFS{
		"m/010_later.up.sql":   {Data: []byte("SELECT 1")},
		"m/002_second.up.sql":  {Data: []byte("SELECT 1")},
		"m/001_first.up.sql":   {Data: []byte("SELECT 1")},
		"m/001_first.down.sql": {Data: []byte("SELECT 1")},
		"m/README.md":          {Data: []byte("notes")},
		"m/nested/x.up.sql":    {Data: []byte("SELECT 1")},
	}

	files, err := Files(fsys, "m")
	require.NoError(t, err)
	assert.Equal(t, []string{"001_first.up.sql", "002_second.up.sql", "010_later.up.sql"}, files)
}

func TestFiles_MissingDir(t *testing.T) {
	_, err := Files(fstest.MapFS{}, "nope")
	assert.Error(t, err)
}

func TestVersion(t *testing.T) {
	assert.Equal(t, "001_schema", Version("001_schema.up.sql"))
}

func TestEmbeddedMigrations(t *testing.T) {
	files, err := Files(migrationsFS, migrationsDir)
	require.NoError(t, err)
	require.Equal(t, []string{"001_schema.up.sql", "002_match_played.up.sql"}, files)

	trigger, err := migrationsFS.ReadFile(migrationsDir + "/002_match_played.up.sql")
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(trigger), "pg_notify('match_played'"))
}

func TestStatementsRegistered(t *testing.T) {
	for _, name := range []string{"health_check", "league_team_ids", "mark_entry_played"} {
		assert.Contains(t, Statements, name)
	}
}
