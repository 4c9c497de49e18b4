package gormrepo

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListMigrationsSortsAndFilters(t *testing.T) {
	fsys := fstest.MapFS{
		"0002_indexes.sql": {Data: []byte("SELECT 1;")},
		"0001_init.sql":    {Data: []byte("SELECT 1;")},
		"README.md":        {Data: []byte("notes")},
		"nested/0003.sql":  {Data: []byte("SELECT 1;")},
	}
	got, err := listMigrations(fsys)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "0001_init", got[0].version)
	assert.Equal(t, "0002_indexes", got[1].version)
}

func TestEmbeddedMigrationsCreateSchema(t *testing.T) {
	got, err := listMigrations(Migrations())
	require.NoError(t, err)
	require.NotEmpty(t, got)
	assert.Equal(t, "0001_init", got[0].version)
}
