package db

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrations_Embedded(t *testing.T) {
	entries, err := fs.ReadDir(migrations, "migrations")
	require.NoError(t, err)
	require.NotEmpty(t, entries)

	for _, e := range entries {
		data, err := fs.ReadFile(migrations, "migrations/"+e.Name())
		require.NoError(t, err)
		content := string(data)
		assert.True(t, strings.Contains(content, "-- +goose Up"), "%s missing Up section", e.Name())
		assert.True(t, strings.Contains(content, "-- +goose Down"), "%s missing Down section", e.Name())
	}
}

func TestClose_NilPool(t *testing.T) {
	db := &DB{}
	assert.NotPanics(t, db.Close)
}
