package models

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDatabase(t *testing.T) *Database {
	t.Helper()
	db, err := NewDatabase(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestMarkSeenOnlyOnce(t *testing.T) {
	db := openTestDatabase(t)

	created, err := db.MarkSeen(&SeenItem{Key: "media:tv:1399", Kind: "media", Title: "Game of Thrones"})
	require.NoError(t, err)
	assert.True(t, created)

	created, err = db.MarkSeen(&SeenItem{Key: "media:tv:1399", Kind: "media", Title: "renamed"})
	require.NoError(t, err)
	assert.False(t, created)

	item, err := db.GetSeen("media:tv:1399")
	require.NoError(t, err)
	assert.Equal(t, "Game of Thrones", item.Title)
	assert.False(t, item.FirstSeen.IsZero())
}

func TestGetSeenNotFound(t *testing.T) {
	db := openTestDatabase(t)
	_, err := db.GetSeen("issue:1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCountByKind(t *testing.T) {
	db := openTestDatabase(t)
	for _, item := range []*SeenItem{
		{Key: "media:movie:1", Kind: "media"},
		{Key: "media:tv:2", Kind: "media"},
		{Key: "issue:3", Kind: "issue"},
	} {
		_, err := db.MarkSeen(item)
		require.NoError(t, err)
	}

	counts, err := db.CountByKind()
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"media": 2, "issue": 1}, counts)

	all, err := db.GetAllSeen()
	require.NoError(t, err)
	assert.Len(t, all, 3)
}
