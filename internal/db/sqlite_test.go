package db

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaswanthreddy/portfolio/internal/types"
)

func newSQLite(t *testing.T) *SQLite {
	t.Helper()
	store, err := OpenSQLite(context.Background(), filepath.Join(t.TempDir(), "contact.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func submission(name string, at time.Time) types.StoredSubmission {
	return types.StoredSubmission{
		ID:         uuid.New(),
		Name:       name,
		Email:      name + "@example.com",
		Message:    "hello from " + name,
		IPHash:     "abc123",
		ReceivedAt: at,
	}
}

func TestSQLite_SaveAndList(t *testing.T) {
	store := newSQLite(t)
	ctx := context.Background()
	base := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	first := submission("first", base)
	second := submission("second", base.Add(500*time.Millisecond))
	third := submission("third", base.Add(time.Hour))
	for _, s := range []types.StoredSubmission{first, second, third} {
		require.NoError(t, store.SaveSubmission(ctx, s))
	}

	got, err := store.ListSubmissions(ctx, 10)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, []string{"third", "second", "first"}, []string{got[0].Name, got[1].Name, got[2].Name})

	assert.Equal(t, first.ID, got[2].ID)
	assert.True(t, first.ReceivedAt.Equal(got[2].ReceivedAt))
	assert.Equal(t, "abc123", got[2].IPHash)
}

func TestSQLite_ListLimit(t *testing.T) {
	store := newSQLite(t)
	ctx := context.Background()
	base := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		require.NoError(t, store.SaveSubmission(ctx, submission("s", base.Add(time.Duration(i)*time.Minute))))
	}

	got, err := store.ListSubmissions(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, got, 2)

	all, err := store.ListSubmissions(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, all, 5)
}

func TestSQLite_EmptyList(t *testing.T) {
	got, err := newSQLite(t).ListSubmissions(context.Background(), 10)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestSQLite_DuplicateID(t *testing.T) {
	store := newSQLite(t)
	ctx := context.Background()
	s := submission("dup", time.Now())

	require.NoError(t, store.SaveSubmission(ctx, s))
	assert.Error(t, store.SaveSubmission(ctx, s))
}

func TestSQLite_ReopenKeepsData(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "contact.db")

	store, err := OpenSQLite(ctx, path)
	require.NoError(t, err)
	require.NoError(t, store.SaveSubmission(ctx, submission("kept", time.Now())))
	require.NoError(t, store.Close())

	reopened, err := OpenSQLite(ctx, path)
	require.NoError(t, err)
	defer reopened.Close()

	got, err := reopened.ListSubmissions(ctx, 10)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "kept", got[0].Name)
}
