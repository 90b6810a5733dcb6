package sqlite_test

import (
	"context"
	"testing"
	"time"

	urlcontent "github.com/sella-roum/URL-Content-Downloader"
	"github.com/sella-roum/URL-Content-Downloader/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testContext() context.Context {
	return context.Background()
}

// mustOpenDB returns an in-memory database, closed automatically when the
// test ends.
func mustOpenDB(t *testing.T) *sqlite.DB {
	t.Helper()

	db := sqlite.NewDB(":memory:")
	require.NoError(t, db.Open())
	t.Cleanup(func() {
		assert.NoError(t, db.Close())
	})
	return db
}

func TestProgressStore_LoadEmpty(t *testing.T) {
	t.Parallel()

	store := sqlite.NewProgressStore(mustOpenDB(t))

	_, err := store.Load(testContext())
	assert.Equal(t, urlcontent.ENOTFOUND, urlcontent.ErrorCode(err))
}

func TestProgressStore_SaveLoad(t *testing.T) {
	t.Parallel()

	store := sqlite.NewProgressStore(mustOpenDB(t))

	entries := []urlcontent.Entry{
		{
			URL:         "https://a.example/x",
			Status:      urlcontent.StatusCompleted,
			Title:       "Page A",
			Content:     "# content",
			ContentHash: "abc123",
			FetchedAt:   time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC),
		},
		{
			URL:          "https://b.example/y",
			Status:       urlcontent.StatusError,
			ErrorMessage: "HTTP 404",
			FetchedAt:    time.Date(2026, 8, 29, 10, 1, 0, 0, time.UTC),
		},
		{URL: "https://c.example/z", Status: urlcontent.StatusPending},
	}

	require.NoError(t, store.Save(testContext(), entries))

	got, err := store.Load(testContext())
	require.NoError(t, err)
	assert.Equal(t, entries, got, "stored order and fields survive the round trip")
}

func TestProgressStore_SaveOverwritesWholesale(t *testing.T) {
	t.Parallel()

	store := sqlite.NewProgressStore(mustOpenDB(t))

	require.NoError(t, store.Save(testContext(), []urlcontent.Entry{
		{URL: "https://a.example/x", Status: urlcontent.StatusPending},
		{URL: "https://b.example/y", Status: urlcontent.StatusPending},
	}))
	require.NoError(t, store.Save(testContext(), []urlcontent.Entry{
		{URL: "https://b.example/y", Status: urlcontent.StatusCompleted, Content: "c"},
	}))

	got, err := store.Load(testContext())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "https://b.example/y", got[0].URL)
}

func TestProgressStore_Clear(t *testing.T) {
	t.Parallel()

	store := sqlite.NewProgressStore(mustOpenDB(t))

	require.NoError(t, store.Save(testContext(), []urlcontent.Entry{
		{URL: "https://a.example/x", Status: urlcontent.StatusPending},
	}))
	require.NoError(t, store.Clear(testContext()))

	_, err := store.Load(testContext())
	assert.Equal(t, urlcontent.ENOTFOUND, urlcontent.ErrorCode(err))

	// Clearing again is a no-op.
	assert.NoError(t, store.Clear(testContext()))
}

func TestProgressStore_SaveEmptySnapshot(t *testing.T) {
	t.Parallel()

	store := sqlite.NewProgressStore(mustOpenDB(t))

	require.NoError(t, store.Save(testContext(), nil))

	got, err := store.Load(testContext())
	require.NoError(t, err)
	assert.Empty(t, got)
}
