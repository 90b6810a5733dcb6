package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	urlcontent "github.com/sella-roum/URL-Content-Downloader"
)

// progressKey addresses the single durable progress record.
const progressKey = "progress"

// Ensure ProgressStore implements urlcontent.ProgressStore at compile time.
var _ urlcontent.ProgressStore = (*ProgressStore)(nil)

// ProgressStore persists the progress snapshot as one JSON record in the
// state table, overwritten wholesale on every save.
type ProgressStore struct {
	db *DB
}

// NewProgressStore creates a new ProgressStore.
func NewProgressStore(db *DB) *ProgressStore {
	return &ProgressStore{db: db}
}

// Load returns the persisted snapshot in its stored order.
// Returns ENOTFOUND if no snapshot has been saved yet.
func (s *ProgressStore) Load(ctx context.Context) ([]urlcontent.Entry, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `
		SELECT value FROM state WHERE key = ?
	`, progressKey).Scan(&value)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, urlcontent.Errorf(urlcontent.ENOTFOUND, "no progress snapshot")
	}
	if err != nil {
		return nil, err
	}

	var entries []urlcontent.Entry
	if err := json.Unmarshal([]byte(value), &entries); err != nil {
		return nil, urlcontent.Errorf(urlcontent.EINTERNAL, "corrupt progress snapshot: %v", err)
	}
	return entries, nil
}

// Save replaces the persisted snapshot.
func (s *ProgressStore) Save(ctx context.Context, entries []urlcontent.Entry) error {
	if entries == nil {
		entries = []urlcontent.Entry{}
	}
	value, err := json.Marshal(entries)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO state (key, value, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, progressKey, string(value), time.Now().UTC().Format(time.RFC3339))

	return err
}

// Clear removes the persisted snapshot. Clearing an absent snapshot is a
// no-op.
func (s *ProgressStore) Clear(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM state WHERE key = ?`, progressKey)
	return err
}
