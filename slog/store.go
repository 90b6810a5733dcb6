package slog

import (
	"context"
	"log/slog"
	"time"

	urlcontent "github.com/sella-roum/URL-Content-Downloader"
)

// Ensure LoggingStore implements urlcontent.ProgressStore.
var _ urlcontent.ProgressStore = (*LoggingStore)(nil)

// LoggingStore wraps a ProgressStore with debug logging.
type LoggingStore struct {
	next   urlcontent.ProgressStore
	logger *slog.Logger
}

// NewLoggingStore creates a new LoggingStore.
func NewLoggingStore(next urlcontent.ProgressStore, logger *slog.Logger) *LoggingStore {
	return &LoggingStore{next: next, logger: logger}
}

// Load delegates to the wrapped store and logs the operation.
func (s *LoggingStore) Load(ctx context.Context) (entries []urlcontent.Entry, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("progress load",
			"entries", len(entries),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Load(ctx)
}

// Save delegates to the wrapped store and logs the operation.
func (s *LoggingStore) Save(ctx context.Context, entries []urlcontent.Entry) (err error) {
	defer func(begin time.Time) {
		s.logger.Debug("progress save",
			"entries", len(entries),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Save(ctx, entries)
}

// Clear delegates to the wrapped store and logs the operation.
func (s *LoggingStore) Clear(ctx context.Context) (err error) {
	defer func(begin time.Time) {
		s.logger.Debug("progress clear",
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Clear(ctx)
}
