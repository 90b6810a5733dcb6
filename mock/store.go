package mock

import (
	"context"

	urlcontent "github.com/sella-roum/URL-Content-Downloader"
)

var _ urlcontent.ProgressStore = (*ProgressStore)(nil)

// ProgressStore is a mock implementation of urlcontent.ProgressStore.
type ProgressStore struct {
	LoadFn  func(ctx context.Context) ([]urlcontent.Entry, error)
	SaveFn  func(ctx context.Context, entries []urlcontent.Entry) error
	ClearFn func(ctx context.Context) error
}

func (s *ProgressStore) Load(ctx context.Context) ([]urlcontent.Entry, error) {
	return s.LoadFn(ctx)
}

func (s *ProgressStore) Save(ctx context.Context, entries []urlcontent.Entry) error {
	return s.SaveFn(ctx, entries)
}

func (s *ProgressStore) Clear(ctx context.Context) error {
	return s.ClearFn(ctx)
}
