package mock

import (
	"context"

	urlcontent "github.com/sella-roum/URL-Content-Downloader"
)

var _ urlcontent.DownloadSink = (*DownloadSink)(nil)

// DownloadSink is a mock implementation of urlcontent.DownloadSink.
type DownloadSink struct {
	SaveFn func(ctx context.Context, filename string, data []byte) error
}

func (s *DownloadSink) Save(ctx context.Context, filename string, data []byte) error {
	return s.SaveFn(ctx, filename, data)
}
