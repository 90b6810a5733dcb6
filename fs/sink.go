// Package fs provides a filesystem-backed download sink.
package fs

import (
	"context"
	"os"
	"path/filepath"

	urlcontent "github.com/sella-roum/URL-Content-Downloader"
)

// Ensure Sink implements urlcontent.DownloadSink at compile time.
var _ urlcontent.DownloadSink = (*Sink)(nil)

// Sink saves packaged files into a directory.
type Sink struct {
	dir string
}

// NewSink creates a Sink writing into dir. The directory is created on the
// first save.
func NewSink(dir string) *Sink {
	return &Sink{dir: dir}
}

// Save writes data to dir/filename. Filenames produced by the packaging
// engine contain no path separators; anything else is rejected to keep
// writes inside the sink directory.
func (s *Sink) Save(ctx context.Context, filename string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if filename == "" || filename != filepath.Base(filename) {
		return urlcontent.Errorf(urlcontent.EINVALID, "invalid filename %q", filename)
	}

	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(s.dir, filename), data, 0644)
}
