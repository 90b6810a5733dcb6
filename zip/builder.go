// Package zip provides an archive builder backed by klauspost/compress.
package zip

import (
	"bytes"

	kzip "github.com/klauspost/compress/zip"
	urlcontent "github.com/sella-roum/URL-Content-Downloader"
)

// Ensure Builder implements urlcontent.ArchiveBuilder at compile time.
var _ urlcontent.ArchiveBuilder = (*Builder)(nil)

// Builder bundles packaged files into a single ZIP archive in memory.
// Filenames and content bytes are preserved exactly.
type Builder struct{}

// NewBuilder creates a new Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Available reports whether the archive capability can be used.
// The in-process builder is always available.
func (b *Builder) Available() bool {
	return true
}

// Build produces one ZIP archive containing every file, in order.
func (b *Builder) Build(files []urlcontent.PackagedFile) ([]byte, error) {
	var buf bytes.Buffer
	w := kzip.NewWriter(&buf)

	for _, f := range files {
		entry, err := w.Create(f.Filename)
		if err != nil {
			w.Close()
			return nil, err
		}
		if _, err := entry.Write(f.Data); err != nil {
			w.Close()
			return nil, err
		}
	}

	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
