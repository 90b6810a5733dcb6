package mock

import (
	urlcontent "github.com/sella-roum/URL-Content-Downloader"
)

var _ urlcontent.ArchiveBuilder = (*ArchiveBuilder)(nil)

// ArchiveBuilder is a mock implementation of urlcontent.ArchiveBuilder.
type ArchiveBuilder struct {
	AvailableFn func() bool
	BuildFn     func(files []urlcontent.PackagedFile) ([]byte, error)
}

func (b *ArchiveBuilder) Available() bool {
	if b.AvailableFn == nil {
		return true
	}
	return b.AvailableFn()
}

func (b *ArchiveBuilder) Build(files []urlcontent.PackagedFile) ([]byte, error) {
	return b.BuildFn(files)
}
