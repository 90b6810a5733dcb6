package mock

import (
	urlcontent "github.com/sella-roum/URL-Content-Downloader"
)

var _ urlcontent.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of urlcontent.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*urlcontent.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*urlcontent.ExtractResult, error) {
	return e.ExtractFn(html)
}
