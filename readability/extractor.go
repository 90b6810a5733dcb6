// Package readability provides an Extractor backed by go-readability's
// port of Mozilla's Readability algorithm.
package readability

import (
	"strings"

	"github.com/go-shiori/go-readability"

	urlcontent "github.com/sella-roum/URL-Content-Downloader"
)

// Ensure Extractor implements urlcontent.Extractor at compile time.
var _ urlcontent.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content.
func (e *Extractor) Extract(rawHTML string) (*urlcontent.ExtractResult, error) {
	if rawHTML == "" {
		return nil, urlcontent.Errorf(urlcontent.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, err
	}

	return &urlcontent.ExtractResult{
		Title:       article.Title,
		ContentHTML: article.Content,
	}, nil
}
