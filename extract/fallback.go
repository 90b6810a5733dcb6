package extract

import (
	"strings"

	urlcontent "github.com/sella-roum/URL-Content-Downloader"
)

// fallbackExtractor tries each extractor in order until one yields
// non-empty content.
type fallbackExtractor struct {
	extractors []urlcontent.Extractor
}

// Ensure fallbackExtractor implements urlcontent.Extractor.
var _ urlcontent.Extractor = (*fallbackExtractor)(nil)

// Fallback chains extractors: the first one to return non-empty content
// wins. Heuristic extractors reject sparse pages, so a selector-based
// extractor typically goes last.
func Fallback(extractors ...urlcontent.Extractor) urlcontent.Extractor {
	return &fallbackExtractor{extractors: extractors}
}

// Extract runs the chain and returns the first non-empty result.
func (f *fallbackExtractor) Extract(rawHTML string) (*urlcontent.ExtractResult, error) {
	var lastErr error
	var title string

	for _, e := range f.extractors {
		result, err := e.Extract(rawHTML)
		if err != nil {
			lastErr = err
			continue
		}
		if title == "" {
			title = result.Title
		}
		if strings.TrimSpace(result.ContentHTML) == "" {
			continue
		}
		if result.Title == "" {
			result.Title = title
		}
		return result, nil
	}

	if lastErr != nil {
		return nil, lastErr
	}
	return nil, urlcontent.Errorf(urlcontent.ENOCONTENT, "no extractor produced content")
}
