// Package goquery provides a CSS-selector based Extractor used as the
// last-resort fallback when article extraction heuristics find nothing.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	urlcontent "github.com/sella-roum/URL-Content-Downloader"
)

// Ensure Extractor implements urlcontent.Extractor at compile time.
var _ urlcontent.Extractor = (*Extractor)(nil)

// contentSelectors are tried in order; the first match with non-empty
// text wins. Common patterns across documentation frameworks come first,
// <body> is the catch-all.
var contentSelectors = []string{
	"article",
	"main",
	`[role="main"]`,
	".content",
	".doc-content",
	"body",
}

// Extractor pulls page content using CSS selectors. Unlike the
// readability and trafilatura extractors it applies no content-quality
// heuristics, so it always finds something on a well-formed page.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract parses raw HTML and returns the first non-empty content region.
func (e *Extractor) Extract(rawHTML string) (*urlcontent.ExtractResult, error) {
	if rawHTML == "" {
		return nil, urlcontent.Errorf(urlcontent.EINVALID, "empty HTML input")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, urlcontent.Errorf(urlcontent.EINVALID, "failed to parse HTML: %v", err)
	}

	result := &urlcontent.ExtractResult{
		Title: extractTitle(doc),
	}

	for _, selector := range contentSelectors {
		sel := doc.Find(selector).First()
		if sel.Length() == 0 {
			continue
		}
		if strings.TrimSpace(sel.Text()) == "" {
			continue
		}
		html, err := goquery.OuterHtml(sel)
		if err != nil {
			return nil, err
		}
		result.ContentHTML = html
		break
	}

	return result, nil
}

// extractTitle prefers the og:title metadata over <title>, and falls
// back to the first <h1>.
func extractTitle(doc *goquery.Document) string {
	if og, ok := doc.Find(`meta[property="og:title"]`).Attr("content"); ok {
		if t := strings.TrimSpace(og); t != "" {
			return t
		}
	}
	if t := strings.TrimSpace(doc.Find("title").First().Text()); t != "" {
		return t
	}
	return strings.TrimSpace(doc.Find("h1").First().Text())
}
