package mock

import (
	urlcontent "github.com/sella-roum/URL-Content-Downloader"
)

var _ urlcontent.Converter = (*Converter)(nil)

// Converter is a mock implementation of urlcontent.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
