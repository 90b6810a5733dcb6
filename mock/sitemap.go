package mock

import (
	"context"

	urlcontent "github.com/sella-roum/URL-Content-Downloader"
)

var _ urlcontent.SitemapService = (*SitemapService)(nil)

// SitemapService is a mock implementation of urlcontent.SitemapService.
type SitemapService struct {
	DiscoverURLsFn func(ctx context.Context, baseURL string) ([]string, error)
}

func (s *SitemapService) DiscoverURLs(ctx context.Context, baseURL string) ([]string, error) {
	return s.DiscoverURLsFn(ctx, baseURL)
}
