package main

import (
	"fmt"

	urlcontent "github.com/sella-roum/URL-Content-Downloader"
	"github.com/sella-roum/URL-Content-Downloader/extract"
)

// Run executes the fetch command.
func (c *FetchCmd) Run(deps *Dependencies) error {
	urls := c.URLs

	// Sitemap mode: expand each argument into the URLs its site advertises.
	if c.Sitemap {
		var expanded []string
		for _, base := range c.URLs {
			found, err := deps.Sitemaps.DiscoverURLs(deps.Ctx, base)
			if err != nil {
				fmt.Fprintf(deps.Stderr, "error: %s\n", urlcontent.ErrorMessage(err))
				return err
			}
			if len(found) == 0 {
				// No sitemap; fall back to fetching the page itself.
				fmt.Fprintf(deps.Stderr, "warning: no sitemap found for %s\n", base)
				expanded = append(expanded, base)
				continue
			}
			expanded = append(expanded, found...)
		}
		urls = expanded
	}

	result, err := deps.Queue.Run(deps.Ctx, urls, printProgress(deps))
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", urlcontent.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Completed %d, failed %d (%s)\n",
		result.Completed, result.Failed, extract.FormatBytes(result.Bytes))
	return nil
}

// printProgress renders queue events for interactive use.
func printProgress(deps *Dependencies) extract.ProgressFunc {
	return func(event extract.ProgressEvent) {
		switch event.Type {
		case extract.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "Fetching %d URLs\n", event.Total)
		case extract.ProgressCompleted:
			fmt.Fprintf(deps.Stdout, "  done %s\n", extract.TruncateURL(event.URL, 80))
		case extract.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "  skip %s: %v\n", extract.TruncateURL(event.URL, 80), event.Error)
		case extract.ProgressFinished:
			// Summary printed after the run completes
		}
	}
}
