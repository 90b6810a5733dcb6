package main

import (
	"fmt"

	urlcontent "github.com/sella-roum/URL-Content-Downloader"
)

// Run executes the status command.
func (c *StatusCmd) Run(deps *Dependencies) error {
	entries := deps.Tracker.Snapshot()
	if len(entries) == 0 {
		fmt.Fprintln(deps.Stdout, "No URLs tracked. Use 'urlcontent fetch' to add some.")
		return nil
	}

	var completed, failed, pending int
	for _, e := range entries {
		switch e.Status {
		case urlcontent.StatusCompleted:
			completed++
		case urlcontent.StatusError:
			failed++
		default:
			pending++
		}

		if c.Failed && e.Status != urlcontent.StatusError {
			continue
		}

		if e.Status == urlcontent.StatusError && e.ErrorMessage != "" {
			fmt.Fprintf(deps.Stdout, "%-9s  %s  (%s)\n", e.Status, e.URL, e.ErrorMessage)
		} else {
			fmt.Fprintf(deps.Stdout, "%-9s  %s\n", e.Status, e.URL)
		}
	}

	fmt.Fprintf(deps.Stdout, "\n%d tracked: %d completed, %d failed, %d pending\n",
		len(entries), completed, failed, pending)
	return nil
}
