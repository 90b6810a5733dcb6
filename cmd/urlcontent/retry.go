package main

import (
	"fmt"

	urlcontent "github.com/sella-roum/URL-Content-Downloader"
	"github.com/sella-roum/URL-Content-Downloader/extract"
)

// Run executes the retry command.
func (c *RetryCmd) Run(deps *Dependencies) error {
	failed := deps.Tracker.Failed()
	if len(failed) == 0 {
		fmt.Fprintln(deps.Stdout, "No failed URLs to retry.")
		return nil
	}

	result, err := deps.Queue.RetryFailed(deps.Ctx, printProgress(deps))
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", urlcontent.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Completed %d, failed %d (%s)\n",
		result.Completed, result.Failed, extract.FormatBytes(result.Bytes))
	return nil
}
