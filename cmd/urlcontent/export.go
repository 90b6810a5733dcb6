package main

import (
	"fmt"

	urlcontent "github.com/sella-roum/URL-Content-Downloader"
	"github.com/sella-roum/URL-Content-Downloader/extract"
)

// Run executes the export command.
func (c *ExportCmd) Run(deps *Dependencies) error {
	opts := urlcontent.ExportOptions{
		Arrangement:     urlcontent.Arrangement(c.Arrangement),
		Format:          urlcontent.PackageFormat(c.Format),
		MaxBytesPerFile: c.MaxBytes,
	}

	entries := deps.Tracker.Snapshot()
	if len(c.URLs) > 0 {
		for _, u := range c.URLs {
			if err := deps.Tracker.Select(u); err != nil {
				fmt.Fprintf(deps.Stderr, "error: %s\n", urlcontent.ErrorMessage(err))
				return err
			}
		}
		entries = deps.Tracker.Selected()
	}

	result, err := deps.Engine.Export(deps.Ctx, entries, opts)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", urlcontent.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Exported %d files (%s) to %s\n",
		result.Files, extract.FormatBytes(result.Bytes), c.Out)
	return nil
}
