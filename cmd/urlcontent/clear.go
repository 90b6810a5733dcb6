package main

import (
	"fmt"

	urlcontent "github.com/sella-roum/URL-Content-Downloader"
)

// Run executes the clear command.
func (c *ClearCmd) Run(deps *Dependencies) error {
	if c.Scope == "all" && !c.Force {
		fmt.Fprintln(deps.Stderr, "Refusing to clear all progress. Re-run with --force to confirm.")
		return urlcontent.Errorf(urlcontent.EINVALID, "clear all requires --force")
	}

	if err := deps.Tracker.Clear(deps.Ctx, urlcontent.ClearScope(c.Scope)); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", urlcontent.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Cleared %s.\n", c.Scope)
	return nil
}
