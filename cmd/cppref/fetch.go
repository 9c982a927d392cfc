package main

import (
	"fmt"

	"github.com/awalczyk/cppref"
	"github.com/awalczyk/cppref/fetch"
	"github.com/awalczyk/cppref/markdown"
)

// Run executes the fetch command.
func (c *FetchCmd) Run(deps *Dependencies) error {
	refs, err := markdown.RequiredReferences(deps.Config.ContentsDir)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", cppref.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Found %d unique references\n", len(refs))

	progress := func(p fetch.Progress) {
		if p.Skipped {
			fmt.Fprintf(deps.Stdout, "[%d/%d] %s (cached)\n", p.Completed, p.Total, p.Name)
			return
		}
		fmt.Fprintf(deps.Stdout, "[%d/%d] %s\n", p.Completed, p.Total, p.Name)
	}

	result, err := deps.Downloader.Run(deps.Ctx, refs, c.Overwrite, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error fetching: %v\n", err)
		return err
	}

	fmt.Fprintf(deps.Stdout, "Fetched %d pages (%d already cached)\n", result.Fetched, result.Skipped)

	return nil
}
