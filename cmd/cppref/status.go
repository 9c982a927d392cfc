package main

import (
	"fmt"
	"time"

	"github.com/awalczyk/cppref"
	"github.com/awalczyk/cppref/markdown"
)

// Run executes the status command.
func (c *StatusCmd) Run(deps *Dependencies) error {
	refs, err := markdown.RequiredReferences(deps.Config.ContentsDir)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", cppref.ErrorMessage(err))
		return err
	}

	names := refs.Names()
	var missing []string
	for _, name := range names {
		exists, err := deps.Store.Exists(name)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %v\n", err)
			return err
		}
		if !exists {
			missing = append(missing, name)
		}
	}

	fmt.Fprintf(deps.Stdout, "%d references, %d cached, %d missing\n",
		len(names), len(names)-len(missing), len(missing))
	for _, name := range missing {
		fmt.Fprintf(deps.Stdout, "  missing %s.html\n", name)
	}

	if deps.Journal == nil {
		return nil
	}

	records, err := deps.Journal.List(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error reading journal: %v\n", err)
		return err
	}
	if len(records) == 0 {
		return nil
	}

	fmt.Fprintln(deps.Stdout, "\nFetch history:")
	for _, rec := range records {
		fmt.Fprintf(deps.Stdout, "  %s  %s  %d bytes  %s\n",
			rec.FetchedAt.Format(time.RFC3339), rec.Name, rec.Bytes, rec.ContentHash)
	}

	return nil
}
