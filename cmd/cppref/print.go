package main

import (
	"fmt"
	"os"

	"github.com/awalczyk/cppref"
	"github.com/awalczyk/cppref/markdown"
	"github.com/awalczyk/cppref/printer"
)

// Run executes the print command.
func (c *PrintCmd) Run(deps *Dependencies) error {
	refs, err := markdown.RequiredReferences(deps.Config.ContentsDir)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", cppref.ErrorMessage(err))
		return err
	}

	p := &printer.Printer{
		Store:  deps.Store,
		Merger: deps.Merger,
		Logger: deps.Logger,
	}

	doc, err := p.Assemble(refs, c.Colored)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", cppref.ErrorMessage(err))
		return err
	}

	out := deps.Config.PrintPath
	if c.Colored {
		out = deps.Config.ColoredPrintPath
	}

	if err := os.WriteFile(out, []byte(doc), 0644); err != nil {
		fmt.Fprintf(deps.Stderr, "error saving %s: %v\n", out, err)
		return err
	}

	fmt.Fprintf(deps.Stdout, "Saved concatenated references to %s\n", out)

	return nil
}
