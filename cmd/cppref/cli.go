package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/awalczyk/cppref"
	"github.com/awalczyk/cppref/fetch"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Config cppref.Config
	Logger *slog.Logger

	Store      cppref.PageStore
	Merger     cppref.Merger
	Journal    cppref.FetchJournal
	Downloader *fetch.Downloader
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config string `help:"Path to the configuration file" default:"cppref.yaml"`

	Fetch  FetchCmd  `cmd:"" help:"Download missing reference pages from cppreference.com"`
	Print  PrintCmd  `cmd:"" help:"Concatenate cached pages into one printable document"`
	Status StatusCmd `cmd:"" help:"Show cache completeness and fetch history"`
}

// FetchCmd is the "fetch" subcommand.
type FetchCmd struct {
	Overwrite bool `help:"Re-download pages that are already cached"`
}

// PrintCmd is the "print" subcommand.
type PrintCmd struct {
	Colored bool `help:"Preserve syntax highlighting in the output"`
}

// StatusCmd is the "status" subcommand.
type StatusCmd struct{}
