package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/awalczyk/cppref/fetch"
	"github.com/awalczyk/cppref/fs"
	cpprefgoquery "github.com/awalczyk/cppref/goquery"
	cpprefhttp "github.com/awalczyk/cppref/http"
	cpprefslog "github.com/awalczyk/cppref/slog"
	"github.com/awalczyk/cppref/sqlite"
	"github.com/awalczyk/cppref/yaml"
	"golang.org/x/time/rate"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// SQLite database backing the fetch journal. Nil when the journal
	// is unavailable; the tool degrades to journal-less operation.
	DB *sqlite.DB
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("cppref"),
		kong.Description("Download C++ references from cppreference.com and assemble them for printing."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'cppref --help' to see available commands")
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	// Parse arguments first to know which command and its flags
	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Global flags may precede the subcommand, so the selected command
	// comes from the parsed context, not the raw argument list.
	cmd := kongCtx.Command()

	cfg, err := yaml.Load(cli.Config)
	if err != nil {
		return err
	}
	deps.Config = cfg

	logger := slog.New(slog.NewTextHandler(stderr, nil))
	deps.Logger = logger

	deps.Store = cpprefslog.NewLoggingPageStore(fs.NewFileStore(cfg.CacheDir), logger)
	deps.Merger = cpprefgoquery.NewMerger()

	// The fetch journal is best effort: when it cannot be opened the
	// fetch and status commands run without it.
	if cmd == "fetch" || cmd == "status" {
		if journal := m.openJournal(cfg.JournalFile(), logger); journal != nil {
			deps.Journal = journal
		}
		defer m.Close()
	}

	if cmd == "fetch" {
		fetcher := cpprefhttp.NewFetcher(
			cpprefhttp.WithTimeout(cfg.RequestTimeout),
			cpprefhttp.WithUserAgent(cfg.UserAgent),
		)
		defer fetcher.Close()

		deps.Downloader = &fetch.Downloader{
			Fetcher:   cpprefslog.NewLoggingFetcher(fetcher, logger),
			Sanitizer: cpprefgoquery.NewSanitizer(logger),
			Store:     deps.Store,
			Journal:   deps.Journal,
			Limiter:   rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), 1),
			Logger:    logger,
		}
	}

	return kongCtx.Run(deps)
}

// openJournal opens the SQLite fetch journal, returning nil when it cannot
// be opened.
func (m *Main) openJournal(path string, logger *slog.Logger) *sqlite.JournalService {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		logger.Warn("fetch journal unavailable", "path", path, "err", err)
		return nil
	}

	db := sqlite.NewDB(path)
	if err := db.Open(); err != nil {
		logger.Warn("fetch journal unavailable", "path", path, "err", err)
		return nil
	}

	m.DB = db
	return sqlite.NewJournalService(db)
}
