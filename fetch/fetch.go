// Package fetch fills the page cache from the documentation site. Pages
// are downloaded one at a time with a fixed pacing between requests; each
// cache entry is written at most once per run, so an aborted run resumes
// where it left off.
package fetch

import (
	"context"
	"log/slog"

	"github.com/awalczyk/cppref"
	"golang.org/x/time/rate"
)

// Progress reports the handling of one reference during a fetch run.
type Progress struct {
	Name      string
	Completed int
	Total     int
	Skipped   bool
}

// ProgressFunc is called once per reference as the run advances.
type ProgressFunc func(Progress)

// Result summarizes a completed fetch run.
type Result struct {
	Fetched int
	Skipped int
}

// Downloader fills the cache for a required reference set.
type Downloader struct {
	Fetcher   cppref.Fetcher
	Sanitizer cppref.Sanitizer
	Store     cppref.PageStore

	// Journal is optional; journal failures are logged, never fatal.
	Journal cppref.FetchJournal

	// Limiter paces outbound requests. Nil means no pacing (tests).
	Limiter *rate.Limiter

	Logger *slog.Logger
}

// Run ensures every reference in the set has a cached page. Entries that
// already exist are skipped unless overwrite is set. The first fetch,
// sanitize, or store failure aborts the run; pages written before the
// failure remain in place.
func (d *Downloader) Run(ctx context.Context, refs cppref.ReferenceSet, overwrite bool, progress ProgressFunc) (*Result, error) {
	logger := d.Logger
	if logger == nil {
		logger = slog.Default()
	}

	var result Result
	total := len(refs)
	completed := 0

	for _, name := range refs.Names() {
		ref := refs[name]
		completed++

		if !overwrite {
			exists, err := d.Store.Exists(name)
			if err != nil {
				return nil, err
			}
			if exists {
				logger.Debug("page already cached, skipping download", "name", name)
				result.Skipped++
				if progress != nil {
					progress(Progress{Name: name, Completed: completed, Total: total, Skipped: true})
				}
				continue
			}
		}

		if d.Limiter != nil {
			if err := d.Limiter.Wait(ctx); err != nil {
				return nil, err
			}
		}

		logger.Info("downloading page", "name", name, "url", ref.URL)

		html, err := d.Fetcher.Fetch(ctx, ref.URL)
		if err != nil {
			return nil, err
		}

		sanitized, err := d.Sanitizer.Sanitize(html, name)
		if err != nil {
			return nil, err
		}

		if err := d.Store.Write(ctx, name, sanitized); err != nil {
			return nil, err
		}

		if d.Journal != nil {
			if err := d.Journal.Record(ctx, name, ref.URL, sanitized); err != nil {
				logger.Warn("failed to record fetch in journal", "name", name, "err", err)
			}
		}

		result.Fetched++
		if progress != nil {
			progress(Progress{Name: name, Completed: completed, Total: total})
		}
	}

	return &result, nil
}
