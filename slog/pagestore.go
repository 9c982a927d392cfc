package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/awalczyk/cppref"
)

// Ensure LoggingPageStore implements cppref.PageStore.
var _ cppref.PageStore = (*LoggingPageStore)(nil)

// LoggingPageStore wraps a PageStore with write logging. Reads and
// existence checks are not logged; they happen once per reference on
// every run and would drown the useful output.
type LoggingPageStore struct {
	next   cppref.PageStore
	logger *slog.Logger
}

// NewLoggingPageStore creates a new LoggingPageStore.
func NewLoggingPageStore(next cppref.PageStore, logger *slog.Logger) *LoggingPageStore {
	return &LoggingPageStore{next: next, logger: logger}
}

// Exists delegates to the wrapped store.
func (s *LoggingPageStore) Exists(name string) (bool, error) {
	return s.next.Exists(name)
}

// Write delegates to the wrapped store and logs the operation.
func (s *LoggingPageStore) Write(ctx context.Context, name, html string) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("page cached",
			"name", name,
			"bytes", len(html),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Write(ctx, name, html)
}

// Read delegates to the wrapped store.
func (s *LoggingPageStore) Read(name string) (string, error) {
	return s.next.Read(name)
}
