package main_test

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/awalczyk/cppref"
	main "github.com/awalczyk/cppref/cmd/cppref"
	"github.com/awalczyk/cppref/fetch"
	"github.com/awalczyk/cppref/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeCorpus creates a contents directory with a single Markdown file
// listing the given references and returns the directory path.
func writeCorpus(t *testing.T, lines string) string {
	t.Helper()

	dir := t.TempDir()
	contents := filepath.Join(dir, "contents")
	require.NoError(t, os.MkdirAll(contents, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(contents, "index.md"), []byte(lines), 0644))
	return contents
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestFetchCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("downloads missing pages and reports progress", func(t *testing.T) {
		t.Parallel()

		contents := writeCorpus(t,
			"| Container | [`std::vector`](https://en.cppreference.com/w/cpp/container/vector) |\n"+
				"| Container | [`std::list`](https://en.cppreference.com/w/cpp/container/list) |\n")

		written := map[string]string{}
		store := &mock.PageStore{
			ExistsFn: func(name string) (bool, error) { return false, nil },
			WriteFn: func(ctx context.Context, name, html string) error {
				written[name] = html
				return nil
			},
		}
		fetcher := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "<html>" + url + "</html>", nil
			},
		}
		sanitizer := &mock.Sanitizer{
			SanitizeFn: func(html, name string) (string, error) { return html, nil },
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Config: cppref.Config{ContentsDir: contents},
			Logger: discardLogger(),
			Downloader: &fetch.Downloader{
				Fetcher:   fetcher,
				Sanitizer: sanitizer,
				Store:     store,
				Logger:    discardLogger(),
			},
		}

		cmd := &main.FetchCmd{}
		require.NoError(t, cmd.Run(deps))

		assert.Len(t, written, 2)
		assert.Contains(t, stdout.String(), "Found 2 unique references")
		assert.Contains(t, stdout.String(), "[1/2] std::list")
		assert.Contains(t, stdout.String(), "[2/2] std::vector")
		assert.Contains(t, stdout.String(), "Fetched 2 pages (0 already cached)")
	})

	t.Run("marks cached pages as skipped", func(t *testing.T) {
		t.Parallel()

		contents := writeCorpus(t,
			"| Algorithm | [`std::sort`](https://en.cppreference.com/w/cpp/algorithm/sort) |\n")

		store := &mock.PageStore{
			ExistsFn: func(name string) (bool, error) { return true, nil },
			WriteFn: func(ctx context.Context, name, html string) error {
				t.Fatalf("unexpected write of %s", name)
				return nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Config: cppref.Config{ContentsDir: contents},
			Logger: discardLogger(),
			Downloader: &fetch.Downloader{
				Fetcher:   &mock.Fetcher{},
				Sanitizer: &mock.Sanitizer{},
				Store:     store,
				Logger:    discardLogger(),
			},
		}

		cmd := &main.FetchCmd{}
		require.NoError(t, cmd.Run(deps))

		assert.Contains(t, stdout.String(), "[1/1] std::sort (cached)")
		assert.Contains(t, stdout.String(), "Fetched 0 pages (1 already cached)")
	})

	t.Run("conflicting duplicate aborts before any download", func(t *testing.T) {
		t.Parallel()

		contents := writeCorpus(t,
			"| Algorithm | [`std::sort`](https://en.cppreference.com/w/cpp/algorithm/sort) |\n"+
				"| Algorithm | [`std::sort`](https://en.cppreference.com/w/cpp/algorithm/stable_sort) |\n")

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: stderr,
			Config: cppref.Config{ContentsDir: contents},
			Logger: discardLogger(),
			Downloader: &fetch.Downloader{
				Fetcher: &mock.Fetcher{
					FetchFn: func(ctx context.Context, url string) (string, error) {
						t.Fatalf("unexpected fetch of %s", url)
						return "", nil
					},
				},
				Sanitizer: &mock.Sanitizer{},
				Store:     &mock.PageStore{},
				Logger:    discardLogger(),
			},
		}

		cmd := &main.FetchCmd{}
		err := cmd.Run(deps)
		require.Error(t, err)
		assert.Equal(t, cppref.ECONFLICT, cppref.ErrorCode(err))
		assert.Contains(t, stderr.String(), "duplicate entry with conflicting information")
	})
}

func TestStatusCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("lists fetch history from the journal", func(t *testing.T) {
		t.Parallel()

		contents := writeCorpus(t,
			"| Algorithm | [`std::sort`](https://en.cppreference.com/w/cpp/algorithm/sort) |\n")

		fetchedAt := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
		journal := &mock.FetchJournal{
			ListFn: func(ctx context.Context) ([]*cppref.FetchRecord, error) {
				return []*cppref.FetchRecord{{
					Name:        "std::sort",
					URL:         "https://en.cppreference.com/w/cpp/algorithm/sort",
					ContentHash: "9ae16a3b2f90404f",
					Bytes:       1024,
					FetchedAt:   fetchedAt,
				}}, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Config: cppref.Config{ContentsDir: contents},
			Logger: discardLogger(),
			Store: &mock.PageStore{
				ExistsFn: func(name string) (bool, error) { return true, nil },
			},
			Journal: journal,
		}

		cmd := &main.StatusCmd{}
		require.NoError(t, cmd.Run(deps))

		assert.Contains(t, stdout.String(), "1 references, 1 cached, 0 missing")
		assert.Contains(t, stdout.String(), "Fetch history:")
		assert.Contains(t, stdout.String(), "2024-03-01T12:00:00Z  std::sort  1024 bytes  9ae16a3b2f90404f")
	})

	t.Run("works without a journal", func(t *testing.T) {
		t.Parallel()

		contents := writeCorpus(t,
			"| Algorithm | [`std::sort`](https://en.cppreference.com/w/cpp/algorithm/sort) |\n")

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Config: cppref.Config{ContentsDir: contents},
			Logger: discardLogger(),
			Store: &mock.PageStore{
				ExistsFn: func(name string) (bool, error) { return false, nil },
			},
		}

		cmd := &main.StatusCmd{}
		require.NoError(t, cmd.Run(deps))

		assert.Contains(t, stdout.String(), "1 references, 0 cached, 1 missing")
		assert.Contains(t, stdout.String(), "missing std::sort.html")
		assert.NotContains(t, stdout.String(), "Fetch history")
	})
}
