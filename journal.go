package cppref

import (
	"context"
	"time"
)

// FetchRecord describes one successful page fetch.
type FetchRecord struct {
	Name        string    `json:"name"`
	URL         string    `json:"url"`
	ContentHash string    `json:"contentHash"`
	Bytes       int       `json:"bytes"`
	FetchedAt   time.Time `json:"fetchedAt"`
}

// FetchJournal records fetch history. Journal writes are best effort:
// the fetch pipeline logs journal failures but does not abort on them.
type FetchJournal interface {
	// Record stores a row for a fetched page, replacing any previous
	// row for the same name. The content hash and size are computed
	// from content.
	Record(ctx context.Context, name, url, content string) error

	// List returns all recorded fetches, most recent first.
	List(ctx context.Context) ([]*FetchRecord, error)
}
