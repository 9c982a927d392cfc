package mock

import (
	"context"

	"github.com/awalczyk/cppref"
)

var _ cppref.FetchJournal = (*FetchJournal)(nil)

// FetchJournal is a mock implementation of cppref.FetchJournal.
type FetchJournal struct {
	RecordFn func(ctx context.Context, name, url, content string) error
	ListFn   func(ctx context.Context) ([]*cppref.FetchRecord, error)
}

func (j *FetchJournal) Record(ctx context.Context, name, url, content string) error {
	return j.RecordFn(ctx, name, url, content)
}

func (j *FetchJournal) List(ctx context.Context) ([]*cppref.FetchRecord, error) {
	return j.ListFn(ctx)
}
