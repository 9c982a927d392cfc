package mock

import (
	"context"

	"github.com/awalczyk/cppref"
)

var _ cppref.PageStore = (*PageStore)(nil)

// PageStore is a mock implementation of cppref.PageStore.
type PageStore struct {
	ExistsFn func(name string) (bool, error)
	WriteFn  func(ctx context.Context, name, html string) error
	ReadFn   func(name string) (string, error)
}

func (s *PageStore) Exists(name string) (bool, error) {
	return s.ExistsFn(name)
}

func (s *PageStore) Write(ctx context.Context, name, html string) error {
	return s.WriteFn(ctx, name, html)
}

func (s *PageStore) Read(name string) (string, error) {
	return s.ReadFn(name)
}
