package mock

import "github.com/awalczyk/cppref"

var _ cppref.Sanitizer = (*Sanitizer)(nil)

// Sanitizer is a mock implementation of cppref.Sanitizer.
type Sanitizer struct {
	SanitizeFn func(html, name string) (string, error)
}

func (s *Sanitizer) Sanitize(html, name string) (string, error) {
	return s.SanitizeFn(html, name)
}

var _ cppref.Merger = (*Merger)(nil)

// Merger is a mock implementation of cppref.Merger.
type Merger struct {
	MergeFn   func(pages []string) (string, error)
	FlattenFn func(html string) (string, error)
}

func (m *Merger) Merge(pages []string) (string, error) {
	return m.MergeFn(pages)
}

func (m *Merger) Flatten(html string) (string, error) {
	return m.FlattenFn(html)
}
