package cppref

import "context"

// Sanitizer strips site navigation chrome from a fetched page.
// Implementations must be lenient: when the expected regions cannot be
// identified unambiguously they log and return the input unchanged rather
// than producing a partially sanitized document.
type Sanitizer interface {
	Sanitize(html, name string) (string, error)
}

// Merger assembles cached pages into one printable document.
type Merger interface {
	// Merge takes sanitized page documents in final order, uses the first
	// as the structural root, and appends each subsequent page's body
	// content under the root body.
	Merge(pages []string) (string, error)

	// Flatten collapses syntax-highlighted code blocks to their plain
	// text content, leaving everything else untouched.
	Flatten(html string) (string, error)
}

// PageStore persists sanitized pages keyed by symbol name.
// The fetch pipeline is the only writer; the print pipeline only reads.
type PageStore interface {
	// Exists reports whether a page is already cached.
	Exists(name string) (bool, error)

	// Write persists a page, atomically replacing any existing one.
	Write(ctx context.Context, name, html string) error

	// Read returns a cached page. Returns ENOTFOUND if the page
	// has not been fetched.
	Read(name string) (string, error)
}
