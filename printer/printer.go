// Package printer assembles the cached reference pages into one printable
// document.
package printer

import (
	"log/slog"
	"strings"

	"github.com/awalczyk/cppref"
)

// Printer verifies cache completeness and merges the cached pages in
// comparator order. Extraneous files in the cache directory are ignored;
// only pages named by the reference set are read.
type Printer struct {
	Store  cppref.PageStore
	Merger cppref.Merger
	Logger *slog.Logger
}

// Assemble produces the print document for the reference set. When the
// cache is incomplete it fails with an ENOTFOUND error enumerating every
// missing page. In non-colored mode the syntax highlighting markup is
// flattened away.
func (p *Printer) Assemble(refs cppref.ReferenceSet, colored bool) (string, error) {
	logger := p.Logger
	if logger == nil {
		logger = slog.Default()
	}

	names := refs.Names()
	if len(names) == 0 {
		return "", cppref.Errorf(cppref.ENOTFOUND, "no references found; nothing to print")
	}

	var missing []string
	for _, name := range names {
		exists, err := p.Store.Exists(name)
		if err != nil {
			return "", err
		}
		if !exists {
			missing = append(missing, name+".html")
		}
	}
	if len(missing) > 0 {
		return "", cppref.Errorf(cppref.ENOTFOUND, "missing %d required HTML file(s): %s",
			len(missing), strings.Join(missing, ", "))
	}

	pages := make([]string, 0, len(names))
	for _, name := range names {
		page, err := p.Store.Read(name)
		if err != nil {
			return "", err
		}
		pages = append(pages, page)
	}

	logger.Info("assembling print document", "pages", len(pages), "colored", colored)

	doc, err := p.Merger.Merge(pages)
	if err != nil {
		return "", err
	}

	if !colored {
		doc, err = p.Merger.Flatten(doc)
		if err != nil {
			return "", err
		}
	}

	return doc, nil
}
