package goquery

import (
	"log/slog"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/awalczyk/cppref"
)

// Navigation chrome on cppreference.com pages. Each appears exactly once
// on a well-formed page.
const (
	navbarSelector = ".t-navbar"
	headSelector   = "#mw-head"
)

// Ensure Sanitizer implements cppref.Sanitizer at compile time.
var _ cppref.Sanitizer = (*Sanitizer)(nil)

// Sanitizer removes the site navigation bar and the page masthead from a
// fetched page. Sanitization is a soft step: if either region is not found
// exactly once the input is returned unchanged.
type Sanitizer struct {
	logger *slog.Logger
}

// NewSanitizer creates a new Sanitizer. A nil logger defaults to
// slog.Default().
func NewSanitizer(logger *slog.Logger) *Sanitizer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Sanitizer{logger: logger}
}

// Sanitize strips both navigation regions and re-serializes the page.
// name is used only for diagnostics.
func (s *Sanitizer) Sanitize(content, name string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return "", cppref.Errorf(cppref.EINVALID, "failed to parse page for %s: %v", name, err)
	}

	navbar := doc.Find(navbarSelector)
	head := doc.Find(headSelector)

	if navbar.Length() != 1 || head.Length() != 1 {
		s.logger.Warn("unexpected navigation element count, skipping removal",
			"name", name,
			"t-navbar", navbar.Length(),
			"mw-head", head.Length(),
		)
		return content, nil
	}

	navbar.Remove()
	head.Remove()

	return render(doc)
}
