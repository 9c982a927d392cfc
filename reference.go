package cppref

import (
	"sort"
	"strings"
)

// Reference identifies one documented standard library symbol extracted
// from the Markdown corpus.
type Reference struct {
	// Name is the fully qualified symbol name (e.g. "std::vector").
	Name string
	// URL is the absolute address of the symbol's cppreference.com page.
	URL string
	// File and Line record where the reference was found, for diagnostics.
	File string
	Line int
}

// ReferenceSet maps symbol names to their references. It is built once per
// run by the deduplication stage and is not mutated afterwards. Its keys
// define the complete set of required cached pages.
type ReferenceSet map[string]Reference

// Names returns all symbol names in the set, sorted by Compare.
func (s ReferenceSet) Names() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		return Compare(names[i], names[j]) < 0
	})
	return names
}

// Compare orders two C++ symbol names in recursive dictionary order: names
// are split on "::" and compared component by component. When all zipped
// components are equal, the shorter name sorts first, so "std::vector"
// precedes "std::vector::iterator".
func Compare(a, b string) int {
	aParts := strings.Split(a, "::")
	bParts := strings.Split(b, "::")

	for i := 0; i < len(aParts) && i < len(bParts); i++ {
		if c := strings.Compare(aParts[i], bParts[i]); c != 0 {
			return c
		}
	}

	return len(aParts) - len(bParts)
}
