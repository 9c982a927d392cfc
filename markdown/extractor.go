package markdown

import (
	"os"
	"regexp"
	"strings"

	"github.com/awalczyk/cppref"
)

// referencePattern matches one reference per table row line:
//
//	| ... | [`std::name` (C++20)](https://en.cppreference.com/w/cpp/...) |
//
// The symbol name is captured without back-ticks; an optional parenthesized
// standard-version aside (accepted before or after the link target) is
// matched but discarded; the URL is captured verbatim. Operator pages end
// in a literal "()" (e.g. .../function/operator()), so the URL class
// admits one trailing paren pair.
var referencePattern = regexp.MustCompile(
	"\\|\\s*[^|]+\\|\\s*\\[`(std::[^`]+)`\\s*(?:\\([^)]*\\))?\\]" +
		`\((https://en\.cppreference\.com/w/cpp/[^)\s]+(?:\(\))?)\)\s*(?:\([^)]*\))?\s*\|`)

// namePattern recognizes the symbol-name half of an entry on its own, so
// lines with a broken or missing link target fail the run instead of being
// silently skipped.
var namePattern = regexp.MustCompile("\\[`std::[^`]+`")

// urlPattern recognizes the link-target half of an entry on its own.
var urlPattern = regexp.MustCompile(`\]\(https://en\.cppreference\.com/w/cpp/[^)\s]+(?:\(\))?\)`)

// ExtractReferences scans each file line by line and returns the raw
// reference records in discovery order. A line that contains only half of
// a well-formed entry aborts the run with a file:line tagged error.
func ExtractReferences(files []string) ([]cppref.Reference, error) {
	var refs []cppref.Reference

	for _, file := range files {
		content, err := os.ReadFile(file)
		if err != nil {
			return nil, err
		}

		for i, line := range strings.Split(string(content), "\n") {
			m := referencePattern.FindStringSubmatch(line)
			if m != nil {
				refs = append(refs, cppref.Reference{
					Name: strings.TrimSpace(m[1]),
					URL:  strings.TrimSpace(m[2]),
					File: file,
					Line: i + 1,
				})
				continue
			}

			hasName := namePattern.MatchString(line)
			hasURL := urlPattern.MatchString(line)
			switch {
			case hasName && !hasURL:
				return nil, cppref.Errorf(cppref.EINVALID, "missing or malformed cppreference URL in %s:%d", file, i+1)
			case hasName || hasURL:
				return nil, cppref.Errorf(cppref.EINVALID, "invalid reference entry in %s:%d", file, i+1)
			}
		}
	}

	return refs, nil
}

// Deduplicate folds raw records into a set keyed by symbol name. The first
// occurrence seeds the set; later occurrences must carry the identical URL.
// A URL conflict fails immediately with both URLs named.
func Deduplicate(refs []cppref.Reference) (cppref.ReferenceSet, error) {
	set := make(cppref.ReferenceSet, len(refs))

	for _, ref := range refs {
		existing, ok := set[ref.Name]
		if !ok {
			set[ref.Name] = ref
			continue
		}
		if existing.URL != ref.URL {
			return nil, cppref.Errorf(cppref.ECONFLICT,
				"duplicate entry with conflicting information: %s at %s and %s",
				ref.Name, existing.URL, ref.URL)
		}
	}

	return set, nil
}

// RequiredReferences runs the whole extraction stage against the corpus
// directory: scan, extract, deduplicate. Its keys define the complete set
// of required cached pages for both the fetch and print pipelines.
func RequiredReferences(dir string) (cppref.ReferenceSet, error) {
	files, err := FindFiles(dir)
	if err != nil {
		return nil, err
	}

	refs, err := ExtractReferences(files)
	if err != nil {
		return nil, err
	}

	return Deduplicate(refs)
}
