// Package markdown extracts cppreference links from the Markdown corpus.
// It is deliberately not a Markdown parser: references live one per line in
// table rows, so scanning matches a single fixed pattern per text line.
package markdown

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// FindFiles returns all Markdown files under root, found by recursive
// descent. A missing root yields an empty result rather than an error;
// any other traversal error is propagated.
func FindFiles(root string) ([]string, error) {
	info, err := os.Stat(root)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, nil
	}

	var files []string
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(d.Name(), ".md") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return files, nil
}
