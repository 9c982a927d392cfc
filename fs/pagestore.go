// Package fs provides file-based storage for cached reference pages.
package fs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/awalczyk/cppref"
)

// Ensure FileStore implements cppref.PageStore at compile time.
var _ cppref.PageStore = (*FileStore)(nil)

// FileStore stores one sanitized page per symbol as <name>.html in a single
// directory. Each write is atomic (temp file plus rename), so a page is
// either fully present from a previous run or absent; an aborted run never
// leaves a truncated page behind.
type FileStore struct {
	dir string
}

// NewFileStore creates a FileStore rooted at dir. The directory is created
// on first write.
func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

// Path returns the cache path for a symbol name.
func (s *FileStore) Path(name string) string {
	return filepath.Join(s.dir, name+".html")
}

// Exists reports whether the page for name is cached.
func (s *FileStore) Exists(name string) (bool, error) {
	_, err := os.Stat(s.Path(name))
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Write persists a page, atomically replacing any existing file.
func (s *FileStore) Write(ctx context.Context, name, html string) error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return err
	}

	path := s.Path(name)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, []byte(html), 0644); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}

	return nil
}

// Read returns a cached page.
func (s *FileStore) Read(name string) (string, error) {
	content, err := os.ReadFile(s.Path(name))
	if os.IsNotExist(err) {
		return "", cppref.Errorf(cppref.ENOTFOUND, "page %q not cached", name)
	}
	if err != nil {
		return "", err
	}
	return string(content), nil
}
