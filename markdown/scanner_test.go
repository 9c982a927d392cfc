package markdown_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/awalczyk/cppref/markdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindFiles(t *testing.T) {
	t.Parallel()

	t.Run("finds markdown files recursively", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		require.NoError(t, os.MkdirAll(filepath.Join(dir, "algorithms", "sorting"), 0755))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "index.md"), []byte("# index"), 0644))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "algorithms", "sorting", "quicksort.md"), []byte("# qs"), 0644))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("not markdown"), 0644))

		files, err := markdown.FindFiles(dir)
		require.NoError(t, err)

		assert.ElementsMatch(t, []string{
			filepath.Join(dir, "index.md"),
			filepath.Join(dir, "algorithms", "sorting", "quicksort.md"),
		}, files)
	})

	t.Run("missing root yields empty result", func(t *testing.T) {
		t.Parallel()

		files, err := markdown.FindFiles(filepath.Join(t.TempDir(), "does-not-exist"))
		require.NoError(t, err)
		assert.Empty(t, files)
	})

	t.Run("ignores non-markdown files", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "page.html"), []byte("<html>"), 0644))

		files, err := markdown.FindFiles(dir)
		require.NoError(t, err)
		assert.Empty(t, files)
	})
}
