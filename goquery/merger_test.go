package goquery_test

import (
	"strings"
	"testing"

	"github.com/awalczyk/cppref"
	cpprefgoquery "github.com/awalczyk/cppref/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMerger_Merge(t *testing.T) {
	t.Parallel()

	t.Run("concatenates body content in page order", func(t *testing.T) {
		t.Parallel()

		pages := []string{
			`<!DOCTYPE html><html><head><title>std::list</title></head><body><h1>std::list</h1></body></html>`,
			`<html><body><h1>std::sort</h1><p>sorts</p></body></html>`,
			`<html><body><h1>std::vector</h1></body></html>`,
		}

		m := cpprefgoquery.NewMerger()
		got, err := m.Merge(pages)
		require.NoError(t, err)

		listIdx := strings.Index(got, "std::list")
		sortIdx := strings.Index(got, "std::sort")
		vectorIdx := strings.Index(got, "std::vector")
		require.NotEqual(t, -1, listIdx)
		require.NotEqual(t, -1, sortIdx)
		require.NotEqual(t, -1, vectorIdx)
		assert.Less(t, listIdx, sortIdx)
		assert.Less(t, sortIdx, vectorIdx)

		// First page is the structural root; the others are wrapped.
		assert.Contains(t, got, "<title>std::list</title>")
		assert.Contains(t, got, "<div><h1>std::sort</h1><p>sorts</p></div>")
	})

	t.Run("preserves element attributes and text of appended pages", func(t *testing.T) {
		t.Parallel()

		pages := []string{
			`<html><body><p>root</p></body></html>`,
			`<html><body><table class="wikitable"><tr><td>cell</td></tr></table>text after</body></html>`,
		}

		m := cpprefgoquery.NewMerger()
		got, err := m.Merge(pages)
		require.NoError(t, err)

		assert.Contains(t, got, `<table class="wikitable">`)
		assert.Contains(t, got, "<td>cell</td>")
		assert.Contains(t, got, "text after")
	})

	t.Run("single page passes through as the root", func(t *testing.T) {
		t.Parallel()

		m := cpprefgoquery.NewMerger()
		got, err := m.Merge([]string{`<html><body><p>only</p></body></html>`})
		require.NoError(t, err)

		assert.Contains(t, got, "<p>only</p>")
	})

	t.Run("fails on empty page list", func(t *testing.T) {
		t.Parallel()

		m := cpprefgoquery.NewMerger()
		_, err := m.Merge(nil)
		require.Error(t, err)
		assert.Equal(t, cppref.EINVALID, cppref.ErrorCode(err))
	})
}

func TestMerger_Flatten(t *testing.T) {
	t.Parallel()

	t.Run("collapses highlighted code blocks to text", func(t *testing.T) {
		t.Parallel()

		doc := `<html><body><pre class="de1"><span>x</span>y</pre></body></html>`

		m := cpprefgoquery.NewMerger()
		got, err := m.Flatten(doc)
		require.NoError(t, err)

		assert.Contains(t, got, `<pre class="de1">xy</pre>`)
		assert.NotContains(t, got, "<span>")
	})

	t.Run("preserves text order across nested spans", func(t *testing.T) {
		t.Parallel()

		doc := `<html><body><pre class="de1"><span>int</span> <span>main<span>()</span></span>;</pre></body></html>`

		m := cpprefgoquery.NewMerger()
		got, err := m.Flatten(doc)
		require.NoError(t, err)

		assert.Contains(t, got, `<pre class="de1">int main();</pre>`)
	})

	t.Run("leaves other content untouched", func(t *testing.T) {
		t.Parallel()

		doc := `<html><body><pre class="de1"><span>x</span></pre><pre class="other"><span>y</span></pre></body></html>`

		m := cpprefgoquery.NewMerger()
		got, err := m.Flatten(doc)
		require.NoError(t, err)

		assert.Contains(t, got, `<pre class="other"><span>y</span></pre>`)
	})

	t.Run("returns input unchanged when no code blocks match", func(t *testing.T) {
		t.Parallel()

		doc := `<html><body><p>text</p></body></html>`

		m := cpprefgoquery.NewMerger()
		got, err := m.Flatten(doc)
		require.NoError(t, err)

		assert.Equal(t, doc, got)
	})
}
