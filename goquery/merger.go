package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/awalczyk/cppref"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// codeBlockSelector matches the syntax-highlighted code blocks produced by
// cppreference's highlighter.
const codeBlockSelector = "pre.de1"

// Ensure Merger implements cppref.Merger at compile time.
var _ cppref.Merger = (*Merger)(nil)

// Merger concatenates sanitized pages into one printable document.
type Merger struct{}

// NewMerger creates a new Merger.
func NewMerger() *Merger {
	return &Merger{}
}

// Merge uses the first page's document as the structural root and appends
// each subsequent page's body content, deep-copied into a fresh div under
// the root body. Pages must already be in final order.
func (m *Merger) Merge(pages []string) (string, error) {
	if len(pages) == 0 {
		return "", cppref.Errorf(cppref.EINVALID, "no pages to merge")
	}

	root, err := goquery.NewDocumentFromReader(strings.NewReader(pages[0]))
	if err != nil {
		return "", cppref.Errorf(cppref.EINVALID, "failed to parse root page: %v", err)
	}

	rootBody := root.Find("body")
	if rootBody.Length() == 0 {
		return "", cppref.Errorf(cppref.EINVALID, "root page has no body element")
	}
	rootBodyNode := rootBody.Get(0)

	for _, page := range pages[1:] {
		doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
		if err != nil {
			return "", cppref.Errorf(cppref.EINVALID, "failed to parse page: %v", err)
		}

		body := doc.Find("body")
		if body.Length() == 0 {
			continue
		}

		wrapper := &html.Node{Type: html.ElementNode, DataAtom: atom.Div, Data: "div"}
		rootBodyNode.AppendChild(wrapper)

		for c := body.Get(0).FirstChild; c != nil; c = c.NextSibling {
			wrapper.AppendChild(cloneNode(c))
		}
	}

	return render(root)
}

// Flatten replaces every highlighted code block's subtree with a single
// text node holding the concatenated text it contained, preserving
// character order. Content outside those blocks is untouched; input with
// no such blocks is returned unchanged.
func (m *Merger) Flatten(content string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return "", cppref.Errorf(cppref.EINVALID, "failed to parse document: %v", err)
	}

	blocks := doc.Find(codeBlockSelector)
	if blocks.Length() == 0 {
		return content, nil
	}

	blocks.Each(func(_ int, sel *goquery.Selection) {
		text := sel.Text()
		node := sel.Get(0)
		for node.FirstChild != nil {
			node.RemoveChild(node.FirstChild)
		}
		node.AppendChild(&html.Node{Type: html.TextNode, Data: text})
	})

	return render(doc)
}
