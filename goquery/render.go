// Package goquery implements page sanitization and print assembly by
// manipulating the parsed HTML tree.
package goquery

import (
	"bytes"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// render serializes the whole document, including the doctype.
func render(doc *goquery.Document) (string, error) {
	var buf bytes.Buffer
	for _, n := range doc.Selection.Nodes {
		if err := html.Render(&buf, n); err != nil {
			return "", err
		}
	}
	return buf.String(), nil
}

// cloneNode deep-copies a node and its subtree, preserving element,
// attribute and text structure.
func cloneNode(n *html.Node) *html.Node {
	clone := &html.Node{
		Type:      n.Type,
		DataAtom:  n.DataAtom,
		Data:      n.Data,
		Namespace: n.Namespace,
		Attr:      make([]html.Attribute, len(n.Attr)),
	}
	copy(clone.Attr, n.Attr)

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		clone.AppendChild(cloneNode(c))
	}

	return clone
}
