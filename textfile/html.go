package textfile

import (
	"io"
	"iter"
	"slices"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ListItems reads an HTML fragment and returns the inner text of all of its
// list item elements (<li>), in document order. White space is trimmed and
// empty items are dropped. Nested lists contribute their items separately.
//
// It reads back the output of format.WriteHTML, and any other HTML list.
func ListItems(input io.Reader) (iter.Seq[string], error) {
	nodes, err := html.ParseFragment(input, &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Body,
		Data:     "body",
	})
	if err != nil {
		return nil, err
	}
	var items []string
	for _, n := range nodes {
		items = collectItems(n, items)
	}
	tracer().Debugf("textfile: found %d list items", len(items))
	return slices.Values(items), nil
}

// HTMLItems opens a file and returns its list items, see ListItems.
func HTMLItems(name string) (iter.Seq[string], error) {
	file, err := openFile(name)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return ListItems(file)
}

func collectItems(n *html.Node, items []string) []string {
	if n.Type == html.ElementNode && n.DataAtom == atom.Li {
		var b strings.Builder
		innerText(n, &b)
		if s := strings.TrimSpace(b.String()); s != "" {
			items = append(items, s)
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		items = collectItems(c, items)
	}
	return items
}

// innerText collects the text of n and its descendents, skipping nested lists.
func innerText(n *html.Node, b *strings.Builder) {
	if n.Type == html.TextNode {
		b.WriteString(n.Data)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && (c.DataAtom == atom.Ul || c.DataAtom == atom.Ol) {
			continue
		}
		innerText(c, b)
	}
}
