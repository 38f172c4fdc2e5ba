package format

import (
	"io"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// HTMLClass is the CSS class of the top-level element created by WriteHTML.
const HTMLClass = "selection"

// WriteHTML renders items as an HTML fragment: an optional heading followed by
// an unordered list. Highlighted prefixes are wrapped in <b> elements.
// Text is escaped by the HTML renderer. hl may be nil.
func WriteHTML(w io.Writer, title string, items []string, hl Highlighter) error {
	if w == nil {
		return ErrIllegalArgument
	}
	section := element(atom.Section)
	section.Attr = []html.Attribute{{Key: "class", Val: HTMLClass}}
	if title != "" {
		h := element(atom.H2)
		h.AppendChild(text(title))
		section.AppendChild(h)
	}
	list := element(atom.Ul)
	for _, item := range items {
		li := element(atom.Li)
		n := 0
		if hl != nil {
			n = min(max(hl(item), 0), len(item))
		}
		if n > 0 {
			b := element(atom.B)
			b.AppendChild(text(item[:n]))
			li.AppendChild(b)
		}
		if n < len(item) {
			li.AppendChild(text(item[n:]))
		}
		list.AppendChild(li)
	}
	section.AppendChild(list)
	tracer().Debugf("rendering %d items as HTML", len(items))
	if err := html.Render(w, section); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

func element(a atom.Atom) *html.Node {
	return &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String()}
}

func text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}
