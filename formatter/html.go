package formatter

import (
	"io"

	"github.com/npillmayer/ragged/content"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// HTML outputs a content tree as nested HTML lists. Every node is a list
// item with its kind in a span of class "kind"; leaf data is previewed in a
// code element.
func HTML(root content.Content, w io.Writer) error {
	if root == nil || w == nil {
		return errIllegalArgument
	}
	ul := element(atom.Ul, "ragged")
	ul.AppendChild(htmlNode(root, ""))
	return html.Render(w, ul)
}

func htmlNode(c content.Content, name string) *html.Node {
	li := element(atom.Li, c.Kind().String())
	if name != "" {
		field := element(atom.Span, "edge")
		field.AppendChild(text(name))
		li.AppendChild(field)
		li.AppendChild(text(" "))
	}
	kind := element(atom.Span, "kind")
	kind.AppendChild(text(c.Kind().String()))
	li.AppendChild(kind)
	li.AppendChild(text(label(c)[len(c.Kind().String()):]))
	if pv := preview(c, 10); pv != "" {
		li.AppendChild(text(" "))
		code := element(atom.Code, "")
		code.AppendChild(text(pv))
		li.AppendChild(code)
	}
	if children := content.Children(c); len(children) > 0 {
		ul := element(atom.Ul, "")
		for i, child := range children {
			ul.AppendChild(htmlNode(child, edge(c, i)))
		}
		li.AppendChild(ul)
	}
	return li
}

func element(a atom.Atom, class string) *html.Node {
	n := &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String()}
	if class != "" {
		n.Attr = []html.Attribute{{Key: "class", Val: class}}
	}
	return n
}

func text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}
