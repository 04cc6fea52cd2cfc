package html

import (
	"cmp"
	"io"

	"github.com/npillmayer/tree24"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// WriteTree writes a standalone HTML document showing the structure of a
// tree: a nested list of the node key listings, mirroring the subtree
// hierarchy, followed by the preformatted level diagram produced by the
// layout engine.
//
// The document is built as an html.Node tree and serialized with
// html.Render, so the output is well-formed without any manual escaping.
func WriteTree[K cmp.Ordered](t *tree24.Tree[K], w io.Writer) error {
	diagram, err := t.Render()
	if err != nil {
		return err
	}
	doc := &html.Node{Type: html.DocumentNode}
	root := element(atom.Html)
	doc.AppendChild(root)
	head := element(atom.Head)
	root.AppendChild(head)
	title := element(atom.Title)
	title.AppendChild(text("2-4 tree dump"))
	head.AppendChild(title)
	body := element(atom.Body)
	root.AppendChild(body)
	body.AppendChild(structureList(t))
	pre := element(atom.Pre)
	pre.AppendChild(text(diagram))
	body.AppendChild(pre)
	return html.Render(w, doc)
}

// structureList builds the nested <ul> hierarchy from a pre-order walk of
// the tree. stack[d] is the list element currently receiving nodes of
// depth d.
func structureList[K cmp.Ordered](t *tree24.Tree[K]) *html.Node {
	top := element(atom.Ul)
	stack := []*html.Node{top}
	t.EachNode(func(label string, depth int, leaf bool) bool {
		stack = stack[:depth+1]
		li := element(atom.Li)
		li.AppendChild(text(label))
		stack[depth].AppendChild(li)
		if !leaf {
			ul := element(atom.Ul)
			li.AppendChild(ul)
			stack = append(stack, ul)
		}
		return true
	})
	return top
}

func element(a atom.Atom) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		DataAtom: a,
		Data:     a.String(),
	}
}

func text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}
