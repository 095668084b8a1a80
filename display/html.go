package display

import (
	"io"
	"strconv"

	"github.com/npillmayer/succtree"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// HTML renders tree as an HTML fragment: a nested list mirroring the tree
// structure, followed by an ordered list of the successor chain.
//
// List items of the structure carry a class "left" or "right", telling which
// child of their parent they are. The root item has class "root".
func HTML(w io.Writer, tree *succtree.Tree) error {
	return html.Render(w, TreeNode(tree))
}

// TreeNode builds the HTML element rendered by HTML, for clients which want
// to embed it in a document of their own.
func TreeNode(tree *succtree.Tree) *html.Node {
	div := element(atom.Div, "succtree")
	structure := element(atom.Ul, "structure")
	div.AppendChild(structure)
	type entry struct {
		node *succtree.Node
		ul   *html.Node // list to append node's item to
		side string
	}
	if root := tree.Root(); root != nil {
		stack := []entry{{root, structure, "root"}}
		for len(stack) > 0 {
			e := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			li := element(atom.Li, e.side)
			li.AppendChild(text(e.node.Key()))
			e.ul.AppendChild(li)
			if e.node.Left() == nil && e.node.Right() == nil {
				continue
			}
			children := element(atom.Ul, "")
			li.AppendChild(children)
			// right is pushed first, so left is appended first
			if r := e.node.Right(); r != nil {
				stack = append(stack, entry{r, children, "right"})
			}
			if l := e.node.Left(); l != nil {
				stack = append(stack, entry{l, children, "left"})
			}
		}
	}
	chain := element(atom.Ol, "chain")
	for k := range tree.Keys() {
		li := element(atom.Li, "")
		li.AppendChild(text(k))
		chain.AppendChild(li)
	}
	div.AppendChild(chain)
	tracer().Debugf("HTML for tree of %d keys", tree.Len())
	return div
}

func element(a atom.Atom, class string) *html.Node {
	n := &html.Node{
		Type:     html.ElementNode,
		DataAtom: a,
		Data:     a.String(),
	}
	if class != "" {
		n.Attr = []html.Attribute{{Key: "class", Val: class}}
	}
	return n
}

func text(key int) *html.Node {
	return &html.Node{
		Type: html.TextNode,
		Data: strconv.Itoa(key),
	}
}
