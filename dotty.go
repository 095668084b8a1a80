package succtree

import (
	"fmt"
	"io"
	"strings"
)

type nodeids struct {
	idTable map[*Node]int
	max     int
}

func newtable() nodeids {
	return nodeids{
		idTable: make(map[*Node]int),
		max:     1,
	}
}

func (ids nodeids) find(node *Node) int {
	return ids.idTable[node]
}

func (ids *nodeids) alloc(node *Node) int {
	if id := ids.find(node); id > 0 {
		return id
	}
	ids.idTable[node] = ids.max
	ids.max++
	return ids.max - 1
}

// Tree2Dot outputs the internal structure of a tree in Graphviz DOT format
// (for debugging purposes).
//
// Child links are drawn as solid edges, successor links as dashed edges which
// do not influence the layout. Missing children are drawn as small empty
// circles, keeping left and right apart visually.
func Tree2Dot(t *Tree, w io.Writer) {
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	ids := newtable()
	var nodelist, edgelist, chainlist strings.Builder
	nilcnt := 0
	t.each(func(node *Node, depth int) {
		ID := ids.alloc(node)
		fmt.Fprintf(&nodelist, "\"%d\" [label=%d %s];\n", ID, node.key, nodeDotStyles(depth))
		for _, child := range [2]*Node{node.left, node.right} {
			if child == nil {
				nilcnt++ // placeholders live in their own "nil" namespace
				fmt.Fprintf(&nodelist, "\"nil%d\" %s;\n", nilcnt, emptyNode())
				fmt.Fprintf(&edgelist, "\"%d\" -> \"nil%d\";\n", ID, nilcnt)
			} else {
				fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\";\n", ID, ids.alloc(child))
			}
		}
		if node.succ != nil {
			fmt.Fprintf(&chainlist, "\"%d\" -> \"%d\" [style=dashed,color=\"#ff6600\",constraint=false];\n",
				ID, ids.alloc(node.succ))
		}
	})
	io.WriteString(w, nodelist.String())
	io.WriteString(w, edgelist.String())
	io.WriteString(w, chainlist.String())
	io.WriteString(w, "}\n")
}

// each visits all nodes in pre-order, together with their depth (root = 0).
func (t *Tree) each(f func(*Node, int)) {
	if t.IsEmpty() {
		return
	}
	type entry struct {
		node  *Node
		depth int
	}
	stack := []entry{{t.root, 0}}
	for len(stack) > 0 {
		e := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		f(e.node, e.depth)
		if e.node.right != nil {
			stack = append(stack, entry{e.node.right, e.depth + 1})
		}
		if e.node.left != nil {
			stack = append(stack, entry{e.node.left, e.depth + 1})
		}
	}
}

func emptyNode() string {
	return "[label=\"\",color=black,shape=circle,fixedsize=true,width=.2]"
}

func nodeDotStyles(depth int) string {
	s := ",style=filled,color=black,shape=circle"
	s += fmt.Sprintf(",fillcolor=\"%s\"", hexcolors[depth%len(hexcolors)])
	return s
}

var hexcolors = [...]string{"white", "#CCDDFF", "#AACCFF", "#88BBFF", "#66AAFF",
	"#4499FF", "#2288FF", "#0077FF", "#0066FF"}
