package tree24

import (
	"cmp"
	"fmt"
	"io"
)

type nodeids[K cmp.Ordered] struct {
	idTable map[*node[K]]int
	max     int
}

func newtable[K cmp.Ordered]() nodeids[K] {
	return nodeids[K]{
		idTable: make(map[*node[K]]int),
		max:     1,
	}
}

func (ids nodeids[K]) find(n *node[K]) int {
	return ids.idTable[n]
}

func (ids *nodeids[K]) alloc(n *node[K]) int {
	if id := ids.find(n); id > 0 {
		return id
	}
	ids.idTable[n] = ids.max
	ids.max++
	return ids.max - 1
}

// Tree2Dot outputs the internal structure of a tree in Graphviz DOT format
// (for debugging purposes).
func Tree2Dot[K cmp.Ordered](t *Tree[K], w io.Writer) {
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	if t == nil || t.root == nil {
		io.WriteString(w, "}\n")
		return
	}
	ids := newtable[K]()
	nodelist, edgelist := "", ""
	queue := []*node[K]{t.root}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		ID := ids.alloc(n)
		styles := nodeDotStyles(n.isLeaf())
		nodelist += fmt.Sprintf("\"%d\" [label=\"%s\" %s];\n", ID, n.label(), styles)
		for i := 0; i < maxChildren; i++ {
			child := n.childAt(i)
			if child == nil {
				continue
			}
			edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", ID, ids.alloc(child))
			queue = append(queue, child)
		}
	}
	io.WriteString(w, nodelist)
	io.WriteString(w, edgelist)
	io.WriteString(w, "}\n")
}

func nodeDotStyles(isleaf bool) string {
	s := ",style=filled"
	if isleaf {
		s += ",shape=box"
	} else {
		s += ",color=black,fillcolor=\"#a3d7e4\""
		s += ",shape=circle"
	}
	return s
}
