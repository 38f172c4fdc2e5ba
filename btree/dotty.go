package btree

import (
	"fmt"
	"io"
	"strings"
)

type nodeids[T any] struct {
	idTable map[*Node[T]]int
	max     int
}

func newtable[T any]() nodeids[T] {
	return nodeids[T]{
		idTable: make(map[*Node[T]]int),
		max:     1,
	}
}

func (ids *nodeids[T]) alloc(node *Node[T]) int {
	if id := ids.idTable[node]; id > 0 {
		return id
	}
	ids.idTable[node] = ids.max
	ids.max++
	return ids.max - 1
}

var recordEscaper = strings.NewReplacer(
	`\`, `\\`, `"`, `\"`, `|`, `\|`, `{`, `\{`, `}`, `\}`, `<`, `\<`, `>`, `\>`,
)

// Dot outputs the internal structure of t in Graphviz DOT format
// (for debugging purposes). Every node is drawn as a record of its keys.
func (t *Tree[T]) Dot(w io.Writer) error {
	var b strings.Builder
	b.WriteString("strict digraph {\n")
	b.WriteString("\tnode [shape=record,fontname=Arial,fontsize=12];\n")
	if t != nil && t.root != nil {
		ids := newtable[T]()
		var nodelist, edgelist strings.Builder
		var walk func(n *Node[T])
		walk = func(n *Node[T]) {
			ID := ids.alloc(n)
			labels := make([]string, len(n.keys))
			for i, key := range n.keys {
				labels[i] = recordEscaper.Replace(fmt.Sprint(key))
			}
			style := ""
			if n.IsLeaf() {
				style = ",style=filled,fillcolor=lightgray"
			}
			fmt.Fprintf(&nodelist, "\t\"%d\" [label=\"%s\"%s];\n", ID, strings.Join(labels, "|"), style)
			for _, child := range n.children {
				fmt.Fprintf(&edgelist, "\t\"%d\" -> \"%d\";\n", ID, ids.alloc(child))
				walk(child)
			}
		}
		walk(t.root)
		b.WriteString(nodelist.String())
		b.WriteString(edgelist.String())
	}
	b.WriteString("}\n")
	_, err := io.WriteString(w, b.String())
	return err
}
