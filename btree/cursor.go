package btree

// Cursor is a pull-style in-order iterator over the keys of a tree.
//
// A cursor keeps its own traversal stack; create a new cursor to restart.
// A cursor must not be used after the tree has been modified, and it is not
// safe for use by multiple goroutines.
type Cursor[T any] struct {
	stack []cursorFrame[T]
}

type cursorFrame[T any] struct {
	node *Node[T]
	next int // index of the next key of node to emit
}

// Cursor creates a cursor positioned before the smallest key of t.
func (t *Tree[T]) Cursor() *Cursor[T] {
	c := &Cursor[T]{}
	if t != nil && t.root != nil {
		c.stack = make([]cursorFrame[T], 0, t.height)
		c.descend(t.root)
	}
	return c
}

// descend pushes n and its leftmost spine onto the stack.
func (c *Cursor[T]) descend(n *Node[T]) {
	for n != nil {
		c.stack = append(c.stack, cursorFrame[T]{node: n})
		if n.IsLeaf() {
			return
		}
		n = n.children[0]
	}
}

// Next returns the next key in ascending order. It returns (zeroValue, false)
// if the cursor is exhausted.
func (c *Cursor[T]) Next() (key T, ok bool) {
	for len(c.stack) > 0 {
		top := len(c.stack) - 1
		f := c.stack[top]
		if f.next >= len(f.node.keys) {
			c.stack[top] = cursorFrame[T]{}
			c.stack = c.stack[:top]
			continue
		}
		key = f.node.keys[f.next]
		c.stack[top].next++
		if !f.node.IsLeaf() {
			c.descend(f.node.children[f.next+1])
		}
		return key, true
	}
	return key, false
}
