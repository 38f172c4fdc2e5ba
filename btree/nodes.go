package btree

// Node is the storage unit of a tree. It holds an ascending run of keys and,
// if it is an internal node, exactly one child more than keys.
//
// Nodes perform no validation; all invariants are maintained by Tree.
type Node[T any] struct {
	keys     items[T]
	children items[*Node[T]]
}

// Keys returns the keys of n. The slice is a view into n and must not be
// modified by clients.
func (n *Node[T]) Keys() []T {
	return n.keys
}

// Children returns the child nodes of n, which is empty for a leaf.
// The slice is a view into n and must not be modified by clients.
func (n *Node[T]) Children() []*Node[T] {
	return n.children
}

// IsLeaf reports whether n has no children.
func (n *Node[T]) IsLeaf() bool {
	return len(n.children) == 0
}

// reset clears n so it may be handed out again as an empty leaf.
func (n *Node[T]) reset() {
	n.keys.truncate(0)
	n.children.truncate(0)
}

// items stores keys or child pointers in a node.
type items[T any] []T

// insertAt inserts a value into the given index, pushing all subsequent values
// forward.
func (s *items[T]) insertAt(index int, item T) {
	assert(index >= 0 && index <= len(*s), "insertAt index out of range")
	var zero T
	*s = append(*s, zero)
	if index < len(*s) {
		copy((*s)[index+1:], (*s)[index:])
	}
	(*s)[index] = item
}

// truncate truncates this instance at index so that it contains only the
// first index items. Cleared slots are zeroed to allow GC.
func (s *items[T]) truncate(index int) {
	var toClear items[T]
	*s, toClear = (*s)[:index], (*s)[index:]
	var zero T
	for i := range toClear {
		toClear[i] = zero
	}
}
