package btree

import "iter"

// Select returns the keys of t for which pred returns true, in ascending
// order.
//
// The returned sequence is lazy: nothing is evaluated before it is ranged
// over, and every range starts a fresh in-order traversal reflecting the
// current contents of t. A complete traversal calls pred exactly once per
// stored key, in ascending key order. Stopping the range early stops the
// traversal.
//
// Select fails with an *ArgumentError wrapping ErrMissingArgument if pred is
// nil.
func (t *Tree[T]) Select(pred func(T) bool) (iter.Seq[T], error) {
	if pred == nil {
		return nil, missing("predicate")
	}
	return func(yield func(T) bool) {
		t.ForEach(func(key T) bool {
			if !pred(key) {
				return true
			}
			return yield(key)
		})
	}, nil
}

// All returns all keys of t in ascending order.
func (t *Tree[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		t.ForEach(yield)
	}
}

// ForEach walks the keys of t in-order.
//
// Iteration stops early if fn returns false.
func (t *Tree[T]) ForEach(fn func(key T) bool) {
	if t == nil || t.root == nil || fn == nil {
		return
	}
	t.forEachNode(t.root, fn)
}

// forEachNode visits the left child, then each key followed by the next
// child. Leaves have no children to descend into.
func (t *Tree[T]) forEachNode(n *Node[T], fn func(key T) bool) bool {
	assert(n != nil, "forEachNode called with nil node")
	leaf := n.IsLeaf()
	for i, key := range n.keys {
		if !leaf && !t.forEachNode(n.children[i], fn) {
			return false
		}
		if !fn(key) {
			return false
		}
	}
	if !leaf {
		return t.forEachNode(n.children[len(n.children)-1], fn)
	}
	return true
}
