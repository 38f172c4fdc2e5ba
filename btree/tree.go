package btree

import (
	"fmt"
	"iter"
	"sort"
)

// Tree is an in-memory B-tree of keys of type T.
//
// A tree is filled by Build and queried by Select. Keys are ordered by the
// comparison function given at construction; equal keys are all kept.
type Tree[T any] struct {
	cfg    Config[T]
	root   *Node[T]
	length int // number of stored keys
	height int // number of node levels, a single leaf root has height 1
}

// New creates a tree with validated configuration.
//
// New fails with an *ArgumentError wrapping ErrInvalidConfig if cfg.Degree
// is less than 2, or if cfg.Root is not a valid B-tree of that degree. It
// fails with an *ArgumentError wrapping ErrMissingArgument if cfg.Compare is
// nil.
func New[T any](cfg Config[T]) (*Tree[T], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg = cfg.normalized()
	t := &Tree[T]{cfg: cfg}
	if cfg.Root == nil {
		t.root = t.newNode()
		t.height = 1
	} else {
		c := newChecker(t)
		count, height, err := c.checkNode(cfg.Root, true, nil, nil)
		if err != nil {
			return nil, invalid("root", "%v", err)
		}
		t.root, t.length, t.height = cfg.Root, count, height
	}
	t.cfg.Root = nil // the tree owns the root from now on
	tracer().Debugf("btree: new tree of degree %d, %d keys", t.cfg.Degree, t.length)
	return t, nil
}

// Degree returns the minimum branching factor of t.
func (t *Tree[T]) Degree() int {
	return t.cfg.Degree
}

// Len returns the number of keys stored in t, duplicates included.
func (t *Tree[T]) Len() int {
	if t == nil {
		return 0
	}
	return t.length
}

// Height returns the number of node levels of t. A tree without keys
// consists of a single empty leaf and has height 1.
func (t *Tree[T]) Height() int {
	if t == nil {
		return 0
	}
	return t.height
}

// Root returns the root node of t, for inspection only.
func (t *Tree[T]) Root() *Node[T] {
	return t.root
}

// Min returns the smallest key in t, or (zeroValue, false) if t is empty.
func (t *Tree[T]) Min() (_ T, found bool) {
	if t == nil || t.length == 0 {
		return
	}
	n := t.root
	for !n.IsLeaf() {
		n = n.children[0]
	}
	return n.keys[0], true
}

// Max returns the largest key in t, or (zeroValue, false) if t is empty.
func (t *Tree[T]) Max() (_ T, found bool) {
	if t == nil || t.length == 0 {
		return
	}
	n := t.root
	for !n.IsLeaf() {
		n = n.children[len(n.children)-1]
	}
	return n.keys[len(n.keys)-1], true
}

// Build inserts every element of seq into t, in sequence order.
//
// seq is consumed exactly once. Build fails with an *ArgumentError wrapping
// ErrMissingArgument if seq is nil; in that case t is left untouched.
// Correctness does not depend on the order of the elements.
func (t *Tree[T]) Build(seq iter.Seq[T]) error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrInvalidConfig)
	}
	if seq == nil {
		return missing("sequence")
	}
	before := t.length
	for key := range seq {
		t.insert(key)
	}
	tracer().Debugf("btree: build inserted %d keys, height is %d", t.length-before, t.height)
	return nil
}

// maxKeys returns the max number of keys to allow per node.
func (t *Tree[T]) maxKeys() int {
	return 2*t.cfg.Degree - 1
}

// minKeys returns the min number of keys to allow per node (ignored for the
// root node).
func (t *Tree[T]) minKeys() int {
	return t.cfg.Degree - 1
}

func (t *Tree[T]) full(n *Node[T]) bool {
	return len(n.keys) == t.maxKeys()
}

// newNode is the single place where the tree acquires nodes.
func (t *Tree[T]) newNode() *Node[T] {
	n := t.cfg.Factory.NewNode()
	assert(n != nil, "node factory returned nil")
	assert(len(n.keys) == 0 && len(n.children) == 0, "node factory returned a non-empty node")
	return n
}

// insert adds key to the tree. A full root is split first; this is the only
// way the tree grows in height.
func (t *Tree[T]) insert(key T) {
	root := t.root
	if t.full(root) {
		newRoot := t.newNode()
		newRoot.children.insertAt(0, root)
		t.splitChild(newRoot, 0)
		t.root = newRoot
		t.height++
		tracer().Debugf("btree: split root, height is now %d", t.height)
		root = newRoot
	}
	t.insertNonFull(root, key)
	t.length++
}

// insertNonFull inserts key into the subtree rooted at n, which must not be
// full. Full children are split before the insertion descends into them.
func (t *Tree[T]) insertNonFull(n *Node[T], key T) {
	assert(!t.full(n), "insertNonFull called for full node")
	i := t.upperBound(n, key)
	if n.IsLeaf() {
		n.keys.insertAt(i, key)
		return
	}
	if t.full(n.children[i]) {
		t.splitChild(n, i)
		if t.cfg.Compare(key, n.keys[i]) > 0 {
			i++ // we want the second split node
		}
	}
	t.insertNonFull(n.children[i], key)
}

// upperBound returns the position after the last key of n which is not
// greater than key. New keys are inserted there, which places them after
// equal keys.
func (t *Tree[T]) upperBound(n *Node[T], key T) int {
	return sort.Search(len(n.keys), func(i int) bool {
		return t.cfg.Compare(key, n.keys[i]) < 0
	})
}

// splitChild splits the full child at index i of parent into two nodes of
// t-1 keys each. The median key moves up into parent at index i, the new
// right sibling is inserted as child i+1. For an internal child the upper t
// children move to the sibling.
func (t *Tree[T]) splitChild(parent *Node[T], i int) {
	degree := t.cfg.Degree
	child := parent.children[i]
	assert(t.full(child), "splitChild called for non-full child")
	sibling := t.newNode()
	median := child.keys[degree-1]
	sibling.keys = append(sibling.keys, child.keys[degree:]...)
	if !child.IsLeaf() {
		sibling.children = append(sibling.children, child.children[degree:]...)
		child.children.truncate(degree)
	}
	child.keys.truncate(degree - 1)
	parent.keys.insertAt(i, median)
	parent.children.insertAt(i+1, sibling)
}
