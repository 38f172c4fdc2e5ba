package btree

import "fmt"

// Check validates the structural tree invariants:
//   - every non-root node holds between t-1 and 2t-1 keys, the root at most
//     2t-1,
//   - keys within a node are ascending,
//   - an internal node with k keys has k+1 children, and the keys of child i
//     lie between the separating keys i-1 and i of its parent,
//   - all leaves are at the same depth,
//   - no node is reachable twice.
//
// Violations are reported wrapping ErrInvariant. Check is meant for tests and
// debugging; a tree built by this package always passes.
func (t *Tree[T]) Check() error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrInvariant)
	}
	if t.root == nil {
		return fmt.Errorf("%w: nil root", ErrInvariant)
	}
	count, height, err := newChecker(t).checkNode(t.root, true, nil, nil)
	if err != nil {
		return err
	}
	if count != t.length {
		return fmt.Errorf("%w: key count mismatch (%d != %d)", ErrInvariant, count, t.length)
	}
	if height != t.height {
		return fmt.Errorf("%w: height mismatch (%d != %d)", ErrInvariant, height, t.height)
	}
	return nil
}

type checker[T any] struct {
	t    *Tree[T]
	seen map[*Node[T]]bool
}

func newChecker[T any](t *Tree[T]) *checker[T] {
	return &checker[T]{t: t, seen: make(map[*Node[T]]bool)}
}

// checkNode validates the subtree at n, whose keys must lie within [lo, hi]
// (nil bounds are open). It returns the number of keys and the height of
// the subtree.
func (c *checker[T]) checkNode(n *Node[T], isRoot bool, lo, hi *T) (count int, height int, err error) {
	if n == nil {
		return 0, 0, fmt.Errorf("%w: nil node", ErrInvariant)
	}
	if c.seen[n] {
		return 0, 0, fmt.Errorf("%w: node reachable more than once", ErrInvariant)
	}
	c.seen[n] = true
	cmp := c.t.cfg.Compare
	if len(n.keys) > c.t.maxKeys() {
		return 0, 0, fmt.Errorf("%w: node holds %d keys, max is %d", ErrInvariant, len(n.keys), c.t.maxKeys())
	}
	if !isRoot && len(n.keys) < c.t.minKeys() {
		return 0, 0, fmt.Errorf("%w: node holds %d keys, min is %d", ErrInvariant, len(n.keys), c.t.minKeys())
	}
	for i, key := range n.keys {
		if i > 0 && cmp(n.keys[i-1], key) > 0 {
			return 0, 0, fmt.Errorf("%w: keys not ascending at index %d", ErrInvariant, i)
		}
		if (lo != nil && cmp(key, *lo) < 0) || (hi != nil && cmp(key, *hi) > 0) {
			return 0, 0, fmt.Errorf("%w: key at index %d outside of parent's range", ErrInvariant, i)
		}
	}
	if n.IsLeaf() {
		return len(n.keys), 1, nil
	}
	if len(n.keys) == 0 {
		return 0, 0, fmt.Errorf("%w: internal node without keys", ErrInvariant)
	}
	if len(n.children) != len(n.keys)+1 {
		return 0, 0, fmt.Errorf("%w: internal node has %d keys and %d children",
			ErrInvariant, len(n.keys), len(n.children))
	}
	count = len(n.keys)
	var childHeight int
	for i, child := range n.children {
		clo, chi := lo, hi
		if i > 0 {
			clo = &n.keys[i-1]
		}
		if i < len(n.keys) {
			chi = &n.keys[i]
		}
		cCount, cHeight, cErr := c.checkNode(child, false, clo, chi)
		if cErr != nil {
			return 0, 0, cErr
		}
		count += cCount
		if i == 0 {
			childHeight = cHeight
		} else if cHeight != childHeight {
			return 0, 0, fmt.Errorf("%w: non-uniform subtree heights", ErrInvariant)
		}
	}
	return count, childHeight + 1, nil
}
