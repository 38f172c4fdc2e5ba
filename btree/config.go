package btree

import "cmp"

// MinDegree is the smallest degree for which the B-tree invariants can be
// maintained.
const MinDegree = 2

// Config configures a tree.
type Config[T any] struct {
	// Degree is the minimum branching factor t. Nodes hold at most 2t-1 keys.
	Degree int
	// Compare orders keys. It returns a negative number for a < b, zero for
	// a == b and a positive number for a > b.
	Compare func(a, b T) int
	// Factory creates nodes. Defaults to DefaultFactory.
	Factory NodeFactory[T]
	// Root is an optional initial root. Defaults to a fresh leaf from Factory.
	// A non-empty root must form a valid B-tree of Degree.
	Root *Node[T]
}

func (cfg Config[T]) normalized() Config[T] {
	if cfg.Factory == nil {
		cfg.Factory = DefaultFactory[T]{}
	}
	return cfg
}

func (cfg Config[T]) validate() error {
	if cfg.Degree < MinDegree {
		return invalid("degree", "must be at least %d, is %d", MinDegree, cfg.Degree)
	}
	if cfg.Compare == nil {
		return missing("compare")
	}
	return nil
}

// Option configures a tree created by NewOrdered.
type Option[T any] func(*Config[T])

// WithFactory sets the node factory of a tree.
func WithFactory[T any](f NodeFactory[T]) Option[T] {
	return func(cfg *Config[T]) {
		cfg.Factory = f
	}
}

// WithRoot sets the initial root node of a tree.
func WithRoot[T any](root *Node[T]) Option[T] {
	return func(cfg *Config[T]) {
		cfg.Root = root
	}
}

// NewOrdered creates an empty tree for keys with a natural ordering.
//
// NewOrdered(2), for example, will create a 2-3-4 tree (each node contains
// 1-3 keys and 2-4 children).
func NewOrdered[T cmp.Ordered](degree int, opts ...Option[T]) (*Tree[T], error) {
	cfg := Config[T]{
		Degree:  degree,
		Compare: cmp.Compare[T],
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return New(cfg)
}
