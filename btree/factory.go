package btree

// NodeFactory creates empty leaf nodes. A Tree never allocates nodes by
// itself, which lets clients substitute instrumented or pooled allocation
// without touching the tree algorithms.
type NodeFactory[T any] interface {
	NewNode() *Node[T]
}

// DefaultFactory allocates every node on the heap.
type DefaultFactory[T any] struct{}

// NewNode returns a fresh empty leaf.
func (DefaultFactory[T]) NewNode() *Node[T] {
	return &Node[T]{}
}

// DefaultSlabSize is the number of nodes a SlabFactory allocates at once if
// no size is given.
const DefaultSlabSize = 32

// SlabFactory hands out nodes from pre-allocated slabs, trading a little
// memory for far fewer allocations when building large trees.
//
// Nodes handed out by a slab factory share their backing array with the
// other nodes of the same slab; they stay alive as long as any of them is
// referenced.
type SlabFactory[T any] struct {
	size int
	slab []Node[T]
}

// NewSlabFactory creates a slab factory. size is the number of nodes per
// slab; values < 1 select DefaultSlabSize.
func NewSlabFactory[T any](size int) *SlabFactory[T] {
	if size < 1 {
		size = DefaultSlabSize
	}
	return &SlabFactory[T]{size: size}
}

// NewNode returns the next unused node of the current slab, allocating a
// new slab when the current one is exhausted.
func (f *SlabFactory[T]) NewNode() *Node[T] {
	if len(f.slab) == 0 {
		f.slab = make([]Node[T], f.size)
		tracer().Debugf("slab factory: allocated slab of %d nodes", f.size)
	}
	n := &f.slab[0]
	f.slab = f.slab[1:]
	n.reset()
	return n
}

// CountingFactory wraps another factory and counts the nodes it creates.
type CountingFactory[T any] struct {
	Factory NodeFactory[T] // wrapped factory; nil selects DefaultFactory
	Created int            // number of nodes created so far
}

// NewNode delegates to the wrapped factory.
func (f *CountingFactory[T]) NewNode() *Node[T] {
	f.Created++
	if f.Factory == nil {
		return DefaultFactory[T]{}.NewNode()
	}
	return f.Factory.NewNode()
}
