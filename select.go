package bselect

import (
	"cmp"
	"iter"
	"slices"

	"github.com/npillmayer/bselect/btree"
)

// DefaultDegree is the B-tree degree used by Select and SelectFunc.
// Nodes hold up to 2*DefaultDegree-1 elements, so inputs of up to a few
// million elements result in trees of height 3 or less.
const DefaultDegree = 100

// Select collects the elements of seq and returns those for which pred
// returns true, in ascending order.
//
// seq is consumed completely before Select returns; the returned sequence is
// lazy with respect to pred. Select fails with an error wrapping
// ErrMissingArgument if seq or pred is nil.
func Select[T cmp.Ordered](seq iter.Seq[T], pred func(T) bool) (iter.Seq[T], error) {
	return SelectFunc(seq, cmp.Compare[T], pred)
}

// SelectFunc is like Select, but orders elements with compare.
func SelectFunc[T any](seq iter.Seq[T], compare func(a, b T) int, pred func(T) bool) (iter.Seq[T], error) {
	if seq == nil {
		return nil, &btree.ArgumentError{Param: "sequence", Err: ErrMissingArgument, Msg: "must not be nil"}
	}
	if pred == nil {
		return nil, &btree.ArgumentError{Param: "predicate", Err: ErrMissingArgument, Msg: "must not be nil"}
	}
	factory := btree.DefaultFactory[T]{}
	tree, err := btree.New(btree.Config[T]{
		Degree:  DefaultDegree,
		Compare: compare,
		Factory: factory,
		Root:    factory.NewNode(),
	})
	if err != nil {
		return nil, err
	}
	if err = tree.Build(seq); err != nil {
		return nil, err
	}
	tracer().Debugf("bselect: collected %d elements into tree of height %d", tree.Len(), tree.Height())
	return tree.Select(pred)
}

// SelectSlice is a convenience wrapper around Select for slices. It returns
// the selected elements as a new slice.
func SelectSlice[T cmp.Ordered](elems []T, pred func(T) bool) ([]T, error) {
	if elems == nil {
		return nil, &btree.ArgumentError{Param: "sequence", Err: ErrMissingArgument, Msg: "must not be nil"}
	}
	seq, err := Select(slices.Values(elems), pred)
	if err != nil {
		return nil, err
	}
	return slices.Collect(seq), nil
}
