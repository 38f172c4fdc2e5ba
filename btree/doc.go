/*
Package btree provides a generic, in-memory B-tree for ordered selection.

The package is intentionally small. A tree is filled in bulk from a sequence
(`Build`) and queried with a predicate (`Select`), which yields all matching
keys in ascending order. There is no deletion and no persistence.

Algorithm:
  - classical top-down insertion: full nodes are split before the insertion
    descends into them ("preemptive split"), so an insert is a single pass
    from the root to a leaf,
  - nodes of degree t hold between t-1 and 2t-1 keys (the root may hold
    fewer), internal nodes hold one child more than keys,
  - the tree grows in height only when the root is split,
  - in-order traversal visits every stored key exactly once.

Duplicate keys are stored, not replaced. Nodes are never created by the tree
itself but by a `NodeFactory`, so clients may substitute instrumented or
slab-backed node allocation.

A tree is not safe for concurrent use. Running `Select` while another
goroutine builds the same tree is undefined.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package btree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'bselect'
func tracer() tracing.Trace {
	return tracing.Select("bselect")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
