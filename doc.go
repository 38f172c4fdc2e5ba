/*
Package bselect offers ordered selection of elements by predicate.

Selection

Given any sequence of ordered elements and a predicate, Select returns the
elements satisfying the predicate in ascending order. Internally, the elements
are collected into a B-tree (see package btree) of a large degree, which keeps
the tree flat for typical input sizes, and are then retrieved by an in-order
traversal.

	names := slices.Values([]string{"Alice", "Bob", "Anna"})
	aNames, err := bselect.Select(names, bselect.HasPrefixFold("a"))
	...
	for name := range aNames {
		fmt.Println(name) // Alice, Anna
	}

Clients which want to query the same elements repeatedly should build a
btree.Tree once and call its Select method instead.

Duplicates are kept: an element occurring twice in the input is selected
twice.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package bselect

import (
	"github.com/npillmayer/bselect/btree"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// tracer writes to trace with key 'bselect'
func tracer() tracing.Trace {
	return tracing.Select("bselect")
}

// ErrMissingArgument is flagged whenever a required sequence or predicate
// is nil. Errors returned by Select wrap it.
var ErrMissingArgument = btree.ErrMissingArgument

// ErrInvalidConfig is flagged for an invalid tree configuration.
var ErrInvalidConfig = btree.ErrInvalidConfig
