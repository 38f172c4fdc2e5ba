/*
Package format outputs selected items, either to a console with a fixed
width font or as an HTML fragment.

Console output joins the items with a separator and wraps them first-fit into
lines of a configured width. Widths are measured in display cells (“en”s)
following UAX #11, so that east asian wide characters and combining
sequences do not break the layout. A matched prefix of each item may be
highlighted in color.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package format

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'bselect'
func tracer() tracing.Trace {
	return tracing.Select("bselect")
}
