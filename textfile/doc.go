/*
Package textfile provides helpers to read UTF-8 text files as sequences of
elements for selection.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package textfile

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'bselect'
func tracer() tracing.Trace {
	return tracing.Select("bselect")
}
