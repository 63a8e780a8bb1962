/*
Package textfile provides API helpers to load text files as UStrings.

Opening and parameter checking happen synchronously in `Load`; decoding
runs in a background goroutine which publishes fragment completion events
to subscribers and carries characters cut at fragment boundaries over to
the next fragment.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package textfile

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'ustring'
func tracer() tracing.Trace {
	return tracing.Select("ustring")
}
