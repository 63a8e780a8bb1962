/*
Package codec implements the variable-width unit codec underlying package
ustring.

The encoding is the UTF-8 scheme extended to its full 7-unit range: a
character occupies between one and seven bytes, the lead byte signals the
width through its high bits, and every continuation byte carries six payload
bits below a 10xxxxxx marker. Code points of up to 31 bits are supported,
which covers and exceeds the Unicode range.

The package provides three layers, leaves first:

Width inference determines how many bytes a character occupies, either from
its lead byte (LeadWidth, ScanWidth) or from its decoded code point value
(Width). Unit codec functions (Decode, Encode and friends) translate between
byte sequences and code points, given a width. Position mapping (Count,
ByteToIndex, IndexToByte and the bulk map builders) correlates byte offsets
with character indexes over an encoded sequence.

Decoding is deliberately lenient: widths are clamped to the bytes actually
present, so a truncated trailing character decodes to a well-defined value
from the bytes at hand instead of reading past the buffer. Callers that need
to reject malformed input run Validate first.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package codec

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'ustring'
func tracer() tracing.Trace {
	return tracing.Select("ustring")
}
