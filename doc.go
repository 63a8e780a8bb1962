/*
Package ustring provides a growable string container storing decoded code
points of a variable-width character encoding.

UStrings

A UString owns a flat buffer of decoded code points and offers the
operation set of a conventional mutable string: assign, append, insert,
erase, replace, comparison, forward and backward substring search, and
substring extraction. It is constructed from the encoded byte form
handled by package codec, and converts back to it.

Storing decoded code points instead of encoded bytes trades memory for
constant-time element access: indexing a character in an encoded byte
sequence is a linear walk, indexing a code point in a UString is an array
access. Applications that index and mutate a lot decode once into a
UString, work on code points, and re-encode when done.

The container is generic over the code point storage width. Two
instantiations cover common use:

	type U16 = UString[uint16]
	type U32 = UString[uint32]

A 16-bit instantiation covers code points up to 0xFFFF; decoding input
with wider characters into it fails with codec.ErrCodeOverflow rather
than silently truncating.

A UString created by

	UString[uint32]{}

is a valid object and behaves like the empty string. Buffers are
exclusively owned and never shared between instances; use Clone for a
copy and Take for an ownership transfer that leaves the source empty.
Instances are not safe for concurrent mutation; callers sharing one
across goroutines supply their own locking.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package ustring

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'ustring'
func tracer() tracing.Trace {
	return tracing.Select("ustring")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}

// StringError is an error type for the ustring module
type StringError string

func (e StringError) Error() string {
	return string(e)
}

// ErrIndexOutOfBounds is flagged whenever a position argument is greater
// than the length of the string.
const ErrIndexOutOfBounds = StringError("index out of bounds")

// ErrTooLong is flagged whenever a requested size exceeds the maximum
// size a string may grow to.
const ErrTooLong = StringError("requested size exceeds maximum string size")
