package ustring

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"github.com/npillmayer/ustring/codec"
)

// Bytes re-encodes the string into its byte form. Each code point's width
// is re-derived; the result is a fresh allocation.
func (u *UString[T]) Bytes() []byte {
	return codec.EncodeAll(u.CodePoints())
}

// String returns the encoded form as a Go string. For code points within
// the Unicode range the result is plain UTF-8.
func (u *UString[T]) String() string {
	return string(u.Bytes())
}

// ByteLen returns the number of bytes the string occupies when encoded,
// without encoding it.
func (u *UString[T]) ByteLen() int {
	return codec.EncodedLen(u.CodePoints())
}

// WidthAt returns the encoded width of the code point at index i.
func (u *UString[T]) WidthAt(i int) (int, error) {
	if i < 0 || i >= u.n {
		return 0, ErrIndexOutOfBounds
	}
	return codec.Width(u.buf[i]), nil
}

// ByteOffset returns the byte offset at which the code point at the given
// index starts in the encoded form. An index equal to the length yields
// the total encoded size.
func (u *UString[T]) ByteOffset(index int) (int, error) {
	if index < 0 || index > u.n {
		return 0, ErrIndexOutOfBounds
	}
	off := 0
	for i := 0; i < index; i++ {
		off += codec.Width(u.buf[i])
	}
	return off, nil
}

// IndexAtByte returns the index of the code point starting at the given
// byte offset of the encoded form. Offsets inside a multi-byte character
// or past the end yield NotFound.
func (u *UString[T]) IndexAtByte(off int) int {
	cur := 0
	for i := 0; i < u.n; i++ {
		if cur == off {
			return i
		}
		if cur > off {
			return NotFound
		}
		cur += codec.Width(u.buf[i])
	}
	return NotFound
}
