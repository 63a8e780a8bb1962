package ustring

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"github.com/npillmayer/ustring/codec"
)

// Compare orders u against v lexicographically by code point value.
// The result is -1, 0 or 1. A string that is a proper prefix of the
// other is the lesser one.
func (u *UString[T]) Compare(v *UString[T]) int {
	return compareCodePoints(u.CodePoints(), v.CodePoints())
}

// CompareCodePoints orders the string against a plain code point slice.
func (u *UString[T]) CompareCodePoints(cps []T) int {
	return compareCodePoints(u.CodePoints(), cps)
}

// CompareString orders the string against the decoded characters of a Go
// string. The comparison decodes s progressively and lifts both sides to
// 64 bits, so characters too wide for T order correctly instead of
// wrapping.
func (u *UString[T]) CompareString(s string) int {
	b := []byte(s)
	i := 0
	for cur := 0; cur < len(b); {
		cp, w := codec.DecodeNext[uint64](b[cur:])
		if i >= u.n {
			return -1 // u is a proper prefix of s
		}
		if uint64(u.buf[i]) != cp {
			if uint64(u.buf[i]) < cp {
				return -1
			}
			return 1
		}
		i++
		cur += w
	}
	if i < u.n {
		return 1
	}
	return 0
}

// CompareRange orders the substring of n code points starting at pos
// against cps. A count reaching past the end is clipped.
func (u *UString[T]) CompareRange(pos, n int, cps []T) (int, error) {
	if pos < 0 || pos > u.n {
		return 0, ErrIndexOutOfBounds
	}
	if n < 0 || n > u.n-pos {
		n = u.n - pos
	}
	return compareCodePoints(u.buf[pos:pos+n], cps), nil
}

func compareCodePoints[T codec.CodePoint](a, b []T) int {
	m := len(a)
	if len(b) < m {
		m = len(b)
	}
	for i := 0; i < m; i++ {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}
	return 0
}

// Find returns the lowest index at or after start where needle occurs,
// or NotFound. An empty needle is found at start.
func (u *UString[T]) Find(needle []T, start int) int {
	if start < 0 {
		start = 0
	}
	if len(needle) == 0 {
		if start <= u.n {
			return start
		}
		return NotFound
	}
	for i := start; i+len(needle) <= u.n; i++ {
		if u.matchAt(i, needle) {
			return i
		}
	}
	return NotFound
}

// FindCode returns the lowest index at or after start holding cp, or
// NotFound.
func (u *UString[T]) FindCode(cp T, start int) int {
	if start < 0 {
		start = 0
	}
	for i := start; i < u.n; i++ {
		if u.buf[i] == cp {
			return i
		}
	}
	return NotFound
}

// RFind returns the highest index not exceeding start where needle
// occurs, or NotFound. A negative start searches from the end.
func (u *UString[T]) RFind(needle []T, start int) int {
	if start < 0 || start > u.n {
		start = u.n
	}
	if len(needle) == 0 {
		return start
	}
	hi := u.n - len(needle)
	if start < hi {
		hi = start
	}
	for i := hi; i >= 0; i-- {
		if u.matchAt(i, needle) {
			return i
		}
	}
	return NotFound
}

// FindFirstOf returns the lowest index at or after start holding any code
// point of set, or NotFound.
func (u *UString[T]) FindFirstOf(set []T, start int) int {
	if start < 0 {
		start = 0
	}
	for i := start; i < u.n; i++ {
		if containsCodePoint(set, u.buf[i]) {
			return i
		}
	}
	return NotFound
}

// FindFirstNotOf returns the lowest index at or after start holding a
// code point absent from set, or NotFound.
func (u *UString[T]) FindFirstNotOf(set []T, start int) int {
	if start < 0 {
		start = 0
	}
	for i := start; i < u.n; i++ {
		if !containsCodePoint(set, u.buf[i]) {
			return i
		}
	}
	return NotFound
}

// FindLastOf returns the highest index not exceeding start holding any
// code point of set, or NotFound. A negative start searches from the end.
func (u *UString[T]) FindLastOf(set []T, start int) int {
	for i := u.lastStart(start); i >= 0; i-- {
		if containsCodePoint(set, u.buf[i]) {
			return i
		}
	}
	return NotFound
}

// FindLastNotOf returns the highest index not exceeding start holding a
// code point absent from set, or NotFound. A negative start searches from
// the end.
func (u *UString[T]) FindLastNotOf(set []T, start int) int {
	for i := u.lastStart(start); i >= 0; i-- {
		if !containsCodePoint(set, u.buf[i]) {
			return i
		}
	}
	return NotFound
}

// Substr returns a new UString holding n code points starting at pos. A
// count reaching past the end is clipped; a pos past the end is an error.
func (u *UString[T]) Substr(pos, n int) (*UString[T], error) {
	if pos < 0 || pos > u.n {
		return nil, ErrIndexOutOfBounds
	}
	if n < 0 || n > u.n-pos {
		n = u.n - pos
	}
	v := &UString[T]{}
	if err := v.Assign(u.buf[pos : pos+n]); err != nil {
		return nil, err
	}
	return v, nil
}

func (u *UString[T]) matchAt(pos int, needle []T) bool {
	for j, cp := range needle {
		if u.buf[pos+j] != cp {
			return false
		}
	}
	return true
}

func (u *UString[T]) lastStart(start int) int {
	if start < 0 || start >= u.n {
		return u.n - 1
	}
	return start
}

func containsCodePoint[T codec.CodePoint](set []T, cp T) bool {
	for _, c := range set {
		if c == cp {
			return true
		}
	}
	return false
}
