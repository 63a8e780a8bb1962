package ustring

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"github.com/npillmayer/ustring/codec"
)

// UString is a growable string of decoded code points.
//
// A UString created by
//
//	UString[uint32]{}
//
// is a valid object and behaves like the empty string.
//
// The backing buffer always holds one slot more than the length: the slot
// at index Len() carries the code point 0 after every mutating operation.
// The sentinel is not part of the string; it exists so that views handed
// out to zero-terminated consumers stay valid across reads.
//
// Methods that take or return positions use code point indexes, not byte
// offsets; the byte view of a UString is produced on demand by Bytes.
type UString[T codec.CodePoint] struct {
	buf []T // backing storage, len = capacity+1 when allocated
	n   int // code points in use
}

// U16 is a string of 16-bit code points (the basic multilingual plane).
type U16 = UString[uint16]

// U32 is a string of 32-bit code points.
type U32 = UString[uint32]

const maxInt = int(^uint(0) >> 1)

// MaxSize is the maximum number of code points a UString may hold. A
// quarter of the int range keeps every length and byte-size computation
// free of overflow, widths being at most 7.
const MaxSize = maxInt >> 2

// NotFound is returned by the search operations for unsuccessful searches,
// and by position queries for offsets that do not hit a character.
const NotFound = codec.NotFound

// FromCodePoints creates a UString holding a copy of cps.
func FromCodePoints[T codec.CodePoint](cps []T) (*UString[T], error) {
	u := &UString[T]{}
	if err := u.Assign(cps); err != nil {
		return nil, err
	}
	return u, nil
}

// FromBytes creates a UString by decoding an encoded byte sequence.
// Input with code points too wide for T is rejected with
// codec.ErrCodeOverflow.
func FromBytes[T codec.CodePoint](b []byte) (*UString[T], error) {
	cps, err := codec.DecodeAll[T](b)
	if err != nil {
		return nil, err
	}
	return Adopt(cps)
}

// FromString creates a UString by decoding the bytes of a Go string.
func FromString[T codec.CodePoint](s string) (*UString[T], error) {
	return FromBytes[T]([]byte(s))
}

// Adopt creates a UString taking ownership of cps. The slice must not be
// used by the caller afterwards. When cps has spare capacity the backing
// array is reused without a copy.
func Adopt[T codec.CodePoint](cps []T) (*UString[T], error) {
	if len(cps) > MaxSize {
		return nil, ErrTooLong
	}
	u := &UString[T]{}
	u.buf = append(cps, 0) // sentinel slot
	u.n = len(cps)
	return u, nil
}

// Len returns the number of code points in the string.
func (u *UString[T]) Len() int {
	return u.n
}

// IsEmpty reports whether the string has no code points.
func (u *UString[T]) IsEmpty() bool {
	return u.n == 0
}

// Cap returns the number of code points the string can hold without
// reallocating. The sentinel slot is not counted.
func (u *UString[T]) Cap() int {
	if u.buf == nil {
		return 0
	}
	return len(u.buf) - 1
}

// CodePoints returns a view of the string's code points. The view aliases
// the backing buffer and is invalidated by the next mutating operation.
func (u *UString[T]) CodePoints() []T {
	if u.buf == nil {
		return nil
	}
	return u.buf[:u.n]
}

// At returns the code point at index i.
func (u *UString[T]) At(i int) (T, error) {
	if i < 0 || i >= u.n {
		return 0, ErrIndexOutOfBounds
	}
	return u.buf[i], nil
}

// Set overwrites the code point at index i.
func (u *UString[T]) Set(i int, cp T) error {
	if i < 0 || i >= u.n {
		return ErrIndexOutOfBounds
	}
	u.buf[i] = cp
	return nil
}

// Clone returns a deep copy of the string.
func (u *UString[T]) Clone() *UString[T] {
	v := &UString[T]{}
	if u.n > 0 {
		v.buf = make([]T, u.n+1)
		copy(v.buf, u.buf[:u.n])
		v.n = u.n
	}
	return v
}

// Take transfers ownership of the backing buffer to a new UString and
// leaves u empty. This is the move operation: no code points are copied
// and u remains a valid, empty string.
func (u *UString[T]) Take() *UString[T] {
	v := &UString[T]{buf: u.buf, n: u.n}
	u.buf, u.n = nil, 0
	return v
}

// Swap exchanges contents and capacity with v.
func (u *UString[T]) Swap(v *UString[T]) {
	u.buf, v.buf = v.buf, u.buf
	u.n, v.n = v.n, u.n
}

// Reserve grows the capacity to at least n code points. It never shrinks
// the buffer and never drops content.
func (u *UString[T]) Reserve(n int) error {
	if n > MaxSize {
		return ErrTooLong
	}
	return u.grow(n)
}

// Resize sets the length to n, filling new slots with the given code
// point when growing.
func (u *UString[T]) Resize(n int, fill T) error {
	if n < 0 {
		return ErrIndexOutOfBounds
	}
	if n <= u.n {
		u.setLength(n)
		return nil
	}
	if err := u.grow(n); err != nil {
		return err
	}
	for i := u.n; i < n; i++ {
		u.buf[i] = fill
	}
	u.setLength(n)
	return nil
}

// Clear empties the string, keeping the allocation for reuse.
func (u *UString[T]) Clear() {
	u.setLength(0)
}

// ShrinkToFit reallocates the buffer down to the current length.
func (u *UString[T]) ShrinkToFit() {
	if u.buf == nil || u.Cap() == u.n {
		return
	}
	if u.n == 0 {
		u.buf = nil
		return
	}
	tracer().Debugf("ustring: shrinking capacity %d to length %d", u.Cap(), u.n)
	nb := make([]T, u.n+1)
	copy(nb, u.buf[:u.n])
	u.buf = nb
}

// Push appends a single code point.
func (u *UString[T]) Push(cp T) error {
	if err := u.grow(u.n + 1); err != nil {
		return err
	}
	u.buf[u.n] = cp
	u.setLength(u.n + 1)
	return nil
}

// Pop removes and returns the last code point.
func (u *UString[T]) Pop() (T, error) {
	if u.n == 0 {
		return 0, ErrIndexOutOfBounds
	}
	cp := u.buf[u.n-1]
	u.setLength(u.n - 1)
	return cp, nil
}

// grow ensures capacity for need code points, plus the sentinel slot.
// Growth at least doubles the old capacity, giving amortized constant
// cost per appended code point; the result is clamped to MaxSize.
// Content is preserved; on failure nothing is touched.
func (u *UString[T]) grow(need int) error {
	if need > MaxSize {
		return ErrTooLong
	}
	if need <= u.Cap() {
		return nil
	}
	newcap := u.Cap() * 2
	if newcap < need {
		newcap = need
	}
	if newcap > MaxSize {
		newcap = MaxSize
	}
	nb := make([]T, newcap+1)
	copy(nb, u.buf[:u.n])
	u.buf = nb
	return nil
}

// setLength commits a new length and plants the sentinel. Callers have
// already ensured capacity.
func (u *UString[T]) setLength(n int) {
	assert(n == 0 || u.buf != nil, "ustring: length set on unallocated buffer")
	u.n = n
	if u.buf != nil {
		u.buf[n] = 0
	}
}
