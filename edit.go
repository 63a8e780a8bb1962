package ustring

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"github.com/npillmayer/ustring/codec"
)

// Assign replaces the contents with a copy of cps.
//
// An assignment much smaller than the current capacity releases the
// oversized block instead of keeping it around.
func (u *UString[T]) Assign(cps []T) error {
	if len(cps) > MaxSize {
		return ErrTooLong
	}
	if u.Cap() > 2*len(cps) {
		tracer().Debugf("ustring: assign releases oversized buffer (cap %d, need %d)", u.Cap(), len(cps))
		u.buf, u.n = nil, 0
	}
	if err := u.grow(len(cps)); err != nil {
		return err
	}
	copy(u.buf, cps)
	u.setLength(len(cps))
	return nil
}

// AssignBytes decodes an encoded byte sequence and assigns the result.
func (u *UString[T]) AssignBytes(b []byte) error {
	cps, err := codec.DecodeAll[T](b)
	if err != nil {
		return err
	}
	return u.Assign(cps)
}

// AssignString decodes the bytes of a Go string and assigns the result.
func (u *UString[T]) AssignString(s string) error {
	return u.AssignBytes([]byte(s))
}

// Append appends code points at the end of the string.
func (u *UString[T]) Append(cps ...T) error {
	return u.replace(u.n, 0, cps)
}

// AppendBytes decodes an encoded byte sequence and appends the result.
func (u *UString[T]) AppendBytes(b []byte) error {
	cps, err := codec.DecodeAll[T](b)
	if err != nil {
		return err
	}
	return u.replace(u.n, 0, cps)
}

// AppendString decodes the bytes of a Go string and appends the result.
func (u *UString[T]) AppendString(s string) error {
	return u.AppendBytes([]byte(s))
}

// Concat appends the contents of v.
func (u *UString[T]) Concat(v *UString[T]) error {
	return u.replace(u.n, 0, v.CodePoints())
}

// Insert inserts code points before position pos.
func (u *UString[T]) Insert(pos int, cps []T) error {
	return u.replace(pos, 0, cps)
}

// InsertString decodes the bytes of a Go string and inserts the result
// before position pos.
func (u *UString[T]) InsertString(pos int, s string) error {
	cps, err := codec.DecodeAll[T]([]byte(s))
	if err != nil {
		return err
	}
	return u.replace(pos, 0, cps)
}

// Erase removes n code points starting at position pos. A count reaching
// past the end is clipped.
func (u *UString[T]) Erase(pos, n int) error {
	return u.replace(pos, n, nil)
}

// Truncate shortens the string to n code points.
func (u *UString[T]) Truncate(n int) error {
	if n < 0 || n > u.n {
		return ErrIndexOutOfBounds
	}
	u.setLength(n)
	return nil
}

// Replace substitutes the n code points starting at pos with cps. A count
// reaching past the end is clipped.
func (u *UString[T]) Replace(pos, n int, cps []T) error {
	return u.replace(pos, n, cps)
}

// ReplaceString substitutes the n code points starting at pos with the
// decoded bytes of a Go string.
func (u *UString[T]) ReplaceString(pos, n int, s string) error {
	cps, err := codec.DecodeAll[T]([]byte(s))
	if err != nil {
		return err
	}
	return u.replace(pos, n, cps)
}

// CopyTo copies code points starting at pos into dst, up to len(dst) or
// the end of the string, and returns the number copied.
func (u *UString[T]) CopyTo(dst []T, pos int) (int, error) {
	if pos < 0 || pos > u.n {
		return 0, ErrIndexOutOfBounds
	}
	return copy(dst, u.buf[pos:u.n]), nil
}

// replace is the single mutation primitive behind append, insert, erase
// and replace: it substitutes the n1 code points at pos with src.
//
// The post-operation length (old length + n2 - n1) is computed and
// validated before any memory is touched; a failing call leaves the
// string unchanged. Shifting the tail uses copy, which tolerates
// overlapping ranges. src may be a view of u itself only when pos equals
// the current length (plain self-append); inserting a self-view into the
// middle is not supported.
func (u *UString[T]) replace(pos, n1 int, src []T) error {
	if pos < 0 || pos > u.n {
		return ErrIndexOutOfBounds
	}
	if n1 < 0 || n1 > u.n-pos {
		n1 = u.n - pos
	}
	n2 := len(src)
	if n2-n1 > MaxSize-u.n {
		return ErrTooLong
	}
	newlen := u.n + n2 - n1
	if err := u.grow(newlen); err != nil {
		return err
	}
	copy(u.buf[pos+n2:newlen], u.buf[pos+n1:u.n])
	copy(u.buf[pos:pos+n2], src)
	u.setLength(newlen)
	return nil
}
