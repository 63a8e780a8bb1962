package codec

import "math/bits"

// CodePoint constrains the unsigned integer types usable as decoded
// character storage. All algorithms in this module are width-agnostic;
// 16-bit instantiations simply cover a smaller code point range.
type CodePoint interface {
	~uint16 | ~uint32 | ~uint64
}

// NotFound is returned by position queries for offsets or indexes that do
// not correspond to a character boundary.
const NotFound = -1

// ScanWidth returns the number of bytes of the first encoded character by
// counting the continuation bytes that follow it.
//
// The scan is bounded by len(b) and never dereferences past it; a truncated
// trailing character therefore reports only the bytes actually present.
// For an empty slice the width defaults to 1 without touching memory.
func ScanWidth(b []byte) int {
	w := 1
	for w < len(b) && b[w]&0xC0 == 0x80 {
		w++
	}
	return w
}

// LeadWidth returns the width signalled by the high bits of a lead byte.
//
// The result is the full signalled width in [1,7], regardless of how many
// bytes actually remain in the caller's buffer; callers either have
// validated bounds or clamp the width themselves.
func LeadWidth(b byte) int {
	switch {
	case b&0xFE == 0xFE: // 1111111X -> seven bytes
		return 7
	case b&0xFE == 0xFC: // 1111110X -> six bytes
		return 6
	case b&0xFC == 0xF8: // 111110XX -> five bytes
		return 5
	case b&0xF8 == 0xF0: // 11110XXX -> four bytes
		return 4
	case b&0xF0 == 0xE0: // 1110XXXX -> three bytes
		return 3
	case b&0xE0 == 0xC0: // 110XXXXX -> two bytes
		return 2
	}
	return 1
}

// leadWidthCLZ is the leading-zero-count formulation of LeadWidth.
// Both must agree on every byte value; tests cross-check them.
func leadWidthCLZ(b byte) int {
	ones := bits.LeadingZeros8(^b)
	switch {
	case ones < 2: // ASCII or a stray continuation byte
		return 1
	case ones > 7: // 0xFF carries no payload bit; clamp to the 7-unit form
		return 7
	}
	return ones
}

// Width returns the number of bytes a code point occupies when encoded.
func Width[T CodePoint](cp T) int {
	v := uint64(cp)
	switch {
	case v <= 0x7F:
		return 1
	case v <= 0x7FF:
		return 2
	case v <= 0xFFFF:
		return 3
	case v <= 0x1FFFFF:
		return 4
	case v <= 0x3FFFFFF:
		return 5
	case v <= 0x7FFFFFFF:
		return 6
	}
	return 7
}

// widthTable maps bit-length-1 of a code point to its encoded width.
var widthTable = [32]int8{
	1, 1, 1, 1, 1, 1, 1, 2, 2, 2, 2, 3, 3, 3, 3, 3,
	4, 4, 4, 4, 4, 5, 5, 5, 5, 5, 6, 6, 6, 6, 6, 7,
}

// widthLUT is the bit-length lookup formulation of Width.
// Both must agree on every code point; tests cross-check them.
func widthLUT[T CodePoint](cp T) int {
	v := uint64(cp)
	if v == 0 {
		return 1
	}
	n := bits.Len64(v)
	if n > 32 {
		return 7
	}
	return int(widthTable[n-1])
}

// EncodedLen returns the number of bytes the code points occupy when
// encoded.
func EncodedLen[T CodePoint](cps []T) int {
	n := 0
	for _, cp := range cps {
		n += Width(cp)
	}
	return n
}
