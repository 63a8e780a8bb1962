package codec

import "fmt"

// Decode decodes the first character of b into a code point, given the
// number of bytes it is made of.
//
// For width 1 the byte value is returned unchanged. For larger widths the
// payload bits of the lead byte are folded with six bits from each
// continuation byte. The continuation markers are not re-validated here.
// The loop is clamped to len(b), so a width larger than the bytes present
// decodes best-effort from the bytes at hand.
func Decode[T CodePoint](b []byte, width int) T {
	if len(b) == 0 {
		return 0
	}
	cp := T(b[0])
	if width > 1 {
		cp &= T(0x7F >> uint(width))
		for i := 1; i < width && i < len(b); i++ {
			cp = cp<<6 | T(b[i]&0x3F)
		}
	}
	return cp
}

// DecodeNext decodes the first character of b and returns it together with
// the number of bytes it used. An empty slice yields (0, 0).
func DecodeNext[T CodePoint](b []byte) (T, int) {
	if len(b) == 0 {
		return 0, 0
	}
	w := ScanWidth(b)
	return Decode[T](b, w), w
}

// Encode writes the encoded form of cp into dst, which must hold at least
// width bytes. Continuation bytes are written right to left, six payload
// bits each; the lead byte combines the width marker with the remaining
// high bits.
func Encode[T CodePoint](dst []byte, cp T, width int) {
	if width <= 1 {
		dst[0] = byte(cp)
		return
	}
	v := uint64(cp)
	for i := width - 1; i > 0; i-- {
		dst[i] = 0x80 | byte(v)&0x3F
		v >>= 6
	}
	dst[0] = byte(uint16(0xFF00)>>uint(width)) | byte(v)
}

// AppendCodePoint appends the encoded form of cp to dst and returns the
// extended slice.
func AppendCodePoint[T CodePoint](dst []byte, cp T) []byte {
	var scratch [7]byte
	w := Width(cp)
	Encode(scratch[:], cp, w)
	return append(dst, scratch[:w]...)
}

// DecodeAll decodes b into a flat sequence of code points.
//
// Decoding is best-effort with respect to truncated trailing characters
// (see Validate for strict checking), but a code point that does not fit
// the storage type T is rejected with ErrCodeOverflow rather than
// silently truncated.
func DecodeAll[T CodePoint](b []byte) ([]T, error) {
	cps := make([]T, 0, len(b))
	for cur := 0; cur < len(b); {
		w := ScanWidth(b[cur:])
		v := Decode[uint64](b[cur:], w)
		cp := T(v)
		if uint64(cp) != v {
			tracer().Debugf("decode: code point %#x at byte %d overflows storage type", v, cur)
			return nil, ErrCodeOverflow
		}
		cps = append(cps, cp)
		cur += w
	}
	return cps, nil
}

// DecodeAllStrict decodes b like DecodeAll, but rejects input that does
// not validate, wrapping ErrMalformed with the offending byte offset.
func DecodeAllStrict[T CodePoint](b []byte) ([]T, error) {
	if off := Validate(b); off != NotFound {
		return nil, fmt.Errorf("%w at byte %d", ErrMalformed, off)
	}
	return DecodeAll[T](b)
}

// EncodeAll encodes a sequence of code points into its byte form.
func EncodeAll[T CodePoint](cps []T) []byte {
	buf := make([]byte, 0, EncodedLen(cps))
	for _, cp := range cps {
		buf = AppendCodePoint(buf, cp)
	}
	return buf
}

// Validate checks b strictly against the encoding scheme and returns the
// byte offset of the first malformed character, or NotFound if b is a
// well-formed sequence.
//
// A character is malformed if its lead byte is a stray continuation byte,
// if the signalled width would read past the end of b, or if the
// continuation run does not match the signalled width exactly.
func Validate(b []byte) int {
	for cur := 0; cur < len(b); {
		if b[cur]&0xC0 == 0x80 {
			return cur
		}
		w := LeadWidth(b[cur])
		if cur+w > len(b) {
			return cur
		}
		for i := 1; i < w; i++ {
			if b[cur+i]&0xC0 != 0x80 {
				return cur
			}
		}
		if cur+w < len(b) && b[cur+w]&0xC0 == 0x80 {
			return cur // continuation run longer than the signalled width
		}
		cur += w
	}
	return NotFound
}

// Validate16 returns the byte offset of the first character that does not
// fit 16-bit storage (i.e. occupies more than three bytes), or NotFound if
// the whole sequence is representable in a 16-bit instantiation.
func Validate16(b []byte) int {
	for cur := 0; cur < len(b); {
		w := ScanWidth(b[cur:])
		if w > 3 {
			return cur
		}
		cur += w
	}
	return NotFound
}
