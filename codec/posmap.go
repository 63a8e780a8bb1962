package codec

// Count returns the number of characters in the encoded sequence b.
func Count(b []byte) int {
	n := 0
	for cur := 0; cur < len(b); {
		cur += ScanWidth(b[cur:])
		n++
	}
	return n
}

// ByteToIndex converts a byte offset into the corresponding character
// index. It returns NotFound if off lands inside a multi-byte character or
// past the end of b.
func ByteToIndex(b []byte, off int) int {
	index := 0
	for cur := 0; cur < len(b); {
		if cur == off {
			return index
		}
		if cur > off {
			return NotFound
		}
		cur += ScanWidth(b[cur:])
		index++
	}
	return NotFound
}

// IndexToByte converts a character index into the byte offset where that
// character starts. It returns NotFound if index is past the character
// count.
func IndexToByte(b []byte, index int) int {
	i := 0
	for cur := 0; cur < len(b); {
		if i == index {
			return cur
		}
		i++
		cur += ScanWidth(b[cur:])
	}
	return NotFound
}

// ByteIndexMap builds the byte-offset to character-index map in one pass.
//
// The returned slice has one entry per byte of b: entries at a character's
// first byte hold that character's index, entries at continuation bytes
// hold NotFound. Callers doing many offset lookups should prefer this over
// repeated ByteToIndex walks.
func ByteIndexMap(b []byte) []int {
	m := make([]int, len(b))
	index := 0
	for cur := 0; cur < len(b); {
		w := ScanWidth(b[cur:])
		m[cur] = index
		for i := 1; i < w && cur+i < len(b); i++ {
			m[cur+i] = NotFound
		}
		index++
		cur += w
	}
	return m
}

// IndexByteMap builds the character-index to byte-offset map in one pass.
// The returned slice is strictly increasing and has one entry per
// character.
func IndexByteMap(b []byte) []int {
	m := make([]int, 0, len(b))
	for cur := 0; cur < len(b); {
		m = append(m, cur)
		cur += ScanWidth(b[cur:])
	}
	return m
}

// DecodeAndMap decodes b and builds both position maps in a single pass.
//
// It returns the decoded code points, the index-to-byte map and the
// byte-to-index map. Storage overflow is rejected like in DecodeAll.
func DecodeAndMap[T CodePoint](b []byte) (cps []T, idx2byte []int, byte2idx []int, err error) {
	cps = make([]T, 0, len(b))
	idx2byte = make([]int, 0, len(b))
	byte2idx = make([]int, len(b))
	index := 0
	for cur := 0; cur < len(b); {
		w := ScanWidth(b[cur:])
		v := Decode[uint64](b[cur:], w)
		cp := T(v)
		if uint64(cp) != v {
			return nil, nil, nil, ErrCodeOverflow
		}
		cps = append(cps, cp)
		idx2byte = append(idx2byte, cur)
		byte2idx[cur] = index
		for i := 1; i < w && cur+i < len(b); i++ {
			byte2idx[cur+i] = NotFound
		}
		index++
		cur += w
	}
	return cps, idx2byte, byte2idx, nil
}

// CharAt returns the encoded bytes of the character at the given index, as
// a subslice of b. It returns nil if index is past the character count.
//
// This is a one-shot forward walk; callers doing many indexed accesses
// should build the maps instead.
func CharAt(b []byte, index int) []byte {
	i := 0
	for cur := 0; cur < len(b); {
		w := ScanWidth(b[cur:])
		if i == index {
			return b[cur : cur+w]
		}
		cur += w
		i++
	}
	return nil
}

// Slice returns the encoded bytes of n characters starting at the given
// character index, as a subslice of b. The count is clipped at the end of
// the sequence; an out-of-range index or a zero count yields nil.
func Slice(b []byte, index, n int) []byte {
	if n <= 0 {
		return nil
	}
	i, start := 0, 0
	for cur := 0; cur < len(b); {
		if i == index {
			start = cur
		}
		if i > index && i-index == n {
			return b[start:cur]
		}
		cur += ScanWidth(b[cur:])
		i++
	}
	if i <= index {
		return nil
	}
	return b[start:]
}
