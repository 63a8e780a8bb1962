package codec

import (
	"bytes"
	"testing"
)

// "a中b": one ASCII byte, a 3-byte character, one ASCII byte.
var mixed = []byte{'a', 0xE4, 0xB8, 0xAD, 'b'}

func TestCount(t *testing.T) {
	if n := Count(mixed); n != 3 {
		t.Errorf("Count = %d, want 3", n)
	}
	if n := Count(nil); n != 0 {
		t.Errorf("Count(nil) = %d, want 0", n)
	}
}

func TestByteToIndex(t *testing.T) {
	cases := []struct {
		off, index int
	}{
		{0, 0},
		{1, 1},
		{2, NotFound}, // inside the multi-byte character
		{3, NotFound},
		{4, 2},
		{5, NotFound}, // past the end
		{99, NotFound},
	}
	for _, c := range cases {
		if i := ByteToIndex(mixed, c.off); i != c.index {
			t.Errorf("ByteToIndex(%d) = %d, want %d", c.off, i, c.index)
		}
	}
}

func TestIndexToByte(t *testing.T) {
	cases := []struct {
		index, off int
	}{
		{0, 0},
		{1, 1},
		{2, 4},
		{3, NotFound},
	}
	for _, c := range cases {
		if off := IndexToByte(mixed, c.index); off != c.off {
			t.Errorf("IndexToByte(%d) = %d, want %d", c.index, off, c.off)
		}
	}
}

func TestByteIndexMap(t *testing.T) {
	m := ByteIndexMap(mixed)
	want := []int{0, 1, NotFound, NotFound, 2}
	if len(m) != len(want) {
		t.Fatalf("map has %d entries, want %d", len(m), len(want))
	}
	for i, v := range want {
		if m[i] != v {
			t.Errorf("entry %d = %d, want %d", i, m[i], v)
		}
	}
}

func TestIndexByteMap(t *testing.T) {
	m := IndexByteMap(mixed)
	want := []int{0, 1, 4}
	if len(m) != len(want) {
		t.Fatalf("map has %d entries, want %d", len(m), len(want))
	}
	for i, v := range want {
		if m[i] != v {
			t.Errorf("entry %d = %d, want %d", i, m[i], v)
		}
	}
}

// The bulk maps must match the per-position walks entry for entry.
func TestMapsAgreeWithWalks(t *testing.T) {
	b := EncodeAll([]uint64{'x', 0x7FF, 0x800, 0x10000, 0x3FFFFFF, 0x4000000, 0x80000000, 'y'})
	b2i := ByteIndexMap(b)
	for off := range b {
		if got := ByteToIndex(b, off); got != b2i[off] {
			t.Errorf("offset %d: ByteToIndex = %d, map = %d", off, got, b2i[off])
		}
	}
	i2b := IndexByteMap(b)
	for index := range i2b {
		if got := IndexToByte(b, index); got != i2b[index] {
			t.Errorf("index %d: IndexToByte = %d, map = %d", index, got, i2b[index])
		}
	}
}

func TestDecodeAndMap(t *testing.T) {
	cps, i2b, b2i, err := DecodeAndMap[uint32](mixed)
	if err != nil {
		t.Fatalf("unexpected decoding error: %v", err)
	}
	wantCps := []uint32{'a', 0x4E2D, 'b'}
	for i, cp := range wantCps {
		if cps[i] != cp {
			t.Errorf("code point #%d = %#x, want %#x", i, cps[i], cp)
		}
	}
	wantI2b := IndexByteMap(mixed)
	for i := range wantI2b {
		if i2b[i] != wantI2b[i] {
			t.Errorf("idx2byte[%d] = %d, want %d", i, i2b[i], wantI2b[i])
		}
	}
	wantB2i := ByteIndexMap(mixed)
	for i := range wantB2i {
		if b2i[i] != wantB2i[i] {
			t.Errorf("byte2idx[%d] = %d, want %d", i, b2i[i], wantB2i[i])
		}
	}
}

func TestCharAt(t *testing.T) {
	if c := CharAt(mixed, 1); !bytes.Equal(c, []byte{0xE4, 0xB8, 0xAD}) {
		t.Errorf("CharAt(1) = % x", c)
	}
	if c := CharAt(mixed, 2); !bytes.Equal(c, []byte{'b'}) {
		t.Errorf("CharAt(2) = % x", c)
	}
	if c := CharAt(mixed, 3); c != nil {
		t.Errorf("CharAt past end = % x, want nil", c)
	}
}

func TestSlice(t *testing.T) {
	if s := Slice(mixed, 1, 2); !bytes.Equal(s, mixed[1:]) {
		t.Errorf("Slice(1, 2) = % x", s)
	}
	if s := Slice(mixed, 0, 2); !bytes.Equal(s, mixed[:4]) {
		t.Errorf("Slice(0, 2) = % x", s)
	}
	// the count is clipped at the end of the sequence
	if s := Slice(mixed, 1, 99); !bytes.Equal(s, mixed[1:]) {
		t.Errorf("Slice(1, 99) = % x", s)
	}
	if s := Slice(mixed, 3, 1); s != nil {
		t.Errorf("Slice past end = % x, want nil", s)
	}
	if s := Slice(mixed, 0, 0); s != nil {
		t.Errorf("Slice with zero count = % x, want nil", s)
	}
}
