package ustring

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestAssign(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	var u U32
	if err := u.Assign([]uint32{'a', 0x4E2D, 'b'}); err != nil {
		t.Fatal(err.Error())
	}
	if u.String() != "a中b" {
		t.Errorf("assigned string = %q", u.String())
	}
	if err := u.AssignString("other"); err != nil {
		t.Fatal(err.Error())
	}
	if u.String() != "other" {
		t.Errorf("re-assigned string = %q", u.String())
	}
}

func TestAssignReleasesOversizedBuffer(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	var u U32
	if err := u.Reserve(256); err != nil {
		t.Fatal(err.Error())
	}
	if err := u.AssignString("tiny"); err != nil {
		t.Fatal(err.Error())
	}
	if u.Cap() >= 256 {
		t.Errorf("assign kept an oversized buffer (cap %d)", u.Cap())
	}
	if u.String() != "tiny" {
		t.Errorf("assigned string = %q", u.String())
	}
}

func TestAppend(t *testing.T) {
	u, _ := FromString[uint32]("Hello")
	if err := u.AppendString(" World"); err != nil {
		t.Fatal(err.Error())
	}
	if err := u.Append(0x4E2D); err != nil {
		t.Fatal(err.Error())
	}
	if u.String() != "Hello World中" {
		t.Errorf("appended string = %q", u.String())
	}
	if u.Len() != 12 {
		t.Errorf("length = %d, want 12", u.Len())
	}
}

func TestConcat(t *testing.T) {
	a, _ := FromString[uint32]("Hello")
	b, _ := FromString[uint32](" World")
	if err := a.Concat(b); err != nil {
		t.Fatal(err.Error())
	}
	if a.String() != "Hello World" || b.String() != " World" {
		t.Errorf("concat yielded %q / %q", a.String(), b.String())
	}
}

func TestSelfConcat(t *testing.T) {
	u, _ := FromString[uint32]("ab")
	if err := u.Concat(u); err != nil {
		t.Fatal(err.Error())
	}
	if u.String() != "abab" {
		t.Errorf("self concat = %q", u.String())
	}
}

func TestInsert(t *testing.T) {
	u, _ := FromString[uint32]("Helo")
	if err := u.InsertString(2, "l"); err != nil {
		t.Fatal(err.Error())
	}
	if u.String() != "Hello" {
		t.Errorf("after insert: %q", u.String())
	}
	if err := u.Insert(99, []uint32{'x'}); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Errorf("insert past end: err = %v, want ErrIndexOutOfBounds", err)
	}
	if u.String() != "Hello" { // failing call must not mutate
		t.Errorf("failed insert mutated the string: %q", u.String())
	}
}

func TestErase(t *testing.T) {
	u, _ := FromString[uint32]("Hexxllo")
	if err := u.Erase(2, 2); err != nil {
		t.Fatal(err.Error())
	}
	if u.String() != "Hello" {
		t.Errorf("after erase: %q", u.String())
	}
	// a count past the end is clipped
	if err := u.Erase(3, 99); err != nil {
		t.Fatal(err.Error())
	}
	if u.String() != "Hel" {
		t.Errorf("after clipped erase: %q", u.String())
	}
	if err := u.Erase(4, 1); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Errorf("erase past end: err = %v, want ErrIndexOutOfBounds", err)
	}
}

func TestTruncate(t *testing.T) {
	u, _ := FromString[uint32]("abcdef")
	if err := u.Truncate(3); err != nil {
		t.Fatal(err.Error())
	}
	if u.String() != "abc" {
		t.Errorf("after truncate: %q", u.String())
	}
	if err := u.Truncate(4); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Errorf("truncate past length: err = %v, want ErrIndexOutOfBounds", err)
	}
}

func TestReplace(t *testing.T) {
	u, _ := FromString[uint32]("Hello World")
	if err := u.ReplaceString(6, 5, "中文"); err != nil {
		t.Fatal(err.Error())
	}
	if u.String() != "Hello 中文" {
		t.Errorf("after replace: %q", u.String())
	}
	// replacement shorter than the removed range shifts the tail left
	if err := u.Replace(0, 5, []uint32{'h', 'i'}); err != nil {
		t.Fatal(err.Error())
	}
	if u.String() != "hi 中文" {
		t.Errorf("after shrinking replace: %q", u.String())
	}
	// replacement longer than the removed range shifts the tail right
	if err := u.ReplaceString(0, 2, "servus"); err != nil {
		t.Fatal(err.Error())
	}
	if u.String() != "servus 中文" {
		t.Errorf("after growing replace: %q", u.String())
	}
}

func TestCopyTo(t *testing.T) {
	u, _ := FromString[uint32]("abcdef")
	dst := make([]uint32, 3)
	n, err := u.CopyTo(dst, 2)
	if err != nil {
		t.Fatal(err.Error())
	}
	if n != 3 || dst[0] != 'c' || dst[2] != 'e' {
		t.Errorf("CopyTo copied %d code points: %v", n, dst)
	}
	// copy near the end yields fewer code points
	n, err = u.CopyTo(dst, 4)
	if err != nil {
		t.Fatal(err.Error())
	}
	if n != 2 {
		t.Errorf("CopyTo near end copied %d code points", n)
	}
	if _, err = u.CopyTo(dst, 7); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Errorf("CopyTo past end: err = %v, want ErrIndexOutOfBounds", err)
	}
}

// Any sequence of appends and inserts must keep all values readable in
// order, with the length equal to the number of inserted code points.
func TestGrowthPreservesContent(t *testing.T) {
	var u U32
	want := make([]uint32, 0, 300)
	for i := 0; i < 100; i++ {
		cp := uint32(0x100 + i)
		if i%3 == 0 && len(want) > 0 {
			pos := i % len(want)
			if err := u.Insert(pos, []uint32{cp}); err != nil {
				t.Fatal(err.Error())
			}
			want = append(want[:pos], append([]uint32{cp}, want[pos:]...)...)
		} else {
			if err := u.Append(cp); err != nil {
				t.Fatal(err.Error())
			}
			want = append(want, cp)
		}
	}
	if u.Len() != len(want) {
		t.Fatalf("length = %d, want %d", u.Len(), len(want))
	}
	for i, cp := range want {
		got, err := u.At(i)
		if err != nil {
			t.Fatal(err.Error())
		}
		if got != cp {
			t.Fatalf("u[%d] = %#x, want %#x", i, got, cp)
		}
	}
}
