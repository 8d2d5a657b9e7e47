package buffer

import (
	"errors"
	"reflect"
	"testing"

	"github.com/danmuck/calckit/internal/testutil/testlog"
)

func TestZeroValueUsable(t *testing.T) {
	var b LogBuffer
	b.Append(1, 2, 3)
	if b.Len() != 3 {
		t.Fatalf("unexpected len: %d", b.Len())
	}
}

func TestAppendAndAt(t *testing.T) {
	testlog.Start(t)
	b := New(4)
	b.Append(10)
	b.Append(20, 30)

	if b.Len() != 3 {
		t.Fatalf("unexpected len: %d", b.Len())
	}
	v, err := b.At(1)
	if err != nil {
		t.Fatalf("at: %v", err)
	}
	if v != 20 {
		t.Fatalf("unexpected value at 1: %d", v)
	}
}

func TestAtOutOfRange(t *testing.T) {
	b := New(0)
	b.Append(1)
	for _, i := range []int{-1, 1, 99} {
		if _, err := b.At(i); !errors.Is(err, ErrIndexOutOfRange) {
			t.Fatalf("At(%d): expected ErrIndexOutOfRange, got %v", i, err)
		}
	}
}

func TestValuesSnapshotDoesNotAlias(t *testing.T) {
	b := New(2)
	b.Append(1, 2)

	vs := b.Values()
	vs[0] = 99

	got, _ := b.At(0)
	if got != 1 {
		t.Fatalf("mutating snapshot leaked into buffer: %d", got)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	testlog.Start(t)
	src := New(4)
	src.Append(1, 2, 3)

	dup := src.Clone()
	if !reflect.DeepEqual(dup.Values(), src.Values()) {
		t.Fatalf("clone contents differ: %v vs %v", dup.Values(), src.Values())
	}

	dup.Append(4)
	src.Append(9)

	if src.Len() != 4 || dup.Len() != 4 {
		t.Fatalf("unexpected lens after divergence: src=%d dup=%d", src.Len(), dup.Len())
	}
	if v, _ := src.At(3); v != 9 {
		t.Fatalf("source saw clone's write: %d", v)
	}
	if v, _ := dup.At(3); v != 4 {
		t.Fatalf("clone saw source's write: %d", v)
	}
}

func TestTakeTransfersOwnership(t *testing.T) {
	testlog.Start(t)
	b := New(4)
	b.Append(5, 6, 7)

	got := b.Take()
	if !reflect.DeepEqual(got, []int64{5, 6, 7}) {
		t.Fatalf("unexpected contents: %v", got)
	}
	if b.Len() != 0 {
		t.Fatalf("buffer not empty after take: %d", b.Len())
	}

	// The buffer stays usable and never touches the moved-out slice.
	b.Append(8)
	if got[0] != 5 || b.Len() != 1 {
		t.Fatalf("post-take append corrupted state: got=%v len=%d", got, b.Len())
	}
}

func TestTakeEmpty(t *testing.T) {
	var b LogBuffer
	got := b.Take()
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", got)
	}
}

func TestReset(t *testing.T) {
	b := New(2)
	b.Append(1, 2)
	b.Reset()
	if b.Len() != 0 {
		t.Fatalf("unexpected len after reset: %d", b.Len())
	}
	b.Append(3)
	if v, _ := b.At(0); v != 3 {
		t.Fatalf("unexpected value after reset+append: %d", v)
	}
}
