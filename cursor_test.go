package vector_test

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"

	vec "github.com/gopvec/vector"
)

func buildInts(t *testing.T, n int) vec.Vector[int] {
	t.Helper()
	v := vec.Empty[int]()
	for i := 0; i < n; i++ {
		v = v.PushBack(i)
	}
	return v
}

func TestCursorForwardIteration(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pvector")
	defer teardown()

	const n = 100
	v := buildInts(t, n)

	got := make([]int, 0, n)
	for c := vec.Begin(v); !c.Equal(vec.End(v)); c = c.Next() {
		got = append(got, c.Value())
	}

	if len(got) != n {
		t.Fatalf("expected %d elements, got %d", n, len(got))
	}
	for i, x := range got {
		if x != i {
			t.Errorf("position %d: expected %d, got %d", i, i, x)
		}
	}
}

func TestCursorReverseIteration(t *testing.T) {
	const n = 100
	v := buildInts(t, n)

	var got []int
	for rc := vec.ReverseBegin(v); !rc.Equal(vec.ReverseEnd(v)); rc = rc.Next() {
		got = append(got, rc.Value())
	}

	if len(got) != n {
		t.Fatalf("expected %d elements, got %d", n, len(got))
	}
	for i, x := range got {
		want := n - 1 - i
		if x != want {
			t.Errorf("position %d: expected %d, got %d", i, want, x)
		}
	}
}

func TestCursorDistance(t *testing.T) {
	const n = 4096
	v := buildInts(t, n)

	if d := vec.Begin(v).DistanceTo(vec.End(v)); d != n {
		t.Errorf("expected distance %d, got %d", n, d)
	}
}

func TestCursorAdvance(t *testing.T) {
	const n = 2000
	v := buildInts(t, n)

	b := vec.Begin(v)
	for k := 0; k < n; k += 37 {
		c := b.Advance(k)
		if got := c.Value(); got != k {
			t.Errorf("advance(%d): expected %d, got %d", k, k, got)
		}
	}
}

func TestCursorAdvanceNegative(t *testing.T) {
	const n = 500
	v := buildInts(t, n)

	e := vec.End(v)
	c := e.Advance(-1)
	if got := c.Value(); got != n-1 {
		t.Errorf("expected %d, got %d", n-1, got)
	}

	c = c.Advance(-(n - 1))
	if got := c.Value(); got != 0 {
		t.Errorf("expected 0, got %d", got)
	}
}

func TestCursorDerefEndPanics(t *testing.T) {
	v := buildInts(t, 10)
	defer func() {
		if recover() == nil {
			t.Fatal("expected dereference of end cursor to panic")
		}
	}()
	vec.End(v).Value()
}

func TestCursorEmptyVectorBeginEqualsEnd(t *testing.T) {
	v := vec.Empty[int]()
	if !vec.Begin(v).Equal(vec.End(v)) {
		t.Fatal("begin and end should coincide for an empty vector")
	}
}

func TestCursorStepAcrossTailBoundary(t *testing.T) {
	// 65 elements: two full leaves in the main tree, plus a tail.
	const n = 65
	v := buildInts(t, n)

	c := vec.Begin(v)
	for i := 0; i < n; i++ {
		if got := c.Value(); got != i {
			t.Fatalf("position %d: expected %d, got %d", i, i, got)
		}
		if i < n-1 {
			c = c.Next()
		}
	}
}
