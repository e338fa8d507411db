package core

import (
	"errors"
	"math"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func mustGrid(t *testing.T, w, h int, cells []bool) *Grid {
	t.Helper()
	g, err := NewGrid(w, h, cells)
	if err != nil {
		t.Fatalf("NewGrid(%d, %d): %v", w, h, err)
	}
	return g
}

func TestGridRoundTrip(t *testing.T) {
	for _, size := range []Size{{1, 1}, {2, 3}, {7, 5}, {16, 16}} {
		cells := RandomCells(int64(size.Cells()), size.Cells(), 0.5)
		g := mustGrid(t, size.W, size.H, cells)

		got := make([]bool, 0, g.Len())
		for i := 0; i < g.Len(); i++ {
			v, err := g.At(i)
			if err != nil {
				t.Fatalf("%v: At(%d): %v", size, i, err)
			}
			got = append(got, v)
		}
		if diff := cmp.Diff(cells, got); diff != "" {
			t.Fatalf("%v: cells mismatch (-want +got):\n%s", size, diff)
		}
	}
}

func TestGridPositionMatchesFlatOffset(t *testing.T) {
	w, h := 5, 4
	g := mustGrid(t, w, h, RandomCells(3, w*h, 0.4))

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			byPos, err := g.AtPos(Pos{W: x, H: y})
			if err != nil {
				t.Fatalf("AtPos(%d,%d): %v", x, y, err)
			}
			byIdx, err := g.At(x + y*w)
			if err != nil {
				t.Fatalf("At(%d): %v", x+y*w, err)
			}
			if byPos != byIdx {
				t.Fatalf("cell (%d,%d) by position %v, by offset %v", x, y, byPos, byIdx)
			}
		}
	}
}

func TestGridBounds(t *testing.T) {
	g := mustGrid(t, 3, 2, make([]bool, 6))
	n := g.Len()

	for _, i := range []int{-1, n} {
		if _, err := g.At(i); !errors.Is(err, ErrOutOfRange) {
			t.Fatalf("At(%d) error = %v, want ErrOutOfRange", i, err)
		}
		if err := g.Set(i, true); !errors.Is(err, ErrOutOfRange) {
			t.Fatalf("Set(%d) error = %v, want ErrOutOfRange", i, err)
		}
	}
	for _, i := range []int{0, n - 1} {
		if _, err := g.At(i); err != nil {
			t.Fatalf("At(%d): %v", i, err)
		}
		if err := g.Set(i, true); err != nil {
			t.Fatalf("Set(%d): %v", i, err)
		}
	}
	if g.Count(true) != 2 {
		t.Fatalf("expected 2 live cells after edge writes, got %d", g.Count(true))
	}
}

func TestGridPositionBoundsUseFlatOffset(t *testing.T) {
	g := mustGrid(t, 3, 2, []bool{false, false, false, true, false, false})

	// (3, 0) is past the right edge but resolves to offset 3, which is inside.
	v, err := g.AtPos(Pos{W: 3, H: 0})
	if err != nil {
		t.Fatalf("AtPos(3,0): %v", err)
	}
	if !v {
		t.Fatal("AtPos(3,0) should read flat offset 3")
	}

	for _, p := range []Pos{
		{W: 0, H: 2},
		{W: -1, H: 0},
		{W: 3, H: 1},
		{W: math.MaxInt, H: 0},
		{W: math.MinInt, H: 0},
		{W: math.MaxInt, H: math.MaxInt},
		{W: math.MinInt, H: math.MinInt},
		{W: 0, H: math.MaxInt},
		{W: 0, H: math.MinInt},
	} {
		if _, err := g.AtPos(p); !errors.Is(err, ErrOutOfRange) {
			t.Fatalf("AtPos(%v) error = %v, want ErrOutOfRange", p, err)
		}
		if err := g.SetPos(p, true); !errors.Is(err, ErrOutOfRange) {
			t.Fatalf("SetPos(%v) error = %v, want ErrOutOfRange", p, err)
		}
	}
}

func TestGridPositionOffsetDoesNotWrap(t *testing.T) {
	g := mustGrid(t, 4, 1, []bool{true, false, false, false})

	// 4 * (MaxInt/2 + 1) wraps to 0 in int arithmetic.
	p := Pos{W: 0, H: math.MaxInt/2 + 1}
	if _, err := g.AtPos(p); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("AtPos(%v) error = %v, want ErrOutOfRange", p, err)
	}
	if err := g.SetPos(p, false); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("SetPos(%v) error = %v, want ErrOutOfRange", p, err)
	}
	if v, _ := g.At(0); !v {
		t.Fatal("rejected SetPos must not write cell 0")
	}
}

func TestGridPositionOffsetIsExact(t *testing.T) {
	g := mustGrid(t, 2, 1, []bool{true, false})

	// 2*(-MinInt/2) overflows an int, but MinInt + 2*(-MinInt/2) is exactly 0.
	p := Pos{W: math.MinInt, H: -(math.MinInt / 2)}
	v, err := g.AtPos(p)
	if err != nil {
		t.Fatalf("AtPos(%v): %v", p, err)
	}
	if !v {
		t.Fatalf("AtPos(%v) should resolve to offset 0", p)
	}
}

func TestGridSetIsLocal(t *testing.T) {
	w, h := 4, 4
	initial := RandomCells(11, w*h, 0.5)
	g := mustGrid(t, w, h, initial)

	target := Pos{W: 2, H: 1}
	idx := g.Index(target)
	want := !initial[idx]
	if err := g.SetPos(target, want); err != nil {
		t.Fatalf("SetPos: %v", err)
	}
	got, err := g.AtPos(target)
	if err != nil {
		t.Fatalf("AtPos: %v", err)
	}
	if got != want {
		t.Fatalf("AtPos after SetPos = %v, want %v", got, want)
	}

	expected := slices.Clone(initial)
	expected[idx] = want
	if diff := cmp.Diff(expected, g.Cells()); diff != "" {
		t.Fatalf("unexpected cells after single write (-want +got):\n%s", diff)
	}
}

func TestGridCopiesInput(t *testing.T) {
	cells := []bool{true, false, true, false}
	g := mustGrid(t, 2, 2, cells)

	cells[0] = false
	cells[1] = true

	if v, _ := g.At(0); !v {
		t.Fatal("grid changed after caller mutated construction slice at 0")
	}
	if v, _ := g.At(1); v {
		t.Fatal("grid changed after caller mutated construction slice at 1")
	}

	out := g.Cells()
	out[2] = false
	if v, _ := g.At(2); !v {
		t.Fatal("grid changed after caller mutated Cells() copy")
	}
}

func TestGridTwoByTwoScenario(t *testing.T) {
	g := mustGrid(t, 2, 2, []bool{false, true, false, false})

	if v, err := g.AtPos(Pos{W: 1, H: 0}); err != nil || !v {
		t.Fatalf("AtPos(1,0) = %v, %v; want true", v, err)
	}
	if v, err := g.AtPos(Pos{W: 0, H: 1}); err != nil || v {
		t.Fatalf("AtPos(0,1) = %v, %v; want false", v, err)
	}
	if g.Len() != 4 {
		t.Fatalf("Len() = %d, want 4", g.Len())
	}
	if !g.Contains(true) || !g.Contains(false) {
		t.Fatal("grid should contain both live and dead cells")
	}
	if got := g.String(); got != ".#\n..\n" {
		t.Fatalf("String() = %q", got)
	}
}

func TestGridContains(t *testing.T) {
	g := mustGrid(t, 3, 1, []bool{false, false, false})
	if g.Contains(true) {
		t.Fatal("empty grid should not contain a live cell")
	}
	if err := g.Set(1, true); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if !g.Contains(true) {
		t.Fatal("grid should contain a live cell after Set")
	}
}

func TestGridAllIsRestartable(t *testing.T) {
	cells := []bool{true, false, false, true, true, false}
	g := mustGrid(t, 3, 2, cells)

	for pass := 0; pass < 2; pass++ {
		got := slices.Collect(g.All())
		if diff := cmp.Diff(cells, got); diff != "" {
			t.Fatalf("pass %d mismatch (-want +got):\n%s", pass, diff)
		}
	}

	seen := 0
	for range g.All() {
		seen++
		if seen == 2 {
			break
		}
	}
	if seen != 2 {
		t.Fatalf("early break visited %d cells", seen)
	}
}

func TestNewGridRejectsMismatchedCells(t *testing.T) {
	cases := []struct {
		w, h  int
		cells []bool
	}{
		{2, 2, make([]bool, 3)},
		{2, 2, make([]bool, 5)},
		{3, 3, nil},
		{0, 4, nil},
		{-2, -2, make([]bool, 4)},
		{math.MaxInt/2 + 1, 4, nil},
		{math.MaxInt, math.MaxInt, make([]bool, 1)},
	}
	for _, tc := range cases {
		_, err := NewGrid(tc.w, tc.h, tc.cells)
		if !errors.Is(err, ErrDimensionMismatch) {
			t.Fatalf("NewGrid(%d, %d, len %d) error = %v, want ErrDimensionMismatch",
				tc.w, tc.h, len(tc.cells), err)
		}
	}
}

func TestPosString(t *testing.T) {
	if got := (Pos{W: 3, H: -1}).String(); got != "(3, -1)" {
		t.Fatalf("String() = %q", got)
	}
	a, b := Pos{W: 1, H: 2}, Pos{W: 1, H: 2}
	if a != b {
		t.Fatal("equal positions should compare equal")
	}
	if a == (Pos{W: 2, H: 1}) {
		t.Fatal("swapped coordinates should not compare equal")
	}
}
