package core

import (
	"fmt"
	"iter"
	"math"
	"slices"
	"strconv"
	"strings"
)

// Pos addresses a grid cell. W is the column and H the row. Any pair is
// representable; validity is only checked when a Grid resolves it.
type Pos struct {
	W, H int
}

// String renders the position as "(w, h)".
func (p Pos) String() string {
	return fmt.Sprintf("(%d, %d)", p.W, p.H)
}

// Grid stores a fixed-size 2D field of boolean cells in row-major order.
// Dimensions never change after construction and every access is bounds
// checked against the flat backing slice.
type Grid struct {
	w, h int
	data []bool
}

// NewGrid builds a grid from cells, which must hold exactly w*h entries. The
// slice is copied so later writes by the caller do not reach the grid.
func NewGrid(w, h int, cells []bool) (*Grid, error) {
	if w <= 0 || h <= 0 {
		return nil, NewError(CodeDimensionMismatch,
			fmt.Sprintf("grid dimensions must be positive, got %dx%d", w, h),
			map[string]string{"width": strconv.Itoa(w), "height": strconv.Itoa(h)})
	}
	if w > math.MaxInt/h {
		return nil, NewError(CodeDimensionMismatch,
			fmt.Sprintf("grid %dx%d has more cells than an int can count", w, h),
			map[string]string{"width": strconv.Itoa(w), "height": strconv.Itoa(h)})
	}
	if len(cells) != w*h {
		return nil, NewError(CodeDimensionMismatch,
			fmt.Sprintf("grid %dx%d needs %d cells, got %d", w, h, w*h, len(cells)),
			map[string]string{
				"width":  strconv.Itoa(w),
				"height": strconv.Itoa(h),
				"len":    strconv.Itoa(len(cells)),
			})
	}
	return &Grid{w: w, h: h, data: slices.Clone(cells)}, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.w }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.h }

// Size returns the grid dimensions.
func (g *Grid) Size() Size { return Size{W: g.w, H: g.h} }

// Len returns the number of cells, width*height.
func (g *Grid) Len() int { return len(g.data) }

// Index returns the flat offset for p without checking it. The result wraps
// when p.W + p.H*width overflows an int; AtPos and SetPos do not.
func (g *Grid) Index(p Pos) int { return p.W + p.H*g.w }

// offset validates a flat offset.
func (g *Grid) offset(i int) (int, error) {
	if i < 0 || i >= len(g.data) {
		return 0, NewError(CodeOutOfRange,
			fmt.Sprintf("index %d out of range [0, %d)", i, len(g.data)),
			map[string]string{"index": strconv.Itoa(i), "len": strconv.Itoa(len(g.data))})
	}
	return i, nil
}

// posOffset resolves p to the offset p.W + p.H*width as if computed without
// overflow. p.W is split into whole rows and a column in [0, width) first, so
// a column past the right edge wraps into the next row as long as the offset
// stays inside the grid.
func (g *Grid) posOffset(p Pos) (int, error) {
	carry, col := p.W/g.w, p.W%g.w
	if col < 0 {
		carry--
		col += g.w
	}
	row := p.H + carry
	overflow := (carry > 0 && row < p.H) || (carry < 0 && row > p.H)
	if overflow || row < 0 || row >= g.h {
		return 0, NewError(CodeOutOfRange,
			fmt.Sprintf("position %v out of range on %dx%d grid", p, g.w, g.h),
			map[string]string{"pos": p.String(), "len": strconv.Itoa(len(g.data))})
	}
	return col + row*g.w, nil
}

// At returns the cell at flat offset i.
func (g *Grid) At(i int) (bool, error) {
	i, err := g.offset(i)
	if err != nil {
		return false, err
	}
	return g.data[i], nil
}

// AtPos returns the cell at p.
func (g *Grid) AtPos(p Pos) (bool, error) {
	i, err := g.posOffset(p)
	if err != nil {
		return false, err
	}
	return g.data[i], nil
}

// Set overwrites the cell at flat offset i.
func (g *Grid) Set(i int, v bool) error {
	i, err := g.offset(i)
	if err != nil {
		return err
	}
	g.data[i] = v
	return nil
}

// SetPos overwrites the cell at p.
func (g *Grid) SetPos(p Pos, v bool) error {
	i, err := g.posOffset(p)
	if err != nil {
		return err
	}
	g.data[i] = v
	return nil
}

// Contains reports whether any cell equals v.
func (g *Grid) Contains(v bool) bool {
	return slices.Contains(g.data, v)
}

// Count returns how many cells equal v.
func (g *Grid) Count(v bool) int {
	n := 0
	for _, c := range g.data {
		if c == v {
			n++
		}
	}
	return n
}

// All yields every cell in row-major order. The sequence can be ranged over
// any number of times.
func (g *Grid) All() iter.Seq[bool] {
	return func(yield func(bool) bool) {
		for _, c := range g.data {
			if !yield(c) {
				return
			}
		}
	}
}

// Cells returns a copy of the cell data in row-major order.
func (g *Grid) Cells() []bool { return slices.Clone(g.data) }

// String draws the grid one row per line, '#' for live cells and '.' for dead.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow((g.w + 1) * g.h)
	for y := 0; y < g.h; y++ {
		for x := 0; x < g.w; x++ {
			if g.data[y*g.w+x] {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
