package core

import "fmt"

// Size describes the dimensions of a grid.
type Size struct {
	W int
	H int
}

// Cells returns the number of cells a grid of this size holds.
func (s Size) Cells() int { return s.W * s.H }

// String renders the size as "WxH".
func (s Size) String() string { return fmt.Sprintf("%dx%d", s.W, s.H) }
