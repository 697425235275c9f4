package minefield

import (
	"fmt"
	"iter"
	"slices"
)

type Position struct {
	Row, Col int
}

func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.Row, p.Col)
}

type Dimensions struct {
	Rows, Cols int
}

var StandardDimensions = Dimensions{Rows: 10, Cols: 10}

func (d Dimensions) String() string {
	return fmt.Sprintf("%dx%d", d.Rows, d.Cols)
}

func (d Dimensions) Contains(p Position) bool {
	return 0 <= p.Row && p.Row < d.Rows && 0 <= p.Col && p.Col < d.Cols
}

func (d Dimensions) index(p Position) int {
	return p.Row*d.Cols + p.Col
}

func (d Dimensions) position(i int) Position {
	return Position{Row: i / d.Cols, Col: i % d.Cols}
}

// Grid is a rectangular minesweeper board. Cells are stored row-major in a
// single buffer of Rows*Cols elements.
type Grid struct {
	dims  Dimensions
	cells []Cell
}

// NewEmpty returns a grid of the given shape where every cell is empty and
// undiscovered. Negative dimensions are treated as zero.
func NewEmpty(dims Dimensions) *Grid {
	dims.Rows, dims.Cols = max(dims.Rows, 0), max(dims.Cols, 0)
	cells := make([]Cell, dims.Rows*dims.Cols)
	for i := range cells {
		cells[i] = NewCell()
	}
	return &Grid{dims: dims, cells: cells}
}

// NewStandard returns an empty grid of [StandardDimensions].
func NewStandard() *Grid {
	return NewEmpty(StandardDimensions)
}

// NewRandom returns a standard grid with mines placed from src and hints
// derived from them.
func NewRandom(src IntSource) *Grid {
	g := NewStandard()
	g.PlaceMines(src)
	g.GenerateHints()
	return g
}

func (g *Grid) Dimensions() Dimensions {
	return g.dims
}

// At returns the cell at p. ok is false if p is outside the grid.
func (g *Grid) At(p Position) (cell Cell, ok bool) {
	if !g.dims.Contains(p) {
		return Cell{}, false
	}
	return g.cells[g.dims.index(p)], true
}

// SetStatus replaces the status of the cell at p.
func (g *Grid) SetStatus(p Position, s Status) error {
	if !g.dims.Contains(p) {
		return fmt.Errorf("set status at %s on %s grid: %w", p, g.dims, ErrOutOfBounds)
	}
	g.cells[g.dims.index(p)].Status = s
	return nil
}

// Reveal marks the single cell at p as discovered. Neighbors are left as
// they are.
func (g *Grid) Reveal(p Position) error {
	if !g.dims.Contains(p) {
		return fmt.Errorf("reveal %s on %s grid: %w", p, g.dims, ErrOutOfBounds)
	}
	g.cells[g.dims.index(p)].Discovered = true
	return nil
}

// RevealAll marks every cell as discovered.
func (g *Grid) RevealAll() {
	for i := range g.cells {
		g.cells[i].Discovered = true
	}
}

// Cells iterates over every cell in row-major order.
func (g *Grid) Cells() iter.Seq2[Position, Cell] {
	return func(yield func(Position, Cell) bool) {
		for i, cell := range g.cells {
			if !yield(g.dims.position(i), cell) {
				return
			}
		}
	}
}

func (g *Grid) MineCount() (n int) {
	for _, cell := range g.cells {
		if cell.Status.IsMine() {
			n++
		}
	}
	return
}

// Equal reports whether both grids have the same shape and the same cells.
func (g *Grid) Equal(other *Grid) bool {
	if g == nil || other == nil {
		return g == other
	}
	return g.dims == other.dims && slices.Equal(g.cells, other.cells)
}

// Clone returns a deep copy of g.
func (g *Grid) Clone() *Grid {
	return &Grid{dims: g.dims, cells: slices.Clone(g.cells)}
}
