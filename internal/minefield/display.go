package minefield

import "strings"

// Revealed renders the grid as a player sees it: undiscovered cells are
// masked with '#', discovered ones show their content with empty cells as
// blanks. Every row, the last included, ends with a newline.
func (g *Grid) Revealed() string {
	var b strings.Builder
	b.Grow(g.dims.Rows * (g.dims.Cols + 1))
	for y := range g.dims.Rows {
		for _, cell := range g.cells[y*g.dims.Cols : (y+1)*g.dims.Cols] {
			if !cell.Discovered {
				b.WriteByte('#')
			} else {
				b.WriteString(cell.Status.revealedString())
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
