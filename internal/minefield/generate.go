package minefield

import "github.com/sirupsen/logrus"

// MineRate is the chance, in percent, of any single cell holding a mine.
const MineRate = 5

// neighbor offsets as (dRow, dCol), the cell itself excluded
var neighbors = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {0, 1},
	{-1, 1}, {1, 0}, {1, 1},
}

// PlaceMines runs one independent trial per cell: a draw in [1, 100] at or
// below [MineRate] turns the cell into a mine. No minimum or maximum number
// of mines is guaranteed.
func (g *Grid) PlaceMines(src IntSource) {
	for i := range g.cells {
		if src.IntN(100)+1 <= MineRate {
			g.cells[i].Status = Mine
		}
	}
	Log.WithFields(logrus.Fields{
		"dims":  g.dims.String(),
		"mines": g.MineCount(),
	}).Debug("placed mines")
}

// CountNearMines returns how many of the (up to) eight cells surrounding p
// hold a mine. Off-board neighbors count for nothing.
func (g *Grid) CountNearMines(p Position) int {
	count := 0
	for _, offset := range neighbors {
		q := Position{Row: p.Row + offset[0], Col: p.Col + offset[1]}
		if !g.dims.Contains(q) {
			continue
		}
		if g.cells[g.dims.index(q)].Status.IsMine() {
			count++
		}
	}
	return count
}

// ClearHints resets every cell that is not a mine to Empty, so that hints
// can be derived again with [Grid.GenerateHints].
func (g *Grid) ClearHints() {
	for i := range g.cells {
		if !g.cells[i].Status.IsMine() {
			g.cells[i].Status = Empty
		}
	}
}

// GenerateHints turns every non-mine cell with mined neighbors into a
// NearMine cell. It must run once, after all mines are placed; hints are
// never recomputed for mines added later.
func (g *Grid) GenerateHints() {
	for i := range g.cells {
		count := g.CountNearMines(g.dims.position(i))
		if count > 0 && !g.cells[i].Status.IsMine() {
			g.cells[i].Status = NearMine(count)
		}
	}
}
