package minefield

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Decode parses the debug text format:
//
//	*  empty
//	X  mine
//	1-8  hint
//
// Each line is a row. Blank lines are skipped and any unknown character
// decodes as an empty cell, so Decode never fails. Rows shorter than the
// longest one are padded with empty cells.
func Decode(text string) *Grid {
	var (
		rows [][]Cell
		row  []Cell
		cols int
	)
	flush := func() {
		if len(row) == 0 {
			return
		}
		rows = append(rows, row)
		cols = max(cols, len(row))
		row = nil
	}
	for _, c := range text {
		if c == '\n' {
			flush()
			continue
		}
		row = append(row, Cell{Status: parseStatus(c)})
	}
	flush()

	g := NewEmpty(Dimensions{Rows: len(rows), Cols: cols})
	for y, r := range rows {
		copy(g.cells[y*cols:(y+1)*cols], r)
	}
	Log.WithFields(logrus.Fields{
		"dims":  g.dims.String(),
		"mines": g.MineCount(),
	}).Debug("decoded grid")
	return g
}

func DecodeReader(r io.Reader) (*Grid, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("unable to read grid: %w", err)
	}
	return Decode(string(b)), nil
}

func DecodeFile(path string) (*Grid, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read grid file: %w", err)
	}
	return Decode(string(b)), nil
}

// Text encodes g in the debug text format. Rows are joined by newlines with
// no newline after the last row. Discovered flags are not encoded.
func (g *Grid) Text() string {
	var b strings.Builder
	for y := range g.dims.Rows {
		if y > 0 {
			b.WriteByte('\n')
		}
		for _, cell := range g.cells[y*g.dims.Cols : (y+1)*g.dims.Cols] {
			b.WriteString(cell.Status.String())
		}
	}
	return b.String()
}

// Grid implements [fmt.Stringer]
func (g *Grid) String() string {
	return g.Text()
}

// Grid implements [encoding.TextMarshaler]
func (g *Grid) MarshalText() ([]byte, error) {
	return []byte(g.Text()), nil
}

// Grid implements [encoding.TextUnmarshaler]
func (g *Grid) UnmarshalText(text []byte) error {
	*g = *Decode(string(text))
	return nil
}
