package minefield

import (
	"math"
	"strconv"
)

type Status int8

const (
	Mine  Status = -1
	Empty Status = 0
	// 1 to 8 for an empty cell with that many mined neighbors
)

// NearMine returns the hint status for a cell with count mined neighbors.
// NearMine(0) is Empty. Counts that do not fit a Status saturate to an
// out-of-range value, never to Mine.
func NearMine(count int) Status {
	switch {
	case count > math.MaxInt8:
		return math.MaxInt8
	case count < 0:
		return math.MinInt8
	default:
		return Status(count)
	}
}

func (s Status) IsMine() bool {
	return s == Mine
}

// Hint reports the neighbor count carried by a NearMine status.
func (s Status) Hint() (int, bool) {
	if s > 0 {
		return int(s), true
	}
	return 0, false
}

// Status implements [fmt.Stringer] using the debug text alphabet.
func (s Status) String() string {
	switch {
	case s == Mine:
		return "X"
	case s == Empty:
		return "*"
	case 1 <= s && s <= 9:
		return strconv.Itoa(int(s))
	default:
		return "?"
	}
}

// revealedString is String with Empty shown as a blank.
func (s Status) revealedString() string {
	if s == Empty {
		return " "
	}
	return s.String()
}

func parseStatus(c rune) Status {
	switch {
	case c == 'X':
		return Mine
	case '1' <= c && c <= '8':
		return NearMine(int(c - '0'))
	default:
		return Empty
	}
}
