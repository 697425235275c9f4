package minefield

type Cell struct {
	Status     Status
	Discovered bool
}

// NewCell returns an empty cell which has not been discovered.
func NewCell() Cell {
	return Cell{Status: Empty}
}
