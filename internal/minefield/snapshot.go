package minefield

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Snapshot pairs a board in debug text format with the seed it was
// generated from. Seed is zero for boards that were not generated.
type Snapshot struct {
	Seed  uint64 `yaml:"seed,omitempty"`
	Board string `yaml:"board"`
}

// NewSeededSnapshot generates a random board from seed.
func NewSeededSnapshot(seed uint64) *Snapshot {
	return &Snapshot{
		Seed:  seed,
		Board: NewRandom(NewSource(seed)).Text(),
	}
}

func (s *Snapshot) Grid() *Grid {
	return Decode(s.Board)
}

func (s *Snapshot) Serialize() ([]byte, error) {
	out, err := yaml.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("unable to serialize snapshot: %w", err)
	}
	return out, nil
}

func LoadSnapshot(in []byte) (*Snapshot, error) {
	var snapshot Snapshot
	if err := yaml.Unmarshal(in, &snapshot); err != nil {
		return nil, fmt.Errorf("unable to load snapshot: %w", err)
	}
	return &snapshot, nil
}
