package store

import (
	"database/sql"
	"errors"
	"fmt"
	"sync"

	_ "github.com/mattn/go-sqlite3"

	"github.com/vancomm/minefield/internal/minefield"
)

// Store keeps named boards in a SQLite table, one row per board, with the
// board held in the debug text format.
type Store struct {
	mu    sync.Mutex
	table string
	db    *sql.DB
}

var (
	ErrBadName  = errors.New("bad name for store")
	ErrNotFound = errors.New("board not found")
)

func isLetter(c rune) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}

func isLetters(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if !isLetter(c) {
			return false
		}
	}
	return true
}

// ValidName reports whether name may be used as a board name: non-empty
// and made of Latin letters, digits, '-' and '_'.
func ValidName(name string) bool {
	if name == "" {
		return false
	}
	for _, c := range name {
		if !isLetter(c) && !('0' <= c && c <= '9') && c != '-' && c != '_' {
			return false
		}
	}
	return true
}

// Open connects to the SQLite database at path and prepares the boards
// table.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("unable to open sqlite db %s: %w", path, err)
	}
	s, err := New(db, "boards")
	if err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// New creates a [Store] backed by table, creating it if needed. table may
// only contain upper- or lowercase Latin letters.
func New(db *sql.DB, table string) (*Store, error) {
	if !isLetters(table) {
		return nil, ErrBadName
	}

	_, err := db.Exec(`
CREATE TABLE IF NOT EXISTS ` + table + ` (
	name	TEXT PRIMARY KEY,
	board	TEXT NOT NULL
);`)
	if err != nil {
		return nil, fmt.Errorf("unable to create table %s: %w", table, err)
	}
	return &Store{table: table, db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Get decodes the board stored under name. If name is not present,
// [ErrNotFound] is returned.
func (s *Store) Get(name string) (*minefield.Grid, error) {
	var text string
	err := s.db.QueryRow(
		`SELECT board FROM `+s.table+` WHERE name = ?;`, name,
	).Scan(&text)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, err
	}
	return minefield.Decode(text), nil
}

// Set inserts a new board or replaces an existing one. Discovered flags are
// not kept.
func (s *Store) Set(name string, g *minefield.Grid) error {
	if !ValidName(name) {
		return fmt.Errorf("%q: %w", name, ErrBadName)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(`
INSERT INTO `+s.table+` (name, board)
VALUES(?, ?)
ON CONFLICT(name)
DO UPDATE SET board=excluded.board;`,
		name, g.Text())
	return err
}

// Delete removes name from the store without checking if it existed.
func (s *Store) Delete(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(`DELETE FROM `+s.table+` WHERE name = ?;`, name)
	return err
}

func (s *Store) Count() (count int, err error) {
	err = s.db.QueryRow(`SELECT COUNT(*) FROM ` + s.table + `;`).Scan(&count)
	return
}

// Names lists stored board names in ascending order.
func (s *Store) Names() ([]string, error) {
	rows, err := s.db.Query(`SELECT name FROM ` + s.table + ` ORDER BY name;`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}
