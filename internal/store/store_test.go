package store

import (
	"database/sql"
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/minefield/internal/minefield"
)

func setupTestStore() (*Store, func(), error) {
	f, err := os.CreateTemp("", "sqlite-storage-")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create temp file: %v", err)
	}

	db, err := sql.Open("sqlite3", f.Name())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect sqlite db: %v", err)
	}

	s, err := New(db, "teststore")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create new store: %v", err)
	}

	teardown := func() {
		db.Close()
		f.Close()
		os.Remove(f.Name())
	}

	return s, teardown, nil
}

func TestStoreBadName(t *testing.T) {
	for _, name := range []string{"", "boards; DROP TABLE x", "b0ards", "with space"} {
		_, err := New(nil, name)
		assert.ErrorIs(t, err, ErrBadName, name)
	}
}

func TestStoreReadEmpty(t *testing.T) {
	s, teardown, err := setupTestStore()
	require.NoError(t, err)
	defer teardown()

	_, err = s.Get("some board")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStoreWriteAndRead(t *testing.T) {
	s, teardown, err := setupTestStore()
	require.NoError(t, err)
	defer teardown()

	g := minefield.NewRandom(minefield.NewSource(3))
	require.NoError(t, s.Set("fixture", g))

	rt, err := s.Get("fixture")
	require.NoError(t, err)
	assert.True(t, g.Equal(rt))
}

func TestStoreDropsDiscovered(t *testing.T) {
	s, teardown, err := setupTestStore()
	require.NoError(t, err)
	defer teardown()

	g := minefield.Decode("*X\n11")
	g.RevealAll()
	require.NoError(t, s.Set("revealed", g))

	rt, err := s.Get("revealed")
	require.NoError(t, err)
	assert.Equal(t, "##\n##\n", rt.Revealed())
	assert.Equal(t, g.Text(), rt.Text())
}

func TestStoreUpdate(t *testing.T) {
	s, teardown, err := setupTestStore()
	require.NoError(t, err)
	defer teardown()

	require.NoError(t, s.Set("key", minefield.Decode("X")))
	require.NoError(t, s.Set("key", minefield.Decode("*")))

	rt, err := s.Get("key")
	require.NoError(t, err)
	assert.Equal(t, "*", rt.Text())
}

func TestStoreDeleteMissing(t *testing.T) {
	s, teardown, err := setupTestStore()
	require.NoError(t, err)
	defer teardown()

	assert.NoError(t, s.Delete("something"))
}

func TestStoreDeleteExisting(t *testing.T) {
	s, teardown, err := setupTestStore()
	require.NoError(t, err)
	defer teardown()

	require.NoError(t, s.Set("key", minefield.NewStandard()))
	require.NoError(t, s.Delete("key"))

	_, err = s.Get("key")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStoreCountAndNames(t *testing.T) {
	s, teardown, err := setupTestStore()
	require.NoError(t, err)
	defer teardown()

	for _, name := range []string{"d", "b", "a", "c"} {
		require.NoError(t, s.Set(name, minefield.NewStandard()))
	}

	count, err := s.Count()
	require.NoError(t, err)
	assert.Equal(t, 4, count)

	require.NoError(t, s.Delete("a"))

	names, err := s.Names()
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "c", "d"}, names)
}

func TestStoreSetBadName(t *testing.T) {
	s, teardown, err := setupTestStore()
	require.NoError(t, err)
	defer teardown()

	for _, name := range []string{"", "with space", "semi;colon", "dot.name"} {
		err := s.Set(name, minefield.NewStandard())
		assert.ErrorIs(t, err, ErrBadName, name)
	}

	for _, name := range []string{"fixture", "fixture-2", "big_board", "B0"} {
		assert.NoError(t, s.Set(name, minefield.NewStandard()), name)
	}

	count, err := s.Count()
	require.NoError(t, err)
	assert.Equal(t, 4, count)
}
