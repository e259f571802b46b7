package keymaze

import (
	"errors"
	"fmt"
	"strings"

	"tailscale.com/util/deephash"
)

var (
	// ErrInvalidEntry is returned by Parse when the input contains a
	// character outside the maze grammar (#, ., @, a-z, A-Z).
	ErrInvalidEntry = errors.New("invalid map entry")

	// ErrUnreachable is returned when no sequence of moves collects
	// every key.
	ErrUnreachable = errors.New("not possible to gather all keys")
)

// Cell is one grid square, holding its raw input byte. The entrance marker
// is rewritten to Floor during parsing; its position lives in the key index
// instead. Cells outside the grid (including padding on ragged rows) are
// the zero Cell and are not walkable.
type Cell byte

const (
	Wall  Cell = '#'
	Floor Cell = '.'
)

func (c Cell) IsKey() bool {
	return 'a' <= c && c <= 'z'
}

func (c Cell) IsDoor() bool {
	return 'A' <= c && c <= 'Z'
}

// DoorKey returns the key that opens door c.
func (c Cell) DoorKey() Key {
	return Key(c | 32)
}

// Walkable reports whether an agent can stand on c. Doors are walkable
// here; whether one may be passed is decided by the solver, not the grid.
func (c Cell) Walkable() bool {
	return c == Floor || c.IsKey() || c.IsDoor()
}

// Maze is a parsed grid plus an index of every key position. The entrance
// appears in the index under the synthetic key Start.
type Maze struct {
	grid Grid[Cell]
	keys map[Key]Pt
	all  KeySet
}

// AllKeys returns the set of every key present in the maze.
func (m *Maze) AllKeys() KeySet {
	return m.all
}

// Hash returns a structural hash of the maze grid. Solving never mutates
// the maze, so the hash is stable across solves.
func (m *Maze) Hash() deephash.Sum {
	return m.grid.Hash()
}

// Parse reads a text grid, one row per line. Rows may be ragged; missing
// trailing cells are treated as walls. It returns ErrInvalidEntry on any
// character outside the grammar.
func Parse(input string) (*Maze, error) {
	lines := strings.Split(strings.Trim(input, "\n"), "\n")
	w := 0
	for _, l := range lines {
		if len(l) > w {
			w = len(l)
		}
	}
	m := &Maze{
		grid: MakeGrid[Cell](w, len(lines)),
		keys: make(map[Key]Pt),
	}
	for y, line := range lines {
		for x := 0; x < len(line); x++ {
			c := Cell(line[x])
			p := Pt{x, y}
			switch {
			case c == Wall, c == Floor:
			case c == Cell(Start):
				m.keys[Start] = p
				c = Floor
			case c.IsKey():
				m.keys[Key(c)] = p
				m.all = m.all.Plus(Key(c))
			case c.IsDoor():
			default:
				return nil, fmt.Errorf("%w: %q at %d,%d", ErrInvalidEntry, rune(line[x]), x, y)
			}
			m.grid.Set(p, c)
		}
	}
	return m, nil
}
