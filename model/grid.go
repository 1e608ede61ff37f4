package model

import (
	"crypto/md5"
	"fmt"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/rules"
)

// Grid owns a rectangular field of Cells with fixed dimensions. Cells are
// stored row-major: cells[row][column], every row exactly width cells wide.
// The grid is the sole owner of its cells; dimensions never change after
// construction (Reset builds what is logically a new grid in place).
type Grid struct {
	width   Column
	height  Row
	cells   [][]Cell
	next    [][]Cell // scratch buffer for Step, same dimensions as cells
	history []string // recent state hashes for cycle detection
}

// NewGrid creates a grid of the given dimensions with every cell Empty.
// Either dimension may be zero, yielding an empty grid.
func NewGrid(columns Column, rows Row) *Grid {
	g := &Grid{}
	g.Reset(columns, rows)
	return g
}

// GetWidth returns the number of columns in the grid.
func (g *Grid) GetWidth() Column {
	return g.width
}

// GetHeight returns the number of rows in the grid.
func (g *Grid) GetHeight() Row {
	return g.height
}

// Reset resizes the grid, leaving every cell Empty.
func (g *Grid) Reset(columns Column, rows Row) {
	sameSize := g.width == columns && g.height == rows && g.cells != nil
	g.width = columns
	g.height = rows
	if sameSize {
		g.Clear()
		return
	}
	g.cells = newCells(columns, rows)
	g.next = newCells(columns, rows)
	g.history = nil
}

// Clear empties every cell and discards the state history.
func (g *Grid) Clear() {
	for row := range g.cells {
		for column := range g.cells[row] {
			g.cells[row][column].Die()
			g.next[row][column].Die()
		}
	}
	g.history = nil
}

func newCells(columns Column, rows Row) [][]Cell {
	cells := make([][]Cell, rows)
	for i := range cells {
		cells[i] = make([]Cell, columns)
	}
	return cells
}

// Cell returns the cell at the given position. The second return is false
// when either component lies outside the grid. Querying out-of-bounds
// coordinates is an expected case, not an error: neighbour checks near an
// edge do it constantly.
func (g *Grid) Cell(c Coordinates) (Cell, bool) {
	if c.Column >= g.width || c.Row >= g.height {
		return Empty, false
	}
	return g.cells[c.Row][c.Column], true
}

// Populate sets the cell at the given position to Populated. It fails if the
// coordinates lie outside the grid, in which case no cell is touched.
// Populating an already populated cell is a no-op.
func (g *Grid) Populate(c Coordinates) error {
	if c.Column >= g.width || c.Row >= g.height {
		return errors.Errorf("[Populate] coordinates out of bounds: row %d, column %d (grid is %dx%d)",
			c.Row, c.Column, g.width, g.height)
	}
	g.cells[c.Row][c.Column].Spawn()
	return nil
}

// NeighbourCells returns the states of every in-bounds neighbour of c.
// Out-of-bounds neighbours are omitted entirely rather than reported as
// Empty, so an edge cell is judged on its real neighbours only.
func (g *Grid) NeighbourCells(c Coordinates) []Cell {
	neighbours := c.Neighbours()
	cells := make([]Cell, 0, len(neighbours))
	for _, n := range neighbours {
		if cell, ok := g.Cell(n); ok {
			cells = append(cells, cell)
		}
	}
	return cells
}

// Step advances the whole grid by exactly one generation. Every neighbour
// count is taken from the prior generation: next states accumulate in a
// scratch buffer and the buffers swap only after the full sweep, so a cell
// decided early can never skew the count of a cell decided later.
func (g *Grid) Step() {
	for row := Row(0); row < g.height; row++ {
		for column := Column(0); column < g.width; column++ {
			c := Coordinates{Row: row, Column: column}
			populated := 0
			for _, cell := range g.NeighbourCells(c) {
				if cell.IsPopulated() {
					populated++
				}
			}
			if rules.ApplyConwayRules(populated, g.cells[row][column].IsPopulated()) {
				g.next[row][column].Spawn()
			} else {
				g.next[row][column].Die()
			}
		}
	}
	g.cells, g.next = g.next, g.cells
}

// CountPopulated returns the total number of populated cells
func (g *Grid) CountPopulated() (count int) {
	for _, row := range g.cells {
		for _, cell := range row {
			if cell.IsPopulated() {
				count++
			}
		}
	}
	return
}

// Hash returns an MD5 fingerprint of the current cell states
func (g *Grid) Hash() string {
	h := md5.New()
	for _, row := range g.cells {
		for _, cell := range row {
			if cell.IsPopulated() {
				h.Write([]byte{1})
			} else {
				h.Write([]byte{0})
			}
		}
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

// UpdateHistory adds the current state to the history and maintains its size
func (g *Grid) UpdateHistory() {
	g.history = append(g.history, g.Hash())

	// Keep only the last 5 states to detect cycles
	if len(g.history) > 5 {
		g.history = g.history[1:]
	}
}

// IsStagnant checks if the grid is stuck in a static state or a short cycle
func (g *Grid) IsStagnant() bool {
	if len(g.history) < 3 {
		return false
	}

	currentHash := g.Hash()
	for lookback := 1; lookback <= 3; lookback++ {
		if g.history[len(g.history)-lookback] == currentHash {
			return true
		}
	}
	return false
}
