package model

import "math"

// Row and Column are distinct index types so that transposing the two in a
// Coordinates literal or a grid constructor is a compile error rather than a
// silent bug.
type (
	Row    uint16
	Column uint16
)

// Coordinates identifies a single grid position. It is a pure value: it holds
// no reference to any grid, and may name a position outside a particular
// grid's bounds.
type Coordinates struct {
	Row    Row
	Column Column
}

// Neighbours returns the Moore neighbourhood of c: the up-to-8 positions
// horizontally, vertically, and diagonally adjacent to it. Neighbours that
// would need a negative component are omitted, so positions on the zero edges
// have no neighbours beyond them. No upper bound is applied here; high-side
// out-of-range neighbours are weeded out by the grid lookup instead.
// The order of the returned slice is unspecified.
func (c Coordinates) Neighbours() []Coordinates {
	rows := make([]Row, 0, 3)
	if c.Row > 0 {
		rows = append(rows, c.Row-1)
	}
	rows = append(rows, c.Row)
	if c.Row < math.MaxUint16 {
		rows = append(rows, c.Row+1)
	}

	columns := make([]Column, 0, 3)
	if c.Column > 0 {
		columns = append(columns, c.Column-1)
	}
	columns = append(columns, c.Column)
	if c.Column < math.MaxUint16 {
		columns = append(columns, c.Column+1)
	}

	neighbours := make([]Coordinates, 0, 8)
	for _, row := range rows {
		for _, column := range columns {
			if row == c.Row && column == c.Column {
				continue
			}
			neighbours = append(neighbours, Coordinates{Row: row, Column: column})
		}
	}
	return neighbours
}
