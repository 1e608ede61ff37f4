package model

// Cell is the state of a single grid position: populated or empty.
// The zero value is Empty.
type Cell uint8

const (
	Empty Cell = iota
	Populated
)

// PopulatedCell returns a new populated cell.
func PopulatedCell() Cell {
	return Populated
}

// IsEmpty returns true if the cell is empty (unpopulated).
func (c Cell) IsEmpty() bool {
	return c == Empty
}

// IsPopulated returns true if the cell is populated.
func (c Cell) IsPopulated() bool {
	return c == Populated
}

// Spawn makes the cell populated. The prior state of the cell does not
// affect the result.
func (c *Cell) Spawn() {
	*c = Populated
}

// Die makes the cell empty. The prior state of the cell does not affect
// the result.
func (c *Cell) Die() {
	*c = Empty
}
