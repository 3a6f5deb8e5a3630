package vgatext

// HomeRow is the first row normal output writes to. Row 0 is kept blank.
const HomeRow = 1

// Position identifies a cell location in the grid (0-based).
type Position struct {
	Row int
	Col int
}

// Cursor tracks the next write position (0-based).
// Col may equal the grid width, meaning the next printable byte wraps first.
type Cursor struct {
	Row int
	Col int
}

// NewCursor creates a cursor at the home position (HomeRow, 0).
func NewCursor() *Cursor {
	return &Cursor{Row: HomeRow, Col: 0}
}

// Home moves the cursor back to (HomeRow, 0).
func (c *Cursor) Home() {
	c.Row = HomeRow
	c.Col = 0
}

// Position returns the cursor location.
func (c *Cursor) Position() Position {
	return Position{Row: c.Row, Col: c.Col}
}
