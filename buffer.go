package vgatext

import (
	"fmt"
	"strings"
)

const (
	// Width is the number of character columns on the screen.
	Width = 80
	// Height is the number of character rows on the screen.
	Height = 25
)

// Grid is a rows x cols view over cell Memory in row-major order.
// Every read and write is a single Load or Store of one cell word.
type Grid struct {
	rows int
	cols int
	mem  Memory
}

// NewGrid lays a rows x cols grid over mem.
// Panics if mem holds fewer than rows*cols cells.
func NewGrid(rows, cols int, mem Memory) *Grid {
	if rows <= 0 || cols <= 0 {
		panic(fmt.Sprintf("vgatext: invalid grid size %dx%d", cols, rows))
	}
	if mem.Len() < rows*cols {
		panic(fmt.Sprintf("vgatext: memory holds %d cells, grid needs %d", mem.Len(), rows*cols))
	}
	return &Grid{rows: rows, cols: cols, mem: mem}
}

// Rows returns the grid height in character rows.
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the grid width in character columns.
func (g *Grid) Cols() int {
	return g.cols
}

func (g *Grid) inBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// Cell returns the cell at (row, col).
// The second result is false if coordinates are out of bounds.
func (g *Grid) Cell(row, col int) (Cell, bool) {
	if !g.inBounds(row, col) {
		return Cell{}, false
	}
	return DecodeCell(g.mem.Load(row*g.cols + col)), true
}

// SetCell stores cell at (row, col).
// Does nothing if coordinates are out of bounds.
func (g *Grid) SetCell(row, col int, cell Cell) {
	if !g.inBounds(row, col) {
		return
	}
	g.mem.Store(row*g.cols+col, cell.Encode())
}

// Row returns a copy of the cells in row, or nil if out of bounds.
func (g *Grid) Row(row int) []Cell {
	if row < 0 || row >= g.rows {
		return nil
	}
	line := make([]Cell, g.cols)
	base := row * g.cols
	for col := range line {
		line[col] = DecodeCell(g.mem.Load(base + col))
	}
	return line
}

// ClearRow fills the row with blank cells in the given style.
func (g *Grid) ClearRow(row int, style Style) {
	if row < 0 || row >= g.rows {
		return
	}
	blank := NewCell(style).Encode()
	base := row * g.cols
	for col := 0; col < g.cols; col++ {
		g.mem.Store(base+col, blank)
	}
}

// ClearAll fills every row with blank cells in the given style.
func (g *Grid) ClearAll(style Style) {
	for row := 0; row < g.rows; row++ {
		g.ClearRow(row, style)
	}
}

// CopyRow copies every cell of src into dst, one load and one store per cell.
func (g *Grid) CopyRow(dst, src int) {
	if dst < 0 || dst >= g.rows || src < 0 || src >= g.rows || dst == src {
		return
	}
	dstBase := dst * g.cols
	srcBase := src * g.cols
	for col := 0; col < g.cols; col++ {
		g.mem.Store(dstBase+col, g.mem.Load(srcBase+col))
	}
}

// ScrollUp shifts rows (top, rows) up by one into [top, rows-1) and blanks
// the last row. Rows above top are not touched; row top is overwritten.
func (g *Grid) ScrollUp(top int, style Style) {
	if top < 0 {
		top = 0
	}
	if top >= g.rows {
		return
	}
	for row := top + 1; row < g.rows; row++ {
		g.CopyRow(row-1, row)
	}
	g.ClearRow(g.rows-1, style)
}

// LineContent returns the text of a row decoded through code page 437, with
// trailing spaces trimmed. Returns an empty string if the row is out of bounds.
func (g *Grid) LineContent(row int) string {
	line := g.Row(row)
	if line == nil {
		return ""
	}

	last := -1
	for col := len(line) - 1; col >= 0; col-- {
		if !line[col].IsBlank() {
			last = col
			break
		}
	}
	if last < 0 {
		return ""
	}

	var sb strings.Builder
	for _, cell := range line[:last+1] {
		sb.WriteRune(cell.Rune())
	}
	return sb.String()
}
