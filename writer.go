package vgatext

import (
	"io"
	"strings"
)

// Writer renders a byte stream into an 80x25 text grid.
// It tracks a cursor, wraps at the right edge, scrolls at the bottom edge and
// paints every cell with one fixed style. Row 0 is reserved: output starts at
// HomeRow and scrolling never touches row 0.
// All operations are safe for concurrent use via an internal spin lock.
type Writer struct {
	mu SpinLock

	grid   *Grid
	cursor *Cursor
	style  Style

	scrolls uint64

	scrollback ScrollbackProvider
	recording  RecordingProvider
	scrollHook func()
}

// Option configures a Writer during construction.
type Option func(*Writer)

// WithMemory sets the cell storage. It must hold at least Width*Height cells.
// Defaults to DefaultMemory().
func WithMemory(mem Memory) Option {
	return func(w *Writer) {
		if mem != nil {
			w.grid = NewGrid(Height, Width, mem)
		}
	}
}

// WithStyle sets the style applied to every written and cleared cell.
// Defaults to DefaultStyle.
func WithStyle(style Style) Option {
	return func(w *Writer) {
		w.style = style
	}
}

// WithScrollback sets the storage for rows scrolled off the top of the writable area.
// Defaults to a no-op if not set.
func WithScrollback(storage ScrollbackProvider) Option {
	return func(w *Writer) {
		if storage != nil {
			w.scrollback = storage
		}
	}
}

// WithRecording sets the handler for capturing raw bytes before sanitation.
// Useful for replay, debugging, or regression testing.
func WithRecording(p RecordingProvider) Option {
	return func(w *Writer) {
		if p != nil {
			w.recording = p
		}
	}
}

// WithScrollHook sets a function called after every scroll, while the lock is held.
// The hook must not call back into the Writer.
func WithScrollHook(fn func()) Option {
	return func(w *Writer) {
		w.scrollHook = fn
	}
}

// New creates a writer with the cursor at (HomeRow, 0).
// The grid content is left as found; call Reset for a clean screen.
func New(opts ...Option) *Writer {
	w := &Writer{
		cursor:     NewCursor(),
		style:      DefaultStyle,
		scrollback: NoopScrollback{},
		recording:  NoopRecording{},
	}

	for _, opt := range opts {
		opt(w)
	}

	if w.grid == nil {
		w.grid = NewGrid(Height, Width, DefaultMemory())
	}

	return w
}

// WriteByte writes one byte at the cursor. A newline moves to the start of the
// next row; any other byte is stored verbatim, wrapping first if the cursor is
// past the last column. Always returns nil.
// Implements io.ByteWriter.
func (w *Writer) WriteByte(b byte) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.writeByteLocked(b)
	return nil
}

// WriteString writes s byte by byte. Newlines and bytes in [0x20, 0x7e) pass
// through; every other byte is replaced with FallbackGlyph.
// Always returns len(s), nil.
func (w *Writer) WriteString(s string) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.recording.Record([]byte(s))
	for i := 0; i < len(s); i++ {
		w.writeByteLocked(Sanitize(s[i]))
	}
	return len(s), nil
}

// Write is the io.Writer form of WriteString.
func (w *Writer) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.recording.Record(p)
	for _, b := range p {
		w.writeByteLocked(Sanitize(b))
	}
	return len(p), nil
}

// Reset blanks every row, including row 0, in the current style and moves
// the cursor to (HomeRow, 0).
func (w *Writer) Reset() {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.resetLocked()
}

func (w *Writer) resetLocked() {
	w.cursor.Home()
	w.grid.ClearAll(w.style)
}

func (w *Writer) writeByteLocked(b byte) {
	if b == Newline {
		w.newlineLocked()
		return
	}

	if w.cursor.Col >= w.grid.Cols() {
		w.newlineLocked()
	}

	w.grid.SetCell(w.cursor.Row, w.cursor.Col, Cell{Char: b, Style: w.style})
	w.cursor.Col++
}

// newlineLocked advances to the next row, scrolling when already on the last row.
func (w *Writer) newlineLocked() {
	if w.cursor.Row == w.grid.Rows()-1 {
		w.scrollLocked()
	} else {
		w.cursor.Row++
	}
	w.cursor.Col = 0
}

func (w *Writer) scrollLocked() {
	if w.scrollback.MaxLines() > 0 {
		w.scrollback.Push(w.grid.Row(HomeRow))
	}
	w.grid.ScrollUp(HomeRow, w.style)
	w.scrolls++
	if w.scrollHook != nil {
		w.scrollHook()
	}
}

// Rows returns the grid height in character rows.
func (w *Writer) Rows() int {
	return w.grid.Rows()
}

// Cols returns the grid width in character columns.
func (w *Writer) Cols() int {
	return w.grid.Cols()
}

// Style returns the style applied to written cells.
func (w *Writer) Style() Style {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.style
}

// CursorPos returns the current cursor position (0-based).
func (w *Writer) CursorPos() (row, col int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.cursor.Row, w.cursor.Col
}

// Cell returns the cell at (row, col).
// The second result is false if coordinates are out of bounds.
func (w *Writer) Cell(row, col int) (Cell, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.grid.Cell(row, col)
}

// Cells returns a copy of every row of the grid, row 0 included.
func (w *Writer) Cells() [][]Cell {
	w.mu.Lock()
	defer w.mu.Unlock()

	cells := make([][]Cell, w.grid.Rows())
	for row := range cells {
		cells[row] = w.grid.Row(row)
	}
	return cells
}

// LineContent returns the text of a row with trailing spaces trimmed.
func (w *Writer) LineContent(row int) string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.grid.LineContent(row)
}

// Scrolls returns the number of scrolls since construction.
func (w *Writer) Scrolls() uint64 {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.scrolls
}

// String returns the writable rows (HomeRow onward) joined by newlines,
// with trailing empty rows removed.
func (w *Writer) String() string {
	w.mu.Lock()
	defer w.mu.Unlock()

	lines := make([]string, 0, w.grid.Rows()-HomeRow)
	for row := HomeRow; row < w.grid.Rows(); row++ {
		lines = append(lines, w.grid.LineContent(row))
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return strings.Join(lines, "\n")
}

// ScrollbackLen returns the number of rows stored in scrollback.
func (w *Writer) ScrollbackLen() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.scrollback.Len()
}

// ScrollbackLine returns a row from scrollback, where 0 is the oldest.
// Returns nil if index is out of range or scrollback is disabled.
func (w *Writer) ScrollbackLine(index int) []Cell {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.scrollback.Line(index)
}

var (
	_ io.Writer       = (*Writer)(nil)
	_ io.StringWriter = (*Writer)(nil)
	_ io.ByteWriter   = (*Writer)(nil)
)
