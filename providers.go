package vgatext

// --- Scrollback Provider ---

// ScrollbackProvider stores rows scrolled off the top of the writable area.
// Implementations can use in-memory storage, disk, a serial log, etc.
type ScrollbackProvider interface {
	// Push appends a row to scrollback. Oldest rows should be removed if MaxLines is exceeded.
	Push(line []Cell)
	// Len returns the current number of stored rows.
	Len() int
	// Line returns the row at index, where 0 is the oldest. Returns nil if out of range.
	Line(index int) []Cell
	// Clear removes all stored rows.
	Clear()
	// MaxLines returns the current maximum capacity. Zero disables scrollback.
	MaxLines() int
}

// NoopScrollback discards all scrollback rows.
type NoopScrollback struct{}

func (NoopScrollback) Push(line []Cell)      {}
func (NoopScrollback) Len() int              { return 0 }
func (NoopScrollback) Line(index int) []Cell { return nil }
func (NoopScrollback) Clear()                {}
func (NoopScrollback) MaxLines() int         { return 0 }

// MemoryScrollback keeps scrollback rows in memory up to a fixed limit.
// When the limit is reached, the oldest rows are dropped.
//
// Example:
//
//	storage := vgatext.NewMemoryScrollback(1000)
//	w := vgatext.New(vgatext.WithScrollback(storage))
type MemoryScrollback struct {
	lines    [][]Cell
	maxLines int
}

// NewMemoryScrollback creates an in-memory scrollback holding at most maxLines rows.
func NewMemoryScrollback(maxLines int) *MemoryScrollback {
	return &MemoryScrollback{
		lines:    make([][]Cell, 0),
		maxLines: maxLines,
	}
}

// Push appends a copy of line, dropping the oldest row if over capacity.
func (m *MemoryScrollback) Push(line []Cell) {
	lineCopy := make([]Cell, len(line))
	copy(lineCopy, line)

	m.lines = append(m.lines, lineCopy)

	if m.maxLines > 0 && len(m.lines) > m.maxLines {
		excess := len(m.lines) - m.maxLines
		m.lines = m.lines[excess:]
	}
}

// Len returns the current number of stored rows.
func (m *MemoryScrollback) Len() int {
	return len(m.lines)
}

// Line returns the row at index, where 0 is the oldest.
// Returns nil if index is out of range.
func (m *MemoryScrollback) Line(index int) []Cell {
	if index < 0 || index >= len(m.lines) {
		return nil
	}
	return m.lines[index]
}

// Clear removes all stored rows.
func (m *MemoryScrollback) Clear() {
	m.lines = make([][]Cell, 0)
}

// MaxLines returns the capacity.
func (m *MemoryScrollback) MaxLines() int {
	return m.maxLines
}

// --- Recording Provider ---

// RecordingProvider captures raw bytes before sanitation for replay or debugging.
type RecordingProvider interface {
	// Record appends raw bytes to the recording.
	Record(data []byte)
	// Data returns all captured bytes since the last Clear call.
	Data() []byte
	// Clear discards all recorded data.
	Clear()
}

// NoopRecording discards all input recordings.
type NoopRecording struct{}

func (NoopRecording) Record([]byte) {}
func (NoopRecording) Data() []byte  { return nil }
func (NoopRecording) Clear()        {}

// MemoryRecording stores raw input bytes in memory.
//
// Example:
//
//	recorder := vgatext.NewMemoryRecording()
//	w := vgatext.New(vgatext.WithRecording(recorder))
//	// ... write output ...
//	data := recorder.Data()
type MemoryRecording struct {
	data []byte
}

// NewMemoryRecording creates a new in-memory recording buffer.
func NewMemoryRecording() *MemoryRecording {
	return &MemoryRecording{
		data: make([]byte, 0),
	}
}

// Record appends raw bytes to the recording.
func (r *MemoryRecording) Record(data []byte) {
	r.data = append(r.data, data...)
}

// Data returns a copy of all captured bytes.
func (r *MemoryRecording) Data() []byte {
	result := make([]byte, len(r.data))
	copy(result, r.data)
	return result
}

// Clear discards all recorded data.
func (r *MemoryRecording) Clear() {
	r.data = make([]byte, 0)
}

var _ ScrollbackProvider = (*NoopScrollback)(nil)
var _ ScrollbackProvider = (*MemoryScrollback)(nil)
var _ RecordingProvider = (*NoopRecording)(nil)
var _ RecordingProvider = (*MemoryRecording)(nil)
