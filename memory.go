package vgatext

import "unsafe"

// VGABaseAddress is the physical address of the color text mode buffer.
const VGABaseAddress uintptr = 0xb8000

// Memory is the cell storage behind a Grid. Each index is one 16-bit cell in
// row-major order. Implementations must perform every Load and Store as a
// distinct, ordered access.
type Memory interface {
	// Len returns the number of cells.
	Len() int
	// Load reads the cell word at index i.
	Load(i int) uint16
	// Store writes the cell word at index i.
	Store(i int, v uint16)
}

// RegisterMemory is a run of Register16 cells, either heap-allocated or
// overlaid on device memory.
type RegisterMemory struct {
	regs []Register16
}

// NewMemory allocates cells registers on the heap.
// Hosted builds use it as a shadow of the device grid.
func NewMemory(cells int) *RegisterMemory {
	return &RegisterMemory{regs: make([]Register16, cells)}
}

// MapMemory overlays cells registers at addr. The caller guarantees the range
// is mapped and owned for the lifetime of the process.
func MapMemory(addr uintptr, cells int) *RegisterMemory {
	return MemoryAt(unsafe.Pointer(addr), cells)
}

// MemoryAt overlays cells registers on memory starting at p, such as a
// region returned by mmap. The memory must outlive the returned value and
// must not be managed by the Go heap.
func MemoryAt(p unsafe.Pointer, cells int) *RegisterMemory {
	return &RegisterMemory{regs: unsafe.Slice((*Register16)(p), cells)}
}

// Len returns the number of cells.
func (m *RegisterMemory) Len() int {
	return len(m.regs)
}

// Load reads the cell word at index i.
func (m *RegisterMemory) Load(i int) uint16 {
	return m.regs[i].Get()
}

// Store writes the cell word at index i.
func (m *RegisterMemory) Store(i int, v uint16) {
	m.regs[i].Set(v)
}

var _ Memory = (*RegisterMemory)(nil)
