//go:build linux

// Package devmem maps a physical text buffer (or any file) into the process
// so a vgatext.Writer can drive it from user space.
package devmem

import (
	"fmt"
	"os"
	"unsafe"

	"golang.org/x/sys/unix"

	vgatext "github.com/danielgatis/go-vgatext"
)

// DevMemPath is the physical memory device.
const DevMemPath = "/dev/mem"

// cellSize is the size in bytes of one character cell.
const cellSize = 2

// Region is a shared memory mapping viewed as vgatext cells.
// It implements vgatext.Memory; every Load and Store goes through a volatile register.
type Region struct {
	mapping []byte
	cells   *vgatext.RegisterMemory
}

// Open maps cells character cells of path starting at byte offset.
// The offset does not need to be page aligned.
func Open(path string, offset int64, cells int) (*Region, error) {
	if cells <= 0 {
		return nil, fmt.Errorf("devmem: invalid cell count %d", cells)
	}
	if offset < 0 {
		return nil, fmt.Errorf("devmem: invalid offset %d", offset)
	}

	f, err := os.OpenFile(path, os.O_RDWR|os.O_SYNC, 0)
	if err != nil {
		return nil, fmt.Errorf("devmem: open %s: %w", path, err)
	}
	// The mapping stays valid after the descriptor is closed.
	defer f.Close()

	pageSize := int64(os.Getpagesize())
	pageOffset := offset % pageSize
	length := int(pageOffset) + cells*cellSize

	mapping, err := unix.Mmap(int(f.Fd()), offset-pageOffset, length, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		return nil, fmt.Errorf("devmem: mmap %s at %#x: %w", path, offset, err)
	}

	return &Region{
		mapping: mapping,
		cells:   vgatext.MemoryAt(unsafe.Pointer(&mapping[pageOffset]), cells),
	}, nil
}

// OpenVGA maps the 80x25 color text buffer through /dev/mem. Requires root
// (or CAP_SYS_RAWIO) and a kernel that allows access to the legacy video range.
func OpenVGA() (*Region, error) {
	return Open(DevMemPath, int64(vgatext.VGABaseAddress), vgatext.Width*vgatext.Height)
}

// Len returns the number of cells.
func (r *Region) Len() int {
	return r.cells.Len()
}

// Load reads the cell word at index i.
func (r *Region) Load(i int) uint16 {
	return r.cells.Load(i)
}

// Store writes the cell word at index i.
func (r *Region) Store(i int, v uint16) {
	r.cells.Store(i, v)
}

// Close unmaps the region. The Region, and any Writer using it, must not be used afterwards.
func (r *Region) Close() error {
	if r.mapping == nil {
		return nil
	}
	err := unix.Munmap(r.mapping)
	r.mapping = nil
	if err != nil {
		return fmt.Errorf("devmem: munmap: %w", err)
	}
	return nil
}

var _ vgatext.Memory = (*Region)(nil)
