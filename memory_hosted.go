//go:build !baremetal

package vgatext

// DefaultMemory returns a heap-backed grid. Hosted processes cannot address
// the physical text buffer directly; see the devmem package for a mapped one.
func DefaultMemory() Memory {
	return NewMemory(Width * Height)
}
