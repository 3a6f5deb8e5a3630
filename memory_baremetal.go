//go:build baremetal

package vgatext

// DefaultMemory returns the VGA text buffer at its fixed physical address.
func DefaultMemory() Memory {
	return MapMemory(VGABaseAddress, Width*Height)
}
