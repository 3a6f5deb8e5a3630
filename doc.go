// Package vgatext provides a text console writer for an 80x25 color text buffer.
//
// The writer turns a byte stream into character cells, the way firmware and
// kernels print to a VGA text mode screen:
//   - Writing early boot or kernel messages on bare metal
//   - Showing a final diagnostic after a fatal error
//   - Driving the legacy text buffer from user space through /dev/mem
//   - Rendering the same output to an image or a terminal for testing
//
// # Quick Start
//
//	vgatext.Println("hello")
//	vgatext.Printf("%d cells\n", vgatext.Width*vgatext.Height)
//
// The package-level functions use [Default], a process-wide [Writer] that is
// created on first use.
//
// # Architecture
//
//   - [Writer]: cursor, wrap and scroll logic behind a [SpinLock]
//   - [Grid]: an 80x25 view over cell [Memory]
//   - [Cell]: one character code plus a packed [Style]
//   - [Register16]: a volatile 16-bit cell; every access reaches memory in order
//
// # Output Rules
//
// [Writer.WriteString] and [Writer.Write] pass newlines and bytes in
// [0x20, 0x7e) through unchanged. Every other byte, including the bytes of
// multi-byte UTF-8 sequences, becomes [FallbackGlyph] (0xfe).
//
// Row 0 is reserved. Output starts at [HomeRow]; when a newline is written on
// the last row, rows 2..24 move up one and the last row is blanked, leaving
// row 0 untouched. [Writer.Reset] blanks all 25 rows and homes the cursor.
//
// # Memory
//
// On builds tagged baremetal, [DefaultMemory] overlays the buffer at
// [VGABaseAddress]. Hosted builds get a heap-backed grid of the same shape,
// and the devmem subpackage maps the physical buffer through /dev/mem:
//
//	region, err := devmem.OpenVGA()
//	if err != nil {
//	    return err
//	}
//	defer region.Close()
//	w := vgatext.New(vgatext.WithMemory(region))
//
// # Panics
//
// Defer [Recover] at the top of main. A panic clears the screen and shows
// the panic value before the panic continues:
//
//	func main() {
//	    defer vgatext.Recover()
//	    ...
//	}
//
// # Scrollback
//
// Rows scrolled off the top of the writable area can be kept:
//
//	storage := vgatext.NewMemoryScrollback(1000)
//	w := vgatext.New(vgatext.WithScrollback(storage))
//
// # Snapshots and Screenshots
//
//	snap := w.Snapshot(vgatext.SnapshotDetailFull)
//	img := w.Screenshot() // *image.RGBA, basicfont 7x13, VGA palette
//
// The view subpackage mirrors a writer onto a tcell screen.
package vgatext
