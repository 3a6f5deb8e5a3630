//go:build linux

package devmem

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	vgatext "github.com/danielgatis/go-vgatext"
)

func newBackingFile(t *testing.T, size int64) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "vram")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := f.Truncate(size); err != nil {
		t.Fatalf("truncate: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	return path
}

func TestOpenRoundTrip(t *testing.T) {
	const cells = vgatext.Width * vgatext.Height
	// Unaligned offset: the mapping must start on the page boundary below it.
	offset := int64(os.Getpagesize() + 6)
	path := newBackingFile(t, offset+cells*2)

	region, err := Open(path, offset, cells)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer region.Close()

	if region.Len() != cells {
		t.Fatalf("expected %d cells, got %d", cells, region.Len())
	}

	w := vgatext.New(vgatext.WithMemory(region))
	w.Reset()
	w.WriteString("Hi")

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}

	at := offset + vgatext.Width*2
	got := binary.NativeEndian.Uint16(data[at:])
	want := vgatext.Cell{Char: 'H', Style: vgatext.DefaultStyle}.Encode()
	if got != want {
		t.Errorf("expected %#04x in file, got %#04x", want, got)
	}
}

func TestOpenMissingFile(t *testing.T) {
	if _, err := Open(filepath.Join(t.TempDir(), "missing"), 0, 10); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestOpenInvalidArguments(t *testing.T) {
	path := newBackingFile(t, 4096)

	if _, err := Open(path, 0, 0); err == nil {
		t.Error("expected error for zero cells")
	}
	if _, err := Open(path, -1, 10); err == nil {
		t.Error("expected error for negative offset")
	}
}

func TestCloseTwice(t *testing.T) {
	path := newBackingFile(t, 4096)

	region, err := Open(path, 0, 10)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := region.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if err := region.Close(); err != nil {
		t.Errorf("expected second close to be a no-op, got %v", err)
	}
}
