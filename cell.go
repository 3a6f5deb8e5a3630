package vgatext

import "golang.org/x/text/encoding/charmap"

const (
	// Newline is the only control code the writer interprets.
	Newline byte = '\n'
	// FallbackGlyph replaces every byte outside the supported set (a filled square in code page 437).
	FallbackGlyph byte = 0xfe
	// Blank is the character used to clear cells.
	Blank byte = ' '
)

// Cell stores the character code and packed style for one grid position.
type Cell struct {
	Char  byte
	Style Style
}

// NewCell creates a blank cell (space) in the given style.
func NewCell(style Style) Cell {
	return Cell{Char: Blank, Style: style}
}

// Encode packs the cell into its device representation: low byte character, high byte style.
func (c Cell) Encode() uint16 {
	return uint16(c.Style)<<8 | uint16(c.Char)
}

// DecodeCell unpacks a device word into a Cell.
func DecodeCell(v uint16) Cell {
	return Cell{Char: byte(v), Style: Style(v >> 8)}
}

// IsBlank returns true if the cell holds a space, regardless of style.
func (c Cell) IsBlank() bool {
	return c.Char == Blank || c.Char == 0
}

// Rune returns the glyph the display shows for the character code (code page 437).
func (c Cell) Rune() rune {
	if c.Char == 0 {
		return ' '
	}
	return charmap.CodePage437.DecodeByte(c.Char)
}

// Printable reports whether b is passed through to the grid unchanged.
// The accepted range is [0x20, 0x7e), plus newline.
func Printable(b byte) bool {
	return b == Newline || (b >= 0x20 && b < 0x7e)
}

// Sanitize maps b to itself if Printable, otherwise to FallbackGlyph.
func Sanitize(b byte) byte {
	if Printable(b) {
		return b
	}
	return FallbackGlyph
}
