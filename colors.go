package vgatext

import (
	"fmt"
	"image/color"
)

// Color is one of the 16 hardware palette indices (4 bits).
type Color uint8

const (
	Black Color = iota
	Blue
	Green
	Cyan
	Red
	Magenta
	Brown
	LightGray
	DarkGray
	LightBlue
	LightGreen
	LightCyan
	LightRed
	Pink
	Yellow
	White
)

var colorNames = [16]string{
	"black",
	"blue",
	"green",
	"cyan",
	"red",
	"magenta",
	"brown",
	"light-gray",
	"dark-gray",
	"light-blue",
	"light-green",
	"light-cyan",
	"light-red",
	"pink",
	"yellow",
	"white",
}

// Valid reports whether c fits in the 4-bit palette index.
func (c Color) Valid() bool {
	return c <= White
}

// String returns the palette name of the color.
func (c Color) String() string {
	if !c.Valid() {
		return fmt.Sprintf("color(%d)", uint8(c))
	}
	return colorNames[c]
}

// RGBA resolves the color through DefaultPalette.
func (c Color) RGBA() color.RGBA {
	return DefaultPalette[c&0x0f]
}

// Style is a packed foreground/background pair: bits 0-3 foreground, bits 4-7 background.
type Style uint8

// DefaultStyle is white text on a black background.
const DefaultStyle = Style(Black<<4 | White)

// NewStyle packs a foreground and background color. Indices above 15 are masked to 4 bits.
func NewStyle(fg, bg Color) Style {
	return Style((bg&0x0f)<<4 | fg&0x0f)
}

// Foreground returns the foreground color index.
func (s Style) Foreground() Color {
	return Color(s & 0x0f)
}

// Background returns the background color index.
func (s Style) Background() Color {
	return Color(s >> 4)
}

// String formats the style as "fg/bg".
func (s Style) String() string {
	return s.Foreground().String() + "/" + s.Background().String()
}

// DefaultPalette is the standard VGA 16-color text mode palette, indexed by Color.
var DefaultPalette = [16]color.RGBA{
	{0x00, 0x00, 0x00, 255}, // Black
	{0x00, 0x00, 0xaa, 255}, // Blue
	{0x00, 0xaa, 0x00, 255}, // Green
	{0x00, 0xaa, 0xaa, 255}, // Cyan
	{0xaa, 0x00, 0x00, 255}, // Red
	{0xaa, 0x00, 0xaa, 255}, // Magenta
	{0xaa, 0x55, 0x00, 255}, // Brown
	{0xaa, 0xaa, 0xaa, 255}, // Light gray
	{0x55, 0x55, 0x55, 255}, // Dark gray
	{0x55, 0x55, 0xff, 255}, // Light blue
	{0x55, 0xff, 0x55, 255}, // Light green
	{0x55, 0xff, 0xff, 255}, // Light cyan
	{0xff, 0x55, 0x55, 255}, // Light red
	{0xff, 0x55, 0xff, 255}, // Pink
	{0xff, 0xff, 0x55, 255}, // Yellow
	{0xff, 0xff, 0xff, 255}, // White
}
