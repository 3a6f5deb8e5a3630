// Package view mirrors a vgatext grid onto a tcell screen, so the text
// console can be watched from a hosted terminal.
package view

import (
	"image/color"

	"github.com/gdamore/tcell/v2"

	vgatext "github.com/danielgatis/go-vgatext"
)

// Mirror draws a Writer's grid onto a tcell screen.
type Mirror struct {
	screen  tcell.Screen
	writer  *vgatext.Writer
	palette *[16]color.RGBA
}

// Option configures a Mirror.
type Option func(*Mirror)

// WithPalette overrides the color table. Defaults to vgatext.DefaultPalette.
func WithPalette(p *[16]color.RGBA) Option {
	return func(m *Mirror) {
		if p != nil {
			m.palette = p
		}
	}
}

// New creates a mirror of w on screen. The screen must already be initialized.
func New(screen tcell.Screen, w *vgatext.Writer, opts ...Option) *Mirror {
	m := &Mirror{
		screen:  screen,
		writer:  w,
		palette: &vgatext.DefaultPalette,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Style converts a packed cell style to a tcell style through the palette.
func (m *Mirror) Style(s vgatext.Style) tcell.Style {
	fg := m.palette[s.Foreground()]
	bg := m.palette[s.Background()]
	return tcell.StyleDefault.
		Foreground(tcell.NewRGBColor(int32(fg.R), int32(fg.G), int32(fg.B))).
		Background(tcell.NewRGBColor(int32(bg.R), int32(bg.G), int32(bg.B)))
}

// Draw copies every cell into the screen buffer and places the cursor.
// Cells outside the screen are clipped. Call Show (or Sync) to display.
func (m *Mirror) Draw() {
	width, height := m.screen.Size()
	for row, line := range m.writer.Cells() {
		if row >= height {
			break
		}
		for col, cell := range line {
			if col >= width {
				break
			}
			m.screen.SetContent(col, row, cell.Rune(), nil, m.Style(cell.Style))
		}
	}

	row, col := m.writer.CursorPos()
	if col < m.writer.Cols() {
		m.screen.ShowCursor(col, row)
	} else {
		m.screen.HideCursor()
	}
}

// Refresh draws and shows the grid.
func (m *Mirror) Refresh() {
	m.Draw()
	m.screen.Show()
}
