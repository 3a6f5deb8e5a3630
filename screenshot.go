package vgatext

import (
	"image"
	"image/color"
	"image/draw"
	"io"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// ScreenshotConfig controls how the grid is rendered to an image.
type ScreenshotConfig struct {
	// Font face to use for rendering. If nil, uses basicfont.Face7x13.
	Font font.Face

	// CellWidth and CellHeight override the cell dimensions.
	// If zero, derived from font metrics.
	CellWidth  int
	CellHeight int

	// Palette maps color indices to RGBA. If nil, uses DefaultPalette.
	Palette *[16]color.RGBA

	// ShowCursor draws an underline bar at the cursor cell.
	ShowCursor bool
}

// LoadFont loads a TrueType or OpenType font from a file path.
func LoadFont(path string, size float64) (font.Face, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return LoadFontFromReader(f, size)
}

// LoadFontFromReader loads a TrueType or OpenType font from an io.Reader.
func LoadFontFromReader(r io.Reader, size float64) (font.Face, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	return LoadFontFromBytes(data, size)
}

// LoadFontFromBytes loads a TrueType or OpenType font from raw bytes.
func LoadFontFromBytes(data []byte, size float64) (font.Face, error) {
	ft, err := opentype.Parse(data)
	if err != nil {
		return nil, err
	}

	return opentype.NewFace(ft, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

// Screenshot renders the grid to an RGBA image using basicfont and DefaultPalette.
func (w *Writer) Screenshot() *image.RGBA {
	return w.ScreenshotWithConfig(&ScreenshotConfig{})
}

// ScreenshotWithConfig renders the grid to an RGBA image with a custom font, palette and cursor setting.
// Glyphs the font does not cover are drawn as a filled block.
func (w *Writer) ScreenshotWithConfig(cfg *ScreenshotConfig) *image.RGBA {
	w.mu.Lock()
	defer w.mu.Unlock()

	face := cfg.Font
	if face == nil {
		face = basicfont.Face7x13
	}

	metrics := face.Metrics()
	cellWidth := cfg.CellWidth
	if cellWidth == 0 {
		adv, _ := face.GlyphAdvance('M')
		cellWidth = adv.Ceil()
		if cellWidth == 0 {
			cellWidth = 7
		}
	}
	cellHeight := cfg.CellHeight
	if cellHeight == 0 {
		cellHeight = metrics.Height.Ceil()
	}

	palette := cfg.Palette
	if palette == nil {
		palette = &DefaultPalette
	}

	rows, cols := w.grid.Rows(), w.grid.Cols()
	img := image.NewRGBA(image.Rect(0, 0, cols*cellWidth, rows*cellHeight))

	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			cell, _ := w.grid.Cell(row, col)
			fg := palette[cell.Style.Foreground()]
			bg := palette[cell.Style.Background()]

			x := col * cellWidth
			y := row * cellHeight
			rect := image.Rect(x, y, x+cellWidth, y+cellHeight)
			draw.Draw(img, rect, image.NewUniform(bg), image.Point{}, draw.Src)

			if cell.IsBlank() {
				continue
			}

			r := cell.Rune()
			if !hasGlyph(face, r) {
				// Missing glyph: half-size block in the middle of the cell.
				block := image.Rect(x+cellWidth/4, y+cellHeight/4, x+cellWidth-cellWidth/4, y+cellHeight-cellHeight/4)
				draw.Draw(img, block, image.NewUniform(fg), image.Point{}, draw.Src)
				continue
			}

			d := &font.Drawer{
				Dst:  img,
				Src:  image.NewUniform(fg),
				Face: face,
				Dot:  fixed.P(x, y+metrics.Ascent.Ceil()),
			}
			d.DrawString(string(r))
		}
	}

	if cfg.ShowCursor && w.cursor.Col < cols {
		fg := palette[w.style.Foreground()]
		x := w.cursor.Col * cellWidth
		y := w.cursor.Row*cellHeight + cellHeight - 2
		draw.Draw(img, image.Rect(x, y, x+cellWidth, y+2), image.NewUniform(fg), image.Point{}, draw.Src)
	}

	return img
}

// hasGlyph reports whether face draws r itself rather than a substitute.
func hasGlyph(face font.Face, r rune) bool {
	if bf, ok := face.(*basicfont.Face); ok {
		for _, rng := range bf.Ranges {
			if r >= rng.Low && r < rng.High {
				return true
			}
		}
		return false
	}
	_, ok := face.GlyphAdvance(r)
	return ok
}
