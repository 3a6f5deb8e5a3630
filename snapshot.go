package vgatext

import (
	"encoding/json"
	"fmt"
)

// SnapshotDetail specifies the level of detail in a snapshot.
type SnapshotDetail string

const (
	// SnapshotDetailText returns plain text only.
	SnapshotDetailText SnapshotDetail = "text"
	// SnapshotDetailFull returns full cell-by-cell data.
	SnapshotDetailFull SnapshotDetail = "full"
)

// Snapshot represents a complete screen capture.
type Snapshot struct {
	Size   SnapshotSize   `json:"size"`
	Cursor SnapshotCursor `json:"cursor"`
	Style  SnapshotStyle  `json:"style"`
	Lines  []SnapshotLine `json:"lines"`
}

// SnapshotSize holds grid dimensions.
type SnapshotSize struct {
	Rows int `json:"rows"`
	Cols int `json:"cols"`
}

// SnapshotCursor holds cursor state.
type SnapshotCursor struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// SnapshotStyle holds the writer's active style.
type SnapshotStyle struct {
	Fg   string `json:"fg"`
	Bg   string `json:"bg"`
	Code string `json:"code"`
}

// SnapshotLine represents a single row in the snapshot.
type SnapshotLine struct {
	Text  string         `json:"text"`
	Cells []SnapshotCell `json:"cells,omitempty"`
}

// SnapshotCell represents a single cell with its raw code and decoded colors.
type SnapshotCell struct {
	Char string `json:"char"`
	Code uint8  `json:"code"`
	Fg   string `json:"fg"`
	Bg   string `json:"bg"`
}

func snapshotStyle(s Style) SnapshotStyle {
	return SnapshotStyle{
		Fg:   s.Foreground().String(),
		Bg:   s.Background().String(),
		Code: fmt.Sprintf("0x%02x", uint8(s)),
	}
}

// Snapshot captures every row of the grid (row 0 included) at the requested detail.
func (w *Writer) Snapshot(detail SnapshotDetail) *Snapshot {
	w.mu.Lock()
	defer w.mu.Unlock()

	pos := w.cursor.Position()
	snap := &Snapshot{
		Size: SnapshotSize{
			Rows: w.grid.Rows(),
			Cols: w.grid.Cols(),
		},
		Cursor: SnapshotCursor{
			Row: pos.Row,
			Col: pos.Col,
		},
		Style: snapshotStyle(w.style),
		Lines: make([]SnapshotLine, w.grid.Rows()),
	}

	for row := 0; row < w.grid.Rows(); row++ {
		line := SnapshotLine{Text: w.grid.LineContent(row)}
		if detail == SnapshotDetailFull {
			cells := w.grid.Row(row)
			line.Cells = make([]SnapshotCell, len(cells))
			for col, cell := range cells {
				line.Cells[col] = SnapshotCell{
					Char: string(cell.Rune()),
					Code: cell.Char,
					Fg:   cell.Style.Foreground().String(),
					Bg:   cell.Style.Background().String(),
				}
			}
		}
		snap.Lines[row] = line
	}

	return snap
}

// SnapshotJSON captures the grid and encodes it as JSON.
func (w *Writer) SnapshotJSON(detail SnapshotDetail) ([]byte, error) {
	data, err := json.Marshal(w.Snapshot(detail))
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}
	return data, nil
}
