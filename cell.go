package tk

import "github.com/mattn/go-runewidth"

// Cell represents a single character cell in a Buffer.
// Wide characters (CJK, emoji) occupy two cells; the first cell holds
// the rune, the second is marked as a continuation.
type Cell struct {
	Rune  rune  // 0 for continuation cells
	Width uint8 // display width (1 or 2; 0 for continuation)
}

var blankCell = Cell{Rune: ' ', Width: 1}

// NewCell creates a Cell with its display width looked up.
func NewCell(r rune) Cell {
	return Cell{Rune: r, Width: uint8(RuneWidth(r))}
}

// IsContinuation reports whether the cell is the trailing half of a wide
// character.
func (c Cell) IsContinuation() bool {
	return c.Width == 0
}

// IsEmpty reports whether the cell is blank.
func (c Cell) IsEmpty() bool {
	return c.Rune == 0 || c.Rune == ' '
}

// RuneWidth returns the display width of r in cells. Zero-width and
// control runes report 0; everything else reports 1 or 2.
func RuneWidth(r rune) int {
	return runewidth.RuneWidth(r)
}

// StringWidth returns the display width of s in cells.
func StringWidth(s string) int {
	return runewidth.StringWidth(s)
}
