package tk

import "strings"

// Buffer is a 2D grid of cells that controls paint into.
type Buffer struct {
	cells  []Cell
	width  int
	height int
}

// NewBuffer creates a blank buffer. Negative dimensions are treated as 0.
func NewBuffer(width, height int) *Buffer {
	width, height = max(0, width), max(0, height)
	b := &Buffer{
		cells:  make([]Cell, width*height),
		width:  width,
		height: height,
	}
	b.Clear()
	return b
}

// Width returns the buffer width in columns.
func (b *Buffer) Width() int {
	return b.width
}

// Height returns the buffer height in rows.
func (b *Buffer) Height() int {
	return b.height
}

// Size returns the buffer dimensions.
func (b *Buffer) Size() Size {
	return Sz(b.width, b.height)
}

// Rect returns the buffer bounds as a Rect starting at (0, 0).
func (b *Buffer) Rect() Rect {
	return NewRect(0, 0, b.width, b.height)
}

// idx converts (x, y) coordinates to a flat index.
// Returns -1 if out of bounds.
func (b *Buffer) idx(x, y int) int {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return -1
	}
	return y*b.width + x
}

// Cell returns the cell at (x, y), or the zero Cell when out of bounds.
func (b *Buffer) Cell(x, y int) Cell {
	i := b.idx(x, y)
	if i < 0 {
		return Cell{}
	}
	return b.cells[i]
}

func (b *Buffer) setCell(x, y int, c Cell) {
	if i := b.idx(x, y); i >= 0 {
		b.cells[i] = c
	}
}

// SetRune writes r at (x, y). Wide runes also claim the cell to their
// right; a wide rune that does not fit in the last column is written as a
// space. Any wide character partly overwritten is blanked. Zero-width
// runes are ignored.
func (b *Buffer) SetRune(x, y int, r rune) {
	if b.idx(x, y) < 0 {
		return
	}
	width := RuneWidth(r)
	if width == 0 {
		return
	}

	b.clearWideAt(x, y)
	if width == 2 {
		if x+1 >= b.width {
			b.setCell(x, y, blankCell)
			return
		}
		b.clearWideAt(x+1, y)
		b.setCell(x, y, Cell{Rune: r, Width: 2})
		b.setCell(x+1, y, Cell{Width: 0})
		return
	}
	b.setCell(x, y, Cell{Rune: r, Width: 1})
}

// clearWideAt blanks the wide character covering (x, y), if any.
func (b *Buffer) clearWideAt(x, y int) {
	c := b.Cell(x, y)
	switch {
	case b.idx(x, y) < 0:
	case c.IsContinuation():
		b.setCell(x-1, y, blankCell)
		b.setCell(x, y, blankCell)
	case c.Width == 2:
		b.setCell(x, y, blankCell)
		b.setCell(x+1, y, blankCell)
	}
}

// SetString writes s starting at (x, y) without wrapping and returns the
// display width written. Writing stops at the buffer edge.
func (b *Buffer) SetString(x, y int, s string) int {
	return b.SetStringClipped(x, y, s, b.Rect())
}

// SetStringClipped writes s starting at (x, y), dropping anything outside
// clip. A wide rune straddling the clip edge is skipped. Returns the
// display width written.
func (b *Buffer) SetStringClipped(x, y int, s string, clip Rect) int {
	clip = clip.Intersect(b.Rect())
	if y < clip.Y || y >= clip.Bottom() {
		return 0
	}

	written := 0
	curX := x
	for _, r := range s {
		width := RuneWidth(r)
		if width == 0 {
			continue
		}
		if curX >= clip.Right() {
			break
		}
		if curX >= clip.X && curX+width <= clip.Right() {
			b.SetRune(curX, y, r)
			written += width
		}
		curX += width
	}
	return written
}

// Fill fills rect with r. A wide rune that does not fit at the end of a
// row is replaced by a space.
func (b *Buffer) Fill(rect Rect, r rune) {
	rect = rect.Intersect(b.Rect())
	if rect.IsEmpty() {
		return
	}
	width := max(1, RuneWidth(r))
	for y := rect.Y; y < rect.Bottom(); y++ {
		for x := rect.X; x < rect.Right(); {
			if width == 2 && x+1 >= rect.Right() {
				b.SetRune(x, y, ' ')
				x++
				continue
			}
			b.SetRune(x, y, r)
			x += width
		}
	}
}

// Clear blanks every cell.
func (b *Buffer) Clear() {
	for i := range b.cells {
		b.cells[i] = blankCell
	}
}

// Resize changes the buffer dimensions, keeping the overlapping region.
func (b *Buffer) Resize(width, height int) {
	width, height = max(0, width), max(0, height)
	if width == b.width && height == b.height {
		return
	}
	next := NewBuffer(width, height)
	for y := 0; y < min(height, b.height); y++ {
		for x := 0; x < min(width, b.width); x++ {
			next.cells[y*width+x] = b.cells[y*b.width+x]
		}
	}
	// A wide character cut by the new right edge loses its continuation.
	if width < b.width && width > 0 {
		for y := 0; y < height; y++ {
			if c := next.Cell(width-1, y); c.Width == 2 {
				next.setCell(width-1, y, blankCell)
			}
		}
	}
	*b = *next
}

// String returns the buffer contents as lines joined by newlines.
func (b *Buffer) String() string {
	var sb strings.Builder
	sb.Grow(b.width*b.height + b.height)
	for y := 0; y < b.height; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		b.writeRow(&sb, y)
	}
	return sb.String()
}

// StringTrimmed is like String but drops trailing spaces on each line and
// trailing blank lines.
func (b *Buffer) StringTrimmed() string {
	lines := make([]string, b.height)
	for y := range lines {
		var sb strings.Builder
		b.writeRow(&sb, y)
		lines[y] = strings.TrimRight(sb.String(), " ")
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return strings.Join(lines, "\n")
}

func (b *Buffer) writeRow(sb *strings.Builder, y int) {
	for x := 0; x < b.width; x++ {
		c := b.cells[y*b.width+x]
		switch {
		case c.IsContinuation():
		case c.Rune == 0:
			sb.WriteByte(' ')
		default:
			sb.WriteRune(c.Rune)
		}
	}
}
