package tk

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
)

// BorderStyle selects the glyph set used to draw a border.
type BorderStyle int

const (
	// BorderNone draws nothing and takes no space.
	BorderNone BorderStyle = iota
	// BorderNormal uses single-line box-drawing characters (─, │, ┌, etc.)
	BorderNormal
	// BorderRounded uses rounded corner characters (╭, ╮, ╰, ╯)
	BorderRounded
	// BorderDouble uses double-line box-drawing characters (═, ║, ╔, etc.)
	BorderDouble
	// BorderThick uses heavy box-drawing characters (━, ┃, ┏, etc.)
	BorderThick
	// BorderASCII uses +, - and |.
	BorderASCII
)

var borderNames = [...]string{
	BorderNone:    "none",
	BorderNormal:  "normal",
	BorderRounded: "rounded",
	BorderDouble:  "double",
	BorderThick:   "thick",
	BorderASCII:   "ascii",
}

func (s BorderStyle) String() string {
	if s < 0 || int(s) >= len(borderNames) {
		return fmt.Sprintf("BorderStyle(%d)", int(s))
	}
	return borderNames[s]
}

// ParseBorderStyle returns the style with the given name. The empty string
// is BorderNone.
func ParseBorderStyle(name string) (BorderStyle, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return BorderNone, nil
	}
	for i, n := range borderNames {
		if n == name {
			return BorderStyle(i), nil
		}
	}
	return BorderNone, fmt.Errorf("unknown border style %q", name)
}

// Glyphs returns the lipgloss border describing the style's characters.
func (s BorderStyle) Glyphs() lipgloss.Border {
	switch s {
	case BorderNormal:
		return lipgloss.NormalBorder()
	case BorderRounded:
		return lipgloss.RoundedBorder()
	case BorderDouble:
		return lipgloss.DoubleBorder()
	case BorderThick:
		return lipgloss.ThickBorder()
	case BorderASCII:
		return lipgloss.ASCIIBorder()
	default:
		return lipgloss.HiddenBorder()
	}
}

// Border decorates a container or control with a one-cell frame and an
// optional title on the top edge.
type Border struct {
	Style BorderStyle
	Title string
}

// IsZero reports whether the border draws nothing.
func (b Border) IsZero() bool {
	return b.Style == BorderNone
}

// Insets returns the space the border takes from each side.
func (b Border) Insets() Edges {
	if b.IsZero() {
		return Edges{}
	}
	return EdgeAll(1)
}

// Draw draws the border around the edge of rect. Rectangles smaller than
// 2x2 are left alone. The title is clipped to fit between the corners.
func (b Border) Draw(buf *Buffer, rect Rect) {
	if b.IsZero() || rect.Width < 2 || rect.Height < 2 {
		return
	}
	g := b.Style.Glyphs()

	left, right := rect.X, rect.Right()-1
	top, bottom := rect.Y, rect.Bottom()-1

	buf.SetRune(left, top, glyph(g.TopLeft))
	buf.SetRune(right, top, glyph(g.TopRight))
	buf.SetRune(left, bottom, glyph(g.BottomLeft))
	buf.SetRune(right, bottom, glyph(g.BottomRight))
	for x := left + 1; x < right; x++ {
		buf.SetRune(x, top, glyph(g.Top))
		buf.SetRune(x, bottom, glyph(g.Bottom))
	}
	for y := top + 1; y < bottom; y++ {
		buf.SetRune(left, y, glyph(g.Left))
		buf.SetRune(right, y, glyph(g.Right))
	}

	if b.Title != "" && rect.Width > 4 {
		clip := NewRect(left+1, top, rect.Width-2, 1)
		buf.SetStringClipped(left+1, top, " "+b.Title+" ", clip)
	}
}

// glyph returns the first rune of a lipgloss border part.
func glyph(s string) rune {
	r, _ := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return ' '
	}
	return r
}
