package tk

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"
)

// TextAlign specifies how a line of text sits within its cell.
type TextAlign int

const (
	// AlignLeft aligns text to the left edge (default).
	AlignLeft TextAlign = iota
	// AlignCenter centers text horizontally.
	AlignCenter
	// AlignRight aligns text to the right edge.
	AlignRight
)

// sanitizeText strips escape sequences and control characters. Tabs become
// a single space; newlines are kept only when keepNewlines is set and
// become spaces otherwise.
func sanitizeText(s string, keepNewlines bool) string {
	s = ansi.Strip(s)

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r == '\n' && keepNewlines:
			b.WriteRune('\n')
		case r == '\n' || r == '\t':
			b.WriteRune(' ')
		case r < 0x20 || r == 0x7f:
			// Drop remaining C0/DEL control bytes.
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// wrapText breaks text into rows no wider than width, preferring word
// boundaries and splitting words that are longer than a row. Empty text is
// a single empty row.
func wrapText(text string, width int) []string {
	width = max(1, width)
	if text == "" {
		return []string{""}
	}

	// A rune wider than the row could never be placed.
	text = strings.Map(func(r rune) rune {
		if runewidth.RuneWidth(r) > width {
			return '?'
		}
		return r
	}, text)

	rows := strings.Split(wrap.String(wordwrap.String(text, width), width), "\n")
	for i, row := range rows {
		rows[i] = strings.TrimRight(row, " ")
	}
	return rows
}

// longestLine returns the display width of the widest line in s.
func longestLine(s string) int {
	longest := 0
	for line := range strings.SplitSeq(s, "\n") {
		longest = max(longest, runewidth.StringWidth(line))
	}
	return longest
}

// fitText truncates s to width cells, marking the cut with an ellipsis.
func fitText(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(s, width, "…")
}

// alignOffset returns the column at which a line of the given width starts
// inside a span of avail cells.
func alignOffset(align TextAlign, width, avail int) int {
	switch align {
	case AlignCenter:
		return max(0, (avail-width)/2)
	case AlignRight:
		return max(0, avail-width)
	default:
		return 0
	}
}
