package tk

import "strings"

var _ Control = (*TextBlock)(nil)

// DefaultWrapWidth is the width a TextBlock prefers when its text has
// lines longer than that.
const DefaultWrapWidth = 40

// TextBlock is word-wrapped multi-line text. Its height depends on the
// width it is given.
type TextBlock struct {
	Element
	text      string
	wrapWidth int
	align     TextAlign

	// rows caches the last wrap.
	rows      []string
	rowsWidth int
}

// TextBlockOption configures a TextBlock.
type TextBlockOption func(*TextBlock)

// WithWrapWidth sets the preferred wrap width.
func WithWrapWidth(cells int) TextBlockOption {
	return func(t *TextBlock) {
		t.wrapWidth = max(1, cells)
	}
}

// WithTextAlign sets the alignment of each wrapped row.
func WithTextAlign(align TextAlign) TextBlockOption {
	return func(t *TextBlock) {
		t.align = align
	}
}

// WithOptions applies control options to the text block.
func WithOptions(opts ...Option) TextBlockOption {
	return func(t *TextBlock) {
		for _, opt := range opts {
			opt(&t.Element)
		}
	}
}

// NewTextBlock creates a text block. Newlines in text are hard breaks.
func NewTextBlock(text string, opts ...TextBlockOption) *TextBlock {
	t := &TextBlock{
		text:      sanitizeText(text, true),
		wrapWidth: DefaultWrapWidth,
	}
	t.Element = newElement(Size{}, PreferredConstraint, PreferredConstraint, nil)
	for _, opt := range opts {
		opt(t)
	}
	if t.preferred.Width <= 0 {
		t.preferred.Width = t.naturalSize().Width
	}
	if t.preferred.Height <= 0 {
		t.preferred.Height = t.HeightForWidth(t.preferred.Width)
	}
	t.bounds.Width, t.bounds.Height = t.preferred.Width, t.preferred.Height
	return t
}

// naturalSize is the text's width capped at the wrap width, and the number
// of rows at that width.
func (t *TextBlock) naturalSize() Size {
	w := min(longestLine(t.text), t.wrapWidth)
	return Sz(w, len(t.wrapped(max(1, w))))
}

// Text returns the unwrapped text.
func (t *TextBlock) Text() string {
	return t.text
}

// SetText replaces the text and resets the preferred size to fit it.
func (t *TextBlock) SetText(text string) {
	text = sanitizeText(text, true)
	if text == t.text {
		return
	}
	t.text = text
	t.rows = nil
	t.SetPreferredSize(t.naturalSize())
}

// HeightForWidth returns the number of rows the text wraps to at width.
func (t *TextBlock) HeightForWidth(width int) int {
	return len(t.wrapped(width))
}

// Lines returns the text wrapped to the block's current width.
func (t *TextBlock) Lines() []string {
	return t.wrapped(t.bounds.Width)
}

func (t *TextBlock) wrapped(width int) []string {
	width = max(1, width)
	if t.rows == nil || t.rowsWidth != width {
		t.rows = wrapText(t.text, width)
		t.rowsWidth = width
	}
	return t.rows
}

// Paint draws as many wrapped rows as fit, starting at the top.
func (t *TextBlock) Paint(buf *Buffer, origin Point) {
	r := t.bounds.Translate(origin.X, origin.Y)
	if r.IsEmpty() {
		return
	}
	for i, row := range t.wrapped(r.Width) {
		if i >= r.Height {
			break
		}
		paintLine(buf, r, r.Y+i, row, t.align)
	}
}

// String returns the text wrapped to the block's current width.
func (t *TextBlock) String() string {
	return strings.Join(t.Lines(), "\n")
}
