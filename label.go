package tk

var _ Control = (*Label)(nil)

// Label is a single line of text. Its preferred width is the text's
// display width; when given less it truncates with an ellipsis.
type Label struct {
	Element
	text  string
	align TextAlign
}

// NewLabel creates a label that prefers its text's width and a height of
// one row.
func NewLabel(text string, opts ...Option) *Label {
	text = sanitizeText(text, false)
	return &Label{
		Element: newElement(Sz(StringWidth(text), 1), PreferredConstraint, FixedConstraint, opts),
		text:    text,
	}
}

// Text returns the label's text.
func (l *Label) Text() string {
	return l.text
}

// SetText replaces the text and resets the preferred width to fit it.
func (l *Label) SetText(text string) {
	text = sanitizeText(text, false)
	if text == l.text {
		return
	}
	l.text = text
	l.SetPreferredSize(Sz(StringWidth(text), l.preferred.Height))
}

// Align returns the horizontal text alignment.
func (l *Label) Align() TextAlign {
	return l.align
}

// SetAlign sets the horizontal text alignment.
func (l *Label) SetAlign(align TextAlign) {
	l.align = align
}

// Paint draws the text on the label's middle row.
func (l *Label) Paint(buf *Buffer, origin Point) {
	r := l.bounds.Translate(origin.X, origin.Y)
	if r.IsEmpty() {
		return
	}
	paintLine(buf, r, r.Y+(r.Height-1)/2, l.text, l.align)
}

// paintLine draws one line of text inside r at row y, truncated and
// aligned.
func paintLine(buf *Buffer, r Rect, y int, text string, align TextAlign) {
	text = fitText(text, r.Width)
	x := r.X + alignOffset(align, StringWidth(text), r.Width)
	buf.SetStringClipped(x, y, text, r)
}
