package tk

var _ Control = (*Button)(nil)

// Button is a label inside a border. Pressing and releasing it runs its
// click handler.
type Button struct {
	Element
	text    string
	pressed bool
	onClick func()
}

// NewButton creates a button. It prefers a one-cell border and one space
// of padding around the text, may grow horizontally but never shrinks
// below that, and keeps a fixed height.
func NewButton(text string, onClick func(), opts ...Option) *Button {
	text = sanitizeText(text, false)
	return &Button{
		Element: newElement(buttonSize(text), MinimumConstraint, FixedConstraint, opts),
		text:    text,
		onClick: onClick,
	}
}

func buttonSize(text string) Size {
	return Sz(StringWidth(text)+4, 3)
}

// Text returns the button's caption.
func (b *Button) Text() string {
	return b.text
}

// SetText replaces the caption and resets the preferred size to fit it.
func (b *Button) SetText(text string) {
	text = sanitizeText(text, false)
	if text == b.text {
		return
	}
	b.text = text
	b.SetPreferredSize(buttonSize(text))
}

// OnClick replaces the click handler.
func (b *Button) OnClick(fn func()) {
	b.onClick = fn
}

// Pressed reports whether the button is held down.
func (b *Button) Pressed() bool {
	return b.pressed
}

// Press holds the button down.
func (b *Button) Press() {
	b.pressed = true
}

// Release lets the button up, running the click handler if it was held.
func (b *Button) Release() {
	if !b.pressed {
		return
	}
	b.pressed = false
	if b.onClick != nil {
		b.onClick()
	}
}

// Click presses and releases the button.
func (b *Button) Click() {
	b.Press()
	b.Release()
}

// Paint draws the frame and the centered caption. A held button uses a
// heavier frame.
func (b *Button) Paint(buf *Buffer, origin Point) {
	r := b.bounds.Translate(origin.X, origin.Y)
	if r.IsEmpty() {
		return
	}
	frame := Border{Style: BorderRounded}
	if b.pressed {
		frame.Style = BorderThick
	}
	frame.Draw(buf, r)

	inner := r.Inset(frame.Insets())
	if inner.IsEmpty() {
		return
	}
	paintLine(buf, inner, inner.Y+(inner.Height-1)/2, b.text, AlignCenter)
}
