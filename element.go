package tk

var (
	_ Control = (*Element)(nil)
	_ Widget  = (*Element)(nil)
)

// Control is a widget that can be placed in a Container and painted.
// Custom controls get the unexported part of the interface by embedding
// Element.
type Control interface {
	Widget

	// Bounds returns the geometry assigned by the parent's layout,
	// relative to the parent's content origin.
	Bounds() Rect

	// Paint draws the control into buf. origin is the parent's content
	// origin in buffer coordinates.
	Paint(buf *Buffer, origin Point)

	element() *Element
}

// Element holds the geometry and sizing hints shared by every control.
// It is meant to be embedded; on its own it is an invisible placeholder
// that occupies its preferred size.
type Element struct {
	bounds    Rect
	preferred Size
	minSize   Size // zero or negative components are unset
	maxSize   Size
	h, v      SizeConstraint
	hidden    bool

	parent *Container
	handle Handle
}

// New creates a bare Element with the preferred constraint on both axes.
func New(opts ...Option) *Element {
	e := newElement(Size{}, PreferredConstraint, PreferredConstraint, opts)
	return &e
}

// newElement builds the embedded state for a control. Options run after
// the control's own defaults so they can override them, and the live
// geometry starts out at the resulting preferred size.
func newElement(preferred Size, h, v SizeConstraint, opts []Option) Element {
	e := Element{preferred: preferred, h: h, v: v}
	for _, opt := range opts {
		opt(&e)
	}
	e.bounds.Width = e.preferred.Width
	e.bounds.Height = e.preferred.Height
	return e
}

func (e *Element) element() *Element { return e }

// Visible reports whether the element takes part in layout and painting.
func (e *Element) Visible() bool {
	return !e.hidden
}

// SetVisible shows or hides the element.
func (e *Element) SetVisible(visible bool) {
	if e.hidden == !visible {
		return
	}
	e.hidden = !visible
	e.Invalidate()
}

// PreferredSize returns the size the element would like to have.
func (e *Element) PreferredSize() Size {
	return e.preferred
}

// SetPreferredSize replaces the preferred size hint.
func (e *Element) SetPreferredSize(s Size) {
	if e.preferred == s {
		return
	}
	e.preferred = s
	e.Invalidate()
}

func (e *Element) MinWidth() int  { return e.minSize.Width }
func (e *Element) MaxWidth() int  { return e.maxSize.Width }
func (e *Element) MinHeight() int { return e.minSize.Height }
func (e *Element) MaxHeight() int { return e.maxSize.Height }

// SetMinSize sets explicit lower limits. Zero leaves an axis unset.
func (e *Element) SetMinSize(s Size) {
	if e.minSize == s {
		return
	}
	e.minSize = s
	e.Invalidate()
}

// SetMaxSize sets explicit upper limits. Zero leaves an axis unset.
func (e *Element) SetMaxSize(s Size) {
	if e.maxSize == s {
		return
	}
	e.maxSize = s
	e.Invalidate()
}

// HConstraint returns the horizontal size constraint.
func (e *Element) HConstraint() SizeConstraint { return e.h }

// VConstraint returns the vertical size constraint.
func (e *Element) VConstraint() SizeConstraint { return e.v }

// SetConstraints replaces both size constraints.
func (e *Element) SetConstraints(h, v SizeConstraint) {
	if e.h == h && e.v == v {
		return
	}
	e.h, e.v = h, v
	e.Invalidate()
}

// HeightForWidth returns 0: a plain element's height does not depend on
// its width.
func (e *Element) HeightForWidth(int) int {
	return 0
}

func (e *Element) Width() int  { return e.bounds.Width }
func (e *Element) Height() int { return e.bounds.Height }

// Position returns the top-left corner relative to the parent's content
// origin.
func (e *Element) Position() Point {
	return e.bounds.Origin()
}

// Bounds returns the element's geometry relative to the parent's content
// origin.
func (e *Element) Bounds() Rect {
	return e.bounds
}

// SetWidth, SetHeight and MoveTo write live geometry. They are called by
// layouts and do not invalidate anything.
func (e *Element) SetWidth(width int)   { e.bounds.Width = width }
func (e *Element) SetHeight(height int) { e.bounds.Height = height }
func (e *Element) MoveTo(x, y int)      { e.bounds.X, e.bounds.Y = x, y }

// Parent returns the container holding the element, or nil.
func (e *Element) Parent() *Container {
	return e.parent
}

// Handle returns the element's handle in its parent, or 0 when detached.
func (e *Element) Handle() Handle {
	return e.handle
}

// Paint draws nothing.
func (e *Element) Paint(*Buffer, Point) {}
