package layout

// Widget is the sizing facade the layout engine works through.
// Every control implements it; the engine never depends on anything wider.
type Widget interface {
	// Visible reports whether the widget takes part in layout.
	Visible() bool

	// PreferredSize returns the size the widget would like to have.
	PreferredSize() Size

	// MinWidth, MaxWidth, MinHeight and MaxHeight return explicit size
	// limits. Zero or negative means unset.
	MinWidth() int
	MaxWidth() int
	MinHeight() int
	MaxHeight() int

	// Width and Height return the live geometry.
	Width() int
	Height() int

	// HConstraint and VConstraint return the per-axis constraint bit-sets.
	HConstraint() SizeConstraint
	VConstraint() SizeConstraint

	// HeightForWidth returns the height the widget needs at the given
	// width, or 0 when its height does not depend on width.
	HeightForWidth(width int) int

	SetWidth(width int)
	SetHeight(height int)
	MoveTo(x, y int)
}

// Host is the container a layout arranges. The layout keeps only this
// back-reference and re-reads the children on every pass.
type Host interface {
	// LayoutChildren returns the current children in insertion order.
	LayoutChildren() []Widget

	// LayoutSize returns the area available to the layout.
	LayoutSize() Size
}
