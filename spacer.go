package tk

var _ Control = (*Spacer)(nil)

// Spacer is an empty control that takes up room in a row.
type Spacer struct {
	Element
}

// NewSpacer creates a spacer that prefers no width and soaks up any spare
// horizontal space.
func NewSpacer(opts ...Option) *Spacer {
	return &Spacer{Element: newElement(Size{}, ExpandingConstraint, MinimumConstraint, opts)}
}

// NewGap creates a spacer that is exactly width cells wide.
func NewGap(width int, opts ...Option) *Spacer {
	return &Spacer{Element: newElement(Sz(width, 0), FixedConstraint, MinimumConstraint, opts)}
}
