package tk

// Option configures the sizing hints of a control at construction.
type Option func(*Element)

// WithPreferredSize overrides the preferred size the control computes from
// its content.
func WithPreferredSize(width, height int) Option {
	return func(e *Element) {
		e.preferred = Size{Width: width, Height: height}
	}
}

// WithPreferredWidth overrides only the preferred width.
func WithPreferredWidth(cells int) Option {
	return func(e *Element) {
		e.preferred.Width = cells
	}
}

// WithPreferredHeight overrides only the preferred height.
func WithPreferredHeight(cells int) Option {
	return func(e *Element) {
		e.preferred.Height = cells
	}
}

// WithMinSize sets explicit minimum width and height. Zero leaves an axis
// unset.
func WithMinSize(width, height int) Option {
	return func(e *Element) {
		e.minSize = Size{Width: width, Height: height}
	}
}

// WithMinWidth sets the minimum width in cells.
func WithMinWidth(cells int) Option {
	return func(e *Element) {
		e.minSize.Width = cells
	}
}

// WithMaxSize sets explicit maximum width and height. Zero leaves an axis
// unset.
func WithMaxSize(width, height int) Option {
	return func(e *Element) {
		e.maxSize = Size{Width: width, Height: height}
	}
}

// WithMaxWidth sets the maximum width in cells.
func WithMaxWidth(cells int) Option {
	return func(e *Element) {
		e.maxSize.Width = cells
	}
}

// WithConstraints sets both size constraints.
func WithConstraints(h, v SizeConstraint) Option {
	return func(e *Element) {
		e.h, e.v = h, v
	}
}

// WithHConstraint sets the horizontal size constraint.
func WithHConstraint(c SizeConstraint) Option {
	return func(e *Element) {
		e.h = c
	}
}

// WithVConstraint sets the vertical size constraint.
func WithVConstraint(c SizeConstraint) Option {
	return func(e *Element) {
		e.v = c
	}
}

// WithHidden creates the control hidden.
func WithHidden() Option {
	return func(e *Element) {
		e.hidden = true
	}
}
