package layout

// Size represents a width/height pair.
type Size struct {
	Width, Height int
}

// Sz is shorthand for Size{Width: w, Height: h}.
func Sz(w, h int) Size {
	return Size{Width: w, Height: h}
}

// IsValid reports whether both dimensions are nonnegative.
func (s Size) IsValid() bool {
	return s.Width >= 0 && s.Height >= 0
}

// IsEmpty returns true if either dimension is zero or negative.
func (s Size) IsEmpty() bool {
	return s.Width <= 0 || s.Height <= 0
}

// Expand returns the component-wise maximum of s and other.
func (s Size) Expand(other Size) Size {
	return Size{Width: max(s.Width, other.Width), Height: max(s.Height, other.Height)}
}

// Bound returns the component-wise minimum of s and other.
func (s Size) Bound(other Size) Size {
	return Size{Width: min(s.Width, other.Width), Height: min(s.Height, other.Height)}
}

// Grow returns s enlarged by the given edges.
func (s Size) Grow(e Edges) Size {
	return Size{Width: s.Width + e.Horizontal(), Height: s.Height + e.Vertical()}
}

// Shrink returns s reduced by the given edges, never below zero.
func (s Size) Shrink(e Edges) Size {
	return Size{Width: max(0, s.Width-e.Horizontal()), Height: max(0, s.Height-e.Vertical())}
}
