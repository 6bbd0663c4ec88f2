// layout.go re-exports layout types from internal/layout.
// Any changes to internal/layout types must be mirrored here.
package tk

import "github.com/grindlemire/go-tk/internal/layout"

// Size represents a width/height pair.
type Size = layout.Size

// Point represents an x/y coordinate.
type Point = layout.Point

// Rect represents a rectangle with position and dimensions.
type Rect = layout.Rect

// Edges represents spacing on four sides (top, right, bottom, left).
type Edges = layout.Edges

// SizeConstraint is a per-axis bit-set of sizing policies.
type SizeConstraint = layout.SizeConstraint

const (
	GrowPolicy   = layout.GrowPolicy
	ExpandPolicy = layout.ExpandPolicy
	ShrinkPolicy = layout.ShrinkPolicy
	IgnorePolicy = layout.IgnorePolicy

	FixedConstraint            = layout.FixedConstraint
	MinimumConstraint          = layout.MinimumConstraint
	MaximumConstraint          = layout.MaximumConstraint
	PreferredConstraint        = layout.PreferredConstraint
	MinimumExpandingConstraint = layout.MinimumExpandingConstraint
	ExpandingConstraint        = layout.ExpandingConstraint
	IgnoredConstraint          = layout.IgnoredConstraint
)

// Widget is the sizing facade the layout engine reads and writes.
type Widget = layout.Widget

// Host is the container side of a layout.
type Host = layout.Host

// HBox arranges a host's children in a single row.
type HBox = layout.HBox

// NewHBox creates a horizontal layout bound to host.
func NewHBox(host Host) *HBox {
	return layout.NewHBox(host)
}

// ParseConstraint parses a named constraint ("expanding") or a
// "|"-separated list of policies ("grow|shrink").
func ParseConstraint(s string) (SizeConstraint, error) {
	return layout.ParseConstraint(s)
}

// Sz is shorthand for Size{Width: w, Height: h}.
func Sz(w, h int) Size {
	return layout.Sz(w, h)
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point {
	return layout.Pt(x, y)
}

// NewRect creates a new Rect with the given position and dimensions.
func NewRect(x, y, width, height int) Rect {
	return layout.NewRect(x, y, width, height)
}

// EdgeAll creates Edges with the same value on all sides.
func EdgeAll(n int) Edges {
	return layout.EdgeAll(n)
}

// EdgeSymmetric creates Edges with vertical (top/bottom) and horizontal (left/right) values.
func EdgeSymmetric(v, h int) Edges {
	return layout.EdgeSymmetric(v, h)
}
