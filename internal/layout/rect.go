package layout

// Rect represents a rectangle with integer coordinates.
// X and Y are the top-left corner; Width and Height are dimensions.
type Rect struct {
	X, Y          int
	Width, Height int
}

// NewRect creates a new Rect with the given position and dimensions.
func NewRect(x, y, width, height int) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// RectFrom creates a Rect from an origin and a size.
func RectFrom(p Point, s Size) Rect {
	return Rect{X: p.X, Y: p.Y, Width: s.Width, Height: s.Height}
}

// Origin returns the top-left corner.
func (r Rect) Origin() Point {
	return Point{X: r.X, Y: r.Y}
}

// Size returns the rectangle's dimensions.
func (r Rect) Size() Size {
	return Size{Width: r.Width, Height: r.Height}
}

// Right returns the x-coordinate of the right edge (exclusive).
func (r Rect) Right() int {
	return r.X + r.Width
}

// Bottom returns the y-coordinate of the bottom edge (exclusive).
func (r Rect) Bottom() int {
	return r.Y + r.Height
}

// Center returns the center point. ok is false when the size is not valid.
func (r Rect) Center() (p Point, ok bool) {
	if !r.Size().IsValid() {
		return Point{}, false
	}
	return Point{X: r.X + r.Width/2, Y: r.Y + r.Height/2}, true
}

// IsEmpty returns true if the rectangle has zero or negative area.
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Area returns the area of the rectangle.
func (r Rect) Area() int {
	if r.IsEmpty() {
		return 0
	}
	return r.Width * r.Height
}

// Contains returns true if the point (x, y) is inside the rectangle.
// Points on the left and top edges are inside; points on the right and bottom edges are outside.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// ContainsRect returns true if the other rectangle is fully contained within this rectangle.
func (r Rect) ContainsRect(other Rect) bool {
	if other.IsEmpty() {
		return true
	}
	if r.IsEmpty() {
		return false
	}
	return other.X >= r.X && other.Y >= r.Y &&
		other.Right() <= r.Right() && other.Bottom() <= r.Bottom()
}

// Inset returns a new Rect shrunk by the given Edges.
func (r Rect) Inset(edges Edges) Rect {
	return Rect{
		X:      r.X + edges.Left,
		Y:      r.Y + edges.Top,
		Width:  r.Width - edges.Horizontal(),
		Height: r.Height - edges.Vertical(),
	}
}

// Outset returns a new Rect expanded outward by the given Edges.
func (r Rect) Outset(edges Edges) Rect {
	return Rect{
		X:      r.X - edges.Left,
		Y:      r.Y - edges.Top,
		Width:  r.Width + edges.Horizontal(),
		Height: r.Height + edges.Vertical(),
	}
}

// Translate returns a new Rect moved by (dx, dy).
func (r Rect) Translate(dx, dy int) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, Width: r.Width, Height: r.Height}
}

// Intersect returns the intersection of two rectangles.
// If the rectangles don't overlap, returns an empty Rect.
func (r Rect) Intersect(other Rect) Rect {
	x := max(r.X, other.X)
	y := max(r.Y, other.Y)
	right := min(r.Right(), other.Right())
	bottom := min(r.Bottom(), other.Bottom())

	if right <= x || bottom <= y {
		return Rect{}
	}
	return Rect{X: x, Y: y, Width: right - x, Height: bottom - y}
}

// Union returns the smallest rectangle that contains both rectangles.
// If either rectangle is empty, returns the other rectangle.
func (r Rect) Union(other Rect) Rect {
	if r.IsEmpty() {
		return other
	}
	if other.IsEmpty() {
		return r
	}

	x := min(r.X, other.X)
	y := min(r.Y, other.Y)
	right := max(r.Right(), other.Right())
	bottom := max(r.Bottom(), other.Bottom())

	return Rect{X: x, Y: y, Width: right - x, Height: bottom - y}
}

// Intersects returns true if the two rectangles overlap.
// Touching edges do not count as overlapping.
func (r Rect) Intersects(other Rect) bool {
	return !r.Intersect(other).IsEmpty()
}

// Clamp constrains a point to be within the rectangle bounds.
func (r Rect) Clamp(x, y int) (int, int) {
	if r.IsEmpty() {
		return r.X, r.Y
	}
	return min(max(x, r.X), r.Right()-1), min(max(y, r.Y), r.Bottom()-1)
}
