package layout

// Point represents an (X, Y) coordinate.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns a new Point offset by other.
func (p Point) Add(other Point) Point {
	return Point{X: p.X + other.X, Y: p.Y + other.Y}
}

// Sub returns a new Point with other subtracted.
func (p Point) Sub(other Point) Point {
	return Point{X: p.X - other.X, Y: p.Y - other.Y}
}

// In returns true if the point is inside the given rectangle.
func (p Point) In(r Rect) bool {
	return r.Contains(p.X, p.Y)
}

// Translate moves the point in place by (dx, dy).
func (p *Point) Translate(dx, dy int) {
	p.X += dx
	p.Y += dy
}

// MoveTo sets the point in place to (x, y).
func (p *Point) MoveTo(x, y int) {
	p.X = x
	p.Y = y
}
