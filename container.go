package tk

import "slices"

var (
	_ Control = (*Container)(nil)
	_ Host    = (*Container)(nil)
)

// Handle identifies a child within its Container. Handles are never reused
// by the same container; the zero Handle is never issued.
type Handle uint32

// Container owns an ordered set of child controls and arranges them with
// an HBox. A Container is itself a Control, so containers nest; a nested
// container is re-tiled by its own Update.
type Container struct {
	Element

	layout   *HBox
	border   Border
	last     Handle
	order    []Handle
	children map[Handle]Control
}

// ContainerOption configures a Container.
type ContainerOption func(*Container)

// WithSpacing sets the gap between children in cells.
func WithSpacing(cells int) ContainerOption {
	return func(c *Container) {
		c.layout.SetSpacing(cells)
	}
}

// WithBorder draws a border around the children.
func WithBorder(b Border) ContainerOption {
	return func(c *Container) {
		c.border = b
	}
}

// WithSize sets the container's initial live size.
func WithSize(width, height int) ContainerOption {
	return func(c *Container) {
		c.bounds.Width, c.bounds.Height = width, height
	}
}

// WithElementOptions applies control options to the container itself.
func WithElementOptions(opts ...Option) ContainerOption {
	return func(c *Container) {
		for _, opt := range opts {
			opt(&c.Element)
		}
	}
}

// NewContainer creates an empty container.
func NewContainer(opts ...ContainerOption) *Container {
	c := &Container{
		Element:  newElement(Size{}, PreferredConstraint, PreferredConstraint, nil),
		children: make(map[Handle]Control),
	}
	c.layout = NewHBox(c)
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Layout returns the container's layout.
func (c *Container) Layout() *HBox {
	return c.layout
}

// Spacing returns the gap between children.
func (c *Container) Spacing() int {
	return c.layout.Spacing()
}

// SetSpacing changes the gap between children.
func (c *Container) SetSpacing(cells int) {
	if c.layout.Spacing() == cells {
		return
	}
	c.layout.SetSpacing(cells)
	c.Element.Invalidate()
}

// Border returns the container's border.
func (c *Container) Border() Border {
	return c.border
}

// SetBorder replaces the container's border.
func (c *Container) SetBorder(b Border) {
	if c.border == b {
		return
	}
	c.border = b
	c.childChanged()
}

// Add appends child and returns its handle. A child that already belongs
// to a container is moved. Adding a container to itself or to one of its
// own descendants panics.
func (c *Container) Add(child Control) Handle {
	if child == nil {
		panic("tk: nil child in Container.Add")
	}
	for p := c; p != nil; p = p.parent {
		if child.element() == &p.Element {
			panic("tk: container cannot contain itself")
		}
	}

	e := child.element()
	if e.parent != nil {
		e.parent.Remove(e.handle)
	}

	c.last++
	h := c.last
	c.children[h] = child
	c.order = append(c.order, h)
	e.parent, e.handle = c, h

	c.childChanged()
	return h
}

// Remove detaches the child with handle h. It reports whether h was a
// child of c.
func (c *Container) Remove(h Handle) bool {
	child, ok := c.children[h]
	if !ok {
		return false
	}
	delete(c.children, h)
	c.order = slices.DeleteFunc(c.order, func(o Handle) bool { return o == h })

	e := child.element()
	e.parent, e.handle = nil, 0

	c.childChanged()
	return true
}

// Child returns the child with handle h.
func (c *Container) Child(h Handle) (Control, bool) {
	child, ok := c.children[h]
	return child, ok
}

// Handles returns the children's handles in insertion order.
func (c *Container) Handles() []Handle {
	return slices.Clone(c.order)
}

// Children returns the children in insertion order.
func (c *Container) Children() []Control {
	out := make([]Control, len(c.order))
	for i, h := range c.order {
		out[i] = c.children[h]
	}
	return out
}

// Len returns the number of children, visible or not.
func (c *Container) Len() int {
	return len(c.order)
}

// LayoutChildren implements Host.
func (c *Container) LayoutChildren() []Widget {
	out := make([]Widget, len(c.order))
	for i, h := range c.order {
		out[i] = c.children[h]
	}
	return out
}

// LayoutSize implements Host: the live size less the border.
func (c *Container) LayoutSize() Size {
	return c.bounds.Size().Shrink(c.border.Insets())
}

// PreferredSize returns the explicit preferred size when one was set,
// otherwise the layout's preferred size plus the border.
func (c *Container) PreferredSize() Size {
	if c.preferred != (Size{}) {
		return c.preferred
	}
	return c.layout.PreferredSize().Grow(c.border.Insets())
}

// HeightForWidth returns the height the children need at the given outer
// width, or 0 when there is nothing to lay out.
func (c *Container) HeightForWidth(width int) int {
	insets := c.border.Insets()
	h := c.layout.HeightForWidth(max(0, width-insets.Horizontal()))
	if h == 0 {
		return 0
	}
	return h + insets.Vertical()
}

// SetWidth sets the live width and schedules a re-tile when it changes.
func (c *Container) SetWidth(width int) {
	if c.bounds.Width != width {
		c.bounds.Width = width
		c.layout.Invalidate()
	}
}

// SetHeight sets the live height and schedules a re-tile when it changes.
func (c *Container) SetHeight(height int) {
	if c.bounds.Height != height {
		c.bounds.Height = height
		c.layout.Invalidate()
	}
}

// Resize sets the live size.
func (c *Container) Resize(width, height int) {
	c.SetWidth(width)
	c.SetHeight(height)
}

// Update re-tiles the container when its layout is modified, then updates
// nested containers. It reports whether any layout ran.
func (c *Container) Update() bool {
	tiled := false
	if c.layout.Modified() {
		c.layout.Tile()
		tiled = true
	}
	for _, h := range c.order {
		sub, ok := c.children[h].(*Container)
		if !ok || !sub.Visible() {
			continue
		}
		if sub.Update() {
			tiled = true
		}
	}
	return tiled
}

// Paint draws the border and every visible child.
func (c *Container) Paint(buf *Buffer, origin Point) {
	if c.hidden {
		return
	}
	outer := c.bounds.Translate(origin.X, origin.Y)
	c.border.Draw(buf, outer)

	insets := c.border.Insets()
	content := Pt(outer.X+insets.Left, outer.Y+insets.Top)
	for _, h := range c.order {
		child := c.children[h]
		if !child.Visible() {
			continue
		}
		child.Paint(buf, content)
	}
}
