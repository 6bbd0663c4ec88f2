package tk

// Invalidate tells the parent container that a sizing hint changed, so
// its layout runs on the next Update. Setters call it automatically;
// custom controls call it after changing what PreferredSize or
// HeightForWidth report.
func (e *Element) Invalidate() {
	if e.parent != nil {
		e.parent.childChanged()
	}
}

// childChanged marks the layout modified. A container's own preferred size
// follows its children, so the change is passed up as well.
func (c *Container) childChanged() {
	c.layout.Invalidate()
	c.Element.Invalidate()
}

// NeedsUpdate reports whether c or any visible nested container has a
// modified layout.
func (c *Container) NeedsUpdate() bool {
	if c.layout.Modified() {
		return true
	}
	for _, h := range c.order {
		if sub, ok := c.children[h].(*Container); ok && sub.Visible() && sub.NeedsUpdate() {
			return true
		}
	}
	return false
}
