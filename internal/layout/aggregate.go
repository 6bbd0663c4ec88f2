package layout

// PreferredSize returns the size the row would like: the sum of the
// children's clamped preferred widths plus spacing, and the tallest clamped
// preferred height. Children that are hidden or vertically ignored do not
// count.
func (l *HBox) PreferredSize() Size {
	var s Size
	n := 0
	for _, w := range l.host.LayoutChildren() {
		if !sizesVertically(w) {
			continue
		}
		p := w.PreferredSize()
		s.Width += clampHint(p.Width, w.MinWidth(), w.MaxWidth()) + l.spacing
		s.Height = max(s.Height, clampHint(p.Height, w.MinHeight(), w.MaxHeight()))
		n++
	}
	if n == 0 {
		return Size{}
	}
	s.Width -= l.spacing
	return s
}

// HeightForWidth returns the height the row needs when it is width wide.
// Each child starts from its preferred height and adopts its own
// height-for-width answer when that is larger and the child may shrink, or
// smaller and the child may grow. Per-child heights are summed with spacing.
func (l *HBox) HeightForWidth(width int) int {
	total := 0
	n := 0
	for _, w := range l.host.LayoutChildren() {
		if !sizesVertically(w) {
			continue
		}
		h := w.PreferredSize().Height
		if hfw := w.HeightForWidth(width); hfw != 0 {
			vc := w.VConstraint()
			if hfw > h && vc.CanShrink() {
				h = hfw
			} else if hfw < h && vc.CanGrow() {
				h = hfw
			}
		}
		total += h + l.spacing
		n++
	}
	if n == 0 {
		return 0
	}
	return total - l.spacing
}

func sizesVertically(w Widget) bool {
	return w != nil && w.Visible() && !w.VConstraint().Ignored()
}

// clampHint applies the explicit limits that are set (positive).
func clampHint(v, lo, hi int) int {
	if lo > 0 && v < lo {
		v = lo
	}
	if hi > 0 && v > hi {
		v = hi
	}
	return v
}
