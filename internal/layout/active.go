package layout

// entry holds intermediate calculation state for one active child.
// Entries are rebuilt on every Tile call, never stored on widgets.
type entry struct {
	widget Widget
	size   Size // working size, starts at the preferred size
	live   int  // live width when the pass started
	min    int
	max    int
	h      SizeConstraint
	pinned bool // removed from the pool by an elimination pass
}

// activeWidgets returns an entry for every visible child whose horizontal
// constraint is not ignored, along with the number of entries that carry
// ExpandPolicy. Working heights are clamped to or stretched towards
// layoutHeight according to each child's vertical constraint.
func activeWidgets(children []Widget, layoutHeight int) ([]entry, int) {
	entries := make([]entry, 0, len(children))
	numExpanding := 0

	for _, w := range children {
		if w == nil || !w.Visible() {
			continue
		}
		hc := w.HConstraint()
		if hc.Ignored() {
			continue
		}

		e := entry{
			widget: w,
			size:   w.PreferredSize(),
			live:   w.Width(),
			min:    w.MinWidth(),
			max:    w.MaxWidth(),
			h:      hc,
		}

		vc := w.VConstraint()
		if e.size.Height > layoutHeight && vc.CanShrink() {
			e.size.Height = layoutHeight
		} else if e.size.Height < layoutHeight && vc.CanGrow() {
			e.size.Height = layoutHeight
		}

		if hc.Expands() {
			numExpanding++
		}
		entries = append(entries, e)
	}
	return entries, numExpanding
}
