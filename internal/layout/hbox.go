package layout

import "github.com/grindlemire/go-tk/internal/debug"

// HBox arranges the children of its host in a single row.
//
// The layout keeps no per-child state between passes: Tile re-reads the
// host's children every time, so children may be added or removed freely
// between calls.
type HBox struct {
	host     Host
	spacing  int
	modified bool
}

// NewHBox creates a horizontal layout for host. The layout starts out
// modified so the first Tile always runs.
func NewHBox(host Host) *HBox {
	return &HBox{host: host, modified: true}
}

// Spacing returns the gap inserted between consecutive active children.
func (l *HBox) Spacing() int {
	return l.spacing
}

// SetSpacing changes the gap between children and marks the layout modified.
func (l *HBox) SetSpacing(spacing int) {
	if l.spacing == spacing {
		return
	}
	l.spacing = spacing
	l.modified = true
}

// Modified reports whether a Tile is due.
func (l *HBox) Modified() bool {
	return l.modified
}

// Invalidate marks the layout as needing a Tile.
func (l *HBox) Invalidate() {
	l.modified = true
}

// Tile resolves and applies the width, height and position of every active
// child. Positions are relative to the layout origin. An empty active list
// leaves every child untouched.
//
// A child that cannot grow is charged its live width, not its working
// width. Right after the layout area changes, that live width is the one
// from the previous area, so the first Tile can overflow or fall short:
// a Maximum child left at 10 cells by a narrow row is charged 10 in a
// wider row while it resolves to its preferred width. A second Tile with
// the same inputs settles. Tile does not invalidate itself, so callers
// that resize should Tile twice.
func (l *HBox) Tile() {
	defer func() { l.modified = false }()

	area := l.host.LayoutSize()
	entries, numExpanding := activeWidgets(l.host.LayoutChildren(), area.Height)
	if len(entries) == 0 {
		return
	}

	alloc := distribute(entries, numExpanding, area, l.spacing)
	for i := range entries {
		r := alloc.rects[i]
		w := entries[i].widget
		w.SetWidth(r.Width)
		w.SetHeight(r.Height)
		w.MoveTo(r.X, r.Y)
	}

	debug.Logger().Debug("hbox tiled",
		"area", area,
		"active", len(entries),
		"expanding", numExpanding,
		"average", alloc.average,
		"artifact", alloc.artifact,
		"pool", alloc.poolSize,
		"removed", alloc.removed,
	)
}
