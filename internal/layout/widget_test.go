package layout

// testWidget is a minimal Widget for exercising the engine.
type testWidget struct {
	hidden     bool
	pref       Size
	minW, maxW int
	minH, maxH int
	h, v       SizeConstraint
	hfw        int

	geom Rect
}

var _ Widget = (*testWidget)(nil)

func newTestWidget(w, h int, hc SizeConstraint) *testWidget {
	return &testWidget{
		pref: Size{Width: w, Height: h},
		minW: -1, maxW: -1, minH: -1, maxH: -1,
		h:    hc,
		v:    PreferredConstraint,
		geom: Rect{Width: w, Height: h},
	}
}

func (w *testWidget) Visible() bool                { return !w.hidden }
func (w *testWidget) PreferredSize() Size          { return w.pref }
func (w *testWidget) MinWidth() int                { return w.minW }
func (w *testWidget) MaxWidth() int                { return w.maxW }
func (w *testWidget) MinHeight() int               { return w.minH }
func (w *testWidget) MaxHeight() int               { return w.maxH }
func (w *testWidget) Width() int                   { return w.geom.Width }
func (w *testWidget) Height() int                  { return w.geom.Height }
func (w *testWidget) HConstraint() SizeConstraint  { return w.h }
func (w *testWidget) VConstraint() SizeConstraint  { return w.v }
func (w *testWidget) HeightForWidth(width int) int { return w.hfw }
func (w *testWidget) SetWidth(width int)           { w.geom.Width = width }
func (w *testWidget) SetHeight(height int)         { w.geom.Height = height }
func (w *testWidget) MoveTo(x, y int)              { w.geom.X, w.geom.Y = x, y }

// testHost is a Host over a plain slice.
type testHost struct {
	size     Size
	children []*testWidget
}

func (h *testHost) LayoutSize() Size { return h.size }

func (h *testHost) LayoutChildren() []Widget {
	out := make([]Widget, len(h.children))
	for i, c := range h.children {
		out[i] = c
	}
	return out
}

func newTestHost(width, height int, children ...*testWidget) *testHost {
	return &testHost{size: Size{Width: width, Height: height}, children: children}
}

func widths(children []*testWidget) []int {
	out := make([]int, len(children))
	for i, c := range children {
		out[i] = c.geom.Width
	}
	return out
}

func sumWidths(children []*testWidget) int {
	total := 0
	for _, c := range children {
		total += c.geom.Width
	}
	return total
}
