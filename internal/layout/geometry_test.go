package layout

import "testing"

func TestSize_IsValid(t *testing.T) {
	type tc struct {
		size  Size
		valid bool
		empty bool
	}

	tests := map[string]tc{
		"positive":        {size: Sz(10, 5), valid: true, empty: false},
		"zero":            {size: Sz(0, 0), valid: true, empty: true},
		"negative width":  {size: Sz(-1, 5), valid: false, empty: true},
		"negative height": {size: Sz(5, -1), valid: false, empty: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.size.IsValid(); got != tt.valid {
				t.Errorf("IsValid() = %v, want %v", got, tt.valid)
			}
			if got := tt.size.IsEmpty(); got != tt.empty {
				t.Errorf("IsEmpty() = %v, want %v", got, tt.empty)
			}
		})
	}
}

func TestSize_ExpandBound(t *testing.T) {
	a, b := Sz(10, 3), Sz(4, 8)

	if got := a.Expand(b); got != Sz(10, 8) {
		t.Errorf("Expand() = %+v, want %+v", got, Sz(10, 8))
	}
	if got := a.Bound(b); got != Sz(4, 3) {
		t.Errorf("Bound() = %+v, want %+v", got, Sz(4, 3))
	}
	if got := a.Grow(EdgeAll(1)); got != Sz(12, 5) {
		t.Errorf("Grow() = %+v, want %+v", got, Sz(12, 5))
	}
	if got := Sz(1, 1).Shrink(EdgeAll(1)); got != Sz(0, 0) {
		t.Errorf("Shrink() = %+v, want %+v", got, Sz(0, 0))
	}
}

func TestPoint_Mutators(t *testing.T) {
	p := Pt(3, 4)
	p.Translate(2, -1)
	if p != Pt(5, 3) {
		t.Errorf("Translate(2, -1) = %+v, want %+v", p, Pt(5, 3))
	}
	p.MoveTo(-7, 9)
	if p != Pt(-7, 9) {
		t.Errorf("MoveTo(-7, 9) = %+v, want %+v", p, Pt(-7, 9))
	}
	if got := Pt(1, 1).Add(Pt(2, 3)).Sub(Pt(1, 1)); got != Pt(2, 3) {
		t.Errorf("Add/Sub = %+v, want %+v", got, Pt(2, 3))
	}
	if !Pt(2, 2).In(NewRect(0, 0, 5, 5)) {
		t.Error("Pt(2, 2).In(0,0,5,5) = false, want true")
	}
}

func TestRect_Center(t *testing.T) {
	type tc struct {
		rect   Rect
		center Point
		ok     bool
	}

	tests := map[string]tc{
		"even size":     {rect: NewRect(0, 0, 10, 4), center: Pt(5, 2), ok: true},
		"offset":        {rect: NewRect(10, 20, 5, 5), center: Pt(12, 22), ok: true},
		"zero size":     {rect: NewRect(3, 3, 0, 0), center: Pt(3, 3), ok: true},
		"invalid width": {rect: NewRect(0, 0, -2, 4), ok: false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, ok := tt.rect.Center()
			if ok != tt.ok {
				t.Fatalf("Center() ok = %v, want %v", ok, tt.ok)
			}
			if ok && got != tt.center {
				t.Errorf("Center() = %+v, want %+v", got, tt.center)
			}
		})
	}
}

func TestRect_Contains(t *testing.T) {
	r := NewRect(5, 5, 10, 10)

	type tc struct {
		x, y int
		want bool
	}

	tests := map[string]tc{
		"top-left corner":     {x: 5, y: 5, want: true},
		"inside":              {x: 10, y: 10, want: true},
		"right edge excluded": {x: 15, y: 10, want: false},
		"bottom excluded":     {x: 10, y: 15, want: false},
		"left of rect":        {x: 4, y: 10, want: false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := r.Contains(tt.x, tt.y); got != tt.want {
				t.Errorf("Contains(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestRect_InsetOutset(t *testing.T) {
	r := NewRect(10, 10, 20, 10)
	e := Edges{Top: 1, Right: 2, Bottom: 3, Left: 4}

	inset := r.Inset(e)
	if want := NewRect(14, 11, 14, 6); inset != want {
		t.Errorf("Inset() = %+v, want %+v", inset, want)
	}
	if got := inset.Outset(e); got != r {
		t.Errorf("Outset(Inset()) = %+v, want %+v", got, r)
	}
}

func TestRect_IntersectUnion(t *testing.T) {
	type tc struct {
		a, b      Rect
		intersect Rect
		union     Rect
	}

	tests := map[string]tc{
		"overlapping": {
			a:         NewRect(0, 0, 20, 20),
			b:         NewRect(10, 10, 20, 20),
			intersect: NewRect(10, 10, 10, 10),
			union:     NewRect(0, 0, 30, 30),
		},
		"touching edges": {
			a:         NewRect(0, 0, 10, 10),
			b:         NewRect(10, 0, 10, 10),
			intersect: Rect{},
			union:     NewRect(0, 0, 20, 10),
		},
		"empty operand": {
			a:         NewRect(0, 0, 0, 0),
			b:         NewRect(5, 5, 5, 5),
			intersect: Rect{},
			union:     NewRect(5, 5, 5, 5),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.a.Intersect(tt.b); got != tt.intersect {
				t.Errorf("Intersect() = %+v, want %+v", got, tt.intersect)
			}
			if got := tt.a.Union(tt.b); got != tt.union {
				t.Errorf("Union() = %+v, want %+v", got, tt.union)
			}
			if got := tt.a.Intersects(tt.b); got != !tt.intersect.IsEmpty() {
				t.Errorf("Intersects() = %v, want %v", got, !tt.intersect.IsEmpty())
			}
		})
	}
}

func TestRect_Clamp(t *testing.T) {
	r := NewRect(0, 0, 10, 5)

	if x, y := r.Clamp(-3, 20); x != 0 || y != 4 {
		t.Errorf("Clamp(-3, 20) = (%d, %d), want (0, 4)", x, y)
	}
	if x, y := r.Clamp(4, 2); x != 4 || y != 2 {
		t.Errorf("Clamp(4, 2) = (%d, %d), want (4, 2)", x, y)
	}
	if x, y := NewRect(3, 3, 0, 0).Clamp(9, 9); x != 3 || y != 3 {
		t.Errorf("empty Clamp(9, 9) = (%d, %d), want (3, 3)", x, y)
	}
}

func TestRectFrom(t *testing.T) {
	r := RectFrom(Pt(2, 3), Sz(4, 5))
	if r.Origin() != Pt(2, 3) || r.Size() != Sz(4, 5) {
		t.Errorf("RectFrom() = %+v, want origin (2,3) size (4,5)", r)
	}
	if r.Right() != 6 || r.Bottom() != 8 || r.Area() != 20 {
		t.Errorf("Right/Bottom/Area = %d/%d/%d, want 6/8/20", r.Right(), r.Bottom(), r.Area())
	}
}
