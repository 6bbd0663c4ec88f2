package tk

import "testing"

func TestNewLabel(t *testing.T) {
	type tc struct {
		text     string
		opts     []Option
		wantText string
		wantPref Size
	}

	tests := map[string]tc{
		"ascii":          {text: "hello", wantText: "hello", wantPref: Sz(5, 1)},
		"wide":           {text: "日本", wantText: "日本", wantPref: Sz(4, 1)},
		"newline folded": {text: "a\nb", wantText: "a b", wantPref: Sz(3, 1)},
		"explicit size":  {text: "hello", opts: []Option{WithPreferredSize(8, 2)}, wantText: "hello", wantPref: Sz(8, 2)},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			l := NewLabel(tt.text, tt.opts...)
			if l.Text() != tt.wantText {
				t.Errorf("Text() = %q, want %q", l.Text(), tt.wantText)
			}
			if l.PreferredSize() != tt.wantPref {
				t.Errorf("PreferredSize() = %+v, want %+v", l.PreferredSize(), tt.wantPref)
			}
			if l.HConstraint() != PreferredConstraint || l.VConstraint() != FixedConstraint {
				t.Errorf("constraints = %v/%v, want preferred/fixed", l.HConstraint(), l.VConstraint())
			}
		})
	}
}

func TestLabel_SetText(t *testing.T) {
	l := NewLabel("ab")
	l.SetText("abcd")
	if l.PreferredSize() != Sz(4, 1) {
		t.Errorf("PreferredSize() = %+v, want %+v", l.PreferredSize(), Sz(4, 1))
	}
}

func TestLabel_Paint(t *testing.T) {
	type tc struct {
		text  string
		align TextAlign
		rect  Rect
		want  string
	}

	tests := map[string]tc{
		"left":      {text: "hi", rect: NewRect(0, 0, 6, 1), want: "hi    "},
		"center":    {text: "hi", align: AlignCenter, rect: NewRect(0, 0, 6, 1), want: "  hi  "},
		"right":     {text: "hi", align: AlignRight, rect: NewRect(0, 0, 6, 1), want: "    hi"},
		"truncated": {text: "hello world", rect: NewRect(1, 0, 5, 1), want: " hell…"},
		"offset":    {text: "ab", rect: NewRect(3, 0, 2, 1), want: "   ab "},
		"zero size": {text: "hi", rect: NewRect(0, 0, 0, 1), want: "      "},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			l := NewLabel(tt.text)
			l.SetAlign(tt.align)
			l.SetWidth(tt.rect.Width)
			l.SetHeight(tt.rect.Height)
			l.MoveTo(tt.rect.X, tt.rect.Y)

			buf := NewBuffer(6, 1)
			l.Paint(buf, Point{})
			if got := buf.String(); got != tt.want {
				t.Errorf("Paint() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLabel_PaintMiddleRow(t *testing.T) {
	l := NewLabel("x")
	l.SetHeight(3)
	buf := NewBuffer(2, 3)
	l.Paint(buf, Pt(1, 0))

	if got, want := buf.String(), "  \n x\n  "; got != want {
		t.Errorf("Paint() = %q, want %q", got, want)
	}
}
