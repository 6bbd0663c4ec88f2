package config

import (
	"errors"
	"testing"

	"github.com/grindlemire/go-tk"
)

func TestBuild_Toolbar(t *testing.T) {
	f, err := Parse([]byte(toolbar))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	root, err := Build(f)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if root.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", root.Len())
	}
	root.Update()

	want := []tk.Rect{
		tk.NewRect(0, 0, 6, 3),
		tk.NewRect(6, 0, 24, 3),
		tk.NewRect(30, 0, 10, 3),
	}
	for i, ctl := range root.Children() {
		if got := ctl.Bounds(); got != want[i] {
			t.Errorf("child %d Bounds() = %+v, want %+v", i, got, want[i])
		}
	}
}

func TestBuild_Kinds(t *testing.T) {
	f, err := Parse([]byte(`
width = 80
height = 3

[[widget]]
kind = "label"
text = "name"
align = "right"

[[widget]]
kind = "gap"
width = 2

[[widget]]
kind = "text"
text = "some wrapped words"
wrap = 8

[[widget]]
kind = "progress"
value = 0.25
percent = true

[[widget]]
kind = "button"
text = "Go"
hidden = true
`))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	root, err := Build(f)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	kids := root.Children()
	if len(kids) != 5 {
		t.Fatalf("len(Children()) = %d, want 5", len(kids))
	}

	if l, ok := kids[0].(*tk.Label); !ok || l.Align() != tk.AlignRight || l.Text() != "name" {
		t.Errorf("child 0 = %#v, want right-aligned label %q", kids[0], "name")
	}
	if g, ok := kids[1].(*tk.Spacer); !ok || g.PreferredSize().Width != 2 || g.HConstraint() != tk.FixedConstraint {
		t.Errorf("child 1 = %#v, want fixed gap of 2", kids[1])
	}
	if _, ok := kids[2].(*tk.TextBlock); !ok {
		t.Errorf("child 2 = %T, want *tk.TextBlock", kids[2])
	}
	if p, ok := kids[3].(*tk.ProgressBar); !ok || p.Value() != 0.25 {
		t.Errorf("child 3 = %#v, want progress at 0.25", kids[3])
	}
	if b, ok := kids[4].(*tk.Button); !ok || b.Visible() {
		t.Errorf("child 4 = %#v, want hidden button", kids[4])
	}
}

func TestBuild_SizingOptions(t *testing.T) {
	f, err := Parse([]byte(`
[[widget]]
kind = "label"
text = "x"
width = 7
min_width = 3
max_width = 9
h = "fixed"
v = "expanding"
`))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	root, err := Build(f)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	l := root.Children()[0].(*tk.Label)

	if got := l.PreferredSize().Width; got != 7 {
		t.Errorf("PreferredSize().Width = %d, want 7", got)
	}
	if l.MinWidth() != 3 || l.MaxWidth() != 9 {
		t.Errorf("MinWidth/MaxWidth = %d/%d, want 3/9", l.MinWidth(), l.MaxWidth())
	}
	if l.HConstraint() != tk.FixedConstraint || l.VConstraint() != tk.ExpandingConstraint {
		t.Errorf("constraints = %v/%v, want fixed/expanding", l.HConstraint(), l.VConstraint())
	}
}

func TestBuild_NestedBox(t *testing.T) {
	f, err := Parse([]byte(`
width = 20
height = 3

[[widget]]
kind = "box"
border = "normal"
title = "in"

  [[widget.widget]]
  kind = "label"
  text = "hi"
`))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	root, err := Build(f)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	box, ok := root.Children()[0].(*tk.Container)
	if !ok {
		t.Fatalf("child 0 = %T, want *tk.Container", root.Children()[0])
	}
	if box.Border().Style != tk.BorderNormal || box.Border().Title != "in" {
		t.Errorf("Border() = %+v, want normal titled %q", box.Border(), "in")
	}
	if box.Len() != 1 {
		t.Fatalf("box Len() = %d, want 1", box.Len())
	}

	root.Update()
	if got := box.Bounds().Width; got != 20 {
		t.Errorf("box width = %d, want 20", got)
	}
	if got := box.Children()[0].Bounds().Width; got != 18 {
		t.Errorf("nested label width = %d, want 18", got)
	}
}

func TestBuild_UnknownKind(t *testing.T) {
	f := &File{Widgets: []Widget{{Kind: "knob"}}}
	if _, err := Build(f); !errors.Is(err, ErrUnknownKind) {
		t.Errorf("Build() error = %v, want %v", err, ErrUnknownKind)
	}
}
