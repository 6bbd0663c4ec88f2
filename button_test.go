package tk

import (
	"strings"
	"testing"
)

func TestNewButton(t *testing.T) {
	b := NewButton("Save", nil)

	if b.PreferredSize() != Sz(8, 3) {
		t.Errorf("PreferredSize() = %+v, want %+v", b.PreferredSize(), Sz(8, 3))
	}
	if b.HConstraint() != MinimumConstraint || b.VConstraint() != FixedConstraint {
		t.Errorf("constraints = %v/%v, want minimum/fixed", b.HConstraint(), b.VConstraint())
	}

	b.SetText("Save all")
	if b.PreferredSize() != Sz(12, 3) {
		t.Errorf("PreferredSize() after SetText = %+v, want %+v", b.PreferredSize(), Sz(12, 3))
	}
}

func TestButton_Click(t *testing.T) {
	type tc struct {
		act       func(b *Button)
		wantCalls int
		pressed   bool
	}

	tests := map[string]tc{
		"click":             {act: func(b *Button) { b.Click() }, wantCalls: 1},
		"press only":        {act: func(b *Button) { b.Press() }, wantCalls: 0, pressed: true},
		"release unpressed": {act: func(b *Button) { b.Release() }, wantCalls: 0},
		"press release":     {act: func(b *Button) { b.Press(); b.Release(); b.Release() }, wantCalls: 1},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			calls := 0
			b := NewButton("Go", func() { calls++ })
			tt.act(b)
			if calls != tt.wantCalls {
				t.Errorf("onClick calls = %d, want %d", calls, tt.wantCalls)
			}
			if b.Pressed() != tt.pressed {
				t.Errorf("Pressed() = %v, want %v", b.Pressed(), tt.pressed)
			}
		})
	}
}

func TestButton_ClickWithoutHandler(t *testing.T) {
	b := NewButton("Go", nil)
	b.Click()

	calls := 0
	b.OnClick(func() { calls++ })
	b.Click()
	if calls != 1 {
		t.Errorf("onClick calls = %d, want 1", calls)
	}
}

func TestButton_Paint(t *testing.T) {
	b := NewButton("Go", nil)
	b.SetWidth(8)

	buf := NewBuffer(8, 3)
	b.Paint(buf, Point{})
	want := strings.Join([]string{
		"╭──────╮",
		"│  Go  │",
		"╰──────╯",
	}, "\n")
	if got := buf.String(); got != want {
		t.Errorf("Paint() =\n%s\nwant\n%s", got, want)
	}

	b.Press()
	buf.Clear()
	b.Paint(buf, Point{})
	if got := buf.Cell(0, 0).Rune; got != '┏' {
		t.Errorf("pressed corner = %q, want %q", got, '┏')
	}
}
