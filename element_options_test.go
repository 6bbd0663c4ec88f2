package tk

import "testing"

func TestOptions_OverrideWidgetDefaults(t *testing.T) {
	type tc struct {
		ctl      Control
		wantPref Size
		wantH    SizeConstraint
		wantV    SizeConstraint
	}

	tests := map[string]tc{
		"label width": {
			ctl:      NewLabel("hello", WithPreferredWidth(12)),
			wantPref: Sz(12, 1),
			wantH:    PreferredConstraint,
			wantV:    FixedConstraint,
		},
		"button height": {
			ctl:      NewButton("OK", nil, WithPreferredHeight(1)),
			wantPref: Sz(6, 1),
			wantH:    MinimumConstraint,
			wantV:    FixedConstraint,
		},
		"spacer constraints": {
			ctl:      NewSpacer(WithConstraints(MinimumExpandingConstraint, FixedConstraint)),
			wantPref: Sz(0, 0),
			wantH:    MinimumExpandingConstraint,
			wantV:    FixedConstraint,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.ctl.PreferredSize(); got != tt.wantPref {
				t.Errorf("PreferredSize() = %+v, want %+v", got, tt.wantPref)
			}
			if got := tt.ctl.HConstraint(); got != tt.wantH {
				t.Errorf("HConstraint() = %v, want %v", got, tt.wantH)
			}
			if got := tt.ctl.VConstraint(); got != tt.wantV {
				t.Errorf("VConstraint() = %v, want %v", got, tt.wantV)
			}
		})
	}
}

func TestOptions_Limits(t *testing.T) {
	e := New(WithMinWidth(3), WithMaxSize(10, 4))
	if e.MinWidth() != 3 || e.MinHeight() != 0 {
		t.Errorf("MinWidth/MinHeight = %d/%d, want 3/0", e.MinWidth(), e.MinHeight())
	}
	if e.MaxWidth() != 10 || e.MaxHeight() != 4 {
		t.Errorf("MaxWidth/MaxHeight = %d/%d, want 10/4", e.MaxWidth(), e.MaxHeight())
	}

	// Later options win.
	e = New(WithMaxWidth(10), WithMaxSize(0, 2))
	if e.MaxWidth() != 0 || e.MaxHeight() != 2 {
		t.Errorf("MaxWidth/MaxHeight = %d/%d, want 0/2", e.MaxWidth(), e.MaxHeight())
	}
}
