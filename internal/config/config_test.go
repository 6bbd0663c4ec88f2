package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/grindlemire/go-tk"
)

const toolbar = `
width   = 40
height  = 3
spacing = 0

[[widget]]
kind = "button"
text = "OK"

[[widget]]
kind = "spacer"

[[widget]]
kind = "button"
text = "Cancel"
`

func TestParse(t *testing.T) {
	f, err := Parse([]byte(toolbar))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if f.Width != 40 || f.Height != 3 {
		t.Errorf("size = %dx%d, want 40x3", f.Width, f.Height)
	}
	if len(f.Widgets) != 3 {
		t.Fatalf("len(Widgets) = %d, want 3", len(f.Widgets))
	}
	if f.Widgets[2].Text != "Cancel" {
		t.Errorf("Widgets[2].Text = %q, want %q", f.Widgets[2].Text, "Cancel")
	}
}

func TestParse_Constraints(t *testing.T) {
	f, err := Parse([]byte(`
[[widget]]
kind = "label"
h = "expanding"
v = "grow|shrink"
`))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	w := f.Widgets[0]
	if w.H == nil || *w.H != tk.ExpandingConstraint {
		t.Errorf("H = %v, want expanding", w.H)
	}
	if w.V == nil || *w.V != tk.PreferredConstraint {
		t.Errorf("V = %v, want preferred", w.V)
	}
}

func TestParse_Errors(t *testing.T) {
	type tc struct {
		doc     string
		wantErr string
		is      error
	}

	tests := map[string]tc{
		"syntax":            {doc: "width = ", wantErr: "toml"},
		"unknown key":       {doc: "colour = 1", wantErr: "unknown keys: colour"},
		"unknown kind":      {doc: "[[widget]]\nkind = \"slider\"", wantErr: "slider", is: ErrUnknownKind},
		"bad constraint":    {doc: "[[widget]]\nkind = \"label\"\nh = \"stretchy\"", wantErr: "stretchy"},
		"negative size":     {doc: "width = -1", wantErr: "negative size"},
		"negative spacing":  {doc: "spacing = -2", wantErr: "negative spacing"},
		"bad border":        {doc: "border = \"dotted\"", wantErr: "dotted"},
		"bad align":         {doc: "[[widget]]\nkind = \"label\"\nalign = \"justify\"", wantErr: "justify"},
		"bad value":         {doc: "[[widget]]\nkind = \"progress\"\nvalue = 1.5", wantErr: "outside"},
		"children on label": {doc: "[[widget]]\nkind = \"label\"\n[[widget.widget]]\nkind = \"label\"", wantErr: "only a box"},
		"nested kind":       {doc: "[[widget]]\nkind = \"box\"\n[[widget.widget]]\nkind = \"dial\"", wantErr: "widget[0].widget[0]", is: ErrUnknownKind},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			if err == nil {
				t.Fatal("Parse() error = nil, want error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Parse() error = %q, want it to contain %q", err, tt.wantErr)
			}
			if tt.is != nil && !errors.Is(err, tt.is) {
				t.Errorf("Parse() error = %v, want errors.Is %v", err, tt.is)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "toolbar.toml")
	if err := os.WriteFile(path, []byte(toolbar), 0o644); err != nil {
		t.Fatal(err)
	}

	f, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(f.Widgets) != 3 {
		t.Errorf("len(Widgets) = %d, want 3", len(f.Widgets))
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load(missing) error = %v, want os.ErrNotExist", err)
	}
}

func TestEncode_RoundTrip(t *testing.T) {
	f, err := Parse([]byte(toolbar + "\n[[widget]]\nkind = \"label\"\nh = \"minimum-expanding\"\n"))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	data, err := f.Encode()
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	back, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse(Encode()) error = %v\n%s", err, data)
	}
	if len(back.Widgets) != 4 || back.Width != 40 {
		t.Fatalf("round trip = %+v", back)
	}
	if h := back.Widgets[3].H; h == nil || *h != tk.MinimumExpandingConstraint {
		t.Errorf("Widgets[3].H = %v, want minimum-expanding", h)
	}
}
