// Package config reads TOML layout descriptions and builds widget trees
// from them.
//
// A layout file describes one row:
//
//	width   = 60
//	height  = 3
//	spacing = 1
//	border  = "rounded"
//	title   = "toolbar"
//
//	[[widget]]
//	kind = "button"
//	text = "OK"
//
//	[[widget]]
//	kind = "spacer"
//
//	[[widget]]
//	kind = "box"
//	border = "normal"
//
//	  [[widget.widget]]
//	  kind = "label"
//	  text = "nested"
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/grindlemire/go-tk"
)

// ErrUnknownKind is returned by Build for a widget kind it does not know.
var ErrUnknownKind = errors.New("unknown widget kind")

// Kinds lists the widget kinds Build understands.
var Kinds = []string{"label", "button", "spacer", "gap", "text", "progress", "box"}

// File is a parsed layout description.
type File struct {
	Width   int      `toml:"width"`
	Height  int      `toml:"height"`
	Spacing int      `toml:"spacing"`
	Border  string   `toml:"border,omitempty"`
	Title   string   `toml:"title,omitempty"`
	Widgets []Widget `toml:"widget"`
}

// Widget describes one child. Zero limits and sizes are unset; nil
// constraints keep the kind's defaults.
type Widget struct {
	Kind string `toml:"kind"`
	Text string `toml:"text,omitempty"`

	H *tk.SizeConstraint `toml:"h,omitempty"`
	V *tk.SizeConstraint `toml:"v,omitempty"`

	Width     int  `toml:"width,omitempty"`
	Height    int  `toml:"height,omitempty"`
	MinWidth  int  `toml:"min_width,omitempty"`
	MinHeight int  `toml:"min_height,omitempty"`
	MaxWidth  int  `toml:"max_width,omitempty"`
	MaxHeight int  `toml:"max_height,omitempty"`
	Hidden    bool `toml:"hidden,omitempty"`

	Value   float64 `toml:"value,omitempty"`   // progress
	Percent bool    `toml:"percent,omitempty"` // progress
	Wrap    int     `toml:"wrap,omitempty"`    // text
	Align   string  `toml:"align,omitempty"`   // label, text

	// box only
	Spacing  int      `toml:"spacing,omitempty"`
	Border   string   `toml:"border,omitempty"`
	Title    string   `toml:"title,omitempty"`
	Children []Widget `toml:"widget,omitempty"`
}

// Load reads and parses the layout file at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Parse parses a layout description. Keys that do not belong to the
// format are an error.
func Parse(data []byte) (*File, error) {
	var f File
	md, err := toml.Decode(string(data), &f)
	if err != nil {
		return nil, err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

// Validate checks values the TOML decoder cannot.
func (f *File) Validate() error {
	if f.Width < 0 || f.Height < 0 {
		return fmt.Errorf("negative size %dx%d", f.Width, f.Height)
	}
	if f.Spacing < 0 {
		return fmt.Errorf("negative spacing %d", f.Spacing)
	}
	if _, err := tk.ParseBorderStyle(f.Border); err != nil {
		return err
	}
	return validateWidgets(f.Widgets, "widget")
}

func validateWidgets(ws []Widget, path string) error {
	for i, w := range ws {
		at := fmt.Sprintf("%s[%d]", path, i)
		if !isKind(w.Kind) {
			return fmt.Errorf("%s: %w %q", at, ErrUnknownKind, w.Kind)
		}
		if w.Value < 0 || w.Value > 1 {
			return fmt.Errorf("%s: value %v outside [0, 1]", at, w.Value)
		}
		if _, err := parseAlign(w.Align); err != nil {
			return fmt.Errorf("%s: %w", at, err)
		}
		if _, err := tk.ParseBorderStyle(w.Border); err != nil {
			return fmt.Errorf("%s: %w", at, err)
		}
		if len(w.Children) > 0 && w.Kind != "box" {
			return fmt.Errorf("%s: only a box can have children", at)
		}
		if err := validateWidgets(w.Children, at+".widget"); err != nil {
			return err
		}
	}
	return nil
}

func isKind(kind string) bool {
	for _, k := range Kinds {
		if k == kind {
			return true
		}
	}
	return false
}

func parseAlign(s string) (tk.TextAlign, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "left":
		return tk.AlignLeft, nil
	case "center":
		return tk.AlignCenter, nil
	case "right":
		return tk.AlignRight, nil
	default:
		return tk.AlignLeft, fmt.Errorf("unknown alignment %q", s)
	}
}

// Encode renders f back to TOML.
func (f *File) Encode() ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(f); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
