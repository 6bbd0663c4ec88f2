package config

import (
	"fmt"

	"github.com/grindlemire/go-tk"
)

// Build creates the container described by f, sized to f's width and
// height. The container has not been tiled yet.
func Build(f *File) (*tk.Container, error) {
	style, err := tk.ParseBorderStyle(f.Border)
	if err != nil {
		return nil, err
	}
	root := tk.NewContainer(
		tk.WithSize(f.Width, f.Height),
		tk.WithSpacing(f.Spacing),
		tk.WithBorder(tk.Border{Style: style, Title: f.Title}),
	)
	if err := addWidgets(root, f.Widgets, "widget"); err != nil {
		return nil, err
	}
	return root, nil
}

func addWidgets(c *tk.Container, ws []Widget, path string) error {
	for i := range ws {
		at := fmt.Sprintf("%s[%d]", path, i)
		ctl, err := buildWidget(&ws[i], at)
		if err != nil {
			return err
		}
		c.Add(ctl)
	}
	return nil
}

func buildWidget(w *Widget, at string) (tk.Control, error) {
	opts := w.options()
	align, err := parseAlign(w.Align)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", at, err)
	}

	switch w.Kind {
	case "label":
		l := tk.NewLabel(w.Text, opts...)
		l.SetAlign(align)
		return l, nil
	case "button":
		return tk.NewButton(w.Text, nil, opts...), nil
	case "spacer":
		return tk.NewSpacer(opts...), nil
	case "gap":
		return tk.NewGap(w.Width, opts...), nil
	case "text":
		topts := []tk.TextBlockOption{tk.WithTextAlign(align), tk.WithOptions(opts...)}
		if w.Wrap > 0 {
			topts = append(topts, tk.WithWrapWidth(w.Wrap))
		}
		return tk.NewTextBlock(w.Text, topts...), nil
	case "progress":
		p := tk.NewProgressBar(w.Value, opts...)
		p.ShowPercent(w.Percent)
		return p, nil
	case "box":
		style, err := tk.ParseBorderStyle(w.Border)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", at, err)
		}
		box := tk.NewContainer(
			tk.WithSpacing(w.Spacing),
			tk.WithBorder(tk.Border{Style: style, Title: w.Title}),
			tk.WithElementOptions(opts...),
		)
		if err := addWidgets(box, w.Children, at+".widget"); err != nil {
			return nil, err
		}
		return box, nil
	default:
		return nil, fmt.Errorf("%s: %w %q", at, ErrUnknownKind, w.Kind)
	}
}

// options converts the generic sizing fields into control options.
func (w *Widget) options() []tk.Option {
	var opts []tk.Option
	if w.Width > 0 {
		opts = append(opts, tk.WithPreferredWidth(w.Width))
	}
	if w.Height > 0 {
		opts = append(opts, tk.WithPreferredHeight(w.Height))
	}
	if w.MinWidth > 0 || w.MinHeight > 0 {
		opts = append(opts, tk.WithMinSize(w.MinWidth, w.MinHeight))
	}
	if w.MaxWidth > 0 || w.MaxHeight > 0 {
		opts = append(opts, tk.WithMaxSize(w.MaxWidth, w.MaxHeight))
	}
	if w.H != nil {
		opts = append(opts, tk.WithHConstraint(*w.H))
	}
	if w.V != nil {
		opts = append(opts, tk.WithVConstraint(*w.V))
	}
	if w.Hidden {
		opts = append(opts, tk.WithHidden())
	}
	return opts
}
