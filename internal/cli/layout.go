package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/grindlemire/go-tk"
	"github.com/grindlemire/go-tk/internal/config"
)

// sizeFlags override the size a layout file asks for.
type sizeFlags struct {
	width  int
	height int
}

func (s *sizeFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&s.width, "width", "W", 0, "override the layout width")
	cmd.Flags().IntVarP(&s.height, "height", "H", 0, "override the layout height")
}

func (s sizeFlags) apply(f *config.File) {
	if s.width > 0 {
		f.Width = s.width
	}
	if s.height > 0 {
		f.Height = s.height
	}
}

// buildLayout builds f and tiles it. A zero width or height falls back to
// the row's preferred size.
func buildLayout(f *config.File) (*tk.Container, error) {
	root, err := config.Build(f)
	if err != nil {
		return nil, err
	}
	size := root.Bounds().Size()
	pref := root.PreferredSize()
	if size.Width == 0 {
		size.Width = pref.Width
	}
	if size.Height == 0 {
		size.Height = pref.Height
	}
	root.Resize(size.Width, size.Height)
	root.Update()
	return root, nil
}

// loadLayout reads, resizes and tiles the layout file at path.
func loadLayout(path string, size sizeFlags) (*tk.Container, error) {
	f, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	size.apply(f)
	return buildLayout(f)
}

// paint renders root into a fresh buffer of its size.
func paint(root *tk.Container) *tk.Buffer {
	b := root.Bounds()
	buf := tk.NewBuffer(b.Width, b.Height)
	root.Paint(buf, tk.Point{})
	return buf
}

func kindOf(ctl tk.Control) string {
	switch c := ctl.(type) {
	case *tk.Label:
		return "label"
	case *tk.Button:
		return "button"
	case *tk.Spacer:
		if c.HConstraint() == tk.FixedConstraint {
			return "gap"
		}
		return "spacer"
	case *tk.TextBlock:
		return "text"
	case *tk.ProgressBar:
		return "progress"
	case *tk.Container:
		return "box"
	default:
		return fmt.Sprintf("%T", ctl)
	}
}

func textOf(ctl tk.Control) string {
	switch c := ctl.(type) {
	case *tk.Label:
		return c.Text()
	case *tk.Button:
		return c.Text()
	case *tk.TextBlock:
		return c.Text()
	case *tk.ProgressBar:
		return strconv.FormatFloat(c.Value(), 'f', 2, 64)
	case *tk.Container:
		return c.Border().Title
	default:
		return ""
	}
}
