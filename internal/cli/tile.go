package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/grindlemire/go-tk"
)

var geometryHeaders = []string{"#", "kind", "text", "x", "y", "width", "height", "h", "v"}

func (c *CLI) tileCommand() *cobra.Command {
	var size sizeFlags

	cmd := &cobra.Command{
		Use:   "tile <layout.toml>",
		Short: "Tile a layout and print the geometry of every child",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := loadLayout(args[0], size)
			if err != nil {
				return err
			}
			b := root.Bounds()
			c.Logger.Debug("tiled layout", "file", args[0], "width", b.Width, "height", b.Height)

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, StyleTitle.Render(args[0])+" "+
				StyleDim.Render(fmt.Sprintf("%dx%d", b.Width, b.Height)))
			fmt.Fprintln(out, geometryTable(root))
			return nil
		},
	}
	size.register(cmd)
	return cmd
}

// geometryRows lists every control under root depth first. Nested
// children are numbered "2.1", "2.2" and so on; hidden controls have no
// geometry.
func geometryRows(root *tk.Container) [][]string {
	var rows [][]string
	var walk func(c *tk.Container, prefix string)
	walk = func(c *tk.Container, prefix string) {
		for i, ctl := range c.Children() {
			id := prefix + strconv.Itoa(i+1)
			row := []string{id, kindOf(ctl), textOf(ctl)}
			if ctl.Visible() {
				b := ctl.Bounds()
				row = append(row, strconv.Itoa(b.X), strconv.Itoa(b.Y), strconv.Itoa(b.Width), strconv.Itoa(b.Height))
			} else {
				row = append(row, "-", "-", "-", "-")
			}
			row = append(row, ctl.HConstraint().String(), ctl.VConstraint().String())
			rows = append(rows, row)

			if sub, ok := ctl.(*tk.Container); ok {
				walk(sub, id+".")
			}
		}
	}
	walk(root, "")
	return rows
}

func geometryTable(root *tk.Container) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styleBorder).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styleHeader
			}
			return styleCell
		}).
		Headers(geometryHeaders...).
		Rows(geometryRows(root)...)
	return t.Render()
}
