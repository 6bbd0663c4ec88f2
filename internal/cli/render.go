package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) renderCommand() *cobra.Command {
	var size sizeFlags

	cmd := &cobra.Command{
		Use:   "render <layout.toml>",
		Short: "Tile a layout and paint it as plain text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := loadLayout(args[0], size)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), paint(root).StringTrimmed())
			return nil
		},
	}
	size.register(cmd)
	return cmd
}
