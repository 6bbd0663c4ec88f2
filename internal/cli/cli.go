// Package cli implements the tk command-line interface.
//
// Commands load a TOML layout (see internal/config), tile it and show the
// result:
//   - tile: print the geometry each child was given
//   - render: paint the layout as plain text
//   - demo: run the layout interactively, re-tiling on resize
//   - save, load, list: keep layouts in a local database
//
// All commands accept --verbose (-v) for debug logging on stderr, which
// includes one line per layout pass.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/grindlemire/go-tk/internal/debug"
)

const appName = "tk"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

var version = "dev"

// SetVersion sets the version shown by --version.
func SetVersion(v string) {
	version = v
}

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a CLI whose logger writes to w. The logger is also installed
// as the toolkit's debug logger.
func New(w io.Writer, level log.Level) *CLI {
	c := &CLI{Logger: debug.New(w, level)}
	debug.SetLogger(c.Logger)
	return c
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands
// registered.
func (c *CLI) RootCommand() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:           appName,
		Short:         "tk tiles widget rows and renders them as text",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				c.SetLogLevel(LogDebug)
			}
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(c.tileCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.demoCommand())
	root.AddCommand(c.saveCommand())
	root.AddCommand(c.loadCommand())
	root.AddCommand(c.listCommand())

	return root
}
