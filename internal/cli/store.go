package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"go.etcd.io/bbolt"

	"github.com/grindlemire/go-tk/internal/config"
	"github.com/grindlemire/go-tk/pkg/db"
)

const dbFile = "layouts.db"

// dataDir returns the data directory using the XDG standard
// (~/.local/share/tk/).
func dataDir() (string, error) {
	if dataHome := os.Getenv("XDG_DATA_HOME"); dataHome != "" {
		return filepath.Join(dataHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".local", "share", appName), nil
}

func defaultDBPath() string {
	dir, err := dataDir()
	if err != nil {
		return dbFile
	}
	return filepath.Join(dir, dbFile)
}

func dbFlag(cmd *cobra.Command, path *string) {
	cmd.Flags().StringVar(path, "db", defaultDBPath(), "layout database path")
}

// withDB opens the database at path for the duration of fn.
func (c *CLI) withDB(path string, fn func(*db.DB) error) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create data directory: %w", err)
		}
	}
	d, err := db.Open(path, 0o600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return err
	}
	defer d.Close()
	c.Logger.Debug("opened layout database", "path", path)
	return fn(d)
}

func (c *CLI) saveCommand() *cobra.Command {
	var dbPath, name string

	cmd := &cobra.Command{
		Use:   "save <layout.toml>",
		Short: "Store a layout file in the database",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := config.Load(args[0])
			if err != nil {
				return err
			}
			if name == "" {
				base := filepath.Base(args[0])
				name = base[:len(base)-len(filepath.Ext(base))]
			}
			err = c.withDB(dbPath, func(d *db.DB) error {
				return config.Save(d, name, f)
			})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), StyleSuccess.Render(iconSuccess)+" saved "+StyleValue.Render(name))
			return nil
		},
	}
	dbFlag(cmd, &dbPath)
	cmd.Flags().StringVarP(&name, "name", "n", "", "layout name (default: file name without extension)")
	return cmd
}

func (c *CLI) loadCommand() *cobra.Command {
	var (
		dbPath string
		render bool
		size   sizeFlags
	)

	cmd := &cobra.Command{
		Use:   "load <name>",
		Short: "Print a stored layout as TOML, or render it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var f *config.File
			err := c.withDB(dbPath, func(d *db.DB) error {
				var err error
				f, err = config.Fetch(d, args[0])
				return err
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if render {
				size.apply(f)
				root, err := buildLayout(f)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, paint(root).StringTrimmed())
				return nil
			}
			data, err := f.Encode()
			if err != nil {
				return err
			}
			_, err = out.Write(data)
			return err
		},
	}
	dbFlag(cmd, &dbPath)
	cmd.Flags().BoolVarP(&render, "render", "r", false, "paint the layout instead of printing it")
	size.register(cmd)
	return cmd
}

func (c *CLI) listCommand() *cobra.Command {
	var dbPath string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stored layouts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var names []string
			err := c.withDB(dbPath, func(d *db.DB) error {
				var err error
				names, err = config.List(d)
				return err
			})
			if err != nil {
				return err
			}
			for _, name := range names {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
	dbFlag(cmd, &dbPath)
	return cmd
}
