// Command tk tiles widget rows described in TOML and shows the result.
//
// Usage:
//
//	tk tile layout.toml       Print the geometry of every child
//	tk render layout.toml     Paint the row as text
//	tk demo [layout.toml]     Run the row interactively
//	tk save layout.toml       Store a layout
//	tk load <name>            Print a stored layout
//	tk list                   List stored layouts
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/go-tk/internal/cli"
)

var version = "0.1.0"

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cli.SetVersion(version)
	c := cli.New(os.Stderr, cli.LogInfo)
	if err := c.RootCommand().ExecuteContext(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			os.Exit(130)
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
