// Package setcmd implements the `marks set` command.
package setcmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/go-ports/filemarks/cmd/marks/shared"
	"github.com/go-ports/filemarks/internal/menu"
	"github.com/go-ports/filemarks/internal/registry"
	"github.com/go-ports/filemarks/internal/service"
)

// Command implements `marks set`.
type Command struct {
	ctx *shared.Context
	cmd *cobra.Command
}

// New creates the set command.
func New(ctx *shared.Context) *Command {
	c := &Command{ctx: ctx}
	c.cmd = &cobra.Command{
		Use:   "set <key> <path>",
		Short: "Bookmark a file under a single-character key",
		Args:  cobra.ExactArgs(2),
		RunE:  c.run,
	}
	return c
}

// Cmd returns the cobra command.
func (c *Command) Cmd() *cobra.Command { return c.cmd }

func (c *Command) run(cmd *cobra.Command, args []string) error {
	key := args[0]
	if !registry.ValidKey(key) {
		return fmt.Errorf("invalid key %q: must be one lowercase letter or digit", key)
	}

	path := menu.ExpandPath(args[1])
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		// Nothing addressable to record; a no-op rather than an error.
		fmt.Fprintf(cmd.OutOrStdout(), "Not a regular file: %s; nothing recorded.\n", path)
		return nil
	}

	svc, err := service.New(c.ctx.MarksHome)
	if err != nil {
		return err
	}
	defer svc.Close()

	if err := svc.Set(c.ctx.Dir(), key, path); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "[%s] = %s\n", key, path)
	return nil
}
