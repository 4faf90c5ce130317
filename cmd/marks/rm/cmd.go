// Package rmcmd implements the `marks rm` command.
package rmcmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/go-ports/filemarks/cmd/marks/shared"
	"github.com/go-ports/filemarks/internal/service"
)

// Command implements `marks rm`.
type Command struct {
	ctx *shared.Context
	cmd *cobra.Command
}

// New creates the rm command.
func New(ctx *shared.Context) *Command {
	c := &Command{ctx: ctx}
	c.cmd = &cobra.Command{
		Use:   "rm <key>",
		Short: "Remove a bookmark",
		Args:  cobra.ExactArgs(1),
		RunE:  c.run,
	}
	return c
}

// Cmd returns the cobra command.
func (c *Command) Cmd() *cobra.Command { return c.cmd }

func (c *Command) run(cmd *cobra.Command, args []string) error {
	svc, err := service.New(c.ctx.MarksHome)
	if err != nil {
		return err
	}
	defer svc.Close()

	removed, err := svc.Remove(c.ctx.Dir(), args[0])
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if removed {
		fmt.Fprintf(out, "Removed mark %q.\n", args[0])
	} else {
		fmt.Fprintf(out, "No mark %q in this context.\n", args[0])
	}
	return nil
}
