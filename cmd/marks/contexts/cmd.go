// Package contextscmd implements the `marks contexts` command.
package contextscmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/go-ports/filemarks/cmd/marks/shared"
	"github.com/go-ports/filemarks/internal/service"
)

// Command implements `marks contexts`.
type Command struct {
	ctx *shared.Context
	cmd *cobra.Command
}

// New creates the contexts command.
func New(ctx *shared.Context) *Command {
	c := &Command{ctx: ctx}
	c.cmd = &cobra.Command{
		Use:   "contexts",
		Short: "List contexts that have stored bookmarks",
		RunE:  c.run,
	}
	return c
}

// Cmd returns the cobra command.
func (c *Command) Cmd() *cobra.Command { return c.cmd }

func (c *Command) run(cmd *cobra.Command, _ []string) error {
	svc, err := service.New(c.ctx.MarksHome)
	if err != nil {
		return err
	}
	defer svc.Close()

	ids, err := svc.Contexts()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(ids) == 0 {
		fmt.Fprintln(out, "No contexts found.")
		return nil
	}
	for _, id := range ids {
		fmt.Fprintln(out, id)
	}
	return nil
}
