// Package jumpcmd implements the `marks jump` command.
package jumpcmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/go-ports/filemarks/cmd/marks/shared"
	"github.com/go-ports/filemarks/internal/service"
)

// Command implements `marks jump`.
type Command struct {
	ctx *shared.Context
	cmd *cobra.Command
}

// New creates the jump command.
func New(ctx *shared.Context) *Command {
	c := &Command{ctx: ctx}
	c.cmd = &cobra.Command{
		Use:   "jump <key>",
		Short: "Print the path bookmarked under a key",
		Long: `Print the path bookmarked under a key for the current project context.
An unset key prints nothing and exits 0, so shell wrappers can no-op:

    f() { p=$(marks jump "$1"); [ -n "$p" ] && "$EDITOR" "$p"; }`,
		Args: cobra.ExactArgs(1),
		RunE: c.run,
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

	path, ok, err := svc.Jump(c.ctx.Dir(), args[0])
	if err != nil {
		return err
	}
	if !ok {
		// Unset key is a silent no-op.
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), path)
	return nil
}
