// Package historycmd implements the `marks history` command.
package historycmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/go-ports/filemarks/cmd/marks/shared"
	"github.com/go-ports/filemarks/internal/service"
)

// Command implements `marks history`.
type Command struct {
	ctx *shared.Context
	cmd *cobra.Command

	limit int
	all   bool
}

// New creates the history command.
func New(ctx *shared.Context) *Command {
	c := &Command{ctx: ctx}
	c.cmd = &cobra.Command{
		Use:   "history",
		Short: "Show recent jumps",
		RunE:  c.run,
	}

	f := c.cmd.Flags()
	f.IntVar(&c.limit, "limit", 10, "Maximum number of jumps to show")
	f.BoolVar(&c.all, "all", false, "Show jumps from every context, not just the current one")

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

	entries, err := svc.Recent(c.ctx.Dir(), c.limit, c.all)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(entries) == 0 {
		fmt.Fprintln(out, "No jumps recorded.")
		return nil
	}
	for _, e := range entries {
		fmt.Fprintf(out, "%s  [%s] %s\n", e.JumpedAt, e.Key, e.Path)
	}
	return nil
}
