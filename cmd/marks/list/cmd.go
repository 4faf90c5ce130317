// Package listcmd implements the `marks list` command.
package listcmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/go-ports/filemarks/cmd/marks/shared"
	"github.com/go-ports/filemarks/internal/service"
)

// Command implements `marks list`.
type Command struct {
	ctx *shared.Context
	cmd *cobra.Command

	asJSON bool
}

// New creates the list command.
func New(ctx *shared.Context) *Command {
	c := &Command{ctx: ctx}
	c.cmd = &cobra.Command{
		Use:   "list",
		Short: "List bookmarks for the current project context",
		RunE:  c.run,
	}
	c.cmd.Flags().BoolVar(&c.asJSON, "json", false, "Print the raw key→path mapping as JSON")
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

	out := cmd.OutOrStdout()

	if c.asJSON {
		reg, err := svc.Registry(c.ctx.Dir())
		if err != nil {
			return err
		}
		b, err := json.Marshal(reg)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, string(b))
		return nil
	}

	lines, err := svc.Lines(c.ctx.Dir())
	if err != nil {
		return err
	}
	if len(lines) == 0 {
		fmt.Fprintln(out, "No marks in this context.")
		return nil
	}
	for _, line := range lines {
		fmt.Fprintln(out, line)
	}
	return nil
}
