// Package applycmd implements the `marks apply` command, the
// non-interactive submit path for an edited bookmark buffer.
package applycmd

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/go-ports/filemarks/cmd/marks/shared"
	"github.com/go-ports/filemarks/internal/menu"
	"github.com/go-ports/filemarks/internal/service"
)

// Command implements `marks apply`.
type Command struct {
	ctx *shared.Context
	cmd *cobra.Command
}

// New creates the apply command.
func New(ctx *shared.Context) *Command {
	c := &Command{ctx: ctx}
	c.cmd = &cobra.Command{
		Use:   "apply",
		Short: "Replace the bookmark set from \"[key] = path\" lines on stdin",
		Long: `Replace the whole bookmark set for the current project context from
"[key] = path" lines read on stdin. Every line must carry a valid key and
an existing file, or nothing is changed and the rejected lines are
reported. When a key appears on several lines the last one wins.`,
		RunE: c.run,
	}
	return c
}

// Cmd returns the cobra command.
func (c *Command) Cmd() *cobra.Command { return c.cmd }

func (c *Command) run(cmd *cobra.Command, _ []string) error {
	var lines []string
	scanner := bufio.NewScanner(cmd.InOrStdin())
	for scanner.Scan() {
		if line := strings.TrimSuffix(scanner.Text(), menu.InvalidMarker); strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("apply: read stdin: %w", err)
	}

	svc, err := service.New(c.ctx.MarksHome)
	if err != nil {
		return err
	}
	defer svc.Close()

	result, err := svc.Reconcile(c.ctx.Dir(), lines)
	if err != nil {
		return err
	}
	if !result.Committed {
		errOut := cmd.ErrOrStderr()
		for _, line := range menu.Annotate(lines, result.FailedLines) {
			fmt.Fprintln(errOut, line)
		}
		return fmt.Errorf("apply: invalid lines %v: every line needs a [0-9a-z] key and an existing file; nothing was changed", result.FailedLines)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Marks updated (%d entries).\n", result.Count)
	return nil
}
