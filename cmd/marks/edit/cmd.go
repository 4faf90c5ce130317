// Package editcmd implements the `marks edit` command, the interactive
// bulk-edit surface for the bookmark set.
package editcmd

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/go-ports/filemarks/cmd/marks/shared"
	"github.com/go-ports/filemarks/internal/menu"
	"github.com/go-ports/filemarks/internal/service"
)

// Command implements `marks edit`.
type Command struct {
	ctx *shared.Context
	cmd *cobra.Command
}

// New creates the edit command.
func New(ctx *shared.Context) *Command {
	c := &Command{ctx: ctx}
	c.cmd = &cobra.Command{
		Use:   "edit",
		Short: "Bulk-edit the bookmark set in your editor",
		Long: `Open the current context's bookmarks as "[key] = path" lines in your
editor (config editor → $VISUAL → $EDITOR → vi). On save, every line is
validated: the key must be one lowercase letter or digit and the path must
point at an existing file. If any line fails, nothing is changed, failed
lines are marked, and the editor reopens for correction. Empty the buffer
to abort.`,
		RunE: c.run,
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

	lines, err := svc.Lines(c.ctx.Dir())
	if err != nil {
		return err
	}

	tmpDir, err := os.MkdirTemp("", "filemarks-edit-")
	if err != nil {
		return fmt.Errorf("edit: %w", err)
	}
	defer os.RemoveAll(tmpDir)
	bufPath := filepath.Join(tmpDir, "marks")

	if err := writeBuffer(bufPath, lines); err != nil {
		return err
	}

	editor := editorCommand(svc.Config.Editor)
	out := cmd.OutOrStdout()

	for {
		if err := runEditor(editor, bufPath); err != nil {
			return fmt.Errorf("edit: editor: %w", err)
		}

		edited, err := readBuffer(bufPath)
		if err != nil {
			return err
		}
		if len(edited) == 0 {
			fmt.Fprintln(out, "Edit aborted; marks unchanged.")
			return nil
		}

		result, err := svc.Reconcile(c.ctx.Dir(), edited)
		if err != nil {
			return err
		}
		if result.Committed {
			fmt.Fprintf(out, "Marks updated (%d entries).\n", result.Count)
			return nil
		}

		// Rejected: mark the failed lines and reopen for correction.
		fmt.Fprintf(cmd.ErrOrStderr(),
			"Invalid lines %v: every line needs a [0-9a-z] key and an existing file. Fix or remove them; empty the buffer to abort.\n",
			result.FailedLines,
		)
		if err := writeBuffer(bufPath, menu.Annotate(edited, result.FailedLines)); err != nil {
			return err
		}
	}
}

// editorCommand picks the editor: per-home config → $VISUAL → $EDITOR → vi.
func editorCommand(configured string) []string {
	for _, candidate := range []string{configured, os.Getenv("VISUAL"), os.Getenv("EDITOR")} {
		if fields := strings.Fields(candidate); len(fields) > 0 {
			return fields
		}
	}
	return []string{"vi"}
}

func runEditor(editor []string, path string) error {
	args := append(editor[1:], path) //nolint:gocritic // editor[1:] is never reused
	ed := exec.Command(editor[0], args...)
	ed.Stdin = os.Stdin
	ed.Stdout = os.Stdout
	ed.Stderr = os.Stderr
	return ed.Run()
}

func writeBuffer(path string, lines []string) error {
	content := strings.Join(lines, "\n")
	if content != "" {
		content += "\n"
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		return fmt.Errorf("edit: write buffer: %w", err)
	}
	return nil
}

// readBuffer returns the buffer's non-blank lines with any rejection
// markers from a previous round stripped.
func readBuffer(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("edit: read buffer: %w", err)
	}
	var lines []string
	for _, line := range menu.StripMarkers(strings.Split(string(data), "\n")) {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	return lines, nil
}
