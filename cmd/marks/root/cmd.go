// Package rootcmd wires the root cobra.Command for the marks CLI binary.
package rootcmd

import (
	"github.com/spf13/cobra"

	applycmd "github.com/go-ports/filemarks/cmd/marks/apply"
	configcmd "github.com/go-ports/filemarks/cmd/marks/config"
	contextscmd "github.com/go-ports/filemarks/cmd/marks/contexts"
	editcmd "github.com/go-ports/filemarks/cmd/marks/edit"
	historycmd "github.com/go-ports/filemarks/cmd/marks/history"
	initcmd "github.com/go-ports/filemarks/cmd/marks/init"
	jumpcmd "github.com/go-ports/filemarks/cmd/marks/jump"
	listcmd "github.com/go-ports/filemarks/cmd/marks/list"
	mcpcmd "github.com/go-ports/filemarks/cmd/marks/mcp"
	rmcmd "github.com/go-ports/filemarks/cmd/marks/rm"
	setcmd "github.com/go-ports/filemarks/cmd/marks/set"
	"github.com/go-ports/filemarks/cmd/marks/shared"
	"github.com/go-ports/filemarks/internal/buildinfo"
)

// New creates and returns the root cobra.Command for the marks CLI.
func New() *cobra.Command {
	ctx := &shared.Context{}

	root := &cobra.Command{
		Use:           "marks",
		Short:         "filemarks — per-project file bookmarks",
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          func(cmd *cobra.Command, _ []string) error { return cmd.Help() },
	}

	root.PersistentFlags().StringVar(
		&ctx.MarksHome, "marks-home", "",
		"Override marks home directory (default: $MARKS_HOME env → persisted config → ~/.filemarks)",
	)
	root.PersistentFlags().StringVar(
		&ctx.WorkDir, "dir", "",
		"Resolve the project context as if run from this directory (default: cwd)",
	)

	root.AddCommand(
		initcmd.New(ctx).Cmd(),
		setcmd.New(ctx).Cmd(),
		jumpcmd.New(ctx).Cmd(),
		listcmd.New(ctx).Cmd(),
		editcmd.New(ctx).Cmd(),
		applycmd.New(ctx).Cmd(),
		rmcmd.New(ctx).Cmd(),
		contextscmd.New(ctx).Cmd(),
		historycmd.New(ctx).Cmd(),
		configcmd.New(ctx).Cmd(),
		mcpcmd.New(ctx).Cmd(),
	)

	return root
}
