// Package rootcmd wires the root cobra.Command for the todo CLI binary.
package rootcmd

import (
	"github.com/spf13/cobra"

	addcmd "github.com/go-ports/todovault/cmd/todo/add"
	clearcmd "github.com/go-ports/todovault/cmd/todo/clear"
	configcmd "github.com/go-ports/todovault/cmd/todo/config"
	declarecmd "github.com/go-ports/todovault/cmd/todo/declare"
	deletecmd "github.com/go-ports/todovault/cmd/todo/delete"
	destroycmd "github.com/go-ports/todovault/cmd/todo/destroy"
	exportcmd "github.com/go-ports/todovault/cmd/todo/export"
	infocmd "github.com/go-ports/todovault/cmd/todo/info"
	initcmd "github.com/go-ports/todovault/cmd/todo/init"
	listcmd "github.com/go-ports/todovault/cmd/todo/list"
	mcpcmd "github.com/go-ports/todovault/cmd/todo/mcp"
	movecmd "github.com/go-ports/todovault/cmd/todo/move"
	orderalphacmd "github.com/go-ports/todovault/cmd/todo/orderalpha"
	orderdatecmd "github.com/go-ports/todovault/cmd/todo/orderdate"
	setupcmd "github.com/go-ports/todovault/cmd/todo/setup"
	"github.com/go-ports/todovault/cmd/todo/shared"
	shiftcmd "github.com/go-ports/todovault/cmd/todo/shift"
	togglecmd "github.com/go-ports/todovault/cmd/todo/toggle"
	uninstallcmd "github.com/go-ports/todovault/cmd/todo/uninstall"
	"github.com/go-ports/todovault/internal/buildinfo"
)

// New creates and returns the root cobra.Command for the todo CLI.
func New() *cobra.Command {
	ctx := &shared.Context{}

	root := &cobra.Command{
		Use:   "todo",
		Short: "todovault: a todo list scoped to your project directory",
		Long: `todo keeps a task list in a .todo.db.txt file. Commands use the nearest
.todo.db.txt found in the current directory or any of its parents; when
there is none, a new one is created in the current directory.`,
		Version:       buildinfo.String(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return ctx.Setup(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return ctx.Teardown(cmd)
		},
		RunE: func(cmd *cobra.Command, _ []string) error { return cmd.Help() },
	}

	f := root.PersistentFlags()
	f.StringVar(&ctx.Dir, "dir", "", "Directory to start the database search from (default: current directory)")
	f.BoolVar(&ctx.NoColor, "no-color", false, "Disable colored output")
	f.BoolVar(&ctx.Verbose, "verbose", false, "Enable debug logging on stderr")

	root.AddCommand(
		addcmd.New(ctx).Cmd(),
		deletecmd.New(ctx).Cmd(),
		clearcmd.New(ctx).Cmd(),
		togglecmd.New(ctx).Cmd(),
		listcmd.New(ctx).Cmd(),
		movecmd.New(ctx).Cmd(),
		shiftcmd.New(ctx).Cmd(),
		orderalphacmd.New(ctx).Cmd(),
		orderdatecmd.New(ctx).Cmd(),
		declarecmd.New(ctx).Cmd(),
		initcmd.New(ctx).Cmd(),
		infocmd.New(ctx).Cmd(),
		destroycmd.New(ctx).Cmd(),
		exportcmd.New(ctx).Cmd(),
		configcmd.New(ctx).Cmd(),
		mcpcmd.New(ctx).Cmd(),
		setupcmd.New(ctx).Cmd(),
		uninstallcmd.New(ctx).Cmd(),
	)

	return root
}
