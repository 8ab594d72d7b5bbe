// Package initcmd implements the `todo init` command.
package initcmd

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/go-ports/todovault/cmd/todo/shared"
	"github.com/go-ports/todovault/internal/db"
	"github.com/go-ports/todovault/internal/service"
)

// Command implements `todo init`.
type Command struct {
	ctx *shared.Context
	cmd *cobra.Command
}

// New creates the init command.
func New(ctx *shared.Context) *Command {
	c := &Command{ctx: ctx}
	c.cmd = &cobra.Command{
		Use:   "init",
		Short: "Create an empty todo list in the current directory",
		Long: `Create an empty database directly in the current directory (or --dir).
A database in a parent directory does not prevent this; it is shadowed instead.`,
		Args: shared.NoArgs,
		RunE: c.run,
	}
	return c
}

// Cmd returns the cobra command.
func (c *Command) Cmd() *cobra.Command { return c.cmd }

func (c *Command) run(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	path, err := service.Init(c.ctx.Dir)
	if errors.Is(err, db.ErrExists) {
		shared.Failure(out, "A todo list already exists at %s", path)
		return nil
	}
	if err != nil {
		return err
	}
	shared.Success(out, "New todo list initialized at %s, run add command to get started", path)
	return nil
}
