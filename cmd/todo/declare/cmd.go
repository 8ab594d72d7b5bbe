// Package declarecmd implements the `todo declare` command.
package declarecmd

import (
	"github.com/spf13/cobra"

	"github.com/go-ports/todovault/cmd/todo/shared"
	"github.com/go-ports/todovault/internal/service"
)

// Command implements `todo declare`.
type Command struct {
	ctx *shared.Context
	cmd *cobra.Command
}

// New creates the declare command.
func New(ctx *shared.Context) *Command {
	c := &Command{ctx: ctx}
	c.cmd = &cobra.Command{
		Use:   "declare",
		Short: "Print the path of the database in use",
		Args:  shared.NoArgs,
		RunE:  c.run,
	}
	return c
}

// Cmd returns the cobra command.
func (c *Command) Cmd() *cobra.Command { return c.cmd }

func (c *Command) run(cmd *cobra.Command, _ []string) error {
	path, err := service.Declare(c.ctx.Dir)
	if err != nil {
		return err
	}
	shared.Success(cmd.OutOrStdout(), "%s", path)
	return nil
}
