// Package destroycmd implements the `todo destroy` command.
package destroycmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/go-ports/todovault/cmd/todo/shared"
	"github.com/go-ports/todovault/internal/service"
)

// Command implements `todo destroy`.
type Command struct {
	ctx *shared.Context
	cmd *cobra.Command
}

// New creates the destroy command.
func New(ctx *shared.Context) *Command {
	c := &Command{ctx: ctx}
	c.cmd = &cobra.Command{
		Use:   "destroy",
		Short: "Delete the database in use",
		Args:  shared.NoArgs,
		RunE:  c.run,
	}
	return c
}

// Cmd returns the cobra command.
func (c *Command) Cmd() *cobra.Command { return c.cmd }

func (c *Command) run(cmd *cobra.Command, _ []string) error {
	path, err := service.Destroy(c.ctx.Dir)
	if err != nil {
		return fmt.Errorf("Error destroying db: %w", err)
	}
	shared.Success(cmd.OutOrStdout(), "Todo db at %s has been destroyed", path)
	return nil
}
