// Package clearcmd implements the `todo clear` command.
package clearcmd

import (
	"github.com/spf13/cobra"

	"github.com/go-ports/todovault/cmd/todo/shared"
)

// Command implements `todo clear`.
type Command struct {
	ctx *shared.Context
	cmd *cobra.Command
}

// New creates the clear command.
func New(ctx *shared.Context) *Command {
	c := &Command{ctx: ctx}
	c.cmd = &cobra.Command{
		Use:   "clear",
		Short: "Clear all items from list",
		Args:  shared.NoArgs,
		RunE:  c.run,
	}
	return c
}

// Cmd returns the cobra command.
func (c *Command) Cmd() *cobra.Command { return c.cmd }

func (c *Command) run(cmd *cobra.Command, _ []string) error {
	svc, err := c.ctx.Open(cmd)
	if err != nil {
		return err
	}
	if err := svc.Clear(); err != nil {
		return shared.SaveError(err)
	}
	shared.Success(cmd.OutOrStdout(), "Todo db at %s has been cleared", svc.Path)
	return nil
}
