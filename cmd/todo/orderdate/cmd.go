// Package orderdatecmd implements the `todo order-date` command.
package orderdatecmd

import (
	"github.com/spf13/cobra"

	"github.com/go-ports/todovault/cmd/todo/shared"
)

// Command implements `todo order-date`.
type Command struct {
	ctx *shared.Context
	cmd *cobra.Command

	reverse bool
}

// New creates the order-date command.
func New(ctx *shared.Context) *Command {
	c := &Command{ctx: ctx}
	c.cmd = &cobra.Command{
		Use:   "order-date",
		Short: "Sort items by creation time, oldest first",
		Args:  shared.NoArgs,
		RunE:  c.run,
	}
	c.cmd.Flags().BoolVarP(&c.reverse, "reverse", "r", false, "Newest first")
	return c
}

// Cmd returns the cobra command.
func (c *Command) Cmd() *cobra.Command { return c.cmd }

func (c *Command) run(cmd *cobra.Command, _ []string) error {
	svc, err := c.ctx.Open(cmd)
	if err != nil {
		return err
	}
	if err := svc.OrderDate(c.reverse); err != nil {
		return shared.SaveError(err)
	}
	shared.Success(cmd.OutOrStdout(), "List at %s has been ordered by date", svc.Path)
	return nil
}
