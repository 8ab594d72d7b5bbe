// Package shiftcmd implements the `todo shift` command.
package shiftcmd

import (
	"github.com/spf13/cobra"

	"github.com/go-ports/todovault/cmd/todo/shared"
)

// Command implements `todo shift`.
type Command struct {
	ctx *shared.Context
	cmd *cobra.Command
}

// New creates the shift command.
func New(ctx *shared.Context) *Command {
	c := &Command{ctx: ctx}
	c.cmd = &cobra.Command{
		Use:   "shift <index> <shift>",
		Short: "Shift an item by a relative number of places",
		Long: `Shift the item at <index> by <shift> places, wrapping around the list.
Negative shifts move the item towards the top; pass them after "--".`,
		Example: "  todo shift 1 2\n  todo shift 3 -- -1",
		Args:    shared.IndexArgs(2),
		RunE:    c.run,
	}
	return c
}

// Cmd returns the cobra command.
func (c *Command) Cmd() *cobra.Command { return c.cmd }

func (c *Command) run(cmd *cobra.Command, args []string) error {
	n := shared.Ints(args)
	pos, shift := n[0], n[1]
	svc, err := c.ctx.Open(cmd)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if _, err := svc.Shift(pos, shift); err != nil {
		if shared.Reportable(err) {
			shared.Failure(out, "No item found %d", pos)
			return nil
		}
		return shared.SaveError(err)
	}
	shared.Success(out, "Item #%d of %s has been shifted by %d place(s)", pos, svc.Path, shift)
	return nil
}
