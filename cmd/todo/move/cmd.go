// Package movecmd implements the `todo move` command.
package movecmd

import (
	"github.com/spf13/cobra"

	"github.com/go-ports/todovault/cmd/todo/shared"
)

// Command implements `todo move`.
type Command struct {
	ctx *shared.Context
	cmd *cobra.Command
}

// New creates the move command.
func New(ctx *shared.Context) *Command {
	c := &Command{ctx: ctx}
	c.cmd = &cobra.Command{
		Use:   "move <index> <to>",
		Short: "Move an item to a new position",
		Long: `Move the item at <index> to position <to> (both 1-based).
Positions outside the list are clamped to the first or last item.`,
		Example: "  todo move 5 1\n  todo move 1 99",
		Args:    shared.IndexArgs(2),
		RunE:    c.run,
	}
	return c
}

// Cmd returns the cobra command.
func (c *Command) Cmd() *cobra.Command { return c.cmd }

func (c *Command) run(cmd *cobra.Command, args []string) error {
	n := shared.Ints(args)
	pos, to := n[0], n[1]
	svc, err := c.ctx.Open(cmd)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	got, err := svc.Move(pos, to)
	if err != nil {
		if shared.Reportable(err) {
			shared.Failure(out, "No item found %d", pos)
			return nil
		}
		return shared.SaveError(err)
	}
	shared.Success(out, "Item #%d of %s has been moved to idx %d", pos, svc.Path, got)
	return nil
}
