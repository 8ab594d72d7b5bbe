// Package deletecmd implements the `todo delete` command.
package deletecmd

import (
	"github.com/spf13/cobra"

	"github.com/go-ports/todovault/cmd/todo/shared"
)

// Command implements `todo delete`.
type Command struct {
	ctx *shared.Context
	cmd *cobra.Command
}

// New creates the delete command.
func New(ctx *shared.Context) *Command {
	c := &Command{ctx: ctx}
	c.cmd = &cobra.Command{
		Use:   "delete <index>",
		Short: "Delete an item",
		Long:  "Delete the item at <index> (1-based). The index must address an existing item.",
		Args:  shared.IndexArgs(1),
		RunE:  c.run,
	}
	return c
}

// Cmd returns the cobra command.
func (c *Command) Cmd() *cobra.Command { return c.cmd }

func (c *Command) run(cmd *cobra.Command, args []string) error {
	pos := shared.Ints(args)[0]
	svc, err := c.ctx.Open(cmd)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if _, err := svc.Delete(pos); err != nil {
		if shared.Reportable(err) {
			shared.Failure(out, "No item found %d", pos)
			return nil
		}
		return shared.SaveError(err)
	}
	shared.Success(out, "Item #%d was removed from %s", pos, svc.Path)
	return nil
}
