// Package togglecmd implements the `todo toggle` command.
package togglecmd

import (
	"github.com/spf13/cobra"

	"github.com/go-ports/todovault/cmd/todo/shared"
)

// Command implements `todo toggle`.
type Command struct {
	ctx *shared.Context
	cmd *cobra.Command
}

// New creates the toggle command.
func New(ctx *shared.Context) *Command {
	c := &Command{ctx: ctx}
	c.cmd = &cobra.Command{
		Use:   "toggle <index>",
		Short: "Toggle the state of an item",
		Long:  "Toggle the item at <index> (1-based). Out-of-range indices act on the nearest item.",
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
	e, err := svc.Toggle(pos)
	if err != nil {
		if shared.Reportable(err) {
			shared.Failure(out, "No item found %d", pos)
			return nil
		}
		return shared.SaveError(err)
	}
	state := "open"
	if e.Done {
		state = "done"
	}
	shared.Success(out, "Item #%d from %s has been toggled (%s)", pos, svc.Path, state)
	return nil
}
