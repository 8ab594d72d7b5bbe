// Package addcmd implements the `todo add` command.
package addcmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/go-ports/todovault/cmd/todo/shared"
)

// Command implements `todo add`.
type Command struct {
	ctx *shared.Context
	cmd *cobra.Command
}

// New creates the add command.
func New(ctx *shared.Context) *Command {
	c := &Command{ctx: ctx}
	c.cmd = &cobra.Command{
		Use:     "add <text>...",
		Short:   "Add a new item",
		Example: `  todo add "write the report"` + "\n" + `  todo add buy milk`,
		Args:    shared.MinimumNArgs(1),
		RunE:    c.run,
	}
	return c
}

// Cmd returns the cobra command.
func (c *Command) Cmd() *cobra.Command { return c.cmd }

func (c *Command) run(cmd *cobra.Command, args []string) error {
	svc, err := c.ctx.Open(cmd)
	if err != nil {
		return err
	}

	text := strings.Join(args, " ")
	out := cmd.OutOrStdout()
	if _, err := svc.Add(text); err != nil {
		if shared.Reportable(err) {
			shared.Failure(out, "Item not added: %v", err)
			return nil
		}
		return shared.SaveError(err)
	}
	shared.Success(out, "Item '%s' was added to %s", text, svc.Path)
	return nil
}
