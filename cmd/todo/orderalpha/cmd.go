// Package orderalphacmd implements the `todo order-alpha` command.
package orderalphacmd

import (
	"github.com/spf13/cobra"

	"github.com/go-ports/todovault/cmd/todo/shared"
)

// Command implements `todo order-alpha`.
type Command struct {
	ctx *shared.Context
	cmd *cobra.Command

	reverse bool
	strict  bool
}

// New creates the order-alpha command.
func New(ctx *shared.Context) *Command {
	c := &Command{ctx: ctx}
	c.cmd = &cobra.Command{
		Use:   "order-alpha",
		Short: "Sort items alphabetically",
		Long: `Sort items by text. Comparison ignores case unless --strict is given.
Items that compare equal keep their relative order.`,
		Args: shared.NoArgs,
		RunE: c.run,
	}
	c.cmd.Flags().BoolVarP(&c.reverse, "reverse", "r", false, "Sort in descending order")
	c.cmd.Flags().BoolVarP(&c.strict, "strict", "s", false, "Compare case-sensitively")
	return c
}

// Cmd returns the cobra command.
func (c *Command) Cmd() *cobra.Command { return c.cmd }

func (c *Command) run(cmd *cobra.Command, _ []string) error {
	svc, err := c.ctx.Open(cmd)
	if err != nil {
		return err
	}
	if err := svc.OrderAlpha(c.reverse, c.strict); err != nil {
		return shared.SaveError(err)
	}
	shared.Success(cmd.OutOrStdout(), "List at %s has been alphabetized", svc.Path)
	return nil
}
