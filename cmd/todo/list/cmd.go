// Package listcmd implements the `todo list` command.
package listcmd

import (
	"github.com/spf13/cobra"

	"github.com/go-ports/todovault/cmd/todo/shared"
)

// Command implements `todo list`.
type Command struct {
	ctx *shared.Context
	cmd *cobra.Command

	summary bool
}

// New creates the list command.
func New(ctx *shared.Context) *Command {
	c := &Command{ctx: ctx}
	c.cmd = &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List all items",
		Args:    shared.NoArgs,
		RunE:    c.run,
	}
	c.cmd.Flags().BoolVar(&c.summary, "summary", false, "Print a done/total summary after the items")
	return c
}

// Cmd returns the cobra command.
func (c *Command) Cmd() *cobra.Command { return c.cmd }

func (c *Command) run(cmd *cobra.Command, _ []string) error {
	svc, err := c.ctx.Open(cmd)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	entries := svc.Entries()
	if len(entries) == 0 {
		shared.Dim(out, "No items yet. Run `todo add <text>` to get started.")
		return nil
	}
	for i, e := range entries {
		shared.Entry(out, i+1, e)
	}
	if c.summary {
		s := svc.Stats()
		shared.Dim(out, "%d/%d done, %d open", s.Done, s.Total, s.Open)
	}
	return nil
}
