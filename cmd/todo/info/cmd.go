// Package infocmd implements the `todo info` command.
package infocmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/go-ports/todovault/cmd/todo/shared"
	"github.com/go-ports/todovault/internal/buildinfo"
	"github.com/go-ports/todovault/internal/locator"
)

const banner = `+-------------------------------------------------+
|  todovault                                      |
|  A todo list scoped to your project directory.  |
+-------------------------------------------------+`

// Command implements `todo info`.
type Command struct {
	ctx *shared.Context
	cmd *cobra.Command
}

// New creates the info command.
func New(ctx *shared.Context) *Command {
	c := &Command{ctx: ctx}
	c.cmd = &cobra.Command{
		Use:   "info",
		Short: "Show information about todo",
		Args:  shared.NoArgs,
		RunE:  c.run,
	}
	return c
}

// Cmd returns the cobra command.
func (c *Command) Cmd() *cobra.Command { return c.cmd }

func (*Command) run(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, banner)
	fmt.Fprintf(out, "Version:  %s\n", buildinfo.String())
	fmt.Fprintf(out, "Database: %s (nearest in this or any parent directory)\n", locator.DBName)
	return nil
}
