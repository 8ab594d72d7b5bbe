// Package mcpcmd implements the `todo mcp` command.
package mcpcmd

import (
	"github.com/spf13/cobra"

	"github.com/go-ports/todovault/cmd/todo/shared"
	internalmcp "github.com/go-ports/todovault/internal/mcp"
)

// Command implements `todo mcp`.
type Command struct {
	ctx *shared.Context
	cmd *cobra.Command
}

// New creates the mcp command.
func New(ctx *shared.Context) *Command {
	c := &Command{ctx: ctx}
	c.cmd = &cobra.Command{
		Use:         "mcp",
		Short:       "Start the todo MCP server (stdio transport)",
		Args:        shared.NoArgs,
		Annotations: map[string]string{shared.RawOutput: "true"},
		RunE:        c.run,
	}
	return c
}

// Cmd returns the cobra command.
func (c *Command) Cmd() *cobra.Command { return c.cmd }

func (c *Command) run(cmd *cobra.Command, _ []string) error {
	return internalmcp.Serve(cmd.Context(), c.ctx.Dir)
}
