// Package exportcmd implements the `todo export` command.
package exportcmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/go-ports/todovault/cmd/todo/shared"
	"github.com/go-ports/todovault/internal/config"
)

// Command implements `todo export`.
type Command struct {
	ctx *shared.Context
	cmd *cobra.Command

	format string
	redact bool
}

// New creates the export command.
func New(ctx *shared.Context) *Command {
	c := &Command{ctx: ctx}
	c.cmd = &cobra.Command{
		Use:         "export",
		Short:       "Print the list as markdown, JSON or plain text",
		Example:     "  todo export\n  todo export --format json > todo.json",
		Args:        shared.NoArgs,
		Annotations: map[string]string{shared.RawOutput: "true"},
		RunE:        c.run,
	}
	c.cmd.Flags().StringVarP(&c.format, "format", "f", "",
		"Output format: "+strings.Join(config.ValidFormats, " | ")+" (default from config)")
	c.cmd.Flags().BoolVar(&c.redact, "redact", false, "Replace secrets in item text with [REDACTED]")
	return c
}

// Cmd returns the cobra command.
func (c *Command) Cmd() *cobra.Command { return c.cmd }

func (c *Command) run(cmd *cobra.Command, _ []string) error {
	svc, err := c.ctx.Open(cmd)
	if err != nil {
		return err
	}
	s, err := svc.ExportWith(c.format, c.redact)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), s)
	return nil
}
