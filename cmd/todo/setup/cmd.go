// Package setupcmd implements the `todo setup` command group.
package setupcmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/go-ports/todovault/cmd/todo/shared"
	"github.com/go-ports/todovault/internal/setup"
)

// Command implements `todo setup`.
type Command struct {
	ctx *shared.Context
	cmd *cobra.Command
}

// New creates the setup command group.
func New(ctx *shared.Context) *Command {
	c := &Command{ctx: ctx}
	c.cmd = &cobra.Command{
		Use:   "setup",
		Short: "Register the todo MCP server with a coding agent",
		RunE:  func(cmd *cobra.Command, _ []string) error { return cmd.Help() },
	}
	c.cmd.AddCommand(
		newSetupClaudeCode(ctx),
		newSetupCursor(ctx),
		newSetupCodex(ctx),
		newSetupOpencode(ctx),
	)
	return c
}

// Cmd returns the cobra command.
func (c *Command) Cmd() *cobra.Command { return c.cmd }

// report prints a setup result; failures are returned so the exit code is
// non-zero.
func report(cmd *cobra.Command, result setup.Result) error {
	if result.Status != "ok" {
		return fmt.Errorf("setup: %s", result.Message)
	}
	shared.Success(cmd.OutOrStdout(), "%s", result.Message)
	return nil
}

// ---------------------------------------------------------------------------
// setup claude-code
// ---------------------------------------------------------------------------

func newSetupClaudeCode(ctx *shared.Context) *cobra.Command {
	var configDir string
	var project bool
	cmd := &cobra.Command{
		Use:   "claude-code",
		Short: "Add the todo MCP server to Claude Code",
		Args:  shared.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			target := ctx.AgentDir(".claude", configDir, project)
			return report(cmd, setup.SetupClaudeCode(target, project))
		},
	}
	cmd.Flags().StringVar(&configDir, "config-dir", "", "Path to .claude directory")
	cmd.Flags().BoolVar(&project, "project", false, "Install in the current project (.mcp.json) instead of globally")
	return cmd
}

// ---------------------------------------------------------------------------
// setup cursor
// ---------------------------------------------------------------------------

func newSetupCursor(ctx *shared.Context) *cobra.Command {
	var configDir string
	var project bool
	cmd := &cobra.Command{
		Use:   "cursor",
		Short: "Add the todo MCP server to Cursor",
		Args:  shared.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return report(cmd, setup.SetupCursor(ctx.AgentDir(".cursor", configDir, project)))
		},
	}
	cmd.Flags().StringVar(&configDir, "config-dir", "", "Path to .cursor directory")
	cmd.Flags().BoolVar(&project, "project", false, "Install in the current project instead of globally")
	return cmd
}

// ---------------------------------------------------------------------------
// setup codex
// ---------------------------------------------------------------------------

func newSetupCodex(ctx *shared.Context) *cobra.Command {
	var configDir string
	var project bool
	cmd := &cobra.Command{
		Use:   "codex",
		Short: "Add the todo MCP server to Codex config.toml",
		Args:  shared.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return report(cmd, setup.SetupCodex(ctx.AgentDir(".codex", configDir, project)))
		},
	}
	cmd.Flags().StringVar(&configDir, "config-dir", "", "Path to .codex directory")
	cmd.Flags().BoolVar(&project, "project", false, "Install in the current project instead of globally")
	return cmd
}

// ---------------------------------------------------------------------------
// setup opencode
// ---------------------------------------------------------------------------

func newSetupOpencode(ctx *shared.Context) *cobra.Command {
	var project bool
	cmd := &cobra.Command{
		Use:   "opencode",
		Short: "Add the todo MCP server to OpenCode",
		Args:  shared.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dir := ""
			if project {
				dir = ctx.AgentDir("", "", true)
			}
			return report(cmd, setup.SetupOpencode(dir))
		},
	}
	cmd.Flags().BoolVar(&project, "project", false, "Install in the current project (opencode.json) instead of globally")
	return cmd
}
