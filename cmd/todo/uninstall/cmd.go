// Package uninstallcmd implements the `todo uninstall` command group.
package uninstallcmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/go-ports/todovault/cmd/todo/shared"
	"github.com/go-ports/todovault/internal/setup"
)

// Command implements `todo uninstall`.
type Command struct {
	ctx *shared.Context
	cmd *cobra.Command
}

// New creates the uninstall command group.
func New(ctx *shared.Context) *Command {
	c := &Command{ctx: ctx}
	c.cmd = &cobra.Command{
		Use:   "uninstall",
		Short: "Remove the todo MCP server from a coding agent",
		RunE:  func(cmd *cobra.Command, _ []string) error { return cmd.Help() },
	}
	c.cmd.AddCommand(
		newUninstallClaudeCode(ctx),
		newUninstallCursor(ctx),
		newUninstallCodex(ctx),
		newUninstallOpencode(ctx),
	)
	return c
}

// Cmd returns the cobra command.
func (c *Command) Cmd() *cobra.Command { return c.cmd }

// report prints an uninstall result; failures are returned so the exit code is
// non-zero.
func report(cmd *cobra.Command, result setup.Result) error {
	if result.Status != "ok" {
		return fmt.Errorf("uninstall: %s", result.Message)
	}
	shared.Success(cmd.OutOrStdout(), "%s", result.Message)
	return nil
}

// ---------------------------------------------------------------------------
// uninstall claude-code
// ---------------------------------------------------------------------------

func newUninstallClaudeCode(ctx *shared.Context) *cobra.Command {
	var configDir string
	var project bool
	cmd := &cobra.Command{
		Use:   "claude-code",
		Short: "Remove the todo MCP server from Claude Code",
		Args:  shared.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			target := ctx.AgentDir(".claude", configDir, project)
			return report(cmd, setup.UninstallClaudeCode(target, project))
		},
	}
	cmd.Flags().StringVar(&configDir, "config-dir", "", "Path to .claude directory")
	cmd.Flags().BoolVar(&project, "project", false, "Uninstall from the current project (.mcp.json) instead of globally")
	return cmd
}

// ---------------------------------------------------------------------------
// uninstall cursor
// ---------------------------------------------------------------------------

func newUninstallCursor(ctx *shared.Context) *cobra.Command {
	var configDir string
	var project bool
	cmd := &cobra.Command{
		Use:   "cursor",
		Short: "Remove the todo MCP server from Cursor",
		Args:  shared.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return report(cmd, setup.UninstallCursor(ctx.AgentDir(".cursor", configDir, project)))
		},
	}
	cmd.Flags().StringVar(&configDir, "config-dir", "", "Path to .cursor directory")
	cmd.Flags().BoolVar(&project, "project", false, "Uninstall from the current project instead of globally")
	return cmd
}

// ---------------------------------------------------------------------------
// uninstall codex
// ---------------------------------------------------------------------------

func newUninstallCodex(ctx *shared.Context) *cobra.Command {
	var configDir string
	var project bool
	cmd := &cobra.Command{
		Use:   "codex",
		Short: "Remove the todo MCP server from Codex config.toml",
		Args:  shared.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return report(cmd, setup.UninstallCodex(ctx.AgentDir(".codex", configDir, project)))
		},
	}
	cmd.Flags().StringVar(&configDir, "config-dir", "", "Path to .codex directory")
	cmd.Flags().BoolVar(&project, "project", false, "Uninstall from the current project instead of globally")
	return cmd
}

// ---------------------------------------------------------------------------
// uninstall opencode
// ---------------------------------------------------------------------------

func newUninstallOpencode(ctx *shared.Context) *cobra.Command {
	var project bool
	cmd := &cobra.Command{
		Use:   "opencode",
		Short: "Remove the todo MCP server from OpenCode",
		Args:  shared.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dir := ""
			if project {
				dir = ctx.AgentDir("", "", true)
			}
			return report(cmd, setup.UninstallOpencode(dir))
		},
	}
	cmd.Flags().BoolVar(&project, "project", false, "Uninstall from the current project (opencode.json) instead of globally")
	return cmd
}
