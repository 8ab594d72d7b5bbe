// Package configcmd implements the `todo config` command group.
package configcmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/go-ports/todovault/cmd/todo/shared"
	"github.com/go-ports/todovault/internal/config"
)

const configTemplate = `# todo configuration
# The database location is never configured here: it is always found by
# walking up from the current directory to the nearest .todo.db.txt.

# Colored output. TODO_COLOR overrides this value.
color: auto                     # auto | always | never

# Print banner bars above and below command output.
header: false

export:
  format: markdown              # markdown | json | text
`

// Command implements `todo config`.
type Command struct {
	ctx *shared.Context
	cmd *cobra.Command
}

// New creates the config command group.
func New(ctx *shared.Context) *Command {
	c := &Command{ctx: ctx}
	c.cmd = &cobra.Command{
		Use:         "config",
		Short:       "Show or manage configuration",
		Args:        shared.NoArgs,
		Annotations: map[string]string{shared.RawOutput: "true"},
		RunE:        c.runShow,
	}
	c.cmd.AddCommand(newConfigInit(ctx))
	return c
}

// Cmd returns the cobra command.
func (c *Command) Cmd() *cobra.Command { return c.cmd }

func (c *Command) runShow(cmd *cobra.Command, _ []string) error {
	path, source := config.ResolvePath()
	cfg := c.ctx.Config
	if cfg == nil {
		var err error
		if cfg, err = config.Load(path); err != nil {
			return err
		}
	}
	data := map[string]any{
		"color":  cfg.Color,
		"header": cfg.Header,
		"export": map[string]any{
			"format": cfg.Export.Format,
		},
		"config_path":   path,
		"config_source": source,
	}
	b, err := yaml.Marshal(data)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), string(b))
	return nil
}

// ---------------------------------------------------------------------------
// config init
// ---------------------------------------------------------------------------

func newConfigInit(_ *shared.Context) *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:         "init",
		Short:       "Generate a starter config.yaml",
		Args:        shared.NoArgs,
		Annotations: map[string]string{shared.RawOutput: "true"},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfgPath, _ := config.ResolvePath()
			out := cmd.OutOrStdout()
			if _, err := os.Stat(cfgPath); err == nil && !force {
				fmt.Fprintf(out, "Config already exists at %s\n", cfgPath)
				fmt.Fprintln(out, "Use --force to overwrite.")
				return nil
			}
			if err := os.MkdirAll(filepath.Dir(cfgPath), 0o755); err != nil {
				return err
			}
			if err := os.WriteFile(cfgPath, []byte(configTemplate), 0o644); err != nil {
				return err
			}
			fmt.Fprintf(out, "Created %s\n", cfgPath)
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing config")
	return cmd
}
