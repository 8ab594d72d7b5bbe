// Package shared holds the context and helpers passed to all CLI commands.
package shared

import (
	"log/slog"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/go-ports/todovault/internal/config"
	"github.com/go-ports/todovault/internal/service"
)

// RawOutput is the command annotation that suppresses the header and footer
// bars, for commands whose stdout is machine-readable.
const RawOutput = "raw-output"

// Context carries global CLI state (flags set on the root command).
type Context struct {
	// Dir is the directory the database search starts from.
	// When empty, the current working directory is used.
	Dir string
	// NoColor disables colored output regardless of configuration.
	NoColor bool
	// Verbose enables debug logging on stderr.
	Verbose bool

	// Config is loaded by Setup before any command runs.
	Config *config.Config
}

// Setup loads configuration and configures logging and color. It runs as the
// root command's PersistentPreRunE.
func (c *Context) Setup(cmd *cobra.Command) error {
	cfg, err := config.LoadDefault()
	if err != nil {
		return err
	}
	c.Config = cfg

	switch {
	case c.NoColor || cfg.Color == config.ColorNever:
		color.NoColor = true
	case cfg.Color == config.ColorAlways:
		color.NoColor = false
	}

	level := slog.LevelWarn
	if c.Verbose || strings.EqualFold(os.Getenv("TODO_LOG_LEVEL"), "debug") {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))

	if cfg.Header && !raw(cmd) {
		Header(cmd.OutOrStdout())
	}
	return nil
}

// Teardown runs as the root command's PersistentPostRunE.
func (c *Context) Teardown(cmd *cobra.Command) error {
	if c.Config != nil && c.Config.Header && !raw(cmd) {
		Footer(cmd.OutOrStdout())
	}
	return nil
}

func raw(cmd *cobra.Command) bool {
	return cmd.Annotations[RawOutput] == "true"
}

// Open locates and loads the database for the current invocation, reporting
// a newly created database and any skipped records.
func (c *Context) Open(cmd *cobra.Command) (*service.Service, error) {
	cfg := c.Config
	if cfg == nil {
		cfg = config.Default()
	}
	svc, err := service.OpenWithConfig(c.Dir, cfg)
	if err != nil {
		return nil, err
	}

	// Machine-readable output must stay parseable.
	out := cmd.OutOrStdout()
	if raw(cmd) {
		out = cmd.ErrOrStderr()
	}
	if svc.Created {
		Notice(out, "New database initialized at %s", svc.Path)
	}
	for _, corrupt := range svc.Corrupted {
		Failure(out, "Skipping corrupted data (%s)", corrupt)
	}
	return svc, nil
}
