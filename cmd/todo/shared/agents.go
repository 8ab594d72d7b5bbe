package shared

import (
	"os"
	"path/filepath"
)

// AgentDir resolves the agent configuration directory for setup and
// uninstall. An explicit configDir wins; project places dotDir inside the
// working directory (or --dir), otherwise it lives in the home directory.
// An empty dotDir yields the directory itself.
//
//revive:disable:flag-parameter
func (c *Context) AgentDir(dotDir, configDir string, project bool) string {
	if configDir != "" {
		return configDir
	}
	if project {
		base := c.Dir
		if base == "" {
			base, _ = os.Getwd()
		}
		return filepath.Join(base, dotDir)
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, dotDir)
}

//revive:enable:flag-parameter
