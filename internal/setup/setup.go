// Package setup registers and removes the todo MCP server in the
// configuration of supported coding agents (Claude Code, Cursor, Codex,
// OpenCode).
package setup

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// ServerName is the key the todo server is registered under.
const ServerName = "todovault"

// Result is the return value from all Setup/Uninstall functions.
type Result struct {
	Status  string // "ok" or "error"
	Message string
}

func ok(msg string) Result          { return Result{Status: "ok", Message: msg} }
func okf(f string, a ...any) Result { return ok(fmt.Sprintf(f, a...)) }
func fail(err error) Result         { return Result{Status: "error", Message: err.Error()} }

// ---------------------------------------------------------------------------
// MCP config entries
// ---------------------------------------------------------------------------

var mcpConfig = map[string]any{
	"command": "todo",
	"args":    []any{"mcp"},
	"type":    "stdio",
}

var opencodeMCPConfig = map[string]any{
	"type":    "local",
	"command": []any{"todo", "mcp"},
}

var codexMCPConfig = map[string]any{
	"command": "todo",
	"args":    []any{"mcp"},
}

// ---------------------------------------------------------------------------
// Default path helpers
// ---------------------------------------------------------------------------

// DefaultClaudeHome returns the default ~/.claude directory.
func DefaultClaudeHome() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".claude")
}

// DefaultCursorHome returns the default ~/.cursor directory.
func DefaultCursorHome() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".cursor")
}

// DefaultCodexHome returns the default ~/.codex directory.
func DefaultCodexHome() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".codex")
}

// DefaultOpencodeHome returns the default ~/.config/opencode directory.
func DefaultOpencodeHome() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "opencode")
}

// ---------------------------------------------------------------------------
// JSON helpers
// ---------------------------------------------------------------------------

func readJSON(path string) map[string]any {
	data, err := os.ReadFile(path)
	if err != nil {
		return make(map[string]any)
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil || m == nil {
		return make(map[string]any)
	}
	return m
}

func writeJSON(path string, data map[string]any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	b, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return err
	}
	b = append(b, '\n')
	return os.WriteFile(path, b, 0o644) // #nosec G306 -- agent config files hold no secrets
}

// ---------------------------------------------------------------------------
// TOML helpers (Codex config.toml)
// ---------------------------------------------------------------------------

func readTOML(path string) (map[string]any, error) {
	m := make(map[string]any)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return m, nil
	}
	if _, err := toml.DecodeFile(path, &m); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return m, nil
}

func writeTOML(path string, data map[string]any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(data); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0o644) // #nosec G306 -- agent config files hold no secrets
}

// ---------------------------------------------------------------------------
// Server table helpers
// ---------------------------------------------------------------------------

// addServer registers entry under data[section][ServerName]. It reports
// false when the server is already present.
func addServer(data map[string]any, section string, entry map[string]any) bool {
	servers, _ := data[section].(map[string]any)
	if servers == nil {
		servers = make(map[string]any)
		data[section] = servers
	}
	if _, exists := servers[ServerName]; exists {
		return false
	}
	servers[ServerName] = entry
	return true
}

// removeServer deletes data[section][ServerName], dropping the section when
// it becomes empty. It reports whether anything was removed.
func removeServer(data map[string]any, section string) bool {
	servers, _ := data[section].(map[string]any)
	if _, exists := servers[ServerName]; !exists {
		return false
	}
	delete(servers, ServerName)
	if len(servers) == 0 {
		delete(data, section)
	}
	return true
}

func installJSON(path, section string, entry map[string]any) (bool, error) {
	data := readJSON(path)
	if !addServer(data, section, entry) {
		return false, nil
	}
	return true, writeJSON(path, data)
}

func uninstallJSON(path, section string) (bool, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return false, nil
	}
	data := readJSON(path)
	if !removeServer(data, section) {
		return false, nil
	}
	if len(data) == 0 {
		return true, os.Remove(path)
	}
	return true, writeJSON(path, data)
}

// ---------------------------------------------------------------------------
// Claude Code
// ---------------------------------------------------------------------------

//revive:disable:flag-parameter
func claudeMCPPath(claudeHome string, project bool) string {
	if project {
		return filepath.Join(filepath.Dir(claudeHome), ".mcp.json")
	}
	return filepath.Join(filepath.Dir(claudeHome), ".claude.json")
}

// SetupClaudeCode registers the server with Claude Code. With project set
// the entry goes into .mcp.json next to claudeHome, otherwise into the
// user-level .claude.json. claudeHome defaults to ~/.claude when empty.
func SetupClaudeCode(claudeHome string, project bool) Result {
	if claudeHome == "" {
		claudeHome = DefaultClaudeHome()
	}
	path := claudeMCPPath(claudeHome, project)
	added, err := installJSON(path, "mcpServers", mcpConfig)
	if err != nil {
		return fail(err)
	}
	if added {
		return okf("Installed: mcpServers in %s", path)
	}
	return ok("Already installed")
}

// UninstallClaudeCode removes the server from Claude Code.
func UninstallClaudeCode(claudeHome string, project bool) Result {
	if claudeHome == "" {
		claudeHome = DefaultClaudeHome()
	}
	path := claudeMCPPath(claudeHome, project)
	removed, err := uninstallJSON(path, "mcpServers")
	if err != nil {
		return fail(err)
	}
	if removed {
		return okf("Removed: mcpServers from %s", filepath.Base(path))
	}
	return ok("Nothing to remove")
}

//revive:enable:flag-parameter

// ---------------------------------------------------------------------------
// Cursor
// ---------------------------------------------------------------------------

// SetupCursor registers the server in <cursorHome>/mcp.json.
func SetupCursor(cursorHome string) Result {
	if cursorHome == "" {
		cursorHome = DefaultCursorHome()
	}
	added, err := installJSON(filepath.Join(cursorHome, "mcp.json"), "mcpServers", mcpConfig)
	if err != nil {
		return fail(err)
	}
	if added {
		return ok("Installed: mcpServers")
	}
	return ok("Already installed")
}

// UninstallCursor removes the server from <cursorHome>/mcp.json.
func UninstallCursor(cursorHome string) Result {
	if cursorHome == "" {
		cursorHome = DefaultCursorHome()
	}
	removed, err := uninstallJSON(filepath.Join(cursorHome, "mcp.json"), "mcpServers")
	if err != nil {
		return fail(err)
	}
	if removed {
		return ok("Removed: mcpServers")
	}
	return ok("Nothing to remove")
}

// ---------------------------------------------------------------------------
// Codex
// ---------------------------------------------------------------------------

// SetupCodex registers the server as [mcp_servers.todovault] in
// <codexHome>/config.toml. Other tables in the file are preserved; comments
// are not.
func SetupCodex(codexHome string) Result {
	if codexHome == "" {
		codexHome = DefaultCodexHome()
	}
	path := filepath.Join(codexHome, "config.toml")
	data, err := readTOML(path)
	if err != nil {
		return fail(err)
	}
	if !addServer(data, "mcp_servers", codexMCPConfig) {
		return ok("Already installed")
	}
	if err := writeTOML(path, data); err != nil {
		return fail(err)
	}
	return ok("Installed: [mcp_servers.todovault] in config.toml")
}

// UninstallCodex removes [mcp_servers.todovault] from config.toml.
func UninstallCodex(codexHome string) Result {
	if codexHome == "" {
		codexHome = DefaultCodexHome()
	}
	path := filepath.Join(codexHome, "config.toml")
	data, err := readTOML(path)
	if err != nil {
		return fail(err)
	}
	if !removeServer(data, "mcp_servers") {
		return ok("Nothing to remove")
	}
	if len(data) == 0 {
		err = os.Remove(path)
	} else {
		err = writeTOML(path, data)
	}
	if err != nil {
		return fail(err)
	}
	return ok("Removed: [mcp_servers.todovault] from config.toml")
}

// ---------------------------------------------------------------------------
// OpenCode
// ---------------------------------------------------------------------------

// SetupOpencode registers the server in <dir>/opencode.json. dir defaults
// to ~/.config/opencode when empty.
func SetupOpencode(dir string) Result {
	if dir == "" {
		dir = DefaultOpencodeHome()
	}
	added, err := installJSON(filepath.Join(dir, "opencode.json"), "mcp", opencodeMCPConfig)
	if err != nil {
		return fail(err)
	}
	if added {
		return ok("Installed: mcp in opencode.json")
	}
	return ok("Already installed")
}

// UninstallOpencode removes the server from <dir>/opencode.json.
func UninstallOpencode(dir string) Result {
	if dir == "" {
		dir = DefaultOpencodeHome()
	}
	removed, err := uninstallJSON(filepath.Join(dir, "opencode.json"), "mcp")
	if err != nil {
		return fail(err)
	}
	if removed {
		return ok("Removed: mcp from opencode.json")
	}
	return ok("Nothing to remove")
}
