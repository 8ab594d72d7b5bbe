// Package service implements the todo Service orchestrator that wires together
// configuration, database discovery, the flat-file store, and the list engine.
//
// A Service represents one invocation: it locates and loads the database
// once, applies operations, and rewrites the whole file after every
// mutation. Nothing is cached across Services.
package service

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/go-ports/todovault/internal/config"
	"github.com/go-ports/todovault/internal/db"
	"github.com/go-ports/todovault/internal/locator"
	"github.com/go-ports/todovault/internal/markdown"
	"github.com/go-ports/todovault/internal/models"
	"github.com/go-ports/todovault/internal/redaction"
	"github.com/go-ports/todovault/internal/todo"
)

// Service orchestrates all list operations for one database.
type Service struct {
	Path      string
	Config    *config.Config
	Created   bool            // the database did not exist and was created empty
	Corrupted []db.Corruption // records skipped while loading

	list *todo.List
}

// Open locates the database for startDir and loads it.
// If startDir is empty the current working directory is used.
func Open(startDir string) (*Service, error) {
	cfg, err := config.LoadDefault()
	if err != nil {
		return nil, fmt.Errorf("service.Open: load config: %w", err)
	}
	return OpenWithConfig(startDir, cfg)
}

// OpenWithConfig is Open with an explicit configuration. A nil cfg means
// defaults.
func OpenWithConfig(startDir string, cfg *config.Config) (*Service, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	dir, err := resolveDir(startDir)
	if err != nil {
		return nil, fmt.Errorf("service.Open: %w", err)
	}

	path := locator.Locate(dir)
	res, err := db.Load(path)
	if err != nil {
		return nil, fmt.Errorf("service.Open: %w", err)
	}
	for _, c := range res.Corrupted {
		slog.Warn("skipping corrupted record", "path", path, "record", c.Record, "reason", c.Reason)
	}

	return &Service{
		Path:      path,
		Config:    cfg,
		Created:   res.Created,
		Corrupted: res.Corrupted,
		list:      todo.New(res.Entries),
	}, nil
}

// Declare returns the database path that applies to startDir without
// loading or creating it.
func Declare(startDir string) (string, error) {
	dir, err := resolveDir(startDir)
	if err != nil {
		return "", fmt.Errorf("Declare: %w", err)
	}
	return locator.Locate(dir), nil
}

// Init creates an empty database directly in startDir. It fails with
// db.ErrExists when startDir already holds one; databases in ancestor
// directories do not count.
func Init(startDir string) (string, error) {
	dir, err := resolveDir(startDir)
	if err != nil {
		return "", fmt.Errorf("Init: %w", err)
	}
	path := locator.DefaultPath(dir)
	if err := db.Create(path); err != nil {
		return path, fmt.Errorf("Init: %w", err)
	}
	return path, nil
}

// Destroy deletes the database that applies to startDir.
func Destroy(startDir string) (string, error) {
	dir, err := resolveDir(startDir)
	if err != nil {
		return "", fmt.Errorf("Destroy: %w", err)
	}
	path := locator.Locate(dir)
	if err := db.Remove(path); err != nil {
		return path, fmt.Errorf("Destroy: %w", err)
	}
	return path, nil
}

func resolveDir(startDir string) (string, error) {
	if startDir != "" {
		return startDir, nil
	}
	return os.Getwd()
}

// ---------------------------------------------------------------------------
// Queries
// ---------------------------------------------------------------------------

// Entries returns the current entries in order.
func (s *Service) Entries() []models.Entry {
	return s.list.Entries()
}

// Stats summarises the current list.
func (s *Service) Stats() models.Stats {
	return s.list.Stats()
}

// ---------------------------------------------------------------------------
// Mutations
// ---------------------------------------------------------------------------

// commit persists the list. A failed save leaves the in-memory mutation
// applied; the next Open reloads the on-disk state.
func (s *Service) commit(op string) error {
	if err := db.Save(s.Path, s.list.Entries()); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// Add appends a new open entry.
func (s *Service) Add(text string) (models.Entry, error) {
	e, err := s.list.Insert(text)
	if err != nil {
		return e, fmt.Errorf("Add: %w", err)
	}
	return e, s.commit("Add")
}

// Delete removes the entry at the 1-based position pos.
func (s *Service) Delete(pos int) (models.Entry, error) {
	e, err := s.list.Delete(pos)
	if err != nil {
		return e, fmt.Errorf("Delete %d: %w", pos, err)
	}
	return e, s.commit("Delete")
}

// Toggle flips the done flag of the entry nearest to pos.
func (s *Service) Toggle(pos int) (models.Entry, error) {
	e, err := s.list.Toggle(pos)
	if err != nil {
		return e, fmt.Errorf("Toggle %d: %w", pos, err)
	}
	return e, s.commit("Toggle")
}

// Move relocates the entry nearest to pos to the position to. It returns the
// final 1-based position.
func (s *Service) Move(pos, to int) (int, error) {
	got, err := s.list.Move(pos, to)
	if err != nil {
		return 0, fmt.Errorf("Move %d: %w", pos, err)
	}
	return got, s.commit("Move")
}

// Shift moves the entry nearest to pos by shift slots with wrap-around. It
// returns the final 1-based position.
func (s *Service) Shift(pos, shift int) (int, error) {
	got, err := s.list.Shift(pos, shift)
	if err != nil {
		return 0, fmt.Errorf("Shift %d: %w", pos, err)
	}
	return got, s.commit("Shift")
}

// OrderAlpha sorts the list by text.
func (s *Service) OrderAlpha(reverse, strict bool) error {
	s.list.OrderAlpha(reverse, strict)
	return s.commit("OrderAlpha")
}

// OrderDate sorts the list by creation time.
func (s *Service) OrderDate(reverse bool) error {
	s.list.OrderDate(reverse)
	return s.commit("OrderDate")
}

// Clear removes every entry.
func (s *Service) Clear() error {
	s.list.Clear()
	return s.commit("Clear")
}

// ---------------------------------------------------------------------------
// Export
// ---------------------------------------------------------------------------

// exportEntry is the JSON shape of an exported entry.
type exportEntry struct {
	Index     int    `json:"index"`
	Text      string `json:"text"`
	Done      bool   `json:"done"`
	CreatedAt string `json:"created_at"`
}

// Export renders the list in format ("markdown", "json" or "text"). An empty
// format falls back to the configured default.
func (s *Service) Export(format string) (string, error) {
	return s.ExportWith(format, false)
}

// ExportWith is Export with optional secret redaction of item text, using
// the built-in patterns plus the project's .todoignore.
func (s *Service) ExportWith(format string, redact bool) (string, error) {
	if format == "" {
		format = s.Config.Export.Format
	}
	entries := s.list.Entries()
	if redact {
		r, err := s.Redactor()
		if err != nil {
			return "", fmt.Errorf("Export: %w", err)
		}
		for i := range entries {
			entries[i].Text = r.Redact(entries[i].Text)
		}
	}

	switch format {
	case config.FormatMarkdown:
		return markdown.Render(s.Path, entries, time.Now())
	case config.FormatJSON:
		out := make([]exportEntry, len(entries))
		for i, e := range entries {
			out[i] = exportEntry{
				Index:     i + 1,
				Text:      e.Text,
				Done:      e.Done,
				CreatedAt: e.CreatedAt.UTC().Format(time.RFC3339Nano),
			}
		}
		b, err := json.MarshalIndent(map[string]any{
			"database": s.Path,
			"stats":    models.Summarize(entries),
			"entries":  out,
		}, "", "  ")
		if err != nil {
			return "", fmt.Errorf("Export: %w", err)
		}
		return string(b) + "\n", nil
	case config.FormatText:
		var sb strings.Builder
		for i, e := range entries {
			sb.WriteString(FormatLine(i+1, e))
			sb.WriteString("\n")
		}
		return sb.String(), nil
	}
	return "", fmt.Errorf("Export: unknown format %q (want one of %s)", format, strings.Join(config.ValidFormats, ", "))
}

// Redactor returns the redactor for this database's directory.
func (s *Service) Redactor() (*redaction.Redactor, error) {
	return redaction.ForDatabase(s.Path)
}

// FormatLine renders one entry as "<pos> [x]: <text>".
func FormatLine(pos int, e models.Entry) string {
	return fmt.Sprintf("%d [%s]: %s", pos, e.Mark(), e.Text)
}
