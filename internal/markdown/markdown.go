// Package markdown renders a todo list as an Obsidian-compatible checklist.
package markdown

import (
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/go-ports/todovault/internal/models"
)

// frontmatter is the YAML header written above the checklist.
type frontmatter struct {
	Database string `yaml:"database"`
	Exported string `yaml:"exported"`
	Total    int    `yaml:"total"`
	Done     int    `yaml:"done"`
	Open     int    `yaml:"open"`
}

// RenderItem produces a single checklist line for an entry. Embedded
// newlines are indented so the item stays one list element.
func RenderItem(e models.Entry) string {
	var sb strings.Builder
	sb.WriteString("- [")
	sb.WriteString(e.Mark())
	sb.WriteString("] ")
	sb.WriteString(strings.ReplaceAll(e.Text, "\n", "\n  "))
	return sb.String()
}

// Render produces the full document: front-matter, a title, and one
// checklist item per entry in list order.
func Render(dbPath string, entries []models.Entry, now time.Time) (string, error) {
	stats := models.Summarize(entries)
	fm, err := yaml.Marshal(frontmatter{
		Database: dbPath,
		Exported: now.UTC().Format(time.RFC3339),
		Total:    stats.Total,
		Done:     stats.Done,
		Open:     stats.Open,
	})
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString("---\n")
	sb.Write(fm)
	sb.WriteString("---\n")
	sb.WriteString("\n# Todo\n\n")
	if len(entries) == 0 {
		sb.WriteString("_No items._\n")
		return sb.String(), nil
	}
	for _, e := range entries {
		sb.WriteString(RenderItem(e))
		sb.WriteString("\n")
	}
	return sb.String(), nil
}
