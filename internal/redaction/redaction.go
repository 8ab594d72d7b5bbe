// Package redaction scrubs secrets out of item text before it leaves the
// process (exports) or before agent-supplied text is stored.
package redaction

import (
	"bufio"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// IgnoreFile is the per-project pattern file, read from the directory that
// holds the database.
const IgnoreFile = ".todoignore"

const replacement = "[REDACTED]"

// builtin patterns, compiled once.
var builtin = []*regexp.Regexp{
	regexp.MustCompile(`(?i)sk_(?:live|test)_[a-zA-Z0-9]+`),    // Stripe keys
	regexp.MustCompile(`gh[pousr]_[a-zA-Z0-9]+`),               // GitHub tokens
	regexp.MustCompile(`AKIA[0-9A-Z]{16}`),                     // AWS access key IDs
	regexp.MustCompile(`xox[abp]-[a-zA-Z0-9-]+`),               // Slack tokens
	regexp.MustCompile(`-----BEGIN (?:RSA )?PRIVATE KEY-----`), // private keys
	regexp.MustCompile(`eyJ[a-zA-Z0-9_-]+\.eyJ[a-zA-Z0-9_-]+`), // JWTs
	regexp.MustCompile(`(?i)(?:password|secret)\s*[:=]\s*\S+`), // password = ...
	regexp.MustCompile(`(?i)api[_-]?key\s*[:=]\s*\S+`),         // api_key = ...
}

// tagged matches explicit <redacted>...</redacted> spans, across lines.
var tagged = regexp.MustCompile(`(?s)<redacted>.*?</redacted>`)

// Redactor applies the built-in patterns plus project-specific ones.
type Redactor struct {
	extra []*regexp.Regexp
}

// New returns a Redactor using the built-in patterns and extra.
func New(extra []*regexp.Regexp) *Redactor {
	return &Redactor{extra: extra}
}

// ForDatabase returns a Redactor with the patterns from the IgnoreFile next
// to dbPath, if any.
func ForDatabase(dbPath string) (*Redactor, error) {
	extra, err := LoadIgnore(filepath.Join(filepath.Dir(dbPath), IgnoreFile))
	if err != nil {
		return nil, err
	}
	return New(extra), nil
}

// Redact replaces explicit <redacted> spans first, strips orphaned tags,
// then applies the built-in and extra patterns in that order.
func (r *Redactor) Redact(text string) string {
	for {
		next := tagged.ReplaceAllString(text, replacement)
		if next == text {
			break
		}
		text = next
	}
	text = strings.ReplaceAll(text, "<redacted>", "")
	text = strings.ReplaceAll(text, "</redacted>", "")

	for _, re := range builtin {
		text = re.ReplaceAllString(text, replacement)
	}
	if r != nil {
		for _, re := range r.extra {
			text = re.ReplaceAllString(text, replacement)
		}
	}
	return text
}

// LoadIgnore compiles each non-blank, non-comment line of path as a regular
// expression. A missing file yields no patterns and no error.
func LoadIgnore(path string) ([]*regexp.Regexp, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var patterns []*regexp.Regexp
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		re, err := regexp.Compile(line)
		if err != nil {
			return nil, err
		}
		patterns = append(patterns, re)
	}
	return patterns, scanner.Err()
}
