// Package models defines the core data types for the todo list.
package models

import (
	"strings"
	"time"
)

// Entry is a single task record.
type Entry struct {
	Text      string
	Done      bool
	CreatedAt time.Time
}

// NewEntry constructs an open Entry stamped with the current time.
// The timestamp is truncated to microseconds, the finest precision the
// database file stores, so a saved entry reloads unchanged.
func NewEntry(text string) Entry {
	return Entry{
		Text:      text,
		CreatedAt: Now(),
	}
}

// Now returns the current UTC time at storage precision.
func Now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// Mark returns the checkbox character used when rendering the entry.
func (e Entry) Mark() string {
	if e.Done {
		return "x"
	}
	return " "
}

// IsBlank reports whether text is empty after trimming whitespace.
func IsBlank(text string) bool {
	return strings.TrimSpace(text) == ""
}

// Stats summarises a list of entries.
type Stats struct {
	Total int `json:"total" yaml:"total"`
	Done  int `json:"done" yaml:"done"`
	Open  int `json:"open" yaml:"open"`
}

// Summarize counts total, done and open entries.
func Summarize(entries []Entry) Stats {
	var s Stats
	for _, e := range entries {
		s.Total++
		if e.Done {
			s.Done++
		}
	}
	s.Open = s.Total - s.Done
	return s
}
