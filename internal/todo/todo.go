// Package todo implements the ordered task list and its mutations.
package todo

import (
	"errors"
	"slices"
	"strings"

	"github.com/go-ports/todovault/internal/db"
	"github.com/go-ports/todovault/internal/models"
)

var (
	// ErrNoItem is returned when a position does not address any entry.
	ErrNoItem = errors.New("no item found")
	// ErrEmptyText is returned when inserting blank text.
	ErrEmptyText = errors.New("item text is empty")
	// ErrReservedText is returned when text contains a reserved file token.
	ErrReservedText = errors.New("item text contains a reserved database token")
)

// List is an ordered collection of entries. The zero value is an empty list.
type List struct {
	entries []models.Entry
}

// New returns a List holding entries in the given order.
func New(entries []models.Entry) *List {
	return &List{entries: slices.Clone(entries)}
}

// Len returns the number of entries.
func (l *List) Len() int { return len(l.entries) }

// Entries returns a copy of the entries in order.
func (l *List) Entries() []models.Entry {
	out := make([]models.Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Get returns the entry at the 1-based position pos.
func (l *List) Get(pos int) (models.Entry, error) {
	idx, ok := ValidateIndex(len(l.entries), pos)
	if !ok {
		return models.Entry{}, ErrNoItem
	}
	return l.entries[idx], nil
}

// Stats summarises the list.
func (l *List) Stats() models.Stats {
	return models.Summarize(l.entries)
}

// ---------------------------------------------------------------------------
// Mutations
// ---------------------------------------------------------------------------

// Insert appends a new open entry with text.
func (l *List) Insert(text string) (models.Entry, error) {
	if models.IsBlank(text) {
		return models.Entry{}, ErrEmptyText
	}
	if db.ContainsReserved(text) {
		return models.Entry{}, ErrReservedText
	}
	e := models.NewEntry(text)
	l.entries = append(l.entries, e)
	return e, nil
}

// Delete removes the entry at the 1-based position pos. Out-of-range
// positions fail with ErrNoItem and leave the list unchanged.
func (l *List) Delete(pos int) (models.Entry, error) {
	idx, ok := ValidateIndex(len(l.entries), pos)
	if !ok {
		return models.Entry{}, ErrNoItem
	}
	e := l.entries[idx]
	l.entries = slices.Delete(l.entries, idx, idx+1)
	return e, nil
}

// Toggle flips the done flag of the entry nearest to the 1-based position
// pos and returns the updated entry.
func (l *List) Toggle(pos int) (models.Entry, error) {
	if len(l.entries) == 0 {
		return models.Entry{}, ErrNoItem
	}
	idx := ClampIndex(len(l.entries), pos)
	l.entries[idx].Done = !l.entries[idx].Done
	return l.entries[idx], nil
}

// Move relocates the entry nearest to pos so that it ends up at the 1-based
// position to. Both positions are clamped. It returns the final 1-based
// position of the entry.
func (l *List) Move(pos, to int) (int, error) {
	n := len(l.entries)
	if n == 0 {
		return 0, ErrNoItem
	}
	return l.move(ClampIndex(n, pos), ClampIndex(n, to)) + 1, nil
}

// Shift moves the entry nearest to pos by shift slots, wrapping around the
// ends of the list. It returns the final 1-based position of the entry.
func (l *List) Shift(pos, shift int) (int, error) {
	n := len(l.entries)
	if n == 0 {
		return 0, ErrNoItem
	}
	idx := ClampIndex(n, pos)
	return l.move(idx, WrapIndex(n, idx, shift)) + 1, nil
}

// move removes the entry at idx and reinserts it at to, capped at the end of
// the shortened list. Both indices must be valid.
func (l *List) move(idx, to int) int {
	e := l.entries[idx]
	l.entries = slices.Delete(l.entries, idx, idx+1)
	to = min(to, len(l.entries))
	l.entries = slices.Insert(l.entries, to, e)
	return to
}

// OrderAlpha stably sorts the list by text. strict compares raw bytes;
// otherwise both sides are lowercased first. reverse swaps the comparator
// operands, so equal keys keep their relative order in both directions.
func (l *List) OrderAlpha(reverse, strict bool) {
	key := strings.ToLower
	if strict {
		key = func(s string) string { return s }
	}
	cmp := func(a, b models.Entry) int {
		return strings.Compare(key(a.Text), key(b.Text))
	}
	slices.SortStableFunc(l.entries, orient(cmp, reverse))
}

// OrderDate stably sorts the list by creation time, oldest first unless
// reverse is set.
func (l *List) OrderDate(reverse bool) {
	cmp := func(a, b models.Entry) int {
		return a.CreatedAt.Compare(b.CreatedAt)
	}
	slices.SortStableFunc(l.entries, orient(cmp, reverse))
}

// Clear removes every entry.
func (l *List) Clear() {
	l.entries = l.entries[:0]
}

func orient(cmp func(a, b models.Entry) int, reverse bool) func(a, b models.Entry) int {
	if !reverse {
		return cmp
	}
	return func(a, b models.Entry) int { return cmp(b, a) }
}
