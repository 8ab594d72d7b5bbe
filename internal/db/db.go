// Package db reads and writes the flat-file todo database.
//
// A database is a human-readable banner, a start marker, and a sequence of
// records. Each record holds four fields joined by KeyValSeparator and is
// terminated by EntrySeparator:
//
//	text KV done KV timestamp KV microseconds ENTRY
//
// The separators are long opaque tokens rather than punctuation so that task
// text is unlikely to contain them. There is no escaping; Insert rejects
// text that contains a reserved token.
package db

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/go-ports/todovault/internal/models"
)

// Reserved tokens of the file format.
const (
	KeyValSeparator = "X4<'}/ghB^$M{@ugC=s~"
	EntrySeparator  = "/!>(=]]4>gNdEhXm)he7"
	StartMarker     = "ohIw*s-^ZP;4SYF/Wl#:{*zpKWpshX&r*VZ`-UvVJr$A3)+n{b?`(bnY;b1{u"
)

// Banner precedes StartMarker in every saved file. Anything before the
// marker is ignored on load.
const Banner = `todovault database
Managed by the todo CLI. Edit with care: records follow the marker below.

`

// TimestampLayout is the second-precision layout of the timestamp field.
const TimestampLayout = "2006-01-02T15:04:05-07:00"

const fieldCount = 4

// ErrExists is returned by Create when a database is already present.
var ErrExists = errors.New("database already exists")

// Corruption describes a record that was skipped while decoding.
type Corruption struct {
	Record int // 1-based position of the record in the file
	Reason string
	Raw    string
}

func (c Corruption) String() string {
	return fmt.Sprintf("record %d: %s", c.Record, c.Reason)
}

// ---------------------------------------------------------------------------
// Codec
// ---------------------------------------------------------------------------

// Decode parses database content. Records that fail validation are skipped
// and reported; the remaining records are returned in file order.
func Decode(content string) ([]models.Entry, []Corruption) {
	if _, after, ok := strings.Cut(content, StartMarker); ok {
		content = after
	}

	entries := make([]models.Entry, 0)
	var corrupted []Corruption
	record := 0
	for _, chunk := range strings.Split(content, EntrySeparator) {
		if chunk == "" {
			continue
		}
		record++
		e, reason := decodeRecord(chunk)
		if reason != "" {
			corrupted = append(corrupted, Corruption{Record: record, Reason: reason, Raw: chunk})
			continue
		}
		entries = append(entries, e)
	}
	return entries, corrupted
}

func decodeRecord(chunk string) (models.Entry, string) {
	fields := strings.Split(chunk, KeyValSeparator)
	if len(fields) != fieldCount {
		return models.Entry{}, fmt.Sprintf("expected %d fields, got %d", fieldCount, len(fields))
	}

	var done bool
	switch fields[1] {
	case "true":
		done = true
	case "false":
	default:
		return models.Entry{}, fmt.Sprintf("invalid done flag %q", fields[1])
	}

	// time.Parse accepts a fraction the layout does not name; subseconds
	// belong to the fourth field only.
	ts, err := time.Parse(TimestampLayout, fields[2])
	if err != nil || strings.Contains(fields[2], ".") {
		return models.Entry{}, fmt.Sprintf("invalid timestamp %q", fields[2])
	}

	micros, err := strconv.ParseUint(fields[3], 10, 32)
	if err != nil || micros >= 1_000_000 {
		return models.Entry{}, fmt.Sprintf("invalid subsecond %q", fields[3])
	}

	return models.Entry{
		Text:      fields[0],
		Done:      done,
		CreatedAt: ts.UTC().Add(time.Duration(micros) * time.Microsecond),
	}, ""
}

// Encode serialises entries into the full file content, banner included.
func Encode(entries []models.Entry) string {
	var sb strings.Builder
	sb.WriteString(Banner)
	sb.WriteString(StartMarker)
	for _, e := range entries {
		ts := e.CreatedAt.UTC()
		sb.WriteString(e.Text)
		sb.WriteString(KeyValSeparator)
		sb.WriteString(strconv.FormatBool(e.Done))
		sb.WriteString(KeyValSeparator)
		sb.WriteString(ts.Format(TimestampLayout))
		sb.WriteString(KeyValSeparator)
		sb.WriteString(strconv.Itoa(ts.Nanosecond() / 1000))
		sb.WriteString(EntrySeparator)
	}
	return sb.String()
}

// ContainsReserved reports whether text contains any reserved token and
// therefore cannot be stored without corrupting the file.
func ContainsReserved(text string) bool {
	return strings.Contains(text, KeyValSeparator) ||
		strings.Contains(text, EntrySeparator) ||
		strings.Contains(text, StartMarker)
}

// ---------------------------------------------------------------------------
// File operations
// ---------------------------------------------------------------------------

// Result is returned from Load.
type Result struct {
	Entries   []models.Entry
	Corrupted []Corruption
	Created   bool // the file did not exist and was created empty
}

// Load opens the database at path, creating it empty when absent, and
// decodes its content.
func Load(path string) (*Result, error) {
	_, statErr := os.Stat(path)
	created := os.IsNotExist(statErr)

	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0o644) // #nosec G302 G304 -- the database is a user-owned plain text file
	if err != nil {
		return nil, fmt.Errorf("db.Load: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("db.Load: read %s: %w", path, err)
	}

	entries, corrupted := Decode(string(data))
	for _, c := range corrupted {
		slog.Debug("skipping corrupted record", "path", path, "record", c.Record, "reason", c.Reason)
	}
	return &Result{Entries: entries, Corrupted: corrupted, Created: created}, nil
}

// Save rewrites the database at path with entries. The content is written to
// a temporary file in the same directory and renamed over path, so a failed
// write leaves the previous file intact.
func Save(path string, entries []models.Entry) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("db.Save: %w", err)
	}
	tmpName := tmp.Name()
	cleanup := func() { _ = os.Remove(tmpName) }

	if _, err := tmp.WriteString(Encode(entries)); err != nil {
		_ = tmp.Close()
		cleanup()
		return fmt.Errorf("db.Save: write: %w", err)
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return fmt.Errorf("db.Save: close: %w", err)
	}

	mode := os.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}
	if err := os.Chmod(tmpName, mode); err != nil {
		slog.Warn("db.Save: chmod temp file", "err", err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		cleanup()
		return fmt.Errorf("db.Save: rename: %w", err)
	}
	return nil
}

// Create makes a new empty database at path. It fails with ErrExists when a
// file is already present.
func Create(path string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644) // #nosec G302 G304 -- the database is a user-owned plain text file
	if errors.Is(err, os.ErrExist) {
		return fmt.Errorf("db.Create %s: %w", path, ErrExists)
	}
	if err != nil {
		return fmt.Errorf("db.Create: %w", err)
	}
	return f.Close()
}

// Remove deletes the database at path.
func Remove(path string) error {
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("db.Remove: %w", err)
	}
	return nil
}
