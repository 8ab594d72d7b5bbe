package service_test

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/go-ports/todovault/internal/config"
	"github.com/go-ports/todovault/internal/db"
	"github.com/go-ports/todovault/internal/locator"
	"github.com/go-ports/todovault/internal/service"
	"github.com/go-ports/todovault/internal/todo"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// openIn opens a service rooted at dir with default configuration.
func openIn(c *qt.C, dir string) *service.Service {
	c.Helper()
	svc, err := service.OpenWithConfig(dir, config.Default())
	c.Assert(err, qt.IsNil)
	return svc
}

// seeded returns a temp dir holding a database with the given texts.
func seeded(c *qt.C, texts ...string) string {
	c.Helper()
	dir := c.TempDir()
	svc := openIn(c, dir)
	for _, s := range texts {
		_, err := svc.Add(s)
		c.Assert(err, qt.IsNil)
	}
	return dir
}

func textsIn(c *qt.C, dir string) []string {
	c.Helper()
	svc := openIn(c, dir)
	out := make([]string, 0)
	for _, e := range svc.Entries() {
		out = append(out, e.Text)
	}
	return out
}

// ---------------------------------------------------------------------------
// Open
// ---------------------------------------------------------------------------

func TestOpen_CreatesDatabase(t *testing.T) {
	c := qt.New(t)

	dir := c.TempDir()
	svc := openIn(c, dir)
	c.Assert(svc.Created, qt.IsTrue)
	c.Assert(svc.Path, qt.Equals, filepath.Join(dir, locator.DBName))
	c.Assert(svc.Entries(), qt.HasLen, 0)

	_, err := os.Stat(svc.Path)
	c.Assert(err, qt.IsNil)

	again := openIn(c, dir)
	c.Assert(again.Created, qt.IsFalse)
}

func TestOpen_UsesAncestorDatabase(t *testing.T) {
	c := qt.New(t)

	root := seeded(c, "from root")
	nested := filepath.Join(root, "sub", "dir")
	c.Assert(os.MkdirAll(nested, 0o755), qt.IsNil)

	svc := openIn(c, nested)
	c.Assert(svc.Created, qt.IsFalse)
	c.Assert(svc.Path, qt.Equals, filepath.Join(root, locator.DBName))
	c.Assert(svc.Entries(), qt.HasLen, 1)
}

func TestOpen_ReportsCorruptedRecords(t *testing.T) {
	c := qt.New(t)

	dir := c.TempDir()
	content := db.StartMarker +
		"ok" + db.KeyValSeparator + "false" + db.KeyValSeparator + "2024-01-15T08:00:00+00:00" + db.KeyValSeparator + "0" + db.EntrySeparator +
		"missing" + db.KeyValSeparator + "false" + db.EntrySeparator
	c.Assert(os.WriteFile(filepath.Join(dir, locator.DBName), []byte(content), 0o600), qt.IsNil)

	svc := openIn(c, dir)
	c.Assert(svc.Entries(), qt.HasLen, 1)
	c.Assert(svc.Entries()[0].Text, qt.Equals, "ok")
	c.Assert(svc.Corrupted, qt.HasLen, 1)
	c.Assert(svc.Corrupted[0].Record, qt.Equals, 2)
}

func TestOpen_LoadsUserConfig(t *testing.T) {
	c := qt.New(t)

	cfgPath := filepath.Join(c.TempDir(), "config.yaml")
	c.Assert(os.WriteFile(cfgPath, []byte("header: true\n"), 0o600), qt.IsNil)
	c.Setenv("TODO_CONFIG", cfgPath)

	svc, err := service.Open(c.TempDir())
	c.Assert(err, qt.IsNil)
	c.Assert(svc.Config.Header, qt.IsTrue)
}

// ---------------------------------------------------------------------------
// Mutations persist
// ---------------------------------------------------------------------------

func TestMutations_Persist(t *testing.T) {
	c := qt.New(t)

	c.Run("add", func(c *qt.C) {
		dir := seeded(c, "a", "b")
		c.Assert(textsIn(c, dir), qt.DeepEquals, []string{"a", "b"})
	})

	c.Run("delete", func(c *qt.C) {
		dir := seeded(c, "a", "b", "c")
		e, err := openIn(c, dir).Delete(2)
		c.Assert(err, qt.IsNil)
		c.Assert(e.Text, qt.Equals, "b")
		c.Assert(textsIn(c, dir), qt.DeepEquals, []string{"a", "c"})
	})

	c.Run("toggle", func(c *qt.C) {
		dir := seeded(c, "a")
		_, err := openIn(c, dir).Toggle(1)
		c.Assert(err, qt.IsNil)
		c.Assert(openIn(c, dir).Entries()[0].Done, qt.IsTrue)
	})

	c.Run("move", func(c *qt.C) {
		dir := seeded(c, "a", "b", "c")
		got, err := openIn(c, dir).Move(1, 100)
		c.Assert(err, qt.IsNil)
		c.Assert(got, qt.Equals, 3)
		c.Assert(textsIn(c, dir), qt.DeepEquals, []string{"b", "c", "a"})
	})

	c.Run("shift", func(c *qt.C) {
		dir := seeded(c, "a", "b", "c")
		got, err := openIn(c, dir).Shift(3, 1)
		c.Assert(err, qt.IsNil)
		c.Assert(got, qt.Equals, 1)
		c.Assert(textsIn(c, dir), qt.DeepEquals, []string{"c", "a", "b"})
	})

	c.Run("order alpha", func(c *qt.C) {
		dir := seeded(c, "banana", "Apple", "cherry")
		c.Assert(openIn(c, dir).OrderAlpha(true, false), qt.IsNil)
		c.Assert(textsIn(c, dir), qt.DeepEquals, []string{"cherry", "banana", "Apple"})
	})

	c.Run("order date", func(c *qt.C) {
		dir := seeded(c, "first", "second")
		c.Assert(openIn(c, dir).OrderDate(true), qt.IsNil)
		got := textsIn(c, dir)
		c.Assert(got, qt.HasLen, 2)
		// Entries created within the same microsecond keep their order.
		if got[0] != "second" {
			c.Assert(got, qt.DeepEquals, []string{"first", "second"})
		}
	})

	c.Run("clear", func(c *qt.C) {
		dir := seeded(c, "a", "b")
		c.Assert(openIn(c, dir).Clear(), qt.IsNil)
		c.Assert(textsIn(c, dir), qt.HasLen, 0)
	})
}

func TestMutations_FailurePath(t *testing.T) {
	c := qt.New(t)

	dir := seeded(c, "a", "b", "c")
	svc := openIn(c, dir)

	_, err := svc.Delete(0)
	c.Assert(errors.Is(err, todo.ErrNoItem), qt.IsTrue)
	_, err = svc.Delete(4)
	c.Assert(errors.Is(err, todo.ErrNoItem), qt.IsTrue)
	_, err = svc.Add("   ")
	c.Assert(errors.Is(err, todo.ErrEmptyText), qt.IsTrue)
	c.Assert(textsIn(c, dir), qt.DeepEquals, []string{"a", "b", "c"})

	empty := openIn(c, c.TempDir())
	_, err = empty.Toggle(1)
	c.Assert(errors.Is(err, todo.ErrNoItem), qt.IsTrue)
	_, err = empty.Move(1, 2)
	c.Assert(errors.Is(err, todo.ErrNoItem), qt.IsTrue)
	_, err = empty.Shift(1, 1)
	c.Assert(errors.Is(err, todo.ErrNoItem), qt.IsTrue)
}

func TestSaveFailure_KeepsInMemoryMutation(t *testing.T) {
	c := qt.New(t)

	dir := filepath.Join(c.TempDir(), "project")
	c.Assert(os.MkdirAll(dir, 0o755), qt.IsNil)
	svc := openIn(c, dir)
	c.Assert(os.RemoveAll(dir), qt.IsNil)

	_, err := svc.Add("unsaved")
	c.Assert(err, qt.ErrorMatches, "Add: db.Save: .*")
	c.Assert(svc.Entries(), qt.HasLen, 1)
	c.Assert(svc.Entries()[0].Text, qt.Equals, "unsaved")
}

// ---------------------------------------------------------------------------
// Init / Destroy / Declare
// ---------------------------------------------------------------------------

func TestInit(t *testing.T) {
	c := qt.New(t)

	dir := c.TempDir()
	path, err := service.Init(dir)
	c.Assert(err, qt.IsNil)
	c.Assert(path, qt.Equals, filepath.Join(dir, locator.DBName))

	_, err = service.Init(dir)
	c.Assert(errors.Is(err, db.ErrExists), qt.IsTrue)

	// A nested directory may still get its own database.
	nested := filepath.Join(dir, "nested")
	c.Assert(os.MkdirAll(nested, 0o755), qt.IsNil)
	_, err = service.Init(nested)
	c.Assert(err, qt.IsNil)

	declared, err := service.Declare(nested)
	c.Assert(err, qt.IsNil)
	c.Assert(declared, qt.Equals, filepath.Join(nested, locator.DBName))
}

func TestDestroy(t *testing.T) {
	c := qt.New(t)

	dir := seeded(c, "a")
	path, err := service.Destroy(dir)
	c.Assert(err, qt.IsNil)
	_, statErr := os.Stat(path)
	c.Assert(os.IsNotExist(statErr), qt.IsTrue)

	_, err = service.Destroy(dir)
	c.Assert(errors.Is(err, os.ErrNotExist), qt.IsTrue)
}

func TestDeclare_DoesNotCreate(t *testing.T) {
	c := qt.New(t)

	dir := c.TempDir()
	path, err := service.Declare(dir)
	c.Assert(err, qt.IsNil)
	if path != filepath.Join(dir, locator.DBName) {
		c.Skip("a database exists in an ancestor of the temp dir")
	}
	_, statErr := os.Stat(path)
	c.Assert(os.IsNotExist(statErr), qt.IsTrue)
}

// ---------------------------------------------------------------------------
// Export
// ---------------------------------------------------------------------------

func TestExport(t *testing.T) {
	c := qt.New(t)

	dir := seeded(c, "a", "b")
	svc := openIn(c, dir)
	_, err := svc.Toggle(1)
	c.Assert(err, qt.IsNil)

	c.Run("markdown is the default", func(c *qt.C) {
		out, err := svc.Export("")
		c.Assert(err, qt.IsNil)
		c.Assert(out, qt.Contains, "- [x] a\n- [ ] b\n")
	})

	c.Run("json", func(c *qt.C) {
		out, err := svc.Export("json")
		c.Assert(err, qt.IsNil)
		var doc struct {
			Database string
			Stats    struct{ Total, Done, Open int }
			Entries  []struct {
				Index int
				Text  string
				Done  bool
			}
		}
		c.Assert(json.Unmarshal([]byte(out), &doc), qt.IsNil)
		c.Assert(doc.Database, qt.Equals, svc.Path)
		c.Assert(doc.Stats.Total, qt.Equals, 2)
		c.Assert(doc.Stats.Done, qt.Equals, 1)
		c.Assert(doc.Entries, qt.HasLen, 2)
		c.Assert(doc.Entries[1].Index, qt.Equals, 2)
		c.Assert(doc.Entries[1].Text, qt.Equals, "b")
	})

	c.Run("text", func(c *qt.C) {
		out, err := svc.Export("text")
		c.Assert(err, qt.IsNil)
		c.Assert(out, qt.Equals, "1 [x]: a\n2 [ ]: b\n")
	})

	c.Run("unknown format", func(c *qt.C) {
		_, err := svc.Export("pdf")
		c.Assert(err, qt.ErrorMatches, `Export: unknown format "pdf".*`)
	})
}

func TestExport_Idempotent(t *testing.T) {
	c := qt.New(t)

	dir := seeded(c, "a", "b")
	first, err := openIn(c, dir).Export("text")
	c.Assert(err, qt.IsNil)
	second, err := openIn(c, dir).Export("text")
	c.Assert(err, qt.IsNil)
	c.Assert(second, qt.Equals, first)
	c.Assert(strings.Count(first, "\n"), qt.Equals, 2)
}

func TestExportWith_Redact(t *testing.T) {
	c := qt.New(t)

	dir := seeded(c, "rotate ghp_abcdef123456", "ping int-42 owner")
	c.Assert(os.WriteFile(filepath.Join(dir, ".todoignore"), []byte("int-[0-9]+\n"), 0o600), qt.IsNil)
	svc := openIn(c, dir)

	out, err := svc.ExportWith("text", true)
	c.Assert(err, qt.IsNil)
	c.Assert(out, qt.Equals, "1 [ ]: rotate [REDACTED]\n2 [ ]: ping [REDACTED] owner\n")

	c.Run("stored text is untouched", func(c *qt.C) {
		c.Assert(textsIn(c, dir), qt.DeepEquals, []string{"rotate ghp_abcdef123456", "ping int-42 owner"})
	})
}
