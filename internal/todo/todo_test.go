package todo_test

import (
	"errors"
	"testing"
	"time"

	qt "github.com/frankban/quicktest"

	"github.com/go-ports/todovault/internal/db"
	"github.com/go-ports/todovault/internal/models"
	"github.com/go-ports/todovault/internal/todo"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

var base = time.Date(2024, 1, 15, 8, 0, 0, 0, time.UTC)

// listOf builds a list whose entries are created one minute apart.
func listOf(texts ...string) *todo.List {
	entries := make([]models.Entry, len(texts))
	for i, s := range texts {
		entries[i] = models.Entry{Text: s, CreatedAt: base.Add(time.Duration(i) * time.Minute)}
	}
	return todo.New(entries)
}

func texts(l *todo.List) []string {
	out := make([]string, 0, l.Len())
	for _, e := range l.Entries() {
		out = append(out, e.Text)
	}
	return out
}

// ---------------------------------------------------------------------------
// New / Entries
// ---------------------------------------------------------------------------

func TestNew_CopiesInput(t *testing.T) {
	c := qt.New(t)

	in := []models.Entry{{Text: "a"}}
	l := todo.New(in)
	in[0].Text = "changed"
	c.Assert(texts(l), qt.DeepEquals, []string{"a"})

	out := l.Entries()
	out[0].Text = "changed"
	c.Assert(texts(l), qt.DeepEquals, []string{"a"})
}

func TestGet(t *testing.T) {
	c := qt.New(t)

	l := listOf("a", "b")
	e, err := l.Get(2)
	c.Assert(err, qt.IsNil)
	c.Assert(e.Text, qt.Equals, "b")

	_, err = l.Get(3)
	c.Assert(err, qt.Equals, todo.ErrNoItem)
}

// ---------------------------------------------------------------------------
// Insert
// ---------------------------------------------------------------------------

func TestInsert_HappyPath(t *testing.T) {
	c := qt.New(t)

	var l todo.List
	e, err := l.Insert("write tests")
	c.Assert(err, qt.IsNil)
	c.Assert(e.Text, qt.Equals, "write tests")
	c.Assert(e.Done, qt.IsFalse)
	c.Assert(e.CreatedAt.IsZero(), qt.IsFalse)

	_, err = l.Insert("ship it")
	c.Assert(err, qt.IsNil)
	c.Assert(texts(&l), qt.DeepEquals, []string{"write tests", "ship it"})
}

func TestInsert_FailurePath(t *testing.T) {
	c := qt.New(t)

	cases := []struct {
		name string
		text string
		want error
	}{
		{"empty", "", todo.ErrEmptyText},
		{"whitespace only", "  \t ", todo.ErrEmptyText},
		{"key-value separator", "a" + db.KeyValSeparator + "b", todo.ErrReservedText},
		{"entry separator", db.EntrySeparator, todo.ErrReservedText},
	}

	for _, tc := range cases {
		c.Run(tc.name, func(c *qt.C) {
			l := listOf("x")
			_, err := l.Insert(tc.text)
			c.Assert(errors.Is(err, tc.want), qt.IsTrue)
			c.Assert(l.Len(), qt.Equals, 1)
		})
	}
}

// ---------------------------------------------------------------------------
// Delete
// ---------------------------------------------------------------------------

func TestDelete_HappyPath(t *testing.T) {
	c := qt.New(t)

	l := listOf("a", "b", "c")
	e, err := l.Delete(2)
	c.Assert(err, qt.IsNil)
	c.Assert(e.Text, qt.Equals, "b")
	c.Assert(texts(l), qt.DeepEquals, []string{"a", "c"})
}

func TestDelete_OutOfRange(t *testing.T) {
	c := qt.New(t)

	for _, pos := range []int{0, -1, 4, 100} {
		l := listOf("a", "b", "c")
		_, err := l.Delete(pos)
		c.Assert(err, qt.Equals, todo.ErrNoItem, qt.Commentf("pos %d", pos))
		c.Assert(err.Error(), qt.Equals, "no item found")
		c.Assert(texts(l), qt.DeepEquals, []string{"a", "b", "c"})
	}
}

// ---------------------------------------------------------------------------
// Toggle
// ---------------------------------------------------------------------------

func TestToggle_HappyPath(t *testing.T) {
	c := qt.New(t)

	l := listOf("a", "b")
	e, err := l.Toggle(2)
	c.Assert(err, qt.IsNil)
	c.Assert(e.Done, qt.IsTrue)

	e, err = l.Toggle(2)
	c.Assert(err, qt.IsNil)
	c.Assert(e.Done, qt.IsFalse)
}

func TestToggle_ClampsIndex(t *testing.T) {
	c := qt.New(t)

	l := listOf("a", "b", "c")
	e, err := l.Toggle(99)
	c.Assert(err, qt.IsNil)
	c.Assert(e.Text, qt.Equals, "c")

	e, err = l.Toggle(-5)
	c.Assert(err, qt.IsNil)
	c.Assert(e.Text, qt.Equals, "a")
	c.Assert(l.Entries()[0].Done, qt.IsTrue)
}

func TestToggle_EmptyList(t *testing.T) {
	c := qt.New(t)

	var l todo.List
	_, err := l.Toggle(1)
	c.Assert(err, qt.Equals, todo.ErrNoItem)
}

// ---------------------------------------------------------------------------
// Move
// ---------------------------------------------------------------------------

func TestMove_HappyPath(t *testing.T) {
	c := qt.New(t)

	cases := []struct {
		name    string
		pos, to int
		want    []string
		wantPos int
	}{
		{"first to last clamps destination", 1, 100, []string{"b", "c", "a"}, 3},
		{"last to first", 3, 1, []string{"c", "a", "b"}, 1},
		{"middle to last", 2, 3, []string{"a", "c", "b"}, 3},
		{"same position", 2, 2, []string{"a", "b", "c"}, 2},
		{"out of range source clamps", 50, 1, []string{"c", "a", "b"}, 1},
		{"negative destination clamps", 3, -4, []string{"c", "a", "b"}, 1},
	}

	for _, tc := range cases {
		c.Run(tc.name, func(c *qt.C) {
			l := listOf("a", "b", "c")
			got, err := l.Move(tc.pos, tc.to)
			c.Assert(err, qt.IsNil)
			c.Assert(got, qt.Equals, tc.wantPos)
			c.Assert(texts(l), qt.DeepEquals, tc.want)
		})
	}
}

func TestMove_EmptyList(t *testing.T) {
	c := qt.New(t)

	var l todo.List
	_, err := l.Move(1, 2)
	c.Assert(err, qt.Equals, todo.ErrNoItem)
}

// ---------------------------------------------------------------------------
// Shift
// ---------------------------------------------------------------------------

func TestShift_HappyPath(t *testing.T) {
	c := qt.New(t)

	cases := []struct {
		name       string
		pos, shift int
		want       []string
		wantPos    int
	}{
		{"last forward wraps to first", 3, 1, []string{"c", "a", "b"}, 1},
		{"first forward", 1, 1, []string{"b", "a", "c"}, 2},
		{"first backward wraps to last", 1, -1, []string{"b", "c", "a"}, 3},
		{"full lap is a no-op", 2, 3, []string{"a", "b", "c"}, 2},
		{"zero shift", 2, 0, []string{"a", "b", "c"}, 2},
		{"out of range index clamps", 9, 1, []string{"c", "a", "b"}, 1},
	}

	for _, tc := range cases {
		c.Run(tc.name, func(c *qt.C) {
			l := listOf("a", "b", "c")
			got, err := l.Shift(tc.pos, tc.shift)
			c.Assert(err, qt.IsNil)
			c.Assert(got, qt.Equals, tc.wantPos)
			c.Assert(texts(l), qt.DeepEquals, tc.want)
		})
	}
}

func TestShift_EmptyList(t *testing.T) {
	c := qt.New(t)

	var l todo.List
	_, err := l.Shift(1, 1)
	c.Assert(err, qt.Equals, todo.ErrNoItem)
}

// ---------------------------------------------------------------------------
// OrderAlpha
// ---------------------------------------------------------------------------

func TestOrderAlpha(t *testing.T) {
	c := qt.New(t)

	cases := []struct {
		name            string
		in              []string
		reverse, strict bool
		want            []string
	}{
		{"case-insensitive ascending", []string{"banana", "Apple", "cherry"}, false, false, []string{"Apple", "banana", "cherry"}},
		{"byte order ascending", []string{"banana", "Apple", "cherry"}, false, true, []string{"Apple", "banana", "cherry"}},
		{"byte order puts uppercase first", []string{"b", "B", "a"}, false, true, []string{"B", "a", "b"}},
		{"case-insensitive keeps ties stable", []string{"b", "B", "a"}, false, false, []string{"a", "b", "B"}},
		{"case-insensitive descending", []string{"banana", "Apple", "cherry"}, true, false, []string{"cherry", "banana", "Apple"}},
		{"descending keeps ties stable", []string{"b", "B", "a"}, true, false, []string{"b", "B", "a"}},
		{"byte order descending", []string{"b", "B", "a"}, true, true, []string{"b", "a", "B"}},
	}

	for _, tc := range cases {
		c.Run(tc.name, func(c *qt.C) {
			l := listOf(tc.in...)
			l.OrderAlpha(tc.reverse, tc.strict)
			c.Assert(texts(l), qt.DeepEquals, tc.want)
		})
	}
}

// ---------------------------------------------------------------------------
// OrderDate
// ---------------------------------------------------------------------------

func TestOrderDate(t *testing.T) {
	c := qt.New(t)

	entries := []models.Entry{
		{Text: "newest", CreatedAt: base.Add(2 * time.Hour)},
		{Text: "oldest", CreatedAt: base},
		{Text: "tie-1", CreatedAt: base.Add(time.Hour)},
		{Text: "tie-2", CreatedAt: base.Add(time.Hour)},
		{Text: "micro", CreatedAt: base.Add(time.Microsecond)},
	}

	c.Run("ascending", func(c *qt.C) {
		l := todo.New(entries)
		l.OrderDate(false)
		c.Assert(texts(l), qt.DeepEquals, []string{"oldest", "micro", "tie-1", "tie-2", "newest"})
	})

	c.Run("descending", func(c *qt.C) {
		l := todo.New(entries)
		l.OrderDate(true)
		c.Assert(texts(l), qt.DeepEquals, []string{"newest", "tie-1", "tie-2", "micro", "oldest"})
	})
}

// ---------------------------------------------------------------------------
// Clear / Stats
// ---------------------------------------------------------------------------

func TestClear(t *testing.T) {
	c := qt.New(t)

	l := listOf("a", "b")
	l.Clear()
	c.Assert(l.Len(), qt.Equals, 0)
	c.Assert(l.Entries(), qt.HasLen, 0)

	_, err := l.Insert("again")
	c.Assert(err, qt.IsNil)
	c.Assert(l.Len(), qt.Equals, 1)
}

func TestStats(t *testing.T) {
	c := qt.New(t)

	l := listOf("a", "b", "c")
	_, err := l.Toggle(1)
	c.Assert(err, qt.IsNil)
	c.Assert(l.Stats(), qt.Equals, models.Stats{Total: 3, Done: 1, Open: 2})
}
