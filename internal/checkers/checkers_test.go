package checkers_test

import (
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/go-ports/todovault/internal/checkers"
)

func TestJSONPathEquals(t *testing.T) {
	c := qt.New(t)

	doc := `{"database":"/p/.todo.db.txt","stats":{"total":2},"entries":[{"text":"a","done":true}]}`

	c.Assert(doc, checkers.JSONPathEquals("$.database"), "/p/.todo.db.txt")
	c.Assert([]byte(doc), checkers.JSONPathEquals("$.stats.total"), 2)
	c.Assert(doc, checkers.JSONPathEquals("$.entries[0].text"), "a")
	c.Assert(doc, checkers.JSONPathEquals("$.entries[0].done"), true)
	c.Assert(doc, qt.Not(checkers.JSONPathEquals("$.entries[0].text")), "b")
}
