// Package checkers provides quicktest checkers shared by the test suites.
package checkers

import (
	"encoding/json"
	"fmt"

	qt "github.com/frankban/quicktest"
	"github.com/google/go-cmp/cmp"
	"github.com/yalp/jsonpath"
)

type jsonPathChecker struct {
	path string
}

// JSONPathEquals returns a checker that decodes a JSON document (string or
// []byte), selects the value at the given JSONPath expression and compares
// it with the wanted value. Integer wants are compared as JSON numbers.
//
//	c.Assert(data, checkers.JSONPathEquals("$.mcpServers.todovault.command"), "todo")
func JSONPathEquals(path string) qt.Checker {
	return &jsonPathChecker{path: path}
}

// ArgNames implements qt.Checker.
func (*jsonPathChecker) ArgNames() []string {
	return []string{"got", "want"}
}

// Check implements qt.Checker.
func (c *jsonPathChecker) Check(got any, args []any, note func(key string, value any)) error {
	var data []byte
	switch v := got.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return qt.BadCheckf("first argument is not a JSON string or []byte")
	}

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("cannot decode JSON: %w", err)
	}
	note("path", c.path)
	value, err := jsonpath.Read(doc, c.path)
	if err != nil {
		return err
	}

	want := args[0]
	if n, ok := want.(int); ok {
		want = float64(n)
	}
	if !cmp.Equal(value, want) {
		note("value", value)
		note("diff (-got +want)", qt.Unquoted(cmp.Diff(value, want)))
		return fmt.Errorf("value at path does not match")
	}
	return nil
}
