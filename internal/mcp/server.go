// Package mcp provides the stdio MCP server exposing the todo list as tools
// for coding agents.
package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/go-ports/todovault/internal/buildinfo"
	"github.com/go-ports/todovault/internal/config"
	"github.com/go-ports/todovault/internal/service"
	"github.com/go-ports/todovault/internal/todo"
)

const listDescription = `List the todo items for the current project. Items are numbered from 1; use these numbers for todo_toggle, todo_delete and todo_move.`

const addDescription = `Add a todo item to the end of the current project's list. Use it to record follow-up work you discover but will not do now. Secrets in the text are replaced with [REDACTED].`

const toggleDescription = `Toggle the done state of a todo item. Out-of-range positions act on the nearest item.`

const deleteDescription = `Delete a todo item. The position must address an existing item.`

const moveDescription = `Move a todo item to a new position. Both positions are clamped to the list.`

const clearDescription = `Remove every item from the current project's list.`

// Server handles tool calls against the database that applies to Dir.
// Every call reloads the file and rewrites it after a mutation; calls are
// serialized so two tools never interleave within one process.
type Server struct {
	Dir    string
	Config *config.Config

	mu sync.Mutex
}

// NewServer creates and registers all todo tools on a new MCP server.
// It is intentionally separate from Serve so that tests and other callers can
// obtain a fully configured server without committing to the stdio transport.
func NewServer(dir string, cfg *config.Config) *mcpserver.MCPServer {
	s := mcpserver.NewMCPServer("todovault", buildinfo.Version)
	registerTools(s, &Server{Dir: dir, Config: cfg})
	return s
}

// Serve starts the stdio MCP server, blocking until stdin closes.
func Serve(_ context.Context, dir string) error {
	cfg, err := config.LoadDefault()
	if err != nil {
		return fmt.Errorf("mcp: load config: %w", err)
	}
	return mcpserver.ServeStdio(NewServer(dir, cfg))
}

// registerTools wires all todo tools into the server.
func registerTools(s *mcpserver.MCPServer, srv *Server) {
	s.AddTool(mcp.NewTool("todo_list",
		mcp.WithDescription(listDescription),
	), srv.handleList)

	s.AddTool(mcp.NewTool("todo_add",
		mcp.WithDescription(addDescription),
		mcp.WithString("text",
			mcp.Description("Task description."),
			mcp.Required(),
		),
	), srv.handleAdd)

	s.AddTool(mcp.NewTool("todo_toggle",
		mcp.WithDescription(toggleDescription),
		mcp.WithNumber("index",
			mcp.Description("1-based item position."),
			mcp.Required(),
		),
	), srv.handleToggle)

	s.AddTool(mcp.NewTool("todo_delete",
		mcp.WithDescription(deleteDescription),
		mcp.WithNumber("index",
			mcp.Description("1-based item position."),
			mcp.Required(),
		),
	), srv.handleDelete)

	s.AddTool(mcp.NewTool("todo_move",
		mcp.WithDescription(moveDescription),
		mcp.WithNumber("index",
			mcp.Description("1-based position of the item to move."),
			mcp.Required(),
		),
		mcp.WithNumber("to",
			mcp.Description("1-based destination position."),
			mcp.Required(),
		),
	), srv.handleMove)

	s.AddTool(mcp.NewTool("todo_clear",
		mcp.WithDescription(clearDescription),
	), srv.handleClear)
}

// ---------------------------------------------------------------------------
// Tool handlers
// ---------------------------------------------------------------------------

// withService opens the database, runs fn and converts its outcome into a
// tool result. Domain errors are reported as tool errors, not protocol errors.
func (srv *Server) withService(fn func(svc *service.Service) (any, error)) (*mcp.CallToolResult, error) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	svc, err := service.OpenWithConfig(srv.Dir, srv.Config)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	v, err := fn(svc)
	if err != nil {
		return mcp.NewToolResultError(describe(err)), nil
	}
	return jsonResult(v)
}

func (srv *Server) handleList(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return srv.withService(func(svc *service.Service) (any, error) {
		return listing(svc), nil
	})
}

func (srv *Server) handleAdd(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text := req.GetString("text", "")
	return srv.withService(func(svc *service.Service) (any, error) {
		r, err := svc.Redactor()
		if err != nil {
			return nil, err
		}
		text = r.Redact(text)
		if _, err := svc.Add(text); err != nil {
			return nil, err
		}
		return map[string]any{"added": text, "index": svc.Stats().Total, "database": svc.Path}, nil
	})
}

func (srv *Server) handleToggle(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	pos := req.GetInt("index", 0)
	return srv.withService(func(svc *service.Service) (any, error) {
		e, err := svc.Toggle(pos)
		if err != nil {
			return nil, err
		}
		return map[string]any{"text": e.Text, "done": e.Done}, nil
	})
}

func (srv *Server) handleDelete(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	pos := req.GetInt("index", 0)
	return srv.withService(func(svc *service.Service) (any, error) {
		e, err := svc.Delete(pos)
		if err != nil {
			return nil, err
		}
		return map[string]any{"deleted": e.Text}, nil
	})
}

func (srv *Server) handleMove(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	pos := req.GetInt("index", 0)
	to := req.GetInt("to", 0)
	return srv.withService(func(svc *service.Service) (any, error) {
		got, err := svc.Move(pos, to)
		if err != nil {
			return nil, err
		}
		return map[string]any{"index": got, "items": listing(svc)["items"]}, nil
	})
}

func (srv *Server) handleClear(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return srv.withService(func(svc *service.Service) (any, error) {
		if err := svc.Clear(); err != nil {
			return nil, err
		}
		return map[string]any{"cleared": true, "database": svc.Path}, nil
	})
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func listing(svc *service.Service) map[string]any {
	entries := svc.Entries()
	items := make([]map[string]any, 0, len(entries))
	for i, e := range entries {
		items = append(items, map[string]any{
			"index": i + 1,
			"text":  e.Text,
			"done":  e.Done,
			"date":  formatDate(e.CreatedAt),
		})
	}
	return map[string]any{
		"database": svc.Path,
		"stats":    svc.Stats(),
		"items":    items,
	}
}

// describe maps engine errors to short messages for agents.
func describe(err error) string {
	switch {
	case errors.Is(err, todo.ErrNoItem):
		return "no item found at that position"
	case errors.Is(err, todo.ErrEmptyText):
		return "text must not be empty"
	case errors.Is(err, todo.ErrReservedText):
		return "text contains a reserved database token"
	}
	return err.Error()
}

// formatDate renders a creation time as "Jan 02"; the zero time is empty.
func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format("Jan 02")
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(string(b)), nil
}
