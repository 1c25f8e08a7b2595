// Package mcp exposes the task store as Model Context Protocol tools.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"taskpad/internal/app"
	"taskpad/internal/model"
)

// NewServer creates an MCP server whose tools operate on a.
func NewServer(a *app.App, version string) *server.MCPServer {
	s := server.NewMCPServer("taskpad", version)

	s.AddTool(mcp.NewTool("list_tasks",
		mcp.WithDescription("List all tasks in insertion order."),
	), listTasksHandler(a))

	s.AddTool(mcp.NewTool("add_task",
		mcp.WithDescription("Create a task."),
		mcp.WithString("title", mcp.Description("Task title"), mcp.Required()),
		mcp.WithString("priority", mcp.Description("Priority (high|medium|low, defaults to medium)")),
		mcp.WithString("due_date", mcp.Description("Due date (YYYY-MM-DD or RFC 3339)")),
	), addTaskHandler(a))

	s.AddTool(mcp.NewTool("edit_task",
		mcp.WithDescription("Edit the title, priority or due date of a task. An empty due_date clears it."),
		mcp.WithString("id", mcp.Description("Task id"), mcp.Required()),
		mcp.WithString("title", mcp.Description("New title")),
		mcp.WithString("priority", mcp.Description("New priority (high|medium|low)")),
		mcp.WithString("due_date", mcp.Description("New due date (YYYY-MM-DD or RFC 3339)")),
	), editTaskHandler(a))

	s.AddTool(mcp.NewTool("remove_task",
		mcp.WithDescription("Delete a task."),
		mcp.WithString("id", mcp.Description("Task id"), mcp.Required()),
	), removeTaskHandler(a))

	return s
}

// Serve runs s over the given streams until ctx is cancelled or in is closed.
func Serve(ctx context.Context, s *server.MCPServer, in io.Reader, out io.Writer) error {
	return server.NewStdioServer(s).Listen(ctx, in, out)
}

func listTasksHandler(a *app.App) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		tasks := a.Tasks()
		if tasks == nil {
			tasks = []model.Task{}
		}
		data, err := json.Marshal(map[string]any{"tasks": tasks})
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return mcp.NewToolResultText(string(data)), nil
	}
}

func addTaskHandler(a *app.App) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		in := app.NewTask{Title: mcp.ParseString(request, "title", "")}

		p, err := model.ParsePriority(mcp.ParseString(request, "priority", ""))
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		in.Priority = p

		if s := mcp.ParseString(request, "due_date", ""); s != "" {
			due, err := model.ParseDueDate(s)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			in.DueDate = &due
		}

		t, err := a.AddTask(ctx, in)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		data, err := json.Marshal(t)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return mcp.NewToolResultText(string(data)), nil
	}
}

func editTaskHandler(a *app.App) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id := mcp.ParseString(request, "id", "")

		d, err := a.BeginEdit(id)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		args, _ := request.Params.Arguments.(map[string]any)
		if title, ok := args["title"].(string); ok {
			d.Title = title
		}
		if s, ok := args["priority"].(string); ok && s != "" {
			p, err := model.ParsePriority(s)
			if err != nil {
				a.CancelEdit()
				return mcp.NewToolResultError(err.Error()), nil
			}
			d.Priority = p
		}
		if s, ok := args["due_date"].(string); ok {
			if s == "" {
				d.DueDate = nil
			} else {
				due, err := model.ParseDueDate(s)
				if err != nil {
					a.CancelEdit()
					return mcp.NewToolResultError(err.Error()), nil
				}
				d.DueDate = &due
			}
		}

		if err := a.SaveEdit(ctx, d); err != nil {
			a.CancelEdit()
			return mcp.NewToolResultError(err.Error()), nil
		}
		return mcp.NewToolResultText("Task updated successfully"), nil
	}
}

func removeTaskHandler(a *app.App) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id := mcp.ParseString(request, "id", "")

		removed, err := a.RemoveTask(ctx, id)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		if !removed {
			return mcp.NewToolResultError(fmt.Sprintf("%v: %s", app.ErrTaskNotFound, id)), nil
		}
		return mcp.NewToolResultText("Task removed successfully"), nil
	}
}
