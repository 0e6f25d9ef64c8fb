package mcpserver

import (
	"context"
	"errors"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"tasklite/internal/output"
	"tasklite/internal/service"
)

// AddTaskTool creates a new task.
type AddTaskTool struct {
	svc service.Service
}

// NewAddTaskTool creates the add_task tool.
func NewAddTaskTool(svc service.Service) *AddTaskTool {
	return &AddTaskTool{svc: svc}
}

// Definition returns the MCP tool definition.
func (t *AddTaskTool) Definition() mcp.Tool {
	return mcp.NewTool("add_task",
		mcp.WithDescription("Create a new task with the given title."),
		mcp.WithString("title",
			mcp.Required(),
			mcp.Description("Task title; must be non-empty."),
		),
	)
}

// Handle executes add_task. Domain errors come back as flagged error
// results; storage failures are returned as Go errors to the transport.
func (t *AddTaskTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	title, err := req.RequireString("title")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	created, err := t.svc.AddTask(ctx, title)
	if err != nil {
		if errors.Is(err, service.ErrEmptyTitle) {
			return mcp.NewToolResultError(service.ErrEmptyTitle.Error()), nil
		}
		return nil, err
	}
	return mcp.NewToolResultText(output.AddedMessage(created)), nil
}

// ListTasksTool returns the human-readable task listing.
type ListTasksTool struct {
	svc service.Service
}

// NewListTasksTool creates the list_tasks tool.
func NewListTasksTool(svc service.Service) *ListTasksTool {
	return &ListTasksTool{svc: svc}
}

// Definition returns the MCP tool definition.
func (t *ListTasksTool) Definition() mcp.Tool {
	return mcp.NewTool("list_tasks",
		mcp.WithDescription("List all tasks in creation order with id, title, "+
			"status and creation time."),
	)
}

// Handle executes list_tasks.
func (t *ListTasksTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	tasks, err := t.svc.ListTasks(ctx)
	if err != nil {
		return nil, err
	}

	var sb strings.Builder
	output.FormatTaskList(&sb, tasks)
	return mcp.NewToolResultText(strings.TrimRight(sb.String(), "\n")), nil
}

// CompleteTaskTool marks a task as completed.
type CompleteTaskTool struct {
	svc service.Service
}

// NewCompleteTaskTool creates the complete_task tool.
func NewCompleteTaskTool(svc service.Service) *CompleteTaskTool {
	return &CompleteTaskTool{svc: svc}
}

// Definition returns the MCP tool definition.
func (t *CompleteTaskTool) Definition() mcp.Tool {
	return mcp.NewTool("complete_task",
		mcp.WithDescription("Mark the task with the given id as completed. "+
			"Completing an already-completed task is a no-op."),
		mcp.WithNumber("id",
			mcp.Required(),
			mcp.Description("Id of the task to complete."),
		),
	)
}

// Handle executes complete_task.
func (t *CompleteTaskTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireInt("id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	res, err := t.svc.CompleteTask(ctx, id)
	if err != nil {
		var nf *service.NotFoundError
		if errors.As(err, &nf) {
			return mcp.NewToolResultError(nf.Error()), nil
		}
		return nil, err
	}
	if res.AlreadyCompleted {
		return mcp.NewToolResultText(output.AlreadyCompletedMessage(res.Task)), nil
	}
	return mcp.NewToolResultText(output.CompletedMessage(res.Task)), nil
}
