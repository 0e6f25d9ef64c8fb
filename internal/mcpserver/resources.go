package mcpserver

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"tasklite/internal/service"
)

// TaskListURI is the logical address of the read-only snapshot view.
const TaskListURI = "tasks://list"

// TaskListResource exposes the raw task collection, encoded exactly like
// the durable file. Read-only; repeated reads without an intervening
// mutation return identical content.
type TaskListResource struct {
	svc service.Service
}

// NewTaskListResource creates the task_list resource.
func NewTaskListResource(svc service.Service) *TaskListResource {
	return &TaskListResource{svc: svc}
}

// Definition returns the MCP resource definition.
func (r *TaskListResource) Definition() mcp.Resource {
	return mcp.NewResource(TaskListURI, "task_list",
		mcp.WithResourceDescription("The full task collection in its durable "+
			"JSON encoding, in creation order."),
		mcp.WithMIMEType("application/json"),
	)
}

// Handle serves a read of the resource.
func (r *TaskListResource) Handle(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	enc, err := r.svc.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      TaskListURI,
			MIMEType: "application/json",
			Text:     enc,
		},
	}, nil
}
