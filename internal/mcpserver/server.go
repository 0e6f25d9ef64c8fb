// Package mcpserver exposes the task store over the Model Context Protocol.
//
// This is the composition root for the MCP surface: it creates the server
// instance and registers the three task tools and the task_list resource.
// No task logic lives here — handlers delegate to service.Service, and
// results are formatted with the same internal/output formatters the CLI
// uses.
package mcpserver

import (
	"context"
	"io"

	"github.com/mark3labs/mcp-go/server"

	"tasklite/internal/service"
)

// Name is the server name announced during MCP initialization.
const Name = "tasklite"

// Version is the server version announced during MCP initialization.
// Set at build time.
var Version = "0.1.0"

// New creates the MCP server with all tools and resources registered.
func New(svc service.Service) *server.MCPServer {
	s := server.NewMCPServer(
		Name,
		Version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, true),
		server.WithRecovery(),
		server.WithInstructions("A minimal persisted task store. Use add_task, "+
			"list_tasks and complete_task to manage tasks; read tasks://list "+
			"for the raw collection."),
	)

	addTool := NewAddTaskTool(svc)
	s.AddTool(addTool.Definition(), addTool.Handle)

	listTool := NewListTasksTool(svc)
	s.AddTool(listTool.Definition(), listTool.Handle)

	completeTool := NewCompleteTaskTool(svc)
	s.AddTool(completeTool.Definition(), completeTool.Handle)

	taskList := NewTaskListResource(svc)
	s.AddResource(taskList.Definition(), taskList.Handle)

	return s
}

// Serve runs the server on the stdio transport until ctx is cancelled or
// the stream closes. The transport handles one request at a time; the
// backend's own locking covers anything beyond that.
func Serve(ctx context.Context, s *server.MCPServer, stdin io.Reader, stdout io.Writer) error {
	return server.NewStdioServer(s).Listen(ctx, stdin, stdout)
}
