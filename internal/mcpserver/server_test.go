package mcpserver_test

import (
	"context"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tasklite/internal/mcpserver"
	"tasklite/internal/testutil"
)

func callToolRequest(name string, args map[string]any) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Name = name
	req.Params.Arguments = args
	return req
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.NotNil(t, res)
	require.Len(t, res.Content, 1)
	tc, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok, "expected text content, got %T", res.Content[0])
	return tc.Text
}

func TestAddTaskTool(t *testing.T) {
	svc := testutil.NewFakeService()
	tool := mcpserver.NewAddTaskTool(svc)

	res, err := tool.Handle(context.Background(), callToolRequest("add_task", map[string]any{"title": "Buy milk"}))
	require.NoError(t, err)
	assert.False(t, res.IsError)
	assert.Equal(t, "added task 1: Buy milk", resultText(t, res))

	tasks := svc.Tasks()
	require.Len(t, tasks, 1)
	assert.Equal(t, "Buy milk", tasks[0].Title)
	assert.False(t, tasks[0].Completed)
}

func TestAddTaskTool_MissingTitle(t *testing.T) {
	svc := testutil.NewFakeService()
	tool := mcpserver.NewAddTaskTool(svc)

	res, err := tool.Handle(context.Background(), callToolRequest("add_task", map[string]any{}))
	require.NoError(t, err)
	assert.True(t, res.IsError)
}

func TestAddTaskTool_BlankTitle(t *testing.T) {
	svc := testutil.NewFakeService()
	tool := mcpserver.NewAddTaskTool(svc)

	res, err := tool.Handle(context.Background(), callToolRequest("add_task", map[string]any{"title": "   "}))
	require.NoError(t, err)
	assert.True(t, res.IsError)
	assert.Equal(t, "title required", resultText(t, res))
	assert.Empty(t, svc.Tasks())
}

func TestListTasksTool(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.SeedTask(1, "Buy milk", false)
	svc.SeedTask(2, "Ship report", true)

	tool := mcpserver.NewListTasksTool(svc)
	res, err := tool.Handle(context.Background(), callToolRequest("list_tasks", nil))
	require.NoError(t, err)
	assert.False(t, res.IsError)

	expected := "   1  pending  Buy milk  2026-01-02T15:04:05Z\n" +
		"   2  done     Ship report  2026-01-02T15:05:05Z"
	assert.Equal(t, expected, resultText(t, res))
}

func TestListTasksTool_Empty(t *testing.T) {
	svc := testutil.NewFakeService()

	tool := mcpserver.NewListTasksTool(svc)
	res, err := tool.Handle(context.Background(), callToolRequest("list_tasks", nil))
	require.NoError(t, err)
	assert.Equal(t, "no tasks found", resultText(t, res))
}

func TestCompleteTaskTool(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.SeedTask(1, "Buy milk", false)

	tool := mcpserver.NewCompleteTaskTool(svc)

	res, err := tool.Handle(context.Background(), callToolRequest("complete_task", map[string]any{"id": 1}))
	require.NoError(t, err)
	assert.False(t, res.IsError)
	assert.Equal(t, "completed task 1: Buy milk", resultText(t, res))

	// Second call is an idempotent no-op with a distinct outcome.
	res, err = tool.Handle(context.Background(), callToolRequest("complete_task", map[string]any{"id": 1}))
	require.NoError(t, err)
	assert.False(t, res.IsError)
	assert.Equal(t, "task 1 is already completed", resultText(t, res))
}

func TestCompleteTaskTool_JSONNumberArgument(t *testing.T) {
	// Arguments arrive as float64 after JSON decoding.
	svc := testutil.NewFakeService()
	svc.SeedTask(1, "Buy milk", false)

	tool := mcpserver.NewCompleteTaskTool(svc)
	res, err := tool.Handle(context.Background(), callToolRequest("complete_task", map[string]any{"id": float64(1)}))
	require.NoError(t, err)
	assert.Equal(t, "completed task 1: Buy milk", resultText(t, res))
}

func TestCompleteTaskTool_NotFound(t *testing.T) {
	svc := testutil.NewFakeService()

	tool := mcpserver.NewCompleteTaskTool(svc)
	res, err := tool.Handle(context.Background(), callToolRequest("complete_task", map[string]any{"id": 9}))
	require.NoError(t, err)
	assert.True(t, res.IsError)
	assert.Equal(t, "task not found: 9", resultText(t, res))
}

func TestCompleteTaskTool_MissingID(t *testing.T) {
	svc := testutil.NewFakeService()

	tool := mcpserver.NewCompleteTaskTool(svc)
	res, err := tool.Handle(context.Background(), callToolRequest("complete_task", map[string]any{}))
	require.NoError(t, err)
	assert.True(t, res.IsError)
}

func TestTaskListResource_Empty(t *testing.T) {
	svc := testutil.NewFakeService()

	res := mcpserver.NewTaskListResource(svc)
	req := mcp.ReadResourceRequest{}
	req.Params.URI = mcpserver.TaskListURI

	contents, err := res.Handle(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, contents, 1)

	tc, ok := contents[0].(mcp.TextResourceContents)
	require.True(t, ok)
	assert.Equal(t, mcpserver.TaskListURI, tc.URI)
	assert.Equal(t, "application/json", tc.MIMEType)
	// Raw empty collection, not a substitute message.
	assert.Equal(t, "[]\n", tc.Text)
}

func TestTaskListResource_MatchesSnapshot(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.SeedTask(1, "Buy milk", false)

	res := mcpserver.NewTaskListResource(svc)
	req := mcp.ReadResourceRequest{}
	req.Params.URI = mcpserver.TaskListURI

	first, err := res.Handle(context.Background(), req)
	require.NoError(t, err)
	second, err := res.Handle(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	snap, err := svc.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Equal(t, snap, first[0].(mcp.TextResourceContents).Text)
}

func TestToolDefinitions(t *testing.T) {
	svc := testutil.NewFakeService()

	assert.Equal(t, "add_task", mcpserver.NewAddTaskTool(svc).Definition().Name)
	assert.Equal(t, "list_tasks", mcpserver.NewListTasksTool(svc).Definition().Name)
	assert.Equal(t, "complete_task", mcpserver.NewCompleteTaskTool(svc).Definition().Name)
	assert.Equal(t, mcpserver.TaskListURI, mcpserver.NewTaskListResource(svc).Definition().URI)
}

func TestNewServerWires(t *testing.T) {
	s := mcpserver.New(testutil.NewFakeService())
	require.NotNil(t, s)
}
