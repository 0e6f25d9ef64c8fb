// Package service defines the backend-agnostic interface for task operations.
package service

import (
	"context"

	"tasklite/internal/task"
)

// Service defines the interface for task store operations.
// Both the CLI commands and the MCP tools go through this interface;
// neither touches the durable file directly.
type Service interface {
	// AddTask creates a new task with the given title and returns it.
	// Titles are expected to be validated by the caller; a blank title
	// is still rejected with ErrEmptyTitle.
	AddTask(ctx context.Context, title string) (task.Task, error)

	// ListTasks returns all tasks in creation order.
	ListTasks(ctx context.Context) ([]task.Task, error)

	// CompleteTask marks the task with the given id as completed.
	// Completing an already-completed task is a no-op reported via
	// CompleteResult.AlreadyCompleted. An unknown id returns *NotFoundError.
	CompleteTask(ctx context.Context, id int) (CompleteResult, error)

	// Snapshot returns the full collection in its canonical durable
	// encoding, including the empty-collection case ("[]").
	Snapshot(ctx context.Context) (string, error)
}
