// Package service defines the backend-agnostic interface for task operations.
package service

import (
	"errors"
	"fmt"

	"tasklite/internal/task"
)

// ErrEmptyTitle is returned by AddTask when the title is empty or blank.
var ErrEmptyTitle = errors.New("title required")

// CompleteResult reports the outcome of a CompleteTask call.
type CompleteResult struct {
	// Task is the matched task, after any state change.
	Task task.Task

	// AlreadyCompleted is true when the task was completed before the
	// call and nothing was written.
	AlreadyCompleted bool
}

// NotFoundError reports a CompleteTask call for an id that does not exist.
type NotFoundError struct {
	ID int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("task not found: %d", e.ID)
}
