// Package testutil provides testing utilities.
package testutil

import (
	"context"
	"strings"
	"sync"
	"time"

	"tasklite/internal/service"
	"tasklite/internal/task"
)

// BaseTime is the creation timestamp of the first task added to a
// FakeService. Fixed so command output is deterministic in tests.
var BaseTime = time.Date(2026, 1, 2, 15, 4, 5, 0, time.UTC)

// FakeService is an in-memory implementation of service.Service for testing.
type FakeService struct {
	mu    sync.RWMutex
	tasks []task.Task

	// Error injection for testing
	AddTaskErr      error
	ListTasksErr    error
	CompleteTaskErr error
	SnapshotErr     error
}

// NewFakeService creates an empty FakeService.
func NewFakeService() *FakeService {
	return &FakeService{}
}

// SeedTask adds a task directly, bypassing AddTask. The creation timestamp
// is BaseTime plus one minute per existing task.
func (f *FakeService) SeedTask(id int, title string, completed bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tasks = append(f.tasks, task.Task{
		ID:        id,
		Title:     title,
		Completed: completed,
		CreatedAt: BaseTime.Add(time.Duration(len(f.tasks)) * time.Minute),
	})
}

// Tasks returns a copy of the current collection.
func (f *FakeService) Tasks() []task.Task {
	f.mu.RLock()
	defer f.mu.RUnlock()
	out := make([]task.Task, len(f.tasks))
	copy(out, f.tasks)
	return out
}

// AddTask implements service.Service.
func (f *FakeService) AddTask(ctx context.Context, title string) (task.Task, error) {
	if f.AddTaskErr != nil {
		return task.Task{}, f.AddTaskErr
	}
	if strings.TrimSpace(title) == "" {
		return task.Task{}, service.ErrEmptyTitle
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	t := task.Task{
		ID:        task.NextID(f.tasks),
		Title:     title,
		CreatedAt: BaseTime.Add(time.Duration(len(f.tasks)) * time.Minute),
	}
	f.tasks = append(f.tasks, t)
	return t, nil
}

// ListTasks implements service.Service.
func (f *FakeService) ListTasks(ctx context.Context) ([]task.Task, error) {
	if f.ListTasksErr != nil {
		return nil, f.ListTasksErr
	}
	return f.Tasks(), nil
}

// CompleteTask implements service.Service.
func (f *FakeService) CompleteTask(ctx context.Context, id int) (service.CompleteResult, error) {
	if f.CompleteTaskErr != nil {
		return service.CompleteResult{}, f.CompleteTaskErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	t := task.Find(f.tasks, id)
	if t == nil {
		return service.CompleteResult{}, &service.NotFoundError{ID: id}
	}
	if t.Completed {
		return service.CompleteResult{Task: *t, AlreadyCompleted: true}, nil
	}
	t.Completed = true
	return service.CompleteResult{Task: *t}, nil
}

// Snapshot implements service.Service.
func (f *FakeService) Snapshot(ctx context.Context) (string, error) {
	if f.SnapshotErr != nil {
		return "", f.SnapshotErr
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	enc, err := task.EncodeCollection(f.tasks)
	if err != nil {
		return "", err
	}
	return string(enc), nil
}
