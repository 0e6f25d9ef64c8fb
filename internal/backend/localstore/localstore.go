// Package localstore implements service.Service over the durable task file.
//
// Every operation reloads the collection from disk, applies its change, and
// rewrites the file if anything was mutated. There is no cache between
// calls: the file is the single source of truth, and between operations it
// is always a complete, valid snapshot. This reload-and-rewrite model is
// only safe for a single process; concurrent modification of the file by
// another process can lose updates.
package localstore

import (
	"context"
	"strings"
	"sync"
	"time"

	"tasklite/internal/service"
	"tasklite/internal/store"
	"tasklite/internal/task"
)

// Backend is the local-file implementation of service.Service.
type Backend struct {
	// mu serializes whole load/mutate/save sequences. Operations must
	// never interleave, even when the transport delivers calls
	// concurrently.
	mu  sync.Mutex
	st  *store.Store
	now func() time.Time
}

// New creates a backend over the given store.
func New(st *store.Store) *Backend {
	return &Backend{st: st, now: time.Now}
}

// AddTask implements service.Service.
func (b *Backend) AddTask(ctx context.Context, title string) (task.Task, error) {
	if strings.TrimSpace(title) == "" {
		return task.Task{}, service.ErrEmptyTitle
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	tasks, err := b.st.Load()
	if err != nil {
		return task.Task{}, err
	}

	t := task.Task{
		ID:        task.NextID(tasks),
		Title:     title,
		Completed: false,
		CreatedAt: b.now().UTC(),
	}
	tasks = append(tasks, t)

	if err := b.st.Save(tasks); err != nil {
		return task.Task{}, err
	}
	return t, nil
}

// ListTasks implements service.Service. Load only, no mutation.
func (b *Backend) ListTasks(ctx context.Context) ([]task.Task, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.st.Load()
}

// CompleteTask implements service.Service.
func (b *Backend) CompleteTask(ctx context.Context, id int) (service.CompleteResult, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	tasks, err := b.st.Load()
	if err != nil {
		return service.CompleteResult{}, err
	}

	t := task.Find(tasks, id)
	if t == nil {
		return service.CompleteResult{}, &service.NotFoundError{ID: id}
	}
	if t.Completed {
		// Idempotent no-op: report the outcome, leave the file untouched.
		return service.CompleteResult{Task: *t, AlreadyCompleted: true}, nil
	}

	t.Completed = true
	if err := b.st.Save(tasks); err != nil {
		return service.CompleteResult{}, err
	}
	return service.CompleteResult{Task: *t}, nil
}

// Snapshot implements service.Service. The returned text uses the same
// encoder as the durable file, so between operations the two are identical.
func (b *Backend) Snapshot(ctx context.Context) (string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	tasks, err := b.st.Load()
	if err != nil {
		return "", err
	}
	enc, err := task.EncodeCollection(tasks)
	if err != nil {
		return "", err
	}
	return string(enc), nil
}
