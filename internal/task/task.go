// Package task defines the task record and the canonical encoding of the
// task collection as stored on disk.
package task

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Task represents a single persisted unit of work.
// All four fields are part of the durable file format; field order here is
// the key order in the encoded file.
type Task struct {
	ID        int       `json:"id"`
	Title     string    `json:"title"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"createdAt"`
}

// NextID returns the identifier for the next task: 1 for an empty
// collection, otherwise the maximum existing id plus one. Gaps in the id
// sequence are tolerated.
func NextID(tasks []Task) int {
	max := 0
	for _, t := range tasks {
		if t.ID > max {
			max = t.ID
		}
	}
	return max + 1
}

// Find returns a pointer to the task with the given id, or nil if no such
// task exists. Linear scan; collections are expected to stay small.
func Find(tasks []Task, id int) *Task {
	for i := range tasks {
		if tasks[i].ID == id {
			return &tasks[i]
		}
	}
	return nil
}

// EncodeCollection renders the collection in its canonical durable form:
// a pretty-printed JSON array with 2-space indentation and a trailing
// newline. An empty or nil collection encodes as "[]", never "null".
// Array order is semantically significant (creation order).
func EncodeCollection(tasks []Task) ([]byte, error) {
	if tasks == nil {
		tasks = []Task{}
	}
	b, err := json.MarshalIndent(tasks, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("task: encode collection: %w", err)
	}
	return append(b, '\n'), nil
}

// DecodeCollection parses a durable collection encoding. It is strict:
// unknown fields, type mismatches, trailing data, non-positive or duplicate
// ids, empty titles, and missing timestamps are all decode errors. Callers
// treat any error from here as corruption.
func DecodeCollection(data []byte) ([]Task, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var tasks []Task
	if err := dec.Decode(&tasks); err != nil {
		return nil, fmt.Errorf("task: decode collection: %w", err)
	}
	if dec.More() {
		return nil, fmt.Errorf("task: decode collection: trailing data after array")
	}

	seen := make(map[int]bool, len(tasks))
	for i, t := range tasks {
		if t.ID < 1 {
			return nil, fmt.Errorf("task: record %d: invalid id %d", i, t.ID)
		}
		if seen[t.ID] {
			return nil, fmt.Errorf("task: record %d: duplicate id %d", i, t.ID)
		}
		seen[t.ID] = true
		if strings.TrimSpace(t.Title) == "" {
			return nil, fmt.Errorf("task: record %d: empty title", i)
		}
		if t.CreatedAt.IsZero() {
			return nil, fmt.Errorf("task: record %d: missing createdAt", i)
		}
	}
	return tasks, nil
}
