// Package output provides formatters for task listings and confirmations.
// The CLI commands and the MCP tools share these, so both surfaces report
// results in exactly the same words.
package output

import (
	"fmt"
	"io"
	"strings"
	"time"

	"tasklite/internal/task"
)

// NoTasksMessage is printed in place of an empty listing.
const NoTasksMessage = "no tasks found"

// StatusLabel renders the completed flag as a human-readable label.
func StatusLabel(t task.Task) string {
	if t.Completed {
		return "done"
	}
	return "pending"
}

// FormatTask formats one listing line.
// Format: "{ID:>4}  {STATUS:<7}  {TITLE}  {CREATED}\n" with the creation
// timestamp in RFC 3339.
func FormatTask(w io.Writer, t task.Task) {
	fmt.Fprintf(w, "%4d  %-7s  %s  %s\n",
		t.ID, StatusLabel(t), normalizeTitle(t.Title), t.CreatedAt.Format(time.RFC3339))
}

// FormatTaskList formats the full listing in collection order, or the
// no-tasks message when the collection is empty. Output order is never
// re-sorted; it equals creation order.
func FormatTaskList(w io.Writer, tasks []task.Task) {
	if len(tasks) == 0 {
		fmt.Fprintln(w, NoTasksMessage)
		return
	}
	for _, t := range tasks {
		FormatTask(w, t)
	}
}

// AddedMessage is the confirmation for a newly created task.
func AddedMessage(t task.Task) string {
	return fmt.Sprintf("added task %d: %s", t.ID, normalizeTitle(t.Title))
}

// CompletedMessage is the confirmation for a freshly completed task.
func CompletedMessage(t task.Task) string {
	return fmt.Sprintf("completed task %d: %s", t.ID, normalizeTitle(t.Title))
}

// AlreadyCompletedMessage reports the idempotent no-op outcome.
func AlreadyCompletedMessage(t task.Task) string {
	return fmt.Sprintf("task %d is already completed", t.ID)
}

// normalizeTitle normalizes a task title for display.
// - Empty or whitespace-only titles become "(untitled)"
// - Newlines are replaced with spaces
func normalizeTitle(title string) string {
	title = strings.ReplaceAll(title, "\r", " ")
	title = strings.ReplaceAll(title, "\n", " ")

	if strings.TrimSpace(title) == "" {
		return "(untitled)"
	}
	return title
}
