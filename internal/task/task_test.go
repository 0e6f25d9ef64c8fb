package task_test

import (
	"strings"
	"testing"
	"time"

	"tasklite/internal/task"
)

var created = time.Date(2026, 1, 2, 15, 4, 5, 0, time.UTC)

func TestNextID_EmptyCollection(t *testing.T) {
	if got := task.NextID(nil); got != 1 {
		t.Errorf("expected 1, got %d", got)
	}
	if got := task.NextID([]task.Task{}); got != 1 {
		t.Errorf("expected 1, got %d", got)
	}
}

func TestNextID_MaxPlusOne(t *testing.T) {
	tasks := []task.Task{
		{ID: 1, Title: "a", CreatedAt: created},
		{ID: 2, Title: "b", CreatedAt: created},
		{ID: 3, Title: "c", CreatedAt: created},
	}
	if got := task.NextID(tasks); got != 4 {
		t.Errorf("expected 4, got %d", got)
	}
}

func TestNextID_ToleratesGaps(t *testing.T) {
	tasks := []task.Task{
		{ID: 2, Title: "a", CreatedAt: created},
		{ID: 7, Title: "b", CreatedAt: created},
	}
	if got := task.NextID(tasks); got != 8 {
		t.Errorf("expected 8, got %d", got)
	}
}

func TestFind(t *testing.T) {
	tasks := []task.Task{
		{ID: 1, Title: "a", CreatedAt: created},
		{ID: 2, Title: "b", CreatedAt: created},
	}

	got := task.Find(tasks, 2)
	if got == nil || got.Title != "b" {
		t.Errorf("expected task b, got %+v", got)
	}

	if got := task.Find(tasks, 9); got != nil {
		t.Errorf("expected nil for unknown id, got %+v", got)
	}
}

func TestFind_ReturnsMutablePointer(t *testing.T) {
	tasks := []task.Task{{ID: 1, Title: "a", CreatedAt: created}}

	task.Find(tasks, 1).Completed = true
	if !tasks[0].Completed {
		t.Error("expected Find to return a pointer into the collection")
	}
}

func TestEncodeCollection_Empty(t *testing.T) {
	for _, tasks := range [][]task.Task{nil, {}} {
		b, err := task.EncodeCollection(tasks)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if string(b) != "[]\n" {
			t.Errorf("expected %q, got %q", "[]\n", string(b))
		}
	}
}

func TestEncodeCollection_CanonicalForm(t *testing.T) {
	tasks := []task.Task{{ID: 1, Title: "Buy milk", Completed: false, CreatedAt: created}}

	b, err := task.EncodeCollection(tasks)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := `[
  {
    "id": 1,
    "title": "Buy milk",
    "completed": false,
    "createdAt": "2026-01-02T15:04:05Z"
  }
]
`
	if string(b) != expected {
		t.Errorf("expected:\n%s\ngot:\n%s", expected, string(b))
	}
}

func TestDecodeCollection_RoundTrip(t *testing.T) {
	tasks := []task.Task{
		{ID: 1, Title: "Buy milk", Completed: true, CreatedAt: created},
		{ID: 3, Title: "Ship report", Completed: false, CreatedAt: created.Add(time.Minute)},
	}

	b, err := task.EncodeCollection(tasks)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	got, err := task.DecodeCollection(b)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	if len(got) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(got))
	}
	// Insertion order preserved
	if got[0].ID != 1 || got[1].ID != 3 {
		t.Errorf("order not preserved: %+v", got)
	}
	if !got[1].CreatedAt.Equal(created.Add(time.Minute)) {
		t.Errorf("timestamp mismatch: %v", got[1].CreatedAt)
	}
}

func TestDecodeCollection_Errors(t *testing.T) {
	cases := []struct {
		name string
		data string
	}{
		{"syntax error", `[{`},
		{"not an array", `{"id": 1}`},
		{"unknown field", `[{"id":1,"title":"a","completed":false,"createdAt":"2026-01-02T15:04:05Z","extra":true}]`},
		{"wrong type", `[{"id":"1","title":"a","completed":false,"createdAt":"2026-01-02T15:04:05Z"}]`},
		{"zero id", `[{"id":0,"title":"a","completed":false,"createdAt":"2026-01-02T15:04:05Z"}]`},
		{"duplicate id", `[{"id":1,"title":"a","completed":false,"createdAt":"2026-01-02T15:04:05Z"},{"id":1,"title":"b","completed":false,"createdAt":"2026-01-02T15:04:05Z"}]`},
		{"empty title", `[{"id":1,"title":"  ","completed":false,"createdAt":"2026-01-02T15:04:05Z"}]`},
		{"missing createdAt", `[{"id":1,"title":"a","completed":false}]`},
		{"trailing data", `[] []`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := task.DecodeCollection([]byte(tc.data)); err == nil {
				t.Errorf("expected error for %s", tc.name)
			}
		})
	}
}

func TestDecodeCollection_EmptyArray(t *testing.T) {
	got, err := task.DecodeCollection([]byte("[]\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected empty collection, got %d tasks", len(got))
	}
}

func TestDecodeCollection_ErrorMentionsRecord(t *testing.T) {
	data := `[{"id":1,"title":"a","completed":false,"createdAt":"2026-01-02T15:04:05Z"},{"id":1,"title":"b","completed":false,"createdAt":"2026-01-02T15:04:05Z"}]`
	_, err := task.DecodeCollection([]byte(data))
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "duplicate id 1") {
		t.Errorf("expected duplicate id in error, got %q", err.Error())
	}
}
