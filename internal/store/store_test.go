package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/marcus/moodtask/internal/task"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	path := filepath.Join(t.TempDir(), "tasks.json")
	s, err := New(path)
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	return s
}

func TestNewMissingFile(t *testing.T) {
	s := newTestStore(t)
	if s.Len() != 0 {
		t.Errorf("Len() = %d for fresh store, want 0", s.Len())
	}
}

func TestNewCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := New(path); err == nil {
		t.Fatal("expected error for corrupt tasks file")
	}
}

func TestAddPersistsImmediately(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.json")
	s, err := New(path)
	if err != nil {
		t.Fatal(err)
	}

	tk := task.New("Write report", "quarterly numbers", "2025-06-01 17:00", task.PriorityHigh, task.MoodFocused)
	if err := s.Add(tk); err != nil {
		t.Fatalf("Add() error: %v", err)
	}

	// Re-open and verify the write hit disk.
	reloaded, err := New(path)
	if err != nil {
		t.Fatal(err)
	}
	if reloaded.Len() != 1 {
		t.Fatalf("reloaded Len() = %d, want 1", reloaded.Len())
	}
	got := reloaded.Tasks()[0]
	if got.Title != "Write report" || got.Priority != task.PriorityHigh {
		t.Errorf("reloaded task = %+v", got)
	}
}

func TestRoundTripPreservesFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.json")
	s, err := New(path)
	if err != nil {
		t.Fatal(err)
	}

	tk := task.Task{
		Title:          "Plan trip",
		Description:    "book flights",
		Deadline:       "2025-07-10 09:00",
		Priority:       task.PriorityCritical,
		MoodRequired:   task.MoodCreative,
		Effort:         "Long",
		Difficulty:     "Hard",
		EnergyRequired: "High",
		Completed:      false,
		Status:         task.StatusInProgress,
	}
	tk.SuggestionReason = "should not survive"
	if err := s.Add(tk); err != nil {
		t.Fatal(err)
	}

	reloaded, err := New(path)
	if err != nil {
		t.Fatal(err)
	}
	got := reloaded.Tasks()[0]

	tk.SuggestionReason = ""
	if got != tk {
		t.Errorf("round trip changed task:\n got %+v\nwant %+v", got, tk)
	}
}

func TestSavedJSONFieldNames(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.json")
	s, err := New(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Add(task.New("A", "", "2025-06-01", 2, task.MoodAny)); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	var records []map[string]any
	if err := json.Unmarshal(data, &records); err != nil {
		t.Fatalf("saved file is not a JSON array: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("saved %d records, want 1", len(records))
	}

	for _, field := range []string{
		"title", "description", "deadline", "priority", "mood_required",
		"effort", "difficulty", "energy_required", "completed", "status",
	} {
		if _, ok := records[0][field]; !ok {
			t.Errorf("saved record missing field %q", field)
		}
	}
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.json")
	raw := `[{"title": "Sparse", "description": "", "deadline": "2025-06-01 17:00", "priority": 2}]`
	if err := os.WriteFile(path, []byte(raw), 0644); err != nil {
		t.Fatal(err)
	}

	s, err := New(path)
	if err != nil {
		t.Fatal(err)
	}
	got := s.Tasks()[0]

	if got.MoodRequired != task.MoodAny {
		t.Errorf("MoodRequired = %q, want %q", got.MoodRequired, task.MoodAny)
	}
	if got.Effort != "Medium" || got.Difficulty != "Medium" || got.EnergyRequired != "Medium" {
		t.Errorf("effort/difficulty/energy = %q/%q/%q, want Medium defaults",
			got.Effort, got.Difficulty, got.EnergyRequired)
	}
	if got.Status != task.StatusNotStarted || got.Completed {
		t.Errorf("status/completed = %q/%v, want %q/false", got.Status, got.Completed, task.StatusNotStarted)
	}
}

func TestUpdateStatus(t *testing.T) {
	s := newTestStore(t)
	if err := s.Add(task.New("A", "", "2025-06-01", 2, task.MoodAny)); err != nil {
		t.Fatal(err)
	}

	if err := s.UpdateStatus("A", task.StatusInProgress); err != nil {
		t.Fatal(err)
	}
	got, _ := s.Find("A")
	if got.Status != task.StatusInProgress || got.Completed {
		t.Errorf("after In Progress: status=%q completed=%v", got.Status, got.Completed)
	}

	if err := s.UpdateStatus("A", task.StatusCompleted); err != nil {
		t.Fatal(err)
	}
	got, _ = s.Find("A")
	if got.Status != task.StatusCompleted || !got.Completed {
		t.Errorf("after Completed: status=%q completed=%v, want both set", got.Status, got.Completed)
	}
}

func TestMarkCompletedLeavesStatus(t *testing.T) {
	s := newTestStore(t)
	if err := s.Add(task.New("A", "", "2025-06-01", 2, task.MoodAny)); err != nil {
		t.Fatal(err)
	}
	if err := s.UpdateStatus("A", task.StatusInProgress); err != nil {
		t.Fatal(err)
	}

	if err := s.MarkCompleted("A"); err != nil {
		t.Fatal(err)
	}

	got, _ := s.Find("A")
	if !got.Completed {
		t.Error("MarkCompleted() did not set completed")
	}
	if got.Status != task.StatusInProgress {
		t.Errorf("MarkCompleted() changed status to %q, want %q untouched", got.Status, task.StatusInProgress)
	}
}

func TestUnknownTitleIsNoOp(t *testing.T) {
	s := newTestStore(t)
	if err := s.Add(task.New("A", "", "2025-06-01", 2, task.MoodAny)); err != nil {
		t.Fatal(err)
	}

	if err := s.UpdateStatus("missing", task.StatusCompleted); err != nil {
		t.Errorf("UpdateStatus(unknown) error: %v", err)
	}
	if err := s.MarkCompleted("missing"); err != nil {
		t.Errorf("MarkCompleted(unknown) error: %v", err)
	}

	got, _ := s.Find("A")
	if got.Completed || got.Status != task.StatusNotStarted {
		t.Errorf("no-op mutated existing task: %+v", got)
	}
}

func TestFirstMatchWinsOnDuplicateTitles(t *testing.T) {
	s := newTestStore(t)
	if err := s.Add(task.New("Dup", "first", "2025-06-01", 1, task.MoodAny)); err != nil {
		t.Fatal(err)
	}
	if err := s.Add(task.New("Dup", "second", "2025-06-02", 3, task.MoodAny)); err != nil {
		t.Fatal(err)
	}

	if err := s.MarkCompleted("Dup"); err != nil {
		t.Fatal(err)
	}

	all := s.Tasks()
	if !all[0].Completed {
		t.Error("first duplicate not completed")
	}
	if all[1].Completed {
		t.Error("second duplicate completed, want first match only")
	}
}

func TestInsertionOrderPreserved(t *testing.T) {
	s := newTestStore(t)
	titles := []string{"C", "A", "B"}
	for _, title := range titles {
		if err := s.Add(task.New(title, "", "2025-06-01", 2, task.MoodAny)); err != nil {
			t.Fatal(err)
		}
	}

	for i, got := range s.Tasks() {
		if got.Title != titles[i] {
			t.Errorf("task[%d] = %q, want %q", i, got.Title, titles[i])
		}
	}
}
