package ui

import (
	"strings"
	"testing"

	"github.com/marcus/moodtask/internal/task"
)

func sampleTasks() []task.Task {
	open := task.New("Write report", "quarterly numbers", "2025-06-01 17:00", task.PriorityHigh, task.MoodFocused)
	done := task.New("Old chore", "already finished", "2025-05-01 12:00", task.PriorityLow, task.MoodAny)
	done.Completed = true
	done.Status = task.StatusCompleted
	return []task.Task{open, done}
}

func TestTaskTableHidesCompleted(t *testing.T) {
	r := NewRenderer()
	out := r.TaskTable(sampleTasks(), false)

	if !strings.Contains(out, "Write report") {
		t.Error("open task missing from table")
	}
	if strings.Contains(out, "Old chore") {
		t.Error("completed task shown without --all")
	}
}

func TestTaskTableShowsAll(t *testing.T) {
	r := NewRenderer()
	out := r.TaskTable(sampleTasks(), true)

	if !strings.Contains(out, "Write report") || !strings.Contains(out, "Old chore") {
		t.Errorf("table missing tasks:\n%s", out)
	}
}

func TestTaskTableHeaders(t *testing.T) {
	r := NewRenderer()
	out := r.TaskTable(sampleTasks(), true)

	for _, header := range []string{"Title", "Description", "Deadline", "Priority", "Mood", "Status", "Effort", "Energy"} {
		if !strings.Contains(out, header) {
			t.Errorf("table missing header %q", header)
		}
	}
}

func TestTaskTableEmpty(t *testing.T) {
	r := NewRenderer()
	out := r.TaskTable(nil, true)

	if !strings.Contains(out, "No tasks") {
		t.Errorf("empty table = %q", out)
	}
}

func TestTaskTableMoodIcon(t *testing.T) {
	r := NewRenderer()
	out := r.TaskTable(sampleTasks(), false)

	if !strings.Contains(out, "[F] focused") {
		t.Errorf("mood icon missing:\n%s", out)
	}
}

func TestTaskDetails(t *testing.T) {
	r := NewRenderer()
	tk := task.New("Plan trip", "book flights", "2025-07-10 09:00", task.PriorityCritical, task.MoodCreative)
	out := r.TaskDetails(tk)

	for _, want := range []string{"Plan trip", "book flights", "2025-07-10 09:00", "4", task.StatusNotStarted} {
		if !strings.Contains(out, want) {
			t.Errorf("details missing %q:\n%s", want, out)
		}
	}
}

func TestSuggestionWithReason(t *testing.T) {
	r := NewRenderer()
	tk := task.New("Write report", "", "2025-06-01 17:00", task.PriorityHigh, task.MoodFocused)
	out := r.Suggestion(tk, "It is due soonest.")

	if !strings.Contains(out, "I suggest") {
		t.Error("suggestion header missing")
	}
	if !strings.Contains(out, "Reason: It is due soonest.") {
		t.Error("reason line missing")
	}
	if !strings.Contains(out, "Write report") {
		t.Error("task missing")
	}
}

func TestSuggestionWithoutReason(t *testing.T) {
	r := NewRenderer()
	tk := task.New("Write report", "", "2025-06-01 17:00", task.PriorityHigh, task.MoodFocused)
	out := r.Suggestion(tk, "")

	if strings.Contains(out, "Reason:") {
		t.Error("reason line rendered for fallback suggestion")
	}
}

func TestMessages(t *testing.T) {
	r := NewRenderer()

	if got := r.Successf("added %q", "A"); !strings.Contains(got, `added "A"`) {
		t.Errorf("Successf() = %q", got)
	}
	if got := r.Warnf("AI suggestion failed: %s", "quota"); !strings.Contains(got, "quota") {
		t.Errorf("Warnf() = %q", got)
	}
}
