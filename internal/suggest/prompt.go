package suggest

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/marcus/moodtask/internal/task"
)

// TaskContext is the per-candidate record embedded in the prompt.
type TaskContext struct {
	Title              string  `json:"title"`
	Description        string  `json:"description"`
	HoursUntilDeadline float64 `json:"hours_until_deadline"`
	UrgencyScore       float64 `json:"urgency_score"`
	Priority           int     `json:"priority"`
	MoodRequired       string  `json:"mood_required"`
	Effort             string  `json:"effort"`
	Difficulty         string  `json:"difficulty"`
	EnergyRequired     string  `json:"energy_required"`
	Status             string  `json:"status"`
}

// BuildContext converts candidates into prompt records. Tasks with an
// unparseable deadline report zero hours; their urgency already reflects
// the invalid deadline.
func BuildContext(candidates []task.Task, now time.Time) []TaskContext {
	contexts := make([]TaskContext, 0, len(candidates))
	for _, t := range candidates {
		hours, _ := task.ParseDeadline(t.Deadline).HoursUntil(now)
		contexts = append(contexts, TaskContext{
			Title:              t.Title,
			Description:        t.Description,
			HoursUntilDeadline: hours,
			UrgencyScore:       t.UrgencyScoreAt(now),
			Priority:           t.Priority,
			MoodRequired:       t.MoodRequired,
			Effort:             t.Effort,
			Difficulty:         t.Difficulty,
			EnergyRequired:     t.EnergyRequired,
			Status:             t.Status,
		})
	}
	return contexts
}

// BuildPrompt renders the recommendation prompt: the user's state, the
// candidate list, and the fixed ranking policy the service must follow.
func BuildPrompt(candidates []task.Task, currentMood string, now time.Time) string {
	contexts := BuildContext(candidates, now)

	tasksJSON, err := json.MarshalIndent(contexts, "", "  ")
	if err != nil {
		tasksJSON = []byte("[]")
	}

	var b strings.Builder
	b.WriteString("You are a task recommendation engine. Your goal is to suggest the best task for the user to work on right now.\n\n")

	b.WriteString("User's Current State:\n")
	fmt.Fprintf(&b, "- Mood: %s\n", currentMood)
	fmt.Fprintf(&b, "- Current Time: %s\n\n", now.Format("2006-01-02 15:04"))

	b.WriteString("Available Tasks:\n")
	b.Write(tasksJSON)
	b.WriteString("\n\n")

	b.WriteString("Consider these factors in order of importance:\n")
	b.WriteString("1. Task urgency (based on deadline and urgency_score)\n")
	b.WriteString("2. Match between task's energy/difficulty requirements and user's current mood\n")
	b.WriteString("3. Priority level of the task\n")
	b.WriteString("4. Task complexity and estimated effort\n\n")

	b.WriteString("Guidelines:\n")
	b.WriteString("- If user is energetic: Prefer challenging tasks that require high energy\n")
	b.WriteString("- If user is focused: Prefer complex tasks that require concentration\n")
	b.WriteString("- If user is creative: Prefer tasks that involve planning or creative work\n")
	b.WriteString("- If user is relaxed: Prefer lighter tasks unless there's something urgent\n\n")

	b.WriteString("Format your response exactly like this:\n")
	b.WriteString("TASK: [Suggested Task Title]\n")
	b.WriteString("REASON: [1-2 sentences explaining why this task is the best choice right now]\n")

	return b.String()
}

// ParseReply extracts the TASK and REASON lines from a service reply.
// Everything else is ignored. Missing lines come back empty; the caller
// decides whether that forces the fallback.
func ParseReply(reply string) (title, reason string) {
	for _, line := range strings.Split(reply, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(line, "TASK:"):
			title = strings.TrimSpace(strings.TrimPrefix(line, "TASK:"))
		case strings.HasPrefix(line, "REASON:"):
			reason = strings.TrimSpace(strings.TrimPrefix(line, "REASON:"))
		}
	}
	return title, reason
}
