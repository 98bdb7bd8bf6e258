// Package task defines the task record and its urgency scoring.
package task

// Status values for a task. Completed status and the completed flag are
// kept in sync by the store's UpdateStatus; MarkCompleted deliberately
// only flips the flag.
const (
	StatusNotStarted = "Not Started"
	StatusInProgress = "In Progress"
	StatusCompleted  = "Completed"
)

// Moods a task can require. "any" matches every mood.
const (
	MoodAny       = "any"
	MoodEnergetic = "energetic"
	MoodFocused   = "focused"
	MoodCreative  = "creative"
	MoodRelaxed   = "relaxed"
	MoodTired     = "tired"
)

// Priority levels (1-4). Critical exists in the data model but gets no
// urgency boost over Medium; see urgency.go.
const (
	PriorityLow      = 1
	PriorityMedium   = 2
	PriorityHigh     = 3
	PriorityCritical = 4
)

var (
	// StatusOptions lists valid statuses in display order.
	StatusOptions = []string{StatusNotStarted, StatusInProgress, StatusCompleted}

	// MoodOptions lists valid required moods in display order.
	MoodOptions = []string{MoodAny, MoodEnergetic, MoodFocused, MoodCreative, MoodRelaxed, MoodTired}

	// EffortLevels: Short 15-30min, Medium 30min-1hr, Long >1hr.
	EffortLevels = []string{"Short", "Medium", "Long"}

	// DifficultyLevels lists valid difficulties.
	DifficultyLevels = []string{"Easy", "Medium", "Hard"}

	// EnergyLevels lists valid energy requirements.
	EnergyLevels = []string{"Low", "Medium", "High"}

	// PriorityLabels maps priority values to display names.
	PriorityLabels = map[int]string{
		PriorityLow:      "Low",
		PriorityMedium:   "Medium",
		PriorityHigh:     "High",
		PriorityCritical: "Critical",
	}

	moodIcons = map[string]string{
		MoodAny:       "*",
		MoodEnergetic: "[E]",
		MoodFocused:   "[F]",
		MoodCreative:  "[C]",
		MoodRelaxed:   "[R]",
		MoodTired:     "[T]",
	}
)

// Task is a single to-do item. Title is the lookup key; duplicate titles
// are not rejected, lookups take the first match.
type Task struct {
	Title          string `json:"title"`
	Description    string `json:"description"`
	Deadline       string `json:"deadline"`
	Priority       int    `json:"priority"`
	MoodRequired   string `json:"mood_required"`
	Effort         string `json:"effort"`
	Difficulty     string `json:"difficulty"`
	EnergyRequired string `json:"energy_required"`
	Completed      bool   `json:"completed"`
	Status         string `json:"status"`

	// SuggestionReason is set by the suggestion engine when the AI
	// provided an explanation. Never persisted.
	SuggestionReason string `json:"-"`
}

// New creates a task with defaults applied for the optional fields.
func New(title, description, deadline string, priority int, mood string) Task {
	t := Task{
		Title:        title,
		Description:  description,
		Deadline:     deadline,
		Priority:     priority,
		MoodRequired: mood,
	}
	t.Normalize()
	return t
}

// Normalize fills in defaults for optional fields. Called after
// deserialization so hand-edited records with missing fields stay usable.
func (t *Task) Normalize() {
	if t.MoodRequired == "" {
		t.MoodRequired = MoodAny
	}
	if t.Effort == "" {
		t.Effort = "Medium"
	}
	if t.Difficulty == "" {
		t.Difficulty = "Medium"
	}
	if t.EnergyRequired == "" {
		t.EnergyRequired = "Medium"
	}
	if t.Status == "" {
		t.Status = StatusNotStarted
	}
}

// Open reports whether the task is still available to work on.
func (t *Task) Open() bool {
	return !t.Completed && t.Status != StatusCompleted
}

// MoodWithIcon returns the required mood prefixed with its ASCII icon.
func (t *Task) MoodWithIcon() string {
	icon, ok := moodIcons[t.MoodRequired]
	if !ok {
		return t.MoodRequired
	}
	return icon + " " + t.MoodRequired
}

// PriorityLabel returns the display name for the task's priority.
func (t *Task) PriorityLabel() string {
	if label, ok := PriorityLabels[t.Priority]; ok {
		return label
	}
	return "Unknown"
}

// ValidStatus reports whether s is one of the allowed status values.
func ValidStatus(s string) bool {
	for _, opt := range StatusOptions {
		if s == opt {
			return true
		}
	}
	return false
}

// ValidMood reports whether m is one of the allowed mood values.
func ValidMood(m string) bool {
	for _, opt := range MoodOptions {
		if m == opt {
			return true
		}
	}
	return false
}
