// Package suggest picks the best task to work on right now, delegating
// to a recommendation service and falling back to a deterministic sort
// whenever the service is unavailable or its reply cannot be used.
package suggest

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/marcus/moodtask/internal/logging"
	"github.com/marcus/moodtask/internal/task"
)

// Suggestion sources.
const (
	SourceAI       = "ai"
	SourceFallback = "fallback"
)

// Recommender generates free-form text for a prompt. Implemented by the
// gemini client; any error is treated as a service failure.
type Recommender interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Suggestion is the engine's pick. Reason is only set when the
// recommendation service supplied one.
type Suggestion struct {
	Task   task.Task
	Reason string
	Source string
}

// Engine orchestrates candidate filtering, the service call, reply
// parsing, and the fallback path. It never mutates or persists tasks.
type Engine struct {
	rec Recommender
	log *logging.Logger
	now func() time.Time
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock sets the time source (for testing).
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

// WithLogger sets the engine's logger.
func WithLogger(log *logging.Logger) Option {
	return func(e *Engine) {
		e.log = log
	}
}

// NewEngine creates a suggestion engine. rec may be nil, in which case
// every suggestion takes the fallback path.
func NewEngine(rec Recommender, opts ...Option) *Engine {
	e := &Engine{
		rec: rec,
		now: time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.log == nil {
		e.log = logging.Component("suggest")
	}
	return e
}

// Suggest returns the best open task for the given mood, or nil when no
// open tasks exist. Service failures never surface to the caller; they
// are logged and the deterministic fallback answers instead.
func (e *Engine) Suggest(ctx context.Context, tasks []task.Task, currentMood string) *Suggestion {
	candidates := openTasks(tasks)
	if len(candidates) == 0 {
		return nil
	}

	now := e.now()

	if e.rec != nil {
		prompt := BuildPrompt(candidates, currentMood, now)

		reply, err := e.rec.Generate(ctx, prompt)
		if err != nil {
			e.log.Err(err).Msg("recommendation service failed, using fallback")
			return e.fallback(candidates)
		}

		title, reason := ParseReply(reply)
		if title == "" {
			e.log.Warnf("reply missing TASK line, using fallback")
			return e.fallback(candidates)
		}

		if picked, ok := matchTitle(candidates, title); ok {
			picked.SuggestionReason = reason
			return &Suggestion{Task: picked, Reason: reason, Source: SourceAI}
		}
		e.log.Warnf("no candidate matches suggested title %q, using fallback", title)
	}

	return e.fallback(candidates)
}

func (e *Engine) fallback(candidates []task.Task) *Suggestion {
	picked := FallbackPick(candidates)
	if picked == nil {
		return nil
	}
	return &Suggestion{Task: *picked, Source: SourceFallback}
}

// openTasks filters to tasks that are still available to work on.
func openTasks(tasks []task.Task) []task.Task {
	out := make([]task.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.Open() {
			out = append(out, t)
		}
	}
	return out
}

// FallbackPick deterministically selects the first task after a stable
// sort by (deadline ascending, priority descending). Tasks with an
// unparseable deadline sort last. Identical input always yields the
// identical pick; this is the one guaranteed-deterministic path.
func FallbackPick(candidates []task.Task) *task.Task {
	if len(candidates) == 0 {
		return nil
	}

	sorted := SortFallback(candidates)
	picked := sorted[0]
	return &picked
}

// SortFallback returns a copy of candidates in fallback order.
func SortFallback(candidates []task.Task) []task.Task {
	sorted := make([]task.Task, len(candidates))
	copy(sorted, candidates)

	sort.SliceStable(sorted, func(i, j int) bool {
		di := task.ParseDeadline(sorted[i].Deadline)
		dj := task.ParseDeadline(sorted[j].Deadline)

		switch {
		case di.Valid && !dj.Valid:
			return true
		case !di.Valid && dj.Valid:
			return false
		case di.Valid && dj.Valid && !di.Time.Equal(dj.Time):
			return di.Time.Before(dj.Time)
		}
		return sorted[i].Priority > sorted[j].Priority
	})

	return sorted
}

// matchTitle finds the first candidate whose title is a case-insensitive
// substring of the suggested title text. Candidate order decides ties;
// a short title can shadow a longer one that contains it, which mirrors
// how titles have always been matched here.
func matchTitle(candidates []task.Task, suggested string) (task.Task, bool) {
	lowered := strings.ToLower(suggested)
	for _, t := range candidates {
		if strings.Contains(lowered, strings.ToLower(t.Title)) {
			return t, true
		}
	}
	return task.Task{}, false
}
