// Package ui renders tasks for the terminal using lipgloss. The
// Renderer is passed explicitly to command handlers; there is no shared
// console state.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/marcus/moodtask/internal/task"
)

// Styles holds lipgloss styles for task rendering.
type Styles struct {
	Header  lipgloss.Style
	Title   lipgloss.Style
	Muted   lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Reason  lipgloss.Style

	PriorityLow      lipgloss.Style
	PriorityMedium   lipgloss.Style
	PriorityHigh     lipgloss.Style
	PriorityCritical lipgloss.Style

	StatusNotStarted lipgloss.Style
	StatusInProgress lipgloss.Style
	StatusCompleted  lipgloss.Style
}

// DefaultStyles creates the default style set.
func DefaultStyles() *Styles {
	magenta := lipgloss.AdaptiveColor{Light: "#8250df", Dark: "#d2a8ff"}
	green := lipgloss.AdaptiveColor{Light: "#22863a", Dark: "#3fb950"}
	yellow := lipgloss.AdaptiveColor{Light: "#b08800", Dark: "#d29922"}
	red := lipgloss.AdaptiveColor{Light: "#cb2431", Dark: "#f85149"}
	blue := lipgloss.AdaptiveColor{Light: "#0366d6", Dark: "#58a6ff"}
	subtle := lipgloss.AdaptiveColor{Light: "#666", Dark: "#888"}

	return &Styles{
		Header:  lipgloss.NewStyle().Bold(true).Foreground(magenta),
		Title:   lipgloss.NewStyle().Bold(true).Foreground(blue),
		Muted:   lipgloss.NewStyle().Foreground(subtle),
		Success: lipgloss.NewStyle().Foreground(green),
		Warning: lipgloss.NewStyle().Foreground(yellow),
		Reason:  lipgloss.NewStyle().Bold(true).Foreground(green),

		PriorityLow:      lipgloss.NewStyle().Foreground(blue),
		PriorityMedium:   lipgloss.NewStyle().Foreground(yellow),
		PriorityHigh:     lipgloss.NewStyle().Bold(true).Foreground(red),
		PriorityCritical: lipgloss.NewStyle().Bold(true).Foreground(red).Reverse(true),

		StatusNotStarted: lipgloss.NewStyle().Foreground(yellow),
		StatusInProgress: lipgloss.NewStyle().Bold(true).Foreground(blue),
		StatusCompleted:  lipgloss.NewStyle().Foreground(green),
	}
}

// Renderer renders tasks and messages.
type Renderer struct {
	styles *Styles
}

// NewRenderer creates a renderer with default styles.
func NewRenderer() *Renderer {
	return &Renderer{styles: DefaultStyles()}
}

// taskColumns defines the list-table layout.
var taskColumns = []string{"Title", "Description", "Deadline", "Priority", "Mood", "Status", "Effort", "Energy"}

// TaskTable renders the task list. Completed tasks are hidden unless
// showCompleted is set.
func (r *Renderer) TaskTable(tasks []task.Task, showCompleted bool) string {
	rows := make([][]string, 0, len(tasks))
	styled := make([][]string, 0, len(tasks))

	for _, t := range tasks {
		if !showCompleted && t.Completed {
			continue
		}
		plain := []string{
			t.Title,
			t.Description,
			t.Deadline,
			fmt.Sprintf("%d", t.Priority),
			t.MoodWithIcon(),
			t.Status,
			t.Effort,
			t.EnergyRequired,
		}
		cells := make([]string, len(plain))
		copy(cells, plain)
		cells[3] = r.priorityStyle(t.Priority).Render(plain[3])
		cells[5] = r.statusStyle(t.Status).Render(plain[5])

		rows = append(rows, plain)
		styled = append(styled, cells)
	}

	if len(rows) == 0 {
		return r.styles.Muted.Render("No tasks to show.")
	}

	return r.renderTable(taskColumns, rows, styled)
}

// TaskDetails renders a single task as a one-row table, used after add
// and for suggestions.
func (r *Renderer) TaskDetails(t task.Task) string {
	columns := []string{"Title", "Description", "Deadline", "Priority", "Effort", "Energy", "Status"}
	plain := []string{
		t.Title,
		t.Description,
		t.Deadline,
		fmt.Sprintf("%d", t.Priority),
		t.Effort,
		t.EnergyRequired,
		t.Status,
	}
	cells := make([]string, len(plain))
	copy(cells, plain)
	cells[3] = r.priorityStyle(t.Priority).Render(plain[3])
	cells[6] = r.statusStyle(t.Status).Render(plain[6])

	return r.renderTable(columns, [][]string{plain}, [][]string{cells})
}

// Suggestion renders a suggestion header, optional reason, and the task.
func (r *Renderer) Suggestion(t task.Task, reason string) string {
	var b strings.Builder
	b.WriteString(r.styles.Title.Render("Based on your current mood and priorities, I suggest:"))
	b.WriteString("\n")
	if reason != "" {
		b.WriteString("\n")
		b.WriteString(r.styles.Reason.Render("Reason: " + reason))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(r.TaskDetails(t))
	return b.String()
}

// Successf renders a success message.
func (r *Renderer) Successf(format string, args ...any) string {
	return r.styles.Success.Render(fmt.Sprintf(format, args...))
}

// Warnf renders a warning message.
func (r *Renderer) Warnf(format string, args ...any) string {
	return r.styles.Warning.Render(fmt.Sprintf(format, args...))
}

// Mutedf renders a muted message.
func (r *Renderer) Mutedf(format string, args ...any) string {
	return r.styles.Muted.Render(fmt.Sprintf(format, args...))
}

// renderTable lays out a simple padded table. Column widths come from
// the plain cell text so ANSI styling does not skew alignment.
func (r *Renderer) renderTable(columns []string, plain [][]string, styled [][]string) string {
	widths := make([]int, len(columns))
	for i, col := range columns {
		widths[i] = len(col)
	}
	for _, row := range plain {
		for i, cell := range row {
			if w := lipgloss.Width(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	var b strings.Builder

	for i, col := range columns {
		b.WriteString(r.styles.Header.Render(pad(col, widths[i])))
		if i < len(columns)-1 {
			b.WriteString("  ")
		}
	}
	b.WriteString("\n")
	for i := range columns {
		b.WriteString(strings.Repeat("-", widths[i]))
		if i < len(columns)-1 {
			b.WriteString("  ")
		}
	}
	b.WriteString("\n")

	for rowIdx, row := range styled {
		for i, cell := range row {
			b.WriteString(cell)
			if i < len(row)-1 {
				padding := widths[i] - lipgloss.Width(plain[rowIdx][i])
				if padding > 0 {
					b.WriteString(strings.Repeat(" ", padding))
				}
				b.WriteString("  ")
			}
		}
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

func pad(s string, width int) string {
	if diff := width - lipgloss.Width(s); diff > 0 {
		return s + strings.Repeat(" ", diff)
	}
	return s
}

func (r *Renderer) priorityStyle(priority int) lipgloss.Style {
	switch priority {
	case task.PriorityLow:
		return r.styles.PriorityLow
	case task.PriorityMedium:
		return r.styles.PriorityMedium
	case task.PriorityHigh:
		return r.styles.PriorityHigh
	case task.PriorityCritical:
		return r.styles.PriorityCritical
	default:
		return r.styles.Muted
	}
}

func (r *Renderer) statusStyle(status string) lipgloss.Style {
	switch status {
	case task.StatusNotStarted:
		return r.styles.StatusNotStarted
	case task.StatusInProgress:
		return r.styles.StatusInProgress
	case task.StatusCompleted:
		return r.styles.StatusCompleted
	default:
		return r.styles.Muted
	}
}
