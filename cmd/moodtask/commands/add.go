package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/marcus/moodtask/internal/store"
	"github.com/marcus/moodtask/internal/task"
	"github.com/marcus/moodtask/internal/ui"
)

var addCmd = &cobra.Command{
	Use:   "add [title]",
	Short: "Add a task",
	Long: `Add a task.

Without flags an interactive form walks through title, description,
deadline, priority, and mood. Pass --deadline (plus any other flags)
to add non-interactively.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		s, err := openStore(cfg)
		if err != nil {
			return err
		}

		title := ""
		if len(args) == 1 {
			title = args[0]
		}
		if flagTitle, _ := cmd.Flags().GetString("title"); flagTitle != "" {
			title = flagTitle
		}

		deadline, _ := cmd.Flags().GetString("deadline")
		if deadline != "" {
			return addFromFlags(cmd, s, title, deadline)
		}

		model := newAddModel(s, title)
		final, err := tea.NewProgram(model).Run()
		if err != nil {
			return err
		}

		m, ok := final.(*addModel)
		if !ok {
			return nil
		}
		if m.err != nil {
			return m.err
		}
		if !m.saved {
			return nil
		}
		fmt.Println(ui.NewRenderer().Successf("Added %q.", m.result.Title))
		fmt.Println(ui.NewRenderer().TaskDetails(m.result))
		return nil
	},
}

func init() {
	addCmd.Flags().String("title", "", "Task title")
	addCmd.Flags().String("description", "", "Task description")
	addCmd.Flags().String("deadline", "", "Deadline (e.g. \"2026-09-01 17:00\"); enables non-interactive add")
	addCmd.Flags().Int("priority", task.PriorityMedium, "Priority 1-4")
	addCmd.Flags().String("mood", task.MoodAny, "Required mood")
	addCmd.Flags().String("effort", "", "Effort (Short, Medium, Long)")
	addCmd.Flags().String("difficulty", "", "Difficulty (Easy, Medium, Hard)")
	addCmd.Flags().String("energy", "", "Energy required (Low, Medium, High)")
	rootCmd.AddCommand(addCmd)
}

func addFromFlags(cmd *cobra.Command, s *store.Store, title, deadline string) error {
	if strings.TrimSpace(title) == "" {
		return fmt.Errorf("title must not be empty")
	}
	if err := validateDeadline(deadline, time.Now()); err != nil {
		return err
	}

	priority, _ := cmd.Flags().GetInt("priority")
	if priority < task.PriorityLow || priority > task.PriorityCritical {
		return fmt.Errorf("priority must be 1-4, got %d", priority)
	}
	mood, _ := cmd.Flags().GetString("mood")
	if !task.ValidMood(mood) {
		return fmt.Errorf("invalid mood %q (valid: %s)", mood, strings.Join(task.MoodOptions, ", "))
	}

	description, _ := cmd.Flags().GetString("description")
	t := task.New(title, description, deadline, priority, mood)
	if effort, _ := cmd.Flags().GetString("effort"); effort != "" {
		t.Effort = effort
	}
	if difficulty, _ := cmd.Flags().GetString("difficulty"); difficulty != "" {
		t.Difficulty = difficulty
	}
	if energy, _ := cmd.Flags().GetString("energy"); energy != "" {
		t.EnergyRequired = energy
	}

	if err := s.Add(t); err != nil {
		return err
	}

	r := ui.NewRenderer()
	fmt.Println(r.Successf("Added %q.", t.Title))
	fmt.Println(r.TaskDetails(t))
	return nil
}

// validateDeadline rejects unparseable and past deadlines.
func validateDeadline(input string, now time.Time) error {
	d := task.ParseDeadline(input)
	if !d.Valid {
		return fmt.Errorf("cannot parse deadline %q (try \"2006-01-02 15:04\")", input)
	}
	if d.Time.Before(now) {
		return fmt.Errorf("deadline %q is in the past", input)
	}
	return nil
}

// deadlineChoice is one quick deadline option in the add form.
type deadlineChoice struct {
	label string
	value func(now time.Time) string
}

var deadlineChoices = []deadlineChoice{
	{"Today 17:00", func(now time.Time) string {
		return now.Format("2006-01-02") + " 17:00"
	}},
	{"Tomorrow 09:00", func(now time.Time) string {
		return now.AddDate(0, 0, 1).Format("2006-01-02") + " 09:00"
	}},
	{"Next week", func(now time.Time) string {
		return now.AddDate(0, 0, 7).Format("2006-01-02") + " 09:00"
	}},
	{"Custom", nil},
}

type addStep int

const (
	stepTitle addStep = iota
	stepDescription
	stepDeadline
	stepPriority
	stepMood
	stepEffort
	stepDifficulty
	stepEnergy
	stepDone
)

type addModel struct {
	step  addStep
	store *store.Store

	titleInput       textinput.Model
	descriptionInput textinput.Model

	deadlineCursor  int
	deadlineInput   textinput.Model
	deadlineEditing bool
	deadline        string

	priorityCursor   int
	moodCursor       int
	effortCursor     int
	difficultyCursor int
	energyCursor     int

	errMsg string
	saved  bool
	result task.Task
	err    error
}

func newAddModel(s *store.Store, title string) *addModel {
	titleInput := textinput.New()
	titleInput.Prompt = "> "
	titleInput.Placeholder = "Write quarterly report"
	titleInput.SetValue(title)
	titleInput.Focus()

	descriptionInput := textinput.New()
	descriptionInput.Prompt = "> "

	deadlineInput := textinput.New()
	deadlineInput.Prompt = "> "
	deadlineInput.Placeholder = "2006-01-02 15:04"

	return &addModel{
		step:             stepTitle,
		store:            s,
		titleInput:       titleInput,
		descriptionInput: descriptionInput,
		deadlineInput:    deadlineInput,
		priorityCursor:   task.PriorityMedium - 1,
		effortCursor:     1,
		difficultyCursor: 1,
		energyCursor:     1,
	}
}

func (m *addModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *addModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if key.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.step {
	case stepTitle:
		if key.String() == "enter" {
			if strings.TrimSpace(m.titleInput.Value()) == "" {
				m.errMsg = "title must not be empty"
				return m, nil
			}
			m.errMsg = ""
			m.step = stepDescription
			m.titleInput.Blur()
			m.descriptionInput.Focus()
			return m, nil
		}
		var cmd tea.Cmd
		m.titleInput, cmd = m.titleInput.Update(msg)
		return m, cmd

	case stepDescription:
		if key.String() == "enter" {
			m.step = stepDeadline
			m.descriptionInput.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		m.descriptionInput, cmd = m.descriptionInput.Update(msg)
		return m, cmd

	case stepDeadline:
		return m.handleDeadlineInput(key, msg)

	case stepPriority:
		return m.handleCursorStep(key, &m.priorityCursor, len(task.PriorityLabels), stepMood)
	case stepMood:
		return m.handleCursorStep(key, &m.moodCursor, len(task.MoodOptions), stepEffort)
	case stepEffort:
		return m.handleCursorStep(key, &m.effortCursor, len(task.EffortLevels), stepDifficulty)
	case stepDifficulty:
		return m.handleCursorStep(key, &m.difficultyCursor, len(task.DifficultyLevels), stepEnergy)
	case stepEnergy:
		next, cmd := m.handleCursorStep(key, &m.energyCursor, len(task.EnergyLevels), stepDone)
		if m.step == stepDone {
			m.save()
			return m, tea.Quit
		}
		return next, cmd
	}

	return m, nil
}

func (m *addModel) handleDeadlineInput(key tea.KeyMsg, msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.deadlineEditing {
		switch key.String() {
		case "enter":
			value := strings.TrimSpace(m.deadlineInput.Value())
			if err := validateDeadline(value, time.Now()); err != nil {
				m.errMsg = err.Error()
				return m, nil
			}
			m.deadline = value
			m.errMsg = ""
			m.deadlineEditing = false
			m.deadlineInput.Blur()
			m.step = stepPriority
			return m, nil
		case "esc":
			m.deadlineEditing = false
			m.errMsg = ""
			m.deadlineInput.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		m.deadlineInput, cmd = m.deadlineInput.Update(msg)
		return m, cmd
	}

	switch key.String() {
	case "up", "k":
		if m.deadlineCursor > 0 {
			m.deadlineCursor--
		}
	case "down", "j":
		if m.deadlineCursor < len(deadlineChoices)-1 {
			m.deadlineCursor++
		}
	case "enter":
		choice := deadlineChoices[m.deadlineCursor]
		if choice.value == nil {
			m.deadlineEditing = true
			m.deadlineInput.Focus()
			return m, nil
		}
		m.deadline = choice.value(time.Now())
		m.step = stepPriority
	}
	return m, nil
}

// handleCursorStep moves a cursor through options and advances to next
// on enter.
func (m *addModel) handleCursorStep(key tea.KeyMsg, cursor *int, count int, next addStep) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "up", "k":
		if *cursor > 0 {
			*cursor--
		}
	case "down", "j":
		if *cursor < count-1 {
			*cursor++
		}
	case "enter":
		m.step = next
	}
	return m, nil
}

func (m *addModel) save() {
	t := task.New(
		strings.TrimSpace(m.titleInput.Value()),
		strings.TrimSpace(m.descriptionInput.Value()),
		m.deadline,
		m.priorityCursor+1,
		task.MoodOptions[m.moodCursor],
	)
	t.Effort = task.EffortLevels[m.effortCursor]
	t.Difficulty = task.DifficultyLevels[m.difficultyCursor]
	t.EnergyRequired = task.EnergyLevels[m.energyCursor]

	if err := m.store.Add(t); err != nil {
		m.err = err
		return
	}
	m.result = t
	m.saved = true
}

func (m *addModel) View() string {
	var b strings.Builder
	b.WriteString("Add Task\n")
	b.WriteString("========\n\n")

	switch m.step {
	case stepTitle:
		b.WriteString("Title:\n")
		b.WriteString(m.titleInput.View() + "\n")
	case stepDescription:
		b.WriteString("Description (optional):\n")
		b.WriteString(m.descriptionInput.View() + "\n")
	case stepDeadline:
		if m.deadlineEditing {
			b.WriteString("Deadline (e.g. 2026-09-01 17:00):\n")
			b.WriteString(m.deadlineInput.View() + "\n")
			if m.errMsg != "" {
				b.WriteString("Error: " + m.errMsg + "\n")
			}
			b.WriteString("\nPress Enter to accept, Esc to go back.\n")
			return b.String()
		}
		b.WriteString("Deadline (↑/↓ to select, Enter to accept):\n")
		now := time.Now()
		for i, choice := range deadlineChoices {
			cursor := " "
			if i == m.deadlineCursor {
				cursor = ">"
			}
			label := choice.label
			if choice.value != nil {
				label = fmt.Sprintf("%-15s %s", choice.label, choice.value(now))
			}
			b.WriteString(fmt.Sprintf(" %s %s\n", cursor, label))
		}
	case stepPriority:
		b.WriteString("Priority:\n")
		for i := task.PriorityLow; i <= task.PriorityCritical; i++ {
			cursor := " "
			if i-1 == m.priorityCursor {
				cursor = ">"
			}
			b.WriteString(fmt.Sprintf(" %s %d (%s)\n", cursor, i, task.PriorityLabels[i]))
		}
	case stepMood:
		b.WriteString("Required mood:\n")
		writeCursorList(&b, task.MoodOptions, m.moodCursor)
	case stepEffort:
		b.WriteString("Effort:\n")
		writeCursorList(&b, task.EffortLevels, m.effortCursor)
	case stepDifficulty:
		b.WriteString("Difficulty:\n")
		writeCursorList(&b, task.DifficultyLevels, m.difficultyCursor)
	case stepEnergy:
		b.WriteString("Energy required:\n")
		writeCursorList(&b, task.EnergyLevels, m.energyCursor)
	}

	if m.errMsg != "" && m.step == stepTitle {
		b.WriteString("Error: " + m.errMsg + "\n")
	}
	b.WriteString("\nPress Enter to continue, Ctrl+C to cancel.\n")
	return b.String()
}

func writeCursorList(b *strings.Builder, options []string, cursor int) {
	for i, opt := range options {
		marker := " "
		if i == cursor {
			marker = ">"
		}
		b.WriteString(fmt.Sprintf(" %s %s\n", marker, opt))
	}
}
