package commands

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/marcus/moodtask/internal/config"
	"github.com/marcus/moodtask/internal/history"
	"github.com/marcus/moodtask/internal/logging"
	"github.com/marcus/moodtask/internal/suggest"
	"github.com/marcus/moodtask/internal/task"
	"github.com/marcus/moodtask/internal/ui"
)

var suggestCmd = &cobra.Command{
	Use:   "suggest",
	Short: "Suggest the best task for your current mood",
	Long: `Suggest the best task to work on right now.

Asks for your current mood (or takes --mood), sends open tasks to the
recommendation service, and shows the pick with its reasoning. Without
an API key, or when the service fails, a deterministic
deadline/priority sort answers instead.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		s, err := openStore(cfg)
		if err != nil {
			return err
		}

		mood, _ := cmd.Flags().GetString("mood")
		if mood == "" {
			mood, err = pickMood()
			if err != nil {
				return err
			}
			if mood == "" {
				return nil
			}
		}
		if !task.ValidMood(mood) {
			return fmt.Errorf("invalid mood %q (valid: %s)", mood, strings.Join(task.MoodOptions, ", "))
		}

		engine := newEngine(cfg)
		suggestion := engine.Suggest(cmd.Context(), s.Tasks(), mood)

		r := ui.NewRenderer()
		if suggestion == nil {
			fmt.Println(r.Mutedf("No open tasks. Add one with 'moodtask add'."))
			return nil
		}

		fmt.Println(r.Suggestion(suggestion.Task, suggestion.Reason))
		if suggestion.Source == suggest.SourceFallback {
			fmt.Println(r.Mutedf("(picked by deadline/priority fallback)"))
		}

		recordSuggestion(cfg, mood, suggestion)
		askFeedback(r)
		return nil
	},
}

func init() {
	suggestCmd.Flags().StringP("mood", "m", "", "Current mood (skips the picker)")
	rootCmd.AddCommand(suggestCmd)
}

// recordSuggestion appends to the history database. History is best
// effort; failures are logged, not surfaced.
func recordSuggestion(cfg *config.Config, mood string, sg *suggest.Suggestion) {
	db, err := history.Open(cfg.History.DBPath)
	if err != nil {
		logging.Component("history").Err(err).Msg("opening history db")
		return
	}
	defer db.Close()

	if err := db.Add(history.Record{
		Mood:      mood,
		TaskTitle: sg.Task.Title,
		Source:    sg.Source,
		Reason:    sg.Reason,
	}); err != nil {
		logging.Component("history").Err(err).Msg("recording suggestion")
	}
}

// askFeedback asks whether the pick helped. The answer is not stored.
func askFeedback(r *ui.Renderer) {
	fmt.Print("\nWill you work on this? (y/n): ")
	reader := bufio.NewReader(os.Stdin)
	answer, err := reader.ReadString('\n')
	if err != nil {
		return
	}
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		fmt.Println(r.Successf("Good luck!"))
	default:
		fmt.Println(r.Mutedf("No problem. Run 'moodtask suggest' again anytime."))
	}
}

// pickMood runs the interactive mood picker. Returns "" when the user
// cancels.
func pickMood() (string, error) {
	model := &moodModel{}
	final, err := tea.NewProgram(model).Run()
	if err != nil {
		return "", err
	}
	m, ok := final.(*moodModel)
	if !ok || !m.chosen {
		return "", nil
	}
	return task.MoodOptions[m.cursor], nil
}

type moodModel struct {
	cursor int
	chosen bool
}

func (m *moodModel) Init() tea.Cmd {
	return nil
}

func (m *moodModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "ctrl+c", "q", "esc":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(task.MoodOptions)-1 {
			m.cursor++
		}
	case "enter":
		m.chosen = true
		return m, tea.Quit
	}
	return m, nil
}

func (m *moodModel) View() string {
	var b strings.Builder
	b.WriteString("How are you feeling right now?\n\n")
	for i, mood := range task.MoodOptions {
		cursor := " "
		if i == m.cursor {
			cursor = ">"
		}
		b.WriteString(fmt.Sprintf(" %s %s\n", cursor, mood))
	}
	b.WriteString("\nPress Enter to choose, q to cancel.\n")
	return b.String()
}
