package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/marcus/moodtask/internal/task"
	"github.com/marcus/moodtask/internal/ui"
)

var statusCmd = &cobra.Command{
	Use:   "status <title> <status>",
	Short: "Update a task's status",
	Long: `Update a task's status.

Valid statuses: "Not Started", "In Progress", "Completed".
Setting Completed also marks the task completed.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		title, newStatus := args[0], args[1]

		if !task.ValidStatus(newStatus) {
			return fmt.Errorf("invalid status %q (valid: %s)", newStatus, strings.Join(task.StatusOptions, ", "))
		}

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		s, err := openStore(cfg)
		if err != nil {
			return err
		}

		r := ui.NewRenderer()
		if _, ok := s.Find(title); !ok {
			fmt.Println(r.Warnf("No task titled %q.", title))
			return nil
		}

		if err := s.UpdateStatus(title, newStatus); err != nil {
			return err
		}

		fmt.Println(r.Successf("Updated %q to %s.", title, newStatus))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
