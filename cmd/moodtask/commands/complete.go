package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/marcus/moodtask/internal/ui"
)

var completeCmd = &cobra.Command{
	Use:   "complete <title>",
	Short: "Mark a task as completed",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		title := args[0]

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

		if err := s.MarkCompleted(title); err != nil {
			return err
		}

		fmt.Println(r.Successf("Completed %q.", title))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(completeCmd)
}
