package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/marcus/moodtask/internal/history"
	"github.com/marcus/moodtask/internal/ui"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent suggestions",
	RunE: func(cmd *cobra.Command, args []string) error {
		n, _ := cmd.Flags().GetInt("number")

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		db, err := history.Open(cfg.History.DBPath)
		if err != nil {
			return err
		}
		defer db.Close()

		records, err := db.Recent(n)
		if err != nil {
			return err
		}

		r := ui.NewRenderer()
		if len(records) == 0 {
			fmt.Println(r.Mutedf("No suggestions recorded yet."))
			return nil
		}

		for _, rec := range records {
			line := fmt.Sprintf("%s  mood=%-10s %-8s  %s",
				rec.Time.Local().Format("2006-01-02 15:04"), rec.Mood, rec.Source, rec.TaskTitle)
			fmt.Println(line)
			if rec.Reason != "" {
				fmt.Println(r.Mutedf("    %s", rec.Reason))
			}
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().IntP("number", "n", 10, "Number of suggestions to show")
	rootCmd.AddCommand(historyCmd)
}
