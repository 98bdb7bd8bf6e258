// Package commands implements the moodtask CLI commands using cobra.
package commands

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	// Version is set at build time
	Version = "0.2.0"
)

var rootCmd = &cobra.Command{
	Use:   "moodtask",
	Short: "Mood-aware personal task tracker",
	Long: `Moodtask keeps your tasks with deadlines, priorities, and mood
requirements, and suggests the best one to work on right now based on
how you feel.

Suggestions come from the Gemini API when GEMINI_API_KEY is set, with a
deterministic deadline/priority fallback otherwise.`,
	Version: Version,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to config file (default ~/.config/moodtask/config.yaml)")
}
