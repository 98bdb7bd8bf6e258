package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/marcus/moodtask/internal/config"
	"github.com/marcus/moodtask/internal/store"
	"github.com/marcus/moodtask/internal/ui"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks",
	Long: `List tasks in a table.

Completed tasks are hidden unless --all is given. With --watch the
table re-renders whenever the tasks file changes on disk.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		showAll, _ := cmd.Flags().GetBool("all")
		watch, _ := cmd.Flags().GetBool("watch")

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		s, err := openStore(cfg)
		if err != nil {
			return err
		}

		r := ui.NewRenderer()
		fmt.Println(r.TaskTable(s.Tasks(), showAll))

		if !watch {
			return nil
		}
		return watchTasks(cfg, r, showAll)
	},
}

func init() {
	listCmd.Flags().BoolP("all", "a", false, "Include completed tasks")
	listCmd.Flags().BoolP("watch", "w", false, "Re-render when the tasks file changes")
	rootCmd.AddCommand(listCmd)
}

// watchTasks blocks, re-rendering the table on every change to the
// tasks file. The store saves via tmp+rename, so watch the directory
// and match events against the file name.
func watchTasks(cfg *config.Config, r *ui.Renderer, showAll bool) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	tasksPath := cfg.TasksPath
	if tasksPath == "" {
		tasksPath = store.DefaultPath()
	}
	if err := watcher.Add(filepath.Dir(tasksPath)); err != nil {
		return fmt.Errorf("watching tasks dir: %w", err)
	}

	fmt.Println("--- Watching for changes (Ctrl+C to exit) ---")

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Base(event.Name) != filepath.Base(tasksPath) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}

			s, err := store.New(tasksPath)
			if err != nil {
				fmt.Fprintf(os.Stderr, "reload error: %v\n", err)
				continue
			}
			fmt.Println()
			fmt.Println(r.TaskTable(s.Tasks(), showAll))

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(os.Stderr, "watcher error: %v\n", err)
		}
	}
}
