package commands

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/marcus/moodtask/internal/logging"
	"github.com/marcus/moodtask/internal/scheduler"
	"github.com/marcus/moodtask/internal/store"
	"github.com/marcus/moodtask/internal/suggest"
	"github.com/marcus/moodtask/internal/task"
	"github.com/marcus/moodtask/internal/ui"
)

var remindCmd = &cobra.Command{
	Use:   "remind",
	Short: "Run a foreground reminder loop",
	Long: `Run a foreground loop that periodically prints the current best task.

Picks come from the deterministic deadline/priority sort; no
recommendation service calls are made. The schedule is a standard cron
expression. Stop with Ctrl+C.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		schedule, _ := cmd.Flags().GetString("schedule")
		if schedule == "" {
			schedule = cfg.Remind.Schedule
		}

		log := logging.Component("remind")
		r := ui.NewRenderer()

		sched := scheduler.New()
		err = sched.AddCron(schedule, func() {
			s, err := store.New(cfg.TasksPath)
			if err != nil {
				log.Err(err).Msg("reloading tasks")
				return
			}

			var candidates []task.Task
			for _, t := range s.Tasks() {
				if t.Open() {
					candidates = append(candidates, t)
				}
			}

			picked := suggest.FallbackPick(candidates)
			if picked == nil {
				fmt.Println(r.Mutedf("Reminder: no open tasks."))
				return
			}
			fmt.Println(r.Warnf("Reminder: work on %q (deadline %s).", picked.Title, picked.Deadline))
		})
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		fmt.Printf("Reminders on schedule %q. Ctrl+C to stop.\n", schedule)
		log.Infof("reminder loop started, schedule %q", schedule)
		sched.Run(ctx)
		log.Info("reminder loop stopped")
		return nil
	},
}

func init() {
	remindCmd.Flags().StringP("schedule", "s", "", "Cron schedule (default from config)")
	rootCmd.AddCommand(remindCmd)
}
