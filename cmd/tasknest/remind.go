package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/fmizzell/tasknest/internal/reminder"
)

var (
	remindWatch    bool
	remindInterval time.Duration
)

var remindCmd = &cobra.Command{
	Use:   "remind",
	Short: "Print overdue tasks and tasks due today",
	Long: `Print overdue tasks and tasks due today. With --watch the digest is
printed again every interval until interrupted.`,
	Run: remind,
}

func init() {
	remindCmd.Flags().BoolVar(&remindWatch, "watch", false, "Keep running and print the digest periodically")
	remindCmd.Flags().DurationVar(&remindInterval, "interval", 0, "Digest interval in watch mode (default from TASKNEST_REMIND_INTERVAL)")
}

func remind(cmd *cobra.Command, args []string) {
	if !remindWatch {
		printDigest()
		return
	}

	cfg, err := loadConfig()
	if err != nil {
		fatal("Failed to load config: %v", err)
	}
	interval := cfg.Reminder.Interval
	if remindInterval > 0 {
		interval = remindInterval
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := watchDigest(ctx, interval); err != nil {
		fatal("%v", err)
	}
}

// printDigest hydrates a fresh container so changes made by other
// invocations are picked up
func printDigest() {
	nest, release := mustOpenNest()
	defer release()

	digest := reminder.Digest(nest.State(), clock())
	if digest == "" {
		fmt.Println("Nothing due. 🎉")
		return
	}
	fmt.Println(digest)
}

// watchDigest prints the digest now and then every interval until ctx is done
func watchDigest(ctx context.Context, interval time.Duration) error {
	scheduler := reminder.NewScheduler(time.Local)
	if _, err := scheduler.ScheduleInterval(interval, printDigest); err != nil {
		return fmt.Errorf("failed to schedule reminders: %w", err)
	}

	printDigest()
	fmt.Printf("⏰ Watching for reminders every %s (Ctrl+C to stop)\n", interval)

	scheduler.Start()
	<-ctx.Done()
	scheduler.Stop()
	return nil
}
