package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/chris/morning/internal/scheduler"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the daemon and send the message on schedule",
	Args:  cobra.NoArgs,
	RunE:  runDaemon,
}

var onceCmd = &cobra.Command{
	Use:   "once",
	Short: "Compose and send today's message now",
	Args:  cobra.NoArgs,
	RunE:  runOnce,
}

func newScheduler(a *app) (*scheduler.Scheduler, error) {
	job, err := a.deliveryJob()
	if err != nil {
		return nil, err
	}
	return scheduler.New(a.cfg.CronSpec(), a.cfg.Location(), job, a.log)
}

func runDaemon(cmd *cobra.Command, args []string) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer cancel()

	a, err := newApp(appOptions{})
	if err != nil {
		return err
	}
	defer a.Close()

	sched, err := newScheduler(a)
	if err != nil {
		return err
	}
	sched.Start()
	a.log.Info("daemon running", "cron", a.cfg.CronSpec(), "timezone", a.cfg.Timezone)

	<-ctx.Done()
	a.log.Info("shutdown initiated")
	<-sched.Stop().Done()
	a.log.Info("shutdown complete")
	return nil
}

func runOnce(cmd *cobra.Command, args []string) error {
	a, err := newApp(appOptions{})
	if err != nil {
		return err
	}
	defer a.Close()

	sched, err := newScheduler(a)
	if err != nil {
		return err
	}
	return sched.RunOnce(cmd.Context())
}
