// Package scheduler runs the morning job on a cron schedule.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
)

// Job composes and delivers one message for the given local time.
type Job func(ctx context.Context, now time.Time) error

type Scheduler struct {
	cron  *cron.Cron
	entry cron.EntryID
	loc   *time.Location
	job   Job
	log   *slog.Logger
	now   func() time.Time
}

// New registers job under spec (standard five-field cron) evaluated in loc.
// Overlapping runs are skipped and panics are recovered.
func New(spec string, loc *time.Location, job Job, log *slog.Logger) (*Scheduler, error) {
	if loc == nil {
		loc = time.Local
	}
	if log == nil {
		log = slog.Default()
	}
	cronLog := cron.PrintfLogger(slog.NewLogLogger(log.Handler(), slog.LevelDebug))
	s := &Scheduler{
		cron: cron.New(
			cron.WithLocation(loc),
			cron.WithLogger(cronLog),
			cron.WithChain(cron.Recover(cronLog), cron.SkipIfStillRunning(cronLog)),
		),
		loc: loc,
		job: job,
		log: log,
		now: time.Now,
	}
	id, err := s.cron.AddFunc(spec, func() {
		_ = s.RunOnce(context.Background())
	})
	if err != nil {
		return nil, fmt.Errorf("invalid cron %q: %w", spec, err)
	}
	s.entry = id
	return s, nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
	s.log.Info("scheduler started", "next", s.Next().Format(time.RFC3339))
}

// Stop halts the schedule. The returned context is done once any running
// job has finished.
func (s *Scheduler) Stop() context.Context {
	return s.cron.Stop()
}

// Next is the next scheduled run, or the zero time before Start.
func (s *Scheduler) Next() time.Time {
	return s.cron.Entry(s.entry).Next
}

// RunOnce runs the job immediately under a fresh run id.
func (s *Scheduler) RunOnce(ctx context.Context) error {
	log := s.log.With("run_id", uuid.NewString())
	start := s.now()
	log.Info("daily message run started")

	err := s.job(ctx, start.In(s.loc))
	elapsed := s.now().Sub(start)
	if err != nil {
		log.Error("daily message run failed", "error", err, "elapsed", elapsed)
		return err
	}
	if next := s.Next(); !next.IsZero() {
		log = log.With("next", humanize.Time(next))
	}
	log.Info("daily message run completed", "elapsed", elapsed)
	return nil
}
