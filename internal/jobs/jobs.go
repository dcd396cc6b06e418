// Package jobs runs periodic maintenance: completing bookings whose slot has
// ended and expiring join requests nobody answered.
package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"startconnect/internal/config"
)

const jobTimeout = time.Minute

// BookingSweeper marks confirmed bookings that already ended as completed.
type BookingSweeper interface {
	CompleteEnded(ctx context.Context) (int64, error)
}

// RequestExpirer expires pending join requests older than maxAge.
type RequestExpirer interface {
	ExpireStale(ctx context.Context, maxAge time.Duration) (int64, error)
}

type job struct {
	name string
	spec string
	run  func(ctx context.Context) (int64, error)
}

// Scheduler wraps a cron runner with the application's jobs registered.
type Scheduler struct {
	cron *cron.Cron
	log  logrus.FieldLogger
	jobs []job
}

// New registers the maintenance jobs. Nothing runs until Start.
func New(cfg config.JobsConfig, bookings BookingSweeper, requests RequestExpirer, log logrus.FieldLogger, loc *time.Location) (*Scheduler, error) {
	if loc == nil {
		loc = time.UTC
	}
	cl := cronLogger{log: log.WithField("component", "jobs")}
	s := &Scheduler{
		log: log.WithField("component", "jobs"),
		cron: cron.New(
			cron.WithLocation(loc),
			cron.WithLogger(cl),
			cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)),
		),
	}

	maxAge := time.Duration(cfg.RequestExpiryDays) * 24 * time.Hour
	s.jobs = []job{
		{name: "booking_sweep", spec: cfg.BookingSweepSpec, run: bookings.CompleteEnded},
		{name: "request_expiry", spec: cfg.RequestExpirySpec, run: func(ctx context.Context) (int64, error) {
			return requests.ExpireStale(ctx, maxAge)
		}},
	}
	for _, j := range s.jobs {
		if _, err := s.cron.AddFunc(j.spec, s.wrap(j)); err != nil {
			return nil, fmt.Errorf("schedule %s %q: %w", j.name, j.spec, err)
		}
	}
	return s, nil
}

func (s *Scheduler) wrap(j job) func() {
	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
		defer cancel()

		start := time.Now()
		n, err := j.run(ctx)
		entry := s.log.WithFields(logrus.Fields{
			"job":      j.name,
			"affected": n,
			"duration": time.Since(start).String(),
		})
		if err != nil {
			entry.WithError(err).Error("job failed")
			return
		}
		entry.Info("job finished")
	}
}

// Start runs the scheduler in its own goroutine.
func (s *Scheduler) Start() {
	s.cron.Start()
	for _, e := range s.cron.Entries() {
		s.log.WithField("next", e.Next).Debug("job scheduled")
	}
}

// Stop prevents new runs and waits for running jobs or ctx, whichever first.
func (s *Scheduler) Stop(ctx context.Context) error {
	done := s.cron.Stop()
	select {
	case <-done.Done():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// cronLogger adapts logrus to cron.Logger.
type cronLogger struct {
	log logrus.FieldLogger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.log.WithFields(fields(keysAndValues)).Debug(msg)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.log.WithFields(fields(keysAndValues)).WithError(err).Error(msg)
}

func fields(kv []any) logrus.Fields {
	f := make(logrus.Fields, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		f[fmt.Sprint(kv[i])] = kv[i+1]
	}
	return f
}
