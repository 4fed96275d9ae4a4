package scheduler

import (
	"context"
	"log/slog"
	"time"

	"coworking-booking/internal/pkg/errs"

	"github.com/robfig/cron/v3"
)

const defaultJobTimeout = 30 * time.Second

// JobFunc is one run of a periodic job.
type JobFunc func(ctx context.Context) error

// Scheduler runs named jobs on cron specs. A run still in progress when the next tick
// fires causes that tick to be skipped.
type Scheduler struct {
	cron       *cron.Cron
	jobTimeout time.Duration
	baseCtx    context.Context
	cancel     context.CancelFunc
}

func New() *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())
	logger := cronLogger{}
	return &Scheduler{
		cron: cron.New(cron.WithChain(
			cron.Recover(logger),
			cron.SkipIfStillRunning(logger),
		)),
		jobTimeout: defaultJobTimeout,
		baseCtx:    ctx,
		cancel:     cancel,
	}
}

func (s *Scheduler) Register(name, spec string, job JobFunc) error {
	_, err := s.cron.AddFunc(spec, func() {
		s.run(name, job)
	})
	if err != nil {
		return errs.Wrap(err, "schedule "+name)
	}
	slog.Info("job scheduled", slog.String("job", name), slog.String("spec", spec))
	return nil
}

func (s *Scheduler) run(name string, job JobFunc) {
	ctx, cancel := context.WithTimeout(s.baseCtx, s.jobTimeout)
	defer cancel()

	start := time.Now()
	if err := job(ctx); err != nil {
		slog.Error("job failed",
			slog.String("job", name),
			slog.Duration("elapsed", time.Since(start)),
			slog.String("error", err.Error()))
		return
	}
	slog.Debug("job finished", slog.String("job", name), slog.Duration("elapsed", time.Since(start)))
}

func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop cancels running jobs and waits for them until ctx ends.
func (s *Scheduler) Stop(ctx context.Context) error {
	s.cancel()
	done := s.cron.Stop()
	select {
	case <-done.Done():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// cronLogger routes cron's internal logging to slog.
type cronLogger struct{}

func (cronLogger) Info(msg string, keysAndValues ...interface{}) {
	slog.Debug("cron: "+msg, keysAndValues...)
}

func (cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	slog.Error("cron: "+msg, append(keysAndValues, "error", err)...)
}
