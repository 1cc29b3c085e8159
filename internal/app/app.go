package app

import (
	"context"
	"errors"
	"time"

	"github.com/robfig/cron/v3"

	"leetcode-revision/internal/domain/model"
	"leetcode-revision/internal/domain/ports"
)

// Process exit statuses.
const (
	ExitOK          = 0
	ExitFatal       = 1
	ExitAuthFailure = 2
)

const jobTimeout = 2 * time.Minute

// Job is a single revision pass.
type Job interface {
	Run(ctx context.Context) (model.RunReport, error)
}

// App runs the revision job once, or on a cron schedule when one is configured.
type App struct {
	cron     *cron.Cron
	job      Job
	logger   ports.Logger
	schedule string
}

// New constructs an App instance. An empty schedule means run once and exit.
func New(job Job, logger ports.Logger, schedule string) *App {
	return &App{
		cron:     cron.New(),
		job:      job,
		logger:   logger,
		schedule: schedule,
	}
}

// Run executes the job once. With a schedule it then keeps running the job
// until ctx is cancelled or a run hits an expired session.
func (a *App) Run(ctx context.Context) error {
	if a.schedule == "" {
		_, err := a.job.Run(ctx)
		return err
	}

	fatal := make(chan error, 1)
	if err := a.scheduleJob(fatal); err != nil {
		return err
	}

	a.logger.Info(ctx, "ℹ️ running first revision immediately")
	if _, err := a.job.Run(ctx); err != nil {
		if errors.Is(err, ports.ErrSessionExpired) {
			return err
		}
		a.logger.Error(ctx, "❌ initial revision run failed", "error", err)
	}

	a.logger.Info(ctx, "🚀 starting scheduler", "cron", a.schedule)
	a.cron.Start()

	var runErr error
	select {
	case <-ctx.Done():
	case runErr = <-fatal:
	}

	stopCtx := a.cron.Stop()
	select {
	case <-stopCtx.Done():
	case <-time.After(5 * time.Second):
	}
	a.logger.Info(context.Background(), "ℹ️ scheduler stopped")
	return runErr
}

func (a *App) scheduleJob(fatal chan<- error) error {
	_, err := a.cron.AddFunc(a.schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
		defer cancel()
		if _, err := a.job.Run(ctx); err != nil {
			if errors.Is(err, ports.ErrSessionExpired) {
				select {
				case fatal <- err:
				default:
				}
				return
			}
			a.logger.Error(ctx, "❌ scheduled revision run failed", "error", err)
		}
	})
	return err
}

// ExitCode maps a run error to the process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, ports.ErrSessionExpired):
		return ExitAuthFailure
	default:
		return ExitFatal
	}
}
