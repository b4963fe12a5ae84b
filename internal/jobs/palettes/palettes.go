// Package palettes keeps the popular-palette cache warm on a cron schedule.
package palettes

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const defaultSpec = "@every 10m"

type Refresher interface {
	RefreshPalettes(ctx context.Context) ([]string, error)
}

type Job struct {
	refresher Refresher
	spec      string
	timeout   time.Duration
	cron      *cron.Cron
	logger    *zap.Logger

	mu      sync.Mutex
	started bool
}

func New(refresher Refresher, spec string, logger *zap.Logger) *Job {
	if spec == "" {
		spec = defaultSpec
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Job{
		refresher: refresher,
		spec:      spec,
		timeout:   30 * time.Second,
		cron: cron.New(
			cron.WithLogger(cronLogger{log: logger.Sugar()}),
			cron.WithChain(cron.SkipIfStillRunning(cronLogger{log: logger.Sugar()})),
		),
		logger: logger,
	}
}

// Run performs a single refresh.
func (j *Job) Run(ctx context.Context) error {
	if j.refresher == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, j.timeout)
	defer cancel()

	colors, err := j.refresher.RefreshPalettes(ctx)
	if err != nil {
		return fmt.Errorf("refresh popular palettes: %w", err)
	}
	j.logger.Debug("popular palettes refreshed", zap.Int("colors", len(colors)))
	return nil
}

// Start schedules Run and fires it once without waiting for the first tick.
func (j *Job) Start(ctx context.Context) error {
	j.mu.Lock()
	defer j.mu.Unlock()
	if j.started {
		return nil
	}

	if _, err := j.cron.AddFunc(j.spec, func() { j.runLogged(ctx) }); err != nil {
		return fmt.Errorf("schedule palette refresh %q: %w", j.spec, err)
	}
	j.cron.Start()
	j.started = true
	j.logger.Info("palette refresh scheduled", zap.String("spec", j.spec))

	go j.runLogged(ctx)
	return nil
}

// Stop halts scheduling and waits for a running refresh to finish.
func (j *Job) Stop() {
	j.mu.Lock()
	defer j.mu.Unlock()
	if !j.started {
		return
	}
	<-j.cron.Stop().Done()
	j.started = false
}

func (j *Job) runLogged(ctx context.Context) {
	if err := j.Run(ctx); err != nil {
		j.logger.Warn("palette refresh failed", zap.Error(err))
	}
}

type cronLogger struct {
	log *zap.SugaredLogger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.log.Debugw(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.log.Errorw(msg, append(keysAndValues, "error", err)...)
}
