package jobs

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/chainguard-dev/clog"
	"golang.org/x/sync/semaphore"

	"github.com/sevigo/clang-format-bot/internal/core"
	"github.com/sevigo/clang-format-bot/internal/logger"
)

// ErrAtCapacity is returned by Dispatch when the configured number of runs is
// already in flight. Deliveries are not queued.
var ErrAtCapacity = errors.New("maximum concurrent runs reached")

// ErrStopped is returned by Dispatch after Stop has been called.
var ErrStopped = errors.New("dispatcher stopped")

// Dispatcher implements core.JobDispatcher by running every accepted event on
// its own goroutine, bounded by a semaphore.
type Dispatcher struct {
	ctx    context.Context // Parent of every run; outlives the webhook request.
	job    core.Job
	sem    *semaphore.Weighted
	logger *slog.Logger

	mu      sync.Mutex
	stopped bool
	wg      sync.WaitGroup
}

// NewDispatcher creates a Dispatcher allowing maxRuns concurrent runs.
// If maxRuns is 0 or negative, it defaults to 1.
func NewDispatcher(ctx context.Context, job core.Job, maxRuns int, logger *slog.Logger) *Dispatcher {
	if maxRuns <= 0 {
		maxRuns = 1
	}
	return &Dispatcher{
		ctx:    ctx,
		job:    job,
		sem:    semaphore.NewWeighted(int64(maxRuns)),
		logger: logger,
	}
}

// Dispatch starts processing event in the background. The request context is
// deliberately not used for the run.
func (d *Dispatcher) Dispatch(_ context.Context, event *core.PullRequestEvent) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		return ErrStopped
	}
	if !d.sem.TryAcquire(1) {
		d.logger.Warn("refusing formatting run, at capacity", "delivery", event.DeliveryID, "repo", event.RepoFullName, "pr", event.Number)
		return ErrAtCapacity
	}

	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		defer d.sem.Release(1)
		d.process(event)
	}()
	return nil
}

func (d *Dispatcher) process(event *core.PullRequestEvent) {
	ctx := logger.Attach(d.ctx, d.logger,
		"delivery", event.DeliveryID,
		"repo", event.RepoFullName,
		"pr", event.Number,
	)
	log := clog.FromContext(ctx)

	log.Infof("Starting formatting run (%s)", event.Action)
	if err := d.job.Run(ctx, event); err != nil {
		log.Errorf("Formatting run failed: %v", err)
	}
}

// Stop refuses further events and waits for in-flight runs to finish.
func (d *Dispatcher) Stop() {
	d.mu.Lock()
	d.stopped = true
	d.mu.Unlock()

	d.logger.Info("stopping dispatcher and waiting for runs to finish")
	d.wg.Wait()
	d.logger.Info("all formatting runs have finished")
}
