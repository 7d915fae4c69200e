package service

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/MKhiriev/founder-directory/internal/config"
	"github.com/MKhiriev/founder-directory/internal/logger"
	"github.com/MKhiriev/founder-directory/internal/notify"
	"github.com/MKhiriev/founder-directory/models"
)

const passKey = "sync-pass"

type clientSyncJob struct {
	syncService ClientSyncService
	notifier    notify.Notifier

	interval time.Duration
	deadline time.Time
	now      func() time.Time

	group singleflight.Group

	mu            sync.Mutex
	state         models.JobState
	lastStart     time.Time
	stopRequested atomic.Bool
	stopCh        chan struct{}
	stopOnce      sync.Once
	wg            sync.WaitGroup

	logger *logger.Logger
}

// NewClientSyncJob creates a job that calls syncService.RunSyncPass every
// cfg.SyncInterval until cfg.MaxLifetime has passed since this call. If
// either duration is zero or negative the package defaults are used. The
// job is idle until Run or Start is called.
func NewClientSyncJob(syncService ClientSyncService, notifier notify.Notifier, cfg config.ClientWorkers, logger *logger.Logger) ClientSyncJob {
	return newClientSyncJob(syncService, notifier, cfg, logger, time.Now)
}

func newClientSyncJob(syncService ClientSyncService, notifier notify.Notifier, cfg config.ClientWorkers, logger *logger.Logger, now func() time.Time) *clientSyncJob {
	interval := cfg.SyncInterval
	if interval <= 0 {
		interval = config.DefaultSyncInterval
	}
	lifetime := cfg.MaxLifetime
	if lifetime <= 0 {
		lifetime = config.DefaultMaxLifetime
	}

	return &clientSyncJob{
		syncService: syncService,
		notifier:    notifier,
		interval:    interval,
		deadline:    now().Add(lifetime),
		now:         now,
		state:       models.JobIdle,
		stopCh:      make(chan struct{}),
		logger:      logger,
	}
}

// Run implements ClientSyncJob.
func (j *clientSyncJob) Run(ctx context.Context, token string) {
	if !j.begin() {
		return
	}
	defer j.finish()

	j.loop(ctx, token)
}

// Start implements ClientSyncJob.
func (j *clientSyncJob) Start(ctx context.Context, token string) {
	if !j.begin() {
		return
	}

	go func() {
		defer j.finish()
		j.loop(ctx, token)
	}()
}

// Stop implements ClientSyncJob. Safe to call more than once and before
// the job was started; a job stopped while idle never runs.
func (j *clientSyncJob) Stop() {
	j.mu.Lock()
	j.stopRequested.Store(true)
	if j.state == models.JobIdle {
		j.state = models.JobStopped
	}
	j.mu.Unlock()

	j.stopOnce.Do(func() { close(j.stopCh) })
	j.wg.Wait()
}

// SyncNow implements ClientSyncJob.
func (j *clientSyncJob) SyncNow(ctx context.Context, token string) models.SyncReport {
	if token == "" {
		j.logger.Warn().Err(ErrEmptyToken).
			Str("func", "clientSyncJob.SyncNow").
			Msg("manual sync skipped")
		return models.SyncReport{}
	}
	return j.runPass(ctx, token)
}

// State implements ClientSyncJob.
func (j *clientSyncJob) State() models.JobState {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.state
}

func (j *clientSyncJob) begin() bool {
	j.mu.Lock()
	defer j.mu.Unlock()

	if j.state != models.JobIdle || j.stopRequested.Load() {
		j.logger.Debug().
			Str("func", "clientSyncJob.begin").
			Str("state", j.state.String()).
			Msg("sync job not started")
		return false
	}

	j.state = models.JobRunning
	j.wg.Add(1)
	return true
}

func (j *clientSyncJob) finish() {
	j.mu.Lock()
	j.state = models.JobStopped
	j.mu.Unlock()

	j.wg.Done()
}

func (j *clientSyncJob) loop(ctx context.Context, token string) {
	for {
		if reason := j.stopReason(ctx, token); reason != "" {
			j.logger.Info().
				Str("func", "clientSyncJob.loop").
				Str("reason", reason).
				Msg("sync job stopped")
			return
		}

		if j.due() {
			j.runPass(ctx, token)
			j.wait(ctx, j.interval)
			continue
		}

		j.wait(ctx, j.untilDue())
	}
}

func (j *clientSyncJob) stopReason(ctx context.Context, token string) string {
	switch {
	case token == "":
		return ErrEmptyToken.Error()
	case j.stopRequested.Load():
		return "stop requested"
	case ctx.Err() != nil:
		return ctx.Err().Error()
	case !j.now().Before(j.deadline):
		return "max lifetime reached"
	}
	return ""
}

func (j *clientSyncJob) due() bool {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.lastStart.IsZero() || j.now().Sub(j.lastStart) >= j.interval
}

// untilDue is the time left before a pass started by SyncNow makes the
// next scheduled pass due.
func (j *clientSyncJob) untilDue() time.Duration {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.lastStart.Add(j.interval).Sub(j.now())
}

// wait sleeps for d, cut short by the deadline, ctx or Stop. A short wait
// is not treated as an elapsed interval: the loop re-checks due().
func (j *clientSyncJob) wait(ctx context.Context, d time.Duration) {
	if untilDeadline := j.deadline.Sub(j.now()); untilDeadline < d {
		d = untilDeadline
	}
	if d <= 0 {
		return
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
	case <-j.stopCh:
	case <-timer.C:
	}
}

// runPass runs one pass shared by every concurrent caller. The pass is
// detached from ctx cancellation so that it always runs to completion.
func (j *clientSyncJob) runPass(ctx context.Context, token string) models.SyncReport {
	passCtx := context.WithoutCancel(ctx)

	v, _, _ := j.group.Do(passKey, func() (any, error) {
		j.mu.Lock()
		j.lastStart = j.now()
		j.mu.Unlock()

		report := j.syncService.RunSyncPass(passCtx, token)
		if report.Changed && j.notifier != nil {
			j.notifier.Notify(passCtx, report)
		}
		return report, nil
	})

	return v.(models.SyncReport)
}
