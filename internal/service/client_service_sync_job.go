package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/notesync/internal/logger"
	"github.com/MKhiriev/notesync/models"
)

// syncer is the part of the engine the periodic job drives.
type syncer interface {
	SyncNow(ctx context.Context) (models.SyncResult, error)
}

type clientSyncJob struct {
	engine   syncer
	interval time.Duration

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewClientSyncJob creates a job that calls engine.SyncNow every interval.
// The job is idle until Run is called; a non-positive interval keeps it idle.
func NewClientSyncJob(engine syncer, interval time.Duration) *clientSyncJob {
	return &clientSyncJob{engine: engine, interval: interval}
}

// Run implements workers.Worker. It stops any previously running loop, then
// launches a goroutine that syncs every interval until ctx is cancelled or
// Stop is called.
func (j *clientSyncJob) Run(ctx context.Context) {
	if j.interval <= 0 {
		return
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(j.interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				if _, err := j.engine.SyncNow(jobCtx); err != nil {
					logger.FromContext(jobCtx).Debug().Err(err).
						Str("func", "clientSyncJob.Run").
						Msg("periodic sync failed")
				}
			}
		}
	}()
}

// Stop implements workers.Worker. It cancels the loop and blocks until the
// goroutine has exited. Safe to call when the job is not running.
func (j *clientSyncJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
