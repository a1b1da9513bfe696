package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-agreement-keeper/internal/workers"
)

const defaultSyncInterval = 5 * time.Minute

// clientSyncJob runs FullSync as a periodic worker. At most one worker is
// alive per job.
type clientSyncJob struct {
	syncService ClientSyncService

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// NewClientSyncJob returns an idle job; nothing runs until Start.
func NewClientSyncJob(syncService ClientSyncService) ClientSyncJob {
	return &clientSyncJob{syncService: syncService}
}

func (j *clientSyncJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = defaultSyncInterval
	}

	j.Stop()

	worker := workers.NewPeriodic("client-sync", interval, j.syncService.FullSync)
	jobCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})

	j.mu.Lock()
	j.cancel, j.done = cancel, done
	j.mu.Unlock()

	go func() {
		defer close(done)
		_ = worker.Run(jobCtx)
	}()
}

// Stop cancels the running worker and waits until it returns. It is a no-op
// on an idle job.
func (j *clientSyncJob) Stop() {
	j.mu.Lock()
	cancel, done := j.cancel, j.done
	j.cancel, j.done = nil, nil
	j.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}
