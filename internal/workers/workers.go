package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-agreement-keeper/internal/logger"
	"golang.org/x/sync/errgroup"
)

type Workers struct {
	workers []Worker
}

func NewWorkers(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

// Add registers more workers; it must not be called while Run is active.
func (w *Workers) Add(workers ...Worker) {
	w.workers = append(w.workers, workers...)
}

func (w *Workers) Len() int {
	return len(w.workers)
}

// Run starts every worker and waits for all of them. The first failure
// cancels the others and is returned. Cancelling ctx is not a failure.
func (w *Workers) Run(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)
	for _, worker := range w.workers {
		g.Go(func() error {
			return worker.Run(gctx)
		})
	}
	return g.Wait()
}

// Periodic calls a function on a fixed interval. Errors of a single tick are
// logged and do not stop the worker.
type Periodic struct {
	name     string
	interval time.Duration
	tick     func(ctx context.Context) error
}

func NewPeriodic(name string, interval time.Duration, tick func(ctx context.Context) error) *Periodic {
	return &Periodic{name: name, interval: interval, tick: tick}
}

func (p *Periodic) Run(ctx context.Context) error {
	log := logger.FromContext(ctx)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Debug().Str("worker", p.name).Msg("worker stopped")
			return nil
		case <-ticker.C:
			if err := p.tick(ctx); err != nil {
				log.Warn().Err(err).Str("worker", p.name).Msg("worker tick failed")
			}
		}
	}
}
