// Package worker runs background jobs for the service process.
package worker

import (
	"context"
	"errors"
	"sync"
)

// Worker is a long-running job that exits when its context is cancelled.
type Worker interface {
	Start(ctx context.Context) error
}

// Manager starts and supervises a set of workers. It runs until its context
// is cancelled, then waits for every worker to exit.
type Manager struct {
	workers []Worker
}

func NewManager(ws ...Worker) *Manager {
	return &Manager{workers: ws}
}

func (m *Manager) Start(ctx context.Context) error {
	var (
		mu   sync.Mutex
		errs []error
		wg   sync.WaitGroup
	)
	for _, w := range m.workers {
		wg.Add(1)
		go func(w Worker) {
			defer wg.Done()
			if err := w.Start(ctx); err != nil {
				mu.Lock()
				errs = append(errs, err)
				mu.Unlock()
			}
		}(w)
	}

	<-ctx.Done()
	wg.Wait()

	// Workers that failed before cancellation are all reported.
	return errors.Join(errs...)
}
