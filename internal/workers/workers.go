package workers

import (
	"context"
	"errors"
	"sync"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
)

type Workers struct {
	workers []Worker
	logger  *logger.Logger
}

func NewWorkers(logger *logger.Logger, workers ...Worker) *Workers {
	return &Workers{workers: workers, logger: logger}
}

// Add registers w. It must not be called while Run is in progress.
func (w *Workers) Add(worker Worker) {
	w.workers = append(w.workers, worker)
}

// Run starts every worker in its own goroutine and waits for all of them to
// return. Errors from failed workers are joined.
func (w *Workers) Run(ctx context.Context) error {
	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs []error
	)

	for _, worker := range w.workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := worker.Run(ctx); err != nil {
				if w.logger != nil {
					w.logger.Err(err).Msg("worker stopped with error")
				}
				mu.Lock()
				errs = append(errs, err)
				mu.Unlock()
			}
		}()
	}

	wg.Wait()
	return errors.Join(errs...)
}

// Len returns the number of registered workers.
func (w *Workers) Len() int {
	return len(w.workers)
}
