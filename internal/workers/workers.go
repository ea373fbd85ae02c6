package workers

import "context"

// Workers aggregates background workers so the server can start them as
// one unit.
type Workers struct {
	workers []Worker
}

// NewWorkers bundles the given workers.
func NewWorkers(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

// Run launches every worker on its own goroutine. The workers stop when
// ctx is cancelled.
func (w *Workers) Run(ctx context.Context) {
	for _, worker := range w.workers {
		go worker.Run(ctx)
	}
}
