// Package workers provides the device's recurring background jobs and a
// Workers aggregate that starts and stops them as a group.
//
// Two jobs run on the device: the bitset refresh (sync worker) and the
// status poll (status worker). Both follow the same lifecycle: idle after
// construction, a ticker goroutine after Start, fully drained after Stop.
package workers

import "context"

// Worker is a recurring background job.
//
// Start launches the job's goroutine; the job runs until ctx is cancelled
// or Stop is called. Stop blocks until the goroutine has fully exited and
// is safe to call when the job is not running.
type Worker interface {
	Start(ctx context.Context)
	Stop()
}

// Workers runs a set of workers as a unit.
type Workers struct {
	workers []Worker
}

// NewWorkers aggregates the given workers. Order matters for Start; Stop
// runs in reverse so later workers drain first.
func NewWorkers(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

// Start launches every worker.
func (w *Workers) Start(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Start(ctx)
	}
}

// Stop stops every worker in reverse order and blocks until all have
// exited.
func (w *Workers) Stop() {
	for i := len(w.workers) - 1; i >= 0; i-- {
		w.workers[i].Stop()
	}
}
