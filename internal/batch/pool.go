// Package batch fans independent proof searches out across a bounded
// worker pool. The search inside a single gentzen.Prove call stays
// single-threaded and cooperative; concurrency here only ever spans
// unrelated top-level Prove invocations, so no search state crosses a
// goroutine boundary.
package batch

import (
	"context"
	"errors"
	"runtime"
	"sync"
	"sync/atomic"
	"time"
)

// ErrPoolShutdown is returned by Submit once Shutdown has been called.
var ErrPoolShutdown = errors.New("gentzen/batch: pool is shut down")

// StaticWorkerPool runs submitted tasks across a fixed number of
// goroutines. Adapted from the teacher's parallel package, trimmed to
// the fixed-size case: this domain never needs the dynamic/work-
// stealing/rate-limited variants, since every task here is an
// independent, uniformly-sized Prove call.
type StaticWorkerPool struct {
	maxWorkers   int
	taskChan     chan func()
	workerWg     sync.WaitGroup
	shutdownChan chan struct{}
	once         sync.Once
}

// NewStaticWorkerPool creates a pool with the given number of workers,
// defaulting to runtime.NumCPU() when workers <= 0.
func NewStaticWorkerPool(workers int) *StaticWorkerPool {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	pool := &StaticWorkerPool{
		maxWorkers:   workers,
		taskChan:     make(chan func(), workers*2),
		shutdownChan: make(chan struct{}),
	}
	for i := 0; i < workers; i++ {
		pool.workerWg.Add(1)
		go pool.worker()
	}
	return pool
}

func (swp *StaticWorkerPool) worker() {
	defer swp.workerWg.Done()
	for {
		select {
		case task := <-swp.taskChan:
			if task != nil {
				task()
			}
		case <-swp.shutdownChan:
			return
		}
	}
}

// Submit enqueues task for execution by some worker. It returns
// ctx.Err() if ctx is canceled before the task is accepted, and
// ErrPoolShutdown if the pool has already been shut down.
func (swp *StaticWorkerPool) Submit(ctx context.Context, task func()) error {
	select {
	case <-swp.shutdownChan:
		return ErrPoolShutdown
	default:
	}
	select {
	case swp.taskChan <- task:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-swp.shutdownChan:
		return ErrPoolShutdown
	}
}

// Shutdown stops accepting new tasks and waits for in-flight workers
// to drain. Safe to call more than once.
func (swp *StaticWorkerPool) Shutdown() {
	swp.once.Do(func() {
		close(swp.shutdownChan)
		close(swp.taskChan)
		swp.workerWg.Wait()
	})
}

// WorkerCount reports the pool's fixed size.
func (swp *StaticWorkerPool) WorkerCount() int { return swp.maxWorkers }

// QueueDepth reports the number of tasks currently buffered, awaiting
// a free worker.
func (swp *StaticWorkerPool) QueueDepth() int { return len(swp.taskChan) }

// ExecutionStats accumulates timing and outcome counts across a batch
// run. Trimmed from the teacher's version: this domain has no dynamic
// scaling, backpressure, or deadlock detector to report on, so those
// fields are dropped; task counts and durations are kept because
// RunCatalog's demo output wants them.
type ExecutionStats struct {
	mu sync.RWMutex

	StartTime          time.Time
	EndTime            time.Time
	TotalExecutionTime time.Duration

	TasksSubmitted int64
	TasksSucceeded int64
	TasksFailed    int64

	AverageTaskDuration time.Duration

	taskDurationHistory []time.Duration
}

// NewExecutionStats starts a stats collector with its clock running.
func NewExecutionStats() *ExecutionStats {
	return &ExecutionStats{
		StartTime:           time.Now(),
		taskDurationHistory: make([]time.Duration, 0, 16),
	}
}

// RecordSubmitted records that one more task was handed to the pool.
func (es *ExecutionStats) RecordSubmitted() { atomic.AddInt64(&es.TasksSubmitted, 1) }

// RecordResult records a task's outcome and how long it took.
func (es *ExecutionStats) RecordResult(succeeded bool, duration time.Duration) {
	if succeeded {
		atomic.AddInt64(&es.TasksSucceeded, 1)
	} else {
		atomic.AddInt64(&es.TasksFailed, 1)
	}
	es.mu.Lock()
	es.taskDurationHistory = append(es.taskDurationHistory, duration)
	es.mu.Unlock()
}

// Finalize stops the clock, computes the average task duration, and
// returns it. The average is also stored in AverageTaskDuration, so
// callers that already hold a finalized *ExecutionStats can read it
// directly without calling Finalize a second time.
func (es *ExecutionStats) Finalize() (avg time.Duration) {
	es.mu.Lock()
	defer es.mu.Unlock()
	es.EndTime = time.Now()
	es.TotalExecutionTime = es.EndTime.Sub(es.StartTime)
	if len(es.taskDurationHistory) == 0 {
		return 0
	}
	var total time.Duration
	for _, d := range es.taskDurationHistory {
		total += d
	}
	es.AverageTaskDuration = total / time.Duration(len(es.taskDurationHistory))
	return es.AverageTaskDuration
}
