package batch

import (
	"context"
	"sync"
	"time"

	"github.com/gitrdm/gentzen/pkg/gentzen"
	"github.com/gitrdm/gentzen/pkg/gentzen/catalog"
)

// Result is the outcome of proving one catalog entry.
type Result struct {
	Entry    catalog.Entry
	Tree     gentzen.Tree
	Err      error
	Duration time.Duration
}

// Provable reports whether the search succeeded.
func (r Result) Provable() bool { return r.Err == nil }

// RunCatalog runs Prove for every entry concurrently across a pool of
// workers, returning one Result per entry in the same order as
// entries. Each Prove call is ordinary and single-threaded; only the
// fan-out across unrelated entries is concurrent.
func RunCatalog(ctx context.Context, entries []catalog.Entry, workers int) ([]Result, *ExecutionStats) {
	pool := NewStaticWorkerPool(workers)
	defer pool.Shutdown()

	stats := NewExecutionStats()
	results := make([]Result, len(entries))

	var wg sync.WaitGroup
	for i, entry := range entries {
		i, entry := i, entry
		wg.Add(1)
		stats.RecordSubmitted()
		err := pool.Submit(ctx, func() {
			defer wg.Done()
			start := time.Now()
			tree, proveErr := gentzen.Prove(ctx, entry.Formula)
			duration := time.Since(start)
			stats.RecordResult(proveErr == nil, duration)
			results[i] = Result{Entry: entry, Tree: tree, Err: proveErr, Duration: duration}
		})
		if err != nil {
			wg.Done()
			results[i] = Result{Entry: entry, Err: err}
		}
	}
	wg.Wait()
	stats.Finalize()
	return results, stats
}
