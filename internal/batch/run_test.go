package batch

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gitrdm/gentzen/pkg/gentzen/catalog"
)

func TestRunCatalogMatchesExpectedOutcomes(t *testing.T) {
	entries := catalog.Entries()
	results, stats := RunCatalog(context.Background(), entries, 4)

	require.Len(t, results, len(entries))
	for i, r := range results {
		assert.Equal(t, entries[i].Name, r.Entry.Name)
		assert.Equal(t, entries[i].WantProvable, r.Provable(),
			"entry %q: got provable=%v, want %v", r.Entry.Name, r.Provable(), entries[i].WantProvable)
	}

	assert.Equal(t, int64(len(entries)), stats.TasksSubmitted)
	assert.Equal(t, stats.TasksSucceeded+stats.TasksFailed, stats.TasksSubmitted)
}

func TestRunCatalogRespectsWorkerCountZero(t *testing.T) {
	entries := catalog.Entries()[:3]
	results, _ := RunCatalog(context.Background(), entries, 0)
	require.Len(t, results, 3)
}

func TestRunCatalogHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	entries := catalog.Entries()
	results, _ := RunCatalog(ctx, entries, 2)
	require.Len(t, results, len(entries))
	// The context was already canceled before any entry was submitted,
	// so every result should short-circuit with context.Canceled rather
	// than a real proof search outcome — whether Submit rejects the
	// task outright or the task runs and Prove observes ctx.Err() on
	// its first loop iteration.
	for _, r := range results {
		assert.Equal(t, context.Canceled, r.Err, "entry %q should short-circuit on a canceled context", r.Entry.Name)
	}
}
