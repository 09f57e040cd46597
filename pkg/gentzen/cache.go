package gentzen

import "container/heap"

// assertInvariants gates the cache's internal consistency checks.
// They run in every build (this codebase favors always-on
// correctness checks over a separate debug build tag) but describe
// programmer errors, not recoverable conditions: tripping one means
// the search driver itself is wrong, not that the input formula is
// unprovable.
const assertInvariants = true

// errAlreadyProven signals that Cache.Push was asked to track a
// sequent that is already marked proven; the caller should treat this
// as "nothing to do" rather than an error.
type errAlreadyProven struct{}

func (errAlreadyProven) Error() string { return "gentzen: sequent already proven" }

// Qed signals that the cache just proved its original goal sequent.
// It carries the rule that closed it.
type Qed struct {
	Proof Rule
}

func (Qed) Error() string { return "gentzen: proof complete" }

// cacheEntry is what the cache remembers about a sequent it has seen:
// nothing yet (Rule is the zero value, Proven is false) or a closing
// rule.
type cacheEntry struct {
	rule   Rule
	proven bool
}

// sequentHeap is a min-priority queue of sequents ordered by
// Sequent.Less, giving smallest-first iteration. Go's container/heap
// pops the smallest element directly, unlike Rust's max-heap-by-
// default BinaryHeap, so no Reverse wrapper is needed here.
type sequentHeap []Sequent

func (h sequentHeap) Len() int            { return len(h) }
func (h sequentHeap) Less(i, j int) bool  { return h[i].Less(h[j]) }
func (h sequentHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *sequentHeap) Push(x interface{}) { *h = append(*h, x.(Sequent)) }
func (h *sequentHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// Cache is the proof cache ("thunk"): every sequent ever pushed is
// remembered in seen exactly once, transitioning from unproven to
// proven at most once; an entry leaves only when Yank consumes it
// during tree reconstruction. queue holds the pushed sequents not yet
// popped, smallest first.
type Cache struct {
	seen     map[string]*cacheEntry
	queue    sequentHeap
	original Sequent
}

// NewCache creates a cache seeded with exactly the goal sequent.
func NewCache(goal Sequent) *Cache {
	c := &Cache{
		seen:     make(map[string]*cacheEntry),
		original: goal,
	}
	heap.Init(&c.queue)
	if err := c.Push(goal); err != nil {
		panic("gentzen: fresh cache could not push its own goal")
	}
	return c
}

// Push registers sequent as one to prove, unless it has already been
// seen. Pushing a sequent already marked proven returns
// errAlreadyProven; pushing one that's unproven-but-seen, or entirely
// new, succeeds (and enqueues it when new).
func (c *Cache) Push(sequent Sequent) error {
	key := sequent.Key()
	if e, ok := c.seen[key]; ok {
		if e.proven {
			return errAlreadyProven{}
		}
		return nil
	}
	c.seen[key] = &cacheEntry{}
	heap.Push(&c.queue, sequent)
	return nil
}

// Pop removes and returns the smallest unproven sequent in the queue.
// It reports ok=false when the queue is empty.
func (c *Cache) Pop() (Sequent, bool) {
	if c.queue.Len() == 0 {
		return Sequent{}, false
	}
	return heap.Pop(&c.queue).(Sequent), true
}

// IsProven reports whether sequent has a cached closing rule.
func (c *Cache) IsProven(sequent Sequent) bool {
	e, ok := c.seen[sequent.Key()]
	return ok && e.proven
}

// IsSeen reports whether sequent has ever been pushed.
func (c *Cache) IsSeen(sequent Sequent) bool {
	_, ok := c.seen[sequent.Key()]
	return ok
}

// Cache marks sequent proven by rule. If sequent is the cache's
// original goal, it returns Qed{rule} instead of nil, signaling the
// whole search is complete.
//
// It panics if sequent was never seen, or if it was already marked
// proven — both are programmer errors in the search driver, not
// recoverable failures (see assertInvariants).
func (c *Cache) Cache(sequent Sequent, rule Rule) error {
	if sequent.Equal(c.original) {
		return Qed{Proof: rule}
	}
	key := sequent.Key()
	e, ok := c.seen[key]
	if !ok {
		if assertInvariants {
			panic("gentzen: tried to mark a never-seen sequent proven: " + sequent.String())
		}
		c.seen[key] = &cacheEntry{rule: rule, proven: true}
		return nil
	}
	if assertInvariants && e.proven {
		panic("gentzen: tried to mark an already-proven sequent proven again: " + sequent.String())
	}
	e.rule = rule
	e.proven = true
	return nil
}

// Yank removes and returns the cached closing rule for sequent, if
// any. Shared subproofs may be yanked more than once during tree
// reconstruction; only the first yank returns a rule, later ones
// report ok=false so the reconstructor can render the sequent as an
// "already proven" leaf instead of repeating the full subtree.
func (c *Cache) Yank(sequent Sequent) (Rule, bool) {
	key := sequent.Key()
	e, ok := c.seen[key]
	if !ok || !e.proven {
		return Rule{}, false
	}
	delete(c.seen, key)
	return e.rule, true
}

// Original returns the goal sequent this cache was created to prove.
func (c *Cache) Original() Sequent { return c.original }
