package gentzen

import (
	"context"
	"sort"

	"github.com/hashicorp/go-hclog"
)

// Option configures a single Prove call.
type Option func(*searchConfig)

type searchConfig struct {
	logger   hclog.Logger
	maxSteps int // 0 means unbounded
}

// WithLogger wires a debug logger into the search driver. Events are
// emitted at hclog.Debug for sequents pushed, popped, inferences
// paused, inferences closed, and the final Qed. A nil logger (the
// default) is replaced with hclog.NewNullLogger, so callers never need
// to nil-check.
func WithLogger(logger hclog.Logger) Option {
	return func(c *searchConfig) { c.logger = logger }
}

// WithMaxSteps caps the number of sequents the driver will pop from
// the queue before giving up. Zero (the default) means unbounded. This
// is the "implementations may cap |context| / step count" allowance
// from the search driver's resource model: exceeding the budget is
// reported the same way as exhausting the queue, ErrRanOutOfPaths.
func WithMaxSteps(n int) Option {
	return func(c *searchConfig) { c.maxSteps = n }
}

// Prove decides whether "⊢ φ" is derivable, returning the
// reconstructed proof tree on success or ErrRanOutOfPaths when the
// bounded search exhausts every reachable sequent. It also returns
// ctx.Err() promptly if ctx is canceled or its deadline passes; the
// check happens once per popped sequent, so it never interrupts the
// indivisible per-sequent expansion-and-close step.
func Prove(ctx context.Context, goal Formula, opts ...Option) (Tree, error) {
	cfg := searchConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	logger := cfg.logger
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	goalSequent := NewSequent(goal)
	cache := NewCache(goalSequent)
	pending := make(map[string]Inference)

	steps := 0
	for {
		if err := ctx.Err(); err != nil {
			return Tree{}, err
		}
		if cfg.maxSteps > 0 && steps >= cfg.maxSteps {
			logger.Debug("step budget exhausted", "max_steps", cfg.maxSteps)
			return Tree{}, ErrRanOutOfPaths
		}

		current, ok := cache.Pop()
		if !ok {
			break
		}
		steps++
		logger.Debug("popped sequent", "sequent", current.String())

		for _, sample := range current.Sample() {
			for _, rule := range candidates(sample.Principal, sample.Context) {
				inf := NewInference(current, rule)
				key := inf.Key()
				if _, exists := pending[key]; exists {
					continue
				}
				pending[key] = inf
				logger.Debug("paused inference", "below", current.String(), "rule", rule.Name)
				for _, premise := range inf.Premises() {
					if err := cache.Push(premise); err == nil {
						logger.Debug("pushed sequent", "sequent", premise.String())
					}
				}
			}
		}

		for {
			progress := false
			keys := make([]string, 0, len(pending))
			for key := range pending {
				keys = append(keys, key)
			}
			sort.Strings(keys)
			for _, key := range keys {
				inf := pending[key]
				if cache.IsProven(inf.Below) {
					delete(pending, key)
					continue
				}
				if !inf.IsReady(cache) {
					continue
				}
				switch err := cache.Cache(inf.Below, inf.Rule).(type) {
				case nil:
					delete(pending, key)
					progress = true
					logger.Debug("closed inference", "below", inf.Below.String(), "rule", inf.Rule.Name)
				case Qed:
					logger.Debug("qed", "rule", err.Proof.Name)
					return reconstruct(cache, goalSequent, err.Proof), nil
				}
			}
			if !progress {
				break
			}
		}
	}
	return Tree{}, ErrRanOutOfPaths
}
