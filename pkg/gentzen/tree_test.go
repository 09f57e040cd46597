package gentzen

import (
	"context"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// treeCmpOpts bypasses Formula's and Sequent's unexported internals:
// both types already define value-level Equal, so cmp should use that
// instead of trying to reflect into private fields.
var treeCmpOpts = cmp.Options{
	cmp.Comparer(func(a, b Formula) bool { return a.Equal(b) }),
	cmp.Comparer(func(a, b Sequent) bool { return a.Equal(b) }),
}

// TestProofCacheIdempotence checks quantified invariant 2: rebuilding
// the cache from scratch and re-running the search for the same goal
// produces an isomorphic Tree.
func TestProofCacheIdempotence(t *testing.T) {
	goals := []Formula{
		One(),
		Top(),
		With(One(), One()),
		Lollipop(With(Value(0), Value(1)), Value(0)),
		Par(Value(0), Dual(Value(0))),
	}
	for _, goal := range goals {
		first, err := Prove(context.Background(), goal)
		if err != nil {
			t.Fatalf("Prove(%v) failed: %v", goal, err)
		}
		second, err := Prove(context.Background(), goal)
		if err != nil {
			t.Fatalf("second Prove(%v) failed: %v", goal, err)
		}
		if diff := cmp.Diff(first, second, treeCmpOpts); diff != "" {
			t.Errorf("Prove(%v) produced non-isomorphic trees across runs (-first +second):\n%s", goal, diff)
		}
	}
}

func TestTreeStringContainsRuleLabels(t *testing.T) {
	tree, err := Prove(context.Background(), With(One(), One()))
	if err != nil {
		t.Fatalf("Prove failed: %v", err)
	}
	s := tree.String()
	if s == "" {
		t.Fatal("Tree.String() should not be empty for a successful proof")
	}
	for _, label := range []string{"&", "1"} {
		if !strings.Contains(s, "- "+label) {
			t.Errorf("Tree.String() should contain an inference line labeled %q, got:\n%s", label, s)
		}
	}
}
