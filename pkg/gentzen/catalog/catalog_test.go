package catalog

import (
	"context"
	"testing"

	"github.com/gitrdm/gentzen/pkg/gentzen"
)

func TestEntriesMatchProveOutcome(t *testing.T) {
	for _, e := range Entries() {
		t.Run(e.Name, func(t *testing.T) {
			_, err := gentzen.Prove(context.Background(), e.Formula)
			got := err == nil
			if got != e.WantProvable {
				t.Errorf("catalog entry %q: Prove success = %v, want %v (err=%v)", e.Name, got, e.WantProvable, err)
			}
		})
	}
}

func TestByName(t *testing.T) {
	if _, ok := ByName("one"); !ok {
		t.Error(`ByName("one") should be found`)
	}
	if _, ok := ByName("not-a-real-entry"); ok {
		t.Error("ByName should report ok=false for an unknown name")
	}
}
