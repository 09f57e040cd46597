package gentzen

import "testing"

func TestSequentSampleCoversEveryDistinctFormula(t *testing.T) {
	seq := NewSequent(Value(0), Value(1), Value(0))
	samples := seq.Sample()
	if len(samples) != 2 {
		t.Fatalf("Sample() returned %d entries, want 2 distinct formulas", len(samples))
	}
	for _, s := range samples {
		if s.Principal.Equal(Value(0)) {
			if s.Context.Len() != 2 {
				t.Errorf("context for P0 should keep the other two formulas, got len %d", s.Context.Len())
			}
		}
		if s.Principal.Equal(Value(1)) {
			if s.Context.Len() != 2 {
				t.Errorf("context for P1 should keep the other two formulas, got len %d", s.Context.Len())
			}
			if !s.Context.Contains(Value(0)) {
				t.Error("context for P1 should still contain both P0 occurrences")
			}
		}
	}
}

func TestSequentStringTurnstile(t *testing.T) {
	empty := NewSequent()
	if got := empty.String(); got != "⊢" {
		t.Errorf("empty sequent String() = %q, want %q", got, "⊢")
	}
	nonEmpty := NewSequent(One())
	if got := nonEmpty.String(); got != "⊢ 1" {
		t.Errorf("String() = %q, want %q", got, "⊢ 1")
	}
}

func TestSequentEqualityIgnoresConstructionOrder(t *testing.T) {
	a := NewSequent(Value(0), Value(1))
	b := NewSequent(Value(1), Value(0))
	if !a.Equal(b) {
		t.Error("sequents built from the same formulas in different order should be equal")
	}
}

func TestPremisesKeyIgnoresRuleName(t *testing.T) {
	premises := NewSequent(Value(0))
	r1 := NewRule("name-one", premises)
	r2 := NewRule("name-two", premises)
	if !r1.Equal(r2) {
		t.Error("rules with identical premises should be equal regardless of name")
	}
	if r1.Key() != r2.Key() {
		t.Error("Key() should ignore rule name")
	}
}

func TestPremisesIsAxiom(t *testing.T) {
	axiom := NewRule("axiom")
	if !axiom.IsAxiom() {
		t.Error("a rule with no premises should report IsAxiom() = true")
	}
	nonAxiom := NewRule("⅋", NewSequent(Value(0), Value(1)))
	if nonAxiom.IsAxiom() {
		t.Error("a rule with premises should report IsAxiom() = false")
	}
}
