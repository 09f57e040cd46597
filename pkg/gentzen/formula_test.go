package gentzen

import "testing"

func TestFormulaString(t *testing.T) {
	cases := []struct {
		name string
		f    Formula
		want string
	}{
		{"one", One(), "1"},
		{"bottom", Bottom(), "⊥"},
		{"top", Top(), "⊤"},
		{"zero", Zero(), "0"},
		{"value", Value(3), "P3"},
		{"bang", Bang(Value(0)), "!P0"},
		{"quest", Quest(Value(0)), "?P0"},
		{"dual", Dual(Value(0)), "~P0"},
		{"times", Times(One(), Zero()), "(1 ⊗ 0)"},
		{"par", Par(One(), Zero()), "(1 ⅋ 0)"},
		{"with", With(One(), Zero()), "(1 & 0)"},
		{"plus", Plus(One(), Zero()), "(1 ⊕ 0)"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.f.String(); got != c.want {
				t.Errorf("String() = %q, want %q", got, c.want)
			}
		})
	}
}

func TestLollipopIsSugar(t *testing.T) {
	a, b := Value(0), Value(1)
	got := Lollipop(a, b)
	want := Par(Dual(a), b)
	if !got.Equal(want) {
		t.Errorf("Lollipop(a, b) = %v, want %v", got, want)
	}
}

func TestFormulaEqual(t *testing.T) {
	if !Times(Value(0), Value(1)).Equal(Times(Value(0), Value(1))) {
		t.Error("identical structures should be equal")
	}
	if Times(Value(0), Value(1)).Equal(Times(Value(1), Value(0))) {
		t.Error("operand order matters for Times")
	}
	if Value(0).Equal(Value(1)) {
		t.Error("distinct variables should not be equal")
	}
}

func TestFormulaCompareTotalOrder(t *testing.T) {
	// This list is already sorted ascending by Compare's own rules
	// (variant tag, then Value index): each formula must compare
	// strictly less than the next, and equal to itself.
	formulas := []Formula{
		One(), Bottom(), Top(), Zero(), Value(0), Value(1),
		Bang(One()), Quest(One()), Dual(One()),
		Times(One(), One()), Par(One(), One()), With(One(), One()), Plus(One(), One()),
	}
	for i := range formulas {
		if formulas[i].Compare(formulas[i]) != 0 {
			t.Errorf("Compare(%v, %v) != 0, want reflexive equality", formulas[i], formulas[i])
		}
		if i+1 < len(formulas) {
			a, b := formulas[i], formulas[i+1]
			if a.Compare(b) >= 0 {
				t.Errorf("Compare(%v, %v) = %d, want < 0", a, b, a.Compare(b))
			}
			if b.Compare(a) <= 0 {
				t.Errorf("Compare(%v, %v) = %d, want > 0", b, a, b.Compare(a))
			}
		}
	}
}

func TestFormulaHashStable(t *testing.T) {
	f := Lollipop(With(Value(0), Value(1)), Value(0))
	h1 := f.Hash()
	h2 := Lollipop(With(Value(0), Value(1)), Value(0)).Hash()
	if h1 != h2 {
		t.Errorf("Hash() not stable across equal structural builds: %d != %d", h1, h2)
	}
}

func TestPushdownDeMorgan(t *testing.T) {
	cases := []struct {
		name  string
		input Formula
		want  Formula
		ok    bool
	}{
		{"one<->bottom", One(), Bottom(), true},
		{"bottom<->one", Bottom(), One(), true},
		{"top<->zero", Top(), Zero(), true},
		{"zero<->top", Zero(), Top(), true},
		{"value stuck", Value(0), Formula{}, false},
		{"dual involution", Dual(Value(0)), Value(0), true},
		{"bang<->quest", Bang(Value(0)), Quest(Dual(Value(0))), true},
		{"quest<->bang", Quest(Value(0)), Bang(Dual(Value(0))), true},
		{"times<->par", Times(Value(0), Value(1)), Par(Dual(Value(0)), Dual(Value(1))), true},
		{"par<->times", Par(Value(0), Value(1)), Times(Dual(Value(0)), Dual(Value(1))), true},
		{"with<->plus", With(Value(0), Value(1)), Plus(Dual(Value(0)), Dual(Value(1))), true},
		{"plus<->with", Plus(Value(0), Value(1)), With(Dual(Value(0)), Dual(Value(1))), true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, ok := pushdown(c.input)
			if ok != c.ok {
				t.Fatalf("pushdown(%v) ok = %v, want %v", c.input, ok, c.ok)
			}
			if ok && !got.Equal(c.want) {
				t.Errorf("pushdown(%v) = %v, want %v", c.input, got, c.want)
			}
		})
	}
}
