package gentzen

import "strings"

// Sequent is a one-sided sequent "⊢ Γ": a multiset of formulas, all on
// the right-hand side, implicitly joined by ⅋. Sequents compare and
// hash structurally, so two sequents with the same multiset of
// formulas are the same sequent regardless of how they were built.
type Sequent struct {
	RHS Multiset
}

// FromRHS wraps an existing multiset as a sequent.
func FromRHS(rhs Multiset) Sequent { return Sequent{RHS: rhs} }

// NewSequent builds a sequent from a list of formulas.
func NewSequent(formulas ...Formula) Sequent {
	m := NewMultiset()
	for _, f := range formulas {
		m.Insert(f)
	}
	return Sequent{RHS: m}
}

// Len reports the number of formulas in the sequent, counting
// duplicates.
func (s Sequent) Len() int { return s.RHS.Size() }

// IsEmpty reports whether the sequent has no formulas.
func (s Sequent) IsEmpty() bool { return s.RHS.IsEmpty() }

// Contains reports whether f occurs anywhere in the sequent.
func (s Sequent) Contains(f Formula) bool { return s.RHS.Contains(f) }

// With returns a new sequent with each addition inserted; s itself is
// left unchanged.
func (s Sequent) With(additions ...Formula) Sequent {
	return Sequent{RHS: s.RHS.With(additions...)}
}

// Without returns a new sequent with one occurrence of f removed, and
// reports whether f was present to remove.
func (s Sequent) Without(f Formula) (Sequent, bool) {
	out := s.RHS.clone()
	ok := out.Take(f)
	return Sequent{RHS: out}, ok
}

// Only returns the sole formula of the sequent iff it has exactly one.
func (s Sequent) Only() (Formula, bool) { return s.RHS.Only() }

// Compare gives Sequent a total order, delegating to Multiset.Compare.
func (s Sequent) Compare(other Sequent) int { return s.RHS.Compare(other.RHS) }

// Less reports whether s sorts strictly before other. This is what
// backs the proof cache's min-priority queue: smaller sequents (by
// size, then lexicographically) are tried first, so axiom-sized
// sequents bubble to the front of the search.
func (s Sequent) Less(other Sequent) bool { return s.Compare(other) < 0 }

// Equal reports whether two sequents carry the same multiset of
// formulas.
func (s Sequent) Equal(other Sequent) bool { return s.Compare(other) == 0 }

// Key returns a canonical string encoding for use as a map key in the
// proof cache.
func (s Sequent) Key() string { return s.RHS.Key() }

// String renders the sequent in turnstile notation, "⊢ φ, ψ, ...".
func (s Sequent) String() string {
	if s.IsEmpty() {
		return "⊢"
	}
	return "⊢ " + s.RHS.String()
}

// Sample is one candidate principal-formula choice: the chosen formula
// plus the sequent formed by every other occurrence in the original
// sequent (the ambient context the rule's premises get built against).
type Sample struct {
	Principal Formula
	Context   Sequent
}

// Sample enumerates one candidate Sample per distinct formula in the
// sequent — the search driver tries each distinct formula in turn as
// the principal formula of the next inference.
func (s Sequent) Sample() []Sample {
	unique := s.RHS.UniqueEntries()
	out := make([]Sample, 0, len(unique))
	for _, e := range unique {
		rest, _ := s.Without(e.formula)
		out = append(out, Sample{Principal: e.formula, Context: rest})
	}
	return out
}

// Premises is a multiset of sequents: the set of premise sequents
// above a [Rule]'s line, keyed and ordered the same way [Multiset]
// handles formulas. It is a distinct type rather than a generic
// Multiset[Sequent] to match this codebase's concrete, non-generic
// style.
type Premises struct {
	entries map[string]*premiseEntry
}

type premiseEntry struct {
	sequent Sequent
	count   int
}

// NewPremises builds a Premises multiset from zero or more sequents.
func NewPremises(sequents ...Sequent) Premises {
	p := Premises{entries: make(map[string]*premiseEntry)}
	for _, s := range sequents {
		p.insert(s)
	}
	return p
}

func (p *Premises) insert(s Sequent) {
	if p.entries == nil {
		p.entries = make(map[string]*premiseEntry)
	}
	key := s.Key()
	if e, ok := p.entries[key]; ok {
		e.count++
		return
	}
	p.entries[key] = &premiseEntry{sequent: s, count: 1}
}

// Size reports the number of premise sequents, counting duplicates.
func (p Premises) Size() int {
	total := 0
	for _, e := range p.entries {
		total += e.count
	}
	return total
}

// IsEmpty reports whether there are no premises — the hallmark of an
// axiom rule.
func (p Premises) IsEmpty() bool { return len(p.entries) == 0 }

// Elements returns every premise sequent, duplicates included, ordered
// deterministically by Sequent.Compare.
func (p Premises) Elements() []Sequent {
	unique := make([]premiseEntry, 0, len(p.entries))
	for _, e := range p.entries {
		unique = append(unique, *e)
	}
	for i := 1; i < len(unique); i++ {
		for j := i; j > 0 && unique[j].sequent.Less(unique[j-1].sequent); j-- {
			unique[j], unique[j-1] = unique[j-1], unique[j]
		}
	}
	out := make([]Sequent, 0, len(unique))
	for _, e := range unique {
		for i := 0; i < e.count; i++ {
			out = append(out, e.sequent)
		}
	}
	return out
}

// Key returns a canonical string encoding, used by Rule.Key to decide
// rule equality independent of rule name.
func (p Premises) Key() string {
	var sb strings.Builder
	for _, s := range p.Elements() {
		sb.WriteString(s.Key())
		sb.WriteByte(';')
	}
	return sb.String()
}

// Equal reports whether two Premises carry the same multiset of
// sequents.
func (p Premises) Equal(other Premises) bool { return p.Key() == other.Key() }
