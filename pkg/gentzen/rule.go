package gentzen

// Rule is one candidate inference step: introduce a connective named
// Name, leaving Above as the multiset of premise sequents that must
// each be proven for the rule to discharge its conclusion.
//
// Rule equality and hashing depend only on Above, never on Name: two
// rules with the same premises are the same rule for caching purposes,
// even if a principal formula could reach them under two different
// names (⊕L and ⊕R on A ⊕ A, for instance, both leave the premise
// "⊢ Γ, A").
type Rule struct {
	Name  string
	Above Premises
}

// NewRule builds a rule from a name and a list of premise sequents.
func NewRule(name string, premises ...Sequent) Rule {
	return Rule{Name: name, Above: NewPremises(premises...)}
}

// IsAxiom reports whether the rule has no premises: applying it closes
// its conclusion immediately.
func (r Rule) IsAxiom() bool { return r.Above.IsEmpty() }

// Key returns a canonical encoding of the rule's premises, ignoring
// Name, for use in inference deduplication.
func (r Rule) Key() string { return r.Above.Key() }

// Equal reports whether two rules have the same premises.
func (r Rule) Equal(other Rule) bool { return r.Above.Equal(other.Above) }
