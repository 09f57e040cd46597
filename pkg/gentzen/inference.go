package gentzen

// Inference is one pending step in the proof search: Below is the
// sequent the rule would discharge, Above is the rule's premises that
// must all be proven first.
//
// Equality and hashing depend only on Above (via Rule.Key), not on
// Below or Name: two candidate inferences that require the same premise
// sequents collapse into one pending inference, even when they target
// different conclusions, so the search driver never tracks the same
// work twice.
type Inference struct {
	Rule  Rule
	Below Sequent
}

// NewInference pairs a conclusion sequent with the rule proposed to
// discharge it.
func NewInference(below Sequent, rule Rule) Inference {
	return Inference{Rule: rule, Below: below}
}

// Key returns a canonical encoding depending only on the rule's
// premises, used to deduplicate pending inferences with equivalent
// premises.
func (inf Inference) Key() string { return inf.Rule.Key() }

// Premises returns the sequents that must be proven before inf can be
// closed.
func (inf Inference) Premises() []Sequent { return inf.Rule.Above.Elements() }

// IsReady reports whether every premise of inf is already marked
// proven in the given cache.
func (inf Inference) IsReady(c *Cache) bool {
	for _, premise := range inf.Premises() {
		if !c.IsProven(premise) {
			return false
		}
	}
	return true
}
