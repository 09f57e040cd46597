package gentzen

// candidates generates every rule applicable when principal is chosen
// as the formula under consideration and context is every other
// formula remaining in the sequent (principal already removed).
//
// Axiom shortcuts are checked first, ahead of the per-variant switch,
// exactly as the converged reference implementation orders them: a
// context containing ⊤ anywhere closes immediately (⊤ is cut-free
// derivable from any sequent that reaches it as a leftover side
// formula), and a context consisting of exactly the dual of the
// principal formula is the identity axiom.
func candidates(principal Formula, context Sequent) []Rule {
	if context.RHS.Contains(Top()) {
		return []Rule{NewRule("axiom")}
	}
	if only, ok := context.Only(); ok && only.Equal(Dual(principal)) {
		return []Rule{NewRule("axiom")}
	}

	switch principal.Kind() {
	case KindTop:
		return []Rule{NewRule("⊤")}

	case KindOne:
		if context.IsEmpty() {
			return []Rule{NewRule("1")}
		}
		return nil

	case KindZero, KindValue:
		return nil

	case KindBang:
		if only, ok := context.Only(); ok && only.Kind() == KindQuest {
			return []Rule{NewRule("!", context.With(principal.Arg()))}
		}
		return nil

	case KindBottom:
		return []Rule{NewRule("⊥", context)}

	case KindQuest:
		arg := principal.Arg()
		return []Rule{
			NewRule("weakening", context),
			NewRule("dereliction", context.With(arg)),
			NewRule("contraction", context.With(Quest(arg), Quest(arg))),
		}

	case KindDual:
		rewritten, ok := pushdown(principal.Arg())
		if !ok {
			return nil
		}
		return []Rule{NewRule("DeMorgan", context.With(rewritten))}

	case KindTimes:
		lhs, rhs := principal.Children()
		return timesCandidates(lhs, rhs, context)

	case KindPar:
		lhs, rhs := principal.Children()
		return []Rule{NewRule("⅋", context.With(lhs, rhs))}

	case KindWith:
		lhs, rhs := principal.Children()
		return []Rule{NewRule("&", context.With(lhs), context.With(rhs))}

	case KindPlus:
		lhs, rhs := principal.Children()
		return []Rule{
			NewRule("⊕L", context.With(lhs)),
			NewRule("⊕R", context.With(rhs)),
		}

	default:
		return nil
	}
}

// timesCandidates implements ⊗R: the ambient context must be split
// into two disjoint sub-contexts, one feeding each conjunct. With n
// side formulas there are 2ⁿ ways to partition them, and for each
// partition both orderings (which half gets lhs, which gets rhs)
// produce a distinct candidate rule — matching the original's
// both-orderings enumeration with no symmetry pruning, leaving
// deduplication to the proof cache rather than the generator.
func timesCandidates(lhs, rhs Formula, context Sequent) []Rule {
	elems := context.RHS.Elements()
	n := len(elems)
	if n >= 63 {
		panic("gentzen: too many side formulas for ⊗R context-split enumeration")
	}
	total := 1 << uint(n)

	out := make([]Rule, 0, total*2)
	for bits := 0; bits < total; bits++ {
		var left, right Multiset
		left, right = NewMultiset(), NewMultiset()
		for i, f := range elems {
			if bits&(1<<uint(i)) == 0 {
				left.Insert(f)
			} else {
				right.Insert(f)
			}
		}
		leftSeq := Sequent{RHS: left}
		rightSeq := Sequent{RHS: right}

		out = append(out,
			NewRule("⊗", leftSeq.With(lhs), rightSeq.With(rhs)),
			NewRule("⊗", rightSeq.With(lhs), leftSeq.With(rhs)),
		)
	}
	return out
}
