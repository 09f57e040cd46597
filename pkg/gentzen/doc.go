// Package gentzen implements sequent-calculus proof search for
// propositional classical linear logic.
//
// Given a closed [Formula] φ, [Prove] decides whether the one-sided
// sequent "⊢ φ" is derivable using the standard Girard rules:
// multiplicatives (⊗/⅋) with units (1/⊥), additives (&/⊕) with units
// (⊤/0), exponentials (!/?), exchange (sequents are multisets, not
// lists), and DeMorgan-driven negation pushdown for linear negation
// (Dual).
//
// The search is cut-free, single-threaded, deterministic, and sound
// but not complete: it may report failure on a provable sequent when
// the bounded search exhausts every reachable sequent without finding
// the goal. Two fundamental sources of non-determinism are handled by
// a cached best-first search rather than naive backtracking:
//
//   - The multiplicative conjunction rule (⊗R) splits the ambient
//     context into two sub-contexts; with n side formulas there are 2ⁿ
//     partitions (and two orderings each) to try.
//   - The "why-not" exponential (?) admits weakening, dereliction, and
//     contraction, so the set of reachable sequents is a priori
//     unbounded; termination relies on never requeuing an
//     already-seen sequent.
//
// Package layout mirrors the pipeline: [Formula] and [Multiset] are
// the immutable value types, [Sequent] and [Rule] describe a single
// inference step, candidates (in infer.go) generates every applicable
// rule for a principal formula, [Cache] is the proof cache ("thunk")
// that the search driver in search.go drives to a fixed point, and
// [Tree] reconstructs and prints the resulting derivation.
package gentzen
