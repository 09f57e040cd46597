// Package catalog collects named example formulas for exercising the
// proof search engine, shared between tests, the CLI's demo/catalog
// subcommands, and internal/batch's RunCatalog.
package catalog

import "github.com/gitrdm/gentzen/pkg/gentzen"

// Entry is one named formula together with whether it is expected to
// be provable, for use by callers that want to check the search
// engine's answer against a known outcome.
type Entry struct {
	Name           string
	Formula        gentzen.Formula
	WantProvable   bool
	Classification string
}

// Entries lists every catalog formula, including the full set of
// concrete scenarios from the testable-properties table plus one
// additional formula checking double negation elimination
// (de_morgan_dual_dual).
func Entries() []Entry {
	p0 := gentzen.Value(0)
	p1 := gentzen.Value(1)

	return []Entry{
		{
			Name:           "zero",
			Formula:        gentzen.Zero(),
			WantProvable:   false,
			Classification: "unit with no introduction rule",
		},
		{
			Name:           "one",
			Formula:        gentzen.One(),
			WantProvable:   true,
			Classification: "multiplicative unit",
		},
		{
			Name:           "top",
			Formula:        gentzen.Top(),
			WantProvable:   true,
			Classification: "additive unit, always provable",
		},
		{
			Name:           "zero_par_top",
			Formula:        gentzen.Par(gentzen.Zero(), gentzen.Top()),
			WantProvable:   true,
			Classification: "provable via the ⊤-anywhere axiom shortcut",
		},
		{
			Name:           "zero_implies_zero",
			Formula:        gentzen.Lollipop(gentzen.Zero(), gentzen.Zero()),
			WantProvable:   true,
			Classification: "lollipop chain reducing to Par",
		},
		{
			Name:           "zero_plus_one",
			Formula:        gentzen.Plus(gentzen.Zero(), gentzen.One()),
			WantProvable:   true,
			Classification: "additive disjunction, right disjunct provable",
		},
		{
			Name:           "one_with_one",
			Formula:        gentzen.With(gentzen.One(), gentzen.One()),
			WantProvable:   true,
			Classification: "additive conjunction, both conjuncts provable",
		},
		{
			Name:           "zero_with_one",
			Formula:        gentzen.With(gentzen.Zero(), gentzen.One()),
			WantProvable:   false,
			Classification: "additive conjunction, one conjunct unprovable",
		},
		{
			Name:           "one_times_one",
			Formula:        gentzen.Times(gentzen.One(), gentzen.One()),
			WantProvable:   true,
			Classification: "multiplicative conjunction, empty context split",
		},
		{
			Name:           "one_times_zero",
			Formula:        gentzen.Times(gentzen.One(), gentzen.Zero()),
			WantProvable:   false,
			Classification: "multiplicative conjunction, one conjunct unprovable",
		},
		{
			Name:           "with_implies_left",
			Formula:        gentzen.Lollipop(gentzen.With(p0, p1), p0),
			WantProvable:   true,
			Classification: "additive conjunction implies either projection",
		},
		{
			Name:           "excluded_middle_par",
			Formula:        gentzen.Par(p0, gentzen.Dual(p0)),
			WantProvable:   true,
			Classification: "excluded middle holds for the multiplicative disjunction reading",
		},
		{
			Name:           "excluded_middle_plus",
			Formula:        gentzen.Plus(p0, gentzen.Dual(p0)),
			WantProvable:   false,
			Classification: "excluded middle fails for the additive disjunction reading",
		},
		{
			Name:           "excluded_middle_with",
			Formula:        gentzen.With(p0, gentzen.Dual(p0)),
			WantProvable:   false,
			Classification: "excluded middle fails for the additive conjunction reading",
		},
		{
			Name: "nested_lollipop_chain",
			Formula: gentzen.Lollipop(gentzen.One(),
				gentzen.Lollipop(gentzen.One(),
					gentzen.Lollipop(gentzen.One(),
						gentzen.Lollipop(gentzen.One(), gentzen.Times(gentzen.One(), gentzen.One()))))),
			WantProvable:   true,
			Classification: "deep lollipop chain terminating in 1⊗1",
		},
		{
			Name:           "de_morgan_dual_dual",
			Formula:        gentzen.Lollipop(gentzen.Dual(gentzen.Dual(p0)), p0),
			WantProvable:   true,
			Classification: "double negation elimination via DeMorgan pushdown",
		},
	}
}

// ByName looks up a single catalog entry by its Name, reporting
// ok=false when no entry matches.
func ByName(name string) (Entry, bool) {
	for _, e := range Entries() {
		if e.Name == name {
			return e, true
		}
	}
	return Entry{}, false
}
