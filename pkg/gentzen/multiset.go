package gentzen

import (
	"strconv"
	"strings"
)

// multisetEntry tracks one distinct formula and how many times it
// occurs in a [Multiset].
type multisetEntry struct {
	formula Formula
	count   int
}

// Multiset is an unordered, counted collection of formulas: a mapping
// from distinct formulas to a positive occurrence count. It backs the
// right-hand side of a [Sequent].
//
// Order on multisets is first by total size, then lexicographically
// by (element, count) pairs in element order; this is what makes the
// search driver's smallest-first queue bubble axiom-sized sequents to
// the front.
type Multiset struct {
	entries map[string]*multisetEntry
}

// NewMultiset returns an empty multiset.
func NewMultiset() Multiset {
	return Multiset{entries: make(map[string]*multisetEntry)}
}

// Insert adds one occurrence of f, creating the entry if f is new, and
// returns the resulting occurrence count.
func (m *Multiset) Insert(f Formula) int {
	if m.entries == nil {
		m.entries = make(map[string]*multisetEntry)
	}
	key := f.Key()
	if e, ok := m.entries[key]; ok {
		e.count++
		return e.count
	}
	m.entries[key] = &multisetEntry{formula: f, count: 1}
	return 1
}

// Contains reports whether f occurs at least once, regardless of count.
func (m Multiset) Contains(f Formula) bool {
	_, ok := m.entries[f.Key()]
	return ok
}

// Take removes one occurrence of f if present, deleting the entry when
// its count reaches zero. It reports whether a removal happened.
func (m *Multiset) Take(f Formula) bool {
	key := f.Key()
	e, ok := m.entries[key]
	if !ok {
		return false
	}
	e.count--
	if e.count <= 0 {
		delete(m.entries, key)
	}
	return true
}

// Size returns the total number of elements, counting duplicates.
func (m Multiset) Size() int {
	total := 0
	for _, e := range m.entries {
		total += e.count
	}
	return total
}

// IsEmpty reports whether the multiset has no elements.
func (m Multiset) IsEmpty() bool { return len(m.entries) == 0 }

// Only returns the sole element iff the multiset's total size is
// exactly 1.
func (m Multiset) Only() (Formula, bool) {
	if len(m.entries) != 1 {
		return Formula{}, false
	}
	for _, e := range m.entries {
		if e.count == 1 {
			return e.formula, true
		}
	}
	return Formula{}, false
}

// Pair returns the two elements iff the multiset's total size is
// exactly 2, whether that's two distinct formulas or one formula
// occurring twice.
func (m Multiset) Pair() (Formula, Formula, bool) {
	if m.Size() != 2 {
		return Formula{}, Formula{}, false
	}
	elems := m.sortedUnique()
	if len(elems) == 1 {
		return elems[0].formula, elems[0].formula, true
	}
	return elems[0].formula, elems[1].formula, true
}

// sortedUnique returns unique entries ordered by Formula.Compare,
// giving every iteration over a Multiset a deterministic order.
func (m Multiset) sortedUnique() []multisetEntry {
	out := make([]multisetEntry, 0, len(m.entries))
	for _, e := range m.entries {
		out = append(out, *e)
	}
	sortEntries(out)
	return out
}

func sortEntries(entries []multisetEntry) {
	// Small insertion sort: sequents rarely carry more than a handful
	// of distinct formulas, so this never needs to be fancy.
	for i := 1; i < len(entries); i++ {
		for j := i; j > 0 && entries[j].formula.Less(entries[j-1].formula); j-- {
			entries[j], entries[j-1] = entries[j-1], entries[j]
		}
	}
}

// UniqueEntries iterates over each distinct formula once, together
// with its occurrence count, in Formula order.
func (m Multiset) UniqueEntries() []multisetEntry {
	return m.sortedUnique()
}

// Elements iterates over every occurrence, duplicates included, in
// Formula order.
func (m Multiset) Elements() []Formula {
	unique := m.sortedUnique()
	out := make([]Formula, 0, len(unique))
	for _, e := range unique {
		for i := 0; i < e.count; i++ {
			out = append(out, e.formula)
		}
	}
	return out
}

// With returns a new multiset equal to m with each addition inserted.
// m itself is left unchanged.
func (m Multiset) With(additions ...Formula) Multiset {
	out := m.clone()
	for _, f := range additions {
		out.Insert(f)
	}
	return out
}

func (m Multiset) clone() Multiset {
	out := NewMultiset()
	for key, e := range m.entries {
		copyEntry := *e
		out.entries[key] = &copyEntry
	}
	return out
}

// Compare orders multisets by total size first, then lexicographically
// by (element, count) pairs.
func (m Multiset) Compare(other Multiset) int {
	if sa, sb := m.Size(), other.Size(); sa != sb {
		if sa < sb {
			return -1
		}
		return 1
	}
	a, b := m.sortedUnique(), other.sortedUnique()
	for i := 0; i < len(a) && i < len(b); i++ {
		if c := a[i].formula.Compare(b[i].formula); c != 0 {
			return c
		}
		if a[i].count != b[i].count {
			if a[i].count < b[i].count {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	default:
		return 0
	}
}

// Equal reports whether two multisets have the same (element, count) pairs.
func (m Multiset) Equal(other Multiset) bool { return m.Compare(other) == 0 }

// Key returns a canonical string encoding used for map keys and
// content-based hashing, invariant under insertion order.
func (m Multiset) Key() string {
	unique := m.sortedUnique()
	var sb strings.Builder
	for _, e := range unique {
		sb.WriteString(e.formula.Key())
		sb.WriteByte('#')
		sb.WriteString(strconv.Itoa(e.count))
		sb.WriteByte(';')
	}
	return sb.String()
}

// String renders the multiset as a comma-separated list of its
// repeated elements.
func (m Multiset) String() string {
	elems := m.Elements()
	parts := make([]string, len(elems))
	for i, f := range elems {
		parts[i] = f.String()
	}
	return strings.Join(parts, ", ")
}
