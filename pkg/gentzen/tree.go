package gentzen

import "strings"

// Tree is a reconstructed proof, rooted at the original goal sequent
// (Below), with Above holding one subtree per premise the rule
// (Rule) required.
type Tree struct {
	Above []Tree
	Rule  string
	Below Sequent
}

// reconstruct walks a closing rule down into a full proof tree,
// pulling each premise's cached closing rule out of the cache via
// Yank. A premise whose rule has already been consumed (a shared
// subproof reached a second time) renders as a leaf labeled
// "(already proven)" instead of repeating the subtree.
func reconstruct(cache *Cache, below Sequent, rule Rule) Tree {
	premises := rule.Above.Elements()
	above := make([]Tree, 0, len(premises))
	for _, premise := range premises {
		if r, ok := cache.Yank(premise); ok {
			above = append(above, reconstruct(cache, premise, r))
		} else {
			above = append(above, Tree{Rule: "(already proven)", Below: premise})
		}
	}
	return Tree{Above: above, Rule: rule.Name, Below: below}
}

// printBottomUp renders the tree as a column layout, widest subtree on
// the right, returning the lines bottom-to-top and the total width of
// the inference line.
func (t Tree) printBottomUp() ([]string, int) {
	type column struct {
		lines       []string
		lineWidth   int
		entireWidth int
	}
	columns := make([]column, 0, len(t.Above))
	for _, sub := range t.Above {
		lines, lineWidth := sub.printBottomUp()
		entireWidth := 0
		for _, s := range lines {
			if n := len([]rune(s)); n > entireWidth {
				entireWidth = n
			}
		}
		columns = append(columns, column{lines: lines, lineWidth: lineWidth, entireWidth: entireWidth})
	}
	// Insertion sort by entireWidth, ascending — stable and small.
	for i := 1; i < len(columns); i++ {
		for j := i; j > 0 && columns[j].entireWidth < columns[j-1].entireWidth; j-- {
			columns[j], columns[j-1] = columns[j-1], columns[j]
		}
	}

	var lineSize int
	var stack []string
	if len(columns) > 0 {
		rightmost := columns[len(columns)-1]
		rest := columns[:len(columns)-1]
		overallWidth := 0
		var v []string
		for _, col := range rest {
			extendUpward(&v, col.lines, overallWidth)
			overallWidth += col.entireWidth + 3
		}
		extendUpward(&v, rightmost.lines, overallWidth)
		lineSize = overallWidth + rightmost.lineWidth
		stack = v
	}

	below := t.Below.String()
	maxWidth := lineSize
	if n := len([]rune(below)); n > maxWidth {
		maxWidth = n
	}
	line := strings.Repeat("-", maxWidth) + " " + t.Rule

	everything := make([]string, 0, len(stack)+2)
	everything = append(everything, below, line)
	everything = append(everything, stack...)
	return everything, maxWidth
}

// extendUpward merges one subtree's column of lines into the running
// accumulator, padding with spaces so every row lines up at
// overallWidth columns in, even when previous columns were shorter.
func extendUpward(v *[]string, stack []string, overallWidth int) {
	for i, line := range stack {
		if i >= len(*v) {
			*v = append(*v, strings.Repeat(" ", overallWidth))
		}
		acc := (*v)[i]
		for n := len([]rune(acc)); n < overallWidth; n++ {
			acc += " "
		}
		acc += line
		(*v)[i] = acc
	}
}

// String renders the tree as a bottom-up ASCII derivation: axioms at
// the top of the printed output, the root conclusion on the last line.
func (t Tree) String() string {
	lines, _ := t.printBottomUp()
	var sb strings.Builder
	sb.WriteByte('\n')
	for i := len(lines) - 1; i >= 0; i-- {
		sb.WriteString(lines[i])
		sb.WriteByte('\n')
	}
	return sb.String()
}
