package main

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/gitrdm/gentzen/pkg/gentzen"
)

// parseFormula reads the small prefix-notation expression language
// used by the CLI: atoms are "one", "bottom", "top", "zero", or "P<n>"
// for a propositional variable; unary forms are "bang(x)", "quest(x)",
// "dual(x)"; binary forms are "times(a,b)", "par(a,b)", "with(a,b)",
// "plus(a,b)", "lollipop(a,b)". Whitespace is ignored.
func parseFormula(expr string) (gentzen.Formula, error) {
	p := &parser{input: expr}
	p.skipSpace()
	f, err := p.parseExpr()
	if err != nil {
		return gentzen.Formula{}, err
	}
	p.skipSpace()
	if p.pos != len(p.input) {
		return gentzen.Formula{}, fmt.Errorf("parseFormula: unexpected trailing input %q", p.input[p.pos:])
	}
	return f, nil
}

type parser struct {
	input string
	pos   int
}

func (p *parser) skipSpace() {
	for p.pos < len(p.input) && unicode.IsSpace(rune(p.input[p.pos])) {
		p.pos++
	}
}

func (p *parser) peek() byte {
	if p.pos >= len(p.input) {
		return 0
	}
	return p.input[p.pos]
}

func (p *parser) expect(b byte) error {
	p.skipSpace()
	if p.peek() != b {
		return fmt.Errorf("parseFormula: expected %q at position %d in %q", b, p.pos, p.input)
	}
	p.pos++
	return nil
}

func (p *parser) parseIdent() string {
	start := p.pos
	for p.pos < len(p.input) {
		c := p.input[p.pos]
		if unicode.IsLetter(rune(c)) || unicode.IsDigit(rune(c)) || c == '_' {
			p.pos++
			continue
		}
		break
	}
	return p.input[start:p.pos]
}

func (p *parser) parseExpr() (gentzen.Formula, error) {
	p.skipSpace()
	ident := p.parseIdent()
	if ident == "" {
		return gentzen.Formula{}, fmt.Errorf("parseFormula: expected identifier at position %d in %q", p.pos, p.input)
	}

	lower := strings.ToLower(ident)
	switch lower {
	case "one":
		return gentzen.One(), nil
	case "bottom":
		return gentzen.Bottom(), nil
	case "top":
		return gentzen.Top(), nil
	case "zero":
		return gentzen.Zero(), nil
	case "bang", "quest", "dual":
		arg, err := p.parseParenOne()
		if err != nil {
			return gentzen.Formula{}, err
		}
		switch lower {
		case "bang":
			return gentzen.Bang(arg), nil
		case "quest":
			return gentzen.Quest(arg), nil
		default:
			return gentzen.Dual(arg), nil
		}
	case "times", "par", "with", "plus", "lollipop":
		a, b, err := p.parseParenTwo()
		if err != nil {
			return gentzen.Formula{}, err
		}
		switch lower {
		case "times":
			return gentzen.Times(a, b), nil
		case "par":
			return gentzen.Par(a, b), nil
		case "with":
			return gentzen.With(a, b), nil
		case "plus":
			return gentzen.Plus(a, b), nil
		default:
			return gentzen.Lollipop(a, b), nil
		}
	}

	if len(ident) >= 2 && (ident[0] == 'P' || ident[0] == 'p') {
		n, err := strconv.Atoi(ident[1:])
		if err != nil {
			return gentzen.Formula{}, fmt.Errorf("parseFormula: bad variable %q: %w", ident, err)
		}
		return gentzen.Value(n), nil
	}
	return gentzen.Formula{}, fmt.Errorf("parseFormula: unknown token %q", ident)
}

func (p *parser) parseParenOne() (gentzen.Formula, error) {
	if err := p.expect('('); err != nil {
		return gentzen.Formula{}, err
	}
	f, err := p.parseExpr()
	if err != nil {
		return gentzen.Formula{}, err
	}
	if err := p.expect(')'); err != nil {
		return gentzen.Formula{}, err
	}
	return f, nil
}

func (p *parser) parseParenTwo() (a, b gentzen.Formula, err error) {
	if err = p.expect('('); err != nil {
		return
	}
	if a, err = p.parseExpr(); err != nil {
		return
	}
	if err = p.expect(','); err != nil {
		return
	}
	if b, err = p.parseExpr(); err != nil {
		return
	}
	if err = p.expect(')'); err != nil {
		return
	}
	return a, b, nil
}
