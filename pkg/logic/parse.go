package logic

import (
	"errors"
	"fmt"
	"strings"
)

// Parse reads a boolean expression from input. Keywords have word
// boundaries, so "onx" is not the literal on. The symbol forms !, && and ||
// are accepted alongside not, and, or.
func Parse(input string) (*Expr, error) {
	p := &parser{input: input}
	e, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if p.pos < len(p.input) {
		return nil, fmt.Errorf("unexpected input at position %d", p.pos+1)
	}
	return e, nil
}

type parser struct {
	input string
	pos   int
}

func (p *parser) parseOr() (*Expr, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for {
		p.skipSpace()
		if !p.consumeWord("or") && !p.consumeLit("||") {
			return left, nil
		}
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		left = Or(left, right)
	}
}

func (p *parser) parseAnd() (*Expr, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		p.skipSpace()
		if !p.consumeWord("and") && !p.consumeLit("&&") {
			return left, nil
		}
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = And(left, right)
	}
}

func (p *parser) parseUnary() (*Expr, error) {
	p.skipSpace()
	if p.consumeWord("not") || p.consumeLit("!") {
		inner, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return Not(inner), nil
	}
	return p.parsePrimary()
}

func (p *parser) parsePrimary() (*Expr, error) {
	p.skipSpace()
	if p.consumeLit("(") {
		inner, err := p.parseOr()
		if err != nil {
			return nil, err
		}
		p.skipSpace()
		if !p.consumeLit(")") {
			return nil, errors.New("expected ')'")
		}
		return inner, nil
	}
	if v, ok := p.consumeBool(); ok {
		return Lit(v), nil
	}
	return nil, fmt.Errorf("expected true/false at position %d", p.pos+1)
}

func (p *parser) consumeBool() (value, ok bool) {
	if p.consumeWord("true") || p.consumeWord("yes") || p.consumeWord("on") {
		return true, true
	}
	if p.consumeWord("false") || p.consumeWord("no") || p.consumeWord("off") {
		return false, true
	}
	return false, false
}

// consumeWord matches word only when the following byte is not part of an
// identifier, so "no" does not match inside "not".
func (p *parser) consumeWord(word string) bool {
	if !strings.HasPrefix(p.input[p.pos:], word) {
		return false
	}
	if next := p.pos + len(word); next < len(p.input) && isWordByte(p.input[next]) {
		return false
	}
	p.pos += len(word)
	return true
}

func (p *parser) consumeLit(s string) bool {
	if !strings.HasPrefix(p.input[p.pos:], s) {
		return false
	}
	p.pos += len(s)
	return true
}

func (p *parser) skipSpace() {
	for p.pos < len(p.input) {
		switch p.input[p.pos] {
		case ' ', '\t', '\n', '\r':
			p.pos++
		default:
			return
		}
	}
}

func isWordByte(c byte) bool {
	return c == '_' || (c >= '0' && c <= '9') || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
