package expr

import (
	"errors"
	"fmt"
	"math"
)

// Parse reads an expression from input. Error messages carry 1-based byte
// positions because the chapter text points users at them.
func Parse(input string) (*Expr, error) {
	p := &parser{input: input}
	p.skipSpace()
	e, err := p.parseSum()
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

func (p *parser) parseSum() (*Expr, error) {
	left, err := p.parseProduct()
	if err != nil {
		return nil, err
	}
	for {
		p.skipSpace()
		switch p.peek() {
		case '+':
			p.pos++
			right, err := p.parseProduct()
			if err != nil {
				return nil, err
			}
			left = Add(left, right)
		case '-':
			p.pos++
			right, err := p.parseProduct()
			if err != nil {
				return nil, err
			}
			left = Sub(left, right)
		default:
			return left, nil
		}
	}
}

func (p *parser) parseProduct() (*Expr, error) {
	left, err := p.parseFactor()
	if err != nil {
		return nil, err
	}
	for {
		p.skipSpace()
		if p.peek() != '*' {
			return left, nil
		}
		p.pos++
		right, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		left = Mul(left, right)
	}
}

func (p *parser) parseFactor() (*Expr, error) {
	p.skipSpace()
	switch p.peek() {
	case '-':
		p.pos++
		inner, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		return Neg(inner), nil
	case '(':
		p.pos++
		inner, err := p.parseSum()
		if err != nil {
			return nil, err
		}
		p.skipSpace()
		if p.peek() != ')' {
			return nil, fmt.Errorf("expected ')' at position %d", p.pos+1)
		}
		p.pos++
		return inner, nil
	default:
		return p.parseNumber()
	}
}

func (p *parser) parseNumber() (*Expr, error) {
	p.skipSpace()
	start := p.pos
	for p.pos < len(p.input) && isDigit(p.input[p.pos]) {
		p.pos++
	}
	if start == p.pos {
		return nil, fmt.Errorf("expected a number at position %d", p.pos+1)
	}
	var value int64
	for i := start; i < p.pos; i++ {
		d := int64(p.input[i] - '0')
		if value > (math.MaxInt64-d)/10 {
			return nil, errors.New("number too large")
		}
		value = value*10 + d
	}
	return Num(value), nil
}

// peek returns the next byte without consuming it, or 0 at end of input.
func (p *parser) peek() byte {
	if p.pos >= len(p.input) {
		return 0
	}
	return p.input[p.pos]
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

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
