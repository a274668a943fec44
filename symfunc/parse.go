/*
 * parse.go, part of goSALC.
 *
 * Copyright 2024 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package symfunc

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

//Parse reads a polynomial written the way character tables write them.
//Terms are separated by + or -, each term is an optional decimal coefficient
//followed by zero or more of the factors x, y, z, each with an optional
//exponent given with ^ or **. Factors can be juxtaposed or joined with *.
//Blanks are allowed between tokens. Examples: "x^2-y^2", "2z**2 - x**2 - y**2", "xyz", "0.5*x*y".
func Parse(s string) (Poly, error) {
	if strings.TrimSpace(s) == "" {
		return Poly{}, newError("empty expression", s)
	}
	p := &parser{src: s}
	terms := make([]Monomial, 0, 3)
	for p.skip(); !p.done(); p.skip() {
		t, err := p.term(len(terms) == 0)
		if err != nil {
			if e, ok := err.(Error); ok {
				e.deco = e.Decorate("Parse")
				err = e
			}
			return Poly{}, err
		}
		terms = append(terms, t)
	}
	return New(terms...), nil
}

//MustParse is like Parse but panics if s can't be parsed.
//It is meant for the initialization of tables.
func MustParse(s string) Poly {
	p, err := Parse(s)
	if err != nil {
		panic(err.Error())
	}
	return p
}

type parser struct {
	src string
	pos int
}

func (p *parser) done() bool {
	return p.pos >= len(p.src)
}

//skip advances over blanks. Blanks are only allowed between tokens.
func (p *parser) skip() {
	for !p.done() && unicode.IsSpace(rune(p.src[p.pos])) {
		p.pos++
	}
}

func (p *parser) peek() byte {
	if p.done() {
		return 0
	}
	return p.src[p.pos]
}

//term reads a signed term. Only the first term can omit the sign.
func (p *parser) term(first bool) (Monomial, error) {
	m := Monomial{Coef: 1}
	switch p.peek() {
	case '+':
		p.pos++
	case '-':
		m.Coef = -1
		p.pos++
	default:
		if !first {
			return m, p.errorf("expected + or -")
		}
	}
	p.skip()
	start := p.pos
	if c := p.peek(); (c >= '0' && c <= '9') || c == '.' {
		n, err := p.number()
		if err != nil {
			return m, err
		}
		m.Coef *= n
		p.skip()
	}
	for !p.done() {
		c := p.peek()
		if c == '*' && !strings.HasPrefix(p.src[p.pos:], "**") {
			if p.pos == start {
				return m, p.errorf("unexpected *")
			}
			p.pos++
			p.skip()
			c = p.peek()
			if c != 'x' && c != 'y' && c != 'z' {
				return m, p.errorf("expected one of x, y, z after *")
			}
		}
		if c != 'x' && c != 'y' && c != 'z' {
			break
		}
		p.pos++
		p.skip()
		e, err := p.exponent()
		if err != nil {
			return m, err
		}
		switch c {
		case 'x':
			m.X += e
		case 'y':
			m.Y += e
		case 'z':
			m.Z += e
		}
		p.skip()
	}
	if p.pos == start {
		return m, p.errorf("expected a coefficient or one of x, y, z")
	}
	if !p.done() && p.peek() != '+' && p.peek() != '-' {
		return m, p.errorf("unexpected character %q", p.peek())
	}
	return m, nil
}

func (p *parser) number() (float64, error) {
	start := p.pos
	for c := p.peek(); (c >= '0' && c <= '9') || c == '.'; c = p.peek() {
		p.pos++
	}
	n, err := strconv.ParseFloat(p.src[start:p.pos], 64)
	if err != nil {
		return 0, p.errorf("bad coefficient %q", p.src[start:p.pos])
	}
	return n, nil
}

//exponent reads an optional ^n or **n. Returns 1 if there is none.
func (p *parser) exponent() (int, error) {
	switch {
	case strings.HasPrefix(p.src[p.pos:], "**"):
		p.pos += 2
	case p.peek() == '^':
		p.pos++
	default:
		return 1, nil
	}
	start := p.pos
	for c := p.peek(); c >= '0' && c <= '9'; c = p.peek() {
		p.pos++
	}
	if start == p.pos {
		return 0, p.errorf("missing exponent")
	}
	e, err := strconv.Atoi(p.src[start:p.pos])
	if err != nil {
		return 0, p.errorf("bad exponent %q", p.src[start:p.pos])
	}
	return e, nil
}

func (p *parser) errorf(format string, a ...interface{}) error {
	return newError(fmt.Sprintf(format, a...)+fmt.Sprintf(" at position %d", p.pos), p.src)
}
