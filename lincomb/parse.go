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

package lincomb

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

//Parse reads a linear combination such as "2*a - b + 0.5*c", "-e1" or "0".
//Labels start with a letter and may continue with letters, digits and underscores.
//The coefficient can be joined to the label with * or just juxtaposed ("2a").
//Blanks are allowed between tokens, but not inside a label or a number.
func Parse(s string) (Expr, error) {
	src := strings.TrimSpace(s)
	if src == "" {
		return Expr{}, newSyntaxError("empty expression", s)
	}
	if src == "0" {
		return Expr{}, nil
	}
	terms := make(map[string]float64)
	pos := 0
	skip := func() {
		for pos < len(src) && unicode.IsSpace(rune(src[pos])) {
			pos++
		}
	}
	for ; pos < len(src); skip() {
		sign := 1.0
		switch src[pos] {
		case '+':
			pos++
		case '-':
			sign = -1
			pos++
		default:
			if pos != 0 {
				return Expr{}, newSyntaxError(fmt.Sprintf("expected + or - at position %d", pos), s)
			}
		}
		skip()
		coef := 1.0
		start := pos
		for pos < len(src) && (isDigit(src[pos]) || src[pos] == '.') {
			pos++
		}
		if pos > start {
			c, err := strconv.ParseFloat(src[start:pos], 64)
			if err != nil {
				return Expr{}, newSyntaxError(fmt.Sprintf("bad coefficient %q", src[start:pos]), s)
			}
			coef = c
			skip()
			if pos < len(src) && src[pos] == '*' {
				pos++
				skip()
			}
		}
		start = pos
		if pos >= len(src) || !unicode.IsLetter(rune(src[pos])) {
			return Expr{}, newSyntaxError(fmt.Sprintf("expected a label at position %d", pos), s)
		}
		for pos < len(src) && (unicode.IsLetter(rune(src[pos])) || isDigit(src[pos]) || src[pos] == '_') {
			pos++
		}
		terms[src[start:pos]] += sign * coef
	}
	return fromMap(terms), nil
}

//MustParse is like Parse but panics on error.
func MustParse(s string) Expr {
	e, err := Parse(s)
	if err != nil {
		panic(err.Error())
	}
	return e
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
