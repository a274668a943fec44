/*
 * poly.go, part of goSALC.
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

//Package symfunc implements the symmetry basis functions found in character tables
//(x, z^2, x^2-y^2, 2z^2-x^2-y^2, xyz...) as small polynomials in the cartesian
//coordinates. A polynomial is parsed once and then evaluated directly at any point.
package symfunc

import (
	"strconv"
	"strings"
)

//Monomial is the term Coef*x^X*y^Y*z^Z.
type Monomial struct {
	Coef    float64
	X, Y, Z int
}

//Eval returns the value of the monomial at the point x, y, z.
func (m Monomial) Eval(x, y, z float64) float64 {
	return m.Coef * ipow(x, m.X) * ipow(y, m.Y) * ipow(z, m.Z)
}

//Degree returns the total degree of the monomial.
func (m Monomial) Degree() int {
	return m.X + m.Y + m.Z
}

func (m Monomial) samePowers(o Monomial) bool {
	return m.X == o.X && m.Y == o.Y && m.Z == o.Z
}

//Poly is a polynomial in x, y and z, stored as a sum of monomials.
//Monomials with the same powers are merged and zero monomials dropped,
//otherwise the order in which the terms were given is kept.
//The zero value is the zero polynomial.
type Poly struct {
	terms []Monomial
}

//New builds a polynomial from the given terms.
func New(terms ...Monomial) Poly {
	ret := make([]Monomial, 0, len(terms))
	for _, t := range terms {
		merged := false
		for i, v := range ret {
			if v.samePowers(t) {
				ret[i].Coef += t.Coef
				merged = true
				break
			}
		}
		if !merged {
			ret = append(ret, t)
		}
	}
	nonzero := ret[:0]
	for _, v := range ret {
		if v.Coef != 0 {
			nonzero = append(nonzero, v)
		}
	}
	return Poly{terms: nonzero}
}

//Terms returns a copy of the monomials of the polynomial.
func (p Poly) Terms() []Monomial {
	ret := make([]Monomial, len(p.terms))
	copy(ret, p.terms)
	return ret
}

//IsZero returns true if p is the zero polynomial.
func (p Poly) IsZero() bool {
	return len(p.terms) == 0
}

//Degree returns the largest degree among the terms of p, 0 for the zero polynomial.
func (p Poly) Degree() int {
	d := 0
	for _, v := range p.terms {
		if v.Degree() > d {
			d = v.Degree()
		}
	}
	return d
}

//Eval evaluates the polynomial at the point x, y, z.
func (p Poly) Eval(x, y, z float64) float64 {
	var ret float64
	for _, v := range p.terms {
		ret += v.Eval(x, y, z)
	}
	return ret
}

//String returns p in the same notation accepted by Parse, i.e. "2z^2 - x^2 - y^2"
func (p Poly) String() string {
	if p.IsZero() {
		return "0"
	}
	var b strings.Builder
	for i, v := range p.terms {
		c := v.Coef
		switch {
		case i == 0 && c < 0:
			b.WriteString("-")
			c = -c
		case i > 0 && c < 0:
			b.WriteString(" - ")
			c = -c
		case i > 0:
			b.WriteString(" + ")
		}
		vars := monomialVars(v)
		if c != 1 || vars == "" {
			b.WriteString(strconv.FormatFloat(c, 'g', -1, 64))
		}
		b.WriteString(vars)
	}
	return b.String()
}

func monomialVars(m Monomial) string {
	var b strings.Builder
	for _, v := range []struct {
		name string
		pow  int
	}{{"x", m.X}, {"y", m.Y}, {"z", m.Z}} {
		if v.pow == 0 {
			continue
		}
		b.WriteString(v.name)
		if v.pow > 1 {
			b.WriteString("^" + strconv.Itoa(v.pow))
		}
	}
	return b.String()
}

//Integer powers only, so no need for math.Pow
func ipow(b float64, e int) float64 {
	r := 1.0
	for i := 0; i < e; i++ {
		r *= b
	}
	return r
}
