/*
 * lincomb.go, part of goSALC.
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

//Package lincomb implements linear combinations of named ligand orbitals,
//such as 2*a - b - c. The projection operator method works entirely on
//these: each symmetry operation sends the reference orbital to a
//combination of ligand labels, and the SALCs are sums of scaled combinations.
package lincomb

import (
	"encoding/json"
	"sort"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats/scalar"
)

//Epsilon is the magnitude under which a coefficient is considered zero.
const Epsilon = 1e-9

//Expr is a linear combination of labels, a sparse map from label to coefficient.
//Expr values are never modified once built, every operation returns a new Expr,
//so they can be shared freely between goroutines.
//Terms with coefficients smaller than Epsilon are dropped, so the zero combination
//is always the empty one. The zero value of Expr is the zero combination.
type Expr struct {
	terms map[string]float64
}

//Sym returns the combination with only the label, with coefficient 1.
func Sym(label string) Expr {
	return Term(1, label)
}

//Term returns coef*label.
func Term(coef float64, label string) Expr {
	return fromMap(map[string]float64{label: coef})
}

//Sum adds all the given combinations.
func Sum(exprs ...Expr) Expr {
	ret := make(map[string]float64)
	for _, e := range exprs {
		for k, v := range e.terms {
			ret[k] += v
		}
	}
	return fromMap(ret)
}

//FromCoefficients returns sum_i coefs[i]*labels[i].
//Both slices must have the same length.
func FromCoefficients(coefs []float64, labels []string) (Expr, error) {
	if len(coefs) != len(labels) {
		return Expr{}, Error{message: "got " + strconv.Itoa(len(coefs)) + " coefficients and " + strconv.Itoa(len(labels)) + " labels", deco: []string{"FromCoefficients"}, critical: true, err: ErrMismatch}
	}
	ret := make(map[string]float64, len(labels))
	for i, l := range labels {
		ret[l] += coefs[i]
	}
	return fromMap(ret), nil
}

//fromMap takes ownership of m, and removes zero terms from it.
func fromMap(m map[string]float64) Expr {
	for k, v := range m {
		if isZero(v) {
			delete(m, k)
		}
	}
	if len(m) == 0 {
		return Expr{}
	}
	return Expr{terms: m}
}

func isZero(f float64) bool {
	return scalar.EqualWithinAbs(f, 0, Epsilon)
}

//Add returns e+o
func (e Expr) Add(o Expr) Expr {
	return Sum(e, o)
}

//Sub returns e-o
func (e Expr) Sub(o Expr) Expr {
	return Sum(e, o.Neg())
}

//Scale returns f*e
func (e Expr) Scale(f float64) Expr {
	ret := make(map[string]float64, len(e.terms))
	for k, v := range e.terms {
		ret[k] = f * v
	}
	return fromMap(ret)
}

//Neg returns -e
func (e Expr) Neg() Expr {
	return e.Scale(-1)
}

//IsZero returns true if e is the zero combination.
func (e Expr) IsZero() bool {
	return len(e.terms) == 0
}

//Len returns the number of labels with non-zero coefficients in e.
func (e Expr) Len() int {
	return len(e.terms)
}

//Coef returns the coefficient of label in e, which is 0 if the label is not present.
func (e Expr) Coef(label string) float64 {
	return e.terms[label]
}

//Labels returns the labels present in e, sorted.
func (e Expr) Labels() []string {
	ret := make([]string, 0, len(e.terms))
	for k := range e.terms {
		ret = append(ret, k)
	}
	sort.Strings(ret)
	return ret
}

//Equal returns true if every coefficient in e is within tol of the corresponding
//one in o.
func (e Expr) Equal(o Expr, tol float64) bool {
	for k, v := range e.terms {
		if !scalar.EqualWithinAbs(v, o.terms[k], tol) {
			return false
		}
	}
	for k, v := range o.terms {
		if _, ok := e.terms[k]; !ok && !scalar.EqualWithinAbs(v, 0, tol) {
			return false
		}
	}
	return true
}

//String returns e with the labels in order, i.e. "4*e1 - 2*e2 - 2*e3".
//The zero combination is "0".
func (e Expr) String() string {
	if e.IsZero() {
		return "0"
	}
	var b strings.Builder
	for i, l := range e.Labels() {
		c := e.terms[l]
		switch {
		case i == 0 && c < 0:
			b.WriteString("-")
		case i > 0 && c < 0:
			b.WriteString(" - ")
		case i > 0:
			b.WriteString(" + ")
		}
		if c < 0 {
			c = -c
		}
		if c != 1 {
			b.WriteString(strconv.FormatFloat(c, 'g', -1, 64) + "*")
		}
		b.WriteString(l)
	}
	return b.String()
}

//MarshalJSON encodes e as an object from labels to coefficients.
func (e Expr) MarshalJSON() ([]byte, error) {
	if e.terms == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(e.terms)
}

//UnmarshalJSON decodes an object from labels to coefficients into e.
func (e *Expr) UnmarshalJSON(b []byte) error {
	m := make(map[string]float64)
	if err := json.Unmarshal(b, &m); err != nil {
		return err
	}
	*e = fromMap(m)
	return nil
}
