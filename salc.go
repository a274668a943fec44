/*
 * salc.go, part of goSALC.
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

package salc

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rmera/gosalc/lincomb"
)

//Kind tells which of the possible forms a SALC has.
type Kind int

const (
	NoSALC           Kind = iota //The irreducible representation has no SALC for these ligands
	TotallySymmetric             //The constant 1 in the tables, all ligands contribute equally
	Single                       //One row of coefficients, one per ligand
	Degenerate                   //Several rows of coefficients
)

func (k Kind) String() string {
	switch k {
	case NoSALC:
		return "none"
	case TotallySymmetric:
		return "totally-symmetric"
	case Single:
		return "single"
	case Degenerate:
		return "degenerate"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

//SALC is the result of the symmetry function method for one irreducible representation.
//For the kinds Single and Degenerate, it contains one or more rows of coefficients, each
//with one element per ligand, in the order the ligands were given.
type SALC struct {
	Irrep string //Mulliken label of the irreducible representation
	Kind  Kind
	rows  [][]float64
}

//NewSALC returns a SALC for the irreducible representation irrep with the given
//rows of coefficients. Its kind is NoSALC if no rows are given, Single if one is given,
//and Degenerate otherwise. The rows are copied.
func NewSALC(irrep string, rows ...[]float64) SALC {
	ret := SALC{Irrep: irrep, rows: copyRows(rows)}
	switch len(rows) {
	case 0:
		ret.Kind = NoSALC
	case 1:
		ret.Kind = Single
	default:
		ret.Kind = Degenerate
	}
	return ret
}

//Rows returns a copy of the coefficient rows of the SALC. It is nil for the kinds
//NoSALC and TotallySymmetric.
func (S SALC) Rows() [][]float64 {
	return copyRows(S.rows)
}

//Coefficients returns a copy of the coefficients of a Single SALC, and nil for any other kind.
func (S SALC) Coefficients() []float64 {
	if S.Kind != Single {
		return nil
	}
	return copyRows(S.rows)[0]
}

//Combine returns, for each row of coefficients, the linear combination of the given
//ligand labels. The labels must be in the same order as the ligands.
//A NoSALC gives no combinations, a TotallySymmetric one, the sum of all labels.
func (S SALC) Combine(labels []string) ([]lincomb.Expr, error) {
	switch S.Kind {
	case NoSALC:
		return nil, nil
	case TotallySymmetric:
		syms := make([]lincomb.Expr, 0, len(labels))
		for _, v := range labels {
			syms = append(syms, lincomb.Sym(v))
		}
		return []lincomb.Expr{lincomb.Sum(syms...)}, nil
	}
	ret := make([]lincomb.Expr, 0, len(S.rows))
	for _, row := range S.rows {
		if len(row) != len(labels) {
			return nil, newError(ErrLengthMismatch, "Combine", "%d labels given for %d ligands", len(labels), len(row))
		}
		e, err := lincomb.FromCoefficients(row, labels)
		if err != nil {
			return nil, errDecorate(err, "Combine")
		}
		ret = append(ret, e)
	}
	return ret, nil
}

//String returns "0" for a NoSALC, "1" for a totally symmetric SALC, and the
//coefficients otherwise.
func (S SALC) String() string {
	switch S.Kind {
	case NoSALC:
		return "0"
	case TotallySymmetric:
		return "1"
	case Single:
		return fmt.Sprint(S.rows[0])
	}
	r := make([]string, 0, len(S.rows))
	for _, v := range S.rows {
		r = append(r, fmt.Sprint(v))
	}
	return "[" + strings.Join(r, " ") + "]"
}

//MarshalJSON encodes the SALC as an object with the irrep label, the kind,
//and the coefficient rows, if any.
func (S SALC) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Irrep        string      `json:"irrep"`
		Kind         string      `json:"kind"`
		Coefficients [][]float64 `json:"coefficients,omitempty"`
	}{
		Irrep:        S.Irrep,
		Kind:         S.Kind.String(),
		Coefficients: S.rows,
	})
}

//copyRows returns nil for zero rows, so every NoSALC has the same representation.
func copyRows(rows [][]float64) [][]float64 {
	if len(rows) == 0 {
		return nil
	}
	ret := make([][]float64, len(rows))
	for i, v := range rows {
		ret[i] = make([]float64, len(v))
		copy(ret[i], v)
	}
	return ret
}
