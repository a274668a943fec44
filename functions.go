/*
 * functions.go, part of goSALC.
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
	"math"

	"github.com/rmera/gosalc/lincomb"
	"github.com/rmera/gosalc/tables"
	v3 "github.com/rmera/gosalc/v3"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

//Mode tells how the ligand positions are given to FromFunctions.
type Mode string

const (
	Vector Mode = "vector" //cartesian unit vectors [x, y, z]
	Angle  Mode = "angle"  //[azimuth, elevation] pairs, in degrees
)

//FromFunctions returns the SALCs for the ligands at the given positions, obtained by
//evaluating the symmetry basis functions of each irreducible representation of group.
//The positions are given according to mode. One SALC is returned per irreducible
//representation, in the table order.
//
//Each function is evaluated at each ligand position, and the values are rounded to
//Decimals places. Functions that are zero for all the ligands are discarded. An irrep
//with no remaining functions has no SALC, one with a single function gives a Single SALC,
//and one with several, a Degenerate SALC with one row per function. The rows are normalized
//(see Normalize).
func FromFunctions(ligands [][]float64, group string, mode Mode) ([]SALC, error) {
	var pos *v3.Matrix
	var err error
	switch mode {
	case Angle:
		pos, err = AnglesToVectors(ligands)
	case Vector:
		pos, err = vectors(ligands)
	default:
		return nil, newError(ErrInvalidMode, "FromFunctions", "got %q", string(mode))
	}
	if err != nil {
		return nil, errDecorate(err, "FromFunctions")
	}
	salcs, err := FromVectors(pos, group)
	if err != nil {
		return nil, errDecorate(err, "FromFunctions")
	}
	return salcs, nil
}

//FromVectors is like FromFunctions, but takes the ligand positions as the rows of a
//v3.Matrix, the x, y and z coordinates of the unit vector pointing to each ligand.
func FromVectors(pos *v3.Matrix, group string) ([]SALC, error) {
	g, err := tables.Lookup(group)
	if err != nil {
		return nil, errDecorate(err, "FromVectors")
	}
	if pos == nil || pos.Dense == nil || pos.IsEmpty() {
		return nil, newError(ErrLengthMismatch, "FromVectors", "no ligand positions given")
	}
	if _, c := pos.Dims(); c != 3 {
		return nil, newError(ErrLengthMismatch, "FromVectors", "ligand positions must have 3 columns, got %d", c)
	}
	n := pos.NVecs()
	salcs := make([]SALC, 0, len(g.Irreps))
	for _, ir := range g.Irreps {
		var s SALC
		switch ir.Basis.Kind {
		case tables.None:
			s = SALC{Irrep: ir.Label, Kind: NoSALC}
		case tables.Constant:
			s = SALC{Irrep: ir.Label, Kind: TotallySymmetric}
		default:
			s = evalFunctions(ir, pos, n)
		}
		salcs = append(salcs, Normalize(s))
	}
	return salcs, nil
}

//evalFunctions evaluates each basis function of ir at each of the n positions in pos.
func evalFunctions(ir tables.Irrep, pos *v3.Matrix, n int) SALC {
	vals := mat.NewDense(len(ir.Basis.Funcs), n, nil)
	for i, f := range ir.Basis.Funcs {
		for j := 0; j < n; j++ {
			vals.Set(i, j, round(f.Eval(pos.XYZ(j))))
		}
	}
	rows := make([][]float64, 0, len(ir.Basis.Funcs))
	for i := range ir.Basis.Funcs {
		row := vals.RawRowView(i)
		if floats.Norm(row, math.Inf(1)) == 0 {
			continue
		}
		rows = append(rows, row)
	}
	return NewSALC(ir.Label, rows...)
}

//FromFunctionsLabeled is like FromFunctions, but returns, for each irreducible
//representation, the SALCs as linear combinations of the given ligand labels,
//which must be in the same order as the ligands (see SALC.Combine).
func FromFunctionsLabeled(ligands [][]float64, labels []string, group string, mode Mode) ([][]lincomb.Expr, error) {
	if len(labels) != len(ligands) {
		return nil, newError(ErrLengthMismatch, "FromFunctionsLabeled", "%d labels given for %d ligands", len(labels), len(ligands))
	}
	salcs, err := FromFunctions(ligands, group, mode)
	if err != nil {
		return nil, errDecorate(err, "FromFunctionsLabeled")
	}
	ret := make([][]lincomb.Expr, 0, len(salcs))
	for _, s := range salcs {
		e, err := s.Combine(labels)
		if err != nil {
			return nil, errDecorate(err, "FromFunctionsLabeled")
		}
		ret = append(ret, e)
	}
	return ret, nil
}
