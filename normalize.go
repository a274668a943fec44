/*
 * normalize.go, part of goSALC.
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

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"
)

//Decimals is the number of decimal places to which the coefficients obtained with the
//symmetry function method are rounded.
const Decimals = 2

//Normalize returns a copy of S where each row of coefficients has been divided by its
//dominant element (the one with the largest magnitude) and rounded to Decimals places.
//The rows of a degenerate SALC are normalized independently. SALCs of the kinds NoSALC
//and TotallySymmetric are returned unchanged.
func Normalize(S SALC) SALC {
	if S.Kind == NoSALC || S.Kind == TotallySymmetric {
		return S
	}
	rows := make([][]float64, 0, len(S.rows))
	for _, v := range S.rows {
		rows = append(rows, NormalizeRow(v))
	}
	return SALC{Irrep: S.Irrep, Kind: S.Kind, rows: rows}
}

//NormalizeRow returns a copy of row divided by the magnitude of its largest element
//and rounded to Decimals places, so all elements are in [-1, 1], and the largest
//is 1 or -1. A row with only zeros is returned as is.
func NormalizeRow(row []float64) []float64 {
	ret := make([]float64, len(row))
	copy(ret, row)
	dominant := floats.Norm(ret, math.Inf(1))
	if dominant == 0 {
		return ret
	}
	floats.Scale(1/dominant, ret)
	for i, v := range ret {
		ret[i] = round(v)
	}
	return ret
}

//round rounds half to even, and never returns a negative zero.
func round(f float64) float64 {
	r := scalar.RoundEven(f, Decimals)
	if r == 0 {
		return 0
	}
	return r
}
