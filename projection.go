/*
 * projection.go, part of goSALC.
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
	"github.com/rmera/gosalc/lincomb"
	"github.com/rmera/gosalc/tables"
)

//Expand returns the full form of the condensed irreducible representation irrep
//of the given group, where each character is repeated once for each operation in
//its class, i.e. for C3v, [2, -1, 0] becomes [2, -1, -1, 0, 0, 0].
//irrep must have one character per class of the group.
func Expand(irrep []float64, group string) ([]float64, error) {
	g, err := tables.Lookup(group)
	if err != nil {
		return nil, errDecorate(err, "Expand")
	}
	if len(irrep) != len(g.Multiplicities) {
		return nil, newError(ErrLengthMismatch, "Expand", "%d characters given, group %s has %d classes", len(irrep), g.Name, len(g.Multiplicities))
	}
	return expand(irrep, g.Multiplicities), nil
}

func expand(irrep []float64, multiplicities []int) []float64 {
	n := 0
	for _, m := range multiplicities {
		n += m
	}
	ret := make([]float64, 0, n)
	for i, c := range irrep {
		for j := 0; j < multiplicities[i]; j++ {
			ret = append(ret, c)
		}
	}
	return ret
}

//Project returns the SALCs obtained with the projection operator method.
//results contains the result of applying each symmetry operation of the group to the
//reference orbital, in the order of the operations in the group's table (see Expand).
//One combination is returned for each irreducible representation, in the table order.
//The combination for an irrep with no SALC is the zero combination (IsZero() is true).
//
//For instance, for the hydrogens of ammonia, labeled a, b and c, in C3v, the results are
//[a, b, c, a, b, c], and the SALCs 2*a + 2*b + 2*c (A1), 0 (A2) and 2*a - b - c (E).
func Project(results []lincomb.Expr, group string) ([]lincomb.Expr, error) {
	g, err := tables.Lookup(group)
	if err != nil {
		return nil, errDecorate(err, "Project")
	}
	if len(results) != g.Order() {
		return nil, newError(ErrLengthMismatch, "Project", "%d projection results given, group %s has %d operations", len(results), g.Name, g.Order())
	}
	salcs := make([]lincomb.Expr, 0, len(g.Irreps))
	terms := make([]lincomb.Expr, len(results))
	for _, ir := range g.Irreps {
		for i, c := range expand(ir.Characters, g.Multiplicities) {
			terms[i] = results[i].Scale(c)
		}
		salcs = append(salcs, lincomb.Sum(terms...))
	}
	return salcs, nil
}

//ProjectStrings is like Project, but takes the projection results as strings
//to be parsed with lincomb.Parse, i.e. "-e1", "2*a + b".
func ProjectStrings(results []string, group string) ([]lincomb.Expr, error) {
	exprs := make([]lincomb.Expr, 0, len(results))
	for _, v := range results {
		e, err := lincomb.Parse(v)
		if err != nil {
			return nil, errDecorate(err, "ProjectStrings")
		}
		exprs = append(exprs, e)
	}
	salcs, err := Project(exprs, group)
	if err != nil {
		return nil, errDecorate(err, "ProjectStrings")
	}
	return salcs, nil
}
