/*
 * basis.go, part of goSALC.
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

package tables

import (
	"fmt"

	"github.com/rmera/gosalc/symfunc"
	"gopkg.in/yaml.v3"
)

//BasisKind tells what kind of symmetry basis an irreducible representation has.
type BasisKind int

const (
	None      BasisKind = iota //no basis function, the irrep has no SALC (written as 0 in the tables)
	Constant                   //the totally symmetric constant (written as 1 in the tables)
	Functions                  //one or more functions of x, y, z
)

func (k BasisKind) String() string {
	switch k {
	case None:
		return "none"
	case Constant:
		return "constant"
	case Functions:
		return "functions"
	}
	return fmt.Sprintf("BasisKind(%d)", int(k))
}

//Basis is the set of symmetry functions of an irreducible representation.
//Funcs is only used when Kind is Functions.
type Basis struct {
	Kind  BasisKind
	Funcs []symfunc.Poly
}

//UnmarshalYAML reads either the scalars 0 and 1, or a sequence of polynomials.
func (B *Basis) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		var n int
		if err := value.Decode(&n); err != nil {
			return fmt.Errorf("line %d: basis must be 0, 1 or a list of functions: %w", value.Line, err)
		}
		switch n {
		case 0:
			*B = Basis{Kind: None}
		case 1:
			*B = Basis{Kind: Constant}
		default:
			return fmt.Errorf("line %d: constant basis must be 0 or 1, not %d", value.Line, n)
		}
	case yaml.SequenceNode:
		var fs []string
		if err := value.Decode(&fs); err != nil {
			return err
		}
		polys := make([]symfunc.Poly, 0, len(fs))
		for _, f := range fs {
			p, err := symfunc.Parse(f)
			if err != nil {
				return fmt.Errorf("line %d: %w", value.Line, err)
			}
			polys = append(polys, p)
		}
		if len(polys) == 0 {
			*B = Basis{Kind: None}
			return nil
		}
		*B = Basis{Kind: Functions, Funcs: polys}
	default:
		return fmt.Errorf("line %d: basis must be 0, 1 or a list of functions", value.Line)
	}
	return nil
}
