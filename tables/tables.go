/*
 * tables.go, part of goSALC.
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

//Package tables contains the character tables used by goSALC.
//For each point group, it gives the classes of symmetry operations and
//their multiplicities, and for each irreducible representation, its
//characters and its symmetry basis functions.
//
//The tables are read from an embedded YAML document when the package is
//initialized, and never change afterwards, so they can be read concurrently
//without any locking.
package tables

import (
	_ "embed"
	"fmt"
	"log"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed tables.yaml
var tablesYAML []byte

var groups map[string]*Group

func init() {
	var err error
	groups, err = load(tablesYAML)
	if err != nil {
		panic(fmt.Sprintf("goSALC/tables: malformed embedded character tables: %s", err.Error()))
	}
}

//Group is the character table of a point group.
//The values returned by Lookup are shared, and must not be modified.
type Group struct {
	Name           string   //The usual name, i.e. "D3h"
	Classes        []string //Headers for each class of operations, i.e. "2C3"
	Multiplicities []int    //Number of operations in each class
	Irreps         []Irrep
}

//Irrep is an irreducible representation.
type Irrep struct {
	Label      string    //Mulliken label
	Characters []float64 //one per class (the condensed form)
	Basis      Basis
}

//Order returns the total number of symmetry operations in the group.
func (G *Group) Order() int {
	o := 0
	for _, v := range G.Multiplicities {
		o += v
	}
	return o
}

//Irrep returns the irreducible representation with the given Mulliken label,
//and true, or an empty Irrep and false if there is no such label in the group.
func (G *Group) Irrep(label string) (Irrep, bool) {
	for _, v := range G.Irreps {
		if v.Label == label {
			return v, true
		}
	}
	return Irrep{}, false
}

//Lookup returns the character table for the point group with the given name.
//The name is not case-sensitive.
func Lookup(name string) (*Group, error) {
	g, ok := groups[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, Error{message: fmt.Sprintf("no character table for point group %q", name), group: name, deco: []string{"Lookup"}, critical: true, err: ErrUnknownGroup}
	}
	return g, nil
}

//Names returns the lower-case names of all the available point groups, sorted.
func Names() []string {
	ret := make([]string, 0, len(groups))
	for k := range groups {
		ret = append(ret, k)
	}
	sort.Strings(ret)
	return ret
}

type rawIrrep struct {
	Label      string    `yaml:"label"`
	Characters []float64 `yaml:"characters"`
	Basis      *Basis    `yaml:"basis"`
}

type rawGroup struct {
	Name           string     `yaml:"name"`
	Classes        []string   `yaml:"classes"`
	Multiplicities []int      `yaml:"multiplicities"`
	Irreps         []rawIrrep `yaml:"irreps"`
}

//load decodes and checks a YAML document of character tables.
func load(data []byte) (map[string]*Group, error) {
	raw := make(map[string]rawGroup)
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	ret := make(map[string]*Group, len(raw))
	for key, r := range raw {
		key = strings.ToLower(key)
		if len(r.Classes) != len(r.Multiplicities) {
			return nil, fmt.Errorf("group %s: %d classes but %d multiplicities", key, len(r.Classes), len(r.Multiplicities))
		}
		g := &Group{Name: r.Name, Classes: r.Classes, Multiplicities: r.Multiplicities, Irreps: make([]Irrep, 0, len(r.Irreps))}
		if g.Name == "" {
			g.Name = key
		}
		for _, ir := range r.Irreps {
			if len(ir.Characters) != len(r.Multiplicities) {
				return nil, fmt.Errorf("group %s, irrep %s: %d characters for %d classes", key, ir.Label, len(ir.Characters), len(r.Multiplicities))
			}
			irrep := Irrep{Label: ir.Label, Characters: ir.Characters}
			if ir.Basis == nil {
				log.Printf("goSALC/tables: no basis functions given for irrep %s of group %s, it will have no SALC", ir.Label, key)
			} else {
				irrep.Basis = *ir.Basis
			}
			g.Irreps = append(g.Irreps, irrep)
		}
		ret[key] = g
	}
	return ret, nil
}
