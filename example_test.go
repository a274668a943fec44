package salc_test

import (
	"fmt"

	salc "github.com/rmera/gosalc"
	"github.com/rmera/gosalc/lincomb"
	"github.com/rmera/gosalc/tables"
)

//The hydrogens of ammonia, labeled a, b and c. Following the hydrogen a through
//the operations of C3v (E, 2C3, 3sv) gives a, b, c, a, b, c.
func ExampleProject() {
	ops := []lincomb.Expr{}
	for _, v := range []string{"a", "b", "c", "a", "b", "c"} {
		ops = append(ops, lincomb.Sym(v))
	}
	salcs, err := salc.Project(ops, "C3v")
	if err != nil {
		panic(err)
	}
	for _, s := range salcs {
		fmt.Println(s)
	}
	// Output:
	// 2*a + 2*b + 2*c
	// 0
	// 2*a - b - c
}

func ExampleExpand() {
	e, err := salc.Expand([]float64{2, -1, 0}, "c3v")
	if err != nil {
		panic(err)
	}
	fmt.Println(e)
	// Output: [2 -1 -1 0 0 0]
}

//A square planar complex, with ligands on the x and y axes.
func ExampleFromFunctions() {
	ligands := [][]float64{{1, 0, 0}, {0, 1, 0}, {-1, 0, 0}, {0, -1, 0}}
	salcs, err := salc.FromFunctions(ligands, "d4h", salc.Vector)
	if err != nil {
		panic(err)
	}
	for _, s := range salcs {
		fmt.Println(s.Irrep, s)
	}
	// Output:
	// A1g [1 1 1 1]
	// A2g 0
	// B1g [1 -1 1 -1]
	// B2g 0
	// Eg 0
	// A1u 0
	// A2u 0
	// B1u 0
	// B2u 0
	// Eu [[1 0 -1 0] [0 1 0 -1]]
}

//A trigonal bipyramid: three equatorial ligands e1, e2, e3 and two axial ones, a1 and a2.
func ExampleFromFunctionsLabeled() {
	angles := [][]float64{{0, 0}, {120, 0}, {240, 0}, {0, 90}, {0, -90}}
	salcs, err := salc.FromFunctionsLabeled(angles, []string{"e1", "e2", "e3", "a1", "a2"}, "d3h", salc.Angle)
	if err != nil {
		panic(err)
	}
	g, _ := tables.Lookup("d3h")
	for i, s := range salcs {
		fmt.Println(g.Irreps[i].Label, s)
	}
	// Output:
	// A1' [e1 + e2 + e3 a1 + a2]
	// A2' []
	// E' [e1 - 0.5*e2 - 0.5*e3 e2 - e3 e1 - 0.5*e2 - 0.5*e3 -e2 + e3]
	// A1'' []
	// A2'' [a1 - a2]
	// E'' []
}
