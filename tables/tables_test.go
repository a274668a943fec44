package tables

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(Te *testing.T) {
	for _, name := range []string{"c3v", "C3v", "C3V", " c3v "} {
		g, err := Lookup(name)
		require.NoError(Te, err, name)
		assert.Equal(Te, "C3v", g.Name)
		assert.Equal(Te, 6, g.Order())
	}
	_, err := Lookup("c7q")
	require.Error(Te, err)
	assert.True(Te, errors.Is(err, ErrUnknownGroup))
	var e Error
	require.True(Te, errors.As(err, &e))
	assert.Equal(Te, "c7q", e.Group())
	assert.True(Te, e.Critical())
	assert.Equal(Te, []string{"Lookup", "test"}, e.Decorate("test"))
}

func TestNames(Te *testing.T) {
	names := Names()
	assert.Len(Te, names, 28)
	assert.IsIncreasing(Te, names)
	for _, name := range []string{"d4h", "oh", "d6h", "d5h", "ih", "o"} {
		assert.Contains(Te, names, name)
	}
}

//Every table must satisfy the orthogonality relations between irreducible
//representations, and the squares of their dimensions must add to the group order.
func TestOrthogonality(Te *testing.T) {
	for _, name := range Names() {
		g, err := Lookup(name)
		require.NoError(Te, err)
		h := float64(g.Order())
		dims := 0.0
		for i, a := range g.Irreps {
			require.Len(Te, a.Characters, len(g.Classes), name)
			dims += a.Characters[0] * a.Characters[0]
			for j, b := range g.Irreps {
				s := 0.0
				for k, m := range g.Multiplicities {
					s += float64(m) * a.Characters[k] * b.Characters[k]
				}
				want := 0.0
				if i == j {
					want = h
				}
				assert.InDelta(Te, want, s, 1e-9, "%s %s %s", name, a.Label, b.Label)
			}
		}
		assert.InDelta(Te, h, dims, 1e-9, name)
	}
}

func TestBasis(Te *testing.T) {
	c1, _ := Lookup("c1")
	assert.Equal(Te, Constant, c1.Irreps[0].Basis.Kind)

	c3v, _ := Lookup("c3v")
	a2, ok := c3v.Irrep("A2")
	require.True(Te, ok)
	assert.Equal(Te, None, a2.Basis.Kind)
	_, ok = c3v.Irrep("T2g")
	assert.False(Te, ok)

	d3h, _ := Lookup("d3h")
	e, ok := d3h.Irrep("E'")
	require.True(Te, ok)
	require.Equal(Te, Functions, e.Basis.Kind)
	require.Len(Te, e.Basis.Funcs, 4)
	assert.Equal(Te, "x^2 - y^2", e.Basis.Funcs[2].String())
	assert.InDelta(Te, -0.5, e.Basis.Funcs[2].Eval(-0.5, 0.8660254, 0), 1e-6)
	assert.Equal(Te, "functions", Functions.String())
}

func TestLoad(Te *testing.T) {
	good := `
x2:
  name: X2
  classes: [E, C2]
  multiplicities: [1, 1]
  irreps:
    - {label: A, characters: [1, 1], basis: ["z", "x^2"]}
    - {label: B, characters: [1, -1]}
`
	m, err := load([]byte(good))
	require.NoError(Te, err)
	require.Contains(Te, m, "x2")
	assert.Equal(Te, "X2", m["x2"].Name)
	assert.Equal(Te, Functions, m["x2"].Irreps[0].Basis.Kind)
	//A missing basis is logged and taken as no basis at all.
	assert.Equal(Te, None, m["x2"].Irreps[1].Basis.Kind)

	bad := map[string]string{
		"classes": `
x2: {classes: [E, C2], multiplicities: [1], irreps: []}`,
		"characters": `
x2: {classes: [E, C2], multiplicities: [1, 1], irreps: [{label: A, characters: [1], basis: 0}]}`,
		"constant": `
x2: {classes: [E], multiplicities: [1], irreps: [{label: A, characters: [1], basis: 2}]}`,
		"formula": `
x2: {classes: [E], multiplicities: [1], irreps: [{label: A, characters: [1], basis: ["x+"]}]}`,
		"mapping": `
x2: {classes: [E], multiplicities: [1], irreps: [{label: A, characters: [1], basis: {x: 1}}]}`,
		"yaml": `x2: [`,
	}
	for k, doc := range bad {
		_, err := load([]byte(doc))
		assert.Error(Te, err, k)
	}
}

func ExampleLookup() {
	g, err := Lookup("D3h")
	if err != nil {
		panic(err)
	}
	for _, ir := range g.Irreps {
		fmt.Println(ir.Label, ir.Characters)
	}
	// Output:
	// A1' [1 1 1 1 1 1]
	// A2' [1 1 -1 1 1 -1]
	// E' [2 -1 0 2 -1 0]
	// A1'' [1 1 1 -1 -1 -1]
	// A2'' [1 1 -1 -1 -1 1]
	// E'' [2 -1 0 -2 1 0]
}
