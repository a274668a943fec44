package symfunc

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEval(Te *testing.T) {
	cases := []struct {
		in      string
		x, y, z float64
		want    float64
		str     string
		degree  int
	}{
		{"x^2-y^2", 1, 0, 0, 1, "x^2 - y^2", 2},
		{"x^2-y^2", 0, 1, 0, -1, "x^2 - y^2", 2},
		{"2z**2 - x**2 - y**2", 0, 0, 1, 2, "2z^2 - x^2 - y^2", 2},
		{"2z**2 - x**2 - y**2", 1, 0, 0, -1, "2z^2 - x^2 - y^2", 2},
		{"xyz", 1, 2, 3, 6, "xyz", 3},
		{"0.5*x*y", 2, 2, 0, 2, "0.5xy", 2},
		{"x + x", 3, 0, 0, 6, "2x", 1},
		{"z", 0, 0, -1, -1, "z", 1},
		{"-x", 1, 0, 0, -1, "-x", 1},
		{"1", 5, 5, 5, 1, "1", 0},
		{"x*x", 3, 0, 0, 9, "x^2", 2},
		{" 2 x * y ", 1, 2, 0, 4, "2xy", 2},
	}
	for _, c := range cases {
		p, err := Parse(c.in)
		require.NoError(Te, err, c.in)
		assert.InDelta(Te, c.want, p.Eval(c.x, c.y, c.z), 1e-12, c.in)
		assert.Equal(Te, c.str, p.String(), c.in)
		assert.Equal(Te, c.degree, p.Degree(), c.in)
	}
}

func TestZeroPoly(Te *testing.T) {
	for _, s := range []string{"0", "x - x", "x^2 - 0.5x^2 - 0.5x^2"} {
		p, err := Parse(s)
		require.NoError(Te, err)
		assert.True(Te, p.IsZero(), s)
		assert.Equal(Te, "0", p.String())
		assert.Equal(Te, 0.0, p.Eval(1, 2, 3))
	}
	var p Poly
	assert.True(Te, p.IsZero())
}

func TestParseErrors(Te *testing.T) {
	for _, s := range []string{"", "   ", "x+", "x^", "a", "x+-y", "2x)", "x**", "x2", "z(x^2-y^2)",
		"x*-y", "x*", "*x", "2 3x", "x * + y"} {
		_, err := Parse(s)
		require.Error(Te, err, s)
		assert.True(Te, errors.Is(err, ErrSyntax), s)
		var e Error
		require.True(Te, errors.As(err, &e))
		assert.True(Te, e.Critical())
	}
	assert.Panics(Te, func() { MustParse("q") })
}

func TestNewMerges(Te *testing.T) {
	p := New(Monomial{1, 2, 0, 0}, Monomial{1, 0, 2, 0}, Monomial{-1, 2, 0, 0})
	require.Len(Te, p.Terms(), 1)
	assert.Equal(Te, Monomial{1, 0, 2, 0}, p.Terms()[0])
	//Terms returns a copy
	p.Terms()[0].Coef = 10
	assert.Equal(Te, 1.0, p.Terms()[0].Coef)
}

func ExampleParse() {
	p, err := Parse("2z^2 - x^2 - y^2")
	if err != nil {
		panic(err)
	}
	fmt.Println(p, p.Eval(0, 0, 1), p.Eval(1, 0, 0))
	// Output: 2z^2 - x^2 - y^2 2 -1
}
