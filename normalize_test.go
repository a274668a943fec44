package salc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeRow(Te *testing.T) {
	cases := []struct {
		in, want []float64
	}{
		{[]float64{0, -0.43, 0.43, 0, 0}, []float64{0, -1, 1, 0, 0}},
		{[]float64{0, 0.87, -0.87}, []float64{0, 1, -1}},
		{[]float64{2, 1, -1}, []float64{1, 0.5, -0.5}},
		{[]float64{0.5, -1}, []float64{0.5, -1}},
		{[]float64{-2, -2, 4}, []float64{-0.5, -0.5, 1}},
		{[]float64{0.33, 0.33, 0.33}, []float64{1, 1, 1}},
		{[]float64{3, 1}, []float64{1, 0.33}},
		{[]float64{0, 0}, []float64{0, 0}},
		{[]float64{}, []float64{}},
	}
	for _, c := range cases {
		in := make([]float64, len(c.in))
		copy(in, c.in)
		got := NormalizeRow(c.in)
		assert.Equal(Te, c.want, got, "%v", c.in)
		assert.Equal(Te, in, c.in, "input modified")
		for _, v := range got {
			assert.True(Te, v >= -1 && v <= 1)
		}
	}
}

func TestNormalizeSentinels(Te *testing.T) {
	for _, s := range []SALC{{Irrep: "A2", Kind: NoSALC}, {Irrep: "A", Kind: TotallySymmetric}} {
		assert.Equal(Te, s, Normalize(s))
		assert.Equal(Te, s, Normalize(Normalize(s)))
	}
}

func TestNormalizeIdempotent(Te *testing.T) {
	s := NewSALC("E'", []float64{1.73, -0.87, -0.87}, []float64{0, 0.87, -0.87})
	n := Normalize(s)
	assert.Equal(Te, Degenerate, n.Kind)
	assert.Equal(Te, "E'", n.Irrep)
	assert.Equal(Te, [][]float64{{1, -0.5, -0.5}, {0, 1, -1}}, n.Rows())
	assert.Equal(Te, n, Normalize(n))
	//the original is untouched
	assert.Equal(Te, 1.73, s.Rows()[0][0])
}
