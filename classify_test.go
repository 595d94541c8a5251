package polymature_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pm "github.com/njchilds90/polymature"
	"github.com/njchilds90/polymature/catalog"
	"github.com/njchilds90/polymature/lattice"
)

func TestClassify_ConstantLeaves(t *testing.T) {
	cases := []struct {
		re, im float64
		want   lattice.Type
	}{
		{0, 0, lattice.Real},
		{5, 0, lattice.Real},
		{-1.5, 0, lattice.Real},
		{0, 1, lattice.Imaginary},
		{0, -3, lattice.Imaginary},
		{2, 2, lattice.Complex},
		{-1, 0.5, lattice.Complex},
	}
	for _, c := range cases {
		leaf := pm.Const(c.re, c.im)
		assert.Equal(t, c.want, pm.Classify(leaf), "%v%+vi", c.re, c.im)
		assert.True(t, pm.Classify(leaf).IsNumber())

		// same answer once matured
		_, err := pm.Mature(leaf)
		require.NoError(t, err)
		assert.Equal(t, c.want, pm.Classify(leaf))
	}
}

func TestClassify_Groups(t *testing.T) {
	cases := []struct {
		name string
		node *pm.Node
		want lattice.Type
	}{
		{"x^2 leaf", pm.Term(1, 2), lattice.Unfactored},
		{"x leaf", pm.X(), lattice.Unfactored},
		{"(x)", pm.Group(pm.X()), lattice.Factored},
		{"(x + 3)", xPlus(3), lattice.Factored},
		{"(x - 3)", xMinus(3), lattice.Factored},
		{"(3 + x)", pm.Group(pm.Const(3, 0), pm.Plus(pm.X())), lattice.Factored},
		{"(x + 2i)", pm.Group(pm.X(), pm.Plus(pm.Const(0, 2))), lattice.Factored},
		{"* (x + 3)", pm.Times(xPlus(3)), lattice.Factored},
		{"+ (x + 3)", pm.Plus(xPlus(3)), lattice.Unfactored},
		{"(3 - x)", pm.Group(pm.Const(3, 0), pm.Minus(pm.X())), lattice.Unfactored},
		{"(2x + 1)", pm.Group(pm.Term(2, 1), pm.Plus(pm.Const(1, 0))), lattice.Unfactored},
		{"(x + x)", pm.Group(pm.X(), pm.Plus(pm.X())), lattice.Unfactored},
		{"(x * 3)", pm.Group(pm.X(), pm.Times(pm.Const(3, 0))), lattice.Unfactored},
		{"(x + 1 + 2)", pm.Group(pm.X(), pm.Plus(pm.Const(1, 0)), pm.Plus(pm.Const(2, 0))), lattice.Unfactored},
		{"((x)^2 + 1)", pm.Group(pm.X().Raised(2), pm.Plus(pm.Const(1, 0))), lattice.Unfactored},
		{"(3)", pm.Group(pm.Const(3, 0)), lattice.Unfactored},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, pm.Classify(c.node))
		})
	}
}

func TestClassify_LinearFormRoots(t *testing.T) {
	cases := []struct {
		node *pm.Node
		want string
	}{
		{pm.Group(pm.X()), "x"},
		{xPlus(3), "(x + 3)"},
		{xMinus(3), "(x - 3)"},
		{pm.Group(pm.Const(-2, 0), pm.Plus(pm.X())), "(x - 2)"},
		{pm.Group(pm.X(), pm.Minus(pm.Const(1, 1))), "(x - (1+1i))"},
	}
	for _, c := range cases {
		v := evaluate(t, c.node)
		assert.Equal(t, lattice.Factored, v.Type())
		assert.Equal(t, c.want, v.String())
	}
}

func TestClassify_MaturedGroupUsesValue(t *testing.T) {
	// (3) is unfactored by shape but matures to a number
	g := pm.Group(pm.Const(3, 0))
	assert.Equal(t, lattice.Unfactored, pm.Classify(g))
	_, err := pm.Mature(g)
	require.NoError(t, err)
	assert.Equal(t, lattice.Real, pm.Classify(g))
}

func TestClassify_CallUsesReturnType(t *testing.T) {
	assert.Equal(t, lattice.Unfactored, pm.Classify(pm.Call(catalog.Expand, xPlus(1))))
	assert.Equal(t, lattice.Division, pm.Classify(pm.Call(catalog.Divide, pm.X(), pm.X())))
	assert.Equal(t, lattice.Number, pm.NewEngine().Classify(pm.Call(catalog.Evaluate, pm.X(), pm.Const(1, 0))))
}
