package lattice_test

import (
	"testing"

	"github.com/njchilds90/polymature/lattice"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForComplex(t *testing.T) {
	cases := []struct {
		z    complex128
		want lattice.Type
	}{
		{0, lattice.Real},
		{3, lattice.Real},
		{-2.5, lattice.Real},
		{complex(0, 2), lattice.Imaginary},
		{complex(0, -1), lattice.Imaginary},
		{complex(1, 1), lattice.Complex},
		{complex(-4, 0.5), lattice.Complex},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, lattice.ForComplex(c.z), "%v", c.z)
	}
}

func TestType_Families(t *testing.T) {
	assert.True(t, lattice.Real.IsNumber())
	assert.True(t, lattice.Number.IsNumber())
	assert.False(t, lattice.Factored.IsNumber())
	assert.False(t, lattice.None.IsNumber())
	assert.False(t, (lattice.Real | lattice.Factored).IsNumber())

	assert.Equal(t, lattice.Number, lattice.Imaginary.Family())
	assert.Equal(t, lattice.Factored, lattice.Factored.Family())

	assert.True(t, lattice.Polynomial.Accepts(lattice.Factored))
	assert.False(t, lattice.Number.Accepts(lattice.Division))
}

func TestType_String(t *testing.T) {
	assert.Equal(t, "number", lattice.Number.String())
	assert.Equal(t, "real|factored", (lattice.Real | lattice.Factored).String())
	assert.Equal(t, "none", lattice.None.String())
	assert.Equal(t, "division", lattice.Division.String())
}

func TestParse(t *testing.T) {
	mask, err := lattice.Parse("real | Factored")
	require.NoError(t, err)
	assert.Equal(t, lattice.Real|lattice.Factored, mask)

	mask, err = lattice.Parse("number|polynomial")
	require.NoError(t, err)
	assert.Equal(t, lattice.Any, mask)

	_, err = lattice.Parse("matrix")
	assert.Error(t, err)

	var tt lattice.Type
	require.NoError(t, tt.UnmarshalText([]byte("unfactored")))
	assert.Equal(t, lattice.Unfactored, tt)
}
