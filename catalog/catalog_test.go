package catalog_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/njchilds90/polymature/catalog"
	"github.com/njchilds90/polymature/lattice"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	c := catalog.Default()

	assert.Equal(t, []string{"compose", "divide", "evaluate", "expand", "factor", "interpolate"}, c.Names())

	code, ok := c.Lookup("evaluate")
	require.True(t, ok)
	assert.Equal(t, catalog.Evaluate, code)
	assert.Equal(t, 2, c.ArgCount(code))
	assert.Equal(t, lattice.Polynomial, c.ArgType(code, 0))
	assert.Equal(t, lattice.Number, c.ArgType(code, 1))
	assert.Equal(t, lattice.None, c.ArgType(code, 2))
	assert.Equal(t, lattice.Number, c.ReturnType(code))

	assert.Equal(t, lattice.Factored, c.ArgType(catalog.Expand, 0))
	assert.Equal(t, lattice.Division, c.ReturnType(catalog.Divide))
	assert.Equal(t, "divide", c.Name(catalog.Divide))
	assert.Equal(t, "function#99", c.Name(99))
}

func TestVariadicReusesMask(t *testing.T) {
	c := catalog.Default()
	assert.Equal(t, 0, c.ArgCount(catalog.Interpolate))
	for pos := 0; pos < 5; pos++ {
		assert.Equal(t, lattice.Number, c.ArgType(catalog.Interpolate, pos))
	}
}

func TestParse_Invalid(t *testing.T) {
	cases := map[string]string{
		"missing name":       "functions:\n  - code: 1\n    arity: 1\n    args: [real]\n    returns: real\n",
		"duplicate code":     "functions:\n  - {code: 1, name: a, arity: 1, args: [real], returns: real}\n  - {code: 1, name: b, arity: 1, args: [real], returns: real}\n",
		"arity mismatch":     "functions:\n  - {code: 1, name: a, arity: 2, args: [real], returns: real}\n",
		"variadic two masks": "functions:\n  - {code: 1, name: a, arity: 0, args: [real, real], returns: real}\n",
		"unknown type":       "functions:\n  - {code: 1, name: a, arity: 1, args: [matrix], returns: real}\n",
		"unknown return":     "functions:\n  - {code: 1, name: a, arity: 1, args: [real], returns: matrix}\n",
		"missing return":     "functions:\n  - {code: 1, name: a, arity: 1, args: [real]}\n",
		"empty mask":         "functions:\n  - {code: 1, name: a, arity: 1, args: [none], returns: real}\n",
		"not yaml":           "functions: [",
	}
	for name, def := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := catalog.Parse([]byte(def))
			assert.ErrorIs(t, err, catalog.ErrInvalidCatalog)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	def := "functions:\n  - {code: 1, name: develop, arity: 1, args: [\"factored|unfactored\"], returns: unfactored}\n"
	require.NoError(t, os.WriteFile(path, []byte(def), 0o600))

	c, err := catalog.Load(path)
	require.NoError(t, err)
	code, ok := c.Lookup("develop")
	require.True(t, ok)
	assert.Equal(t, catalog.Expand, code)
	assert.Equal(t, lattice.Polynomial, c.ArgType(code, 0))

	_, err = catalog.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
