package polymature

import (
	"fmt"
	"math/cmplx"

	"github.com/njchilds90/polymature/algebra"
	"github.com/njchilds90/polymature/lattice"
)

// Value is the matured content of a node. The set of implementations is
// closed: *Number, *Poly, *FactoredPoly and *DivResult.
type Value interface {
	Type() lattice.Type
	String() string
	isValue()
}

// ============================================================
// Number
// ============================================================

type Number struct{ Z complex128 }

func NumberOf(z complex128) *Number { return &Number{Z: z} }

// Type returns the Real, Imaginary or Complex sub-tag.
func (n *Number) Type() lattice.Type { return lattice.ForComplex(n.Z) }
func (n *Number) String() string     { return algebra.FormatComplex(n.Z) }
func (*Number) isValue()             {}

// ============================================================
// Poly: expanded polynomial
// ============================================================

type Poly struct{ P algebra.Polynomial }

func PolyOf(p algebra.Polynomial) *Poly { return &Poly{P: p} }

func (p *Poly) Type() lattice.Type { return lattice.Unfactored }
func (p *Poly) String() string     { return p.P.String() }
func (*Poly) isValue()             {}

// ============================================================
// FactoredPoly: product of linear factors
// ============================================================

type FactoredPoly struct{ F algebra.Factored }

func FactoredOf(f algebra.Factored) *FactoredPoly { return &FactoredPoly{F: f} }

func (f *FactoredPoly) Type() lattice.Type { return lattice.Factored }
func (f *FactoredPoly) String() string     { return f.F.String() }
func (*FactoredPoly) isValue()             {}

// ============================================================
// DivResult: output of divide[], terminal
// ============================================================

// DivResult is the (quotient, remainder) pair of an Euclidean division. It
// cannot be raised to a power or combined with anything else.
type DivResult struct {
	Quotient  algebra.Polynomial
	Remainder algebra.Polynomial
}

func (d *DivResult) Type() lattice.Type { return lattice.Division }
func (d *DivResult) String() string {
	return fmt.Sprintf("quotient: %s, remainder: %s", d.Quotient, d.Remainder)
}
func (*DivResult) isValue() {}

func (d *DivResult) accumulate(q, r algebra.Polynomial) {
	d.Quotient = d.Quotient.Add(q)
	d.Remainder = d.Remainder.Add(r)
}

// ============================================================
// Value helpers
// ============================================================

// Pow raises v to n. Factored values carry the power in their
// multiplicities; a DivResult cannot be raised.
func Pow(v Value, n int) (Value, error) {
	switch t := v.(type) {
	case *Number:
		z, err := algebra.IPow(t.Z, n)
		if err != nil {
			return nil, err
		}
		return NumberOf(z), nil
	case *FactoredPoly:
		f, err := t.F.Pow(n)
		if err != nil {
			return nil, err
		}
		return FactoredOf(f), nil
	case *Poly:
		p, err := t.P.Pow(n)
		if err != nil {
			return nil, err
		}
		return PolyOf(p), nil
	case *DivResult:
		return nil, fmt.Errorf("%w: raised to %d", ErrReusedDivisionResult, n)
	}
	return nil, fmt.Errorf("unknown value %T", v)
}

// toPolynomial lifts a number to a constant polynomial and expands a
// factored one.
func toPolynomial(v Value) (algebra.Polynomial, error) {
	switch t := v.(type) {
	case *Number:
		return algebra.Constant(t.Z), nil
	case *FactoredPoly:
		return t.F.Expand()
	case *Poly:
		return t.P, nil
	case *DivResult:
		return algebra.Polynomial{}, ErrReusedDivisionResult
	}
	return algebra.Polynomial{}, fmt.Errorf("unknown value %T", v)
}

// degreeOf is the polynomial degree carried by v; numbers have degree 0 and
// a DivResult reports its quotient.
func degreeOf(v Value) int {
	switch t := v.(type) {
	case *Poly:
		return t.P.Degree()
	case *FactoredPoly:
		return t.F.Degree()
	case *DivResult:
		return t.Quotient.Degree()
	}
	return 0
}

func finite(v Value) bool {
	ok := func(zs ...complex128) bool {
		for _, z := range zs {
			if cmplx.IsInf(z) || cmplx.IsNaN(z) {
				return false
			}
		}
		return true
	}
	switch t := v.(type) {
	case *Number:
		return ok(t.Z)
	case *Poly:
		return ok(t.P.Coeffs()...)
	case *FactoredPoly:
		for _, f := range t.F.Factors {
			if !ok(f.Root) {
				return false
			}
		}
		return ok(t.F.Coeff)
	case *DivResult:
		return ok(t.Quotient.Coeffs()...) && ok(t.Remainder.Coeffs()...)
	}
	return true
}
