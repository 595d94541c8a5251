package algebra

import (
	"fmt"
	"math"
	"strings"
)

// Factor is the linear factor (x - Root)^Multiplicity.
type Factor struct {
	Root         complex128
	Multiplicity int
}

// Factored is a polynomial kept as Coeff * Π (x - root)^multiplicity.
// Factors with equal roots are merged.
type Factored struct {
	Coeff   complex128
	Factors []Factor
}

// NewFactored builds coeff * Π factors, merging repeated roots and dropping
// factors of multiplicity zero.
func NewFactored(coeff complex128, factors ...Factor) Factored {
	f := Factored{Coeff: coeff}
	for _, fa := range factors {
		f.Factors = mergeFactor(f.Factors, fa)
	}
	return f
}

// Linear returns (x - root).
func Linear(root complex128) Factored {
	return NewFactored(1, Factor{Root: root, Multiplicity: 1})
}

func mergeFactor(into []Factor, fa Factor) []Factor {
	if fa.Multiplicity == 0 {
		return into
	}
	for i := range into {
		if into[i].Root == fa.Root {
			into[i].Multiplicity += fa.Multiplicity
			if into[i].Multiplicity == 0 {
				return append(into[:i], into[i+1:]...)
			}
			return into
		}
	}
	return append(into, fa)
}

func (f Factored) cloneFactors() []Factor {
	out := make([]Factor, len(f.Factors))
	copy(out, f.Factors)
	return out
}

// Degree is the sum of the multiplicities, or -1 when the coefficient is zero.
func (f Factored) Degree() int {
	if f.Coeff == 0 {
		return -1
	}
	d := 0
	for _, fa := range f.Factors {
		d += fa.Multiplicity
	}
	return d
}

func (f Factored) Mul(g Factored) Factored {
	out := Factored{Coeff: f.Coeff * g.Coeff, Factors: f.cloneFactors()}
	for _, fa := range g.Factors {
		out.Factors = mergeFactor(out.Factors, fa)
	}
	return out
}

func (f Factored) Scale(c complex128) Factored {
	return Factored{Coeff: f.Coeff * c, Factors: f.cloneFactors()}
}

// Pow multiplies every multiplicity by n, so the power is carried by the
// factors themselves.
func (f Factored) Pow(n int) (Factored, error) {
	if n < 0 {
		return Factored{}, fmt.Errorf("%w: factored polynomial^%d", ErrNegativeExponent, n)
	}
	coeff, err := IPow(f.Coeff, n)
	if err != nil {
		return Factored{}, err
	}
	out := Factored{Coeff: coeff}
	if n == 0 {
		return out, nil
	}
	for _, fa := range f.Factors {
		if fa.Multiplicity > math.MaxInt/n {
			return Factored{}, fmt.Errorf("%w: (x - %s)^%d raised to %d", ErrDegreeOverflow, FormatComplex(fa.Root), fa.Multiplicity, n)
		}
		out.Factors = append(out.Factors, Factor{Root: fa.Root, Multiplicity: fa.Multiplicity * n})
	}
	return out, nil
}

// Expand multiplies the factors out into a dense polynomial. A factor with a
// negative multiplicity is not a polynomial and fails with
// ErrNegativeExponent.
func (f Factored) Expand() (Polynomial, error) {
	result := Constant(f.Coeff)
	for _, fa := range f.Factors {
		lin, err := NewPolynomial(-fa.Root, 1).Pow(fa.Multiplicity)
		if err != nil {
			return Polynomial{}, err
		}
		result = result.Mul(lin)
	}
	return result, nil
}

// Evaluate computes the product directly, without expanding.
func (f Factored) Evaluate(z complex128) (complex128, error) {
	acc := f.Coeff
	for _, fa := range f.Factors {
		p, err := IPow(z-fa.Root, fa.Multiplicity)
		if err != nil {
			return 0, err
		}
		acc *= p
	}
	return acc, nil
}

func (f Factored) String() string {
	if f.Coeff == 0 {
		return "0"
	}
	var sb strings.Builder
	switch {
	case len(f.Factors) == 0:
		return FormatComplex(f.Coeff)
	case f.Coeff == -1:
		sb.WriteString("-")
	case f.Coeff != 1:
		sb.WriteString(FormatComplex(f.Coeff))
	}
	for _, fa := range f.Factors {
		sb.WriteString(formatFactor(fa))
	}
	return sb.String()
}

func formatFactor(fa Factor) string {
	var base string
	r := fa.Root
	switch {
	case r == 0:
		base = "x"
	case imag(r) == 0 && real(r) < 0, real(r) == 0 && imag(r) < 0:
		base = "(x + " + FormatComplex(-r) + ")"
	default:
		base = "(x - " + FormatComplex(r) + ")"
	}
	if fa.Multiplicity == 1 {
		return base
	}
	return fmt.Sprintf("%s^%d", base, fa.Multiplicity)
}
