// Package algebra holds the arithmetic the maturation engine is built on:
// complex scalars, dense polynomials over the complex numbers, and
// polynomials kept as a product of linear factors.
package algebra

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrDivisionByZero   = errors.New("division by zero")
	ErrNegativeExponent = errors.New("negative exponent")
	ErrDegreeOverflow   = errors.New("degree overflows int")
)

// IPow raises z to the integer power n by squaring. A negative n squares
// 1/z, so every int is accepted, math.MinInt included.
func IPow(z complex128, n int) (complex128, error) {
	m := uint(n)
	if n < 0 {
		if z == 0 {
			return 0, fmt.Errorf("%w: 0^%d", ErrDivisionByZero, n)
		}
		z = 1 / z
		m = uint(-(n + 1)) + 1
	}
	result := complex(1, 0)
	for m > 0 {
		if m&1 == 1 {
			result *= z
		}
		z *= z
		m >>= 1
	}
	return result, nil
}

// FloorDiv divides a by b and floors both parts of the quotient
// independently. The remainder satisfies q*b + r == a.
func FloorDiv(a, b complex128) (q, r complex128, err error) {
	if b == 0 {
		return 0, 0, ErrDivisionByZero
	}
	exact := a / b
	q = complex(math.Floor(real(exact)), math.Floor(imag(exact)))
	r = a - q*b
	return q, r, nil
}

// FormatComplex prints 3, 2i, (1+2i) or (1-2i).
func FormatComplex(z complex128) string {
	// adding zero folds -0 into 0
	re, im := real(z)+0, imag(z)+0
	switch {
	case im == 0:
		return fmt.Sprintf("%g", re)
	case re == 0:
		return fmt.Sprintf("%gi", im)
	default:
		return fmt.Sprintf("(%g%+gi)", re, im)
	}
}
