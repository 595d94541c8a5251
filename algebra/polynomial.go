package algebra

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/cmplxs"
)

// Polynomial is a dense univariate polynomial in x with complex
// coefficients; coeffs[i] multiplies x^i. Trailing zeros are trimmed, so the
// zero polynomial has no coefficients. Operations never modify their
// receiver.
type Polynomial struct {
	coeffs []complex128
}

// NewPolynomial builds a polynomial from coefficients in increasing degree.
func NewPolynomial(coeffs ...complex128) Polynomial {
	out := make([]complex128, len(coeffs))
	copy(out, coeffs)
	return fromCoeffs(out)
}

func Constant(c complex128) Polynomial { return fromCoeffs([]complex128{c}) }

// MonomialPoly returns c*x^exp.
func MonomialPoly(c complex128, exp int) Polynomial {
	if exp < 0 {
		exp = 0
	}
	out := make([]complex128, exp+1)
	out[exp] = c
	return fromCoeffs(out)
}

func One() Polynomial { return Constant(1) }

func fromCoeffs(c []complex128) Polynomial {
	n := len(c)
	for n > 0 && c[n-1] == 0 {
		n--
	}
	if n == 0 {
		return Polynomial{}
	}
	return Polynomial{coeffs: c[:n]}
}

func (p Polynomial) clone() []complex128 {
	out := make([]complex128, len(p.coeffs))
	copy(out, p.coeffs)
	return out
}

// Coeffs returns a copy of the coefficients, lowest degree first.
func (p Polynomial) Coeffs() []complex128 { return p.clone() }

// Degree returns -1 for the zero polynomial.
func (p Polynomial) Degree() int { return len(p.coeffs) - 1 }
func (p Polynomial) IsZero() bool { return len(p.coeffs) == 0 }

func (p Polynomial) Coeff(i int) complex128 {
	if i < 0 || i >= len(p.coeffs) {
		return 0
	}
	return p.coeffs[i]
}

// IsConstant reports whether p has degree 0 or is zero.
func (p Polynomial) IsConstant() bool { return len(p.coeffs) <= 1 }

func (p Polynomial) Add(q Polynomial) Polynomial {
	out := make([]complex128, max(len(p.coeffs), len(q.coeffs)))
	copy(out, p.coeffs)
	cmplxs.Add(out[:len(q.coeffs)], q.coeffs)
	return fromCoeffs(out)
}

func (p Polynomial) Sub(q Polynomial) Polynomial {
	out := make([]complex128, max(len(p.coeffs), len(q.coeffs)))
	copy(out, p.coeffs)
	cmplxs.Sub(out[:len(q.coeffs)], q.coeffs)
	return fromCoeffs(out)
}

func (p Polynomial) Scale(c complex128) Polynomial {
	out := p.clone()
	cmplxs.Scale(c, out)
	return fromCoeffs(out)
}

func (p Polynomial) Mul(q Polynomial) Polynomial {
	if p.IsZero() || q.IsZero() {
		return Polynomial{}
	}
	out := make([]complex128, len(p.coeffs)+len(q.coeffs)-1)
	for i, c := range p.coeffs {
		if c == 0 {
			continue
		}
		cmplxs.AddScaled(out[i:i+len(q.coeffs)], c, q.coeffs)
	}
	return fromCoeffs(out)
}

// Pow raises p to n >= 0. p^0 is 1, including for the zero polynomial.
func (p Polynomial) Pow(n int) (Polynomial, error) {
	if n < 0 {
		return Polynomial{}, fmt.Errorf("%w: polynomial^%d", ErrNegativeExponent, n)
	}
	result, base := One(), p
	for n > 0 {
		if n&1 == 1 {
			result = result.Mul(base)
		}
		n >>= 1
		if n > 0 {
			base = base.Mul(base)
		}
	}
	return result, nil
}

// Compose returns p(g(x)).
func (p Polynomial) Compose(g Polynomial) Polynomial {
	result := Polynomial{}
	for i := len(p.coeffs) - 1; i >= 0; i-- {
		result = result.Mul(g).Add(Constant(p.coeffs[i]))
	}
	return result
}

// Evaluate computes p(z) with Horner's scheme.
func (p Polynomial) Evaluate(z complex128) complex128 {
	var acc complex128
	for i := len(p.coeffs) - 1; i >= 0; i-- {
		acc = acc*z + p.coeffs[i]
	}
	return acc
}

// DivMod performs Euclidean division: p = quotient*d + remainder with
// deg(remainder) < deg(d).
func (p Polynomial) DivMod(d Polynomial) (quotient, remainder Polynomial, err error) {
	if d.IsZero() {
		return Polynomial{}, Polynomial{}, fmt.Errorf("%w: polynomial divisor is zero", ErrDivisionByZero)
	}
	if d.IsConstant() {
		return p.Scale(1 / d.coeffs[0]), Polynomial{}, nil
	}
	if len(p.coeffs) < len(d.coeffs) {
		return Polynomial{}, p, nil
	}

	rem := p.clone()
	n := len(d.coeffs)
	lead := d.coeffs[n-1]
	quot := make([]complex128, len(rem)-n+1)

	for k := len(quot) - 1; k >= 0; k-- {
		c := rem[k+n-1] / lead
		quot[k] = c
		if c != 0 {
			cmplxs.AddScaled(rem[k:k+n], -c, d.coeffs)
		}
		// the leading term cancels exactly; drop rounding residue
		rem[k+n-1] = 0
	}
	return fromCoeffs(quot), fromCoeffs(rem[:n-1]), nil
}

func (p Polynomial) Equal(q Polynomial) bool {
	if len(p.coeffs) != len(q.coeffs) {
		return false
	}
	for i := range p.coeffs {
		if p.coeffs[i] != q.coeffs[i] {
			return false
		}
	}
	return true
}

func (p Polynomial) String() string {
	if p.IsZero() {
		return "0"
	}
	var sb strings.Builder
	first := true
	for i := len(p.coeffs) - 1; i >= 0; i-- {
		c := p.coeffs[i]
		if c == 0 {
			continue
		}
		term := formatTerm(c, i)
		switch {
		case first:
			sb.WriteString(term)
		case strings.HasPrefix(term, "-"):
			sb.WriteString(" - ")
			sb.WriteString(term[1:])
		default:
			sb.WriteString(" + ")
			sb.WriteString(term)
		}
		first = false
	}
	return sb.String()
}

func formatTerm(c complex128, exp int) string {
	if exp == 0 {
		return FormatComplex(c)
	}
	var coeff string
	switch c {
	case 1:
	case -1:
		coeff = "-"
	default:
		coeff = FormatComplex(c)
	}
	if exp == 1 {
		return coeff + "x"
	}
	return fmt.Sprintf("%sx^%d", coeff, exp)
}
