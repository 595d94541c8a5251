package polymature

import (
	"errors"
	"fmt"

	"github.com/njchilds90/polymature/algebra"
	"github.com/njchilds90/polymature/lattice"
)

// Every error aborts the whole maturation; nothing is recovered per node.
var (
	ErrReusedDivisionResult    = errors.New("cannot reuse the output of an euclidean division")
	ErrInvalidDivisionOperands = errors.New("'/' can only be used between numbers, use divide[] for polynomials")
	ErrUnexpectedOperator      = errors.New("unexpected operator")
	ErrArgumentTypeMismatch    = errors.New("invalid argument type")
	ErrNotImplemented          = errors.New("not implemented")
	ErrArgumentCount           = errors.New("wrong number of arguments")
	ErrUnknownFunction         = errors.New("unknown function")
	ErrEmptyGroup              = errors.New("empty group")
	ErrTooDeep                 = errors.New("expression nested too deeply")
	ErrDegreeTooHigh           = errors.New("polynomial degree exceeds the limit")
	ErrOverflow                = errors.New("result is not a finite number")

	ErrDivisionByZero   = algebra.ErrDivisionByZero
	ErrNegativeExponent = algebra.ErrNegativeExponent
	ErrDegreeOverflow   = algebra.ErrDegreeOverflow
)

// ArgumentError reports a function argument whose type is outside the mask
// the catalog declares for its position.
type ArgumentError struct {
	Func     string
	Position int // zero-based
	Expected lattice.Type
	Actual   lattice.Type
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("invalid argument %d for function %s: %s instead of %s",
		e.Position+1, e.Func, e.Actual, e.Expected)
}

func (e *ArgumentError) Unwrap() error { return ErrArgumentTypeMismatch }
