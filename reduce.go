package polymature

import (
	"fmt"
)

// raise returns the value of a matured child with the child's own power
// applied. A DivResult only passes through unpowered. The resulting degree
// is checked before any polynomial is multiplied out.
func (e *Engine) raise(c *Node) (Value, error) {
	p := c.effectivePower()
	if _, ok := c.value.(*DivResult); ok && p != 1 {
		return nil, fmt.Errorf("%w: raised to %d", ErrReusedDivisionResult, p)
	}
	if p == 1 {
		return c.value, nil
	}
	if d := degreeOf(c.value); e.maxDegree > 0 && d > 0 && p > e.maxDegree/d {
		return nil, fmt.Errorf("%w: degree %d raised to %d, limit %d", ErrDegreeTooHigh, d, p, e.maxDegree)
	}
	return Pow(c.value, p)
}

// fold reduces the matured children of a group left to right.
//
//	+ -   number ± number stays a number; anything else is expanded
//	*     same family stays in it; a number takes the other side's family;
//	      factored * unfactored expands the factored side
//	/     numbers only
//
// Once the accumulator has become an unfactored polynomial it stays one.
func (e *Engine) fold(children []*Node) (Value, error) {
	if len(children) == 0 {
		return nil, ErrEmptyGroup
	}

	acc, err := e.raise(children[0])
	if err != nil {
		return nil, err
	}

	for _, c := range children[1:] {
		if _, ok := acc.(*DivResult); ok {
			return nil, ErrReusedDivisionResult
		}
		operand, err := e.raise(c)
		if err != nil {
			return nil, err
		}
		if _, ok := operand.(*DivResult); ok {
			return nil, ErrReusedDivisionResult
		}
		acc, err = combine(acc, c.Op, operand)
		if err != nil {
			return nil, err
		}
	}
	return acc, nil
}

func combine(acc Value, op Operator, operand Value) (Value, error) {
	switch op {
	case OpPlus, OpMinus:
		return addSub(acc, op, operand)
	case OpMult:
		return mul(acc, operand)
	case OpDiv:
		return div(acc, operand)
	}
	return nil, fmt.Errorf("%w: %q between %s and %s", ErrUnexpectedOperator, op, acc.Type(), operand.Type())
}

func addSub(acc Value, op Operator, operand Value) (Value, error) {
	a, aNum := acc.(*Number)
	b, bNum := operand.(*Number)
	if aNum && bNum {
		if op == OpMinus {
			return NumberOf(a.Z - b.Z), nil
		}
		return NumberOf(a.Z + b.Z), nil
	}

	p, err := toPolynomial(acc)
	if err != nil {
		return nil, err
	}
	q, err := toPolynomial(operand)
	if err != nil {
		return nil, err
	}
	if op == OpMinus {
		return PolyOf(p.Sub(q)), nil
	}
	return PolyOf(p.Add(q)), nil
}

func mul(acc, operand Value) (Value, error) {
	switch a := acc.(type) {
	case *Number:
		switch b := operand.(type) {
		case *Number:
			return NumberOf(a.Z * b.Z), nil
		case *FactoredPoly:
			return FactoredOf(b.F.Scale(a.Z)), nil
		case *Poly:
			return PolyOf(b.P.Scale(a.Z)), nil
		}
	case *FactoredPoly:
		switch b := operand.(type) {
		case *Number:
			return FactoredOf(a.F.Scale(b.Z)), nil
		case *FactoredPoly:
			return FactoredOf(a.F.Mul(b.F)), nil
		case *Poly:
			p, err := a.F.Expand()
			if err != nil {
				return nil, err
			}
			return PolyOf(p.Mul(b.P)), nil
		}
	case *Poly:
		switch b := operand.(type) {
		case *Number:
			return PolyOf(a.P.Scale(b.Z)), nil
		case *FactoredPoly:
			p, err := b.F.Expand()
			if err != nil {
				return nil, err
			}
			return PolyOf(a.P.Mul(p)), nil
		case *Poly:
			return PolyOf(a.P.Mul(b.P)), nil
		}
	}
	return nil, ErrReusedDivisionResult
}

func div(acc, operand Value) (Value, error) {
	a, aNum := acc.(*Number)
	b, bNum := operand.(*Number)
	if !aNum || !bNum {
		return nil, fmt.Errorf("%w: %s / %s", ErrInvalidDivisionOperands, acc.Type(), operand.Type())
	}
	if b.Z == 0 {
		return nil, fmt.Errorf("%w: %s / 0", ErrDivisionByZero, a)
	}
	return NumberOf(a.Z / b.Z), nil
}
