package polymature

import (
	"fmt"

	"github.com/njchilds90/polymature/algebra"
	"github.com/njchilds90/polymature/catalog"
)

// checkArguments validates a call against its catalog entry. Variadic
// entries (arity 0) check every argument against their single mask.
func (e *Engine) checkArguments(entry catalog.Entry, args []*Node) error {
	if entry.Arity > 0 && len(args) != entry.Arity {
		return fmt.Errorf("%w: %s takes %d, got %d", ErrArgumentCount, entry.Name, entry.Arity, len(args))
	}
	for i, a := range args {
		mask := e.catalog.ArgType(entry.Code, i)
		actual := classify(a, e.catalog)
		if !mask.Accepts(actual) {
			return &ArgumentError{Func: entry.Name, Position: i, Expected: mask, Actual: actual}
		}
	}
	return nil
}

// dispatch runs a function call over its matured arguments. Each argument
// has its own power applied first.
func (e *Engine) dispatch(n *Node) (Value, error) {
	entry, ok := e.catalog.Entry(n.Function)
	if !ok {
		return nil, fmt.Errorf("%w: code %d", ErrUnknownFunction, n.Function)
	}
	if err := e.checkArguments(entry, n.Children); err != nil {
		return nil, err
	}
	e.logger.Debug().Str("function", entry.Name).Int("args", len(n.Children)).Msg("dispatch")

	switch n.Function {
	case catalog.Expand:
		return e.expand(entry, n.Children)
	case catalog.Evaluate:
		return e.evaluate(entry, n.Children)
	case catalog.Compose:
		return e.compose(entry, n.Children)
	case catalog.Divide:
		return e.divide(entry, n.Children)
	case catalog.Factor, catalog.Interpolate:
		return nil, fmt.Errorf("%w: %s", ErrNotImplemented, entry.Name)
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownFunction, entry.Name)
}

// raisedArgs applies the power of the first count arguments.
func (e *Engine) raisedArgs(entry catalog.Entry, args []*Node, count int) ([]Value, error) {
	if len(args) < count {
		return nil, fmt.Errorf("%w: %s needs %d, got %d", ErrArgumentCount, entry.Name, count, len(args))
	}
	out := make([]Value, count)
	for i := 0; i < count; i++ {
		v, err := e.raise(args[i])
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func (e *Engine) expand(entry catalog.Entry, args []*Node) (Value, error) {
	vals, err := e.raisedArgs(entry, args, 1)
	if err != nil {
		return nil, err
	}
	p, err := toPolynomial(vals[0])
	if err != nil {
		return nil, err
	}
	return PolyOf(p), nil
}

func (e *Engine) evaluate(entry catalog.Entry, args []*Node) (Value, error) {
	vals, err := e.raisedArgs(entry, args, 2)
	if err != nil {
		return nil, err
	}
	point, ok := vals[1].(*Number)
	if !ok {
		return nil, &ArgumentError{Func: entry.Name, Position: 1, Expected: e.catalog.ArgType(entry.Code, 1), Actual: vals[1].Type()}
	}
	if f, ok := vals[0].(*FactoredPoly); ok {
		z, err := f.F.Evaluate(point.Z)
		if err != nil {
			return nil, err
		}
		return NumberOf(z), nil
	}
	p, err := toPolynomial(vals[0])
	if err != nil {
		return nil, err
	}
	return NumberOf(p.Evaluate(point.Z)), nil
}

func (e *Engine) compose(entry catalog.Entry, args []*Node) (Value, error) {
	vals, err := e.raisedArgs(entry, args, 2)
	if err != nil {
		return nil, err
	}
	outer, err := toPolynomial(vals[0])
	if err != nil {
		return nil, err
	}
	inner, err := toPolynomial(vals[1])
	if err != nil {
		return nil, err
	}
	if d, g := outer.Degree(), inner.Degree(); e.maxDegree > 0 && g > 0 && d > e.maxDegree/g {
		return nil, fmt.Errorf("%w: degree %d composed with degree %d, limit %d", ErrDegreeTooHigh, d, g, e.maxDegree)
	}
	return PolyOf(outer.Compose(inner)), nil
}

// divide performs an Euclidean division. Two numbers give floored complex
// parts; otherwise both sides are lifted to polynomials.
func (e *Engine) divide(entry catalog.Entry, args []*Node) (Value, error) {
	vals, err := e.raisedArgs(entry, args, 2)
	if err != nil {
		return nil, err
	}
	res := &DivResult{}

	a, aNum := vals[0].(*Number)
	b, bNum := vals[1].(*Number)
	if aNum && bNum {
		q, r, err := algebra.FloorDiv(a.Z, b.Z)
		if err != nil {
			return nil, err
		}
		res.accumulate(algebra.Constant(q), algebra.Constant(r))
		return res, nil
	}

	dividend, err := toPolynomial(vals[0])
	if err != nil {
		return nil, err
	}
	divisor, err := toPolynomial(vals[1])
	if err != nil {
		return nil, err
	}
	q, r, err := dividend.DivMod(divisor)
	if err != nil {
		return nil, err
	}
	res.accumulate(q, r)
	return res, nil
}
