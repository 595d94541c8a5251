// Package polymature evaluates expression trees over complex numbers and
// univariate polynomials into a single canonical value.
//
// A tree is built from leaves (monomials c*x^n), groups whose children are
// joined by + - * /, and calls to built-in functions (expand, evaluate,
// compose, divide, ...). Maturation walks the tree bottom-up and stores one
// typed value on every node:
//
//   - Number: a complex constant
//   - Poly: an expanded polynomial
//   - FactoredPoly: a product of linear factors, kept as long as the
//     arithmetic allows
//   - DivResult: the quotient and remainder produced by divide[], which
//     cannot be used any further
//
// Mixed operands are promoted as needed: numbers lift to constant
// polynomials, and factored forms are expanded when they meet an addition or
// an unfactored polynomial.
package polymature

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/njchilds90/polymature/algebra"
	"github.com/njchilds90/polymature/catalog"
	"github.com/njchilds90/polymature/lattice"
)

// DefaultMaxDegree bounds the degree of every polynomial an engine builds
// unless WithMaxDegree says otherwise.
const DefaultMaxDegree = 1 << 12

// Engine matures trees against a function catalog.
type Engine struct {
	catalog   *catalog.Catalog
	logger    zerolog.Logger
	maxDepth  int
	maxDegree int
}

type Option func(*Engine)

func WithCatalog(c *catalog.Catalog) Option {
	return func(e *Engine) { e.catalog = c }
}

func WithLogger(l zerolog.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// WithMaxDepth bounds the nesting depth of accepted trees. 0 means no limit.
func WithMaxDepth(depth int) Option {
	return func(e *Engine) { e.maxDepth = depth }
}

// WithMaxDegree bounds the degree of leaves, powers, products and
// compositions. 0 means no limit.
func WithMaxDegree(degree int) Option {
	return func(e *Engine) { e.maxDegree = degree }
}

func NewEngine(opts ...Option) *Engine {
	e := &Engine{catalog: catalog.Default(), logger: zerolog.Nop(), maxDegree: DefaultMaxDegree}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Engine) Catalog() *catalog.Catalog { return e.catalog }

// Mature matures n and its whole subtree in place and returns n's value.
// The node's own power is left to its parent; use Evaluate for a root.
// A node that is already mature returns its stored value.
func (e *Engine) Mature(n *Node) (Value, error) {
	return e.mature(n, 0)
}

// Evaluate matures n and applies n's own power.
func (e *Engine) Evaluate(n *Node) (Value, error) {
	if _, err := e.Mature(n); err != nil {
		return nil, err
	}
	v, err := e.raise(n)
	if err != nil {
		return nil, err
	}
	if err := e.checkValue(v); err != nil {
		return nil, err
	}
	return v, nil
}

// Classify is like the package-level Classify but resolves function return
// types with the engine's catalog.
func (e *Engine) Classify(n *Node) lattice.Type { return classify(n, e.catalog) }

func (e *Engine) mature(n *Node, depth int) (Value, error) {
	if n == nil {
		return nil, fmt.Errorf("%w: nil node", ErrEmptyGroup)
	}
	if n.value != nil {
		return n.value, nil
	}
	if e.maxDepth > 0 && depth > e.maxDepth {
		return nil, fmt.Errorf("%w: more than %d levels", ErrTooDeep, e.maxDepth)
	}

	if n.IsContainer {
		for _, c := range n.Children {
			if _, err := e.mature(c, depth+1); err != nil {
				return nil, err
			}
		}
	}

	var (
		v   Value
		err error
	)
	switch {
	case n.IsFunction:
		v, err = e.dispatch(n)
	case !n.IsContainer:
		v, err = e.leafValue(n.Monomial)
	default:
		if f, ok := linearForm(n); ok {
			v = FactoredOf(f)
		} else {
			v, err = e.fold(n.Children)
		}
	}
	if err == nil {
		err = e.checkValue(v)
	}
	if err != nil {
		return nil, err
	}

	n.value = v
	e.logger.Debug().
		Str("node", n.kind()).
		Stringer("type", v.Type()).
		Int("depth", depth).
		Msg("matured")
	return v, nil
}

func (e *Engine) leafValue(m Monomial) (Value, error) {
	switch {
	case m.Exp < 0:
		return nil, fmt.Errorf("%w: x^%d", ErrNegativeExponent, m.Exp)
	case e.maxDegree > 0 && m.Exp > e.maxDegree:
		return nil, fmt.Errorf("%w: x^%d, limit %d", ErrDegreeTooHigh, m.Exp, e.maxDegree)
	case m.Exp == 0:
		return NumberOf(m.Coeff), nil
	}
	return PolyOf(algebra.MonomialPoly(m.Coeff, m.Exp)), nil
}

// checkValue rejects a value past the degree limit or with an infinite or
// NaN component.
func (e *Engine) checkValue(v Value) error {
	if d := degreeOf(v); e.maxDegree > 0 && d > e.maxDegree {
		return fmt.Errorf("%w: degree %d, limit %d", ErrDegreeTooHigh, d, e.maxDegree)
	}
	if !finite(v) {
		return fmt.Errorf("%w: %s", ErrOverflow, v)
	}
	return nil
}

// ============================================================
// Top-level convenience functions
// ============================================================

var std = NewEngine()

// Mature matures n with the default catalog and no logging.
func Mature(n *Node) (Value, error) { return std.Mature(n) }

// Evaluate matures n and applies its own power.
func Evaluate(n *Node) (Value, error) { return std.Evaluate(n) }
