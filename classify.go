package polymature

import (
	"github.com/njchilds90/polymature/algebra"
	"github.com/njchilds90/polymature/catalog"
	"github.com/njchilds90/polymature/lattice"
)

// Classify returns the lattice type of n. A matured node reports the type
// of its value. Otherwise the type is read off the structure: constant
// leaves are numbers, other leaves are unfactored polynomials, a group in
// linear form (see linearForm) is factored, and any other group is
// unfactored.
func Classify(n *Node) lattice.Type {
	return classify(n, catalog.Default())
}

func classify(n *Node, cat *catalog.Catalog) lattice.Type {
	if n.value != nil {
		return n.value.Type()
	}
	switch {
	case n.IsFunction:
		return cat.ReturnType(n.Function)
	case !n.IsContainer:
		if n.Monomial.Exp == 0 {
			return lattice.ForComplex(n.Monomial.Coeff)
		}
		return lattice.Unfactored
	}
	if _, ok := linearForm(n); ok {
		return lattice.Factored
	}
	return lattice.Unfactored
}

// linearForm recognizes (x), (x + c), (x - c) and (c + x): one or two
// unpowered leaves, exactly one of them x with coefficient 1 and not
// subtracted, the other a constant. The group itself must be multiplied into
// its parent or stand alone; x + 3 is not a factored form but (x + 3)^2 and
// 2(x + 3) are.
func linearForm(n *Node) (algebra.Factored, bool) {
	if !n.IsContainer || n.IsFunction || (n.Op != OpNone && n.Op != OpMult) {
		return algebra.Factored{}, false
	}
	if len(n.Children) == 0 || len(n.Children) > 2 {
		return algebra.Factored{}, false
	}

	var root complex128
	seenX := false
	for i, c := range n.Children {
		if c.IsContainer || c.effectivePower() != 1 || !c.Monomial.factorable() {
			return algebra.Factored{}, false
		}
		if i > 0 && c.Op != OpPlus && c.Op != OpMinus {
			return algebra.Factored{}, false
		}
		subtracted := i > 0 && c.Op == OpMinus
		if c.Monomial.Exp == 1 {
			if seenX || subtracted {
				return algebra.Factored{}, false
			}
			seenX = true
			continue
		}
		if subtracted {
			root = c.Monomial.Coeff
		} else {
			root = -c.Monomial.Coeff
		}
	}
	if !seenX {
		return algebra.Factored{}, false
	}
	return algebra.Linear(root), true
}
