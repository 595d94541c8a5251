package polymature

import (
	"fmt"
	"strings"

	"github.com/njchilds90/polymature/algebra"
	"github.com/njchilds90/polymature/catalog"
	"github.com/njchilds90/polymature/lattice"
)

// ============================================================
// Operator
// ============================================================

// Operator joins a node to its left sibling. The first child's operator is
// ignored.
type Operator uint8

const (
	OpNone Operator = iota
	OpPlus
	OpMinus
	OpMult
	OpDiv
)

func (o Operator) String() string {
	switch o {
	case OpNone:
		return ""
	case OpPlus:
		return "+"
	case OpMinus:
		return "-"
	case OpMult:
		return "*"
	case OpDiv:
		return "/"
	}
	return fmt.Sprintf("op(%d)", uint8(o))
}

func ParseOperator(s string) (Operator, error) {
	switch s {
	case "":
		return OpNone, nil
	case "+":
		return OpPlus, nil
	case "-":
		return OpMinus, nil
	case "*":
		return OpMult, nil
	case "/":
		return OpDiv, nil
	}
	return OpNone, fmt.Errorf("%w: %q", ErrUnexpectedOperator, s)
}

// ============================================================
// Monomial
// ============================================================

// Monomial is Coeff * x^Exp. Explicit records that the input wrote an
// exponent suffix; it forces the suffix when printing x^1 or x^0 and never
// changes the arithmetic.
type Monomial struct {
	Coeff    complex128
	Exp      int
	Explicit bool
}

// factorable reports whether m can be one term of a linear factor: a
// constant, or x with coefficient exactly 1.
func (m Monomial) factorable() bool {
	return m.Exp == 0 || (m.Exp == 1 && m.Coeff == 1)
}

func (m Monomial) String() string {
	switch {
	case m.Coeff == 0:
		return "0"
	case m.Exp == 0 && !m.Explicit:
		return algebra.FormatComplex(m.Coeff)
	}
	var coeff string
	switch m.Coeff {
	case 1:
	case -1:
		coeff = "-"
	default:
		coeff = algebra.FormatComplex(m.Coeff)
	}
	if m.Exp == 1 && !m.Explicit {
		return coeff + "x"
	}
	return fmt.Sprintf("%sx^%d", coeff, m.Exp)
}

// ============================================================
// Node
// ============================================================

// Node is one element of an expression tree: a leaf holding a Monomial, a
// group whose children are folded left to right, or a function call whose
// children are its arguments. Power applies to the whole node once it is
// matured; 0 means unset and behaves as 1.
//
// The shape is fixed before maturation. Maturation stores exactly one
// typed value on every node of the tree.
type Node struct {
	Monomial    Monomial
	Children    []*Node
	IsContainer bool
	IsFunction  bool
	Function    catalog.Code
	Power       int
	Op          Operator

	value Value
}

// Term returns the leaf coeff*x^exp.
func Term(coeff complex128, exp int) *Node {
	return &Node{Monomial: Monomial{Coeff: coeff, Exp: exp, Explicit: exp > 1}, Power: 1}
}

func Const(re, im float64) *Node { return Term(complex(re, im), 0) }
func X() *Node                   { return Term(1, 1) }

func Group(children ...*Node) *Node {
	return &Node{Children: children, IsContainer: true, Power: 1}
}

func Call(fn catalog.Code, args ...*Node) *Node {
	return &Node{Children: args, IsContainer: true, IsFunction: true, Function: fn, Power: 1}
}

func Plus(n *Node) *Node  { n.Op = OpPlus; return n }
func Minus(n *Node) *Node { n.Op = OpMinus; return n }
func Times(n *Node) *Node { n.Op = OpMult; return n }
func Over(n *Node) *Node  { n.Op = OpDiv; return n }

// Raised sets the node power and returns the node.
func (n *Node) Raised(p int) *Node {
	n.Power = p
	return n
}

// RaiseLast adds p to the power of the last child of a plain group, or to
// the node's own power otherwise. A child whose power drops to zero becomes
// the constant 1.
func (n *Node) RaiseLast(p int) {
	if n.IsContainer && !n.IsFunction && len(n.Children) > 0 {
		last := n.Children[len(n.Children)-1]
		if last.Power+p == 0 {
			last.resetToOne()
		} else {
			last.Power += p
		}
		return
	}
	n.Power += p
}

func (n *Node) resetToOne() {
	n.value = nil
	n.Power = 1
	n.Children = nil
	n.IsContainer, n.IsFunction = false, false
	n.Monomial = Monomial{Coeff: 1}
}

func (n *Node) IsMature() bool { return n.value != nil }

// Value returns the matured value, or nil before maturation.
func (n *Node) Value() Value { return n.value }

// Type returns the lattice type of the matured value, or None.
func (n *Node) Type() lattice.Type {
	if n.value == nil {
		return lattice.None
	}
	return n.value.Type()
}

func (n *Node) kind() string {
	switch {
	case n.IsFunction:
		return "call"
	case n.IsContainer:
		return "group"
	}
	return "leaf"
}

// effectivePower maps the unset power 0 to 1.
func (n *Node) effectivePower() int {
	if n.Power == 0 {
		return 1
	}
	return n.Power
}

// String prints the structure of the tree, not its matured value.
func (n *Node) String() string {
	var sb strings.Builder
	n.write(&sb, catalog.Default())
	return sb.String()
}

func (n *Node) write(sb *strings.Builder, cat *catalog.Catalog) {
	powered := n.effectivePower() != 1
	switch {
	case n.IsFunction:
		sb.WriteString(cat.Name(n.Function))
		sb.WriteByte('[')
		for i, c := range n.Children {
			if i > 0 {
				sb.WriteString(", ")
			}
			c.write(sb, cat)
		}
		sb.WriteByte(']')
	case n.IsContainer:
		sb.WriteByte('(')
		for i, c := range n.Children {
			if i > 0 {
				fmt.Fprintf(sb, " %s ", c.Op)
			}
			c.write(sb, cat)
		}
		sb.WriteByte(')')
	default:
		if powered {
			sb.WriteByte('(')
		}
		sb.WriteString(n.Monomial.String())
		if powered {
			sb.WriteByte(')')
		}
	}
	if powered {
		fmt.Fprintf(sb, "^%d", n.Power)
	}
}
