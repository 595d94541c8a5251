package polymature

import (
	"fmt"

	"github.com/goccy/go-json"

	"github.com/njchilds90/polymature/algebra"
	"github.com/njchilds90/polymature/catalog"
)

// ============================================================
// JSON tree codec
// ============================================================

// nodeJSON is the wire form of a Node:
//
//	{"kind":"leaf","re":2,"im":0,"exp":1,"explicit":true,"op":"+","power":3}
//	{"kind":"group","children":[...]}
//	{"kind":"call","func":"expand","args":[...]}
type nodeJSON struct {
	Kind     string     `json:"kind"`
	Re       float64    `json:"re,omitempty"`
	Im       float64    `json:"im,omitempty"`
	Exp      int        `json:"exp,omitempty"`
	Explicit bool       `json:"explicit,omitempty"`
	Op       string     `json:"op,omitempty"`
	Power    int        `json:"power,omitempty"`
	Func     string     `json:"func,omitempty"`
	Children []nodeJSON `json:"children,omitempty"`
	Args     []nodeJSON `json:"args,omitempty"`
}

// DecodeTree reads a tree in the JSON form above. Function names are
// resolved with cat, or the default catalog when cat is nil.
func DecodeTree(data []byte, cat *catalog.Catalog) (*Node, error) {
	if cat == nil {
		cat = catalog.Default()
	}
	var raw nodeJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("tree: %w", err)
	}
	return raw.toNode(cat, "$")
}

func (j nodeJSON) toNode(cat *catalog.Catalog, path string) (*Node, error) {
	op, err := ParseOperator(j.Op)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	var n *Node
	switch j.Kind {
	case "leaf":
		if j.Exp < 0 {
			return nil, fmt.Errorf("%s: %w: x^%d", path, ErrNegativeExponent, j.Exp)
		}
		n = Term(complex(j.Re, j.Im), j.Exp)
		n.Monomial.Explicit = n.Monomial.Explicit || j.Explicit
	case "group":
		if len(j.Children) == 0 {
			return nil, fmt.Errorf("%s: %w", path, ErrEmptyGroup)
		}
		children, err := toNodes(j.Children, cat, path+".children")
		if err != nil {
			return nil, err
		}
		n = Group(children...)
	case "call":
		code, ok := cat.Lookup(j.Func)
		if !ok {
			return nil, fmt.Errorf("%s: %w: %q", path, ErrUnknownFunction, j.Func)
		}
		args, err := toNodes(j.Args, cat, path+".args")
		if err != nil {
			return nil, err
		}
		n = Call(code, args...)
	default:
		return nil, fmt.Errorf("%s: unknown node kind %q", path, j.Kind)
	}

	n.Op = op
	n.Power = j.Power
	return n, nil
}

func toNodes(raw []nodeJSON, cat *catalog.Catalog, path string) ([]*Node, error) {
	out := make([]*Node, len(raw))
	for i, r := range raw {
		n, err := r.toNode(cat, fmt.Sprintf("%s[%d]", path, i))
		if err != nil {
			return nil, err
		}
		out[i] = n
	}
	return out, nil
}

// ============================================================
// Value serialization
// ============================================================

// ValueToJSON returns a JSON-ready description of v. Complex numbers are
// written as [re, im] pairs, polynomial coefficients lowest degree first.
func ValueToJSON(v Value) map[string]interface{} {
	out := map[string]interface{}{"type": v.Type().String(), "string": v.String()}
	switch t := v.(type) {
	case *Number:
		out["value"] = pair(t.Z)
	case *Poly:
		out["coeffs"] = coeffsJSON(t.P)
	case *FactoredPoly:
		factors := make([]map[string]interface{}, len(t.F.Factors))
		for i, f := range t.F.Factors {
			factors[i] = map[string]interface{}{"root": pair(f.Root), "multiplicity": f.Multiplicity}
		}
		out["coeff"] = pair(t.F.Coeff)
		out["factors"] = factors
	case *DivResult:
		out["quotient"] = coeffsJSON(t.Quotient)
		out["remainder"] = coeffsJSON(t.Remainder)
	}
	return out
}

// MarshalValue encodes v with ValueToJSON.
func MarshalValue(v Value) ([]byte, error) {
	return json.Marshal(ValueToJSON(v))
}

func pair(z complex128) [2]float64 { return [2]float64{real(z) + 0, imag(z) + 0} }

func coeffsJSON(p algebra.Polynomial) [][2]float64 {
	coeffs := p.Coeffs()
	out := make([][2]float64, len(coeffs))
	for i, c := range coeffs {
		out[i] = pair(c)
	}
	return out
}
