// Package lattice defines the type tags a matured value can carry.
//
// Tags are bits so that a function catalog can describe the set of types it
// accepts at an argument position as a single mask.
package lattice

import (
	"fmt"
	"strings"
)

type Type uint8

const (
	Imaginary Type = 1 << iota
	Real
	Complex
	Unfactored
	Factored
	Division

	None Type = 0

	Number     = Imaginary | Real | Complex
	Polynomial = Unfactored | Factored
	Any        = Number | Polynomial
)

var names = []struct {
	t    Type
	name string
}{
	{Imaginary, "imaginary"},
	{Real, "real"},
	{Complex, "complex"},
	{Unfactored, "unfactored"},
	{Factored, "factored"},
	{Division, "division"},
}

// aliases accepted by Parse for whole families.
var aliases = map[string]Type{
	"number":     Number,
	"polynomial": Polynomial,
	"any":        Any,
	"none":       None,
}

// ForComplex returns the number sub-tag of z. Zero is Real.
func ForComplex(z complex128) Type {
	switch {
	case imag(z) == 0:
		return Real
	case real(z) == 0:
		return Imaginary
	default:
		return Complex
	}
}

func (t Type) IsNumber() bool { return t != None && t&^Number == 0 }

// Accepts reports whether any bit of other is in the mask t.
func (t Type) Accepts(other Type) bool { return t&other != 0 }

// Family collapses number sub-tags into Number.
func (t Type) Family() Type {
	if t.IsNumber() {
		return Number
	}
	return t
}

func (t Type) String() string {
	if t == None {
		return "none"
	}
	switch t {
	case Number:
		return "number"
	case Polynomial:
		return "polynomial"
	case Any:
		return "any"
	}
	var parts []string
	for _, n := range names {
		if t&n.t != 0 {
			parts = append(parts, n.name)
		}
	}
	return strings.Join(parts, "|")
}

// Parse reads a mask written as names joined by '|', e.g. "real|factored".
func Parse(s string) (Type, error) {
	var t Type
	for _, part := range strings.Split(s, "|") {
		part = strings.ToLower(strings.TrimSpace(part))
		if a, ok := aliases[part]; ok {
			t |= a
			continue
		}
		found := false
		for _, n := range names {
			if n.name == part {
				t |= n.t
				found = true
				break
			}
		}
		if !found {
			return None, fmt.Errorf("lattice: unknown type %q", part)
		}
	}
	return t, nil
}

// MarshalText and UnmarshalText let masks appear as plain strings in the
// YAML catalog and in JSON responses.
func (t Type) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

func (t *Type) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
