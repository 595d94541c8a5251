// Package catalog describes the built-in functions: their names, how many
// arguments they take, which value types each argument accepts, and what
// they return. The engine consults it to validate calls before dispatch.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/goccy/go-yaml"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/njchilds90/polymature/lattice"
)

// Code identifies a built-in function.
type Code uint

const (
	Expand Code = iota + 1
	Factor
	Evaluate
	Interpolate
	Compose
	Divide
)

var ErrInvalidCatalog = errors.New("invalid catalog")

// Entry describes one function. Arity 0 means variadic, in which case
// Args holds the single mask applied to every argument.
type Entry struct {
	Code    Code
	Name    string
	Arity   int
	Args    []lattice.Type
	Returns lattice.Type
}

type Catalog struct {
	entries map[Code]Entry
	byName  map[string]Code
}

//go:embed functions.yaml
var defaultDefinition []byte

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the catalog built from the embedded definition.
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := Parse(defaultDefinition)
		if err != nil {
			panic("catalog: embedded definition: " + err.Error())
		}
		defaultCatalog = c
	})
	return defaultCatalog
}

type fileFormat struct {
	Functions []struct {
		Code    uint           `yaml:"code"`
		Name    string         `yaml:"name"`
		Arity   int            `yaml:"arity"`
		Args    []lattice.Type `yaml:"args"`
		Returns lattice.Type   `yaml:"returns"`
	} `yaml:"functions"`
}

// Load reads a YAML catalog definition from path.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse builds a catalog from a YAML definition.
func Parse(data []byte) (*Catalog, error) {
	var f fileFormat
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCatalog, err)
	}

	c := &Catalog{entries: map[Code]Entry{}, byName: map[string]Code{}}
	for i, fn := range f.Functions {
		if fn.Code == 0 || fn.Name == "" {
			return nil, fmt.Errorf("%w: function #%d needs a code and a name", ErrInvalidCatalog, i)
		}
		code := Code(fn.Code)
		if _, dup := c.entries[code]; dup {
			return nil, fmt.Errorf("%w: duplicate code %d", ErrInvalidCatalog, code)
		}
		if _, dup := c.byName[fn.Name]; dup {
			return nil, fmt.Errorf("%w: duplicate name %q", ErrInvalidCatalog, fn.Name)
		}
		switch {
		case fn.Arity < 0:
			return nil, fmt.Errorf("%w: %s: negative arity", ErrInvalidCatalog, fn.Name)
		case fn.Arity == 0 && len(fn.Args) != 1:
			return nil, fmt.Errorf("%w: %s: variadic functions take exactly one argument mask", ErrInvalidCatalog, fn.Name)
		case fn.Arity > 0 && len(fn.Args) != fn.Arity:
			return nil, fmt.Errorf("%w: %s: %d argument masks for arity %d", ErrInvalidCatalog, fn.Name, len(fn.Args), fn.Arity)
		}
		if fn.Returns == lattice.None {
			return nil, fmt.Errorf("%w: %s: missing return type", ErrInvalidCatalog, fn.Name)
		}
		for pos, mask := range fn.Args {
			if mask == lattice.None {
				return nil, fmt.Errorf("%w: %s: argument %d accepts nothing", ErrInvalidCatalog, fn.Name, pos+1)
			}
		}
		c.entries[code] = Entry{Code: code, Name: fn.Name, Arity: fn.Arity, Args: fn.Args, Returns: fn.Returns}
		c.byName[fn.Name] = code
	}
	return c, nil
}

func (c *Catalog) Entry(code Code) (Entry, bool) {
	e, ok := c.entries[code]
	return e, ok
}

// ArgCount returns the declared arity; 0 means variadic.
func (c *Catalog) ArgCount(code Code) int { return c.entries[code].Arity }

// ArgType returns the mask accepted at position pos.
func (c *Catalog) ArgType(code Code, pos int) lattice.Type {
	e, ok := c.entries[code]
	if !ok || pos < 0 {
		return lattice.None
	}
	if e.Arity == 0 {
		return e.Args[0]
	}
	if pos >= len(e.Args) {
		return lattice.None
	}
	return e.Args[pos]
}

func (c *Catalog) ReturnType(code Code) lattice.Type { return c.entries[code].Returns }

func (c *Catalog) Name(code Code) string {
	if e, ok := c.entries[code]; ok {
		return e.Name
	}
	return fmt.Sprintf("function#%d", code)
}

func (c *Catalog) Lookup(name string) (Code, bool) {
	code, ok := c.byName[name]
	return code, ok
}

// Names lists the function names in sorted order.
func (c *Catalog) Names() []string {
	names := maps.Keys(c.byName)
	slices.Sort(names)
	return names
}
