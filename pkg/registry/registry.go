package registry

import (
	"errors"
	"fmt"
	"math"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/contracts/pkg/contract"
)

// Registry holds named contracts. It is immutable after Build and safe for
// concurrent lookups.
type Registry struct {
	contracts map[string]contract.Validator
}

// Builtins returns the contracts every registry starts with.
func Builtins() map[string]contract.Validator {
	return map[string]contract.Validator{
		"integer":          contract.Integer,
		"float":            contract.Float,
		"string":           contract.String,
		"positive":         contract.Positive,
		"negative":         contract.Negative,
		"non_empty":        contract.NonEmpty,
		"positive_integer": contract.PositiveInteger,
		"negative_integer": contract.NegativeInteger,
		"positive_float":   contract.PositiveFloat,
		"non_empty_string": contract.NonEmptyString,
		"uuid":             contract.UUID,
	}
}

// LoadFile reads and builds the definitions stored at path.
func LoadFile(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadFile, err)
	}
	return Parse(data)
}

// Parse builds a registry from a YAML document.
func Parse(data []byte) (*Registry, error) {
	var defs Definitions
	if err := yaml.Unmarshal(data, &defs); err != nil {
		return nil, errors.Join(ErrFailedToParseYAML, err)
	}
	return Build(defs)
}

// Build creates a registry from defs. Memberships are registered first, then
// ranges, then chains in document order; a chain may only reference built-ins
// and contracts registered before it.
func Build(defs Definitions) (*Registry, error) {
	r := &Registry{contracts: Builtins()}

	for _, d := range defs.Memberships {
		c, err := contract.Membership(labelOr(d.Label, d.Name), d.Values...)
		if err != nil {
			return nil, fmt.Errorf("%w: membership %q: %w", ErrInvalidDefinition, d.Name, err)
		}
		if err := r.add(d.Name, c); err != nil {
			return nil, err
		}
	}

	for _, d := range defs.Ranges {
		c, err := buildRange(d)
		if err != nil {
			return nil, err
		}
		if err := r.add(d.Name, c); err != nil {
			return nil, err
		}
	}

	for _, d := range defs.Chains {
		if len(d.Members) == 0 {
			return nil, fmt.Errorf("%w: chain %q has no members", ErrInvalidDefinition, d.Name)
		}
		members := make([]contract.Validator, 0, len(d.Members))
		for _, m := range d.Members {
			v, ok := r.contracts[m]
			if !ok {
				return nil, fmt.Errorf("%w: %q referenced by chain %q", ErrUnknownContract, m, d.Name)
			}
			members = append(members, v)
		}
		if err := r.add(d.Name, contract.NewChain(labelOr(d.Label, d.Name), members...)); err != nil {
			return nil, err
		}
	}

	return r, nil
}

func buildRange(d RangeDef) (*contract.Chain, error) {
	label := labelOr(d.Label, d.Name)

	switch d.Kind {
	case KindFloat:
		c, err := contract.Range(label, d.Min, d.Max)
		if err != nil {
			return nil, fmt.Errorf("%w: range %q: %w", ErrInvalidDefinition, d.Name, err)
		}
		return c, nil
	case KindInteger, "":
		if !isWhole(d.Min) || !isWhole(d.Max) {
			return nil, fmt.Errorf("%w: range %q: integer bounds must be whole numbers", ErrInvalidDefinition, d.Name)
		}
		c, err := contract.Range(label, int64(d.Min), int64(d.Max))
		if err != nil {
			return nil, fmt.Errorf("%w: range %q: %w", ErrInvalidDefinition, d.Name, err)
		}
		return c, nil
	}
	return nil, fmt.Errorf("%w: range %q: unknown kind %q", ErrInvalidDefinition, d.Name, d.Kind)
}

func isWhole(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0) && f == math.Trunc(f) &&
		f >= -(1<<63) && f < 1<<63
}

func (r *Registry) add(name string, v contract.Validator) error {
	if name == "" {
		return fmt.Errorf("%w: contract without a name", ErrInvalidDefinition)
	}
	if _, dup := r.contracts[name]; dup {
		return fmt.Errorf("%w: %q", ErrDuplicateContract, name)
	}
	r.contracts[name] = v
	return nil
}

// Lookup returns the contract registered under name.
func (r *Registry) Lookup(name string) (contract.Validator, bool) {
	v, ok := r.contracts[name]
	return v, ok
}

// MustLookup is like Lookup but panics for unknown names.
func (r *Registry) MustLookup(name string) contract.Validator {
	v, ok := r.Lookup(name)
	if !ok {
		panic(fmt.Errorf("%w: %q", ErrUnknownContract, name))
	}
	return v
}

// Names returns all registered names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.contracts))
	for name := range r.contracts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
