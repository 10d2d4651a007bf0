package contract

import "strings"

// Validator checks a single property of the value passed as parameter name
// of method. It returns nil when the value passes and a *Violation otherwise.
type Validator interface {
	Check(method, name string, value any) error
}

// ValidatorFunc adapts an ordinary function to the Validator interface.
type ValidatorFunc func(method, name string, value any) error

func (f ValidatorFunc) Check(method, name string, value any) error {
	return f(method, name, value)
}

type root struct{}

func (root) Check(string, string, any) error { return nil }

func (root) String() string { return "root" }

// Root always passes. Every chain terminates with it.
var Root Validator = root{}

// Chain is an ordered, immutable AND-composition of validators.
// Members run in the order given to NewChain and evaluation stops at the
// first failure.
type Chain struct {
	label   string
	members []Validator
}

// NewChain assembles members into a chain. Nil members are skipped and the
// slice is copied, so later changes to the caller's slice have no effect.
func NewChain(label string, members ...Validator) *Chain {
	ms := make([]Validator, 0, len(members))
	for _, m := range members {
		if m != nil {
			ms = append(ms, m)
		}
	}
	return &Chain{label: label, members: ms}
}

// Check runs every member in order and returns the first violation.
func (c *Chain) Check(method, name string, value any) error {
	for _, m := range c.members {
		if err := m.Check(method, name, value); err != nil {
			return err
		}
	}
	return Root.Check(method, name, value)
}

func (c *Chain) Label() string {
	return c.label
}

// Members returns a copy of the chain members in evaluation order.
func (c *Chain) Members() []Validator {
	out := make([]Validator, len(c.members))
	copy(out, c.members)
	return out
}

func (c *Chain) Len() int {
	return len(c.members)
}

func (c *Chain) String() string {
	parts := make([]string, 0, len(c.members))
	for _, m := range c.members {
		parts = append(parts, describe(m))
	}
	return c.label + "(" + strings.Join(parts, " -> ") + ")"
}

func describe(v Validator) string {
	if s, ok := v.(interface{ String() string }); ok {
		return s.String()
	}
	return "validator"
}
