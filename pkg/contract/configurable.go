package contract

import (
	"fmt"
	"reflect"
	"strings"
)

// Membership returns a String -> membership chain accepting only the given
// literal values. label names the category in violation messages.
// The allowed values are copied; every call yields an independent contract.
func Membership(label string, allowed ...string) (*Chain, error) {
	if len(allowed) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyMembership, label)
	}

	set := &setValidator{
		label:   label,
		allowed: make([]string, len(allowed)),
		index:   make(map[string]struct{}, len(allowed)),
	}
	copy(set.allowed, allowed)
	for _, v := range allowed {
		set.index[v] = struct{}{}
	}

	return NewChain(label, String, set), nil
}

// MustMembership is like Membership but panics on a definition error.
func MustMembership(label string, allowed ...string) *Chain {
	c, err := Membership(label, allowed...)
	if err != nil {
		panic(err)
	}
	return c
}

type setValidator struct {
	label   string
	allowed []string
	index   map[string]struct{}
}

func (v *setValidator) Check(method, name string, value any) error {
	if value != nil {
		if rv := reflect.ValueOf(value); rv.Kind() == reflect.String {
			if _, ok := v.index[rv.String()]; ok {
				return nil
			}
		}
	}

	allowed := make([]string, len(v.allowed))
	copy(allowed, v.allowed)
	return newViolation(method, name, value, "membership",
		fmt.Sprintf("'%v' is not part of legal %s", value, v.label),
		map[string]any{
			"label":          v.label,
			"allowed_values": allowed,
		},
	)
}

func (v *setValidator) String() string {
	return "membership:{" + strings.Join(v.allowed, ",") + "}"
}

// Range returns a Type -> bounds chain accepting numbers in [lo, hi].
// The type check follows N: float types require a float value, every other
// numeric type requires an integer value.
func Range[N Numeric](label string, lo, hi N) (*Chain, error) {
	l, _ := numberOf(lo)
	h, _ := numberOf(hi)
	if c, ok := l.compare(h); !ok || c > 0 {
		return nil, fmt.Errorf("%w: %s [%v, %v]", ErrInvalidRange, label, lo, hi)
	}

	kind := Validator(Integer)
	if isFloatKind(reflect.TypeFor[N]().Kind()) {
		kind = Float
	}

	return NewChain(label, kind, &boundsValidator{label: label, lo: l, hi: h}), nil
}

// MustRange is like Range but panics on a definition error.
func MustRange[N Numeric](label string, lo, hi N) *Chain {
	c, err := Range(label, lo, hi)
	if err != nil {
		panic(err)
	}
	return c
}

type boundsValidator struct {
	label  string
	lo, hi number
}

func (v *boundsValidator) Check(method, name string, value any) error {
	n, ok := numberOf(value)
	if !ok {
		return notOrderable(method, name, value)
	}

	lower, okLo := n.compare(v.lo)
	upper, okHi := n.compare(v.hi)
	if okLo && okHi && lower >= 0 && upper <= 0 {
		return nil
	}

	return newViolation(method, name, value, "range",
		fmt.Sprintf("'%v' is not in legal %s range of %s", value, v.label, v.bounds()),
		map[string]any{
			"label": v.label,
			"min":   v.lo.String(),
			"max":   v.hi.String(),
		},
	)
}

func (v *boundsValidator) bounds() string {
	return "[" + v.lo.String() + ", " + v.hi.String() + "]"
}

func (v *boundsValidator) String() string {
	return "range:" + v.bounds()
}
