package checked

import (
	"fmt"
	"reflect"

	"github.com/dmitrymomot/contracts/pkg/contract"
)

// ParamSpec declares one function parameter: its name, its contract and how
// it may be supplied. ParamSpec values are immutable; the modifier methods
// return copies.
type ParamSpec struct {
	name        string
	validator   contract.Validator
	def         any
	hasDefault  bool
	keywordOnly bool
}

// Param declares a parameter checked by v. A nil v leaves it unchecked.
func Param(name string, v contract.Validator) ParamSpec {
	return ParamSpec{name: name, validator: v}
}

// Default makes the parameter optional. value fills it when the caller omits it.
func (p ParamSpec) Default(value any) ParamSpec {
	p.def = value
	p.hasDefault = true
	return p
}

// KeywordOnly forbids binding the parameter by position.
func (p ParamSpec) KeywordOnly() ParamSpec {
	p.keywordOnly = true
	return p
}

func (p ParamSpec) Name() string { return p.name }

type param struct {
	ParamSpec
	typ      reflect.Type
	defValue reflect.Value
}

// Binding maps each declared parameter name to its contract. It is built once
// by Wrap and never modified.
type Binding struct {
	params     []param
	index      map[string]int
	positional int
}

func newBinding(method string, fnType reflect.Type, specs []ParamSpec) (*Binding, error) {
	if len(specs) != fnType.NumIn() {
		return nil, fmt.Errorf("%w: %s takes %d parameters, %d declared",
			ErrSignatureMismatch, method, fnType.NumIn(), len(specs))
	}

	b := &Binding{
		params: make([]param, len(specs)),
		index:  make(map[string]int, len(specs)),
	}

	var sawOptional, sawKeywordOnly bool
	for i, spec := range specs {
		if spec.name == "" {
			return nil, fmt.Errorf("%w: parameter %d of %s has no name", ErrInvalidParam, i, method)
		}
		if _, dup := b.index[spec.name]; dup {
			return nil, fmt.Errorf("%w: duplicate parameter %q in %s", ErrInvalidParam, spec.name, method)
		}

		switch {
		case spec.keywordOnly:
			sawKeywordOnly = true
		case sawKeywordOnly:
			return nil, fmt.Errorf("%w: positional parameter %q follows keyword-only parameters in %s",
				ErrInvalidParam, spec.name, method)
		case spec.hasDefault:
			sawOptional = true
			b.positional++
		case sawOptional:
			return nil, fmt.Errorf("%w: required parameter %q follows optional parameters in %s",
				ErrInvalidParam, spec.name, method)
		default:
			b.positional++
		}

		p := param{ParamSpec: spec, typ: fnType.In(i)}
		if spec.hasDefault {
			def, err := valueFor(method, spec.name, spec.def, p.typ)
			if err != nil {
				return nil, fmt.Errorf("%w: default for %q: %w", ErrInvalidParam, spec.name, err)
			}
			if spec.validator != nil {
				if err := spec.validator.Check(method, spec.name, spec.def); err != nil {
					return nil, fmt.Errorf("%w: default for %q: %w", ErrInvalidParam, spec.name, err)
				}
			}
			p.defValue = def
		}

		b.params[i] = p
		b.index[spec.name] = i
	}

	return b, nil
}

// Names returns parameter names in declaration order.
func (b *Binding) Names() []string {
	names := make([]string, len(b.params))
	for i, p := range b.params {
		names[i] = p.name
	}
	return names
}

// Validator returns the contract bound to name. ok is false for unknown names;
// unchecked parameters return a nil validator with ok set.
func (b *Binding) Validator(name string) (v contract.Validator, ok bool) {
	i, ok := b.index[name]
	if !ok {
		return nil, false
	}
	return b.params[i].validator, true
}

func (b *Binding) Len() int {
	return len(b.params)
}

// valueFor converts an argument to a reflect.Value of typ without coercion.
// nil is accepted for nillable types only.
func valueFor(method, name string, v any, typ reflect.Type) (reflect.Value, error) {
	if v == nil {
		switch typ.Kind() {
		case reflect.Interface, reflect.Pointer, reflect.Slice, reflect.Map, reflect.Chan, reflect.Func:
			return reflect.Zero(typ), nil
		}
		return reflect.Value{}, bindingErr(method, name, "argument '%s' cannot be nil for type %s", name, typ)
	}

	rv := reflect.ValueOf(v)
	if !rv.Type().AssignableTo(typ) {
		return reflect.Value{}, bindingErr(method, name, "argument '%s' of type %s is not assignable to %s",
			name, rv.Type(), typ)
	}
	return rv, nil
}
