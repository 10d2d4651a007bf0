package contract

import (
	"fmt"
	"reflect"
)

type sign int

const (
	positiveSign sign = 1
	negativeSign sign = -1
)

// signValidator requires a number strictly on one side of zero.
type signValidator struct {
	want sign
}

// Positive passes for numbers greater than zero.
// Non-numeric values fail with an "orderable" violation.
var Positive Validator = signValidator{want: positiveSign}

// Negative passes for numbers less than zero.
var Negative Validator = signValidator{want: negativeSign}

func (v signValidator) Check(method, name string, value any) error {
	n, ok := numberOf(value)
	if !ok {
		return notOrderable(method, name, value)
	}

	c, ok := n.compare(zeroNumber)
	if ok && c == int(v.want) {
		return nil
	}

	word := v.String()
	return newViolation(method, name, value, word,
		fmt.Sprintf("expected %s to be %s, got %v", name, word, value),
		nil,
	)
}

func (v signValidator) String() string {
	if v.want == positiveSign {
		return "positive"
	}
	return "negative"
}

func notOrderable(method, name string, value any) error {
	return newViolation(method, name, value, "orderable",
		fmt.Sprintf("expected %s to be an orderable number, got %v (%T)", name, value, value),
		nil,
	)
}

type nonEmpty struct{}

// NonEmpty passes for strings, slices, arrays, maps and channels with at
// least one element. Values without a length fail with a "sized" violation.
var NonEmpty Validator = nonEmpty{}

func (nonEmpty) Check(method, name string, value any) error {
	if value == nil {
		return notSized(method, name, value)
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.String, reflect.Slice, reflect.Array, reflect.Map, reflect.Chan:
		if rv.Len() > 0 {
			return nil
		}
		return newViolation(method, name, value, "non_empty",
			fmt.Sprintf("expected %s to be a non-empty value", name),
			nil,
		)
	}
	return notSized(method, name, value)
}

func (nonEmpty) String() string { return "non_empty" }

func notSized(method, name string, value any) error {
	return newViolation(method, name, value, "sized",
		fmt.Sprintf("expected %s to be a sized value, got %v (%T)", name, value, value),
		nil,
	)
}

// Composite contracts. The type check always runs first, so a value of the
// wrong kind reports a type violation rather than a sign or length one.
var (
	PositiveInteger = NewChain("positive_integer", Integer, Positive)
	NegativeInteger = NewChain("negative_integer", Integer, Negative)
	PositiveFloat   = NewChain("positive_float", Float, Positive)
	NonEmptyString  = NewChain("non_empty_string", String, NonEmpty)
)
