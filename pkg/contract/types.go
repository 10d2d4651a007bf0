package contract

import (
	"fmt"
	"reflect"
)

// TypeValidator passes when the runtime type of the value is accepted.
type TypeValidator struct {
	name    string
	accepts func(reflect.Type) bool
}

// Type returns a validator that accepts any value whose dynamic type satisfies accepts.
// A nil value has no type and always fails.
func Type(name string, accepts func(reflect.Type) bool) *TypeValidator {
	return &TypeValidator{name: name, accepts: accepts}
}

// TypeOf accepts values assignable to T. For an interface T this means the
// value implements T.
func TypeOf[T any]() *TypeValidator {
	want := reflect.TypeFor[T]()
	return Type(want.String(), func(t reflect.Type) bool {
		return t.AssignableTo(want)
	})
}

func (v *TypeValidator) Check(method, name string, value any) error {
	if value != nil && v.accepts(reflect.TypeOf(value)) {
		return nil
	}
	return newViolation(method, name, value, "type",
		fmt.Sprintf("expected %s to be of type %s, got %v (%T)", name, v.name, value, value),
		map[string]any{"type": v.name},
	)
}

func (v *TypeValidator) Name() string {
	return v.name
}

func (v *TypeValidator) String() string {
	return "type:" + v.name
}

func isIntegerKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	}
	return false
}

func isFloatKind(k reflect.Kind) bool {
	return k == reflect.Float32 || k == reflect.Float64
}

// Built-in type contracts. Named types with a matching underlying kind are
// accepted as subtypes.
var (
	Integer = Type("integer", func(t reflect.Type) bool { return isIntegerKind(t.Kind()) })
	Float   = Type("float", func(t reflect.Type) bool { return isFloatKind(t.Kind()) })
	String  = Type("string", func(t reflect.Type) bool { return t.Kind() == reflect.String })
)
