package contract

import (
	"errors"
	"fmt"
)

// Violation describes the first rule a value failed to satisfy.
// It carries translation metadata so callers can render localized messages.
type Violation struct {
	Method            string
	Param             string
	Value             any
	Constraint        string
	Message           string
	TranslationKey    string
	TranslationValues map[string]any
}

func (v *Violation) Error() string {
	return fmt.Sprintf("[%s]: %s", v.Method, v.Message)
}

// Is reports whether target is ErrContractViolation.
func (v *Violation) Is(target error) bool {
	return target == ErrContractViolation
}

// AsViolation extracts the *Violation from err.
func AsViolation(err error) (*Violation, bool) {
	if err == nil {
		return nil, false
	}

	var v *Violation
	if errors.As(err, &v) {
		return v, true
	}
	return nil, false
}

func IsViolation(err error) bool {
	_, ok := AsViolation(err)
	return ok
}

func newViolation(method, name string, value any, constraint, message string, extra map[string]any) *Violation {
	values := map[string]any{
		"method": method,
		"param":  name,
		"value":  value,
	}
	for k, v := range extra {
		values[k] = v
	}

	return &Violation{
		Method:            method,
		Param:             name,
		Value:             value,
		Constraint:        constraint,
		Message:           message,
		TranslationKey:    "contract." + constraint,
		TranslationValues: values,
	}
}
