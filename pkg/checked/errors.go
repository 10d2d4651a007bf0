package checked

import (
	"errors"
	"fmt"
)

var (
	// ErrBinding is matched by every *BindingError via errors.Is.
	ErrBinding = errors.New("argument binding failed")

	// ErrNotAFunction is returned when Wrap receives something other than a func.
	ErrNotAFunction = errors.New("wrapped value is not a function")

	// ErrSignatureMismatch is returned when the declared parameters do not match the function arity.
	ErrSignatureMismatch = errors.New("declared parameters do not match function signature")

	// ErrInvalidParam is returned for malformed parameter declarations.
	ErrInvalidParam = errors.New("invalid parameter declaration")
)

// BindingError reports call arguments that do not fit the parameter list.
// It is raised before any contract runs.
type BindingError struct {
	Method string
	Param  string
	Reason string
}

func (e *BindingError) Error() string {
	return fmt.Sprintf("[%s]: cannot bind arguments: %s", e.Method, e.Reason)
}

// Is reports whether target is ErrBinding.
func (e *BindingError) Is(target error) bool {
	return target == ErrBinding
}

func IsBindingError(err error) bool {
	var be *BindingError
	return errors.As(err, &be)
}

func bindingErr(method, param, format string, args ...any) *BindingError {
	return &BindingError{Method: method, Param: param, Reason: fmt.Sprintf(format, args...)}
}
