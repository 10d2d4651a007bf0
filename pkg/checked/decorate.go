package checked

import (
	"fmt"
	"reflect"
)

var errorType = reflect.TypeFor[error]()

// Decorate returns a function with the same type as fn that checks its
// parameter contracts before every call. Go fixes arity at compile time, so
// every parameter is bound positionally and defaults never apply; variadic
// parameters are checked as a single slice value.
//
// When a contract fails the original function is not called. If F's last
// result is an error, the violation is returned there with all other results
// zeroed; otherwise the wrapper panics with the violation.
func Decorate[F any](name string, fn F, params []ParamSpec, opts ...Option) (F, error) {
	var zero F

	f, err := Wrap(name, fn, params, opts...)
	if err != nil {
		return zero, err
	}

	typ := f.typ
	returnsErr := typ.NumOut() > 0 && typ.Out(typ.NumOut()-1) == errorType

	wrapped := reflect.MakeFunc(typ, func(in []reflect.Value) []reflect.Value {
		bound := make([]boundArg, len(in))
		for i, v := range in {
			bound[i] = boundArg{value: v.Interface(), supplied: true}
		}

		if err := f.check(bound); err != nil {
			err = f.reject(err)
			if !returnsErr {
				panic(err)
			}
			out := make([]reflect.Value, typ.NumOut())
			for i := range out {
				out[i] = reflect.Zero(typ.Out(i))
			}
			out[len(out)-1] = reflect.ValueOf(&err).Elem()
			return out
		}

		return f.invoke(in)
	})

	decorated, ok := wrapped.Interface().(F)
	if !ok {
		return zero, fmt.Errorf("%w: cannot convert wrapper to %s", ErrSignatureMismatch, typ)
	}
	return decorated, nil
}

// MustDecorate is like Decorate but panics on a declaration error.
func MustDecorate[F any](name string, fn F, params []ParamSpec, opts ...Option) F {
	d, err := Decorate(name, fn, params, opts...)
	if err != nil {
		panic(err)
	}
	return d
}
