package checked

import (
	"errors"
	"log/slog"
	"reflect"
	"runtime"
	"sort"
	"strings"

	"github.com/dmitrymomot/contracts/pkg/contract"
	"github.com/dmitrymomot/contracts/pkg/logger"
)

// Args holds the arguments of a single call. Positional values bind to
// parameters in declaration order; Keyword values bind by name.
type Args struct {
	Positional []any
	Keyword    map[string]any
}

// Func is a function guarded by its parameter contracts.
// It is safe for concurrent use; nothing is mutated after Wrap returns.
type Func struct {
	name    string
	fn      reflect.Value
	typ     reflect.Type
	binding *Binding
	logger  *slog.Logger
}

// Option configures a wrapped function.
type Option func(*Func)

// WithLogger logs rejected calls at debug level. Nil loggers are ignored.
func WithLogger(l *slog.Logger) Option {
	return func(f *Func) {
		if l != nil {
			f.logger = l
		}
	}
}

// Wrap builds the parameter binding for fn once and returns the guarded function.
// params must declare every parameter of fn in order. An empty name falls back
// to the runtime function name.
func Wrap(name string, fn any, params []ParamSpec, opts ...Option) (*Func, error) {
	if fn == nil {
		return nil, ErrNotAFunction
	}
	rv := reflect.ValueOf(fn)
	if rv.Kind() != reflect.Func || rv.IsNil() {
		return nil, ErrNotAFunction
	}

	if name == "" {
		name = funcName(rv)
	}

	binding, err := newBinding(name, rv.Type(), params)
	if err != nil {
		return nil, err
	}

	f := &Func{
		name:    name,
		fn:      rv,
		typ:     rv.Type(),
		binding: binding,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f, nil
}

// MustWrap is like Wrap but panics on a declaration error.
func MustWrap(name string, fn any, params []ParamSpec, opts ...Option) *Func {
	f, err := Wrap(name, fn, params, opts...)
	if err != nil {
		panic(err)
	}
	return f
}

func (f *Func) Name() string { return f.name }

func (f *Func) Binding() *Binding { return f.binding }

// Call binds args positionally and invokes the function.
func (f *Func) Call(args ...any) ([]any, error) {
	return f.CallArgs(Args{Positional: args})
}

// CallArgs resolves args against the parameter list, runs every contract in
// parameter order and, if all pass, invokes the original function with the
// unmodified values. The function results are returned as they are.
// A *BindingError or *contract.Violation means the function was not invoked.
func (f *Func) CallArgs(args Args) ([]any, error) {
	bound, err := f.bind(args)
	if err != nil {
		return nil, f.reject(err)
	}
	if err := f.check(bound); err != nil {
		return nil, f.reject(err)
	}

	in := make([]reflect.Value, len(bound))
	for i, a := range bound {
		if !a.supplied {
			in[i] = f.binding.params[i].defValue
			continue
		}
		in[i] = a.rv
	}

	return results(f.invoke(in)), nil
}

// Validate performs binding and contract checks without invoking the function.
func (f *Func) Validate(args Args) error {
	bound, err := f.bind(args)
	if err != nil {
		return err
	}
	return f.check(bound)
}

type boundArg struct {
	value    any
	rv       reflect.Value
	supplied bool
}

func (f *Func) bind(args Args) ([]boundArg, error) {
	b := f.binding
	if len(args.Positional) > b.positional {
		return nil, bindingErr(f.name, "", "too many positional arguments: expected at most %d, got %d",
			b.positional, len(args.Positional))
	}

	bound := make([]boundArg, len(b.params))
	for i, v := range args.Positional {
		bound[i] = boundArg{value: v, supplied: true}
	}

	keys := make([]string, 0, len(args.Keyword))
	for k := range args.Keyword {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		i, ok := b.index[k]
		if !ok {
			return nil, bindingErr(f.name, k, "unexpected keyword argument '%s'", k)
		}
		if bound[i].supplied {
			return nil, bindingErr(f.name, k, "multiple values for argument '%s'", k)
		}
		bound[i] = boundArg{value: args.Keyword[k], supplied: true}
	}

	for i, p := range b.params {
		if !bound[i].supplied && !p.hasDefault {
			return nil, bindingErr(f.name, p.name, "missing required argument '%s'", p.name)
		}
	}

	// Every supplied value must fit its Go parameter before any contract runs.
	for i, p := range b.params {
		if !bound[i].supplied {
			continue
		}
		rv, err := valueFor(f.name, p.name, bound[i].value, p.typ)
		if err != nil {
			return nil, err
		}
		bound[i].rv = rv
	}
	return bound, nil
}

// check runs contracts in parameter declaration order and stops at the first
// failing parameter. Defaults were checked by Wrap and are skipped.
func (f *Func) check(bound []boundArg) error {
	for i, p := range f.binding.params {
		if p.validator == nil || !bound[i].supplied {
			continue
		}
		if err := p.validator.Check(f.name, p.name, bound[i].value); err != nil {
			return err
		}
	}
	return nil
}

func (f *Func) invoke(in []reflect.Value) []reflect.Value {
	if f.typ.IsVariadic() {
		return f.fn.CallSlice(in)
	}
	return f.fn.Call(in)
}

func (f *Func) reject(err error) error {
	if f.logger != nil {
		f.logger.Debug("call rejected",
			logger.Method(f.name),
			logger.Param(rejectedParam(err)),
			logger.Error(err),
		)
	}
	return err
}

func rejectedParam(err error) string {
	if v, ok := contract.AsViolation(err); ok {
		return v.Param
	}
	var be *BindingError
	if errors.As(err, &be) {
		return be.Param
	}
	return ""
}

func results(out []reflect.Value) []any {
	res := make([]any, len(out))
	for i, v := range out {
		res[i] = v.Interface()
	}
	return res
}

func funcName(fn reflect.Value) string {
	rf := runtime.FuncForPC(fn.Pointer())
	if rf == nil {
		return "func"
	}
	name := rf.Name()
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	return name
}
