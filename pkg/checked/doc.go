// Package checked guards function calls with parameter contracts.
//
// Go has no runtime parameter names, so the parameter list is declared once,
// explicitly, when a function is wrapped:
//
//	resize := checked.MustWrap("Resize", func(w, h int, unit string) string {
//	    return fmt.Sprintf("%dx%d%s", w, h, unit)
//	}, []checked.ParamSpec{
//	    checked.Param("width", contract.PositiveInteger),
//	    checked.Param("height", contract.PositiveInteger),
//	    checked.Param("unit", contract.MustMembership("unit", "px", "pt")).Default("px"),
//	})
//
//	out, err := resize.CallArgs(checked.Args{
//	    Positional: []any{640},
//	    Keyword:    map[string]any{"height": 480},
//	})
//
// Every call goes through the same steps:
//
//  1. Arguments are resolved to parameter names. Too many positional values,
//     unknown or repeated keywords, missing required parameters and values
//     not assignable to the Go parameter type produce a *BindingError before
//     any contract runs.
//  2. Omitted optional parameters take their defaults. Defaults are checked
//     against their contract once, by Wrap.
//  3. Contracts run in parameter declaration order. The first failing
//     parameter aborts the call with its *contract.Violation.
//  4. The original function is invoked with the values unmodified and its
//     results are returned unmodified.
//
// Decorate produces a function of the original Go type instead, for call
// sites that should not change.
//
// Wrapped functions hold no mutable state and may be called concurrently.
package checked
