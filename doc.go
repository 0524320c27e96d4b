// Package validcall wraps dynamic callables so that every invocation is
// validated against a schema derived once from the callable's own declared
// parameters, then re-dispatched with the original calling convention intact.
//
// # Overview
//
// A Callable carries its declared signature (Go reflection exposes no
// parameter names) and accepts arguments the dynamic way: fixed positional
// values plus a keyword map. Wrap inspects the signature once, builds a flat
// named schema and a validating model, and returns a drop-in callable:
// bind → validate → reconstruct → invoke, on every call.
//
// Pipeline: declared parameters → analyze (schema, once) → Wrap → per call:
// bind arguments to named fields → validate via the model → reassemble the
// positional list and keyword map → original callable.
//
// # Key concepts
//
//   - Calling conventions: positional-only, positional-or-keyword,
//     keyword-only, var-positional and var-keyword parameters are modeled as a
//     closed ParameterKind set consumed uniformly by binder and reconstructor.
//   - Overflow carriers: extra positional and keyword arguments land in the
//     "args" / "kwargs" fields; when a plain parameter already uses one of
//     those names, the carrier is renamed to a reserved synthetic label so
//     user fields are never shadowed.
//   - Explicit fields: only values the caller actually supplied are passed
//     back to the callable; omitted parameters keep the callable's own
//     defaults.
//
// See Callable, Parameter, and Wrap for the core surface, Validator to
// substitute the schema-checking model, and Registry for name-based dispatch.
//
// # Example
//
//	add := validcall.NewFunc("add", []validcall.Parameter{
//	    {Name: "a", Kind: validcall.PositionalOrKeyword, Schema: validcall.MustSchemaOf[int]()},
//	    {Name: "b", Kind: validcall.PositionalOrKeyword, Schema: validcall.MustSchemaOf[int](), Default: 2, HasDefault: true},
//	}, func(_ context.Context, args []any, kwargs map[string]any) (any, error) {
//	    ...
//	})
//	wrapped, err := validcall.Wrap(add)
//	if err != nil { ... }
//	sum, err := wrapped.Call(ctx, []any{1}, map[string]any{"b": 3})
package validcall
