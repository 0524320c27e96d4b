package validcall

import "context"

// ParameterKind classifies how a parameter may be supplied at call time.
type ParameterKind int

const (
	// PositionalOnly parameters are supplied by position and never by name.
	PositionalOnly ParameterKind = iota
	// PositionalOrKeyword parameters accept either convention.
	PositionalOrKeyword
	// KeywordOnly parameters are supplied by name and never by position.
	KeywordOnly
	// VarPositional collects overflow positional arguments into a sequence.
	VarPositional
	// VarKeyword collects overflow keyword arguments into a mapping.
	VarKeyword
)

// String returns the kind name for diagnostics.
func (k ParameterKind) String() string {
	switch k {
	case PositionalOnly:
		return "positional-only"
	case PositionalOrKeyword:
		return "positional-or-keyword"
	case KeywordOnly:
		return "keyword-only"
	case VarPositional:
		return "var-positional"
	case VarKeyword:
		return "var-keyword"
	default:
		return "unknown"
	}
}

// Parameter declares one parameter of a Callable.
//
// Schema is a JSON Schema fragment constraining the argument value; nil means
// any value is accepted. Default is used only when HasDefault is true; a
// parameter without a default is required.
type Parameter struct {
	Name       string
	Kind       ParameterKind
	Schema     map[string]any
	Default    any
	HasDefault bool
}

// Callable is a function-like value with a declared signature and a dynamic
// calling convention: fixed positional arguments in args, named arguments in
// kwargs. Go reflection exposes no parameter names, so the signature travels
// with the callable.
type Callable interface {
	Name() string
	// Parameters returns the declared signature in declaration order.
	Parameters() []Parameter
	Call(ctx context.Context, args []any, kwargs map[string]any) (any, error)
}

// funcCallable is the Callable built by NewFunc.
type funcCallable struct {
	name   string
	params []Parameter
	fn     func(ctx context.Context, args []any, kwargs map[string]any) (any, error)
}

// NewFunc builds a Callable from a name, a declared parameter list, and a
// function. The parameter list is copied; later mutation of params by the
// caller does not affect the callable.
func NewFunc(
	name string,
	params []Parameter,
	fn func(ctx context.Context, args []any, kwargs map[string]any) (any, error),
) Callable {
	return &funcCallable{
		name:   name,
		params: append([]Parameter(nil), params...),
		fn:     fn,
	}
}

func (c *funcCallable) Name() string { return c.name }

// Parameters returns a copy; callers must not rely on mutating it.
func (c *funcCallable) Parameters() []Parameter {
	return append([]Parameter(nil), c.params...)
}

func (c *funcCallable) Call(ctx context.Context, args []any, kwargs map[string]any) (any, error) {
	return c.fn(ctx, args, kwargs)
}

var _ Callable = (*funcCallable)(nil)
