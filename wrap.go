package validcall

import (
	"context"
	"fmt"
)

// Wrapped is a Callable whose every invocation is validated against the
// schema derived from the original callable's declared parameters. The
// signature and model are built once by Wrap and read-only afterwards, so a
// Wrapped is safe for concurrent calls.
type Wrapped struct {
	callable Callable
	sig      *signature
	model    Model
	schema   map[string]any
}

// Wrap derives a schema from the callable's declared parameters, builds the
// validating model, and returns a drop-in replacement callable. Calls that
// fail validation never reach the original; valid calls are re-dispatched
// with the original convention (positional stays positional, keyword stays
// keyword, overflow is expanded back in place).
//
// Wrap fails with a SetupError if the declared signature is malformed, in
// particular if a parameter uses one of the reserved overflow field names.
func Wrap(c Callable, opts ...Option) (*Wrapped, error) {
	if c == nil {
		return nil, &SetupError{Reason: "callable is nil"}
	}
	var o wrapOptions
	for _, opt := range opts {
		opt(&o)
	}
	sig, err := analyzeSignature(c.Parameters())
	if err != nil {
		return nil, err
	}
	title := o.title
	if title == "" {
		title = pascalCase(c.Name())
	}
	validator := o.validator
	if validator == nil {
		validator = DefaultValidator()
	}
	model, err := validator.BuildModel(title, sig.fields)
	if err != nil {
		return nil, fmt.Errorf("build model for %s: %w", c.Name(), err)
	}
	return &Wrapped{
		callable: c,
		sig:      sig,
		model:    model,
		schema:   buildObjectSchema(title, sig.fields),
	}, nil
}

// MustWrap is Wrap that panics on error.
func MustWrap(c Callable, opts ...Option) *Wrapped {
	w, err := Wrap(c, opts...)
	if err != nil {
		panic(err)
	}
	return w
}

func (w *Wrapped) Name() string { return w.callable.Name() }

// Parameters returns the original callable's declared signature, so a Wrapped
// can itself be wrapped or registered anywhere a Callable is expected.
func (w *Wrapped) Parameters() []Parameter { return w.callable.Parameters() }

// Schema returns the flat object schema derived from the declared parameters
// (one property per field, required for parameters without defaults). The
// returned map is shared; callers must not mutate it.
func (w *Wrapped) Schema() map[string]any { return w.schema }

// Call binds, validates, and re-dispatches one invocation. Binding and
// validation failures are reported before the original callable runs; its
// own result or error passes through unchanged.
func (w *Wrapped) Call(ctx context.Context, args []any, kwargs map[string]any) (any, error) {
	values, usedVarPos, usedVarKw, err := bindArguments(w.callable.Name(), w.sig, args, kwargs)
	if err != nil {
		return nil, err
	}
	inst, err := w.model.Validate(values)
	if err != nil {
		return nil, err
	}
	return reconstructCall(ctx, w.callable, w.sig, inst.Explicit(), usedVarPos, usedVarKw)
}

var _ Callable = (*Wrapped)(nil)
