package validcall

import (
	"context"
	"fmt"
	"slices"
	"sync"
)

// Registry holds validated callables addressable by name. Register wraps each
// callable via Wrap, so everything dispatched through a Registry is
// argument-checked. The registry itself adds no timeouts or concurrency
// limits; a wrapped call is a pure in-process dispatch.
type Registry struct {
	mu          sync.Mutex
	callables   map[string]Callable // wrapped, with middlewares applied
	raw         map[string]Callable // as registered, used by Use to rewrap
	middlewares []Middleware
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		callables: make(map[string]Callable),
		raw:       make(map[string]Callable),
	}
}

// Register wraps the callable and adds it under its own name, replacing any
// previous entry. Stored middlewares (see Use) are applied on top of the
// wrapper. Fails with a SetupError for malformed signatures.
func (r *Registry) Register(c Callable, opts ...Option) error {
	wrapped, err := Wrap(c, opts...)
	if err != nil {
		// Wrap rejects a nil callable; its name is unreadable here.
		name := "<nil>"
		if c != nil {
			name = c.Name()
		}
		return fmt.Errorf("register %s: %w", name, err)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.raw[wrapped.Name()] = wrapped
	r.callables[wrapped.Name()] = applyMiddlewares(wrapped, r.middlewares)
	return nil
}

// Use stores the given middlewares and reapplies them from scratch to all
// registered callables (onion order: first middleware is outermost).
// Callables registered after Use get them too. Calling Use again replaces the
// chain, so middlewares are never stacked twice.
func (r *Registry) Use(middlewares ...Middleware) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.middlewares = middlewares
	for name, raw := range r.raw {
		r.callables[name] = applyMiddlewares(raw, middlewares)
	}
}

func applyMiddlewares(c Callable, middlewares []Middleware) Callable {
	for i := len(middlewares) - 1; i >= 0; i-- {
		c = middlewares[i](c)
	}
	return c
}

// Get returns the registered callable (middlewares applied), or (nil, false).
func (r *Registry) Get(name string) (Callable, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.callables[name]
	return c, ok
}

// Names returns the registered names, sorted for deterministic order.
func (r *Registry) Names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	names := make([]string, 0, len(r.callables))
	for name := range r.callables {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Call dispatches one invocation by name. Returns ErrNotFound for unknown
// names; everything else behaves exactly like calling the wrapped callable.
func (r *Registry) Call(ctx context.Context, name string, args []any, kwargs map[string]any) (any, error) {
	r.mu.Lock()
	c, ok := r.callables[name]
	r.mu.Unlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return c.Call(ctx, args, kwargs)
}
