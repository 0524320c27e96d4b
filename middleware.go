package validcall

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// Middleware wraps a Callable with cross-cutting behavior (logging, recovery).
type Middleware func(Callable) Callable

// WithLogging returns a middleware that logs call start, end, duration, and errors.
func WithLogging(logger *slog.Logger) Middleware {
	if logger == nil {
		logger = slog.Default()
	}
	return func(next Callable) Callable {
		return &loggingCallable{callableBase: callableBase{next: next}, logger: logger}
	}
}

// WithRecovery returns a middleware that recovers panics from the underlying
// callable and returns them as errors.
func WithRecovery() Middleware {
	return func(next Callable) Callable {
		return &recoveryCallable{callableBase{next: next}}
	}
}

// callableBase delegates Name and Parameters to the wrapped Callable; used by
// middleware wrappers.
type callableBase struct{ next Callable }

func (b *callableBase) Name() string            { return b.next.Name() }
func (b *callableBase) Parameters() []Parameter { return b.next.Parameters() }

type loggingCallable struct {
	callableBase
	logger *slog.Logger
}

func (m *loggingCallable) Call(ctx context.Context, args []any, kwargs map[string]any) (any, error) {
	m.logger.Info("call start", "callable", m.next.Name(), "positional", len(args), "keyword", len(kwargs))
	start := time.Now()
	res, err := m.next.Call(ctx, args, kwargs)
	dur := time.Since(start)
	if err != nil {
		m.logger.Error("call error", "callable", m.next.Name(), "duration", dur, "error", err)
		return nil, err
	}
	m.logger.Info("call end", "callable", m.next.Name(), "duration", dur)
	return res, nil
}

type recoveryCallable struct{ callableBase }

func (r *recoveryCallable) Call(ctx context.Context, args []any, kwargs map[string]any) (res any, err error) {
	defer func() {
		if p := recover(); p != nil {
			res = nil
			err = fmt.Errorf("panic in %s: %v", r.next.Name(), p)
		}
	}()
	return r.next.Call(ctx, args, kwargs)
}
