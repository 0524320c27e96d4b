package validcall

import (
	"context"
	"fmt"
)

// reconstructCall turns the validated, explicitly supplied field values back
// into the callable's own convention and invokes it. explicit must be in
// schema declaration order; the callable's result and error pass through
// unmodified.
func reconstructCall(
	ctx context.Context,
	c Callable,
	s *signature,
	explicit []FieldValue,
	usedVarPos, usedVarKw bool,
) (any, error) {
	// Overflow keyword arguments leave the carrier field and trail the call
	// as ordinary keywords.
	var trailing map[string]any
	if usedVarKw {
		for i, fv := range explicit {
			if fv.Name == s.varKwName {
				m, ok := fv.Value.(map[string]any) // set by bindArguments
				if !ok {
					return nil, fmt.Errorf("call %s: validator returned %T for overflow field %q, want map[string]any", c.Name(), fv.Value, fv.Name)
				}
				trailing = m
				explicit = append(explicit[:i:i], explicit[i+1:]...)
				break
			}
		}
	}

	switch {
	case usedVarPos:
		// Everything before the var-positional carrier goes by position, the
		// carrier's sequence is expanded in place, and every field after it
		// can only be passed by keyword.
		var args []any
		kwargs := make(map[string]any)
		pastCarrier := false
		for _, fv := range explicit {
			switch {
			case pastCarrier:
				kwargs[fv.Name] = fv.Value
			case fv.Name == s.varPosName:
				seq, ok := fv.Value.([]any) // set by bindArguments
				if !ok {
					return nil, fmt.Errorf("call %s: validator returned %T for overflow field %q, want []any", c.Name(), fv.Value, fv.Name)
				}
				args = append(args, seq...)
				pastCarrier = true
			default:
				args = append(args, fv.Value)
			}
		}
		mergeInto(kwargs, trailing)
		return c.Call(ctx, args, kwargs)

	case len(s.positionalOnly) > 0:
		// Positional-only fields must go back by position; the rest keep the
		// keyword form the caller used.
		var args []any
		kwargs := make(map[string]any)
		for _, fv := range explicit {
			if _, posOnly := s.positionalOnly[fv.Name]; posOnly {
				args = append(args, fv.Value)
			} else {
				kwargs[fv.Name] = fv.Value
			}
		}
		mergeInto(kwargs, trailing)
		return c.Call(ctx, args, kwargs)

	default:
		kwargs := make(map[string]any, len(explicit)+len(trailing))
		for _, fv := range explicit {
			kwargs[fv.Name] = fv.Value
		}
		mergeInto(kwargs, trailing)
		return c.Call(ctx, nil, kwargs)
	}
}

func mergeInto(dst, src map[string]any) {
	for k, v := range src {
		dst[k] = v
	}
}
