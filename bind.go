package validcall

// bindArguments routes one call's concrete arguments into a values map keyed
// by schema field name. Fixed positional arguments are assigned through the
// signature's index mapping; the first unmapped index and everything after it
// become the var-positional carrier's sequence. Keyword arguments matching a
// field are assigned by name; the rest accumulate into the var-keyword
// carrier's mapping.
//
// A keyword argument naming a positional-only parameter has no defined
// meaning and is rejected with a BindingError.
func bindArguments(
	callable string,
	s *signature,
	args []any,
	kwargs map[string]any,
) (values map[string]any, usedVarPos, usedVarKw bool, err error) {
	values = make(map[string]any, len(args)+len(kwargs))

	for i, a := range args {
		name, ok := s.indexToName[i]
		if !ok {
			overflow := make([]any, len(args)-i)
			copy(overflow, args[i:])
			values[s.varPosName] = overflow
			usedVarPos = true
			break
		}
		values[name] = a
	}

	var overflowKw map[string]any
	for k, v := range kwargs {
		if _, declared := s.fieldNames[k]; declared {
			if _, posOnly := s.positionalOnly[k]; posOnly {
				return nil, false, false, &BindingError{Callable: callable, Param: k}
			}
			values[k] = v
			continue
		}
		if overflowKw == nil {
			overflowKw = make(map[string]any)
		}
		overflowKw[k] = v
	}
	if len(overflowKw) > 0 {
		values[s.varKwName] = overflowKw
		usedVarKw = true
	}
	return values, usedVarPos, usedVarKw, nil
}
