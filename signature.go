package validcall

import (
	"fmt"
	"slices"
)

// Default overflow field labels and their reserved replacements. A signature
// may declare a plain parameter named "args" or "kwargs" without declaring the
// matching variadic kind; the overflow carrier is then renamed to the reserved
// label so it never shadows the declared field. Declaring the reserved labels
// themselves is refused outright.
const (
	defaultVarPositionalName = "args"
	defaultVarKeywordName    = "kwargs"

	reservedVarPositionalName = "var__args"
	reservedVarKeywordName    = "var__kwargs"
)

// signature is the immutable schema derived once from a callable's declared
// parameters. It is built at wrap time, shared read-only by every subsequent
// call, and owns the routing data the binder and the reconstructor need.
type signature struct {
	// fields in declaration order, with synthetic overflow carriers placed
	// where the matching variadic parameter would sit had it been declared.
	fields []Field

	indexToName    map[int]string
	positionalOnly map[string]struct{}
	fieldNames     map[string]struct{}

	varPosName     string
	varPosDeclared bool
	varKwName      string
	varKwDeclared  bool
}

// kindRank orders parameter kinds as they must appear in a declaration:
// positional-only, positional-or-keyword, var-positional, keyword-only,
// var-keyword. Keyword-only parameters may appear with or without a preceding
// var-positional.
func kindRank(k ParameterKind) (int, bool) {
	switch k {
	case PositionalOnly:
		return 0, true
	case PositionalOrKeyword:
		return 1, true
	case VarPositional:
		return 2, true
	case KeywordOnly:
		return 3, true
	case VarKeyword:
		return 4, true
	default:
		return 0, false
	}
}

// analyzeSignature inspects the declared parameters once and emits the
// schema. All structural problems are SetupErrors; none of them can be
// produced at call time.
func analyzeSignature(params []Parameter) (*signature, error) {
	s := &signature{
		indexToName:    make(map[int]string),
		positionalOnly: make(map[string]struct{}),
		fieldNames:     make(map[string]struct{}),
		varPosName:     defaultVarPositionalName,
		varKwName:      defaultVarKeywordName,
	}

	prevRank := -1
	for i, p := range params {
		if p.Name == "" {
			return nil, &SetupError{Reason: fmt.Sprintf("parameter %d has no name", i)}
		}
		if p.Name == reservedVarPositionalName || p.Name == reservedVarKeywordName {
			return nil, &SetupError{Reason: fmt.Sprintf(
				"%q and %q are not permitted as parameter names", reservedVarPositionalName, reservedVarKeywordName)}
		}
		if _, dup := s.fieldNames[p.Name]; dup {
			return nil, &SetupError{Reason: fmt.Sprintf("duplicate parameter name %q", p.Name)}
		}
		rank, ok := kindRank(p.Kind)
		if !ok {
			return nil, &SetupError{Reason: fmt.Sprintf("parameter %q has unknown kind", p.Name)}
		}
		if rank < prevRank {
			return nil, &SetupError{Reason: fmt.Sprintf(
				"%s parameter %q declared after a %s parameter", p.Kind, p.Name, params[i-1].Kind)}
		}
		prevRank = rank

		switch p.Kind {
		case PositionalOnly:
			s.indexToName[i] = p.Name
			s.positionalOnly[p.Name] = struct{}{}
			s.fields = append(s.fields, declaredField(p))

		case PositionalOrKeyword:
			s.indexToName[i] = p.Name
			s.fields = append(s.fields, declaredField(p))

		case KeywordOnly:
			s.fields = append(s.fields, declaredField(p))

		case VarPositional:
			if s.varPosDeclared {
				return nil, &SetupError{Reason: fmt.Sprintf("second var-positional parameter %q", p.Name)}
			}
			s.varPosDeclared = true
			s.varPosName = p.Name
			s.fields = append(s.fields, Field{
				Name:    p.Name,
				Schema:  sequenceSchema(p.Schema),
				Default: []any{},
			})

		case VarKeyword:
			if s.varKwDeclared {
				return nil, &SetupError{Reason: fmt.Sprintf("second var-keyword parameter %q", p.Name)}
			}
			s.varKwDeclared = true
			s.varKwName = p.Name
			s.fields = append(s.fields, Field{
				Name:    p.Name,
				Schema:  mappingSchema(p.Schema),
				Default: map[string]any{},
			})
		}
		s.fieldNames[p.Name] = struct{}{}
	}

	// A field literally named "args" ("kwargs") without the matching variadic
	// kind would clash with the overflow carrier; alias the carrier to the
	// reserved label instead. Done once here so call-time routing never
	// renames anything.
	if !s.varPosDeclared {
		if _, clash := s.fieldNames[s.varPosName]; clash {
			s.varPosName = reservedVarPositionalName
		}
		// The carrier takes the slot a declared var-positional would occupy:
		// after the positional-capable fields, before any keyword-only ones.
		// Reconstruction walks the fields in order and switches to keyword
		// form at the carrier, so its position decides which fields may still
		// be passed positionally.
		s.fields = slices.Insert(s.fields, len(s.indexToName), Field{Name: s.varPosName, Default: []any{}})
		s.fieldNames[s.varPosName] = struct{}{}
	}
	if !s.varKwDeclared {
		if _, clash := s.fieldNames[s.varKwName]; clash {
			s.varKwName = reservedVarKeywordName
		}
		s.fields = append(s.fields, Field{Name: s.varKwName, Default: map[string]any{}})
		s.fieldNames[s.varKwName] = struct{}{}
	}
	return s, nil
}

func declaredField(p Parameter) Field {
	return Field{
		Name:     p.Name,
		Schema:   p.Schema,
		Default:  p.Default,
		Required: !p.HasDefault,
	}
}

// sequenceSchema wraps an element fragment into an array schema. An untyped
// element keeps the whole carrier untyped: the binder always supplies a
// sequence, and constraining only the container would reject nothing while
// forcing every overflow value through serialization.
func sequenceSchema(item map[string]any) map[string]any {
	if item == nil {
		return nil
	}
	return map[string]any{"type": "array", "items": item}
}

// mappingSchema is the var-keyword analogue of sequenceSchema.
func mappingSchema(value map[string]any) map[string]any {
	if value == nil {
		return nil
	}
	return map[string]any{"type": "object", "additionalProperties": value}
}
