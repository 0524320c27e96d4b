package validcall

import (
	"bytes"
	"fmt"
	"net/url"
	"slices"

	json "github.com/goccy/go-json"
	"github.com/santhosh-tekuri/jsonschema/v6"
)

// Field is one declaration handed to a Validator: a schema fragment (nil
// accepts anything), a default, and whether the caller must supply the field.
type Field struct {
	Name     string
	Schema   map[string]any
	Default  any
	Required bool
}

// Validator builds a validating model from ordered field declarations. The
// default implementation compiles JSON Schema fragments; substitute your own
// with WithValidator to change how arguments are checked.
type Validator interface {
	BuildModel(name string, fields []Field) (Model, error)
}

// Model validates one call's bound values. Implementations must be safe for
// concurrent use: a model is built once per wrapped callable and shared by
// every invocation.
type Model interface {
	Validate(values map[string]any) (*Instance, error)
}

// Instance is a validated call: the effective value of every field (defaults
// applied) plus the subset of fields the caller explicitly supplied.
type Instance struct {
	order    []string
	values   map[string]any
	explicit map[string]struct{}
}

// FieldValue pairs a field name with its value, preserving order.
type FieldValue struct {
	Name  string
	Value any
}

// NewInstance builds an Instance for a custom Validator. order is the schema
// declaration order, values the effective value per field, explicit the names
// the caller actually supplied.
func NewInstance(order []string, values map[string]any, explicit []string) *Instance {
	set := make(map[string]struct{}, len(explicit))
	for _, name := range explicit {
		set[name] = struct{}{}
	}
	return &Instance{order: order, values: values, explicit: set}
}

// Value returns the effective value of a field.
func (in *Instance) Value(name string) (any, bool) {
	v, ok := in.values[name]
	return v, ok
}

// Explicit returns the explicitly supplied fields in declaration order.
// Fields filled from defaults are absent.
func (in *Instance) Explicit() []FieldValue {
	out := make([]FieldValue, 0, len(in.explicit))
	for _, name := range in.order {
		if _, ok := in.explicit[name]; ok {
			out = append(out, FieldValue{Name: name, Value: in.values[name]})
		}
	}
	return out
}

// DefaultValidator returns the JSON Schema backed Validator used by Wrap when
// no WithValidator option is given.
func DefaultValidator() Validator { return schemaValidator{} }

type schemaValidator struct{}

type modelField struct {
	Field
	compiled *jsonschema.Schema // nil when the field accepts anything
}

// schemaModel holds one compiled sub-schema per typed field. Untyped fields
// skip validation entirely so arbitrary Go values (not just JSON-shaped ones)
// can flow through them.
type schemaModel struct {
	name   string
	fields []modelField
	byName map[string]int
}

func (schemaValidator) BuildModel(name string, fields []Field) (Model, error) {
	m := &schemaModel{
		name:   name,
		fields: make([]modelField, 0, len(fields)),
		byName: make(map[string]int, len(fields)),
	}
	for _, f := range fields {
		if _, dup := m.byName[f.Name]; dup {
			return nil, fmt.Errorf("duplicate field %q in model %s", f.Name, name)
		}
		mf := modelField{Field: f}
		if f.Schema != nil {
			compiled, err := compileFragment(name, f.Name, f.Schema)
			if err != nil {
				return nil, fmt.Errorf("compile schema for field %q: %w", f.Name, err)
			}
			mf.compiled = compiled
		}
		m.byName[f.Name] = len(m.fields)
		m.fields = append(m.fields, mf)
	}
	return m, nil
}

// compileFragment round-trips the fragment through JSON before compiling so
// hand-written maps holding Go ints behave the same as decoded documents.
func compileFragment(model, field string, fragment map[string]any) (*jsonschema.Schema, error) {
	raw, err := json.Marshal(fragment)
	if err != nil {
		return nil, err
	}
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return nil, err
	}
	loc := fmt.Sprintf("model:///%s/%s.json", url.PathEscape(model), url.PathEscape(field))
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(loc, doc); err != nil {
		return nil, err
	}
	return compiler.Compile(loc)
}

func (m *schemaModel) Validate(values map[string]any) (*Instance, error) {
	var fieldErrs []FieldError

	// The binder only ever produces known names, but the model is usable on
	// its own, so unknown names are rejected rather than ignored.
	var unknown []string
	for name := range values {
		if _, ok := m.byName[name]; !ok {
			unknown = append(unknown, name)
		}
	}
	slices.Sort(unknown)
	for _, name := range unknown {
		fieldErrs = append(fieldErrs, FieldError{Field: name, Reason: "unknown field"})
	}

	order := make([]string, len(m.fields))
	effective := make(map[string]any, len(m.fields))
	explicit := make([]string, 0, len(values))
	for i, f := range m.fields {
		order[i] = f.Name
		v, supplied := values[f.Name]
		if !supplied {
			if f.Required {
				fieldErrs = append(fieldErrs, FieldError{Field: f.Name, Reason: "missing required argument"})
				continue
			}
			effective[f.Name] = f.Default
			continue
		}
		if f.compiled != nil {
			if err := checkValue(f.compiled, v); err != nil {
				fieldErrs = append(fieldErrs, FieldError{Field: f.Name, Reason: err.Error(), Err: err})
				continue
			}
		}
		effective[f.Name] = v
		explicit = append(explicit, f.Name)
	}
	if len(fieldErrs) > 0 {
		return nil, &ValidationError{Callable: m.name, Fields: fieldErrs, Err: ErrValidation}
	}
	return NewInstance(order, effective, explicit), nil
}

// checkValue validates one Go value against a compiled schema. The value is
// normalized through a JSON round-trip first; the original, not the
// normalized copy, is what ultimately reaches the callable.
func checkValue(schema *jsonschema.Schema, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("value is not representable as JSON: %w", err)
	}
	norm, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return err
	}
	return schema.Validate(norm)
}
