package validcall

import (
	"reflect"
	"slices"

	json "github.com/goccy/go-json"
	"github.com/invopop/jsonschema"
)

// SchemaOf derives a JSON Schema fragment for a Go type, for use as a
// Parameter.Schema. The fragment is fully inlined (no $ref/$defs) and carries
// no $schema or $id, so it composes into the generated call schema.
//
//	validcall.Parameter{Name: "count", Schema: validcall.MustSchemaOf[int]()}
func SchemaOf[T any]() (map[string]any, error) {
	r := &jsonschema.Reflector{
		Anonymous:      true,
		DoNotReference: true,
	}
	schema := r.ReflectFromType(reflect.TypeOf((*T)(nil)).Elem())
	data, err := json.Marshal(schema)
	if err != nil {
		return nil, err
	}
	var fragment map[string]any
	if err := json.Unmarshal(data, &fragment); err != nil {
		return nil, err
	}
	stripSchemaIDs(fragment)
	return fragment, nil
}

// MustSchemaOf is SchemaOf that panics on error.
func MustSchemaOf[T any]() map[string]any {
	fragment, err := SchemaOf[T]()
	if err != nil {
		panic(err)
	}
	return fragment
}

// buildObjectSchema flattens the derived fields into one object schema: a
// property per field, parameters without defaults required, nothing beyond
// the declared fields accepted. Exported via Wrapped.Schema for
// function-calling integrations.
func buildObjectSchema(title string, fields []Field) map[string]any {
	properties := make(map[string]any, len(fields))
	var required []string
	for _, f := range fields {
		prop := f.Schema
		if prop == nil {
			prop = map[string]any{}
		}
		properties[f.Name] = prop
		if f.Required {
			required = append(required, f.Name)
		}
	}
	schema := map[string]any{
		"title":                title,
		"type":                 "object",
		"properties":           properties,
		"additionalProperties": false,
	}
	if len(required) > 0 {
		slices.Sort(required)
		schema["required"] = required
	}
	return schema
}

// walkSchema recursively visits every map node in the schema tree.
func walkSchema(schema map[string]any, visit func(map[string]any)) {
	if schema == nil {
		return
	}
	visit(schema)
	for _, val := range schema {
		switch v := val.(type) {
		case map[string]any:
			walkSchema(v, visit)
		case []any:
			for _, item := range v {
				if m, ok := item.(map[string]any); ok {
					walkSchema(m, visit)
				}
			}
		}
	}
}

// stripSchemaIDs removes id, $id, and $schema so fragments compose without
// clashing resolution scopes.
func stripSchemaIDs(schema map[string]any) {
	walkSchema(schema, func(n map[string]any) {
		delete(n, "id")
		delete(n, "$id")
		delete(n, "$schema")
	})
}
