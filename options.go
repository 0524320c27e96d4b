package validcall

// wrapOptions hold optional Wrap settings.
type wrapOptions struct {
	validator Validator
	title     string
}

// Option configures Wrap (e.g. WithValidator, WithSchemaTitle).
type Option func(*wrapOptions)

// WithValidator substitutes the Validator that turns field declarations into
// the enforcing model. The default compiles JSON Schema fragments.
func WithValidator(v Validator) Option {
	return func(o *wrapOptions) {
		o.validator = v
	}
}

// WithSchemaTitle overrides the generated schema's title. By default the
// callable's name is converted to PascalCase (e.g. "get_weather" →
// "GetWeather").
func WithSchemaTitle(title string) Option {
	return func(o *wrapOptions) {
		o.title = title
	}
}
