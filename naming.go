package validcall

import "strings"

// pascalCase converts snake_case, kebab-case, or space-separated names into
// PascalCase for schema titles: "get_weather" → "GetWeather".
func pascalCase(name string) string {
	var b strings.Builder
	upper := true
	for _, r := range name {
		switch r {
		case '_', '-', ' ', '.':
			upper = true
		default:
			if upper {
				b.WriteString(strings.ToUpper(string(r)))
				upper = false
			} else {
				b.WriteRune(r)
			}
		}
	}
	return b.String()
}
