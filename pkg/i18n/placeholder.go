package i18n

import (
	"fmt"
	"regexp"
)

// placeholderPattern matches brace-delimited identifiers like {name} or {count}.
var placeholderPattern = regexp.MustCompile(`\{(\w+)\}`)

// Interpolate replaces {name} placeholders in the template with values from
// the params map. A placeholder whose name is absent from params (or maps to
// nil) is left untouched, braces included.
//
// Example:
//
//	Interpolate("Hello {name}, you have {count} items", i18n.M{"name": "Ann", "count": 3})
//	// "Hello Ann, you have 3 items"
func Interpolate(template string, params M) string {
	if len(params) == 0 {
		return template
	}

	return placeholderPattern.ReplaceAllStringFunc(template, func(match string) string {
		name := match[1 : len(match)-1]
		if value, ok := params[name]; ok && value != nil {
			return fmt.Sprint(value)
		}
		return match
	})
}
