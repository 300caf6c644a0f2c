// Package placeholder parses and fills the {name} tokens a template body
// declares. The syntax has no escaping mechanism and no nesting; unbalanced
// or nested braces are undefined and left to whatever the simple pattern
// match produces.
package placeholder

import (
	"regexp"
	"strings"
)

var fieldPattern = regexp.MustCompile(`\{([^{}]*)\}`)

// Extract returns the distinct placeholder names referenced by body, in
// first-appearance order. Captured names are trimmed; empty captures like
// "{}" are skipped.
func Extract(body string) []string {
	seen := make(map[string]struct{})
	var fields []string
	for _, match := range fieldPattern.FindAllStringSubmatch(body, -1) {
		name := strings.TrimSpace(match[1])
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		fields = append(fields, name)
	}
	return fields
}

// Merge substitutes every {name} token whose trimmed name is present in
// values, including explicit empty strings. Tokens with no matching value
// are left verbatim so incomplete drafts stay visible to reviewers. Merge
// is total: it never fails.
func Merge(body string, values map[string]string) string {
	return fieldPattern.ReplaceAllStringFunc(body, func(token string) string {
		name := strings.TrimSpace(token[1 : len(token)-1])
		if value, ok := values[name]; ok {
			return value
		}
		return token
	})
}
