// Package template fills {{name}} placeholders in workspace scaffolding files.
package template

import (
	"strings"

	"github.com/aalvaropc/bankcore/internal/domain"
)

// RenderString replaces {{VAR}} placeholders with vars values.
// It returns an error if a variable is missing or a placeholder is malformed.
func RenderString(input string, vars map[string]string) (string, error) {
	var out strings.Builder
	out.Grow(len(input))

	rest := input
	for {
		start := strings.Index(rest, "{{")
		if start == -1 {
			out.WriteString(rest)
			return out.String(), nil
		}

		out.WriteString(rest[:start])
		rest = rest[start+2:]

		end := strings.Index(rest, "}}")
		if end == -1 {
			return "", domain.NewDomainError(domain.KindInvalidConfig, "unclosed template expression")
		}

		key := strings.TrimSpace(rest[:end])
		if key == "" {
			return "", domain.NewDomainError(domain.KindInvalidConfig, "empty template expression")
		}

		value, ok := vars[key]
		if !ok {
			return "", domain.NewDomainError(domain.KindInvalidConfig, "missing template variable %q", key)
		}

		out.WriteString(value)
		rest = rest[end+2:]
	}
}
