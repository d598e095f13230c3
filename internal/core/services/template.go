package services

import (
	"fmt"
	"strings"

	"github.com/custodia-labs/finfet-cli/internal/core/domain"
)

// RenderTemplate replaces {{name}} placeholders with vars values.
// It returns an error wrapping domain.ErrInvalidInput if a variable is
// missing or a placeholder is malformed.
func RenderTemplate(input string, vars map[string]string) (string, error) {
	var out strings.Builder
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
			return "", fmt.Errorf("%w: unclosed template expression", domain.ErrInvalidInput)
		}

		key := strings.TrimSpace(rest[:end])
		if key == "" {
			return "", fmt.Errorf("%w: empty template expression", domain.ErrInvalidInput)
		}

		value, ok := vars[key]
		if !ok {
			return "", fmt.Errorf("%w: missing template variable %q", domain.ErrInvalidInput, key)
		}

		out.WriteString(value)
		rest = rest[end+2:]
	}
}
