package prompt

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrTemplateBinding is returned when a template is bound to a variable it does not declare,
// or when a chain is assembled from steps whose variable names do not line up.
var ErrTemplateBinding = errors.New("template binding mismatch")

var rePlaceholder = regexp.MustCompile(`\{([A-Za-z_][A-Za-z0-9_]*)\}`)

// Template is a prompt text with exactly one named placeholder, e.g. "I want to travel {place}".
// The placeholder may occur several times but always under the same name.
type Template struct {
	text     string
	variable string
}

// Parse validates text and extracts its placeholder name.
func Parse(text string) (Template, error) {
	if strings.TrimSpace(text) == "" {
		return Template{}, fmt.Errorf("%w: empty template", ErrTemplateBinding)
	}
	matches := rePlaceholder.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return Template{}, fmt.Errorf("%w: template %q declares no placeholder", ErrTemplateBinding, text)
	}
	variable := matches[0][1]
	for _, m := range matches[1:] {
		if m[1] != variable {
			return Template{}, fmt.Errorf("%w: template %q declares both {%s} and {%s}", ErrTemplateBinding, text, variable, m[1])
		}
	}
	return Template{text: text, variable: variable}, nil
}

// MustParse is like Parse but panics on error. Intended for package-level templates.
func MustParse(text string) Template {
	t, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return t
}

// Variable returns the declared placeholder name.
func (t Template) Variable() string { return t.variable }

// Text returns the raw template text.
func (t Template) Text() string { return t.text }

// Render substitutes value for the placeholder. variable must equal the declared name.
func (t Template) Render(variable, value string) (string, error) {
	if t.variable == "" {
		return "", fmt.Errorf("%w: template is not initialised", ErrTemplateBinding)
	}
	if variable != t.variable {
		return "", fmt.Errorf("%w: template expects {%s}, got %q", ErrTemplateBinding, t.variable, variable)
	}
	return strings.ReplaceAll(t.text, "{"+t.variable+"}", value), nil
}
