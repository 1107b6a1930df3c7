package advisor

import (
	"fmt"
	"os"
	"strings"

	"go.yaml.in/yaml/v4"

	"github.com/STIWARI-IN/AI-ML/pkg/chain"
	"github.com/STIWARI-IN/AI-ML/pkg/prompt"
)

// DefaultCatalog returns the built-in advisors.
func DefaultCatalog() []Advisor {
	return []Advisor{
		{
			Slug:        "travel",
			Title:       "Travel Advisor 🛣️",
			InputLabel:  "Enter State Name Where You Want To Visit!",
			ListHeading: "Famous Sight Seeing Places",
			NamePrompt:  "I want to travel {place}",
			ListPrompt:  "Suggest some famous sight seeing for {place_name}. Return it as a comma separated list",
		},
		{
			Slug:        "hospital",
			Title:       "Hospital Advisor 🏥",
			InputLabel:  "Enter City or State Name Where You Need A Hospital!",
			ListHeading: "Well Known Hospitals",
			NamePrompt:  "I am looking for hospitals in {place}. Reply with only the name of the place",
			ListPrompt:  "Suggest some well known hospitals in {place_name}. Return it as a comma separated list",
		},
	}
}

type catalogFile struct {
	Advisors []Advisor `yaml:"advisors"`
}

// LoadCatalog reads advisors from a YAML file.
func LoadCatalog(path string) ([]Advisor, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read advisors file: %w", err)
	}
	return ParseCatalog(raw)
}

// ParseCatalog decodes a YAML catalog and validates every entry.
func ParseCatalog(raw []byte) ([]Advisor, error) {
	var f catalogFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("invalid advisors format: %w", err)
	}
	if len(f.Advisors) == 0 {
		return nil, fmt.Errorf("advisors file defines no advisors")
	}
	seen := make(map[string]struct{}, len(f.Advisors))
	for i := range f.Advisors {
		a := &f.Advisors[i]
		a.Slug = strings.ToLower(strings.TrimSpace(a.Slug))
		if a.Slug == "" {
			return nil, fmt.Errorf("advisor #%d: slug is required", i+1)
		}
		if _, dup := seen[a.Slug]; dup {
			return nil, fmt.Errorf("advisor %q defined twice", a.Slug)
		}
		seen[a.Slug] = struct{}{}
		if a.Title == "" {
			a.Title = a.Slug
		}
		if _, _, err := Steps(*a); err != nil {
			return nil, fmt.Errorf("advisor %q: %w", a.Slug, err)
		}
	}
	return f.Advisors, nil
}

// Steps parses the advisor's templates into chain steps.
func Steps(a Advisor) (chain.Step, chain.Step, error) {
	first, err := prompt.Parse(a.NamePrompt)
	if err != nil {
		return chain.Step{}, chain.Step{}, fmt.Errorf("name prompt: %w", err)
	}
	second, err := prompt.Parse(a.ListPrompt)
	if err != nil {
		return chain.Step{}, chain.Step{}, fmt.Errorf("list prompt: %w", err)
	}
	if second.Variable() != NameKey {
		return chain.Step{}, chain.Step{}, fmt.Errorf("%w: list prompt must use {%s}, found {%s}",
			prompt.ErrTemplateBinding, NameKey, second.Variable())
	}
	return chain.Step{Template: first, OutputKey: NameKey}, chain.Step{Template: second, OutputKey: ListKey}, nil
}
