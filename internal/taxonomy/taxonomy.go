package taxonomy

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Category is one named group of trigger keywords. Keyword order is
// significant: matches are reported in definition order.
type Category struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
}

// Taxonomy is an ordered list of categories scanned against a prompt.
type Taxonomy struct {
	Categories []Category `yaml:"categories"`
}

// Set bundles the taxonomy applied to positive prompts with the one applied
// to negative prompts.
type Set struct {
	Prompt   Taxonomy `yaml:"prompt"`
	Negative Taxonomy `yaml:"negative"`
}

// Load reads a taxonomy set from a YAML file. A file may override just one
// of the two taxonomies; the default fills the other.
func Load(path string) (Set, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Set{}, fmt.Errorf("read taxonomy file: %w", err)
	}
	set := Default()
	var override Set
	if err := yaml.Unmarshal(raw, &override); err != nil {
		return Set{}, fmt.Errorf("parse taxonomy file %s: %w", path, err)
	}
	if len(override.Prompt.Categories) > 0 {
		set.Prompt = override.Prompt
	}
	if len(override.Negative.Categories) > 0 {
		set.Negative = override.Negative
	}
	if err := set.validate(); err != nil {
		return Set{}, err
	}
	return set, nil
}

func (s Set) validate() error {
	for _, t := range []Taxonomy{s.Prompt, s.Negative} {
		seen := map[string]bool{}
		for _, cat := range t.Categories {
			name := strings.TrimSpace(cat.Name)
			if name == "" {
				return fmt.Errorf("taxonomy category with empty name")
			}
			if seen[name] {
				return fmt.Errorf("duplicate taxonomy category: %s", name)
			}
			seen[name] = true
			if len(cat.Keywords) == 0 {
				return fmt.Errorf("taxonomy category %s has no keywords", name)
			}
		}
	}
	return nil
}

// Match scans the prompt and returns category name -> matched keywords.
// Matching is case-insensitive substring containment of the keyword or its
// simple singular variant. Keywords are reported once each, in taxonomy
// definition order. Categories with no matches are omitted.
func (t Taxonomy) Match(prompt string) map[string][]string {
	if strings.TrimSpace(prompt) == "" {
		return nil
	}
	lower := strings.ToLower(prompt)
	var out map[string][]string
	for _, cat := range t.Categories {
		var matched []string
		seen := map[string]bool{}
		for _, kw := range cat.Keywords {
			k := strings.ToLower(strings.TrimSpace(kw))
			if k == "" || seen[k] {
				continue
			}
			if containsVariant(lower, k) {
				matched = append(matched, k)
				seen[k] = true
			}
		}
		if len(matched) > 0 {
			if out == nil {
				out = make(map[string][]string)
			}
			out[cat.Name] = matched
		}
	}
	return out
}

// containsVariant reports whether the lower-cased prompt contains the
// keyword or its singular form (trailing "s" stripped). The plural form
// needs no special case: it contains the keyword as a substring already.
func containsVariant(prompt, keyword string) bool {
	if strings.Contains(prompt, keyword) {
		return true
	}
	if singular := strings.TrimSuffix(keyword, "s"); singular != keyword && len(singular) > 2 {
		return strings.Contains(prompt, singular)
	}
	return false
}
