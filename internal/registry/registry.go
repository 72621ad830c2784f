// Package registry holds the static configuration behind dimension display:
// the ordered category table and the dimension name table. Both are plain
// loaded data, never mutated after construction. Category order is part of the
// classification contract (first match wins), so categories live in a slice,
// not a map.
package registry

import (
	"fmt"
	"io"

	apperrors "github.com/cis2042/Twin3-algo/internal/errors"
	"gopkg.in/yaml.v3"
)

// Category groups related attribute codes under one display bucket.
type Category struct {
	Key       string   `yaml:"key"`
	Label     string   `yaml:"label"`
	VisualTag string   `yaml:"visual_tag"`
	Patterns  []string `yaml:"patterns"`
}

// Registry is an immutable lookup table for categories and dimension names.
type Registry struct {
	categories []Category
	names      map[string]string
}

// New builds a registry from an ordered category table and a name table.
// Both inputs are copied; later mutation of the arguments has no effect.
func New(categories []Category, names map[string]string) *Registry {
	cats := make([]Category, len(categories))
	copy(cats, categories)
	for i := range cats {
		patterns := make([]string, len(categories[i].Patterns))
		copy(patterns, categories[i].Patterns)
		cats[i].Patterns = patterns
	}

	nameTable := make(map[string]string, len(names))
	for code, name := range names {
		nameTable[code] = name
	}

	return &Registry{categories: cats, names: nameTable}
}

// Categories returns the category table in declared order.
func (r *Registry) Categories() []Category {
	out := make([]Category, len(r.categories))
	copy(out, r.categories)
	return out
}

// LookupCategory finds a category by key. Absence is a valid outcome, not an
// error.
func (r *Registry) LookupCategory(key string) (Category, bool) {
	for _, c := range r.categories {
		if c.Key == key {
			return c, true
		}
	}
	return Category{}, false
}

// DisplayName resolves the human-readable name for an attribute code. Codes
// without a registered name get a deterministic synthesized placeholder.
func (r *Registry) DisplayName(code string) string {
	if name, ok := r.names[code]; ok {
		return name
	}
	return fmt.Sprintf("Dimension %s", code)
}

// NameCount returns the number of registered display names.
func (r *Registry) NameCount() int {
	return len(r.names)
}

// HasName reports whether code has a registered display name.
func (r *Registry) HasName(code string) bool {
	_, ok := r.names[code]
	return ok
}

// document is the on-disk registry layout.
type document struct {
	Categories []Category        `yaml:"categories"`
	Names      map[string]string `yaml:"names"`
}

// Load reads a registry document from r. The document's category order is
// preserved as the classification order.
func Load(reader io.Reader) (*Registry, error) {
	var doc document
	if err := yaml.NewDecoder(reader).Decode(&doc); err != nil {
		return nil, apperrors.NewConfigurationError("failed to decode registry document", err)
	}

	if err := validate(doc.Categories); err != nil {
		return nil, err
	}

	return New(doc.Categories, doc.Names), nil
}

func validate(categories []Category) error {
	if len(categories) == 0 {
		return apperrors.NewConfigurationError("registry document declares no categories", nil)
	}

	seen := make(map[string]bool, len(categories))
	for _, c := range categories {
		if c.Key == "" {
			return apperrors.NewConfigurationError("category key required", nil)
		}
		if seen[c.Key] {
			return apperrors.NewConfigurationError(fmt.Sprintf("duplicate category key %q", c.Key), nil)
		}
		seen[c.Key] = true
		if len(c.Patterns) == 0 {
			return apperrors.NewConfigurationError(fmt.Sprintf("category %q declares no patterns", c.Key), nil)
		}
	}
	return nil
}
