// Package classify assigns attribute codes to categories by substring match
// against the registry's ordered pattern table.
package classify

import (
	"strings"

	"github.com/cis2042/Twin3-algo/internal/registry"
)

// Uncategorized is the fallback key for codes no category claims.
const Uncategorized = "uncategorized"

// Classifier resolves attribute codes to category keys. It snapshots the
// registry's category order at construction; first match wins.
type Classifier struct {
	categories []registry.Category
}

// New creates a classifier over the registry's declared category order.
func New(reg *registry.Registry) *Classifier {
	return &Classifier{categories: reg.Categories()}
}

// Classify returns the key of the earliest-declared category with a pattern
// contained in code, or Uncategorized. Pure function, no failure modes.
func (c *Classifier) Classify(code string) string {
	for _, cat := range c.categories {
		for _, pattern := range cat.Patterns {
			if strings.Contains(code, pattern) {
				return cat.Key
			}
		}
	}
	return Uncategorized
}
