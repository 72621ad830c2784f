// Package view derives the display model for one score snapshot: the
// filtered, ordered dimension list with per-entry visual parameters, plus
// summary statistics.
package view

import (
	"math"
	"sort"

	"github.com/cis2042/Twin3-algo/internal/classify"
	apperrors "github.com/cis2042/Twin3-algo/internal/errors"
	"github.com/cis2042/Twin3-algo/internal/registry"
)

// CategoryAll selects every dimension regardless of category.
const CategoryAll = "all"

// Engine assembles view models over a fixed registry.
type Engine struct {
	registry   *registry.Registry
	classifier *classify.Classifier
}

// NewEngine creates an engine bound to reg's category order and name table.
func NewEngine(reg *registry.Registry) *Engine {
	return &Engine{
		registry:   reg,
		classifier: classify.New(reg),
	}
}

// FilterByCategory returns the snapshot entries whose codes classify into
// categoryKey, in canonical order. CategoryAll is the identity filter.
func (e *Engine) FilterByCategory(snap Snapshot, categoryKey string) []Entry {
	entries := snap.Entries()
	if categoryKey == CategoryAll {
		return entries
	}

	filtered := make([]Entry, 0, len(entries))
	for _, entry := range entries {
		if e.classifier.Classify(entry.Code) == categoryKey {
			filtered = append(filtered, entry)
		}
	}
	return filtered
}

// SortDescending orders entries by score descending. The sort is stable:
// equal-score entries keep their incoming relative order, so two tied
// dimensions never switch positions across renders.
func SortDescending(entries []Entry) []Entry {
	sorted := make([]Entry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Score > sorted[j].Score })
	return sorted
}

// Stats summarizes a non-empty entry set.
type Stats struct {
	Count   int `json:"count"`
	Max     int `json:"max"`
	Average int `json:"average"`
}

// Summary computes count, max and rounded average. An empty entry set has no
// defined summary and reports an explicit no-data error.
func Summary(entries []Entry) (Stats, error) {
	if len(entries) == 0 {
		return Stats{}, apperrors.NewNoDataError("summary undefined for empty score set")
	}

	max := 0
	sum := 0
	for _, entry := range entries {
		if entry.Score > max {
			max = entry.Score
		}
		sum += entry.Score
	}

	return Stats{
		Count:   len(entries),
		Max:     max,
		Average: int(math.Floor(float64(sum)/float64(len(entries)) + 0.5)),
	}, nil
}
