package view

import (
	"github.com/google/uuid"

	"github.com/cis2042/Twin3-algo/internal/transform"
)

// Mode selects the display ordering.
type Mode string

const (
	// ModeGrid keeps the canonical code order.
	ModeGrid Mode = "grid"
	// ModeRanked orders by score descending.
	ModeRanked Mode = "ranked"
)

// uncategorizedTag is the visual tag for codes no category claims.
const uncategorizedTag = "slate"

// Dimension is one fully derived display entry.
type Dimension struct {
	Code        string         `json:"code"`
	Name        string         `json:"name"`
	Score       int            `json:"score"`
	CategoryKey string         `json:"category"`
	VisualTag   string         `json:"visual_tag"`
	Tier        transform.Tier `json:"-"`
	TierTag     string         `json:"tier"`
	Intensity   float64        `json:"intensity"`
	Percentage  int            `json:"percentage"`
}

// Model is the derived view for one snapshot, category selection and mode.
type Model struct {
	SnapshotID uuid.UUID   `json:"snapshot_id"`
	Updating   bool        `json:"updating"`
	Category   string      `json:"category"`
	Mode       Mode        `json:"mode"`
	Dimensions []Dimension `json:"dimensions"`
	Stats      Stats       `json:"stats"`
	HasData    bool        `json:"has_data"`
}

// Build produces the complete view model for a snapshot. When the filtered
// set is empty the model carries HasData=false and zero Stats; the summary
// display is suppressed rather than treated as an error.
func (e *Engine) Build(snap Snapshot, categoryKey string, mode Mode) Model {
	entries := e.FilterByCategory(snap, categoryKey)
	if mode == ModeRanked {
		entries = SortDescending(entries)
	}

	dims := make([]Dimension, 0, len(entries))
	for _, entry := range entries {
		dims = append(dims, e.dimension(entry))
	}

	model := Model{
		SnapshotID: snap.ID,
		Updating:   snap.State == StateProcessing,
		Category:   categoryKey,
		Mode:       mode,
		Dimensions: dims,
	}

	if stats, err := Summary(entries); err == nil {
		model.Stats = stats
		model.HasData = true
	}

	return model
}

func (e *Engine) dimension(entry Entry) Dimension {
	key := e.classifier.Classify(entry.Code)
	tag := uncategorizedTag
	if cat, ok := e.registry.LookupCategory(key); ok {
		tag = cat.VisualTag
	}

	tier := transform.Bucket(entry.Score)
	return Dimension{
		Code:        entry.Code,
		Name:        e.registry.DisplayName(entry.Code),
		Score:       entry.Score,
		CategoryKey: key,
		VisualTag:   tag,
		Tier:        tier,
		TierTag:     tier.String(),
		Intensity:   transform.Intensity(entry.Score),
		Percentage:  transform.Percentage(entry.Score),
	}
}
