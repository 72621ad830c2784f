package view

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/cis2042/Twin3-algo/internal/errors"
	"github.com/cis2042/Twin3-algo/internal/transform"
)

// ScoreMap maps attribute codes to their current scores. It is a read-only
// snapshot owned by the caller; one atomic map per processing cycle.
type ScoreMap map[string]int

// ProcessingState is the upstream scorer's state indicator. It is passed
// through to the view so a "currently updating" hint can be surfaced; it
// plays no part in any computation.
type ProcessingState string

const (
	StateIdle       ProcessingState = "idle"
	StateProcessing ProcessingState = "processing"
)

// Entry is one (attribute, score) pair.
type Entry struct {
	Code  string `json:"code"`
	Score int    `json:"score"`
}

// Snapshot is one immutable score cycle from the upstream scorer.
type Snapshot struct {
	ID      uuid.UUID
	Scores  ScoreMap
	State   ProcessingState
	TakenAt time.Time
}

// NewSnapshot copies scores into an immutable snapshot. This is the boundary
// with the upstream scorer, so the [0,255] contract is enforced here rather
// than in the pure transforms.
func NewSnapshot(scores ScoreMap, state ProcessingState) (Snapshot, error) {
	copied := make(ScoreMap, len(scores))
	for code, score := range scores {
		if score < 0 || score > transform.MaxScore {
			return Snapshot{}, apperrors.NewValidationError(
				fmt.Sprintf("score for %s outside [0,%d]", code, transform.MaxScore), score)
		}
		copied[code] = score
	}

	return Snapshot{
		ID:      uuid.New(),
		Scores:  copied,
		State:   state,
		TakenAt: time.Now().UTC(),
	}, nil
}

// Entries returns the snapshot's pairs in canonical order (code ascending).
// Go maps have no insertion order, so code order is the stable base order
// that tie-preserving sorts are defined against.
func (s Snapshot) Entries() []Entry {
	entries := make([]Entry, 0, len(s.Scores))
	for code, score := range s.Scores {
		entries = append(entries, Entry{Code: code, Score: score})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Code < entries[j].Code })
	return entries
}
