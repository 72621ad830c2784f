// Package transform maps raw dimension scores to display parameters. All
// functions are pure over the single-byte score scale [0,255]; out-of-range
// input is the upstream scorer's contract violation and is not validated here.
package transform

import "math"

// MaxScore is the top of the single-byte score scale.
const MaxScore = 255

// MinIntensity is the rendering floor: even a zero score stays visible.
const MinIntensity = 0.1

// Tier is a discrete visual-intensity bucket, ordered lowest to highest so
// tier assignment is monotonic in the score.
type Tier int

const (
	TierFaint Tier = iota
	TierLow
	TierModerate
	TierHigh
	TierPeak
)

var tierTags = map[Tier]string{
	TierPeak:     "peak",
	TierHigh:     "high",
	TierModerate: "moderate",
	TierLow:      "low",
	TierFaint:    "faint",
}

func (t Tier) String() string {
	if tag, ok := tierTags[t]; ok {
		return tag
	}
	return "unknown"
}

// Bucket discretizes a score into five tiers. Thresholds are inclusive at the
// lower bound of each tier: 200, 150, 100 and 50 all belong to the higher
// tier.
func Bucket(score int) Tier {
	switch {
	case score >= 200:
		return TierPeak
	case score >= 150:
		return TierHigh
	case score >= 100:
		return TierModerate
	case score >= 50:
		return TierLow
	default:
		return TierFaint
	}
}

// Intensity maps a score to a continuous opacity value with the MinIntensity
// floor applied.
func Intensity(score int) float64 {
	v := float64(score) / MaxScore
	if v < MinIntensity {
		return MinIntensity
	}
	return v
}

// Percentage expresses a score as a share of MaxScore, rounded half up.
func Percentage(score int) int {
	return int(math.Floor(float64(score)/MaxScore*100 + 0.5))
}
