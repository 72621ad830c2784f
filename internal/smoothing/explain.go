// Package smoothing models the exponential-smoothing update behind every
// stored dimension score: final = alpha*raw + (1-alpha)*prior. The forward
// path (Update, TimeDecay) applies it; Explain runs it backwards to narrate
// how a stored score plausibly came to be.
package smoothing

import (
	"fmt"
	"math"
)

const (
	// Alpha is the process-wide smoothing coefficient: the weight of a new
	// raw score against the stored prior.
	Alpha = 0.3

	// DecayFactor models time-based attenuation of the prior. It is tracked
	// in traces but not applied by the reconstruction formula.
	DecayFactor = 0.95

	// BaselinePrior is the scale midpoint, used as the prior when the true
	// prior is unavailable.
	BaselinePrior = 128
)

// Step is one narrated stage of the inferred pipeline.
type Step struct {
	Description string  `json:"description"`
	Result      string  `json:"result"`
	Confidence  float64 `json:"confidence"`
}

// Trace reconstructs the computation behind a final score. Everything beyond
// FinalScore is an explanatory estimate, never recovered historical fact:
// the true raw score, prior and tags are not available to this package, so
// Estimate is always true.
type Trace struct {
	FinalScore int     `json:"final_score"`
	RawScore   int     `json:"raw_score"`
	PriorScore int     `json:"prior_score"`
	Alpha      float64 `json:"alpha"`
	Decay      float64 `json:"decay"`
	Estimate   bool    `json:"estimate"`
	Steps      []Step  `json:"steps"`
}

// Explain inverts the smoothing formula for a final score: the raw input is
// reconstructed as round(final/alpha) holding the prior at BaselinePrior.
// Single-shot pure computation; traces are rebuilt on every call and never
// retained.
func Explain(finalScore int) Trace {
	rawScore := int(math.Round(float64(finalScore) / Alpha))

	steps := []Step{
		{
			Description: "Tag extraction",
			Result:      "meta tags inferred from dimension context",
			Confidence:  0.90,
		},
		{
			Description: "Semantic matching",
			Result:      "dimension matched against extracted tags",
			Confidence:  0.85,
		},
		{
			Description: "Raw scoring",
			Result:      fmt.Sprintf("raw input estimated at %d", rawScore),
			Confidence:  0.75,
		},
		{
			Description: "Score smoothing",
			Result: fmt.Sprintf("%.2f × %d + %.2f × %d ≈ %d",
				Alpha, rawScore, 1-Alpha, BaselinePrior, finalScore),
			Confidence: 0.95,
		},
	}

	return Trace{
		FinalScore: finalScore,
		RawScore:   rawScore,
		PriorScore: BaselinePrior,
		Alpha:      Alpha,
		Decay:      DecayFactor,
		Estimate:   true,
		Steps:      steps,
	}
}
