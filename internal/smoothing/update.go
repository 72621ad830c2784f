package smoothing

import "math"

// Coefficients carries the smoothing parameters for the forward path as
// explicit inputs, so per-dimension values can be threaded in without
// touching package constants.
type Coefficients struct {
	Alpha       float64
	LambdaDecay float64
}

// DefaultCoefficients returns the process-wide defaults.
func DefaultCoefficients() Coefficients {
	return Coefficients{Alpha: Alpha, LambdaDecay: 0.1}
}

// Strategy names the blend applied by Update.
type Strategy string

const (
	StrategyInitial      Strategy = "initial"
	StrategyAggressive   Strategy = "aggressive"
	StrategyBalanced     Strategy = "balanced"
	StrategyConservative Strategy = "conservative"
)

// Update blends a new raw score into the prior. Young dimensions track the
// raw input closely; mature ones resist it. updateCount is the number of
// updates already applied to the dimension.
func Update(raw, prior, updateCount int, c Coefficients) (int, Strategy) {
	if updateCount == 0 {
		return raw, StrategyInitial
	}

	switch {
	case updateCount < 3:
		return blend(0.7, raw, prior), StrategyAggressive
	case updateCount < 10:
		return blend(c.Alpha, raw, prior), StrategyBalanced
	default:
		return blend(0.2, raw, prior), StrategyConservative
	}
}

func blend(weight float64, raw, prior int) int {
	return int(weight*float64(raw) + (1-weight)*float64(prior))
}

// decayGraceDays is the window during which a stale score keeps its value.
const decayGraceDays = 30

// TimeDecay attenuates a score that has not been updated for longer than the
// grace window. Within the window the score is returned unchanged.
func TimeDecay(score, daysSinceUpdate int, c Coefficients) int {
	if daysSinceUpdate <= decayGraceDays {
		return score
	}

	factor := math.Exp(-c.LambdaDecay * float64(daysSinceUpdate-decayGraceDays) / float64(decayGraceDays))
	decayed := int(float64(score) * factor)
	if decayed < 0 {
		return 0
	}
	return decayed
}
