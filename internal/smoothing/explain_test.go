package smoothing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExplain(t *testing.T) {
	tests := []struct {
		name        string
		finalScore  int
		expectedRaw int
	}{
		{
			name:        "reconstructs raw as round(final/alpha)",
			finalScore:  150,
			expectedRaw: 500,
		},
		{
			name:        "zero final score",
			finalScore:  0,
			expectedRaw: 0,
		},
		{
			name:        "midpoint",
			finalScore:  128,
			expectedRaw: 427, // 128/0.3 = 426.67
		},
		{
			name:        "max score",
			finalScore:  255,
			expectedRaw: 850,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			trace := Explain(tt.finalScore)

			assert.Equal(t, tt.finalScore, trace.FinalScore)
			assert.Equal(t, tt.expectedRaw, trace.RawScore)
			assert.Equal(t, BaselinePrior, trace.PriorScore)
			assert.Equal(t, Alpha, trace.Alpha)
			assert.Equal(t, DecayFactor, trace.Decay)
			assert.True(t, trace.Estimate, "every trace is an explanatory estimate")
		})
	}
}

func TestExplainSteps(t *testing.T) {
	trace := Explain(150)

	require.Len(t, trace.Steps, 4)
	assert.Equal(t, "Tag extraction", trace.Steps[0].Description)
	assert.Equal(t, "Semantic matching", trace.Steps[1].Description)
	assert.Equal(t, "Raw scoring", trace.Steps[2].Description)
	assert.Equal(t, "Score smoothing", trace.Steps[3].Description)

	for _, step := range trace.Steps {
		assert.GreaterOrEqual(t, step.Confidence, 0.0)
		assert.LessOrEqual(t, step.Confidence, 1.0)
		assert.NotEmpty(t, step.Result)
	}

	assert.Contains(t, trace.Steps[2].Result, "500")
}

func TestExplainRecomputedEachCall(t *testing.T) {
	first := Explain(150)
	second := Explain(150)

	assert.Equal(t, first, second, "single-shot pure computation")

	// mutating one trace's steps must not leak into a later call
	first.Steps[0].Confidence = 0
	assert.Equal(t, second, Explain(150))
}

func TestConstants(t *testing.T) {
	assert.Equal(t, 0.3, Alpha)
	assert.Equal(t, 0.95, DecayFactor)
	assert.Equal(t, 128, BaselinePrior)
}
