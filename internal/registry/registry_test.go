package registry

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/cis2042/Twin3-algo/internal/errors"
)

func TestDefaultOrder(t *testing.T) {
	reg := Default()
	cats := reg.Categories()

	require.Len(t, cats, 4)
	assert.Equal(t, "physical", cats[0].Key)
	assert.Equal(t, "spiritual", cats[1].Key)
	assert.Equal(t, "social", cats[2].Key)
	assert.Equal(t, "digital", cats[3].Key)
}

func TestLookupCategory(t *testing.T) {
	reg := Default()

	cat, ok := reg.LookupCategory("digital")
	require.True(t, ok)
	assert.Equal(t, "Digital", cat.Label)
	assert.Equal(t, "sky", cat.VisualTag)

	_, ok = reg.LookupCategory("nonexistent")
	assert.False(t, ok)
}

func TestDisplayName(t *testing.T) {
	reg := Default()

	tests := []struct {
		name     string
		code     string
		expected string
	}{
		{
			name:     "registered name",
			code:     "0071",
			expected: "Social Achievements",
		},
		{
			name:     "unknown code gets synthesized placeholder",
			code:     "ZZZZ",
			expected: "Dimension ZZZZ",
		},
		{
			name:     "empty code still synthesizes deterministically",
			code:     "",
			expected: "Dimension ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, reg.DisplayName(tt.code))
		})
	}
}

func TestNewCopiesInputs(t *testing.T) {
	cats := []Category{{Key: "a", Label: "A", VisualTag: "x", Patterns: []string{"1"}}}
	names := map[string]string{"0001": "One"}

	reg := New(cats, names)

	cats[0].Key = "mutated"
	cats[0].Patterns[0] = "mutated"
	names["0001"] = "mutated"

	got := reg.Categories()
	assert.Equal(t, "a", got[0].Key)
	assert.Equal(t, "1", got[0].Patterns[0])
	assert.Equal(t, "One", reg.DisplayName("0001"))
}

func TestLoad(t *testing.T) {
	doc := `
categories:
  - key: fitness
    label: Fitness
    visual_tag: green
    patterns: ["00", "FI"]
  - key: mind
    label: Mind
    visual_tag: blue
    patterns: ["01"]
names:
  "0001": "Endurance"
`

	reg, err := Load(strings.NewReader(doc))
	require.NoError(t, err)

	cats := reg.Categories()
	require.Len(t, cats, 2)
	assert.Equal(t, "fitness", cats[0].Key)
	assert.Equal(t, "mind", cats[1].Key)
	assert.Equal(t, []string{"00", "FI"}, cats[0].Patterns)
	assert.Equal(t, "Endurance", reg.DisplayName("0001"))
	assert.Equal(t, 1, reg.NameCount())
}

func TestLoadRejectsBadDocuments(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{
			name: "not yaml",
			doc:  "{{{",
		},
		{
			name: "no categories",
			doc:  "names:\n  \"0001\": One\n",
		},
		{
			name: "missing key",
			doc:  "categories:\n  - label: X\n    patterns: [\"0\"]\n",
		},
		{
			name: "duplicate key",
			doc:  "categories:\n  - key: a\n    patterns: [\"0\"]\n  - key: a\n    patterns: [\"1\"]\n",
		},
		{
			name: "no patterns",
			doc:  "categories:\n  - key: a\n    label: A\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tt.doc))
			require.Error(t, err)

			var appErr *apperrors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, apperrors.CategoryConfiguration, appErr.Category)
		})
	}
}
