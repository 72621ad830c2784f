package registry

// defaultCategories mirrors the Twin Matrix families. Spiritual precedes
// social on purpose: its codes share the "006" stem with social codes, and
// listing the exact spiritual codes first keeps them out of the social bucket.
var defaultCategories = []Category{
	{
		Key:       "physical",
		Label:     "Physical",
		VisualTag: "emerald",
		Patterns:  []string{"000", "001", "002", "003"},
	},
	{
		Key:       "spiritual",
		Label:     "Spiritual",
		VisualTag: "violet",
		Patterns:  []string{"0067", "0069", "006C", "006D", "0070", "0071"},
	},
	{
		Key:       "social",
		Label:     "Social",
		VisualTag: "amber",
		Patterns:  []string{"004", "005", "006"},
	},
	{
		Key:       "digital",
		Label:     "Digital",
		VisualTag: "sky",
		Patterns:  []string{"008", "009", "00A", "00B", "SP"},
	},
}

var defaultNames = map[string]string{
	"0008": "Dietary Habits",
	"0010": "Physical Fitness",
	"0021": "Sleep Quality",
	"0040": "Communication Style",
	"0048": "Leadership Ability",
	"0060": "Community Engagement",
	"0071": "Social Achievements",
	"0088": "Digital Literacy",
	"0094": "Online Presence",
	"00B6": "Content Creation",
}

// Default returns the built-in registry used when no document is supplied.
func Default() *Registry {
	return New(defaultCategories, defaultNames)
}
