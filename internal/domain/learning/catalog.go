package learning

import (
	"hash/fnv"

	"skill-gap/internal/domain/skill"
)

type Difficulty string

const (
	DifficultyIntermediate Difficulty = "Intermediate"
	DifficultyAdvanced     Difficulty = "Advanced"
)

var advancedSkills = map[string]struct{}{
	"kubernetes":    {},
	"tensorflow":    {},
	"pytorch":       {},
	"aws":           {},
	"azure":         {},
	"gcp":           {},
	"elasticsearch": {},
}

var prerequisites = map[string][]string{
	"react":            {"JavaScript", "HTML", "CSS"},
	"vue":              {"JavaScript", "HTML", "CSS"},
	"angular":          {"TypeScript", "HTML", "CSS"},
	"next.js":          {"React"},
	"redux":            {"React"},
	"react native":     {"React"},
	"typescript":       {"JavaScript"},
	"node.js":          {"JavaScript"},
	"express":          {"Node.js"},
	"django":           {"Python"},
	"flask":            {"Python"},
	"spring":           {"Java"},
	"laravel":          {"PHP"},
	"flutter":          {"Dart"},
	"docker":           {"Linux"},
	"kubernetes":       {"Docker", "Linux"},
	"terraform":        {"AWS"},
	"aws":              {"Linux", "Networking"},
	"azure":            {"Linux", "Networking"},
	"gcp":              {"Linux", "Networking"},
	"machine learning": {"Python", "Statistics"},
	"deep learning":    {"Machine Learning"},
	"tensorflow":       {"Python", "Machine Learning"},
	"pytorch":          {"Python", "Machine Learning"},
	"pandas":           {"Python"},
	"numpy":            {"Python"},
	"scikit-learn":     {"Python", "Machine Learning"},
	"elasticsearch":    {"REST API"},
	"graphql":          {"REST API"},
}

func DifficultyOf(name string) Difficulty {
	if _, ok := advancedSkills[skill.Normalize(name)]; ok {
		return DifficultyAdvanced
	}
	return DifficultyIntermediate
}

// PrerequisitesOf returns a fresh slice; empty, never nil, when none are known.
func PrerequisitesOf(name string) []string {
	p := prerequisites[skill.Normalize(name)]
	out := make([]string, len(p))
	copy(out, p)
	return out
}

// HourEstimator must be deterministic for a given input.
type HourEstimator func(name, category string, difficulty Difficulty) int

// EstimateHours: 15h (Intermediate) or 30h (Advanced), a stable per-skill
// offset in [0,10), 5h per known prerequisite and 5h more for skills outside
// the taxonomy.
func EstimateHours(name, category string, difficulty Difficulty) int {
	base := 15
	if difficulty == DifficultyAdvanced {
		base = 30
	}
	h := fnv.New32a()
	_, _ = h.Write([]byte(skill.Normalize(name)))
	offset := int(h.Sum32() % 10)
	hours := base + offset + 5*len(prerequisites[skill.Normalize(name)])
	if category == skill.CategoryOther {
		hours += 5
	}
	return hours
}
