package matching

import (
	"math"

	"skill-gap/internal/domain/skill"
)

const (
	ProficiencyMatched = 80
	ProficiencyMissing = 0
)

type Result struct {
	RequiredSkills  []string
	Matched         []string
	Gaps            []string
	MatchPercentage int
	Proficiency     map[string]int
	MatchedBy       map[string]string
	Policy          string
}

type Matcher struct {
	policy Policy
}

func NewMatcher(p Policy) *Matcher {
	if p == nil {
		p = SubstringPolicy{}
	}
	return &Matcher{policy: p}
}

func (m *Matcher) PolicyName() string {
	if m == nil || m.policy == nil {
		return PolicySubstring
	}
	return m.policy.Name()
}

// Calculate with the default substring policy.
func Calculate(required, userSkills []string) Result {
	return NewMatcher(nil).Calculate(required, userSkills)
}

// Calculate splits required into matched and gaps. Required skills are
// deduplicated by normalized form keeping the first spelling; blank entries on
// either side are dropped.
func (m *Matcher) Calculate(required, userSkills []string) Result {
	policy := Policy(SubstringPolicy{})
	if m != nil && m.policy != nil {
		policy = m.policy
	}

	users := make([]string, 0, len(userSkills))
	for _, u := range userSkills {
		if skill.Normalize(u) == "" {
			continue
		}
		users = append(users, u)
	}

	reqs := make([]string, 0, len(required))
	seen := map[string]struct{}{}
	for _, r := range required {
		key := skill.Normalize(r)
		if key == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		reqs = append(reqs, r)
	}

	res := Result{
		RequiredSkills: reqs,
		Matched:        make([]string, 0, len(reqs)),
		Gaps:           make([]string, 0),
		Proficiency:    make(map[string]int, len(reqs)),
		MatchedBy:      make(map[string]string),
		Policy:         policy.Name(),
	}

	for _, r := range reqs {
		by, ok := firstMatch(policy, r, users)
		if !ok {
			res.Gaps = append(res.Gaps, r)
			res.Proficiency[r] = ProficiencyMissing
			continue
		}
		res.Matched = append(res.Matched, r)
		res.Proficiency[r] = ProficiencyMatched
		res.MatchedBy[r] = by
	}

	res.MatchPercentage = Percentage(len(res.Matched), len(reqs))
	return res
}

func firstMatch(p Policy, required string, users []string) (string, bool) {
	for _, u := range users {
		if p.Matches(required, u) {
			return u, true
		}
	}
	return "", false
}

// Percentage is round(100*matched/total), 0 when total is 0.
func Percentage(matched, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(100 * float64(matched) / float64(total)))
}
