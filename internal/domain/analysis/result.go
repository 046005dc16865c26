package analysis

import (
	"time"

	"github.com/google/uuid"
)

const DegradedProfileUnavailable = "profile_unavailable"

// Result is the immutable outcome of one analysis. Matched and Gaps partition
// RequiredSkills.
type Result struct {
	ID               uuid.UUID         `json:"id"`
	RequestID        uint64            `json:"request_id"`
	RequiredSkills   []string          `json:"required_skills"`
	UserSkills       []string          `json:"user_skills"`
	Matched          []string          `json:"matched"`
	Gaps             []string          `json:"gaps"`
	MatchPercentage  int               `json:"match_percentage"`
	SkillProficiency map[string]int    `json:"skill_proficiency"`
	MatchedBy        map[string]string `json:"matched_by"`
	EmbeddedMatches  []string          `json:"embedded_matches"`
	JobTitle         string            `json:"job_title"`
	Company          string            `json:"company"`
	SourceURL        string            `json:"source_url,omitempty"`
	MatchPolicy      string            `json:"match_policy"`
	Degraded         bool              `json:"degraded"`
	DegradedReasons  []string          `json:"degraded_reasons"`
	Timestamp        time.Time         `json:"timestamp"`
}

// Clone returns a deep copy so callers cannot mutate stored history.
func (r Result) Clone() Result {
	out := r
	out.RequiredSkills = cloneStrings(r.RequiredSkills)
	out.UserSkills = cloneStrings(r.UserSkills)
	out.Matched = cloneStrings(r.Matched)
	out.Gaps = cloneStrings(r.Gaps)
	out.EmbeddedMatches = cloneStrings(r.EmbeddedMatches)
	out.DegradedReasons = cloneStrings(r.DegradedReasons)
	if r.SkillProficiency != nil {
		out.SkillProficiency = make(map[string]int, len(r.SkillProficiency))
		for k, v := range r.SkillProficiency {
			out.SkillProficiency[k] = v
		}
	}
	if r.MatchedBy != nil {
		out.MatchedBy = make(map[string]string, len(r.MatchedBy))
		for k, v := range r.MatchedBy {
			out.MatchedBy[k] = v
		}
	}
	return out
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
