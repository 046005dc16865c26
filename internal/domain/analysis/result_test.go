package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResult_CloneIsDeep(t *testing.T) {
	orig := Result{
		RequiredSkills:   []string{"React", "AWS"},
		Matched:          []string{"React"},
		Gaps:             []string{"AWS"},
		SkillProficiency: map[string]int{"React": 80, "AWS": 0},
		MatchedBy:        map[string]string{"React": "react"},
		DegradedReasons:  []string{DegradedProfileUnavailable},
	}

	c := orig.Clone()
	c.Gaps[0] = "changed"
	c.SkillProficiency["AWS"] = 99
	c.MatchedBy["React"] = "changed"
	c.DegradedReasons[0] = "changed"

	assert.Equal(t, "AWS", orig.Gaps[0])
	assert.Equal(t, 0, orig.SkillProficiency["AWS"])
	assert.Equal(t, "react", orig.MatchedBy["React"])
	assert.Equal(t, DegradedProfileUnavailable, orig.DegradedReasons[0])
	assert.Nil(t, Result{}.Clone().Gaps)
}
