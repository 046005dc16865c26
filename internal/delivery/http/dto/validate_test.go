package dto

import (
	"strings"
	"testing"

	"skill-gap/internal/domain/skill"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	assert.Nil(t, Validate(AnalyzeRequest{Text: "React"}))
	assert.Nil(t, Validate(AnalyzeRequest{URL: "https://jobs.example.com/1"}))

	errs := Validate(AnalyzeRequest{URL: "jobs"})
	require.Len(t, errs, 1)
	assert.Equal(t, "AnalyzeRequest.url", errs[0].Field)
	assert.Equal(t, "url", errs[0].Rule)

	errs = Validate(LearningPathRequest{Skills: []string{strings.Repeat("x", 101)}})
	require.Len(t, errs, 1)
	assert.Equal(t, "max", errs[0].Rule)
}

func TestNewTaxonomyResponse(t *testing.T) {
	out := NewTaxonomyResponse([]skill.Category{
		{Name: "DevOps", Entries: []skill.Entry{{Name: "Kubernetes", Aliases: []string{"k8s"}}, {Name: "AWS"}}},
	})

	require.Len(t, out, 1)
	assert.Equal(t, []string{"k8s"}, out[0].Entries[0].Aliases)
	assert.NotNil(t, out[0].Entries[1].Aliases)
}
