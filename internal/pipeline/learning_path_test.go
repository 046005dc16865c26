package pipeline

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"skill-gap/internal/domain/learning"
	"skill-gap/internal/domain/skill"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubProvider struct {
	mu     sync.Mutex
	calls  []string
	fail   map[string]error
	panics map[string]bool
	block  bool
}

func (p *stubProvider) FetchResources(ctx context.Context, name string) ([]learning.Resource, error) {
	p.mu.Lock()
	p.calls = append(p.calls, name)
	p.mu.Unlock()

	if p.panics[name] {
		panic("provider exploded")
	}
	if p.block {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	if err := p.fail[name]; err != nil {
		return nil, err
	}
	return []learning.Resource{{Title: name + " docs", URL: "https://example.com/" + name, Type: "documentation"}}, nil
}

func fixedHours(name, category string, d learning.Difficulty) int {
	if d == learning.DifficultyAdvanced {
		return 30
	}
	return 10
}

func newTestBuilder(p ResourceProvider, cfg LearningPathConfig) *LearningPathBuilder {
	if cfg.Estimator == nil {
		cfg.Estimator = fixedHours
	}
	b := NewLearningPathBuilder(skill.DefaultTaxonomy(), p, cfg, nil)
	b.now = func() time.Time { return time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC) }
	return b
}

func TestBuild_ProviderFailureIsIsolated(t *testing.T) {
	p := &stubProvider{fail: map[string]error{"AWS": errors.New("upstream down")}}
	b := newTestBuilder(p, LearningPathConfig{Workers: 2})

	path := b.Build(context.Background(), []string{"AWS", "Node.js"})

	require.Len(t, path.Entries, 2)
	aws, node := path.Entries[0], path.Entries[1]

	assert.Equal(t, "AWS", aws.Skill)
	assert.Empty(t, aws.Resources)
	assert.NotNil(t, aws.Resources)
	assert.Equal(t, "upstream down", aws.ResourceError)
	assert.Equal(t, "DevOps", aws.Category)
	assert.Equal(t, learning.DifficultyAdvanced, aws.Difficulty)

	assert.Equal(t, "Node.js", node.Skill)
	assert.Len(t, node.Resources, 1)
	assert.Empty(t, node.ResourceError)
	assert.Equal(t, "Backend", node.Category)
	assert.Equal(t, []string{"JavaScript"}, node.Prerequisites)

	assert.Equal(t, []string{"AWS"}, path.FailedSkills)
	assert.Equal(t, 40, path.TotalHours)
	assert.Equal(t, time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC), path.GeneratedAt)
}

func TestBuild_PreservesOrderAndDeduplicates(t *testing.T) {
	p := &stubProvider{}
	b := newTestBuilder(p, LearningPathConfig{Workers: 4})

	gaps := []string{"Kubernetes", "React", "react", "", "COBOL", "Docker", "  "}
	path := b.Build(context.Background(), gaps)

	var got []string
	for _, e := range path.Entries {
		got = append(got, e.Skill)
	}
	assert.Equal(t, []string{"Kubernetes", "React", "COBOL", "Docker"}, got)
	assert.Len(t, p.calls, 4)
	assert.Equal(t, skill.CategoryOther, path.Entries[2].Category)
	assert.Empty(t, path.FailedSkills)
}

func TestBuild_EmptyGaps(t *testing.T) {
	p := &stubProvider{}
	path := newTestBuilder(p, LearningPathConfig{}).Build(context.Background(), nil)

	assert.NotNil(t, path.Entries)
	assert.Empty(t, path.Entries)
	assert.NotNil(t, path.FailedSkills)
	assert.Zero(t, path.TotalHours)
	assert.Empty(t, p.calls)
}

func TestBuild_ProviderPanicIsRecovered(t *testing.T) {
	p := &stubProvider{panics: map[string]bool{"React": true}}
	b := newTestBuilder(p, LearningPathConfig{Workers: 2})

	path := b.Build(context.Background(), []string{"React", "Docker"})

	require.Len(t, path.Entries, 2)
	assert.Contains(t, path.Entries[0].ResourceError, "panic")
	assert.Empty(t, path.Entries[0].Resources)
	assert.Len(t, path.Entries[1].Resources, 1)
	assert.Equal(t, []string{"React"}, path.FailedSkills)
}

func TestBuild_FetchTimeout(t *testing.T) {
	p := &stubProvider{block: true}
	b := newTestBuilder(p, LearningPathConfig{Workers: 2, FetchTimeout: 20 * time.Millisecond})

	path := b.Build(context.Background(), []string{"React", "Docker"})

	require.Len(t, path.Entries, 2)
	assert.Equal(t, []string{"React", "Docker"}, path.FailedSkills)
	for _, e := range path.Entries {
		assert.Empty(t, e.Resources)
		assert.NotEmpty(t, e.ResourceError)
	}
}

func TestBuild_CancelledContext(t *testing.T) {
	p := &stubProvider{}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	path := newTestBuilder(p, LearningPathConfig{Workers: 1}).Build(ctx, []string{"React", "Docker", "AWS"})

	require.Len(t, path.Entries, 3)
	for _, e := range path.Entries {
		assert.NotNil(t, e.Resources)
		assert.NotEmpty(t, e.EstimatedHours)
	}
	assert.Equal(t, 50, path.TotalHours)
}

func TestBuild_WithoutProvider(t *testing.T) {
	path := newTestBuilder(nil, LearningPathConfig{}).Build(context.Background(), []string{"React"})

	require.Len(t, path.Entries, 1)
	assert.Empty(t, path.Entries[0].Resources)
	assert.Empty(t, path.FailedSkills)
}

func TestBuild_DefaultEstimatorIsDeterministic(t *testing.T) {
	b := NewLearningPathBuilder(nil, nil, LearningPathConfig{}, nil)

	a := b.Build(context.Background(), []string{"AWS", "Node.js"})
	c := b.Build(context.Background(), []string{"AWS", "Node.js"})

	assert.Equal(t, a.TotalHours, c.TotalHours)
	assert.Equal(t, a.Entries[0].EstimatedHours, c.Entries[0].EstimatedHours)
}
