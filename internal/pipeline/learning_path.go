package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"skill-gap/internal/domain/learning"
	"skill-gap/internal/domain/skill"
)

var ErrResourcesNotFetched = errors.New("resource fetch did not run")

type ResourceProvider interface {
	FetchResources(ctx context.Context, skillName string) ([]learning.Resource, error)
}

type LearningPathEntry struct {
	Skill          string              `json:"skill"`
	Category       string              `json:"category"`
	Difficulty     learning.Difficulty `json:"difficulty"`
	Prerequisites  []string            `json:"prerequisites"`
	Resources      []learning.Resource `json:"resources"`
	EstimatedHours int                 `json:"estimated_hours"`
	ResourceError  string              `json:"resource_error,omitempty"`
}

type LearningPath struct {
	Entries      []LearningPathEntry `json:"entries"`
	FailedSkills []string            `json:"failed_skills"`
	TotalHours   int                 `json:"total_hours"`
	GeneratedAt  time.Time           `json:"generated_at"`
}

type LearningPathConfig struct {
	Workers      int
	RateLimit    int
	FetchTimeout time.Duration
	Estimator    learning.HourEstimator
}

type LearningPathBuilder struct {
	taxonomy *skill.Taxonomy
	provider ResourceProvider
	cfg      LearningPathConfig
	log      *log.Logger
	now      func() time.Time
}

func NewLearningPathBuilder(t *skill.Taxonomy, provider ResourceProvider, cfg LearningPathConfig, logger *log.Logger) *LearningPathBuilder {
	if logger == nil {
		logger = log.Default()
	}
	if t == nil {
		t = skill.DefaultTaxonomy()
	}
	if cfg.Workers <= 0 {
		cfg.Workers = 4
	}
	if cfg.FetchTimeout <= 0 {
		cfg.FetchTimeout = 10 * time.Second
	}
	if cfg.Estimator == nil {
		cfg.Estimator = learning.EstimateHours
	}
	return &LearningPathBuilder{taxonomy: t, provider: provider, cfg: cfg, log: logger, now: time.Now}
}

// Build returns one entry per distinct gap skill, in input order. Resource
// failures are recorded on the affected entry and never abort the others.
func (b *LearningPathBuilder) Build(ctx context.Context, gaps []string) LearningPath {
	start := time.Now()
	entries := b.describe(gaps)
	path := LearningPath{
		Entries:      entries,
		FailedSkills: make([]string, 0),
		GeneratedAt:  b.now().UTC(),
	}
	if len(entries) == 0 {
		return path
	}

	errs := b.fetchAll(ctx, entries)
	for i := range entries {
		if errs[i] != nil {
			entries[i].Resources = []learning.Resource{}
			entries[i].ResourceError = errs[i].Error()
			path.FailedSkills = append(path.FailedSkills, entries[i].Skill)
		}
		path.TotalHours += entries[i].EstimatedHours
	}

	b.log.Printf("pipeline=learning_path status=ok skills=%d failed=%d duration=%s", len(entries), len(path.FailedSkills), time.Since(start))
	return path
}

func (b *LearningPathBuilder) describe(gaps []string) []LearningPathEntry {
	out := make([]LearningPathEntry, 0, len(gaps))
	seen := map[string]struct{}{}
	for _, g := range gaps {
		key := skill.Normalize(g)
		if key == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}

		category, _ := b.taxonomy.CategoryOf(g)
		difficulty := learning.DifficultyOf(g)
		out = append(out, LearningPathEntry{
			Skill:          g,
			Category:       category,
			Difficulty:     difficulty,
			Prerequisites:  learning.PrerequisitesOf(g),
			Resources:      []learning.Resource{},
			EstimatedHours: b.cfg.Estimator(g, category, difficulty),
		})
	}
	return out
}

func (b *LearningPathBuilder) fetchAll(ctx context.Context, entries []LearningPathEntry) []error {
	errs := make([]error, len(entries))
	if b.provider == nil {
		return errs
	}
	for i := range errs {
		errs[i] = ErrResourcesNotFetched
	}

	workers := b.cfg.Workers
	if workers > len(entries) {
		workers = len(entries)
	}
	pool := NewWorkerPool(workers, len(entries))
	pool.SetRateLimit(b.cfg.RateLimit)
	results := pool.Run(ctx)

	for i := range entries {
		i := i
		name := entries[i].Skill
		pool.Submit(func(ctx context.Context) Result {
			res, err := b.fetchOne(ctx, name)
			if err != nil {
				errs[i] = err
				b.log.Printf("pipeline=learning_path status=error skill=%q err=%v", name, err)
				return Result{Index: i, Err: err}
			}
			if res == nil {
				res = []learning.Resource{}
			}
			entries[i].Resources = res
			errs[i] = nil
			return Result{Index: i}
		})
	}
	pool.Close()

	for range results {
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		for i := range errs {
			if errs[i] == ErrResourcesNotFetched {
				errs[i] = fmt.Errorf("%w: %v", ErrResourcesNotFetched, ctxErr)
			}
		}
	}
	return errs
}

func (b *LearningPathBuilder) fetchOne(ctx context.Context, name string) (res []learning.Resource, err error) {
	defer func() {
		if r := recover(); r != nil {
			res, err = nil, fmt.Errorf("resource provider panic: %v", r)
		}
	}()
	callCtx, cancel := context.WithTimeout(ctx, b.cfg.FetchTimeout)
	defer cancel()
	return b.provider.FetchResources(callCtx, name)
}
