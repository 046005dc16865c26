package app

import (
	"log"

	"skill-gap/internal/config"
	"skill-gap/internal/domain/matching"
	"skill-gap/internal/domain/skill"
	"skill-gap/internal/infrastructure/resources"
	"skill-gap/internal/pipeline"
	"skill-gap/internal/scraper"
	"skill-gap/internal/usecase"
)

// AnalysisParts are the collaborators that differ between the server and the
// CLI. Nil parts are allowed.
type AnalysisParts struct {
	Fetcher  usecase.PostingFetcher
	Profile  usecase.SkillProfile
	Store    usecase.AnalysisStore
	Notifier usecase.Notifier
	Cache    resources.Cache
}

// NewResourceProvider picks the remote catalog when a base URL is configured
// and the offline link builder otherwise, cached when a cache is given.
func NewResourceProvider(cfg config.Config, cache resources.Cache, logger *log.Logger) resources.Provider {
	var base resources.Provider = resources.StaticProvider{}
	if cfg.LearningPath.ResourceBaseURL != "" {
		base = resources.NewHTTPProvider(cfg.LearningPath.ResourceBaseURL, cfg.LearningPath.ResourceRPS, cfg.Timeouts.Resource, cfg.Fetch.UserAgent)
	}
	if cache == nil {
		return base
	}
	return resources.NewCachedProvider(base, cache, cfg.LearningPath.ResourceCacheTTL, logger)
}

func BuildAnalysis(cfg config.Config, t *skill.Taxonomy, parts AnalysisParts, logger *log.Logger) (*usecase.Analysis, error) {
	if logger == nil {
		logger = log.Default()
	}
	if t == nil {
		t = skill.DefaultTaxonomy()
	}

	policy, err := matching.PolicyByName(cfg.Analysis.MatchPolicy, t)
	if err != nil {
		return nil, err
	}

	extractor := skill.NewExtractor(t, skill.WithWordBoundaries(cfg.Analysis.WordBoundaries))
	paths := pipeline.NewLearningPathBuilder(t, NewResourceProvider(cfg, parts.Cache, logger), pipeline.LearningPathConfig{
		Workers:      cfg.LearningPath.Workers,
		FetchTimeout: cfg.Timeouts.Resource,
	}, logger)

	fetcher := parts.Fetcher
	if fetcher == nil {
		fetcher = scraper.NewPostingFetcher(cfg.Fetch.UserAgent, cfg.Timeouts.Fetch, cfg.Fetch.Headless, logger)
	}

	return usecase.NewAnalysisUsecase(usecase.AnalysisDeps{
		Extractor: extractor,
		Matcher:   matching.NewMatcher(policy),
		Paths:     paths,
		Fetcher:   fetcher,
		Profile:   parts.Profile,
		Store:     parts.Store,
		Notifier:  parts.Notifier,
	}, usecase.AnalysisConfig{
		FetchTimeout:   cfg.Timeouts.Fetch,
		ProfileTimeout: cfg.Timeouts.Profile,
		StoreTimeout:   cfg.Timeouts.Store,
		HistoryLimit:   cfg.Analysis.HistoryLimit,
		Persist:        cfg.Analysis.Persist,
	}, logger), nil
}
