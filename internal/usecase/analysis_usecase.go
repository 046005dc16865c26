package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"skill-gap/internal/domain/analysis"
	"skill-gap/internal/domain/matching"
	"skill-gap/internal/domain/metadata"
	"skill-gap/internal/domain/skill"
	"skill-gap/internal/pipeline"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

type AnalyzeInput struct {
	Text    string
	URL     string
	Persist *bool
}

type AnalysisUsecase interface {
	Analyze(ctx context.Context, userID uuid.UUID, in AnalyzeInput) (AnalysisResult, error)
	History(ctx context.Context, userID uuid.UUID, limit int) ([]AnalysisResult, error)
	Current(userID uuid.UUID) (SessionState, *AnalysisResult)
	GenerateLearningPath(ctx context.Context, gaps []string) pipeline.LearningPath
	LearningPathForCurrent(ctx context.Context, userID uuid.UUID) (pipeline.LearningPath, error)
}

type AnalysisConfig struct {
	FetchTimeout   time.Duration
	ProfileTimeout time.Duration
	StoreTimeout   time.Duration
	HistoryLimit   int
	Persist        bool
}

type AnalysisDeps struct {
	Extractor *skill.Extractor
	Matcher   *matching.Matcher
	Paths     *pipeline.LearningPathBuilder
	Fetcher   PostingFetcher
	Profile   SkillProfile
	Store     AnalysisStore
	Notifier  Notifier
}

type Analysis struct {
	extractor *skill.Extractor
	matcher   *matching.Matcher
	paths     *pipeline.LearningPathBuilder
	fetcher   PostingFetcher
	profile   SkillProfile
	store     AnalysisStore
	notifier  Notifier

	cfg      AnalysisConfig
	log      *log.Logger
	now      func() time.Time
	sessions *sessions
}

func NewAnalysisUsecase(deps AnalysisDeps, cfg AnalysisConfig, logger *log.Logger) *Analysis {
	if logger == nil {
		logger = log.Default()
	}
	if deps.Extractor == nil {
		deps.Extractor = skill.NewExtractor(nil)
	}
	if deps.Matcher == nil {
		deps.Matcher = matching.NewMatcher(nil)
	}
	if deps.Paths == nil {
		deps.Paths = pipeline.NewLearningPathBuilder(deps.Extractor.Taxonomy(), nil, pipeline.LearningPathConfig{}, logger)
	}
	if cfg.FetchTimeout <= 0 {
		cfg.FetchTimeout = 15 * time.Second
	}
	if cfg.ProfileTimeout <= 0 {
		cfg.ProfileTimeout = 5 * time.Second
	}
	if cfg.StoreTimeout <= 0 {
		cfg.StoreTimeout = 5 * time.Second
	}
	if cfg.HistoryLimit <= 0 {
		cfg.HistoryLimit = 50
	}
	return &Analysis{
		extractor: deps.Extractor,
		matcher:   deps.Matcher,
		paths:     deps.Paths,
		fetcher:   deps.Fetcher,
		profile:   deps.Profile,
		store:     deps.Store,
		notifier:  deps.Notifier,
		cfg:       cfg,
		log:       logger,
		now:       time.Now,
		sessions:  newSessions(cfg.HistoryLimit),
	}
}

// Analyze runs one analysis for userID. A result that finishes after a newer
// request for the same user has started is dropped and ErrSuperseded returned.
func (u *Analysis) Analyze(ctx context.Context, userID uuid.UUID, in AnalyzeInput) (AnalysisResult, error) {
	start := time.Now()
	id := u.sessions.begin(userID)

	text, userSkills, reasons, err := u.gather(ctx, userID, in)
	if err != nil {
		u.sessions.abandon(userID)
		var fe *PostingFetchError
		if errors.As(err, &fe) {
			u.log.Printf("analysis=run status=fetch_error request_id=%d user_id=%s %s", id, userID, fe.Detail())
		} else {
			u.log.Printf("analysis=run status=error request_id=%d user_id=%s err=%v", id, userID, err)
		}
		return AnalysisResult{}, err
	}

	hits := u.extractor.ExtractHits(text)
	required := make([]string, 0, len(hits))
	for _, h := range hits {
		required = append(required, h.Skill)
	}
	match := u.matcher.Calculate(required, userSkills)
	meta := metadata.Extract(text)

	res := AnalysisResult{
		ID:               uuid.New(),
		RequestID:        id,
		RequiredSkills:   match.RequiredSkills,
		UserSkills:       userSkills,
		Matched:          match.Matched,
		Gaps:             match.Gaps,
		MatchPercentage:  match.MatchPercentage,
		SkillProficiency: match.Proficiency,
		MatchedBy:        match.MatchedBy,
		EmbeddedMatches:  skill.Embedded(hits),
		JobTitle:         meta.Title,
		Company:          meta.Company,
		MatchPolicy:      match.Policy,
		Degraded:         len(reasons) > 0,
		DegradedReasons:  reasons,
		Timestamp:        u.now().UTC(),
	}
	if strings.TrimSpace(in.Text) == "" {
		res.SourceURL = strings.TrimSpace(in.URL)
	}

	if !u.sessions.commit(userID, id, res) {
		u.log.Printf("analysis=run status=superseded request_id=%d user_id=%s", id, userID)
		return AnalysisResult{}, ErrSuperseded
	}

	if u.shouldPersist(in) {
		u.persist(ctx, userID, res)
	}
	if u.notifier != nil {
		u.notifier.AnalysisCompleted(userID, res.Clone())
	}

	u.log.Printf("analysis=run status=ok request_id=%d user_id=%s required=%d gaps=%d match=%d policy=%s degraded=%t duration=%s",
		id, userID, len(res.RequiredSkills), len(res.Gaps), res.MatchPercentage, u.matcher.PolicyName(), res.Degraded, time.Since(start))
	return res, nil
}

// gather resolves the posting text and the user's skills concurrently. Only a
// posting failure is returned as an error; a profile failure becomes a
// degraded reason.
func (u *Analysis) gather(ctx context.Context, userID uuid.UUID, in AnalyzeInput) (string, []string, []string, error) {
	var (
		text       string
		userSkills []string
		profileErr error
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		t, err := u.postingText(gctx, in)
		if err != nil {
			return err
		}
		text = t
		return nil
	})
	g.Go(func() error {
		userSkills, profileErr = u.userSkills(gctx, userID)
		return nil
	})
	if err := g.Wait(); err != nil {
		return "", nil, nil, err
	}

	reasons := make([]string, 0)
	if profileErr != nil {
		u.log.Printf("analysis=profile status=unavailable user_id=%s err=%v", userID, profileErr)
		userSkills = []string{}
		reasons = append(reasons, analysis.DegradedProfileUnavailable)
	}
	return text, userSkills, reasons, nil
}

func (u *Analysis) postingText(ctx context.Context, in AnalyzeInput) (string, error) {
	if strings.TrimSpace(in.Text) != "" {
		return in.Text, nil
	}
	url := strings.TrimSpace(in.URL)
	if url == "" {
		return "", ErrEmptyPosting
	}
	if u.fetcher == nil {
		return "", &PostingFetchError{URL: url, Err: ErrFetcherUnavailable}
	}

	fctx, cancel := context.WithTimeout(ctx, u.cfg.FetchTimeout)
	defer cancel()
	text, err := u.fetcher.FetchPosting(fctx, url)
	if err != nil {
		return "", &PostingFetchError{URL: url, Err: err}
	}
	if strings.TrimSpace(text) == "" {
		return "", &PostingFetchError{URL: url, Err: ErrEmptyPosting}
	}
	return text, nil
}

func (u *Analysis) userSkills(ctx context.Context, userID uuid.UUID) ([]string, error) {
	if u.profile == nil {
		return nil, errors.New("skill profile not configured")
	}
	pctx, cancel := context.WithTimeout(ctx, u.cfg.ProfileTimeout)
	defer cancel()
	skills, err := u.profile.FetchUserSkills(pctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(skills))
	for _, s := range skills {
		if strings.TrimSpace(s) != "" {
			out = append(out, s)
		}
	}
	return out, nil
}

func (u *Analysis) shouldPersist(in AnalyzeInput) bool {
	if u.store == nil {
		return false
	}
	if in.Persist != nil {
		return *in.Persist
	}
	return u.cfg.Persist
}

func (u *Analysis) persist(ctx context.Context, userID uuid.UUID, res AnalysisResult) {
	sctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), u.cfg.StoreTimeout)
	defer cancel()
	if err := u.store.SaveAnalysis(sctx, userID, res); err != nil {
		u.log.Printf("analysis=persist status=error request_id=%d user_id=%s err=%v", res.RequestID, userID, err)
	}
}

// History returns the most recent results first. An empty in-memory history is
// reloaded once from the store.
func (u *Analysis) History(ctx context.Context, userID uuid.UUID, limit int) ([]AnalysisResult, error) {
	if limit < 0 {
		return nil, ErrInvalidInput
	}
	items, loaded := u.sessions.history(userID, limit)
	if len(items) > 0 || loaded || u.store == nil {
		return items, nil
	}

	sctx, cancel := context.WithTimeout(ctx, u.cfg.StoreTimeout)
	defer cancel()
	stored, err := u.store.ListAnalyses(sctx, userID, u.cfg.HistoryLimit)
	if err != nil {
		u.log.Printf("analysis=history status=error user_id=%s err=%v", userID, err)
		return nil, ErrInternal
	}
	u.sessions.restore(userID, stored)
	items, _ = u.sessions.history(userID, limit)
	return items, nil
}

func (u *Analysis) Current(userID uuid.UUID) (SessionState, *AnalysisResult) {
	return u.sessions.snapshot(userID)
}

func (u *Analysis) GenerateLearningPath(ctx context.Context, gaps []string) pipeline.LearningPath {
	return u.paths.Build(ctx, gaps)
}

// LearningPathForCurrent builds a path from the gaps of the user's current
// analysis.
func (u *Analysis) LearningPathForCurrent(ctx context.Context, userID uuid.UUID) (pipeline.LearningPath, error) {
	_, cur := u.sessions.snapshot(userID)
	if cur == nil {
		return pipeline.LearningPath{}, ErrNoAnalysis
	}
	return u.paths.Build(ctx, cur.Gaps), nil
}
