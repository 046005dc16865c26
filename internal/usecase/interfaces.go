package usecase

import (
	"context"

	"skill-gap/internal/domain/analysis"

	"github.com/google/uuid"
)

type AnalysisResult = analysis.Result

type PostingFetcher interface {
	FetchPosting(ctx context.Context, url string) (string, error)
}

type SkillProfile interface {
	FetchUserSkills(ctx context.Context, userID uuid.UUID) ([]string, error)
}

// ProfileStore is a SkillProfile the user can add skills to.
type ProfileStore interface {
	SkillProfile
	AddByName(ctx context.Context, userID uuid.UUID, name string) error
}

type AnalysisStore interface {
	SaveAnalysis(ctx context.Context, userID uuid.UUID, result AnalysisResult) error
	ListAnalyses(ctx context.Context, userID uuid.UUID, limit int) ([]AnalysisResult, error)
}

// Notifier must not block the caller.
type Notifier interface {
	AnalysisCompleted(userID uuid.UUID, result AnalysisResult)
}
