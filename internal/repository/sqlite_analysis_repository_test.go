package repository

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"skill-gap/internal/domain/analysis"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestSQLite(t *testing.T) *SQLiteAnalysisRepository {
	t.Helper()
	repo, err := OpenSQLiteAnalysisRepository(context.Background(), filepath.Join(t.TempDir(), "nested", "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

func TestSQLiteAnalysisRepository_SaveAndList(t *testing.T) {
	repo := openTestSQLite(t)
	ctx := context.Background()
	userID := uuid.New()
	base := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	first := analysis.Result{
		ID:               uuid.New(),
		RequiredSkills:   []string{"React", "AWS"},
		Matched:          []string{"React"},
		Gaps:             []string{"AWS"},
		MatchPercentage:  50,
		SkillProficiency: map[string]int{"React": 80, "AWS": 0},
		JobTitle:         "Frontend Engineer",
		Timestamp:        base,
	}
	second := analysis.Result{ID: uuid.New(), Gaps: []string{"Docker"}, Timestamp: base.Add(500 * time.Millisecond)}
	third := analysis.Result{ID: uuid.New(), Timestamp: base.Add(2 * time.Second)}

	for _, r := range []analysis.Result{first, second, third} {
		require.NoError(t, repo.SaveAnalysis(ctx, userID, r))
	}
	require.NoError(t, repo.SaveAnalysis(ctx, uuid.New(), analysis.Result{ID: uuid.New(), Timestamp: base}))

	got, err := repo.ListAnalyses(ctx, userID, 0)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, third.ID, got[0].ID)
	assert.Equal(t, second.ID, got[1].ID)
	assert.Equal(t, first.ID, got[2].ID)

	assert.Equal(t, first.Gaps, got[2].Gaps)
	assert.Equal(t, first.SkillProficiency, got[2].SkillProficiency)
	assert.Equal(t, "Frontend Engineer", got[2].JobTitle)
	assert.True(t, first.Timestamp.Equal(got[2].Timestamp))

	limited, err := repo.ListAnalyses(ctx, userID, 1)
	require.NoError(t, err)
	require.Len(t, limited, 1)
	assert.Equal(t, third.ID, limited[0].ID)
}

func TestSQLiteAnalysisRepository_SaveIsIdempotent(t *testing.T) {
	repo := openTestSQLite(t)
	ctx := context.Background()
	userID := uuid.New()
	res := analysis.Result{ID: uuid.New(), Timestamp: time.Now()}

	require.NoError(t, repo.SaveAnalysis(ctx, userID, res))
	require.NoError(t, repo.SaveAnalysis(ctx, userID, res))

	got, err := repo.ListAnalyses(ctx, userID, 10)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestSQLiteAnalysisRepository_EmptyHistory(t *testing.T) {
	repo := openTestSQLite(t)

	got, err := repo.ListAnalyses(context.Background(), uuid.New(), 10)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestStaticProfile(t *testing.T) {
	p := NewStaticProfile(" react, ,Node.js ,aws")

	skills, err := p.FetchUserSkills(context.Background(), uuid.Nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"react", "Node.js", "aws"}, skills)

	_, err = NewStaticProfile("").FetchUserSkills(context.Background(), uuid.Nil)
	assert.ErrorIs(t, err, ErrProfileUnavailable)
}
