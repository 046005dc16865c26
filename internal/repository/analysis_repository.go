package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"skill-gap/internal/database"
	"skill-gap/internal/domain/analysis"

	"github.com/google/uuid"
)

const defaultListLimit = 50

type AnalysisRepository interface {
	SaveAnalysis(ctx context.Context, userID uuid.UUID, result analysis.Result) error
	ListAnalyses(ctx context.Context, userID uuid.UUID, limit int) ([]analysis.Result, error)
}

// PostgresAnalysisRepository stores each result as a JSONB payload so a
// reload returns it verbatim.
type PostgresAnalysisRepository struct {
	db database.DB
}

func NewPostgresAnalysisRepository(db database.DB) *PostgresAnalysisRepository {
	return &PostgresAnalysisRepository{db: db}
}

func (r *PostgresAnalysisRepository) SaveAnalysis(ctx context.Context, userID uuid.UUID, result analysis.Result) error {
	payload, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("encode analysis: %w", err)
	}
	id := result.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	_, err = r.db.Exec(ctx,
		`INSERT INTO skill_gap_analyses (id, user_id, payload, created_at)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (id) DO NOTHING`,
		id, userID, payload, result.Timestamp.UTC(),
	)
	return err
}

func (r *PostgresAnalysisRepository) ListAnalyses(ctx context.Context, userID uuid.UUID, limit int) ([]analysis.Result, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	rows, err := r.db.Query(ctx,
		`SELECT payload
		 FROM skill_gap_analyses
		 WHERE user_id = $1
		 ORDER BY created_at DESC
		 LIMIT $2`,
		userID, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]analysis.Result, 0)
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, err
		}
		var res analysis.Result
		if err := json.Unmarshal(payload, &res); err != nil {
			return nil, fmt.Errorf("decode analysis: %w", err)
		}
		out = append(out, res)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
