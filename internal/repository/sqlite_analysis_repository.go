package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"skill-gap/internal/domain/analysis"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// Fixed-width so created_at sorts as text.
const sqliteTimeLayout = "2006-01-02T15:04:05.000000000Z"

// SQLiteAnalysisRepository is the local history used by the CLI. It has the
// same columns as the Postgres table, stored as TEXT.
type SQLiteAnalysisRepository struct {
	db *sql.DB
}

func OpenSQLiteAnalysisRepository(ctx context.Context, path string) (*SQLiteAnalysisRepository, error) {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return nil, fmt.Errorf("sqlite: mkdir %s: %w", dir, err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("sqlite: open %s: %w", path, err)
	}
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS skill_gap_analyses (
		id         TEXT PRIMARY KEY,
		user_id    TEXT NOT NULL,
		payload    TEXT NOT NULL,
		created_at TEXT NOT NULL
	)`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlite: init schema: %w", err)
	}
	return &SQLiteAnalysisRepository{db: db}, nil
}

func (r *SQLiteAnalysisRepository) Close() error {
	if r == nil || r.db == nil {
		return nil
	}
	return r.db.Close()
}

func (r *SQLiteAnalysisRepository) SaveAnalysis(ctx context.Context, userID uuid.UUID, result analysis.Result) error {
	payload, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("encode analysis: %w", err)
	}
	id := result.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	_, err = r.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO skill_gap_analyses (id, user_id, payload, created_at) VALUES (?, ?, ?, ?)`,
		id.String(), userID.String(), string(payload), result.Timestamp.UTC().Format(sqliteTimeLayout),
	)
	return err
}

func (r *SQLiteAnalysisRepository) ListAnalyses(ctx context.Context, userID uuid.UUID, limit int) ([]analysis.Result, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	rows, err := r.db.QueryContext(ctx,
		`SELECT payload FROM skill_gap_analyses WHERE user_id = ? ORDER BY created_at DESC, rowid DESC LIMIT ?`,
		userID.String(), limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]analysis.Result, 0)
	for rows.Next() {
		var payload string
		if err := rows.Scan(&payload); err != nil {
			return nil, err
		}
		var res analysis.Result
		if err := json.Unmarshal([]byte(payload), &res); err != nil {
			return nil, fmt.Errorf("decode analysis: %w", err)
		}
		out = append(out, res)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
