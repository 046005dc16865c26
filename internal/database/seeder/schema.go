package seeder

import (
	"context"
	"errors"
	"fmt"

	"skill-gap/internal/database"
)

var ErrSchemaMismatch = errors.New("schema mismatch")

type Table struct {
	Name    string
	Columns []string
}

var (
	SkillsTable     = Table{Name: "skills", Columns: []string{"id", "name", "category", "created_at"}}
	UserSkillsTable = Table{Name: "user_skills", Columns: []string{"user_id", "skill_id"}}
	AnalysesTable   = Table{Name: "skill_gap_analyses", Columns: []string{"id", "user_id", "payload", "created_at"}}
)

// RequiredTables lists every table the repositories read or write.
func RequiredTables() []Table {
	return []Table{SkillsTable, UserSkillsTable, AnalysesTable}
}

// CheckSchema reports every missing column across tables in one error.
func CheckSchema(ctx context.Context, q database.Querier, tables ...Table) error {
	if q == nil {
		return fmt.Errorf("nil db")
	}
	var errs []error
	for _, t := range tables {
		if t.Name == "" {
			return fmt.Errorf("empty table")
		}
		existing, err := columnsOf(ctx, q, t.Name)
		if err != nil {
			return fmt.Errorf("inspect %s: %w", t.Name, err)
		}
		for _, col := range t.Columns {
			if _, ok := existing[col]; !ok {
				errs = append(errs, fmt.Errorf("%w: missing column %s.%s", ErrSchemaMismatch, t.Name, col))
			}
		}
	}
	return errors.Join(errs...)
}

func columnsOf(ctx context.Context, q database.Querier, table string) (map[string]struct{}, error) {
	rows, err := q.Query(
		ctx,
		`SELECT column_name FROM information_schema.columns WHERE table_schema='public' AND table_name=$1`,
		table,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	existing := map[string]struct{}{}
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, err
		}
		existing[c] = struct{}{}
	}
	return existing, rows.Err()
}
