package seeder

import (
	"context"
	"fmt"

	"skill-gap/internal/database"
	"skill-gap/internal/domain/skill"
)

// SkillsSeeder inserts every taxonomy entry into skills(name, category) so
// user profiles can reference canonical names.
type SkillsSeeder struct {
	Taxonomy *skill.Taxonomy
}

func (SkillsSeeder) Name() string { return "skills" }

func (s SkillsSeeder) Run(ctx context.Context, db database.DB) error {
	if err := CheckSchema(ctx, db, SkillsTable); err != nil {
		return err
	}

	t := s.Taxonomy
	if t == nil {
		t = skill.DefaultTaxonomy()
	}

	return database.WithTx(ctx, db, func(q database.Querier) error {
		for _, c := range t.Categories() {
			for _, e := range c.Entries {
				_, err := q.Exec(
					ctx,
					`INSERT INTO skills (id, name, category) VALUES (gen_random_uuid(), $1, $2) ON CONFLICT (name) DO NOTHING`,
					e.Name,
					c.Name,
				)
				if err != nil {
					return fmt.Errorf("insert %s: %w", e.Name, err)
				}
			}
		}
		return nil
	})
}
