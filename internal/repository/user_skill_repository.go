package repository

import (
	"context"
	"errors"
	"strings"

	"skill-gap/internal/database"

	"github.com/google/uuid"
)

var ErrProfileUnavailable = errors.New("user skill profile unavailable")

type UserSkill struct {
	UserID    uuid.UUID
	SkillID   uuid.UUID
	SkillName string
	Category  string
}

type UserSkillRepository interface {
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]UserSkill, error)
	AddByName(ctx context.Context, userID uuid.UUID, name string) error
}

type PostgresUserSkillRepository struct {
	db database.DB
}

func NewPostgresUserSkillRepository(db database.DB) *PostgresUserSkillRepository {
	return &PostgresUserSkillRepository{db: db}
}

func (r *PostgresUserSkillRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]UserSkill, error) {
	rows, err := r.db.Query(ctx,
		`SELECT us.user_id, us.skill_id, s.name, s.category
		 FROM user_skills us
		 JOIN skills s ON s.id = us.skill_id
		 WHERE us.user_id = $1
		 ORDER BY s.name ASC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]UserSkill, 0)
	for rows.Next() {
		var us UserSkill
		if err := rows.Scan(&us.UserID, &us.SkillID, &us.SkillName, &us.Category); err != nil {
			return nil, err
		}
		out = append(out, us)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// AddByName links a seeded skill to the user. Unknown names are ignored.
func (r *PostgresUserSkillRepository) AddByName(ctx context.Context, userID uuid.UUID, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil
	}
	_, err := r.db.Exec(ctx,
		`INSERT INTO user_skills (user_id, skill_id)
		 SELECT $1, s.id FROM skills s WHERE lower(s.name) = lower($2)
		 ON CONFLICT (user_id, skill_id) DO NOTHING`,
		userID, name,
	)
	return err
}

// FetchUserSkills returns the user's skill names for gap matching.
func (r *PostgresUserSkillRepository) FetchUserSkills(ctx context.Context, userID uuid.UUID) ([]string, error) {
	if r == nil || r.db == nil {
		return nil, ErrProfileUnavailable
	}
	items, err := r.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.SkillName)
	}
	return out, nil
}
