package seeder

import "skill-gap/internal/domain/skill"

func Defaults(t *skill.Taxonomy) []Seeder {
	return []Seeder{
		SkillsSeeder{Taxonomy: t},
	}
}
