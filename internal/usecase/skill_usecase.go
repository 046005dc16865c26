package usecase

import (
	"strings"

	"skill-gap/internal/domain/skill"
)

type ExtractOutput struct {
	Skills   []string    `json:"skills"`
	Embedded []string    `json:"embedded"`
	Hits     []skill.Hit `json:"hits"`
}

type SkillUsecase interface {
	Taxonomy() []skill.Category
	Extract(text string) (ExtractOutput, error)
}

type Skill struct {
	extractor *skill.Extractor
}

func NewSkillUsecase(extractor *skill.Extractor) *Skill {
	if extractor == nil {
		extractor = skill.NewExtractor(nil)
	}
	return &Skill{extractor: extractor}
}

func (u *Skill) Taxonomy() []skill.Category {
	return u.extractor.Taxonomy().Categories()
}

func (u *Skill) Extract(text string) (ExtractOutput, error) {
	if strings.TrimSpace(text) == "" {
		return ExtractOutput{}, ErrEmptyPosting
	}
	hits := u.extractor.ExtractHits(text)
	out := ExtractOutput{
		Skills:   make([]string, 0, len(hits)),
		Embedded: skill.Embedded(hits),
		Hits:     hits,
	}
	for _, h := range hits {
		out.Skills = append(out.Skills, h.Skill)
	}
	return out, nil
}
