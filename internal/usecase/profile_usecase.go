package usecase

import (
	"context"
	"fmt"
	"strings"

	"skill-gap/internal/domain/skill"

	"github.com/google/uuid"
)

type ProfileSkillsOutput struct {
	Skills  []string `json:"skills"`
	Unknown []string `json:"unknown"`
}

type ProfileUsecase interface {
	ListSkills(ctx context.Context, userID uuid.UUID) ([]string, error)
	AddSkills(ctx context.Context, userID uuid.UUID, names []string) (ProfileSkillsOutput, error)
}

// Profile manages the declared skills that analyses match against. Names are
// stored under their canonical taxonomy spelling.
type Profile struct {
	store     ProfileStore
	aliases   skill.AliasTable
	canonical map[string]string
}

func NewProfileUsecase(store ProfileStore, t *skill.Taxonomy) *Profile {
	if t == nil {
		t = skill.DefaultTaxonomy()
	}
	canonical := map[string]string{}
	for _, c := range t.Categories() {
		for _, e := range c.Entries {
			if _, ok := canonical[skill.Normalize(e.Name)]; !ok {
				canonical[skill.Normalize(e.Name)] = e.Name
			}
		}
	}
	return &Profile{store: store, aliases: skill.NewAliasTable(t, nil), canonical: canonical}
}

func (u *Profile) ListSkills(ctx context.Context, userID uuid.UUID) ([]string, error) {
	if u.store == nil {
		return nil, ErrProfileUnavailable
	}
	if userID == uuid.Nil {
		return nil, ErrUnauthorized
	}
	skills, err := u.store.FetchUserSkills(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProfileUnavailable, err)
	}
	if skills == nil {
		skills = []string{}
	}
	return skills, nil
}

// AddSkills links every recognised name to the user and returns the updated
// profile. Names outside the taxonomy are reported and skipped.
func (u *Profile) AddSkills(ctx context.Context, userID uuid.UUID, names []string) (ProfileSkillsOutput, error) {
	if u.store == nil {
		return ProfileSkillsOutput{}, ErrProfileUnavailable
	}
	if userID == uuid.Nil {
		return ProfileSkillsOutput{}, ErrUnauthorized
	}

	out := ProfileSkillsOutput{Unknown: []string{}}
	seen := map[string]struct{}{}
	for _, raw := range names {
		name := strings.TrimSpace(raw)
		if name == "" {
			continue
		}
		canonical, ok := u.canonical[u.aliases.Resolve(name)]
		if !ok {
			out.Unknown = append(out.Unknown, name)
			continue
		}
		if _, dup := seen[canonical]; dup {
			continue
		}
		seen[canonical] = struct{}{}
		if err := u.store.AddByName(ctx, userID, canonical); err != nil {
			return ProfileSkillsOutput{}, fmt.Errorf("%w: %v", ErrProfileUnavailable, err)
		}
	}
	if len(seen) == 0 && len(out.Unknown) == 0 {
		return ProfileSkillsOutput{}, ErrInvalidInput
	}

	skills, err := u.ListSkills(ctx, userID)
	if err != nil {
		return ProfileSkillsOutput{}, err
	}
	out.Skills = skills
	return out, nil
}
