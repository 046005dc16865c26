package dto

import "skill-gap/internal/domain/skill"

type ProfileSkillsRequest struct {
	Skills []string `json:"skills" validate:"required,min=1,max=50,dive,required,max=100"`
}

type ProfileSkillsResponse struct {
	Skills  []string `json:"skills"`
	Unknown []string `json:"unknown,omitempty"`
}

type TaxonomyEntryResponse struct {
	Name    string   `json:"name"`
	Aliases []string `json:"aliases"`
}

type TaxonomyCategoryResponse struct {
	Name    string                  `json:"name"`
	Entries []TaxonomyEntryResponse `json:"entries"`
}

func NewTaxonomyResponse(categories []skill.Category) []TaxonomyCategoryResponse {
	out := make([]TaxonomyCategoryResponse, 0, len(categories))
	for _, c := range categories {
		cat := TaxonomyCategoryResponse{Name: c.Name, Entries: make([]TaxonomyEntryResponse, 0, len(c.Entries))}
		for _, e := range c.Entries {
			aliases := e.Aliases
			if aliases == nil {
				aliases = []string{}
			}
			cat.Entries = append(cat.Entries, TaxonomyEntryResponse{Name: e.Name, Aliases: aliases})
		}
		out = append(out, cat)
	}
	return out
}
