package handler

import (
	"skill-gap/internal/delivery/http/dto"
	"skill-gap/internal/pkg/response"
	"skill-gap/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type SkillHandler struct {
	uc usecase.SkillUsecase
}

func NewSkillHandler(uc usecase.SkillUsecase) *SkillHandler {
	return &SkillHandler{uc: uc}
}

func (h *SkillHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/skills")
	grp.Get("/taxonomy", h.Taxonomy)
	grp.Post("/extract", h.Extract)
}

func (h *SkillHandler) Taxonomy(c fiber.Ctx) error {
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewTaxonomyResponse(h.uc.Taxonomy()))
}

func (h *SkillHandler) Extract(c fiber.Ctx) error {
	var req dto.ExtractRequest
	if err := c.Bind().Body(&req); err != nil {
		return badRequest(err, nil)
	}
	if details := dto.Validate(req); details != nil {
		return badRequest(nil, details)
	}

	out, err := h.uc.Extract(req.Text)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}
