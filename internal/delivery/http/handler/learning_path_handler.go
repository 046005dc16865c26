package handler

import (
	"skill-gap/internal/delivery/http/dto"
	"skill-gap/internal/delivery/http/middleware"
	"skill-gap/internal/pkg/response"
	"skill-gap/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

const (
	sourceRequest         = "request"
	sourceCurrentAnalysis = "current_analysis"
)

type LearningPathHandler struct {
	uc usecase.AnalysisUsecase
}

func NewLearningPathHandler(uc usecase.AnalysisUsecase) *LearningPathHandler {
	return &LearningPathHandler{uc: uc}
}

func (h *LearningPathHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/learning-paths", h.Generate)
}

// Generate builds a path for the given skills, or for the gaps of the caller's
// current analysis when none are given.
func (h *LearningPathHandler) Generate(c fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req dto.LearningPathRequest
	if len(c.Body()) > 0 {
		if err := c.Bind().Body(&req); err != nil {
			return badRequest(err, nil)
		}
	}
	if details := dto.Validate(req); details != nil {
		return badRequest(nil, details)
	}

	if len(req.Skills) == 0 {
		path, err := h.uc.LearningPathForCurrent(c.Context(), userID)
		if err != nil {
			return mapUsecaseError(err)
		}
		return response.Success(c, fiber.StatusOK, response.MessageOK, dto.LearningPathResponse{LearningPath: path, Source: sourceCurrentAnalysis})
	}

	path := h.uc.GenerateLearningPath(c.Context(), req.Skills)
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.LearningPathResponse{LearningPath: path, Source: sourceRequest})
}
