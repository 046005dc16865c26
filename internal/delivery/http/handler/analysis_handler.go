package handler

import (
	"strconv"
	"strings"

	"skill-gap/internal/delivery/http/dto"
	"skill-gap/internal/delivery/http/middleware"
	"skill-gap/internal/pkg/response"
	"skill-gap/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type AnalysisHandler struct {
	uc usecase.AnalysisUsecase
}

func NewAnalysisHandler(uc usecase.AnalysisUsecase) *AnalysisHandler {
	return &AnalysisHandler{uc: uc}
}

func (h *AnalysisHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/analyses")
	grp.Post("/", h.Analyze)
	grp.Get("/", h.History)
	grp.Get("/current", h.Current)
}

func (h *AnalysisHandler) Analyze(c fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req dto.AnalyzeRequest
	if err := c.Bind().Body(&req); err != nil {
		return badRequest(err, nil)
	}
	if details := dto.Validate(req); details != nil {
		return badRequest(nil, details)
	}

	res, err := h.uc.Analyze(c.Context(), userID, usecase.AnalyzeInput{
		Text:    req.Text,
		URL:     req.URL,
		Persist: req.Persist,
	})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}

func (h *AnalysisHandler) History(c fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	limit := 0
	if raw := strings.TrimSpace(c.Query("limit")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return badRequest(err, []response.ValidationError{{Field: "limit", Rule: "min=0"}})
		}
		limit = n
	}

	items, err := h.uc.History(c.Context(), userID, limit)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.HistoryResponse{Items: items, Total: len(items)})
}

func (h *AnalysisHandler) Current(c fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	state, cur := h.uc.Current(userID)
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.CurrentAnalysisResponse{State: state, Result: cur})
}
