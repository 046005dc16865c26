package handler

import (
	"errors"

	"skill-gap/internal/delivery/http/middleware"
	"skill-gap/internal/pkg/response"
	"skill-gap/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

func mapUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	var fetchErr *usecase.PostingFetchError
	switch {
	case errors.As(err, &fetchErr):
		return middleware.NewAppError(fiber.StatusBadGateway, fetchErr.Error(), nil, err)
	case errors.Is(err, usecase.ErrEmptyPosting):
		return middleware.NewAppError(fiber.StatusUnprocessableEntity, "Job posting is empty", nil, err)
	case errors.Is(err, usecase.ErrSuperseded):
		return middleware.NewAppError(fiber.StatusConflict, "Analysis superseded by a newer request", nil, err)
	case errors.Is(err, usecase.ErrNoAnalysis):
		return middleware.NewAppError(fiber.StatusNotFound, "No analysis available", nil, err)
	case errors.Is(err, usecase.ErrProfileUnavailable):
		return middleware.NewAppError(fiber.StatusServiceUnavailable, "Skill profile unavailable", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	case errors.Is(err, usecase.ErrUnauthorized):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}

func badRequest(err error, details []response.ValidationError) error {
	var data any
	if len(details) > 0 {
		data = details
	}
	return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", data, err)
}
