package handler

import (
	"jobmatch/internal/delivery/http/middleware"
	"jobmatch/internal/pkg/response"
	"jobmatch/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type AnalyticsHandler struct {
	uc usecase.AnalyticsUsecase
}

func NewAnalyticsHandler(uc usecase.AnalyticsUsecase) *AnalyticsHandler {
	return &AnalyticsHandler{uc: uc}
}

func (h *AnalyticsHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/preset-effectiveness", h.HandlePresetEffectiveness)
}

func (h *AnalyticsHandler) RegisterCandidateRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/:id/patterns", h.HandlePatterns)
	r.Get("/:id/suggested-weights", h.HandleSuggestedWeights)
	r.Get("/:id/feedback-summary", h.HandleFeedbackSummary)
}

func (h *AnalyticsHandler) HandlePatterns(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid candidate id", nil, err)
	}

	patterns, err := h.uc.GetUserPatterns(c.Context(), id)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, patterns)
}

func (h *AnalyticsHandler) HandleSuggestedWeights(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid candidate id", nil, err)
	}

	weights, err := h.uc.SuggestWeights(c.Context(), id)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, weights)
}

func (h *AnalyticsHandler) HandleFeedbackSummary(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid candidate id", nil, err)
	}

	summary, err := h.uc.GetFeedbackSummary(c.Context(), id)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, summary)
}

func (h *AnalyticsHandler) HandlePresetEffectiveness(c fiber.Ctx) error {
	stats, err := h.uc.GetPresetEffectiveness(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, stats)
}
