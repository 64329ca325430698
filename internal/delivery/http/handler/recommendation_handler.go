package handler

import (
	"jobmatch/internal/delivery/http/dto"
	"jobmatch/internal/delivery/http/middleware"
	"jobmatch/internal/domain/ranking"
	"jobmatch/internal/pkg/response"
	"jobmatch/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type RecommendationHandler struct {
	uc usecase.RecommendationUsecase
}

type recommendationRequest struct {
	CandidateID string           `json:"candidate_id"`
	Preset      string           `json:"preset"`
	Weights     *ranking.Weights `json:"weights"`
	Limit       int              `json:"limit"`
}

func NewRecommendationHandler(uc usecase.RecommendationUsecase) *RecommendationHandler {
	return &RecommendationHandler{uc: uc}
}

func (h *RecommendationHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/", h.HandleRecommend)
}

// RegisterCandidateRoutes exposes the query-parameter variant nested under a
// candidate resource.
func (h *RecommendationHandler) RegisterCandidateRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/:id/recommendations", h.HandleCandidateRecommendations)
}

func (h *RecommendationHandler) HandleRecommend(c fiber.Ctx) error {
	var req recommendationRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	candidateID, err := uuid.Parse(req.CandidateID)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid candidate id", nil, err)
	}

	result, err := h.uc.GetRecommendations(c.Context(), candidateID, usecase.RecommendationParams{
		Preset:  req.Preset,
		Weights: req.Weights,
		Limit:   req.Limit,
	})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromRecommendationResult(result))
}

func (h *RecommendationHandler) HandleCandidateRecommendations(c fiber.Ctx) error {
	candidateID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid candidate id", nil, err)
	}

	limit, err := parseQueryIntStrict(c, "limit", 0)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	result, err := h.uc.GetRecommendations(c.Context(), candidateID, usecase.RecommendationParams{
		Preset: c.Query("preset"),
		Limit:  limit,
	})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromRecommendationResult(result))
}
