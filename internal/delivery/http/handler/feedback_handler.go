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

type FeedbackHandler struct {
	uc usecase.FeedbackUsecase
}

type feedbackRequest struct {
	JobID       string           `json:"job_id"`
	Type        string           `json:"type"`
	PresetUsed  string           `json:"preset_used"`
	WeightsUsed *ranking.Weights `json:"weights_used"`
}

func NewFeedbackHandler(uc usecase.FeedbackUsecase) *FeedbackHandler {
	return &FeedbackHandler{uc: uc}
}

func (h *FeedbackHandler) RegisterCandidateRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/:id/feedback", h.HandleRecord)
	r.Get("/:id/feedback", h.HandleHistory)
}

func (h *FeedbackHandler) HandleRecord(c fiber.Ctx) error {
	candidateID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid candidate id", nil, err)
	}

	var req feedbackRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	jobID, err := uuid.Parse(req.JobID)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid job id", nil, err)
	}

	rec, err := h.uc.Record(c.Context(), candidateID, usecase.FeedbackInput{
		JobID:       jobID,
		Type:        req.Type,
		PresetUsed:  req.PresetUsed,
		WeightsUsed: req.WeightsUsed,
	})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, response.MessageOK, dto.FromFeedback(rec))
}

func (h *FeedbackHandler) HandleHistory(c fiber.Ctx) error {
	candidateID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid candidate id", nil, err)
	}

	limit, err := parseQueryIntStrict(c, "limit", 0)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	recs, err := h.uc.History(c.Context(), candidateID, limit)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromFeedbackList(recs))
}
