package handler

import (
	"jobmatch/internal/delivery/http/middleware"
	"jobmatch/internal/domain/ranking"
	"jobmatch/internal/pkg/response"
	"jobmatch/internal/repository"
	"jobmatch/internal/usecase"
	"jobmatch/internal/ws"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type WeightsHandler struct {
	uc usecase.WeightsUsecase
}

type saveWeightsRequest struct {
	Preset  string           `json:"preset"`
	Weights *ranking.Weights `json:"weights"`
}

func NewWeightsHandler(uc usecase.WeightsUsecase) *WeightsHandler {
	return &WeightsHandler{uc: uc}
}

func (h *WeightsHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/presets", h.HandleListPresets)
}

func (h *WeightsHandler) RegisterCandidateRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/:id/weights", h.HandleGet)
	r.Put("/:id/weights", h.HandleSave)
	r.Delete("/:id/weights", h.HandleReset)
}

func (h *WeightsHandler) HandleListPresets(c fiber.Ctx) error {
	return response.Success(c, fiber.StatusOK, response.MessageOK, h.uc.ListPresets())
}

func (h *WeightsHandler) HandleGet(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid candidate id", nil, err)
	}

	sw, err := h.uc.Get(c.Context(), id)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, sw)
}

// HandleSave accepts either a preset name or explicit weights; explicit
// weights win when both are present.
func (h *WeightsHandler) HandleSave(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid candidate id", nil, err)
	}

	var req saveWeightsRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	if req.Weights == nil && req.Preset == "" {
		return middleware.NewAppError(fiber.StatusBadRequest, "Preset or weights required", nil, nil)
	}

	var sw repository.StoredWeights
	if req.Weights != nil {
		sw, err = h.uc.SaveCustom(c.Context(), id, *req.Weights)
	} else {
		sw, err = h.uc.SavePreset(c.Context(), id, req.Preset)
	}
	if err != nil {
		return mapUsecaseError(err)
	}

	ws.NotifyWeightsUpdated(id.String(), sw.Preset)
	return response.Success(c, fiber.StatusOK, response.MessageOK, sw)
}

func (h *WeightsHandler) HandleReset(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid candidate id", nil, err)
	}

	if err := h.uc.Reset(c.Context(), id); err != nil {
		return mapUsecaseError(err)
	}
	ws.NotifyWeightsUpdated(id.String(), "")
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}
