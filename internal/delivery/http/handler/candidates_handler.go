package handler

import (
	"jobmatch/internal/delivery/http/dto"
	"jobmatch/internal/delivery/http/middleware"
	"jobmatch/internal/pkg/response"
	"jobmatch/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type CandidatesHandler struct {
	uc usecase.CandidateUsecase
}

type candidateRequest struct {
	Skills             []string `json:"skills"`
	ExperienceYears    int      `json:"experience_years"`
	Seniority          string   `json:"seniority"`
	LocationPreference string   `json:"location_preference"`
	RemotePreferred    bool     `json:"remote_preferred"`
	SalaryExpected     *int     `json:"salary_expected"`
}

func NewCandidatesHandler(uc usecase.CandidateUsecase) *CandidatesHandler {
	return &CandidatesHandler{uc: uc}
}

func (h *CandidatesHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/", h.HandleCreate)
	r.Get("/:id", h.HandleGet)
	r.Put("/:id", h.HandleUpdate)
	r.Delete("/:id", h.HandleDelete)
}

func (h *CandidatesHandler) HandleCreate(c fiber.Ctx) error {
	var req candidateRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	created, err := h.uc.Create(c.Context(), candidateInputFromRequest(req))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, response.MessageOK, dto.FromCandidate(created))
}

func (h *CandidatesHandler) HandleGet(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid candidate id", nil, err)
	}

	profile, err := h.uc.Get(c.Context(), id)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromCandidate(profile))
}

func (h *CandidatesHandler) HandleUpdate(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid candidate id", nil, err)
	}

	var req candidateRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	updated, err := h.uc.Update(c.Context(), id, candidateInputFromRequest(req))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromCandidate(updated))
}

func (h *CandidatesHandler) HandleDelete(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid candidate id", nil, err)
	}

	if err := h.uc.Delete(c.Context(), id); err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func candidateInputFromRequest(req candidateRequest) usecase.CandidateInput {
	return usecase.CandidateInput{
		Skills:             req.Skills,
		ExperienceYears:    req.ExperienceYears,
		Seniority:          req.Seniority,
		LocationPreference: req.LocationPreference,
		RemotePreferred:    req.RemotePreferred,
		SalaryExpected:     req.SalaryExpected,
	}
}
