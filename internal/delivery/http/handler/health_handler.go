package handler

import (
	"context"

	"jobmatch/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

type pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	db    pinger
	cache pinger
}

func NewHealthHandler(db, cache pinger) *HealthHandler {
	return &HealthHandler{db: db, cache: cache}
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/health", h.Handle)
}

func (h *HealthHandler) Handle(c fiber.Ctx) error {
	data := map[string]string{
		"database": componentStatus(c, h.db),
		"cache":    componentStatus(c, h.cache),
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, data)
}

func componentStatus(c fiber.Ctx, p pinger) string {
	if p == nil {
		return "disabled"
	}
	if err := p.Ping(c.Context()); err != nil {
		return "down"
	}
	return "up"
}
