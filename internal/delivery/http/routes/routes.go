package routes

import (
	"log"

	"jobmatch/internal/config"
	"jobmatch/internal/database"
	"jobmatch/internal/delivery/http/handler"
	"jobmatch/internal/infrastructure/cache"
	"jobmatch/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type Deps struct {
	Config config.Config
	DB     database.DB
	Cache  *cache.Redis
	Hub    *ws.Hub
	Logger *log.Logger
}

type Registry struct {
	deps Deps
}

func NewRegistry(deps Deps) *Registry {
	return &Registry{deps: deps}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	health := handler.NewHealthHandler(r.deps.DB, r.deps.Cache)
	health.RegisterRoutes(app)

	if r.deps.Hub != nil {
		wsHandler := ws.NewHandler(r.deps.Hub, r.deps.Logger)
		app.Get("/ws", wsHandler.HandleEventsWS)
	}

	api := app.Group("/api")
	RegisterV1(api.Group("/v1"), r.deps)
}
