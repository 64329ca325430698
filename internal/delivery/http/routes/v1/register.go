package v1

import (
	"log"

	"jobmatch/internal/config"
	"jobmatch/internal/database"
	"jobmatch/internal/delivery/http/handler"
	"jobmatch/internal/delivery/http/middleware"
	"jobmatch/internal/infrastructure/cache"
	"jobmatch/internal/pkg/jwt"
	"jobmatch/internal/repository"
	"jobmatch/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type Deps struct {
	Config config.Config
	DB     database.DB
	Cache  *cache.Redis
	Logger *log.Logger
}

func Register(r fiber.Router, deps Deps) {
	if r == nil {
		return
	}

	jwtSvc := jwt.NewHMACService(
		deps.Config.JWT.AccessSecret,
		deps.Config.JWT.RefreshSecret,
		deps.Config.JWT.AccessExpiresIn,
		deps.Config.JWT.RefreshExpiresIn,
	)
	authMw := middleware.NewAuthMiddleware(jwtSvc)

	jobRepo := repository.NewPostgresJobRepository(deps.DB)
	candidateRepo := repository.NewPostgresCandidateRepository(deps.DB)
	weightRepo := repository.NewPostgresWeightRepository(deps.DB)
	feedbackRepo := repository.NewPostgresFeedbackRepository(deps.DB)
	userRepo := repository.NewPostgresUserRepository(deps.DB)

	authUC := usecase.NewAuthUsecase(userRepo, jwtSvc)
	jobsUC := usecase.NewJobListUsecase(jobRepo)
	candidateUC := usecase.NewCandidateUsecase(candidateRepo, deps.Cache)
	weightsUC := usecase.NewWeightsUsecase(candidateRepo, weightRepo, deps.Cache, deps.Logger)
	recommendationUC := usecase.NewRecommendationUsecase(candidateRepo, jobRepo, weightRepo, deps.Cache, deps.Logger)
	feedbackUC := usecase.NewFeedbackUsecase(feedbackRepo, candidateRepo, jobRepo, deps.Cache)
	analyticsUC := usecase.NewAnalyticsUsecase(feedbackRepo, deps.Cache)

	authHandler := handler.NewAuthHandler(authUC)
	jobsHandler := handler.NewJobsHandler(jobsUC)
	candidatesHandler := handler.NewCandidatesHandler(candidateUC)
	weightsHandler := handler.NewWeightsHandler(weightsUC)
	recommendationHandler := handler.NewRecommendationHandler(recommendationUC)
	feedbackHandler := handler.NewFeedbackHandler(feedbackUC)
	analyticsHandler := handler.NewAnalyticsHandler(analyticsUC)

	authHandler.RegisterRoutes(r.Group("/auth"))

	// Everything below requires a bearer token.
	protected := r.Group("", authMw.Middleware())

	weightsHandler.RegisterRoutes(protected.Group("/weights"))
	jobsHandler.RegisterRoutes(protected.Group("/jobs"))

	candidates := protected.Group("/candidates")
	candidatesHandler.RegisterRoutes(candidates)
	weightsHandler.RegisterCandidateRoutes(candidates)
	recommendationHandler.RegisterCandidateRoutes(candidates)
	feedbackHandler.RegisterCandidateRoutes(candidates)
	analyticsHandler.RegisterCandidateRoutes(candidates)

	recommendationHandler.RegisterRoutes(protected.Group("/recommendations"))
	analyticsHandler.RegisterRoutes(protected.Group("/analytics"))
}
