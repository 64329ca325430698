package routes

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v3"

	"jobmatch/internal/config"
	"jobmatch/internal/delivery/http/middleware"
)

func newGuardedApp() *fiber.App {
	app := fiber.New(fiber.Config{})
	app.Use(middleware.NewErrorMiddleware().Middleware())
	cfg := config.Config{
		JWT: config.JWTConfig{
			AccessSecret:     "route-test-access",
			RefreshSecret:    "route-test-refresh",
			AccessExpiresIn:  time.Minute,
			RefreshExpiresIn: time.Minute,
		},
	}
	NewRegistry(Deps{Config: cfg}).Register(app)
	return app
}

func TestAPIRoutes_RequireBearerToken(t *testing.T) {
	app := newGuardedApp()

	paths := []struct {
		method string
		path   string
	}{
		{"GET", "/api/v1/jobs"},
		{"GET", "/api/v1/jobs/stats"},
		{"GET", "/api/v1/weights/presets"},
		{"POST", "/api/v1/candidates"},
		{"POST", "/api/v1/recommendations"},
		{"GET", "/api/v1/analytics/preset-effectiveness"},
	}
	for _, p := range paths {
		req := httptest.NewRequest(p.method, p.path, nil)
		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("%s %s: %v", p.method, p.path, err)
		}
		_ = resp.Body.Close()
		if resp.StatusCode != fiber.StatusUnauthorized {
			t.Errorf("%s %s without token: status %d, want %d", p.method, p.path, resp.StatusCode, fiber.StatusUnauthorized)
		}
	}
}

func TestAPIRoutes_RejectGarbageToken(t *testing.T) {
	app := newGuardedApp()

	req := httptest.NewRequest("GET", "/api/v1/jobs", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("GET /api/v1/jobs: %v", err)
	}
	_ = resp.Body.Close()
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Errorf("garbage token: status %d, want %d", resp.StatusCode, fiber.StatusUnauthorized)
	}
}
