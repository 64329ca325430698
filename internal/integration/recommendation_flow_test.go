package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"jobmatch/internal/config"
	"jobmatch/internal/database"
	dbpostgres "jobmatch/internal/database/postgres"
	"jobmatch/internal/database/seeder"
	"jobmatch/internal/delivery/http/middleware"
	"jobmatch/internal/delivery/http/routes"
	"jobmatch/internal/domain/job"
	"jobmatch/internal/repository"
)

type semanticResponse struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type authData struct {
	AccessToken string `json:"access_token"`
}

type candidateData struct {
	ID uuid.UUID `json:"id"`
}

type recommendationData struct {
	CandidateID     string `json:"candidate_id"`
	PresetUsed      string `json:"preset_used"`
	Recommendations []struct {
		Rank int `json:"rank"`
		Job  struct {
			ID    string `json:"id"`
			Title string `json:"title"`
		} `json:"job"`
		Scores struct {
			Composite float64 `json:"composite_score"`
		} `json:"scores"`
		Explanation string `json:"explanation"`
	} `json:"recommendations"`
}

// TestIntegration_RecommendationFlow walks register -> login -> candidate ->
// jobs -> recommendations against a real database. Skipped unless the test DB
// env vars are set.
func TestIntegration_RecommendationFlow(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	db := connectTestDB(t, ctx)
	defer func() { _ = db.Close() }()

	if err := (seeder.Runner{Seeders: []seeder.Seeder{seeder.SchemaSeeder{}}}).Run(ctx, db); err != nil {
		t.Fatalf("ensure schema: %v", err)
	}

	jobIDs := seedJobs(t, ctx, db)
	defer cleanupJobs(t, ctx, db, jobIDs)

	cfg := testConfig()
	app := newTestApp(cfg, db)

	email := fmt.Sprintf("it-%s@example.com", uuid.NewString()[:8])
	token := registerAndLogin(t, app, email)
	defer cleanupUser(t, ctx, db, email)

	candidateID := createCandidate(t, app, token)
	defer cleanupCandidate(t, ctx, db, candidateID)

	rec := fetchRecommendations(t, app, token, candidateID)
	if rec.PresetUsed != "balanced" {
		t.Fatalf("preset_used = %q, want balanced default", rec.PresetUsed)
	}
	if len(rec.Recommendations) == 0 {
		t.Fatal("expected non-empty recommendations")
	}

	seen := map[string]struct{}{}
	prev := 2.0
	for i, item := range rec.Recommendations {
		if item.Rank != i+1 {
			t.Fatalf("rank at index %d = %d, want %d", i, item.Rank, i+1)
		}
		if _, dup := seen[item.Job.ID]; dup {
			t.Fatalf("duplicate job %s in recommendations", item.Job.ID)
		}
		seen[item.Job.ID] = struct{}{}
		if item.Scores.Composite > prev {
			t.Fatalf("recommendations not sorted by composite score at index %d", i)
		}
		prev = item.Scores.Composite
		if item.Explanation == "" {
			t.Fatalf("recommendation %d has no explanation", i)
		}
	}
}

func connectTestDB(t *testing.T, ctx context.Context) database.DB {
	t.Helper()

	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")
	name := os.Getenv("DB_NAME")
	user := os.Getenv("DB_USER")
	if host == "" || port == "" || name == "" || user == "" {
		t.Skip("missing test DB env vars: set DB_HOST/DB_PORT/DB_NAME/DB_USER/DB_PASSWORD")
	}
	ssl := os.Getenv("DB_SSL_MODE")
	if ssl == "" {
		ssl = "disable"
	}

	db, err := dbpostgres.Connect(ctx, config.DatabaseConfig{
		DBHost:     host,
		DBPort:     port,
		DBName:     name,
		DBUser:     user,
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBSSLMode:  ssl,
	})
	if err != nil {
		t.Fatalf("connect db: %v", err)
	}
	return db
}

func testConfig() config.Config {
	return config.Config{
		App: config.AppConfig{AppName: "jobmatch-test", HTTPPort: "0"},
		JWT: config.JWTConfig{
			AccessSecret:     "integration-access-secret",
			RefreshSecret:    "integration-refresh-secret",
			AccessExpiresIn:  15 * time.Minute,
			RefreshExpiresIn: time.Hour,
		},
	}
}

func newTestApp(cfg config.Config, db database.DB) *fiber.App {
	app := fiber.New(fiber.Config{})
	app.Use(middleware.NewErrorMiddleware().Middleware())
	routes.NewRegistry(routes.Deps{Config: cfg, DB: db}).Register(app)
	return app
}

func seedJobs(t *testing.T, ctx context.Context, db database.DB) []uuid.UUID {
	t.Helper()

	repo := repository.NewPostgresJobRepository(db)
	salaryMin, salaryMax := 120000, 160000
	senior := job.SenioritySenior

	jobs := []job.StructuredJob{
		{
			ID: uuid.New(), Source: "it-test", ExternalID: "it-1",
			Title: "Senior Python Developer", Company: "Acme",
			Description: "Python, Django, remote team.",
			Requirements: job.Requirements{
				Skills: []string{"python", "django", "sql"}, Remote: true,
				Seniority: &senior, SalaryMin: &salaryMin, SalaryMax: &salaryMax,
			},
		},
		{
			ID: uuid.New(), Source: "it-test", ExternalID: "it-2",
			Title: "Go Backend Engineer", Company: "Globex",
			Description: "Go microservices.",
			Requirements: job.Requirements{
				Skills: []string{"go", "kubernetes"}, Remote: true,
			},
		},
		{
			ID: uuid.New(), Source: "it-test", ExternalID: "it-3",
			Title: "Frontend Developer", Company: "Initech",
			Description: "React and TypeScript.",
			Requirements: job.Requirements{
				Skills: []string{"react", "typescript"}, Remote: false,
			},
		},
	}
	if _, err := repo.UpsertBatch(ctx, jobs); err != nil {
		t.Fatalf("seed jobs: %v", err)
	}

	ids := make([]uuid.UUID, 0, len(jobs))
	for _, j := range jobs {
		ids = append(ids, j.ID)
	}
	return ids
}

func cleanupJobs(t *testing.T, ctx context.Context, db database.DB, ids []uuid.UUID) {
	t.Helper()
	for _, id := range ids {
		if _, err := db.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, id); err != nil {
			t.Logf("cleanup job %s: %v", id, err)
		}
	}
}

func cleanupUser(t *testing.T, ctx context.Context, db database.DB, email string) {
	t.Helper()
	if _, err := db.Exec(ctx, `DELETE FROM users WHERE email = $1`, email); err != nil {
		t.Logf("cleanup user %s: %v", email, err)
	}
}

func cleanupCandidate(t *testing.T, ctx context.Context, db database.DB, id uuid.UUID) {
	t.Helper()
	if id == uuid.Nil {
		return
	}
	if _, err := db.Exec(ctx, `DELETE FROM candidates WHERE id = $1`, id); err != nil {
		t.Logf("cleanup candidate %s: %v", id, err)
	}
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body any) semanticResponse {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	var out semanticResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("%s %s: decode: %v", method, path, err)
	}
	if resp.StatusCode != fiber.StatusOK && resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("%s %s: status %d message %q", method, path, resp.StatusCode, out.Message)
	}
	return out
}

func registerAndLogin(t *testing.T, app *fiber.App, email string) string {
	t.Helper()

	creds := map[string]string{"email": email, "password": "integration-pass-1"}
	doJSON(t, app, "POST", "/api/v1/auth/register", "", creds)

	res := doJSON(t, app, "POST", "/api/v1/auth/login", "", creds)
	var data authData
	if err := json.Unmarshal(res.Data, &data); err != nil {
		t.Fatalf("decode login data: %v", err)
	}
	if data.AccessToken == "" {
		t.Fatal("empty access token")
	}
	return data.AccessToken
}

func createCandidate(t *testing.T, app *fiber.App, token string) uuid.UUID {
	t.Helper()

	res := doJSON(t, app, "POST", "/api/v1/candidates", token, map[string]any{
		"skills":              []string{"python", "django", "sql"},
		"experience_years":    5,
		"seniority":           "senior",
		"location_preference": "Berlin",
		"remote_preferred":    true,
		"salary_expected":     130000,
	})
	var data candidateData
	if err := json.Unmarshal(res.Data, &data); err != nil {
		t.Fatalf("decode candidate data: %v", err)
	}
	if data.ID == uuid.Nil {
		t.Fatal("candidate id missing")
	}
	return data.ID
}

func fetchRecommendations(t *testing.T, app *fiber.App, token string, candidateID uuid.UUID) recommendationData {
	t.Helper()

	res := doJSON(t, app, "POST", "/api/v1/recommendations", token, map[string]any{
		"candidate_id": candidateID.String(),
		"limit":        10,
	})
	var data recommendationData
	if err := json.Unmarshal(res.Data, &data); err != nil {
		t.Fatalf("decode recommendation data: %v", err)
	}
	return data
}
