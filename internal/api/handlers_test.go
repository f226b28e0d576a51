package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/artflaneur/contentfactory/internal/ai"
	"github.com/artflaneur/contentfactory/internal/config"
	"github.com/artflaneur/contentfactory/internal/history"
	"github.com/artflaneur/contentfactory/internal/pipeline"
	"github.com/artflaneur/contentfactory/internal/ratelimit"
	"github.com/artflaneur/contentfactory/internal/urlcheck"
)

func newTestApp(t *testing.T) (*fiber.App, *history.Store) {
	t.Helper()

	store, err := history.NewStore(t.TempDir(), nil)
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}

	urlValidator := urlcheck.NewValidator()
	svc := pipeline.New(ai.MockCompleter{}, urlValidator, store)
	handlers := NewHandlers(svc, urlValidator, store)

	limiter := ratelimit.NewMemoryStore()
	t.Cleanup(func() { limiter.Close() })

	cfg := &config.Config{
		GenerateRateLimit: 100,
		ValidateRateLimit: 100,
		RateLimitWindow:   time.Minute,
		AdminAPIKey:       "secret-admin-key",
	}

	app := fiber.New()
	SetupRoutes(app, handlers, limiter, cfg)
	return app, store
}

func postJSON(t *testing.T, app *fiber.App, path string, body interface{}) *http.Response {
	t.Helper()
	data, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("Failed to marshal body: %v", err)
	}
	req := httptest.NewRequest("POST", path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, 10000)
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	return resp
}

func TestHealthEndpoint(t *testing.T) {
	app, _ := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/health", nil))
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Errorf("Status = %d, want 200", resp.StatusCode)
	}
}

func TestGenerateEndpoint(t *testing.T) {
	app, _ := newTestApp(t)

	resp := postJSON(t, app, "/api/v1/generate", map[string]interface{}{
		"audience": "gallery owners",
		"category": "Growth & Development",
		"topic":    "building a collector base",
	})
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("Status = %d, want 200", resp.StatusCode)
	}

	var post map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&post); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if post["content"] == "" || post["content"] == nil {
		t.Error("Expected generated content")
	}
	if post["framework_used"] != "Mock Framework" {
		t.Errorf("Unexpected framework: %v", post["framework_used"])
	}
}

func TestGenerateEndpointValidation(t *testing.T) {
	app, _ := newTestApp(t)

	resp := postJSON(t, app, "/api/v1/generate", map[string]interface{}{
		"audience": "gallery owners",
	})
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Errorf("Status = %d, want 400 for missing fields", resp.StatusCode)
	}
}

func TestValidateEndpoint(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/dead" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	app, _ := newTestApp(t)

	resp := postJSON(t, app, "/api/v1/validate", map[string]interface{}{
		"urls": []string{srv.URL + "/live", srv.URL + "/dead"},
	})
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("Status = %d, want 200", resp.StatusCode)
	}

	var result struct {
		Valid   []string           `json:"valid"`
		Invalid []string           `json:"invalid"`
		Results []urlcheck.Outcome `json:"results"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if len(result.Valid) != 1 || result.Valid[0] != srv.URL+"/live" {
		t.Errorf("Unexpected valid set: %v", result.Valid)
	}
	if len(result.Invalid) != 1 {
		t.Errorf("Unexpected invalid set: %v", result.Invalid)
	}
	if len(result.Results) != 2 {
		t.Errorf("Expected 2 outcomes, got %d", len(result.Results))
	}
}

func TestValidateEndpointEmptyBody(t *testing.T) {
	app, _ := newTestApp(t)

	resp := postJSON(t, app, "/api/v1/validate", map[string]interface{}{})
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Errorf("Status = %d, want 400 for missing urls", resp.StatusCode)
	}
}

func TestHistoryNotFound(t *testing.T) {
	app, _ := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/history/missing", nil))
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusNotFound {
		t.Errorf("Status = %d, want 404", resp.StatusCode)
	}
}

func TestAdminDeleteRequiresKey(t *testing.T) {
	app, _ := newTestApp(t)

	req := httptest.NewRequest("DELETE", "/api/v1/admin/history/some-id", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Errorf("Status = %d, want 401 without key", resp.StatusCode)
	}

	req = httptest.NewRequest("DELETE", "/api/v1/admin/history/some-id", nil)
	req.Header.Set("X-API-Key", "wrong-key")
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusForbidden {
		t.Errorf("Status = %d, want 403 with wrong key", resp.StatusCode)
	}
}

func TestPostOnlyEndpointsReject405(t *testing.T) {
	app, _ := newTestApp(t)

	for _, path := range []string{"/api/v1/validate", "/api/v1/generate"} {
		resp, err := app.Test(httptest.NewRequest("GET", path, nil))
		if err != nil {
			t.Fatalf("Request failed: %v", err)
		}
		if resp.StatusCode != fiber.StatusMethodNotAllowed {
			t.Errorf("GET %s: status %d, want 405", path, resp.StatusCode)
		}
		if got := resp.Header.Get("Allow"); got != fiber.MethodPost {
			t.Errorf("GET %s: Allow = %q, want POST", path, got)
		}
	}
}

func TestUnknownRouteReturns404(t *testing.T) {
	app, _ := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/nope", nil))
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusNotFound {
		t.Errorf("Status = %d, want 404", resp.StatusCode)
	}
}
