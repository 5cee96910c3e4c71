package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"excuses/internal/cache"
	"excuses/internal/config"
	"excuses/internal/provider"
)

func newTestServer(t *testing.T, rateLimit int) (*Server, *cache.LRU) {
	t.Helper()
	cfg := &config.Config{
		Env:          "test",
		BaseURL:      "http://localhost:3000",
		RateLimitMax: rateLimit,
	}
	c := cache.New(5)
	p := provider.New(provider.Options{
		Cache:      c,
		Deployment: provider.DeploymentContext{Platform: "local", Restricted: true},
	})

	s := New(cfg)
	s.RegisterRoutes(Deps{Provider: p, Cache: c, Mode: config.ModeRestricted})
	return s, c
}

func TestRoutesProduceExcuse(t *testing.T) {
	s, c := newTestServer(t, 0)

	req := httptest.NewRequest(http.MethodPost, "/api/excuses", strings.NewReader(`{"situation":"stuck in traffic"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := s.App.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		t.Fatalf("status = %d: %s", resp.StatusCode, body)
	}
	if c.Len() != 1 {
		t.Errorf("cache has %d entries, want 1", c.Len())
	}
}

func TestUnknownRouteUsesJSONError(t *testing.T) {
	s, _ := newTestServer(t, 0)

	resp, err := s.App.Test(httptest.NewRequest(http.MethodGet, "/nope", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404", resp.StatusCode)
	}

	var body map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("error body is not JSON: %v", err)
	}
	if body["status"] != "error" || body["error"] == "" {
		t.Errorf("unexpected error body: %v", body)
	}
}

func TestHealthzAndMetrics(t *testing.T) {
	s, _ := newTestServer(t, 0)

	resp, err := s.App.Test(httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if err != nil {
		t.Fatalf("healthz failed: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK || !strings.Contains(string(body), `"mode":"restricted"`) {
		t.Errorf("healthz = %d %s", resp.StatusCode, body)
	}

	resp, err = s.App.Test(httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if err != nil {
		t.Fatalf("metrics failed: %v", err)
	}
	body, _ = io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK || !strings.Contains(string(body), "go_goroutines") {
		t.Errorf("metrics = %d, body lacks default collectors", resp.StatusCode)
	}
}

func TestRateLimit(t *testing.T) {
	s, _ := newTestServer(t, 2)

	var last int
	for range 3 {
		resp, err := s.App.Test(httptest.NewRequest(http.MethodGet, "/api/corpus", nil))
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		last = resp.StatusCode
	}
	if last != http.StatusTooManyRequests {
		t.Errorf("third request status = %d, want 429", last)
	}

	// Probes are exempt.
	resp, err := s.App.Test(httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if err != nil {
		t.Fatalf("healthz failed: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Errorf("healthz status = %d under rate limit", resp.StatusCode)
	}
}
