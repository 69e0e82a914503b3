package health

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"
)

func newTestServer() *Server {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return NewServer(Config{
		ServiceName: "forecast-lab",
		Version:     "test",
		Commit:      "abc123",
		Port:        "0",
		Logger:      l,
	})
}

func TestHealthEndpoint(t *testing.T) {
	s := newTestServer()
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var body HealthResponse
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if body.Status != "ok" || body.Service != "forecast-lab" || body.Version != "test" {
		t.Fatalf("unexpected body: %+v", body)
	}
}

func TestReadyEndpointTracksReadiness(t *testing.T) {
	s := newTestServer()
	handler := s.Handler()

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ready", nil))
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 before records load, got %d", rec.Code)
	}

	s.SetReady(true)
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ready", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 after records load, got %d", rec.Code)
	}
	var body ReadyResponse
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if body.Checks["records"] != "loaded" {
		t.Fatalf("unexpected checks: %+v", body.Checks)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	s := newTestServer()
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 from the metrics endpoint, got %d", rec.Code)
	}
}

func TestDefaultPort(t *testing.T) {
	s := NewServer(Config{ServiceName: "forecast-lab"})
	if s.port != "8080" {
		t.Fatalf("expected fallback port 8080, got %q", s.port)
	}
}
