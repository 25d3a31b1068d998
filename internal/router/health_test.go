package router

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Dilip-lamichhane/FinalPROJ/internal/auth"
	"github.com/Dilip-lamichhane/FinalPROJ/internal/shop"

	"github.com/gin-gonic/gin"
)

func testEngine(checks map[string]HealthCheck) *gin.Engine {
	gin.SetMode(gin.TestMode)

	handlers := Handlers{
		Auth: auth.NewHandler(auth.NewService(auth.NewInMemoryUserRepository())),
		Shop: shop.NewHandler(shop.NewService(shop.NewMemoryRepository(), nil)),
	}
	return New(handlers, checks)
}

func TestHealthCheck(t *testing.T) {
	checks := map[string]HealthCheck{
		"mongo":    func(ctx context.Context) error { return nil },
		"postgres": func(ctx context.Context) error { return errors.New("connection refused") },
	}
	r := testEngine(checks)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var body struct {
		Status string            `json:"status"`
		Stores map[string]string `json:"stores"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if body.Status != "ok" {
		t.Errorf("expected ok status, got %s", body.Status)
	}
	if body.Stores["mongo"] != "ok" {
		t.Errorf("expected mongo ok, got %s", body.Stores["mongo"])
	}
	if body.Stores["postgres"] != "down" {
		t.Errorf("expected postgres down, got %s", body.Stores["postgres"])
	}
}

func TestProtectedRouteRequiresToken(t *testing.T) {
	r := testEngine(nil)

	req := httptest.NewRequest(http.MethodDelete, "/shops/1", nil)
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", w.Code)
	}
}
