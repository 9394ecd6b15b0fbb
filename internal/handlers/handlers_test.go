package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/example/modelboard/internal/api"
	"github.com/example/modelboard/internal/services"
)

func newTestApp(t *testing.T, backend http.HandlerFunc) *fiber.App {
	t.Helper()
	srv := httptest.NewServer(backend)
	t.Cleanup(srv.Close)
	client := api.New(api.Config{BaseURL: srv.URL, HTTPClient: srv.Client()})

	modelHandler := NewModelHandler(services.NewModelService(client))
	userHandler := NewUserHandler(services.NewUserService(client))
	dashboardHandler := NewDashboardHandler(services.NewDashboardService(client))

	app := fiber.New()
	app.Get("/api/admin/models", modelHandler.List)
	app.Get("/api/admin/models/:id", modelHandler.Get)
	app.Put("/api/admin/models/:id/reject", modelHandler.Reject)
	app.Post("/api/admin/models/bulk/approve", modelHandler.BulkApprove)
	app.Get("/api/users/:id", userHandler.Get)
	app.Get("/api/dashboard/metrics", dashboardHandler.Metrics)
	return app
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("failed to read body: %v", err)
	}
	var body map[string]any
	if err := json.Unmarshal(raw, &body); err != nil {
		t.Fatalf("failed to decode body %q: %v", raw, err)
	}
	return body
}

func TestModelListEndpoint(t *testing.T) {
	app := newTestApp(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"data": map[string]any{
				"models":     []map[string]any{{"modelId": "mdl-1"}},
				"pagination": map[string]any{"total": 1, "limit": 50, "offset": 0, "hasMore": false},
			},
		})
	})

	req := httptest.NewRequest(http.MethodGet, "/api/admin/models?status=pending", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	body := decodeBody(t, resp)
	if body["success"] != true {
		t.Fatalf("expected success=true, got %v", body)
	}
	data := body["data"].(map[string]any)
	if len(data["models"].([]any)) != 1 {
		t.Fatalf("expected one model, got %v", data["models"])
	}
}

func TestModelListEndpointUpstreamFailure(t *testing.T) {
	app := newTestApp(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"success": false, "error": "database unavailable"})
	})

	req := httptest.NewRequest(http.MethodGet, "/api/admin/models?limit=10&offset=20", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", resp.StatusCode)
	}

	body := decodeBody(t, resp)
	if body["success"] != false {
		t.Fatalf("expected success=false, got %v", body)
	}
	if msg, _ := body["error"].(string); !strings.Contains(msg, "database unavailable") {
		t.Fatalf("expected diagnostic message, got %v", body["error"])
	}

	// The safe default still ships alongside the error.
	data := body["data"].(map[string]any)
	pagination := data["pagination"].(map[string]any)
	if pagination["limit"].(float64) != 10 || pagination["offset"].(float64) != 20 {
		t.Fatalf("expected pagination echo 10/20, got %v", pagination)
	}
}

func TestRejectEndpointRequiresReason(t *testing.T) {
	app := newTestApp(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("backend must not be called for invalid input")
	})

	req := httptest.NewRequest(http.MethodPut, "/api/admin/models/mdl-1/reject", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}

func TestBulkApproveEndpointRequiresIDs(t *testing.T) {
	app := newTestApp(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("backend must not be called for invalid input")
	})

	req := httptest.NewRequest(http.MethodPost, "/api/admin/models/bulk/approve", strings.NewReader(`{"modelIds":[]}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}

func TestUserEndpointNotFound(t *testing.T) {
	app := newTestApp(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"success": true})
	})

	req := httptest.NewRequest(http.MethodGet, "/api/users/usr-404", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
}

func TestDashboardMetricsEndpoint(t *testing.T) {
	app := newTestApp(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/admin/models":
			json.NewEncoder(w).Encode(map[string]any{
				"success": true,
				"data": map[string]any{
					"models":     []map[string]any{},
					"pagination": map[string]any{"total": 2, "limit": 50, "offset": 0, "hasMore": false},
					"summary":    map[string]any{"totalPending": 1},
				},
			})
		default:
			json.NewEncoder(w).Encode(map[string]any{"success": true, "data": []any{}})
		}
	})

	req := httptest.NewRequest(http.MethodGet, "/api/dashboard/metrics", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	body := decodeBody(t, resp)
	metrics := body["data"].(map[string]any)
	for _, field := range []string{"totalUsers", "totalModels", "totalTransactions", "totalProducts", "pendingApprovals", "activeUsers"} {
		if _, ok := metrics[field]; !ok {
			t.Fatalf("expected %s in metrics, got %v", field, metrics)
		}
	}
	if metrics["totalModels"].(float64) != 2 || metrics["pendingApprovals"].(float64) != 1 {
		t.Fatalf("unexpected metrics: %v", metrics)
	}
}

func TestDashboardMetricsEndpointFailure(t *testing.T) {
	app := newTestApp(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/transactions" {
			json.NewEncoder(w).Encode(map[string]any{"success": false, "error": "ledger offline"})
			return
		}
		json.NewEncoder(w).Encode(map[string]any{"success": true, "data": []any{}})
	})

	req := httptest.NewRequest(http.MethodGet, "/api/dashboard/metrics", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", resp.StatusCode)
	}
}
