package services

import (
	"context"
	"net/http"
	"testing"
)

// dashboardStub serves the four list endpoints the aggregator hits,
// failing the one named by failPath.
type dashboardStub struct {
	failPath string
}

func (b *dashboardStub) handler(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path == b.failPath {
		writeFailure(w, "upstream unavailable")
		return
	}

	switch r.URL.Path {
	case "/users":
		writeSuccess(w, []map[string]any{
			{"id": "usr-1", "isActive": true},
			{"id": "usr-2", "isActive": false},
			{"id": "usr-3", "isActive": true},
		})
	case "/admin/models":
		writeSuccess(w, map[string]any{
			"models": []map[string]any{
				{"modelId": "mdl-1", "status": map[string]any{"adminApproved": true, "availability": true}},
				{"modelId": "mdl-2", "status": map[string]any{"adminApproved": false, "availability": false}},
			},
			"pagination": map[string]any{"total": 7, "limit": 50, "offset": 0, "hasMore": false},
			"summary":    map[string]any{"totalPending": 4},
		})
	case "/transactions":
		writeSuccess(w, []map[string]any{
			{"id": "txn-1", "amount": 100},
			{"id": "txn-2", "amount": 50},
		})
	case "/products":
		writeSuccess(w, []map[string]any{
			{"id": "prd-1"}, {"id": "prd-2"}, {"id": "prd-3"}, {"id": "prd-4"}, {"id": "prd-5"},
		})
	default:
		http.NotFound(w, r)
	}
}

func TestGetMetricsAggregatesAllSources(t *testing.T) {
	backend := &dashboardStub{}
	client := newTestBackend(t, backend.handler)
	svc := NewDashboardService(client)

	metrics, err := svc.GetMetrics(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if metrics == nil {
		t.Fatal("expected metrics")
	}

	if metrics.TotalUsers != 3 {
		t.Fatalf("expected 3 users, got %d", metrics.TotalUsers)
	}
	if metrics.ActiveUsers != 2 {
		t.Fatalf("expected 2 active users, got %d", metrics.ActiveUsers)
	}
	if metrics.TotalModels != 7 {
		t.Fatalf("expected pagination total 7, got %d", metrics.TotalModels)
	}
	if metrics.PendingApprovals != 4 {
		t.Fatalf("expected summary pending 4, got %d", metrics.PendingApprovals)
	}
	if metrics.TotalTransactions != 2 {
		t.Fatalf("expected 2 transactions, got %d", metrics.TotalTransactions)
	}
	if metrics.TotalProducts != 5 {
		t.Fatalf("expected 5 products, got %d", metrics.TotalProducts)
	}
}

func TestGetMetricsFailsFastWhenAnySourceFails(t *testing.T) {
	for _, failPath := range []string{"/users", "/admin/models", "/transactions", "/products"} {
		backend := &dashboardStub{failPath: failPath}
		client := newTestBackend(t, backend.handler)
		svc := NewDashboardService(client)

		metrics, err := svc.GetMetrics(context.Background())
		if err == nil {
			t.Fatalf("failPath %s: expected error", failPath)
		}
		if metrics != nil {
			t.Fatalf("failPath %s: expected nil metrics, got %+v", failPath, metrics)
		}
	}
}

func TestGetMetricsPendingFallbackWithoutSummary(t *testing.T) {
	client := newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/admin/models":
			writeSuccess(w, map[string]any{
				"models": []map[string]any{
					{"modelId": "mdl-1", "status": map[string]any{"adminApproved": false}},
					{"modelId": "mdl-2", "status": map[string]any{"adminApproved": false, "rejectionReason": "spam"}},
					{"modelId": "mdl-3", "status": map[string]any{"adminApproved": true}},
				},
				"pagination": map[string]any{"total": 3, "limit": 50, "offset": 0, "hasMore": false},
			})
		default:
			writeSuccess(w, []map[string]any{})
		}
	})
	svc := NewDashboardService(client)

	metrics, err := svc.GetMetrics(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Only mdl-1 is unapproved without a rejection on record.
	if metrics.PendingApprovals != 1 {
		t.Fatalf("expected 1 pending approval, got %d", metrics.PendingApprovals)
	}
}
