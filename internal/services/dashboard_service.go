package services

import (
	"context"
	"fmt"
	"log"

	"golang.org/x/sync/errgroup"

	"github.com/example/modelboard/internal/api"
	"github.com/example/modelboard/internal/models"
)

// DashboardService assembles the admin dashboard summary from several
// backend resources at once.
type DashboardService struct {
	client *api.Client
}

// NewDashboardService constructs a DashboardService around an injected client.
func NewDashboardService(client *api.Client) *DashboardService {
	return &DashboardService{client: client}
}

// GetMetrics fans out to the user, model, transaction, and product list
// endpoints concurrently and joins fail-fast: the first failure cancels
// the remaining fetches and the whole aggregation returns nil. No partial
// metrics are ever surfaced.
func (s *DashboardService) GetMetrics(ctx context.Context) (*models.DashboardMetrics, error) {
	var (
		users        []models.User
		modelList    models.ModelList
		transactions []models.Transaction
		products     []models.Product
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return s.fetch(ctx, "/users", &users) })
	g.Go(func() error { return s.fetch(ctx, "/admin/models", &modelList) })
	g.Go(func() error { return s.fetch(ctx, "/transactions", &transactions) })
	g.Go(func() error { return s.fetch(ctx, "/products", &products) })

	if err := g.Wait(); err != nil {
		log.Printf("[Dashboard] metrics aggregation failed: %v", err)
		return nil, fmt.Errorf("aggregate dashboard metrics: %w", err)
	}

	metrics := &models.DashboardMetrics{
		TotalUsers:        len(users),
		TotalModels:       modelList.Pagination.Total,
		TotalTransactions: len(transactions),
		TotalProducts:     len(products),
	}
	if metrics.TotalModels == 0 {
		metrics.TotalModels = len(modelList.Models)
	}

	for _, u := range users {
		if u.IsActive {
			metrics.ActiveUsers++
		}
	}

	if modelList.Summary != nil {
		metrics.PendingApprovals = modelList.Summary.TotalPending
	} else {
		for _, m := range modelList.Models {
			if !m.Status.AdminApproved && m.Status.RejectionReason == "" {
				metrics.PendingApprovals++
			}
		}
	}

	return metrics, nil
}

func (s *DashboardService) fetch(ctx context.Context, path string, v any) error {
	env, err := s.client.Get(ctx, path)
	if err != nil {
		return fmt.Errorf("fetch %s: %w", path, err)
	}
	if err := env.Err(); err != nil {
		return fmt.Errorf("fetch %s: %w", path, err)
	}
	return env.Decode(v)
}
