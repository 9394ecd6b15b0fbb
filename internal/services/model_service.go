package services

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/example/modelboard/internal/api"
	"github.com/example/modelboard/internal/models"
)

const (
	// DefaultListLimit is the window applied when a listing caller does
	// not specify one; failure responses echo it back.
	DefaultListLimit = 50

	// DefaultStatsPeriod is the reporting window in days for analytics
	// and statistics endpoints.
	DefaultStatsPeriod = 30
)

// Moderation actions understood by the backend.
const (
	ActionApprove            = "approve"
	ActionReject             = "reject"
	ActionSetAvailability    = "set_availability"
	ActionUpdatePrice        = "update_price"
	ActionToggleAvailability = "toggle_availability"
)

type modelActionRequest struct {
	Action string `json:"action"`
	Data   any    `json:"data,omitempty"`
}

type bulkActionRequest struct {
	Action   string   `json:"action"`
	ModelIDs []string `json:"modelIds"`
	Data     any      `json:"data,omitempty"`
}

// ModelService exposes moderation and reporting operations over
// service-provider profiles.
type ModelService struct {
	client *api.Client
}

// NewModelService constructs a ModelService around an injected client.
func NewModelService(client *api.Client) *ModelService {
	return &ModelService{client: client}
}

// GetAllModels lists models matching filters. On failure the list is empty
// and the pagination block echoes the requested window.
func (s *ModelService) GetAllModels(ctx context.Context, filters models.ModelFilters) (models.ModelList, error) {
	fallback := emptyModelList(intOrDefault(filters.Limit, DefaultListLimit), intOrDefault(filters.Offset, 0))

	q := &api.Query{}
	q.Set("status", filters.Status)
	q.Set("search", filters.Search)
	q.Set("location", filters.Location)
	q.SetFloat("priceMin", filters.PriceMin)
	q.SetFloat("priceMax", filters.PriceMax)
	q.Set("sortBy", filters.SortBy)
	q.Set("sortOrder", filters.SortOrder)
	q.SetInt("limit", filters.Limit)
	q.SetInt("offset", filters.Offset)

	return s.listModels(ctx, q.Append("/admin/models"), "list models", fallback)
}

// GetPendingModels lists profiles awaiting moderation.
func (s *ModelService) GetPendingModels(ctx context.Context, limit, offset int) (models.ModelList, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	if offset < 0 {
		offset = 0
	}

	q := &api.Query{}
	q.Set("status", "pending")
	q.SetInt("limit", &limit)
	q.SetInt("offset", &offset)

	return s.listModels(ctx, q.Append("/admin/models"), "list pending models", emptyModelList(limit, offset))
}

// SearchModels runs a relevance-ranked search over model profiles.
func (s *ModelService) SearchModels(ctx context.Context, query string, limit, offset int) (models.ModelSearchResult, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	if offset < 0 {
		offset = 0
	}

	result := models.ModelSearchResult{
		Models:     []models.SearchModel{},
		Pagination: models.Pagination{Limit: limit, Offset: offset},
		SearchInfo: models.SearchInfo{Query: query},
	}

	q := &api.Query{}
	q.Set("q", query)
	q.SetInt("limit", &limit)
	q.SetInt("offset", &offset)

	env, err := s.client.Get(ctx, q.Append("/admin/models/search"))
	if err != nil {
		return result, fmt.Errorf("search models: %w", err)
	}
	if err := env.Err(); err != nil {
		return result, fmt.Errorf("search models: %w", err)
	}
	if err := env.Decode(&result); err != nil {
		return models.ModelSearchResult{
			Models:     []models.SearchModel{},
			Pagination: models.Pagination{Limit: limit, Offset: offset},
			SearchInfo: models.SearchInfo{Query: query},
		}, fmt.Errorf("search models: %w", err)
	}
	if result.Models == nil {
		result.Models = []models.SearchModel{}
	}
	return result, nil
}

// GetModelByID fetches the detail bundle for one model. The backend
// returns either the bundle with the profile nested under "model" or the
// bare profile itself; both shapes normalize to a ModelDetail. An
// unrecognized payload yields nil.
func (s *ModelService) GetModelByID(ctx context.Context, modelID string) (*models.ModelDetail, error) {
	env, err := s.client.Get(ctx, "/admin/models/"+url.PathEscape(modelID))
	if err != nil {
		return nil, fmt.Errorf("get model %s: %w", modelID, err)
	}
	if err := env.Err(); err != nil {
		return nil, fmt.Errorf("get model %s: %w", modelID, err)
	}
	if env.Empty() {
		return nil, nil
	}

	var detail models.ModelDetail
	if err := env.Decode(&detail); err == nil && detail.Model.ModelID != "" {
		return &detail, nil
	}

	var flat models.Model
	if err := env.Decode(&flat); err == nil && flat.ModelID != "" {
		return &models.ModelDetail{Model: flat}, nil
	}

	return nil, fmt.Errorf("get model %s: unrecognized response shape", modelID)
}

// GetModelAnalytics fetches the analytics report for one model over the
// given period in days.
func (s *ModelService) GetModelAnalytics(ctx context.Context, modelID string, period int) (*models.ModelAnalytics, error) {
	if period <= 0 {
		period = DefaultStatsPeriod
	}

	path := "/admin/models/" + url.PathEscape(modelID) + "/analytics?period=" + strconv.Itoa(period)
	env, err := s.client.Get(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("model %s analytics: %w", modelID, err)
	}
	if err := env.Err(); err != nil {
		return nil, fmt.Errorf("model %s analytics: %w", modelID, err)
	}
	if env.Empty() {
		return nil, nil
	}

	var analytics models.ModelAnalytics
	if err := env.Decode(&analytics); err != nil {
		return nil, fmt.Errorf("model %s analytics: %w", modelID, err)
	}
	return &analytics, nil
}

// GetModelTransactions lists the sales attributed to one model.
func (s *ModelService) GetModelTransactions(ctx context.Context, modelID string, limit, offset int) (models.ModelTransactionList, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	if offset < 0 {
		offset = 0
	}

	result := models.ModelTransactionList{
		Transactions: []models.ModelTransaction{},
		Pagination:   models.Pagination{Limit: limit, Offset: offset},
	}

	q := &api.Query{}
	q.SetInt("limit", &limit)
	q.SetInt("offset", &offset)

	env, err := s.client.Get(ctx, q.Append("/admin/models/"+url.PathEscape(modelID)+"/transactions"))
	if err != nil {
		return result, fmt.Errorf("model %s transactions: %w", modelID, err)
	}
	if err := env.Err(); err != nil {
		return result, fmt.Errorf("model %s transactions: %w", modelID, err)
	}
	if err := env.Decode(&result); err != nil {
		return models.ModelTransactionList{
			Transactions: []models.ModelTransaction{},
			Pagination:   models.Pagination{Limit: limit, Offset: offset},
		}, fmt.Errorf("model %s transactions: %w", modelID, err)
	}
	if result.Transactions == nil {
		result.Transactions = []models.ModelTransaction{}
	}
	return result, nil
}

// GetStats fetches the platform-wide model statistics report.
func (s *ModelService) GetStats(ctx context.Context, period int) (*models.ModelStats, error) {
	if period <= 0 {
		period = DefaultStatsPeriod
	}

	env, err := s.client.Get(ctx, "/admin/models/stats?period="+strconv.Itoa(period))
	if err != nil {
		return nil, fmt.Errorf("model stats: %w", err)
	}
	if err := env.Err(); err != nil {
		return nil, fmt.Errorf("model stats: %w", err)
	}
	if env.Empty() {
		return nil, nil
	}

	var stats models.ModelStats
	if err := env.Decode(&stats); err != nil {
		return nil, fmt.Errorf("model stats: %w", err)
	}
	return &stats, nil
}

// ApproveModel marks a profile as admin-approved.
func (s *ModelService) ApproveModel(ctx context.Context, modelID string) error {
	return s.updateModel(ctx, modelID, ActionApprove, nil)
}

// RejectModel declines a profile with a reason the backend records.
func (s *ModelService) RejectModel(ctx context.Context, modelID, reason string) error {
	return s.updateModel(ctx, modelID, ActionReject, map[string]string{"reason": reason})
}

// UpdateModelAvailability switches a profile between available and not.
func (s *ModelService) UpdateModelAvailability(ctx context.Context, modelID string, availability bool) error {
	return s.updateModel(ctx, modelID, ActionSetAvailability, map[string]bool{"availability": availability})
}

// UpdateModelPrice sets the contact price of a profile.
func (s *ModelService) UpdateModelPrice(ctx context.Context, modelID string, price float64) error {
	return s.updateModel(ctx, modelID, ActionUpdatePrice, map[string]float64{"price": price})
}

// DeactivateModel removes a profile from circulation.
func (s *ModelService) DeactivateModel(ctx context.Context, modelID string) error {
	env, err := s.client.Delete(ctx, "/admin/models/"+url.PathEscape(modelID))
	if err != nil {
		return fmt.Errorf("deactivate model %s: %w", modelID, err)
	}
	if err := env.Err(); err != nil {
		return fmt.Errorf("deactivate model %s: %w", modelID, err)
	}
	return nil
}

// BulkApprove approves every listed profile in one request.
func (s *ModelService) BulkApprove(ctx context.Context, modelIDs []string) (models.BulkOperation, error) {
	return s.bulk(ctx, ActionApprove, modelIDs, nil)
}

// BulkReject declines every listed profile with a shared reason.
func (s *ModelService) BulkReject(ctx context.Context, modelIDs []string, reason string) (models.BulkOperation, error) {
	return s.bulk(ctx, ActionReject, modelIDs, map[string]string{"reason": reason})
}

// BulkSetAvailability applies one availability value to every listed profile.
func (s *ModelService) BulkSetAvailability(ctx context.Context, modelIDs []string, availability bool) (models.BulkOperation, error) {
	return s.bulk(ctx, ActionSetAvailability, modelIDs, map[string]bool{"availability": availability})
}

// BulkToggleAvailability flips the availability of every listed profile.
func (s *ModelService) BulkToggleAvailability(ctx context.Context, modelIDs []string) (models.BulkOperation, error) {
	return s.bulk(ctx, ActionToggleAvailability, modelIDs, nil)
}

func (s *ModelService) listModels(ctx context.Context, path, op string, fallback models.ModelList) (models.ModelList, error) {
	env, err := s.client.Get(ctx, path)
	if err != nil {
		return fallback, fmt.Errorf("%s: %w", op, err)
	}
	if err := env.Err(); err != nil {
		return fallback, fmt.Errorf("%s: %w", op, err)
	}

	result := fallback
	if err := env.Decode(&result); err != nil {
		return fallback, fmt.Errorf("%s: %w", op, err)
	}
	if result.Models == nil {
		result.Models = []models.Model{}
	}
	return result, nil
}

func (s *ModelService) updateModel(ctx context.Context, modelID, action string, data any) error {
	body := modelActionRequest{Action: action, Data: data}
	env, err := s.client.Put(ctx, "/admin/models/"+url.PathEscape(modelID), body)
	if err != nil {
		return fmt.Errorf("%s model %s: %w", action, modelID, err)
	}
	if err := env.Err(); err != nil {
		return fmt.Errorf("%s model %s: %w", action, modelID, err)
	}
	return nil
}

func (s *ModelService) bulk(ctx context.Context, action string, modelIDs []string, data any) (models.BulkOperation, error) {
	fallback := models.BulkOperation{Action: action, ModelIDs: []string{}}

	body := bulkActionRequest{Action: action, ModelIDs: modelIDs, Data: data}
	env, err := s.client.Post(ctx, "/admin/models/bulk", body)
	if err != nil {
		return fallback, fmt.Errorf("bulk %s: %w", action, err)
	}
	if err := env.Err(); err != nil {
		return fallback, fmt.Errorf("bulk %s: %w", action, err)
	}

	result := fallback
	if err := env.Decode(&result); err != nil {
		return fallback, fmt.Errorf("bulk %s: %w", action, err)
	}
	if result.Action == "" {
		result.Action = action
	}
	if result.ModelIDs == nil {
		result.ModelIDs = []string{}
	}
	return result, nil
}

func emptyModelList(limit, offset int) models.ModelList {
	return models.ModelList{
		Models:     []models.Model{},
		Pagination: models.Pagination{Limit: limit, Offset: offset},
	}
}

func intOrDefault(v *int, fallback int) int {
	if v == nil {
		return fallback
	}
	return *v
}
