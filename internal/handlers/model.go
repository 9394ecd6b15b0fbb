package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/example/modelboard/internal/models"
	"github.com/example/modelboard/internal/services"
	"github.com/example/modelboard/internal/utils"
)

// ModelHandler manages model moderation endpoints.
type ModelHandler struct {
	models *services.ModelService
}

// NewModelHandler constructs ModelHandler.
func NewModelHandler(models *services.ModelService) *ModelHandler {
	return &ModelHandler{models: models}
}

// List returns models matching the query-string filters.
func (h *ModelHandler) List(c *fiber.Ctx) error {
	window := utils.ParseListWindow(c)
	filters := models.ModelFilters{
		Status:    c.Query("status"),
		Search:    c.Query("search"),
		Location:  c.Query("location"),
		SortBy:    c.Query("sortBy"),
		SortOrder: c.Query("sortOrder"),
		Limit:     &window.Limit,
		Offset:    &window.Offset,
	}
	filters.PriceMin = parseFloatQuery(c, "priceMin")
	filters.PriceMax = parseFloatQuery(c, "priceMax")

	list, err := h.models.GetAllModels(c.Context(), filters)
	if err != nil {
		return respondUpstream(c, err, list)
	}
	return respondOK(c, list)
}

// Pending returns the moderation queue.
func (h *ModelHandler) Pending(c *fiber.Ctx) error {
	window := utils.ParseListWindow(c)

	list, err := h.models.GetPendingModels(c.Context(), window.Limit, window.Offset)
	if err != nil {
		return respondUpstream(c, err, list)
	}
	return respondOK(c, list)
}

// Search runs a relevance-ranked model search.
func (h *ModelHandler) Search(c *fiber.Ctx) error {
	query := c.Query("q")
	if query == "" {
		return fiber.NewError(fiber.StatusBadRequest, "query parameter q is required")
	}
	window := utils.ParseListWindow(c)

	result, err := h.models.SearchModels(c.Context(), query, window.Limit, window.Offset)
	if err != nil {
		return respondUpstream(c, err, result)
	}
	return respondOK(c, result)
}

// Get returns the detail bundle for one model.
func (h *ModelHandler) Get(c *fiber.Ctx) error {
	detail, err := h.models.GetModelByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondUpstream(c, err, nil)
	}
	if detail == nil {
		return fiber.NewError(fiber.StatusNotFound, "model not found")
	}
	return respondOK(c, detail)
}

// Analytics returns the per-model analytics report.
func (h *ModelHandler) Analytics(c *fiber.Ctx) error {
	period := utils.ParsePeriod(c, services.DefaultStatsPeriod)

	analytics, err := h.models.GetModelAnalytics(c.Context(), c.Params("id"), period)
	if err != nil {
		return respondUpstream(c, err, nil)
	}
	if analytics == nil {
		return fiber.NewError(fiber.StatusNotFound, "analytics not available")
	}
	return respondOK(c, analytics)
}

// Transactions lists the sales attributed to one model.
func (h *ModelHandler) Transactions(c *fiber.Ctx) error {
	window := utils.ParseListWindow(c)

	list, err := h.models.GetModelTransactions(c.Context(), c.Params("id"), window.Limit, window.Offset)
	if err != nil {
		return respondUpstream(c, err, list)
	}
	return respondOK(c, list)
}

// Stats returns the platform-wide model statistics report.
func (h *ModelHandler) Stats(c *fiber.Ctx) error {
	period := utils.ParsePeriod(c, services.DefaultStatsPeriod)

	stats, err := h.models.GetStats(c.Context(), period)
	if err != nil {
		return respondUpstream(c, err, nil)
	}
	if stats == nil {
		return fiber.NewError(fiber.StatusNotFound, "stats not available")
	}
	return respondOK(c, stats)
}

// Approve marks a model as admin-approved.
func (h *ModelHandler) Approve(c *fiber.Ctx) error {
	if err := h.models.ApproveModel(c.Context(), c.Params("id")); err != nil {
		return respondUpstream(c, err, nil)
	}
	return respondOK(c, nil)
}

type rejectRequest struct {
	Reason string `json:"reason"`
}

// Reject declines a model with a required reason.
func (h *ModelHandler) Reject(c *fiber.Ctx) error {
	var req rejectRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if req.Reason == "" {
		return fiber.NewError(fiber.StatusBadRequest, "reason is required")
	}

	if err := h.models.RejectModel(c.Context(), c.Params("id"), req.Reason); err != nil {
		return respondUpstream(c, err, nil)
	}
	return respondOK(c, nil)
}

type availabilityRequest struct {
	Availability *bool `json:"availability"`
}

// Availability sets whether a model is taking new work.
func (h *ModelHandler) Availability(c *fiber.Ctx) error {
	var req availabilityRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if req.Availability == nil {
		return fiber.NewError(fiber.StatusBadRequest, "availability is required")
	}

	if err := h.models.UpdateModelAvailability(c.Context(), c.Params("id"), *req.Availability); err != nil {
		return respondUpstream(c, err, nil)
	}
	return respondOK(c, nil)
}

type priceRequest struct {
	Price *float64 `json:"price"`
}

// Price sets the contact price of a model.
func (h *ModelHandler) Price(c *fiber.Ctx) error {
	var req priceRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if req.Price == nil {
		return fiber.NewError(fiber.StatusBadRequest, "price is required")
	}

	if err := h.models.UpdateModelPrice(c.Context(), c.Params("id"), *req.Price); err != nil {
		return respondUpstream(c, err, nil)
	}
	return respondOK(c, nil)
}

// Deactivate removes a model from circulation.
func (h *ModelHandler) Deactivate(c *fiber.Ctx) error {
	if err := h.models.DeactivateModel(c.Context(), c.Params("id")); err != nil {
		return respondUpstream(c, err, nil)
	}
	return respondOK(c, nil)
}

type bulkRequest struct {
	ModelIDs     []string `json:"modelIds"`
	Reason       string   `json:"reason"`
	Availability *bool    `json:"availability"`
}

// BulkApprove approves every listed model.
func (h *ModelHandler) BulkApprove(c *fiber.Ctx) error {
	req, err := parseBulkRequest(c)
	if err != nil {
		return err
	}

	result, err := h.models.BulkApprove(c.Context(), req.ModelIDs)
	if err != nil {
		return respondUpstream(c, err, result)
	}
	return respondOK(c, result)
}

// BulkReject declines every listed model with a shared reason.
func (h *ModelHandler) BulkReject(c *fiber.Ctx) error {
	req, err := parseBulkRequest(c)
	if err != nil {
		return err
	}
	if req.Reason == "" {
		return fiber.NewError(fiber.StatusBadRequest, "reason is required")
	}

	result, err := h.models.BulkReject(c.Context(), req.ModelIDs, req.Reason)
	if err != nil {
		return respondUpstream(c, err, result)
	}
	return respondOK(c, result)
}

// BulkAvailability applies one availability value to every listed model.
func (h *ModelHandler) BulkAvailability(c *fiber.Ctx) error {
	req, err := parseBulkRequest(c)
	if err != nil {
		return err
	}
	if req.Availability == nil {
		return fiber.NewError(fiber.StatusBadRequest, "availability is required")
	}

	result, err := h.models.BulkSetAvailability(c.Context(), req.ModelIDs, *req.Availability)
	if err != nil {
		return respondUpstream(c, err, result)
	}
	return respondOK(c, result)
}

// BulkToggle flips the availability of every listed model.
func (h *ModelHandler) BulkToggle(c *fiber.Ctx) error {
	req, err := parseBulkRequest(c)
	if err != nil {
		return err
	}

	result, err := h.models.BulkToggleAvailability(c.Context(), req.ModelIDs)
	if err != nil {
		return respondUpstream(c, err, result)
	}
	return respondOK(c, result)
}

func parseBulkRequest(c *fiber.Ctx) (bulkRequest, error) {
	var req bulkRequest
	if err := c.BodyParser(&req); err != nil {
		return req, fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if len(req.ModelIDs) == 0 {
		return req, fiber.NewError(fiber.StatusBadRequest, "modelIds is required")
	}
	return req, nil
}

func parseFloatQuery(c *fiber.Ctx, key string) *float64 {
	raw := c.Query(key)
	if raw == "" {
		return nil
	}
	parsed, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &parsed
}
