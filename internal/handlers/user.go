package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/example/modelboard/internal/models"
	"github.com/example/modelboard/internal/services"
)

// UserHandler manages user administration endpoints.
type UserHandler struct {
	users *services.UserService
}

// NewUserHandler constructs UserHandler.
func NewUserHandler(users *services.UserService) *UserHandler {
	return &UserHandler{users: users}
}

// List returns all users, optionally filtered by role.
func (h *UserHandler) List(c *fiber.Ctx) error {
	var (
		list []models.User
		err  error
	)
	if role := c.Query("role"); role != "" {
		list, err = h.users.GetUsersByRole(c.Context(), models.Role(role))
	} else {
		list, err = h.users.GetAllUsers(c.Context())
	}
	if err != nil {
		return respondUpstream(c, err, list)
	}
	return respondOK(c, list)
}

// Get returns a single user.
func (h *UserHandler) Get(c *fiber.Ctx) error {
	user, err := h.users.GetUserByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondUpstream(c, err, nil)
	}
	if user == nil {
		return fiber.NewError(fiber.StatusNotFound, "user not found")
	}
	return respondOK(c, user)
}

// Search runs a free-text search over users.
func (h *UserHandler) Search(c *fiber.Ctx) error {
	query := c.Query("q")
	if query == "" {
		return fiber.NewError(fiber.StatusBadRequest, "query parameter q is required")
	}

	list, err := h.users.SearchUsers(c.Context(), query)
	if err != nil {
		return respondUpstream(c, err, list)
	}
	return respondOK(c, list)
}

type userStatusRequest struct {
	IsActive *bool `json:"isActive"`
}

// UpdateStatus toggles whether an account is active.
func (h *UserHandler) UpdateStatus(c *fiber.Ctx) error {
	var req userStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if req.IsActive == nil {
		return fiber.NewError(fiber.StatusBadRequest, "isActive is required")
	}

	if err := h.users.UpdateUserStatus(c.Context(), c.Params("id"), *req.IsActive); err != nil {
		return respondUpstream(c, err, nil)
	}
	return respondOK(c, nil)
}
