package services

import (
	"context"
	"fmt"
	"net/url"

	"github.com/example/modelboard/internal/api"
	"github.com/example/modelboard/internal/models"
)

// UserService exposes account operations against the backend API.
type UserService struct {
	client *api.Client
}

// NewUserService constructs a UserService around an injected client.
func NewUserService(client *api.Client) *UserService {
	return &UserService{client: client}
}

// GetAllUsers returns every registered user. On failure the list is empty
// and the error carries the diagnostic.
func (s *UserService) GetAllUsers(ctx context.Context) ([]models.User, error) {
	return s.listUsers(ctx, "/users", "list users")
}

// GetUserByID returns a single user, or nil when the backend has none.
func (s *UserService) GetUserByID(ctx context.Context, userID string) (*models.User, error) {
	env, err := s.client.Get(ctx, "/users/"+url.PathEscape(userID))
	if err != nil {
		return nil, fmt.Errorf("get user %s: %w", userID, err)
	}
	if err := env.Err(); err != nil {
		return nil, fmt.Errorf("get user %s: %w", userID, err)
	}

	var user models.User
	if err := env.Decode(&user); err != nil {
		return nil, fmt.Errorf("get user %s: %w", userID, err)
	}
	if user.ID == "" {
		return nil, nil
	}
	return &user, nil
}

// UpdateUserStatus toggles the active flag of an account.
func (s *UserService) UpdateUserStatus(ctx context.Context, userID string, isActive bool) error {
	body := map[string]bool{"isActive": isActive}
	env, err := s.client.Put(ctx, "/users/"+url.PathEscape(userID)+"/status", body)
	if err != nil {
		return fmt.Errorf("update user %s status: %w", userID, err)
	}
	if err := env.Err(); err != nil {
		return fmt.Errorf("update user %s status: %w", userID, err)
	}
	return nil
}

// SearchUsers runs a free-text search over accounts.
func (s *UserService) SearchUsers(ctx context.Context, query string) ([]models.User, error) {
	q := &api.Query{}
	q.Set("q", query)
	return s.listUsers(ctx, q.Append("/users/search"), "search users")
}

// GetUsersByRole filters accounts by role.
func (s *UserService) GetUsersByRole(ctx context.Context, role models.Role) ([]models.User, error) {
	q := &api.Query{}
	q.Set("role", string(role))
	return s.listUsers(ctx, q.Append("/users"), "list users by role")
}

func (s *UserService) listUsers(ctx context.Context, path, op string) ([]models.User, error) {
	users := []models.User{}

	env, err := s.client.Get(ctx, path)
	if err != nil {
		return users, fmt.Errorf("%s: %w", op, err)
	}
	if err := env.Err(); err != nil {
		return users, fmt.Errorf("%s: %w", op, err)
	}
	if err := env.Decode(&users); err != nil {
		return []models.User{}, fmt.Errorf("%s: %w", op, err)
	}
	if users == nil {
		users = []models.User{}
	}
	return users, nil
}
