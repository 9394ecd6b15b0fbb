package models

import "time"

// Role identifies what a user account can do on the platform.
type Role string

const (
	RoleClient Role = "CLIENT"
	RoleModel  Role = "MODEL"
	RoleAdmin  Role = "ADMIN"
)

// User represents a platform account as the backend returns it.
type User struct {
	ID               string    `json:"id"`
	Phone            string    `json:"phone"`
	TelegramID       string    `json:"telegramId,omitempty"`
	TelegramUsername string    `json:"telegramUsername,omitempty"`
	Role             Role      `json:"role"`
	RegisteredAt     time.Time `json:"registeredAt"`
	IsActive         bool      `json:"isActive"`
}
