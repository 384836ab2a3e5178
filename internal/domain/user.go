package domain

import (
	"time"

	"github.com/asilingas/fambudg/pkg/access"
)

// User is a family member account. PasswordHash never crosses the API
// boundary.
type User struct {
	ID           string      `json:"id"`
	Email        string      `json:"email"`
	Name         string      `json:"name"`
	Role         access.Role `json:"role"`
	PasswordHash string      `json:"-"`
	CreatedAt    time.Time   `json:"createdAt"`
	UpdatedAt    time.Time   `json:"updatedAt"`
}

// Principal returns the authorization view of the user.
func (u *User) Principal() access.Principal {
	return access.Principal{ID: u.ID, Email: u.Email, Name: u.Name, Role: u.Role}
}

// RegisterRequest self-registers the first family admin or a new member.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// CreateUserRequest is the admin-side user creation payload.
type CreateUserRequest struct {
	Email    string      `json:"email"`
	Password string      `json:"password"`
	Name     string      `json:"name"`
	Role     access.Role `json:"role"`
}

// UpdateUserRequest carries optional user field updates.
type UpdateUserRequest struct {
	Name *string      `json:"name,omitempty"`
	Role *access.Role `json:"role,omitempty"`
}

// LoginRequest is the credential exchange payload.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse carries the issued bearer token and the authenticated user.
type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
