package service

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/asilingas/fambudg/internal/domain"
)

// UserService manages family members. All operations are admin-only,
// enforced by the router.
type UserService struct {
	users domain.UserRepository
}

// NewUserService creates a new UserService.
func NewUserService(users domain.UserRepository) *UserService {
	return &UserService{users: users}
}

func (s *UserService) List(ctx context.Context) ([]*domain.User, error) {
	return s.users.List(ctx)
}

func (s *UserService) Get(ctx context.Context, id string) (*domain.User, error) {
	return s.users.GetByID(ctx, id)
}

// Create adds a family member with an explicit role.
func (s *UserService) Create(ctx context.Context, req *domain.CreateUserRequest) (*domain.User, error) {
	if req.Email == "" || req.Name == "" {
		return nil, domain.ErrValidation("email and name are required")
	}
	if len(req.Password) < 8 {
		return nil, domain.ErrValidation("password must be at least 8 characters")
	}
	if !req.Role.Valid() {
		return nil, domain.ErrValidation("role must be one of admin, member, child")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return s.users.Create(ctx, &domain.User{
		Email:        req.Email,
		Name:         req.Name,
		Role:         req.Role,
		PasswordHash: string(hash),
	})
}

func (s *UserService) Update(ctx context.Context, id string, req *domain.UpdateUserRequest) (*domain.User, error) {
	if req.Role != nil && !req.Role.Valid() {
		return nil, domain.ErrValidation("role must be one of admin, member, child")
	}
	return s.users.Update(ctx, id, req)
}

// Delete removes a family member. The caller cannot delete themselves.
func (s *UserService) Delete(ctx context.Context, callerID, id string) error {
	if callerID == id {
		return domain.ErrValidation("cannot delete your own account")
	}
	return s.users.Delete(ctx, id)
}
