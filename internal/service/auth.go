// Package service implements the budgeting business rules on top of the
// domain repository ports.
package service

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/asilingas/fambudg/internal/domain"
	"github.com/asilingas/fambudg/pkg/access"
)

// AuthService handles registration, credential login, and token issuance.
type AuthService struct {
	users     domain.UserRepository
	jwtSecret []byte
	tokenTTL  time.Duration
}

// NewAuthService creates a new AuthService.
func NewAuthService(users domain.UserRepository, jwtSecret string, tokenTTL time.Duration) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 7 * 24 * time.Hour
	}
	return &AuthService{users: users, jwtSecret: []byte(jwtSecret), tokenTTL: tokenTTL}
}

// Register self-registers a family admin. Additional members and
// children are created by an admin through the user service.
func (s *AuthService) Register(ctx context.Context, req *domain.RegisterRequest) (*domain.User, error) {
	if req.Email == "" || req.Name == "" {
		return nil, domain.ErrValidation("email and name are required")
	}
	if len(req.Password) < 8 {
		return nil, domain.ErrValidation("password must be at least 8 characters")
	}
	if existing, _ := s.users.GetByEmail(ctx, req.Email); existing != nil {
		return nil, domain.ErrConflict("user with this email already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	return s.users.Create(ctx, &domain.User{
		Email:        req.Email,
		Name:         req.Name,
		Role:         access.RoleAdmin,
		PasswordHash: string(hash),
	})
}

// Login authenticates credentials and returns a signed token with the
// user. The failure message is deliberately identical for unknown email
// and wrong password.
func (s *AuthService) Login(ctx context.Context, req *domain.LoginRequest) (*domain.LoginResponse, error) {
	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, domain.ErrAccessDenied("invalid email or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, domain.ErrAccessDenied("invalid email or password")
	}

	token, err := s.IssueToken(user)
	if err != nil {
		return nil, err
	}
	return &domain.LoginResponse{Token: token, User: *user}, nil
}

// GetUserByID returns the user behind a principal, for /auth/me.
func (s *AuthService) GetUserByID(ctx context.Context, id string) (*domain.User, error) {
	return s.users.GetByID(ctx, id)
}

// IssueToken signs an HS256 session token carrying the identity and
// role claims the auth middleware trusts.
func (s *AuthService) IssueToken(user *domain.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"name":    user.Name,
		"role":    string(user.Role),
		"iat":     now.Unix(),
		"exp":     now.Add(s.tokenTTL).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtSecret)
}
