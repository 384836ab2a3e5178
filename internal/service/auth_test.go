package service

import (
	"context"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asilingas/fambudg/internal/domain"
	"github.com/asilingas/fambudg/pkg/access"
)

func TestAuthService_RegisterAndLogin(t *testing.T) {
	f := setupServices(t)
	ctx := context.Background()

	user, err := f.auth.Register(ctx, &domain.RegisterRequest{
		Email:    "parent@family.test",
		Password: "correct horse",
		Name:     "Parent",
	})
	require.NoError(t, err)
	assert.Equal(t, access.RoleAdmin, user.Role)
	assert.NotEmpty(t, user.PasswordHash)

	resp, err := f.auth.Login(ctx, &domain.LoginRequest{
		Email:    "parent@family.test",
		Password: "correct horse",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, user.ID, resp.User.ID)

	parsed, err := jwt.Parse(resp.Token, func(*jwt.Token) (any, error) {
		return []byte("test-secret"), nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	require.NoError(t, err)
	claims := parsed.Claims.(jwt.MapClaims)
	assert.Equal(t, user.ID, claims["user_id"])
	assert.Equal(t, "admin", claims["role"])
}

func TestAuthService_LoginFailureMessagesMatch(t *testing.T) {
	f := setupServices(t)
	ctx := context.Background()

	_, err := f.auth.Register(ctx, &domain.RegisterRequest{
		Email:    "parent@family.test",
		Password: "correct horse",
		Name:     "Parent",
	})
	require.NoError(t, err)

	_, errUnknown := f.auth.Login(ctx, &domain.LoginRequest{
		Email: "nobody@family.test", Password: "whatever!",
	})
	_, errWrongPw := f.auth.Login(ctx, &domain.LoginRequest{
		Email: "parent@family.test", Password: "wrong password",
	})

	require.Error(t, errUnknown)
	require.Error(t, errWrongPw)
	// Same message for both, so callers cannot probe which emails exist.
	assert.Equal(t, errUnknown.Error(), errWrongPw.Error())
}

func TestAuthService_RegisterValidation(t *testing.T) {
	f := setupServices(t)
	ctx := context.Background()

	_, err := f.auth.Register(ctx, &domain.RegisterRequest{
		Email: "short@family.test", Password: "abc", Name: "Short",
	})
	var ve *domain.ValidationError
	assert.ErrorAs(t, err, &ve)

	_, err = f.auth.Register(ctx, &domain.RegisterRequest{
		Email: "admin@family.test", Password: "long enough", Name: "Dup",
	})
	var conflict *domain.ConflictError
	assert.ErrorAs(t, err, &conflict)
}

func TestUserService_DeleteSelfBlocked(t *testing.T) {
	f := setupServices(t)

	err := f.userSvc.Delete(context.Background(), f.admin.ID, f.admin.ID)
	var ve *domain.ValidationError
	assert.ErrorAs(t, err, &ve)

	require.NoError(t, f.userSvc.Delete(context.Background(), f.admin.ID, f.child.ID))
}
