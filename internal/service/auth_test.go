package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chefincasa/backend/internal/apperrors"
	"github.com/chefincasa/backend/internal/models"
	"github.com/chefincasa/backend/internal/testhelpers"
	"github.com/chefincasa/backend/internal/types"
)

func registerRequest(email string) *types.RegisterRequest {
	return &types.RegisterRequest{
		FirstName:   "Mario",
		LastName:    "Rossi",
		CountryCode: "it",
		PhonePrefix: "+39",
		PhoneNumber: "3331234567",
		Email:       email,
		Password:    "supersecret1",
	}
}

func TestRegisterAndLogin(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := NewAuthService(db, "test-secret")
	ctx := context.Background()

	chef, token, err := svc.Register(ctx, registerRequest("Mario@Example.COM"))
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "mario@example.com", chef.Email)
	assert.Equal(t, "IT", chef.CountryCode)
	assert.Equal(t, models.RoleChef, chef.Role)
	assert.NotEqual(t, "supersecret1", chef.PasswordHash)

	logged, token, err := svc.Login(ctx, "mario@example.com", "supersecret1")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, chef.ID, logged.ID)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := NewAuthService(db, "test-secret")
	ctx := context.Background()

	_, _, err := svc.Register(ctx, registerRequest("mario@example.com"))
	require.NoError(t, err)

	req := registerRequest("mario@example.com")
	req.PhoneNumber = "3339999999"
	_, _, err = svc.Register(ctx, req)
	require.Error(t, err)
	assert.Equal(t, 409, apperrors.StatusOf(err))
	assert.EqualError(t, err, "email già registrata")
}

func TestRegisterDuplicatePhone(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := NewAuthService(db, "test-secret")
	ctx := context.Background()

	_, _, err := svc.Register(ctx, registerRequest("mario@example.com"))
	require.NoError(t, err)

	req := registerRequest("luigi@example.com")
	_, _, err = svc.Register(ctx, req)
	require.Error(t, err)
	assert.Equal(t, 409, apperrors.StatusOf(err))
	assert.EqualError(t, err, "numero di telefono già registrato")
}

func TestLoginWrongPassword(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := NewAuthService(db, "test-secret")
	ctx := context.Background()

	_, _, err := svc.Register(ctx, registerRequest("mario@example.com"))
	require.NoError(t, err)

	_, _, err = svc.Login(ctx, "mario@example.com", "wrongpassword")
	require.Error(t, err)
	assert.Equal(t, 401, apperrors.StatusOf(err))
	assert.EqualError(t, err, "credenziali non valide")

	// Unknown email answers identically
	_, _, err = svc.Login(ctx, "nobody@example.com", "whatever")
	require.Error(t, err)
	assert.Equal(t, 401, apperrors.StatusOf(err))
	assert.EqualError(t, err, "credenziali non valide")
}

func TestChangePassword(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := NewAuthService(db, "test-secret")
	ctx := context.Background()

	chef, _, err := svc.Register(ctx, registerRequest("mario@example.com"))
	require.NoError(t, err)

	err = svc.ChangePassword(ctx, chef.ID, "supersecret1", "supersecret1")
	require.Error(t, err)
	assert.Equal(t, 400, apperrors.StatusOf(err))

	err = svc.ChangePassword(ctx, chef.ID, "wrongcurrent", "newsecret123")
	require.Error(t, err)
	assert.Equal(t, 400, apperrors.StatusOf(err))
	assert.EqualError(t, err, "password attuale non corretta")

	err = svc.ChangePassword(ctx, chef.ID, "supersecret1", "newsecret123")
	require.NoError(t, err)

	_, _, err = svc.Login(ctx, "mario@example.com", "supersecret1")
	assert.Error(t, err)
	_, _, err = svc.Login(ctx, "mario@example.com", "newsecret123")
	assert.NoError(t, err)
}

func TestValidateToken(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := NewAuthService(db, "test-secret")
	ctx := context.Background()

	chef, token, err := svc.Register(ctx, registerRequest("mario@example.com"))
	require.NoError(t, err)

	principal, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, chef.ID, principal.ChefID)
	assert.Equal(t, models.RoleChef, principal.Role)

	_, err = svc.ValidateToken("not.a.token")
	assert.Error(t, err)

	other := NewAuthService(db, "different-secret")
	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}
