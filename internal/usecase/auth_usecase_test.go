package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndLogin(t *testing.T) {
	userRepo := newFakeUserRepo()
	authClient := newFakeAuthClient()
	uc := NewAuthUseCase(userRepo, authClient)

	result, err := uc.Register(context.Background(), RegisterInput{
		Email:     "thandi@example.com",
		Password:  "s3cret-pass",
		FirstName: "Thandi",
		LastName:  "Nkosi",
		Phone:     "082 555 0101",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, result.Token)
	assert.NotEmpty(t, result.RefreshToken)
	assert.Equal(t, "email", result.User.Provider)

	// Duplicate email is rejected.
	_, err = uc.Register(context.Background(), RegisterInput{
		Email:    "thandi@example.com",
		Password: "another-pass",
	})
	assert.Error(t, err)

	login, err := uc.Login(context.Background(), "thandi@example.com", "s3cret-pass")
	require.NoError(t, err)
	assert.Equal(t, result.User.ID, login.User.ID)

	_, err = uc.Login(context.Background(), "thandi@example.com", "wrong")
	assert.Error(t, err)
}

func TestRefreshToken(t *testing.T) {
	userRepo := newFakeUserRepo()
	authClient := newFakeAuthClient()
	uc := NewAuthUseCase(userRepo, authClient)

	result, err := uc.Register(context.Background(), RegisterInput{
		Email:     "sipho@example.com",
		Password:  "s3cret-pass",
		FirstName: "Sipho",
		LastName:  "Dlamini",
	})
	require.NoError(t, err)

	refreshed, err := uc.RefreshToken(context.Background(), result.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, result.User.ID, refreshed.User.ID)
	assert.NotEmpty(t, refreshed.Token)

	_, err = uc.RefreshToken(context.Background(), "bogus")
	assert.Error(t, err)
}

func TestUpdatePassword(t *testing.T) {
	userRepo := newFakeUserRepo()
	authClient := newFakeAuthClient()
	authUC := NewAuthUseCase(userRepo, authClient)
	userUC := NewUserUseCase(userRepo, authClient)

	result, err := authUC.Register(context.Background(), RegisterInput{
		Email:     "lerato@example.com",
		Password:  "old-pass-123",
		FirstName: "Lerato",
		LastName:  "Molefe",
	})
	require.NoError(t, err)

	err = userUC.UpdatePassword(context.Background(), result.User.ID, "wrong", "new-pass-123")
	assert.Error(t, err)

	err = userUC.UpdatePassword(context.Background(), result.User.ID, "old-pass-123", "new-pass-123")
	require.NoError(t, err)

	_, err = authUC.Login(context.Background(), "lerato@example.com", "new-pass-123")
	assert.NoError(t, err)
}
