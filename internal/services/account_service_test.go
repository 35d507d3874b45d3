package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"voyago/internal/models/db_models"
	"voyago/internal/models/request_models"
	"voyago/pkg/utils"
)

func TestCreateAccountSeedsProfile(t *testing.T) {
	accountRepo := newFakeAccountRepo()
	profileRepo := &fakeProfileRepo{}
	svc := NewAccountService(accountRepo, profileRepo)

	err := svc.CreateAccount(context.Background(), request_models.SignUpRequest{
		DisplayName: "Ada",
		Email:       "ada@example.com",
		Password:    "secret123",
	})
	require.NoError(t, err)

	account, err := accountRepo.FindByEmail(context.Background(), "ada@example.com")
	require.NoError(t, err)
	require.NotNil(t, account)
	assert.Equal(t, "Ada", account.Name)
	assert.NotEqual(t, "secret123", account.PasswordHash)

	require.NotNil(t, profileRepo.profile)
	assert.Equal(t, account.ID, profileRepo.profile.ID)
	assert.Equal(t, db_models.DefaultGenerations, profileRepo.profile.GenerationsRemaining)
	assert.Equal(t, db_models.PaceModerate, profileRepo.profile.TravelPace)
}

func TestCreateAccountDuplicateEmail(t *testing.T) {
	accountRepo := newFakeAccountRepo()
	svc := NewAccountService(accountRepo, &fakeProfileRepo{})

	req := request_models.SignUpRequest{DisplayName: "Ada", Email: "ada@example.com", Password: "secret123"}
	require.NoError(t, svc.CreateAccount(context.Background(), req))

	err := svc.CreateAccount(context.Background(), req)
	assert.ErrorIs(t, err, utils.ErrEmailAlreadyExists)
}

func TestLogin(t *testing.T) {
	accountRepo := newFakeAccountRepo()
	svc := NewAccountService(accountRepo, &fakeProfileRepo{})
	require.NoError(t, svc.CreateAccount(context.Background(), request_models.SignUpRequest{
		DisplayName: "Ada",
		Email:       "ada@example.com",
		Password:    "secret123",
	}))

	t.Run("correct password", func(t *testing.T) {
		token, err := svc.Login(context.Background(), request_models.LoginRequest{
			Email:    "ada@example.com",
			Password: "secret123",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, token)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(context.Background(), request_models.LoginRequest{
			Email:    "ada@example.com",
			Password: "wrong",
		})
		assert.ErrorIs(t, err, utils.ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := svc.Login(context.Background(), request_models.LoginRequest{
			Email:    "nobody@example.com",
			Password: "secret123",
		})
		assert.ErrorIs(t, err, utils.ErrInvalidCredentials)
	})
}
