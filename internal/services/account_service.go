package services

import (
	"context"
	"log"

	"voyago/internal/models/db_models"
	"voyago/internal/models/request_models"
	"voyago/internal/repositories"
	"voyago/pkg/utils"
)

type AccountServiceInterface interface {
	Login(ctx context.Context, req request_models.LoginRequest) (string, error)
	CreateAccount(ctx context.Context, req request_models.SignUpRequest) error
}

type AccountService struct {
	accountRepo repositories.AccountRepository
	profileRepo repositories.ProfileRepository
}

func NewAccountService(accountRepo repositories.AccountRepository, profileRepo repositories.ProfileRepository) AccountServiceInterface {
	return &AccountService{
		accountRepo: accountRepo,
		profileRepo: profileRepo,
	}
}

func (a *AccountService) Login(ctx context.Context, req request_models.LoginRequest) (string, error) {
	account, err := a.accountRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return "", utils.ErrDatabaseError
	}
	if account == nil {
		return "", utils.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(account.PasswordHash, req.Password); err != nil {
		return "", utils.ErrInvalidCredentials
	}

	token, err := utils.CreateToken(account.ID, account.Role)
	if err != nil {
		log.Printf("failed to sign token for account %s: %v", account.ID, err)
		return "", utils.ErrDatabaseError
	}

	return token, nil
}

// CreateAccount registers the account and seeds its profile with the starter
// generation credits.
func (a *AccountService) CreateAccount(ctx context.Context, req request_models.SignUpRequest) error {
	existing, err := a.accountRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if existing != nil {
		return utils.ErrEmailAlreadyExists
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		return utils.ErrDatabaseError
	}

	account := &db_models.Account{
		Name:         req.DisplayName,
		Email:        req.Email,
		PasswordHash: hashed,
		Role:         "user",
	}

	if err := a.accountRepo.Insert(ctx, account); err != nil {
		return utils.ErrDatabaseError
	}

	profile := &db_models.Profile{
		ID:                   account.ID,
		GenerationsRemaining: db_models.DefaultGenerations,
		TravelPace:           db_models.PaceModerate,
	}

	if err := a.profileRepo.Create(ctx, profile); err != nil {
		log.Printf("account %s created without profile: %v", account.ID, err)
		return utils.ErrDatabaseError
	}

	return nil
}
