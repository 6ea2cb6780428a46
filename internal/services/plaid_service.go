package services

import (
	"context"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"exodus/internal/infra"
	"exodus/internal/models/db_models"
	"exodus/internal/repositories"
	"exodus/pkg/utils"
)

type PlaidServiceInterface interface {
	CreateLinkToken(ctx context.Context, userID uint) (infra.LinkTokenData, error)
	ExchangePublicToken(ctx context.Context, userID uint, publicToken string) (infra.TokenExchange, error)
	LinkAccounts(ctx context.Context, userID uint) ([]infra.LinkedAccount, error)
	GetAccounts(ctx context.Context, userID uint) ([]db_models.Account, error)
	GetBalance(ctx context.Context, accessToken string) ([]infra.LinkedAccount, error)
	GetAccountByID(ctx context.Context, accessToken, accountID string) (*infra.LinkedAccount, error)
}

type PlaidService struct {
	bank        infra.BankAPI
	userRepo    repositories.UserRepository
	accountRepo repositories.AccountRepository
	logger      *zap.Logger
}

func NewPlaidService(
	bank infra.BankAPI,
	userRepo repositories.UserRepository,
	accountRepo repositories.AccountRepository,
	logger *zap.Logger,
) PlaidServiceInterface {
	return &PlaidService{
		bank:        bank,
		userRepo:    userRepo,
		accountRepo: accountRepo,
		logger:      logger,
	}
}

func (s *PlaidService) CreateLinkToken(ctx context.Context, userID uint) (infra.LinkTokenData, error) {
	return s.bank.CreateLinkToken(ctx, strconv.FormatUint(uint64(userID), 10))
}

// ExchangePublicToken trades the client's public token for a durable access
// token and stores it on the user row, overwriting any prior grant.
func (s *PlaidService) ExchangePublicToken(ctx context.Context, userID uint, publicToken string) (infra.TokenExchange, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return infra.TokenExchange{}, utils.ErrDatabaseError
	}
	if user == nil {
		return infra.TokenExchange{}, utils.ErrUserNotFound
	}

	exchange, err := s.bank.ExchangePublicToken(ctx, publicToken)
	if err != nil {
		return infra.TokenExchange{}, err
	}

	if err := s.userRepo.UpdateAccessToken(ctx, user.ID, exchange.AccessToken); err != nil {
		s.logger.Error("storing access token failed", zap.Uint("user_id", user.ID), zap.Error(err))
		return infra.TokenExchange{}, utils.ErrDatabaseError
	}

	s.logger.Info("bank link exchanged", zap.Uint("user_id", user.ID), zap.String("item_id", exchange.ItemID))
	return exchange, nil
}

// LinkAccounts fetches the live account list for the user's stored access
// token and upserts each account keyed by (user_id, account_id). Running it
// twice with the same list leaves exactly one row per account.
func (s *PlaidService) LinkAccounts(ctx context.Context, userID uint) ([]infra.LinkedAccount, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrUserNotFound
	}
	if user.PlaidAccessToken == "" {
		return nil, utils.ErrBankNotLinked
	}

	accounts, err := s.bank.GetAccounts(ctx, user.PlaidAccessToken)
	if err != nil {
		return nil, fmt.Errorf("fetch linked accounts: %w", err)
	}

	for _, a := range accounts {
		row := &db_models.Account{
			AccountID:           a.AccountID,
			PersistentAccountID: a.PersistentAccountID,
			UserID:              user.ID,
			Balance:             a.CurrentBalance,
			Name:                a.Name,
			OfficialName:        a.OfficialName,
			Type:                a.Type,
			SubType:             a.SubType,
		}
		if err := s.accountRepo.UpsertByExternalID(ctx, row); err != nil {
			return nil, utils.ErrDatabaseError
		}
	}

	return accounts, nil
}

// GetAccounts reads the previously persisted rows; no aggregator call.
func (s *PlaidService) GetAccounts(ctx context.Context, userID uint) ([]db_models.Account, error) {
	accounts, err := s.accountRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return accounts, nil
}

// GetBalance returns a live snapshot for the token; nothing is persisted.
func (s *PlaidService) GetBalance(ctx context.Context, accessToken string) ([]infra.LinkedAccount, error) {
	return s.bank.GetBalances(ctx, accessToken)
}

// GetAccountByID scans the live account list for a match. Linear, like the
// upstream API exposes it.
func (s *PlaidService) GetAccountByID(ctx context.Context, accessToken, accountID string) (*infra.LinkedAccount, error) {
	accounts, err := s.bank.GetAccounts(ctx, accessToken)
	if err != nil {
		return nil, fmt.Errorf("fetch linked accounts: %w", err)
	}
	for i := range accounts {
		if accounts[i].AccountID == accountID {
			return &accounts[i], nil
		}
	}
	return nil, utils.ErrAccountNotFound
}
