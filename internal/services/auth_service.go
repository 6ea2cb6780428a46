package services

import (
	"context"

	"go.uber.org/zap"

	"exodus/internal/infra"
	"exodus/internal/models/db_models"
	"exodus/internal/models/request_models"
	"exodus/internal/repositories"
	"exodus/pkg/utils"
)

type AuthServiceInterface interface {
	SignUp(ctx context.Context, request request_models.SignUpRequest) (*db_models.User, string, error)
	Login(ctx context.Context, request request_models.LoginRequest) (*db_models.User, string, error)
	Check(token string) (*utils.Claims, error)
}

type AuthService struct {
	userRepo repositories.UserRepository
	node     infra.NodeRPC
	issuer   *utils.TokenIssuer
	logger   *zap.Logger
}

func NewAuthService(
	userRepo repositories.UserRepository,
	node infra.NodeRPC,
	issuer *utils.TokenIssuer,
	logger *zap.Logger,
) AuthServiceInterface {
	return &AuthService{
		userRepo: userRepo,
		node:     node,
		issuer:   issuer,
		logger:   logger,
	}
}

func (a *AuthService) SignUp(ctx context.Context, request request_models.SignUpRequest) (*db_models.User, string, error) {
	existing, err := a.userRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, "", utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, "", utils.ErrEmailAlreadyExists
	}

	hashed, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, "", err
	}

	// A node outage must not block signup; the user just starts without a
	// payout address.
	bitcoinAddress, err := a.node.GenerateAddress()
	if err != nil {
		a.logger.Warn("payout address generation failed",
			zap.String("email", request.Email), zap.Error(err))
		bitcoinAddress = ""
	}

	user := &db_models.User{
		Name:           request.Name,
		Email:          request.Email,
		PasswordHash:   hashed,
		Address:        request.Address,
		BitcoinAddress: bitcoinAddress,
	}
	if err := a.userRepo.Insert(ctx, user); err != nil {
		return nil, "", utils.ErrDatabaseError
	}

	token, err := a.issuer.Issue(user.ID, user.Email, user.Name, user.Address, user.BitcoinAddress)
	if err != nil {
		return nil, "", err
	}

	a.logger.Info("user created", zap.Uint("user_id", user.ID))
	return user, token, nil
}

func (a *AuthService) Login(ctx context.Context, request request_models.LoginRequest) (*db_models.User, string, error) {
	user, err := a.userRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, "", utils.ErrDatabaseError
	}

	// Unknown email and wrong password must be indistinguishable to the
	// caller.
	if user == nil {
		return nil, "", utils.ErrInvalidCredentials
	}
	if err := utils.ComparePasswords(user.PasswordHash, request.Password); err != nil {
		return nil, "", utils.ErrInvalidCredentials
	}

	token, err := a.issuer.Issue(user.ID, user.Email, user.Name, user.Address, user.BitcoinAddress)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (a *AuthService) Check(token string) (*utils.Claims, error) {
	if token == "" {
		return nil, utils.ErrInvalidToken
	}
	return a.issuer.Verify(token)
}
