package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"exodus/internal/infra"
	"exodus/internal/models/db_models"
	"exodus/internal/models/request_models"
	"exodus/internal/repositories"
	"exodus/pkg/utils"
)

type BitcoinServiceInterface interface {
	GetBalance(ctx context.Context, userID uint) (float64, error)
	Purchase(ctx context.Context, userID uint, request request_models.PurchaseRequest) (string, error)
}

type BitcoinService struct {
	node         infra.NodeRPC
	userRepo     repositories.UserRepository
	purchaseRepo repositories.PurchaseRepository
	plaidService PlaidServiceInterface
	logger       *zap.Logger

	mu        sync.Mutex
	userLocks map[uint]*sync.Mutex
}

func NewBitcoinService(
	node infra.NodeRPC,
	userRepo repositories.UserRepository,
	purchaseRepo repositories.PurchaseRepository,
	plaidService PlaidServiceInterface,
	logger *zap.Logger,
) BitcoinServiceInterface {
	return &BitcoinService{
		node:         node,
		userRepo:     userRepo,
		purchaseRepo: purchaseRepo,
		plaidService: plaidService,
		logger:       logger,
		userLocks:    make(map[uint]*sync.Mutex),
	}
}

// GetBalance sums the unspent outputs attributed to the user's payout
// address, zero confirmations included.
func (b *BitcoinService) GetBalance(ctx context.Context, userID uint) (float64, error) {
	user, err := b.userRepo.FindByID(ctx, userID)
	if err != nil {
		return 0, utils.ErrDatabaseError
	}
	if user == nil {
		return 0, utils.ErrUserNotFound
	}
	if user.BitcoinAddress == "" {
		return 0, utils.ErrNoPayoutAddress
	}

	amount, err := b.node.AddressBalance(user.BitcoinAddress)
	if err != nil {
		return 0, err
	}
	return amount.ToBTC(), nil
}

// Purchase converts fiat from a linked bank account into bitcoin sent to
// the user's payout address. Both balance checks read live values, so
// attempts by one user are serialized; every attempt is bracketed by a
// ledger row that ends up sent or failed.
func (b *BitcoinService) Purchase(ctx context.Context, userID uint, request request_models.PurchaseRequest) (string, error) {
	user, err := b.userRepo.FindByID(ctx, userID)
	if err != nil {
		return "", utils.ErrDatabaseError
	}
	if user == nil {
		return "", utils.ErrUserNotFound
	}
	if user.BitcoinAddress == "" {
		return "", utils.ErrNoPayoutAddress
	}
	if user.PlaidAccessToken == "" {
		return "", utils.ErrBankNotLinked
	}

	lock := b.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	entry := &db_models.Purchase{
		UserID:     user.ID,
		AccountID:  request.AccountID,
		BTCAmount:  decimal.NewFromFloat(request.BTCAmount),
		FiatAmount: decimal.NewFromFloat(request.Amount),
		Status:     db_models.PurchasePending,
	}
	if err := b.purchaseRepo.Insert(ctx, entry); err != nil {
		return "", utils.ErrDatabaseError
	}

	// Once the row exists it must reach a terminal state even if the
	// client disconnects mid-settlement.
	terminalCtx := context.WithoutCancel(ctx)

	txID, err := b.settle(ctx, user, request)
	if err != nil {
		if markErr := b.purchaseRepo.MarkFailed(terminalCtx, entry.ID, err.Error()); markErr != nil {
			b.logger.Error("marking purchase failed",
				zap.Uint("purchase_id", entry.ID), zap.Error(markErr))
		}
		return "", err
	}

	if err := b.purchaseRepo.MarkSent(terminalCtx, entry.ID, txID); err != nil {
		b.logger.Error("marking purchase sent",
			zap.Uint("purchase_id", entry.ID), zap.String("tx_id", txID), zap.Error(err))
	}

	b.logger.Info("purchase broadcast",
		zap.Uint("user_id", user.ID),
		zap.Float64("btc_amount", request.BTCAmount),
		zap.String("tx_id", txID))
	return txID, nil
}

func (b *BitcoinService) settle(ctx context.Context, user *db_models.User, request request_models.PurchaseRequest) (string, error) {
	account, err := b.plaidService.GetAccountByID(ctx, user.PlaidAccessToken, request.AccountID)
	if err != nil {
		return "", err
	}

	// The bank must cover the fiat cost, strictly.
	if account.CurrentBalance.LessThanOrEqual(decimal.NewFromFloat(request.Amount)) {
		return "", utils.ErrInsufficientBankFunds
	}

	btcAmount, err := btcutil.NewAmount(request.BTCAmount)
	if err != nil {
		return "", fmt.Errorf("invalid btc amount: %w", err)
	}

	walletBalance, err := b.node.WalletBalance()
	if err != nil {
		return "", fmt.Errorf("node balance: %w", err)
	}
	if walletBalance < btcAmount {
		return "", utils.ErrInsufficientNodeFunds
	}

	return b.node.Send(user.BitcoinAddress, btcAmount)
}

func (b *BitcoinService) userLock(userID uint) *sync.Mutex {
	b.mu.Lock()
	defer b.mu.Unlock()
	lock, ok := b.userLocks[userID]
	if !ok {
		lock = &sync.Mutex{}
		b.userLocks[userID] = lock
	}
	return lock
}
