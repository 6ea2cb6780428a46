package services

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/btcsuite/btcd/btcutil"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"exodus/internal/infra"
	"exodus/internal/repositories"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "wallet.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := infra.AutoMigrate(db); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

func newTestRepos(t *testing.T) (repositories.UserRepository, repositories.AccountRepository, repositories.PurchaseRepository) {
	t.Helper()
	db := openTestDB(t)
	return repositories.NewUserRepository(db),
		repositories.NewAccountRepository(db),
		repositories.NewPurchaseRepository(db)
}

type fakeNode struct {
	address        string
	addressErr     error
	addressBalance btcutil.Amount
	addressBalErr  error
	walletBalance  btcutil.Amount
	walletErr      error
	sendTxID       string
	sendErr        error
	sendHook       func()
	sendCalls      int
	sentTo         string
	sentAmount     btcutil.Amount
}

func (f *fakeNode) GenerateAddress() (string, error) {
	return f.address, f.addressErr
}

func (f *fakeNode) AddressBalance(address string) (btcutil.Amount, error) {
	return f.addressBalance, f.addressBalErr
}

func (f *fakeNode) WalletBalance() (btcutil.Amount, error) {
	return f.walletBalance, f.walletErr
}

func (f *fakeNode) Send(address string, amount btcutil.Amount) (string, error) {
	f.sendCalls++
	f.sentTo = address
	f.sentAmount = amount
	if f.sendHook != nil {
		f.sendHook()
	}
	if f.sendErr != nil {
		return "", f.sendErr
	}
	return f.sendTxID, nil
}

type fakeBank struct {
	linkToken   infra.LinkTokenData
	linkErr     error
	exchange    infra.TokenExchange
	exchangeErr error
	accounts    []infra.LinkedAccount
	accountsErr error
	balances    []infra.LinkedAccount
	balancesErr error
}

func (f *fakeBank) CreateLinkToken(ctx context.Context, clientUserID string) (infra.LinkTokenData, error) {
	return f.linkToken, f.linkErr
}

func (f *fakeBank) ExchangePublicToken(ctx context.Context, publicToken string) (infra.TokenExchange, error) {
	return f.exchange, f.exchangeErr
}

func (f *fakeBank) GetAccounts(ctx context.Context, accessToken string) ([]infra.LinkedAccount, error) {
	return f.accounts, f.accountsErr
}

func (f *fakeBank) GetBalances(ctx context.Context, accessToken string) ([]infra.LinkedAccount, error) {
	return f.balances, f.balancesErr
}

func mustAmount(t *testing.T, btc float64) btcutil.Amount {
	t.Helper()
	amount, err := btcutil.NewAmount(btc)
	if err != nil {
		t.Fatalf("amount %v: %v", btc, err)
	}
	return amount
}
