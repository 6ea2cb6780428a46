package db_models

import "github.com/shopspring/decimal"

type PurchaseStatus string

const (
	PurchasePending PurchaseStatus = "pending"
	PurchaseSent    PurchaseStatus = "sent"
	PurchaseFailed  PurchaseStatus = "failed"
)

// Purchase is the ledger row bracketing one fiat-to-BTC transfer attempt.
// It is created pending before any balance check and moved to a terminal
// status afterwards, so every attempt leaves a record.
type Purchase struct {
	BaseModel
	UserID     uint            `gorm:"index" json:"user_id"`
	AccountID  string          `json:"account_id"`
	BTCAmount  decimal.Decimal `gorm:"type:decimal(16,8)" json:"btc_amount"`
	FiatAmount decimal.Decimal `gorm:"type:decimal(10,2)" json:"fiat_amount"`
	Status     PurchaseStatus  `gorm:"index" json:"status"`
	TxID       string          `json:"tx_id,omitempty"`
	FailReason string          `json:"-"`
}

func (Purchase) TableName() string { return "purchases" }
