package db_models

import "github.com/shopspring/decimal"

// Account is a snapshot of an externally-linked bank account. One row per
// (user, aggregator account id); relinking upserts instead of duplicating.
type Account struct {
	BaseModel
	AccountID           string          `gorm:"index:idx_user_account,unique" json:"account_id"`
	PersistentAccountID string          `json:"persistent_account_id"`
	UserID              uint            `gorm:"index:idx_user_account,unique" json:"user_id"`
	Balance             decimal.Decimal `gorm:"type:decimal(10,2)" json:"balance"`
	Name                string          `json:"name"`
	OfficialName        string          `json:"official_name"`
	Type                string          `json:"type"`
	SubType             string          `json:"sub_type"`
}

func (Account) TableName() string { return "Accounts" }
