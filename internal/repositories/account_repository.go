package repositories

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"exodus/internal/models/db_models"
)

type AccountRepository interface {
	UpsertByExternalID(ctx context.Context, account *db_models.Account) error
	FindByUser(ctx context.Context, userID uint) ([]db_models.Account, error)
}

type accountRepository struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) AccountRepository {
	return &accountRepository{db: db}
}

// UpsertByExternalID inserts or overwrites the row keyed by the unique
// (user_id, account_id) pair in one statement, so relinking never duplicates
// an account.
func (a *accountRepository) UpsertByExternalID(ctx context.Context, account *db_models.Account) error {
	return a.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "account_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"persistent_account_id", "balance", "name", "official_name",
			"type", "sub_type", "updated_at",
		}),
	}).Create(account).Error
}

func (a *accountRepository) FindByUser(ctx context.Context, userID uint) ([]db_models.Account, error) {
	var accounts []db_models.Account
	err := a.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id").
		Find(&accounts).Error
	if err != nil {
		return nil, err
	}
	return accounts, nil
}
