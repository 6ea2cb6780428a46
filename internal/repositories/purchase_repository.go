package repositories

import (
	"context"

	"gorm.io/gorm"

	"exodus/internal/models/db_models"
)

type PurchaseRepository interface {
	Insert(ctx context.Context, purchase *db_models.Purchase) error
	MarkSent(ctx context.Context, id uint, txID string) error
	MarkFailed(ctx context.Context, id uint, reason string) error
	FindByUser(ctx context.Context, userID uint) ([]db_models.Purchase, error)
}

type purchaseRepository struct {
	db *gorm.DB
}

func NewPurchaseRepository(db *gorm.DB) PurchaseRepository {
	return &purchaseRepository{db: db}
}

func (p *purchaseRepository) Insert(ctx context.Context, purchase *db_models.Purchase) error {
	return p.db.WithContext(ctx).Create(purchase).Error
}

func (p *purchaseRepository) MarkSent(ctx context.Context, id uint, txID string) error {
	return p.db.WithContext(ctx).
		Model(&db_models.Purchase{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status": db_models.PurchaseSent,
			"tx_id":  txID,
		}).Error
}

func (p *purchaseRepository) MarkFailed(ctx context.Context, id uint, reason string) error {
	return p.db.WithContext(ctx).
		Model(&db_models.Purchase{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":      db_models.PurchaseFailed,
			"fail_reason": reason,
		}).Error
}

func (p *purchaseRepository) FindByUser(ctx context.Context, userID uint) ([]db_models.Purchase, error) {
	var purchases []db_models.Purchase
	err := p.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id desc").
		Find(&purchases).Error
	if err != nil {
		return nil, err
	}
	return purchases, nil
}
