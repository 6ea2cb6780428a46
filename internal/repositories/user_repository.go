package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"exodus/internal/models/db_models"
)

type UserRepository interface {
	Insert(ctx context.Context, user *db_models.User) error
	FindByID(ctx context.Context, id uint) (*db_models.User, error)
	FindByEmail(ctx context.Context, email string) (*db_models.User, error)
	UpdateAccessToken(ctx context.Context, id uint, accessToken string) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (u *userRepository) Insert(ctx context.Context, user *db_models.User) error {
	return u.db.WithContext(ctx).Create(user).Error
}

func (u *userRepository) FindByID(ctx context.Context, id uint) (*db_models.User, error) {
	var user db_models.User
	err := u.db.WithContext(ctx).First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (u *userRepository) FindByEmail(ctx context.Context, email string) (*db_models.User, error) {
	var user db_models.User
	err := u.db.WithContext(ctx).First(&user, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// UpdateAccessToken overwrites the stored aggregator access token. Relinking
// silently replaces the old grant; nothing revokes the old token upstream.
func (u *userRepository) UpdateAccessToken(ctx context.Context, id uint, accessToken string) error {
	return u.db.WithContext(ctx).
		Model(&db_models.User{}).
		Where("id = ?", id).
		Update("plaid_access_token", accessToken).Error
}
