package repository

import (
	"context"

	"gorm.io/gorm"

	"dealshare/internal/model"
)

// MerchantRepository defines merchant read operations. Merchants are seeded
// externally; the application never writes them.
type MerchantRepository interface {
	List(ctx context.Context) ([]model.Merchant, error)
	FindByName(ctx context.Context, name string) (*model.Merchant, error)
}

type merchantRepository struct {
	db *gorm.DB
}

// NewMerchantRepository builds a GORM-backed repository.
func NewMerchantRepository(db *gorm.DB) MerchantRepository {
	return &merchantRepository{db: db}
}

func (r *merchantRepository) List(ctx context.Context) ([]model.Merchant, error) {
	var merchants []model.Merchant
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&merchants).Error; err != nil {
		return nil, err
	}
	return merchants, nil
}

func (r *merchantRepository) FindByName(ctx context.Context, name string) (*model.Merchant, error) {
	var merchant model.Merchant
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&merchant).Error; err != nil {
		return nil, err
	}
	return &merchant, nil
}
