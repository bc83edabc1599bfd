package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"dealshare/internal/model"
)

// Vouchers are always read joined to merchant so listings can show the
// merchant's image alongside the code.
const voucherMerchantJoin = "LEFT JOIN merchant ON merchant.id = voucher.merchant_id"

// VoucherRepository defines voucher persistence operations.
type VoucherRepository interface {
	List(ctx context.Context) ([]model.VoucherWithMerchant, error)
	ListByExpiry(ctx context.Context) ([]model.VoucherWithMerchant, error)
	ListByLikes(ctx context.Context) ([]model.VoucherWithMerchant, error)
	FindByID(ctx context.Context, id uint) (*model.VoucherWithMerchant, error)
	ByMerchant(ctx context.Context, merchantID uint) ([]model.VoucherWithMerchant, error)
	Search(ctx context.Context, query string) ([]model.VoucherWithMerchant, error)
	SavedByUser(ctx context.Context, userID uint) ([]model.VoucherWithMerchant, error)
	PostedByUser(ctx context.Context, userID uint) ([]model.Voucher, error)
	Save(ctx context.Context, userID, voucherID uint) error
	Like(ctx context.Context, userID, voucherID uint) error
	Create(ctx context.Context, voucher *model.Voucher) error
}

type voucherRepository struct {
	db *gorm.DB
}

// NewVoucherRepository builds a GORM-backed repository.
func NewVoucherRepository(db *gorm.DB) VoucherRepository {
	return &voucherRepository{db: db}
}

func (r *voucherRepository) withMerchant(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("voucher").
		Select("voucher.*, merchant.image_uri").
		Joins(voucherMerchantJoin)
}

func (r *voucherRepository) List(ctx context.Context) ([]model.VoucherWithMerchant, error) {
	var rows []model.VoucherWithMerchant
	if err := r.withMerchant(ctx).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// ListByExpiry returns vouchers soonest-to-expire first.
func (r *voucherRepository) ListByExpiry(ctx context.Context) ([]model.VoucherWithMerchant, error) {
	var rows []model.VoucherWithMerchant
	if err := r.withMerchant(ctx).Order("voucher.exp_date ASC").Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// ListByLikes returns vouchers with their like counts, most liked first.
func (r *voucherRepository) ListByLikes(ctx context.Context) ([]model.VoucherWithMerchant, error) {
	var rows []model.VoucherWithMerchant
	err := r.db.WithContext(ctx).
		Table("voucher").
		Select("voucher.*, merchant.image_uri, COUNT(voucher_up_vote.voucher_id) AS vote_count").
		Joins(voucherMerchantJoin).
		Joins("LEFT JOIN voucher_up_vote ON voucher_up_vote.voucher_id = voucher.id").
		Group("voucher.id, merchant.image_uri").
		Order("vote_count DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *voucherRepository) FindByID(ctx context.Context, id uint) (*model.VoucherWithMerchant, error) {
	var rows []model.VoucherWithMerchant
	if err := r.withMerchant(ctx).Where("voucher.id = ?", id).Limit(1).Scan(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &rows[0], nil
}

func (r *voucherRepository) ByMerchant(ctx context.Context, merchantID uint) ([]model.VoucherWithMerchant, error) {
	var rows []model.VoucherWithMerchant
	if err := r.withMerchant(ctx).Where("voucher.merchant_id = ?", merchantID).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *voucherRepository) Search(ctx context.Context, query string) ([]model.VoucherWithMerchant, error) {
	var rows []model.VoucherWithMerchant
	pattern := "%" + query + "%"
	err := r.withMerchant(ctx).
		Where("voucher.title LIKE ? OR voucher.description LIKE ?", pattern, pattern).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *voucherRepository) SavedByUser(ctx context.Context, userID uint) ([]model.VoucherWithMerchant, error) {
	var rows []model.VoucherWithMerchant
	err := r.db.WithContext(ctx).
		Table("voucher").
		Select("voucher.*, merchant.image_uri").
		Joins("INNER JOIN user_voucher ON user_voucher.voucher_id = voucher.id").
		Joins("INNER JOIN merchant ON merchant.id = voucher.merchant_id").
		Where("user_voucher.user_id = ?", userID).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *voucherRepository) PostedByUser(ctx context.Context, userID uint) ([]model.Voucher, error) {
	var vouchers []model.Voucher
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Find(&vouchers).Error; err != nil {
		return nil, err
	}
	return vouchers, nil
}

// Save bookmarks a voucher for a user. Re-saving is a no-op.
func (r *voucherRepository) Save(ctx context.Context, userID, voucherID uint) error {
	row := model.UserVoucher{UserID: userID, VoucherID: voucherID}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&row).Error
}

// Like records an upvote. Re-liking is a no-op.
func (r *voucherRepository) Like(ctx context.Context, userID, voucherID uint) error {
	row := model.VoucherUpVote{VoucherID: voucherID, UserID: userID}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&row).Error
}

func (r *voucherRepository) Create(ctx context.Context, voucher *model.Voucher) error {
	return r.db.WithContext(ctx).Create(voucher).Error
}
