package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"dealshare/internal/model"
)

// DealRepository defines deal persistence operations.
type DealRepository interface {
	List(ctx context.Context) ([]model.Deal, error)
	ListWithVotes(ctx context.Context) ([]model.DealWithVotes, error)
	ListRecent(ctx context.Context) ([]model.Deal, error)
	FindByID(ctx context.Context, id uint) (*model.Deal, error)
	ByCategorySlug(ctx context.Context, slug string) ([]model.CategoryDeal, error)
	ByMerchant(ctx context.Context, merchantID uint) ([]model.Deal, error)
	Search(ctx context.Context, query string) ([]model.Deal, error)
	SavedByUser(ctx context.Context, userID uint) ([]model.Deal, error)
	PostedByUser(ctx context.Context, userID uint) ([]model.Deal, error)
	Save(ctx context.Context, userID, dealID uint) error
	Like(ctx context.Context, userID, dealID uint) error
	CreateWithCategory(ctx context.Context, deal *model.Deal, categoryID uint) error
}

type dealRepository struct {
	db *gorm.DB
}

// NewDealRepository builds a GORM-backed repository.
func NewDealRepository(db *gorm.DB) DealRepository {
	return &dealRepository{db: db}
}

func (r *dealRepository) List(ctx context.Context) ([]model.Deal, error) {
	var deals []model.Deal
	if err := r.db.WithContext(ctx).Find(&deals).Error; err != nil {
		return nil, err
	}
	return deals, nil
}

// ListWithVotes returns every deal with its like count, most liked first.
func (r *dealRepository) ListWithVotes(ctx context.Context) ([]model.DealWithVotes, error) {
	var rows []model.DealWithVotes
	err := r.db.WithContext(ctx).
		Table("deal").
		Select("deal.*, COUNT(deal_up_vote.deal_id) AS vote_count").
		Joins("LEFT JOIN deal_up_vote ON deal_up_vote.deal_id = deal.id").
		Group("deal.id").
		Order("vote_count DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *dealRepository) ListRecent(ctx context.Context) ([]model.Deal, error) {
	var deals []model.Deal
	if err := r.db.WithContext(ctx).Order("post_date DESC").Find(&deals).Error; err != nil {
		return nil, err
	}
	return deals, nil
}

func (r *dealRepository) FindByID(ctx context.Context, id uint) (*model.Deal, error) {
	var deal model.Deal
	if err := r.db.WithContext(ctx).First(&deal, id).Error; err != nil {
		return nil, err
	}
	return &deal, nil
}

func (r *dealRepository) ByCategorySlug(ctx context.Context, slug string) ([]model.CategoryDeal, error) {
	var rows []model.CategoryDeal
	err := r.db.WithContext(ctx).
		Table("deal").
		Select("deal.*, category.name AS category_name").
		Joins("JOIN deal_category ON deal_category.deal_id = deal.id").
		Joins("JOIN category ON category.id = deal_category.category_id").
		Where("category.slug = ?", slug).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *dealRepository) ByMerchant(ctx context.Context, merchantID uint) ([]model.Deal, error) {
	var deals []model.Deal
	if err := r.db.WithContext(ctx).Where("merchant_id = ?", merchantID).Find(&deals).Error; err != nil {
		return nil, err
	}
	return deals, nil
}

func (r *dealRepository) Search(ctx context.Context, query string) ([]model.Deal, error) {
	var deals []model.Deal
	pattern := "%" + query + "%"
	err := r.db.WithContext(ctx).
		Where("title LIKE ? OR description LIKE ?", pattern, pattern).
		Find(&deals).Error
	if err != nil {
		return nil, err
	}
	return deals, nil
}

func (r *dealRepository) SavedByUser(ctx context.Context, userID uint) ([]model.Deal, error) {
	var deals []model.Deal
	err := r.db.WithContext(ctx).
		Table("deal").
		Select("deal.*").
		Joins("INNER JOIN user_deal ON user_deal.deal_id = deal.id").
		Where("user_deal.user_id = ?", userID).
		Scan(&deals).Error
	if err != nil {
		return nil, err
	}
	return deals, nil
}

func (r *dealRepository) PostedByUser(ctx context.Context, userID uint) ([]model.Deal, error) {
	var deals []model.Deal
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Find(&deals).Error; err != nil {
		return nil, err
	}
	return deals, nil
}

// Save bookmarks a deal for a user. Re-saving the same deal is a no-op.
func (r *dealRepository) Save(ctx context.Context, userID, dealID uint) error {
	row := model.UserDeal{UserID: userID, DealID: dealID}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&row).Error
}

// Like records an upvote. Re-liking the same deal is a no-op.
func (r *dealRepository) Like(ctx context.Context, userID, dealID uint) error {
	row := model.DealUpVote{DealID: dealID, UserID: userID}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&row).Error
}

// CreateWithCategory inserts the deal and its category link atomically.
// A failure on either insert rolls back both.
func (r *dealRepository) CreateWithCategory(ctx context.Context, deal *model.Deal, categoryID uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(deal).Error; err != nil {
			return err
		}
		link := model.DealCategory{DealID: deal.ID, CategoryID: categoryID}
		return tx.Create(&link).Error
	})
}
