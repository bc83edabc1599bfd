package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "dealshare/internal/errors"
	"dealshare/internal/model"
	"dealshare/internal/repository"
)

// DealInput carries a deal submission. Merchant and Category are resolved
// by name against the seeded rows.
type DealInput struct {
	Title         string
	Description   string
	DealLink      string
	ImageLink     string
	Price         decimal.Decimal
	OriginalPrice decimal.Decimal
	Merchant      string
	Category      string
}

// DealService handles deal listings, per-user state, and submissions.
type DealService interface {
	List(ctx context.Context) ([]model.Deal, error)
	Recent(ctx context.Context) ([]model.Deal, error)
	Ranked(ctx context.Context) ([]model.DealWithVotes, error)
	Get(ctx context.Context, id uint) (*model.Deal, error)
	ByCategory(ctx context.Context, slug string) ([]model.CategoryDeal, error)
	Saved(ctx context.Context, userID uint) ([]model.Deal, error)
	Posted(ctx context.Context, userID uint) ([]model.Deal, error)
	Save(ctx context.Context, userID, dealID uint) error
	Like(ctx context.Context, userID, dealID uint) error
	Add(ctx context.Context, in DealInput, userID uint) ([]model.Deal, error)
}

type dealService struct {
	dealRepo     repository.DealRepository
	merchantRepo repository.MerchantRepository
	categoryRepo repository.CategoryRepository
}

// NewDealService creates a new deal service.
func NewDealService(
	dealRepo repository.DealRepository,
	merchantRepo repository.MerchantRepository,
	categoryRepo repository.CategoryRepository,
) DealService {
	return &dealService{
		dealRepo:     dealRepo,
		merchantRepo: merchantRepo,
		categoryRepo: categoryRepo,
	}
}

func (s *dealService) List(ctx context.Context) ([]model.Deal, error) {
	deals, err := s.dealRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list deals: %w", err)
	}
	return deals, nil
}

// Recent returns deals most recently posted first.
func (s *dealService) Recent(ctx context.Context) ([]model.Deal, error) {
	deals, err := s.dealRepo.ListRecent(ctx)
	if err != nil {
		return nil, fmt.Errorf("list recent deals: %w", err)
	}
	return deals, nil
}

// Ranked returns all deals most liked first, for the home page.
func (s *dealService) Ranked(ctx context.Context) ([]model.DealWithVotes, error) {
	ranked, err := s.dealRepo.ListWithVotes(ctx)
	if err != nil {
		return nil, fmt.Errorf("rank deals: %w", err)
	}
	return ranked, nil
}

func (s *dealService) Get(ctx context.Context, id uint) (*model.Deal, error) {
	deal, err := s.dealRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrDealNotFound
		}
		return nil, fmt.Errorf("find deal: %w", err)
	}
	return deal, nil
}

func (s *dealService) ByCategory(ctx context.Context, slug string) ([]model.CategoryDeal, error) {
	deals, err := s.dealRepo.ByCategorySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("deals by category: %w", err)
	}
	return deals, nil
}

// Saved returns the user's bookmarked deals. An empty list is reported as
// ErrNoSavedItems so callers map it to 404.
func (s *dealService) Saved(ctx context.Context, userID uint) ([]model.Deal, error) {
	deals, err := s.dealRepo.SavedByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("saved deals: %w", err)
	}
	if len(deals) == 0 {
		return nil, apperrors.ErrNoSavedItems
	}
	return deals, nil
}

func (s *dealService) Posted(ctx context.Context, userID uint) ([]model.Deal, error) {
	deals, err := s.dealRepo.PostedByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("posted deals: %w", err)
	}
	return deals, nil
}

func (s *dealService) Save(ctx context.Context, userID, dealID uint) error {
	return s.dealRepo.Save(ctx, userID, dealID)
}

func (s *dealService) Like(ctx context.Context, userID, dealID uint) error {
	return s.dealRepo.Like(ctx, userID, dealID)
}

// Add resolves the merchant and category names, inserts the deal and its
// category link in one transaction, and returns the user's posted deals.
// Unknown names fail before anything is written.
func (s *dealService) Add(ctx context.Context, in DealInput, userID uint) ([]model.Deal, error) {
	merchant, err := s.merchantRepo.FindByName(ctx, in.Merchant)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMerchantNotFound
		}
		return nil, fmt.Errorf("resolve merchant: %w", err)
	}

	category, err := s.categoryRepo.FindByName(ctx, in.Category)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("resolve category: %w", err)
	}

	deal := &model.Deal{
		Title:         in.Title,
		Description:   in.Description,
		DealLink:      in.DealLink,
		ImageLink:     in.ImageLink,
		Price:         in.Price,
		OriginalPrice: in.OriginalPrice,
		UserID:        userID,
		MerchantID:    merchant.ID,
		PostDate:      time.Now().UTC(),
	}

	if err := s.dealRepo.CreateWithCategory(ctx, deal, category.ID); err != nil {
		return nil, fmt.Errorf("create deal: %w", err)
	}

	return s.Posted(ctx, userID)
}
