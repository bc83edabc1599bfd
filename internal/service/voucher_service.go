package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	apperrors "dealshare/internal/errors"
	"dealshare/internal/model"
	"dealshare/internal/repository"
)

// VoucherInput carries a voucher submission. Merchant is resolved by name.
type VoucherInput struct {
	Title       string
	Code        string
	Description string
	ExpDate     time.Time
	ShopLink    string
	Merchant    string
}

// VoucherService handles voucher listings, per-user state, and submissions.
type VoucherService interface {
	List(ctx context.Context) ([]model.VoucherWithMerchant, error)
	ByExpiry(ctx context.Context) ([]model.VoucherWithMerchant, error)
	ByLikes(ctx context.Context) ([]model.VoucherWithMerchant, error)
	Get(ctx context.Context, id uint) (*model.VoucherWithMerchant, error)
	Saved(ctx context.Context, userID uint) ([]model.VoucherWithMerchant, error)
	Posted(ctx context.Context, userID uint) ([]model.Voucher, error)
	Save(ctx context.Context, userID, voucherID uint) error
	Like(ctx context.Context, userID, voucherID uint) error
	Add(ctx context.Context, in VoucherInput, userID uint) (*model.Voucher, error)
}

type voucherService struct {
	voucherRepo  repository.VoucherRepository
	merchantRepo repository.MerchantRepository
}

// NewVoucherService creates a new voucher service.
func NewVoucherService(voucherRepo repository.VoucherRepository, merchantRepo repository.MerchantRepository) VoucherService {
	return &voucherService{
		voucherRepo:  voucherRepo,
		merchantRepo: merchantRepo,
	}
}

func (s *voucherService) List(ctx context.Context) ([]model.VoucherWithMerchant, error) {
	vouchers, err := s.voucherRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list vouchers: %w", err)
	}
	return vouchers, nil
}

// ByExpiry returns vouchers soonest-to-expire first.
func (s *voucherService) ByExpiry(ctx context.Context) ([]model.VoucherWithMerchant, error) {
	vouchers, err := s.voucherRepo.ListByExpiry(ctx)
	if err != nil {
		return nil, fmt.Errorf("list vouchers by expiry: %w", err)
	}
	return vouchers, nil
}

// ByLikes returns vouchers most liked first, with vote counts.
func (s *voucherService) ByLikes(ctx context.Context) ([]model.VoucherWithMerchant, error) {
	vouchers, err := s.voucherRepo.ListByLikes(ctx)
	if err != nil {
		return nil, fmt.Errorf("list vouchers by likes: %w", err)
	}
	return vouchers, nil
}

func (s *voucherService) Get(ctx context.Context, id uint) (*model.VoucherWithMerchant, error) {
	voucher, err := s.voucherRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrVoucherNotFound
		}
		return nil, fmt.Errorf("find voucher: %w", err)
	}
	return voucher, nil
}

// Saved returns the user's bookmarked vouchers. An empty list is reported
// as ErrNoSavedItems so callers map it to 404.
func (s *voucherService) Saved(ctx context.Context, userID uint) ([]model.VoucherWithMerchant, error) {
	vouchers, err := s.voucherRepo.SavedByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("saved vouchers: %w", err)
	}
	if len(vouchers) == 0 {
		return nil, apperrors.ErrNoSavedItems
	}
	return vouchers, nil
}

func (s *voucherService) Posted(ctx context.Context, userID uint) ([]model.Voucher, error) {
	vouchers, err := s.voucherRepo.PostedByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("posted vouchers: %w", err)
	}
	return vouchers, nil
}

func (s *voucherService) Save(ctx context.Context, userID, voucherID uint) error {
	return s.voucherRepo.Save(ctx, userID, voucherID)
}

func (s *voucherService) Like(ctx context.Context, userID, voucherID uint) error {
	return s.voucherRepo.Like(ctx, userID, voucherID)
}

// Add resolves the merchant name and inserts the voucher. An unknown
// merchant fails before anything is written.
func (s *voucherService) Add(ctx context.Context, in VoucherInput, userID uint) (*model.Voucher, error) {
	merchant, err := s.merchantRepo.FindByName(ctx, in.Merchant)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMerchantNotFound
		}
		return nil, fmt.Errorf("resolve merchant: %w", err)
	}

	voucher := &model.Voucher{
		Title:       in.Title,
		Code:        in.Code,
		Description: in.Description,
		ExpDate:     in.ExpDate,
		ShopLink:    in.ShopLink,
		MerchantID:  merchant.ID,
		UserID:      userID,
	}

	if err := s.voucherRepo.Create(ctx, voucher); err != nil {
		return nil, fmt.Errorf("create voucher: %w", err)
	}

	return voucher, nil
}
