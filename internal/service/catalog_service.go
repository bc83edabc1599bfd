package service

import (
	"context"
	"fmt"

	"dealshare/internal/model"
	"dealshare/internal/repository"
)

// ListingKind discriminates which entity set a mixed result carries.
type ListingKind string

const (
	// KindDeals marks a result carrying deals.
	KindDeals ListingKind = "deals"
	// KindVouchers marks a result carrying vouchers.
	KindVouchers ListingKind = "vouchers"
	// KindNone is the explicit no-results signal.
	KindNone ListingKind = "none"
)

// Listings is a discriminated deals-or-vouchers result. When deals match,
// vouchers are never surfaced, even if they would also match.
type Listings struct {
	Kind     ListingKind
	Deals    []model.Deal
	Vouchers []model.VoucherWithMerchant
}

// CatalogService handles merchant and category listings and cross-entity
// search.
type CatalogService interface {
	Merchants(ctx context.Context) ([]model.Merchant, error)
	Categories(ctx context.Context) ([]model.Category, error)
	MerchantListings(ctx context.Context, merchantID uint) (*Listings, error)
	Search(ctx context.Context, query string) (*Listings, error)
}

type catalogService struct {
	dealRepo     repository.DealRepository
	voucherRepo  repository.VoucherRepository
	merchantRepo repository.MerchantRepository
	categoryRepo repository.CategoryRepository
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(
	dealRepo repository.DealRepository,
	voucherRepo repository.VoucherRepository,
	merchantRepo repository.MerchantRepository,
	categoryRepo repository.CategoryRepository,
) CatalogService {
	return &catalogService{
		dealRepo:     dealRepo,
		voucherRepo:  voucherRepo,
		merchantRepo: merchantRepo,
		categoryRepo: categoryRepo,
	}
}

func (s *catalogService) Merchants(ctx context.Context) ([]model.Merchant, error) {
	merchants, err := s.merchantRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list merchants: %w", err)
	}
	return merchants, nil
}

func (s *catalogService) Categories(ctx context.Context) ([]model.Category, error) {
	categories, err := s.categoryRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}

// MerchantListings returns the merchant's deals when it has any, otherwise
// its vouchers (possibly empty). First match wins.
func (s *catalogService) MerchantListings(ctx context.Context, merchantID uint) (*Listings, error) {
	deals, err := s.dealRepo.ByMerchant(ctx, merchantID)
	if err != nil {
		return nil, fmt.Errorf("merchant deals: %w", err)
	}
	if len(deals) > 0 {
		return &Listings{Kind: KindDeals, Deals: deals}, nil
	}

	vouchers, err := s.voucherRepo.ByMerchant(ctx, merchantID)
	if err != nil {
		return nil, fmt.Errorf("merchant vouchers: %w", err)
	}
	return &Listings{Kind: KindVouchers, Vouchers: vouchers}, nil
}

// Search matches the query as a substring of deal title/description, then
// voucher title/description. Deals shadow vouchers; no match at all yields
// KindNone rather than an error.
func (s *catalogService) Search(ctx context.Context, query string) (*Listings, error) {
	deals, err := s.dealRepo.Search(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("search deals: %w", err)
	}
	if len(deals) > 0 {
		return &Listings{Kind: KindDeals, Deals: deals}, nil
	}

	vouchers, err := s.voucherRepo.Search(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("search vouchers: %w", err)
	}
	if len(vouchers) > 0 {
		return &Listings{Kind: KindVouchers, Vouchers: vouchers}, nil
	}

	return &Listings{Kind: KindNone}, nil
}
