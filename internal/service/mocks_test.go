package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"dealshare/internal/model"
)

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

// MockDealRepository is a mock implementation of DealRepository.
type MockDealRepository struct {
	mock.Mock
}

func (m *MockDealRepository) List(ctx context.Context) ([]model.Deal, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Deal), args.Error(1)
}

func (m *MockDealRepository) ListWithVotes(ctx context.Context) ([]model.DealWithVotes, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.DealWithVotes), args.Error(1)
}

func (m *MockDealRepository) ListRecent(ctx context.Context) ([]model.Deal, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Deal), args.Error(1)
}

func (m *MockDealRepository) FindByID(ctx context.Context, id uint) (*model.Deal, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Deal), args.Error(1)
}

func (m *MockDealRepository) ByCategorySlug(ctx context.Context, slug string) ([]model.CategoryDeal, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.CategoryDeal), args.Error(1)
}

func (m *MockDealRepository) ByMerchant(ctx context.Context, merchantID uint) ([]model.Deal, error) {
	args := m.Called(ctx, merchantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Deal), args.Error(1)
}

func (m *MockDealRepository) Search(ctx context.Context, query string) ([]model.Deal, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Deal), args.Error(1)
}

func (m *MockDealRepository) SavedByUser(ctx context.Context, userID uint) ([]model.Deal, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Deal), args.Error(1)
}

func (m *MockDealRepository) PostedByUser(ctx context.Context, userID uint) ([]model.Deal, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Deal), args.Error(1)
}

func (m *MockDealRepository) Save(ctx context.Context, userID, dealID uint) error {
	args := m.Called(ctx, userID, dealID)
	return args.Error(0)
}

func (m *MockDealRepository) Like(ctx context.Context, userID, dealID uint) error {
	args := m.Called(ctx, userID, dealID)
	return args.Error(0)
}

func (m *MockDealRepository) CreateWithCategory(ctx context.Context, deal *model.Deal, categoryID uint) error {
	args := m.Called(ctx, deal, categoryID)
	return args.Error(0)
}

// MockVoucherRepository is a mock implementation of VoucherRepository.
type MockVoucherRepository struct {
	mock.Mock
}

func (m *MockVoucherRepository) List(ctx context.Context) ([]model.VoucherWithMerchant, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.VoucherWithMerchant), args.Error(1)
}

func (m *MockVoucherRepository) ListByExpiry(ctx context.Context) ([]model.VoucherWithMerchant, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.VoucherWithMerchant), args.Error(1)
}

func (m *MockVoucherRepository) ListByLikes(ctx context.Context) ([]model.VoucherWithMerchant, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.VoucherWithMerchant), args.Error(1)
}

func (m *MockVoucherRepository) FindByID(ctx context.Context, id uint) (*model.VoucherWithMerchant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.VoucherWithMerchant), args.Error(1)
}

func (m *MockVoucherRepository) ByMerchant(ctx context.Context, merchantID uint) ([]model.VoucherWithMerchant, error) {
	args := m.Called(ctx, merchantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.VoucherWithMerchant), args.Error(1)
}

func (m *MockVoucherRepository) Search(ctx context.Context, query string) ([]model.VoucherWithMerchant, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.VoucherWithMerchant), args.Error(1)
}

func (m *MockVoucherRepository) SavedByUser(ctx context.Context, userID uint) ([]model.VoucherWithMerchant, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.VoucherWithMerchant), args.Error(1)
}

func (m *MockVoucherRepository) PostedByUser(ctx context.Context, userID uint) ([]model.Voucher, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Voucher), args.Error(1)
}

func (m *MockVoucherRepository) Save(ctx context.Context, userID, voucherID uint) error {
	args := m.Called(ctx, userID, voucherID)
	return args.Error(0)
}

func (m *MockVoucherRepository) Like(ctx context.Context, userID, voucherID uint) error {
	args := m.Called(ctx, userID, voucherID)
	return args.Error(0)
}

func (m *MockVoucherRepository) Create(ctx context.Context, voucher *model.Voucher) error {
	args := m.Called(ctx, voucher)
	return args.Error(0)
}

// MockMerchantRepository is a mock implementation of MerchantRepository.
type MockMerchantRepository struct {
	mock.Mock
}

func (m *MockMerchantRepository) List(ctx context.Context) ([]model.Merchant, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Merchant), args.Error(1)
}

func (m *MockMerchantRepository) FindByName(ctx context.Context, name string) (*model.Merchant, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Merchant), args.Error(1)
}

// MockCategoryRepository is a mock implementation of CategoryRepository.
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) List(ctx context.Context) ([]model.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Category), args.Error(1)
}

func (m *MockCategoryRepository) FindByName(ctx context.Context, name string) (*model.Category, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Category), args.Error(1)
}
