package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"dealshare/internal/model"
	"dealshare/internal/service"
)

// MockAuthService is a mock implementation of service.AuthService.
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, in service.RegisterInput) (*model.User, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockAuthService) Authenticate(ctx context.Context, username, password string) (uint, error) {
	args := m.Called(ctx, username, password)
	return args.Get(0).(uint), args.Error(1)
}

func (m *MockAuthService) GetUser(ctx context.Context, id uint) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

// MockDealService is a mock implementation of service.DealService.
type MockDealService struct {
	mock.Mock
}

func (m *MockDealService) List(ctx context.Context) ([]model.Deal, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Deal), args.Error(1)
}

func (m *MockDealService) Recent(ctx context.Context) ([]model.Deal, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Deal), args.Error(1)
}

func (m *MockDealService) Ranked(ctx context.Context) ([]model.DealWithVotes, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.DealWithVotes), args.Error(1)
}

func (m *MockDealService) Get(ctx context.Context, id uint) (*model.Deal, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Deal), args.Error(1)
}

func (m *MockDealService) ByCategory(ctx context.Context, slug string) ([]model.CategoryDeal, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.CategoryDeal), args.Error(1)
}

func (m *MockDealService) Saved(ctx context.Context, userID uint) ([]model.Deal, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Deal), args.Error(1)
}

func (m *MockDealService) Posted(ctx context.Context, userID uint) ([]model.Deal, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Deal), args.Error(1)
}

func (m *MockDealService) Save(ctx context.Context, userID, dealID uint) error {
	args := m.Called(ctx, userID, dealID)
	return args.Error(0)
}

func (m *MockDealService) Like(ctx context.Context, userID, dealID uint) error {
	args := m.Called(ctx, userID, dealID)
	return args.Error(0)
}

func (m *MockDealService) Add(ctx context.Context, in service.DealInput, userID uint) ([]model.Deal, error) {
	args := m.Called(ctx, in, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Deal), args.Error(1)
}

// MockCatalogService is a mock implementation of service.CatalogService.
type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) Merchants(ctx context.Context) ([]model.Merchant, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Merchant), args.Error(1)
}

func (m *MockCatalogService) Categories(ctx context.Context) ([]model.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Category), args.Error(1)
}

func (m *MockCatalogService) MerchantListings(ctx context.Context, merchantID uint) (*service.Listings, error) {
	args := m.Called(ctx, merchantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Listings), args.Error(1)
}

func (m *MockCatalogService) Search(ctx context.Context, query string) (*service.Listings, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Listings), args.Error(1)
}
