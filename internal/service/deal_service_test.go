package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "dealshare/internal/errors"
	"dealshare/internal/model"
)

func dealInput() DealInput {
	return DealInput{
		Title:         "Half price kettle",
		Description:   "Rapid boil kettle at half price.",
		DealLink:      "https://example.com/kettle",
		ImageLink:     "https://example.com/kettle.png",
		Price:         decimal.NewFromInt(15),
		OriginalPrice: decimal.NewFromInt(30),
		Merchant:      "Argos",
		Category:      "Home & Garden",
	}
}

func TestDealService_Add(t *testing.T) {
	tests := []struct {
		name          string
		setupMocks    func(*MockDealRepository, *MockMerchantRepository, *MockCategoryRepository)
		expectedError error
	}{
		{
			name: "successful submission",
			setupMocks: func(d *MockDealRepository, m *MockMerchantRepository, c *MockCategoryRepository) {
				m.On("FindByName", mock.Anything, "Argos").Return(&model.Merchant{ID: 2, Name: "Argos"}, nil)
				c.On("FindByName", mock.Anything, "Home & Garden").Return(&model.Category{ID: 4, Name: "Home & Garden"}, nil)
				d.On("CreateWithCategory", mock.Anything, mock.AnythingOfType("*model.Deal"), uint(4)).Return(nil)
				d.On("PostedByUser", mock.Anything, uint(1)).Return([]model.Deal{{ID: 10, Title: "Half price kettle"}}, nil)
			},
		},
		{
			name: "unknown merchant writes nothing",
			setupMocks: func(d *MockDealRepository, m *MockMerchantRepository, c *MockCategoryRepository) {
				m.On("FindByName", mock.Anything, "Argos").Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: apperrors.ErrMerchantNotFound,
		},
		{
			name: "unknown category writes nothing",
			setupMocks: func(d *MockDealRepository, m *MockMerchantRepository, c *MockCategoryRepository) {
				m.On("FindByName", mock.Anything, "Argos").Return(&model.Merchant{ID: 2, Name: "Argos"}, nil)
				c.On("FindByName", mock.Anything, "Home & Garden").Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: apperrors.ErrCategoryNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dealRepo := new(MockDealRepository)
			merchantRepo := new(MockMerchantRepository)
			categoryRepo := new(MockCategoryRepository)
			tt.setupMocks(dealRepo, merchantRepo, categoryRepo)

			service := NewDealService(dealRepo, merchantRepo, categoryRepo)
			posted, err := service.Add(context.Background(), dealInput(), 1)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, posted)
				dealRepo.AssertNotCalled(t, "CreateWithCategory", mock.Anything, mock.Anything, mock.Anything)
			} else {
				assert.NoError(t, err)
				assert.Len(t, posted, 1)
			}

			dealRepo.AssertExpectations(t)
			merchantRepo.AssertExpectations(t)
			categoryRepo.AssertExpectations(t)
		})
	}
}

func TestDealService_AddSetsOwnerAndMerchant(t *testing.T) {
	dealRepo := new(MockDealRepository)
	merchantRepo := new(MockMerchantRepository)
	categoryRepo := new(MockCategoryRepository)

	merchantRepo.On("FindByName", mock.Anything, "Argos").Return(&model.Merchant{ID: 2}, nil)
	categoryRepo.On("FindByName", mock.Anything, "Home & Garden").Return(&model.Category{ID: 4}, nil)
	dealRepo.On("CreateWithCategory", mock.Anything, mock.MatchedBy(func(deal *model.Deal) bool {
		return deal.UserID == 9 && deal.MerchantID == 2 && !deal.PostDate.IsZero()
	}), uint(4)).Return(nil)
	dealRepo.On("PostedByUser", mock.Anything, uint(9)).Return([]model.Deal{}, nil)

	service := NewDealService(dealRepo, merchantRepo, categoryRepo)
	_, err := service.Add(context.Background(), dealInput(), 9)

	assert.NoError(t, err)
	dealRepo.AssertExpectations(t)
}

func TestDealService_Saved(t *testing.T) {
	t.Run("empty list maps to no saved items", func(t *testing.T) {
		dealRepo := new(MockDealRepository)
		dealRepo.On("SavedByUser", mock.Anything, uint(1)).Return([]model.Deal{}, nil)

		service := NewDealService(dealRepo, new(MockMerchantRepository), new(MockCategoryRepository))
		deals, err := service.Saved(context.Background(), 1)

		assert.ErrorIs(t, err, apperrors.ErrNoSavedItems)
		assert.Nil(t, deals)
	})

	t.Run("returns bookmarks", func(t *testing.T) {
		dealRepo := new(MockDealRepository)
		dealRepo.On("SavedByUser", mock.Anything, uint(1)).Return([]model.Deal{{ID: 3}}, nil)

		service := NewDealService(dealRepo, new(MockMerchantRepository), new(MockCategoryRepository))
		deals, err := service.Saved(context.Background(), 1)

		assert.NoError(t, err)
		assert.Len(t, deals, 1)
	})
}

func TestDealService_Get(t *testing.T) {
	dealRepo := new(MockDealRepository)
	dealRepo.On("FindByID", mock.Anything, uint(99)).Return(nil, gorm.ErrRecordNotFound)

	service := NewDealService(dealRepo, new(MockMerchantRepository), new(MockCategoryRepository))
	deal, err := service.Get(context.Background(), 99)

	assert.ErrorIs(t, err, apperrors.ErrDealNotFound)
	assert.Nil(t, deal)
}
