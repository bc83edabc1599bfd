package handler

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"dealshare/internal/model"
	"dealshare/internal/service"
)

// MockVoucherService is a mock implementation of service.VoucherService.
type MockVoucherService struct {
	mock.Mock
}

func (m *MockVoucherService) List(ctx context.Context) ([]model.VoucherWithMerchant, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.VoucherWithMerchant), args.Error(1)
}

func (m *MockVoucherService) ByExpiry(ctx context.Context) ([]model.VoucherWithMerchant, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.VoucherWithMerchant), args.Error(1)
}

func (m *MockVoucherService) ByLikes(ctx context.Context) ([]model.VoucherWithMerchant, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.VoucherWithMerchant), args.Error(1)
}

func (m *MockVoucherService) Get(ctx context.Context, id uint) (*model.VoucherWithMerchant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.VoucherWithMerchant), args.Error(1)
}

func (m *MockVoucherService) Saved(ctx context.Context, userID uint) ([]model.VoucherWithMerchant, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.VoucherWithMerchant), args.Error(1)
}

func (m *MockVoucherService) Posted(ctx context.Context, userID uint) ([]model.Voucher, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Voucher), args.Error(1)
}

func (m *MockVoucherService) Save(ctx context.Context, userID, voucherID uint) error {
	args := m.Called(ctx, userID, voucherID)
	return args.Error(0)
}

func (m *MockVoucherService) Like(ctx context.Context, userID, voucherID uint) error {
	args := m.Called(ctx, userID, voucherID)
	return args.Error(0)
}

func (m *MockVoucherService) Add(ctx context.Context, in service.VoucherInput, userID uint) (*model.Voucher, error) {
	args := m.Called(ctx, in, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Voucher), args.Error(1)
}

func TestVoucherHandler_Add(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		voucherService := new(MockVoucherService)
		voucherService.On("Add", mock.Anything, mock.MatchedBy(func(in service.VoucherInput) bool {
			return in.ExpDate.Equal(time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC))
		}), uint(1)).Return(&model.Voucher{ID: 5, Title: "Winter sale"}, nil)

		body := `{"voucherTitle":"Winter sale","voucherCode":"WINTER","voucherDescription":"Seasonal discount",` +
			`"voucherExpiryDate":"2026-12-31","voucherShopLink":"https://example.com","merchant":"Argos","user_id":1}`
		c, rec := newTestContext(t, http.MethodPost, "/vouchers/add", body)

		err := NewVoucherHandler(voucherService).Add(c)

		require.NoError(t, err)
		assert.Equal(t, http.StatusCreated, rec.Code)
		voucherService.AssertExpectations(t)
	})

	t.Run("malformed expiry date is 400", func(t *testing.T) {
		voucherService := new(MockVoucherService)

		body := `{"voucherTitle":"Winter sale","voucherCode":"WINTER","voucherDescription":"Seasonal discount",` +
			`"voucherExpiryDate":"31/12/2026","voucherShopLink":"https://example.com","merchant":"Argos","user_id":1}`
		c, _ := newTestContext(t, http.MethodPost, "/vouchers/add", body)

		err := NewVoucherHandler(voucherService).Add(c)

		var httpErr *echo.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusBadRequest, httpErr.Code)
		voucherService.AssertNotCalled(t, "Add", mock.Anything, mock.Anything, mock.Anything)
	})
}
