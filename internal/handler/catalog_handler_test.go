package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"dealshare/internal/model"
	"dealshare/internal/service"
)

func TestCatalogHandler_Search(t *testing.T) {
	t.Run("deals payload", func(t *testing.T) {
		catalogService := new(MockCatalogService)
		catalogService.On("Search", mock.Anything, "tv").Return(&service.Listings{
			Kind:  service.KindDeals,
			Deals: []model.Deal{{ID: 1, Title: "4K TV"}},
		}, nil)

		c, rec := newTestContext(t, http.MethodGet, "/search?search=tv", "")

		err := NewCatalogHandler(catalogService).Search(c)

		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"dataType":"deals"`)
		assert.Contains(t, rec.Body.String(), `"4K TV"`)
	})

	t.Run("no match is an explicit none payload", func(t *testing.T) {
		catalogService := new(MockCatalogService)
		catalogService.On("Search", mock.Anything, "zzzz").Return(&service.Listings{
			Kind: service.KindNone,
		}, nil)

		c, rec := newTestContext(t, http.MethodGet, "/search?search=zzzz", "")

		err := NewCatalogHandler(catalogService).Search(c)

		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"dataType":"none","data":[]}`, rec.Body.String())
	})
}

func TestCatalogHandler_Categories(t *testing.T) {
	catalogService := new(MockCatalogService)
	catalogService.On("Categories", mock.Anything).Return([]model.Category{
		{ID: 1, Name: "Electronics", Slug: "electronics"},
	}, nil)

	c, rec := newTestContext(t, http.MethodGet, "/categories", "")

	err := NewCatalogHandler(catalogService).Categories(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"electronics"`)
}

func TestCatalogHandler_MerchantListings(t *testing.T) {
	catalogService := new(MockCatalogService)
	catalogService.On("MerchantListings", mock.Anything, uint(4)).Return(&service.Listings{
		Kind: service.KindVouchers,
		Vouchers: []model.VoucherWithMerchant{
			{Voucher: model.Voucher{ID: 2, Title: "Free delivery weekend"}},
		},
	}, nil)

	c, rec := newTestContext(t, http.MethodGet, "/merchants/4/deals", "")
	c.SetParamNames("merchantId")
	c.SetParamValues("4")

	err := NewCatalogHandler(catalogService).MerchantListings(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"dataType":"vouchers"`)
	assert.Contains(t, rec.Body.String(), `"Free delivery weekend"`)
}
