package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"dealshare/internal/service"
)

// CatalogHandler handles merchant listings and cross-entity search.
type CatalogHandler struct {
	catalogService service.CatalogService
}

// NewCatalogHandler creates a new catalog handler.
func NewCatalogHandler(catalogService service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// Merchants returns all merchants ordered by name.
func (h *CatalogHandler) Merchants(c echo.Context) error {
	merchants, err := h.catalogService.Merchants(c.Request().Context())
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, merchants)
}

// Categories returns all categories ordered by name.
func (h *CatalogHandler) Categories(c echo.Context) error {
	categories, err := h.catalogService.Categories(c.Request().Context())
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, categories)
}

// MerchantListings returns the merchant's deals, or its vouchers when it
// has no deals, tagged with a dataType discriminator.
func (h *CatalogHandler) MerchantListings(c echo.Context) error {
	merchantID, err := pathID(c, "merchantId")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid merchant id")
	}

	listings, err := h.catalogService.MerchantListings(c.Request().Context(), merchantID)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, listingsPayload(listings))
}

// Search matches deals first, then vouchers. No match at all answers with
// dataType "none" and an empty data set.
func (h *CatalogHandler) Search(c echo.Context) error {
	listings, err := h.catalogService.Search(c.Request().Context(), c.QueryParam("search"))
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, listingsPayload(listings))
}

// listingsPayload shapes a discriminated result for the wire.
func listingsPayload(l *service.Listings) echo.Map {
	switch l.Kind {
	case service.KindDeals:
		return echo.Map{"dataType": l.Kind, "data": l.Deals}
	case service.KindVouchers:
		return echo.Map{"dataType": l.Kind, "data": l.Vouchers}
	default:
		return echo.Map{"dataType": l.Kind, "data": []struct{}{}}
	}
}
