package web

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// MerchantsPage renders the merchant directory.
func (h *Handlers) MerchantsPage(c echo.Context) error {
	merchants, err := h.api.Merchants(c.Request().Context())
	if err != nil {
		return upstreamError(err)
	}
	data := h.view(c, "Merchants")
	data.Merchants = merchants
	return c.Render(http.StatusOK, "merchants", data)
}

// MerchantListingsPage renders a merchant's deals, or its vouchers when it
// has no deals.
func (h *Handlers) MerchantListingsPage(c echo.Context) error {
	listings, err := h.api.MerchantListings(c.Request().Context(), c.Param("merchantId"))
	if err != nil {
		return upstreamError(err)
	}
	return h.renderListings(c, "Merchant Results", listings)
}

// SearchPage renders cross-entity search results. No match at all lands on
// the no-results page with a 404.
func (h *Handlers) SearchPage(c echo.Context) error {
	listings, err := h.api.Search(c.Request().Context(), c.QueryParam("search"))
	if err != nil {
		return upstreamError(err)
	}
	return h.renderListings(c, "Search Results", listings)
}

// renderListings branches on the discriminator shared by the
// merchant-listings and search payloads.
func (h *Handlers) renderListings(c echo.Context, title string, listings *Listings) error {
	data := h.view(c, title)
	switch listings.DataType {
	case "deals":
		deals, err := listings.DealRows()
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, "bad upstream payload")
		}
		data.Deals = deals
		return c.Render(http.StatusOK, "deals", data)
	case "vouchers":
		vouchers, err := listings.VoucherRows()
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, "bad upstream payload")
		}
		data.Vouchers = vouchers
		return c.Render(http.StatusOK, "vouchers", data)
	default:
		return c.Render(http.StatusNotFound, "no_results", data)
	}
}
