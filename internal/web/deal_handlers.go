package web

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// DealsPage renders all deals.
func (h *Handlers) DealsPage(c echo.Context) error {
	deals, err := h.api.Deals(c.Request().Context())
	if err != nil {
		return upstreamError(err)
	}
	data := h.view(c, "Bargains")
	data.Deals = deals
	return c.Render(http.StatusOK, "deals", data)
}

// LikedDealsPage renders deals most liked first.
func (h *Handlers) LikedDealsPage(c echo.Context) error {
	deals, err := h.api.LikedDeals(c.Request().Context())
	if err != nil {
		return upstreamError(err)
	}
	data := h.view(c, "Bargains")
	data.Deals = deals
	return c.Render(http.StatusOK, "deals", data)
}

// RecentDealsPage renders deals most recently posted first.
func (h *Handlers) RecentDealsPage(c echo.Context) error {
	deals, err := h.api.RecentDeals(c.Request().Context())
	if err != nil {
		return upstreamError(err)
	}
	data := h.view(c, "Bargains")
	data.Deals = deals
	return c.Render(http.StatusOK, "deals", data)
}

// DealPage renders a single deal, 404 when the id is unknown.
func (h *Handlers) DealPage(c echo.Context) error {
	deal, err := h.api.Deal(c.Request().Context(), c.Param("dealId"))
	if err != nil {
		return upstreamError(err)
	}
	data := h.view(c, deal.Title)
	data.Deals = []interface{}{deal}
	return c.Render(http.StatusOK, "deal_result", data)
}

// SaveDeal bookmarks a deal for the logged-in user.
func (h *Handlers) SaveDeal(c echo.Context) error {
	userID, _ := currentUser(c)
	if err := h.api.SaveDeal(c.Request().Context(), userID, c.FormValue("dealId")); err != nil {
		return upstreamError(err)
	}
	return c.Redirect(http.StatusFound, "/deals")
}

// LikeDeal upvotes a deal for the logged-in user.
func (h *Handlers) LikeDeal(c echo.Context) error {
	userID, _ := currentUser(c)
	if err := h.api.LikeDeal(c.Request().Context(), userID, c.FormValue("dealId")); err != nil {
		return upstreamError(err)
	}
	return c.Redirect(http.StatusFound, "/deals")
}

// SavedDealsPage renders the logged-in user's bookmarked deals.
func (h *Handlers) SavedDealsPage(c echo.Context) error {
	userID, _ := currentUser(c)
	deals, err := h.api.SavedDeals(c.Request().Context(), userID)
	if err != nil {
		return upstreamError(err)
	}
	data := h.view(c, "Saved Deals")
	data.Deals = deals
	return c.Render(http.StatusOK, "deals", data)
}

// AddDealPage renders the deal submission form.
func (h *Handlers) AddDealPage(c echo.Context) error {
	return c.Render(http.StatusOK, "add_deal", h.view(c, "Submit Deal"))
}

// AddDeal forwards a deal submission to the key-gated API endpoint.
func (h *Handlers) AddDeal(c echo.Context) error {
	userID, _ := currentUser(c)
	form := DealForm{
		Title:         c.FormValue("dealTitle"),
		Description:   c.FormValue("dealDescription"),
		Link:          c.FormValue("dealLink"),
		ImageLink:     c.FormValue("dealImageLink"),
		OriginalPrice: c.FormValue("dealOriginalPrice"),
		Price:         c.FormValue("dealPrice"),
		Merchant:      c.FormValue("dealMerchant"),
		Category:      c.FormValue("dealCategory"),
		UserID:        userID,
	}
	if err := h.api.AddDeal(c.Request().Context(), form); err != nil {
		return upstreamError(err)
	}
	return c.Redirect(http.StatusFound, "/deals")
}

// CategoryPage renders the deals in a category.
func (h *Handlers) CategoryPage(c echo.Context) error {
	deals, err := h.api.DealsByCategory(c.Request().Context(), c.Param("categorySlug"))
	if err != nil {
		return upstreamError(err)
	}
	data := h.view(c, "Bargains")
	data.Deals = deals
	return c.Render(http.StatusOK, "deals", data)
}
