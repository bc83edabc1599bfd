package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"dealshare/internal/service"
)

// DealHandler handles deal listings, per-user deal state, and submissions.
type DealHandler struct {
	dealService service.DealService
}

// NewDealHandler creates a new deal handler.
func NewDealHandler(dealService service.DealService) *DealHandler {
	return &DealHandler{dealService: dealService}
}

// AddDealRequest represents a deal submission. Field names match the
// submission form on the web tier.
type AddDealRequest struct {
	Title         string          `json:"dealTitle" validate:"required"`
	Description   string          `json:"dealDescription" validate:"required"`
	Link          string          `json:"dealLink" validate:"required"`
	ImageLink     string          `json:"dealImageLink"`
	OriginalPrice decimal.Decimal `json:"dealOriginalPrice"`
	Price         decimal.Decimal `json:"dealPrice"`
	Merchant      string          `json:"dealMerchant" validate:"required"`
	Category      string          `json:"dealCategory" validate:"required"`
	UserID        uint            `json:"user_id" validate:"required"`
}

// Home returns all deals ranked by like count, for the landing page.
func (h *DealHandler) Home(c echo.Context) error {
	deals, err := h.dealService.Ranked(c.Request().Context())
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, deals)
}

// List returns all deals in storage order.
func (h *DealHandler) List(c echo.Context) error {
	deals, err := h.dealService.List(c.Request().Context())
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, deals)
}

// ListLiked returns deals most liked first, annotated with vote counts.
func (h *DealHandler) ListLiked(c echo.Context) error {
	deals, err := h.dealService.Ranked(c.Request().Context())
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, deals)
}

// ListRecent returns deals most recently posted first.
func (h *DealHandler) ListRecent(c echo.Context) error {
	deals, err := h.dealService.Recent(c.Request().Context())
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, deals)
}

// Get returns a single deal or 404.
func (h *DealHandler) Get(c echo.Context) error {
	id, err := pathID(c, "dealId")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid deal id")
	}

	deal, err := h.dealService.Get(c.Request().Context(), id)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, deal)
}

// ByCategory returns deals in the category identified by slug.
func (h *DealHandler) ByCategory(c echo.Context) error {
	deals, err := h.dealService.ByCategory(c.Request().Context(), c.Param("categorySlug"))
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, deals)
}

// Save bookmarks a deal for a user. Repeated saves are no-ops.
func (h *DealHandler) Save(c echo.Context) error {
	userID, err := queryID(c, "userId")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid user id")
	}
	dealID, err := queryID(c, "dealId")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid deal id")
	}

	if err := h.dealService.Save(c.Request().Context(), userID, dealID); err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "deal saved successfully"})
}

// Like records an upvote for a deal. Repeated likes are no-ops.
func (h *DealHandler) Like(c echo.Context) error {
	userID, err := queryID(c, "userId")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid user id")
	}
	dealID, err := queryID(c, "dealId")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid deal id")
	}

	if err := h.dealService.Like(c.Request().Context(), userID, dealID); err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "deal liked successfully"})
}

// Saved returns the user's bookmarked deals, 404 when there are none.
func (h *DealHandler) Saved(c echo.Context) error {
	userID, err := queryID(c, "userId")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid user id")
	}

	deals, err := h.dealService.Saved(c.Request().Context(), userID)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, deals)
}

// Posted returns the deals a user has submitted.
func (h *DealHandler) Posted(c echo.Context) error {
	userID, err := pathID(c, "userId")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid user id")
	}

	deals, err := h.dealService.Posted(c.Request().Context(), userID)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, deals)
}

// Add inserts a submitted deal with its category link and answers with the
// submitting user's full posted list.
func (h *DealHandler) Add(c echo.Context) error {
	var req AddDealRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	deals, err := h.dealService.Add(c.Request().Context(), service.DealInput{
		Title:         req.Title,
		Description:   req.Description,
		DealLink:      req.Link,
		ImageLink:     req.ImageLink,
		Price:         req.Price,
		OriginalPrice: req.OriginalPrice,
		Merchant:      req.Merchant,
		Category:      req.Category,
	}, req.UserID)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusCreated, deals)
}
