package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"dealshare/internal/service"
)

// VoucherHandler handles voucher listings, per-user voucher state, and
// submissions.
type VoucherHandler struct {
	voucherService service.VoucherService
}

// NewVoucherHandler creates a new voucher handler.
func NewVoucherHandler(voucherService service.VoucherService) *VoucherHandler {
	return &VoucherHandler{voucherService: voucherService}
}

// AddVoucherRequest represents a voucher submission. Field names match the
// submission form on the web tier.
type AddVoucherRequest struct {
	Title       string `json:"voucherTitle" validate:"required"`
	Code        string `json:"voucherCode" validate:"required"`
	Description string `json:"voucherDescription" validate:"required"`
	ExpiryDate  string `json:"voucherExpiryDate" validate:"required"`
	ShopLink    string `json:"voucherShopLink"`
	Merchant    string `json:"merchant" validate:"required"`
	UserID      uint   `json:"user_id" validate:"required"`
}

// List returns all vouchers with their merchant images.
func (h *VoucherHandler) List(c echo.Context) error {
	vouchers, err := h.voucherService.List(c.Request().Context())
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, vouchers)
}

// ListByDate returns vouchers soonest-to-expire first.
func (h *VoucherHandler) ListByDate(c echo.Context) error {
	vouchers, err := h.voucherService.ByExpiry(c.Request().Context())
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, vouchers)
}

// ListByLikes returns vouchers most liked first, with vote counts.
func (h *VoucherHandler) ListByLikes(c echo.Context) error {
	vouchers, err := h.voucherService.ByLikes(c.Request().Context())
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, vouchers)
}

// Get returns a single voucher or 404.
func (h *VoucherHandler) Get(c echo.Context) error {
	id, err := pathID(c, "voucherId")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid voucher id")
	}

	voucher, err := h.voucherService.Get(c.Request().Context(), id)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, voucher)
}

// Save bookmarks a voucher for a user. Repeated saves are no-ops.
func (h *VoucherHandler) Save(c echo.Context) error {
	userID, err := queryID(c, "userId")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid user id")
	}
	voucherID, err := queryID(c, "voucherId")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid voucher id")
	}

	if err := h.voucherService.Save(c.Request().Context(), userID, voucherID); err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "voucher saved successfully"})
}

// Like records an upvote for a voucher. Repeated likes are no-ops.
func (h *VoucherHandler) Like(c echo.Context) error {
	userID, err := queryID(c, "userId")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid user id")
	}
	voucherID, err := queryID(c, "voucherId")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid voucher id")
	}

	if err := h.voucherService.Like(c.Request().Context(), userID, voucherID); err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "voucher liked successfully"})
}

// Saved returns the user's bookmarked vouchers, 404 when there are none.
func (h *VoucherHandler) Saved(c echo.Context) error {
	userID, err := queryID(c, "userId")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid user id")
	}

	vouchers, err := h.voucherService.Saved(c.Request().Context(), userID)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, vouchers)
}

// Posted returns the vouchers a user has submitted.
func (h *VoucherHandler) Posted(c echo.Context) error {
	userID, err := pathID(c, "userId")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid user id")
	}

	vouchers, err := h.voucherService.Posted(c.Request().Context(), userID)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, vouchers)
}

// Add inserts a submitted voucher.
func (h *VoucherHandler) Add(c echo.Context) error {
	var req AddVoucherRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	expDate, err := parseDate(req.ExpiryDate)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid expiry date")
	}

	voucher, err := h.voucherService.Add(c.Request().Context(), service.VoucherInput{
		Title:       req.Title,
		Code:        req.Code,
		Description: req.Description,
		ExpDate:     expDate,
		ShopLink:    req.ShopLink,
		Merchant:    req.Merchant,
	}, req.UserID)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusCreated, voucher)
}
