package web

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// VouchersPage renders all vouchers.
func (h *Handlers) VouchersPage(c echo.Context) error {
	vouchers, err := h.api.Vouchers(c.Request().Context())
	if err != nil {
		return upstreamError(err)
	}
	data := h.view(c, "Vouchers")
	data.Vouchers = vouchers
	return c.Render(http.StatusOK, "vouchers", data)
}

// VouchersByDatePage renders vouchers soonest-to-expire first.
func (h *Handlers) VouchersByDatePage(c echo.Context) error {
	vouchers, err := h.api.VouchersByDate(c.Request().Context())
	if err != nil {
		return upstreamError(err)
	}
	data := h.view(c, "Vouchers")
	data.Vouchers = vouchers
	return c.Render(http.StatusOK, "vouchers", data)
}

// VouchersByLikesPage renders vouchers most liked first.
func (h *Handlers) VouchersByLikesPage(c echo.Context) error {
	vouchers, err := h.api.VouchersByLikes(c.Request().Context())
	if err != nil {
		return upstreamError(err)
	}
	data := h.view(c, "Vouchers")
	data.Vouchers = vouchers
	return c.Render(http.StatusOK, "vouchers", data)
}

// VoucherPage renders a single voucher, 404 when the id is unknown.
func (h *Handlers) VoucherPage(c echo.Context) error {
	voucher, err := h.api.Voucher(c.Request().Context(), c.Param("voucherId"))
	if err != nil {
		return upstreamError(err)
	}
	data := h.view(c, voucher.Title)
	data.Vouchers = []interface{}{voucher}
	return c.Render(http.StatusOK, "voucher_result", data)
}

// SaveVoucher bookmarks a voucher for the logged-in user.
func (h *Handlers) SaveVoucher(c echo.Context) error {
	userID, _ := currentUser(c)
	if err := h.api.SaveVoucher(c.Request().Context(), userID, c.FormValue("voucherId")); err != nil {
		return upstreamError(err)
	}
	return c.Redirect(http.StatusFound, "/vouchers")
}

// LikeVoucher upvotes a voucher for the logged-in user.
func (h *Handlers) LikeVoucher(c echo.Context) error {
	userID, _ := currentUser(c)
	if err := h.api.LikeVoucher(c.Request().Context(), userID, c.FormValue("voucherId")); err != nil {
		return upstreamError(err)
	}
	return c.Redirect(http.StatusFound, "/vouchers")
}

// SavedVouchersPage renders the logged-in user's bookmarked vouchers.
func (h *Handlers) SavedVouchersPage(c echo.Context) error {
	userID, _ := currentUser(c)
	vouchers, err := h.api.SavedVouchers(c.Request().Context(), userID)
	if err != nil {
		return upstreamError(err)
	}
	data := h.view(c, "Saved Vouchers")
	data.Vouchers = vouchers
	return c.Render(http.StatusOK, "vouchers", data)
}

// AddVoucherPage renders the voucher submission form.
func (h *Handlers) AddVoucherPage(c echo.Context) error {
	return c.Render(http.StatusOK, "add_voucher", h.view(c, "Submit Voucher"))
}

// AddVoucher forwards a voucher submission to the key-gated API endpoint.
func (h *Handlers) AddVoucher(c echo.Context) error {
	userID, _ := currentUser(c)
	form := VoucherForm{
		Title:       c.FormValue("voucherTitle"),
		Code:        c.FormValue("voucherCode"),
		Description: c.FormValue("voucherDescription"),
		ExpiryDate:  c.FormValue("voucherExpiryDate"),
		ShopLink:    c.FormValue("voucherShopLink"),
		Merchant:    c.FormValue("merchant"),
		UserID:      userID,
	}
	if err := h.api.AddVoucher(c.Request().Context(), form); err != nil {
		return upstreamError(err)
	}
	return c.Redirect(http.StatusFound, "/vouchers")
}
