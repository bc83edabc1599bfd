package web

import (
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"dealshare/internal/session"
)

// CustomValidator wraps validator for echo's binding pipeline.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate validates the given struct.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// Register wires the page routes onto the echo instance. Session
// resolution runs on every request; routes acting on behalf of a user
// additionally require one.
func Register(e *echo.Echo, h *Handlers, store session.Store, secret string) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(ResolveSession(store, secret))
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/", h.Home)
	e.POST("/", h.Login)
	e.GET("/user/register", h.RegisterPage)
	e.POST("/user/register", h.Register)
	e.GET("/user/dashboard", h.Dashboard, RequireUser)
	e.POST("/user/logout", h.Logout, RequireUser)

	e.GET("/deals", h.DealsPage)
	e.GET("/deals/liked", h.LikedDealsPage)
	e.GET("/deals/recent", h.RecentDealsPage)
	e.GET("/deals/saved", h.SavedDealsPage, RequireUser)
	e.GET("/deals/add", h.AddDealPage, RequireUser)
	e.POST("/deals/add", h.AddDeal, RequireUser)
	e.POST("/deals/save", h.SaveDeal, RequireUser)
	e.POST("/deals/like", h.LikeDeal, RequireUser)
	e.GET("/deals/:dealId", h.DealPage)

	e.GET("/vouchers", h.VouchersPage)
	e.GET("/vouchers/by-exp-date", h.VouchersByDatePage)
	e.GET("/vouchers/most-likes", h.VouchersByLikesPage)
	e.GET("/vouchers/saved", h.SavedVouchersPage, RequireUser)
	e.GET("/vouchers/addVoucher", h.AddVoucherPage, RequireUser)
	e.POST("/vouchers/add", h.AddVoucher, RequireUser)
	e.POST("/vouchers/save", h.SaveVoucher, RequireUser)
	e.POST("/vouchers/like", h.LikeVoucher, RequireUser)
	e.GET("/vouchers/:voucherId", h.VoucherPage)

	e.GET("/merchants", h.MerchantsPage)
	e.GET("/merchants/:merchantId/deals", h.MerchantListingsPage)
	e.GET("/categories/:categorySlug", h.CategoryPage)
	e.GET("/search", h.SearchPage)
}
