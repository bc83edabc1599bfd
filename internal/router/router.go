package router

import (
	"crypto/subtle"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"dealshare/internal/config"
	apperrors "dealshare/internal/errors"
	"dealshare/internal/handler"
)

// requestTimeout caps each request's context. Work queued behind a
// saturated DB pool inherits the deadline and fails fast instead of
// holding the connection open.
const requestTimeout = 10 * time.Second

// Register wires the API tier's routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	userHandler *handler.UserHandler,
	dealHandler *handler.DealHandler,
	voucherHandler *handler.VoucherHandler,
	catalogHandler *handler.CatalogHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.ContextTimeout(requestTimeout))

	e.Validator = &CustomValidator{validator: validator.New()}

	// Static shared secret gating write endpoints, supplied as ?key=.
	keyAuth := middleware.KeyAuthWithConfig(middleware.KeyAuthConfig{
		KeyLookup: "query:key",
		Validator: func(key string, c echo.Context) (bool, error) {
			return subtle.ConstantTimeCompare([]byte(key), []byte(cfg.APIKey)) == 1, nil
		},
		ErrorHandler: func(err error, c echo.Context) error {
			return echo.NewHTTPError(http.StatusUnauthorized, apperrors.ErrorResponse{
				Error: apperrors.ErrKeyNotValid.Error(),
				Code:  "KEY_NOT_VALID",
			})
		},
	})

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	// Home: deals ranked by votes.
	e.GET("/", dealHandler.Home)

	// Deals.
	e.GET("/deals", dealHandler.List)
	e.GET("/deals/liked", dealHandler.ListLiked)
	e.GET("/deals/recent", dealHandler.ListRecent)
	e.GET("/deals/posted/:userId", dealHandler.Posted)
	e.POST("/deals/add", dealHandler.Add, keyAuth)
	e.GET("/deals/:dealId", dealHandler.Get)

	// Vouchers.
	e.GET("/vouchers", voucherHandler.List)
	e.GET("/vouchers/by-date", voucherHandler.ListByDate)
	e.GET("/vouchers/likes", voucherHandler.ListByLikes)
	e.GET("/vouchers/posted/:userId", voucherHandler.Posted)
	e.POST("/vouchers/add", voucherHandler.Add, keyAuth)
	e.GET("/vouchers/:voucherId", voucherHandler.Get)

	// Merchants, categories, search.
	e.GET("/merchants", catalogHandler.Merchants)
	e.GET("/merchants/:merchantId/deals", catalogHandler.MerchantListings)
	e.GET("/categories", catalogHandler.Categories)
	e.GET("/categories/:categorySlug", dealHandler.ByCategory)
	e.GET("/search", catalogHandler.Search)

	// Users and per-user state.
	e.POST("/register", userHandler.Register, keyAuth)
	e.POST("/login", userHandler.Login)
	e.GET("/user/:userId", userHandler.GetUser)
	e.POST("/saveDeal", dealHandler.Save)
	e.POST("/saveVoucher", voucherHandler.Save)
	e.POST("/likeDeal", dealHandler.Like)
	e.POST("/likeVoucher", voucherHandler.Like)
	e.GET("/savedDeals", dealHandler.Saved)
	e.GET("/savedVouchers", voucherHandler.Saved)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
