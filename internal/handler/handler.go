package handler

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	apperrors "dealshare/internal/errors"
)

// dateLayout is the submission format for voucher expiry dates.
const dateLayout = "2006-01-02"

func parseDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, s)
}

// respondError maps a domain error onto the wire taxonomy. Anything
// unrecognised becomes a generic 500; raw database detail never leaves
// the service boundary.
func respondError(err error) *echo.HTTPError {
	httpErr := apperrors.MapErrorToHTTP(err)
	return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
}

// pathID parses a numeric path parameter.
func pathID(c echo.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

// queryID parses a numeric query parameter.
func queryID(c echo.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.QueryParam(name), 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
