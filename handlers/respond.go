package handlers

import (
	"errors"
	"net/http"

	"case_desk_app_go/services"

	"github.com/labstack/echo/v4"
)

// notice sends a private informational response (boundary notices,
// nothing-to-show, confirmations addressed only to the invoking user)
func notice(c echo.Context, status int, title string) error {
	return c.JSON(status, services.Render{Title: title, Private: true})
}

// fail maps a service error to its fixed private failure response.
// Anything outside the taxonomy is an internal error.
func fail(c echo.Context, err error) error {
	switch {
	case errors.Is(err, services.ErrNotFound):
		return notice(c, http.StatusNotFound, services.PrefixNotFound+" Not found.")
	case errors.Is(err, services.ErrDuplicateKey):
		return notice(c, http.StatusConflict, services.PrefixDuplicate+" Record already exists.")
	case errors.Is(err, services.ErrSessionExpired):
		return notice(c, http.StatusGone, "Directory session expired. Re-run the listing command.")
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}
