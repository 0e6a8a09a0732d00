package handlers

import (
	"errors"
	"net/http"

	"case_desk_app_go/services"

	"github.com/labstack/echo/v4"
)

// DirectoryHandler navigates live directory views (cases and statutes
// share the same session registry)
type DirectoryHandler struct {
	sessions *services.DirectorySessions
}

// NewDirectoryHandler creates a new directory navigation handler
func NewDirectoryHandler(sessions *services.DirectorySessions) *DirectoryHandler {
	return &DirectoryHandler{sessions: sessions}
}

// Previous moves the identified view back one page
func (h *DirectoryHandler) Previous(c echo.Context) error {
	page, err := h.sessions.Previous(c.Param("token"))
	if err != nil {
		if errors.Is(err, services.ErrPageBoundary) {
			return notice(c, http.StatusOK, "First page reached.")
		}
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, page)
}

// Next moves the identified view forward one page
func (h *DirectoryHandler) Next(c echo.Context) error {
	page, err := h.sessions.Next(c.Param("token"))
	if err != nil {
		if errors.Is(err, services.ErrPageBoundary) {
			return notice(c, http.StatusOK, "Last page reached.")
		}
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, page)
}
