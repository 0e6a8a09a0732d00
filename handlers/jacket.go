package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"case_desk_app_go/middleware"
	"case_desk_app_go/services"

	"github.com/labstack/echo/v4"
)

// AttachJacketRequest is the payload for linking an external document
type AttachJacketRequest struct {
	URL   string `json:"url"`
	Label string `json:"label"`
}

// AttachJacket links a document to a case. The case number is not checked
// for existence; an unknown number yields an orphaned jacket by design.
func (h *CaseHandler) AttachJacket(c echo.Context) error {
	caseNumber := c.Param("number")

	var req AttachJacketRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if strings.TrimSpace(req.URL) == "" || strings.TrimSpace(req.Label) == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "URL and label are required")
	}

	caller := middleware.GetCaller(c)
	jacket, err := h.cases.AttachJacket(caseNumber, req.URL, req.Label, caller.Name)
	if err != nil {
		return fail(c, err)
	}

	return notice(c, http.StatusCreated,
		fmt.Sprintf("%s Linked %s.", services.PrefixOK, services.Clean(jacket.Label)))
}

// AddEvidenceRequest is the payload for appending a media link to a case
// narrative
type AddEvidenceRequest struct {
	URL string `json:"url"`
}

// AddEvidence appends an evidence line to the case narrative
func (h *CaseHandler) AddEvidence(c echo.Context) error {
	caseNumber := c.Param("number")

	var req AddEvidenceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if strings.TrimSpace(req.URL) == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "URL is required")
	}

	caller := middleware.GetCaller(c)
	if _, err := h.cases.AppendEvidence(caseNumber, caller.Name, req.URL); err != nil {
		return fail(c, err)
	}

	return notice(c, http.StatusOK, services.PrefixOK+" Evidence added.")
}
