package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"case_desk_app_go/config"
	"case_desk_app_go/middleware"
	"case_desk_app_go/models"
	"case_desk_app_go/services"

	"github.com/labstack/echo/v4"
)

// Narrative shown in a dossier is capped at this many characters
const narrativePreviewLimit = 1000

// Minimum narrative length when filing a new case
const narrativeMinLength = 20

// CaseHandler exposes the case-management commands
type CaseHandler struct {
	cfg      *config.Config
	cases    *services.CaseService
	sessions *services.DirectorySessions
}

// NewCaseHandler creates a new case handler
func NewCaseHandler(cfg *config.Config, cases *services.CaseService, sessions *services.DirectorySessions) *CaseHandler {
	return &CaseHandler{cfg: cfg, cases: cases, sessions: sessions}
}

// FileCaseRequest is the payload for opening a new investigation file
type FileCaseRequest struct {
	Department string `json:"department"`
	Suspect    string `json:"suspect"`
	Charges    string `json:"charges"`
	Narrative  string `json:"narrative"`
}

// FileCase opens a new investigation file
func (h *CaseHandler) FileCase(c echo.Context) error {
	var req FileCaseRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if !h.validDepartment(req.Department) {
		return echo.NewHTTPError(http.StatusBadRequest, "Unknown department code")
	}
	if len(strings.TrimSpace(req.Narrative)) < narrativeMinLength {
		return echo.NewHTTPError(http.StatusBadRequest,
			fmt.Sprintf("Narrative must be at least %d characters", narrativeMinLength))
	}

	caller := middleware.GetCaller(c)
	record, err := h.cases.Create(req.Department, caller.Name, req.Suspect, req.Charges, req.Narrative)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(http.StatusCreated, services.Render{
		Title: fmt.Sprintf("📂 Case Opened: %s", record.CaseNumber),
		Color: services.ColorGreen,
		Fields: []services.Field{
			{Name: "Suspect", Value: services.Clean(record.Suspect)},
		},
	})
}

// EditCaseRequest is the payload for amending a case. Omitted fields keep
// their current value; status "KEEP" is the explicit form of omission.
type EditCaseRequest struct {
	Suspect   *string `json:"suspect,omitempty"`
	Narrative *string `json:"narrative,omitempty"`
	Status    *string `json:"status,omitempty"`
}

// EditCase amends an existing case's suspect, narrative, or status
func (h *CaseHandler) EditCase(c echo.Context) error {
	caseNumber := c.Param("number")

	var req EditCaseRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	patch := services.CasePatch{Suspect: req.Suspect, Narrative: req.Narrative}
	if req.Status != nil && !strings.EqualFold(*req.Status, "KEEP") {
		patch.Status = req.Status
	}

	record, err := h.cases.Update(caseNumber, patch)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return fail(c, err)
		}
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return notice(c, http.StatusOK,
		fmt.Sprintf("%s Case %s updated.", services.PrefixOK, record.CaseNumber))
}

// Lookup renders the full dossier for a single case, jackets included
func (h *CaseHandler) Lookup(c echo.Context) error {
	caseNumber := c.Param("number")

	record, err := h.cases.Get(caseNumber)
	if err != nil {
		return fail(c, err)
	}
	jackets, err := h.cases.ListJackets(caseNumber)
	if err != nil {
		return fail(c, err)
	}

	// Drug Task Force dossiers render red, everything else blue
	color := services.ColorBlue
	if strings.Contains(record.CaseNumber, "DTF") {
		color = services.ColorRed
	}

	fields := []services.Field{
		{Name: "Status", Value: record.Status, Inline: true},
		{Name: "Suspect", Value: services.Clean(record.Suspect), Inline: true},
	}
	if len(jackets) > 0 {
		links := make([]string, 0, len(jackets))
		for _, j := range jackets {
			links = append(links, fmt.Sprintf("🔗 [%s](%s)", services.Clean(j.Label), j.URL))
		}
		fields = append(fields, services.Field{Name: "Jackets", Value: strings.Join(links, "\n")})
	}

	narrative := services.Clean(record.Narrative)
	if len(narrative) > narrativePreviewLimit {
		narrative = narrative[:narrativePreviewLimit]
	}
	fields = append(fields, services.Field{Name: "Narrative", Value: narrative})

	return c.JSON(http.StatusOK, services.Render{
		Title:  fmt.Sprintf("📂 Case: %s", record.CaseNumber),
		Color:  color,
		Fields: fields,
	})
}

// DirectoryResponse pairs the first rendered page with the token used for
// subsequent navigation
type DirectoryResponse struct {
	Token string          `json:"token"`
	Page  services.Render `json:"page"`
}

// Directory lists all cases newest-first as a paginated view
func (h *CaseHandler) Directory(c echo.Context) error {
	cases, err := h.cases.List()
	if err != nil {
		return fail(c, err)
	}
	if len(cases) == 0 {
		return notice(c, http.StatusOK, "Database empty.")
	}

	view := services.NewPaginator("Case Directory", services.ColorBlue, cases,
		h.cfg.DirectoryPageSize, func(record models.Case) services.Field {
			return services.Field{
				Name: fmt.Sprintf("ID: %s", record.CaseNumber),
				Value: fmt.Sprintf("Suspect: %s\nStatus: %s",
					services.Clean(record.Suspect), record.Status),
			}
		})

	return c.JSON(http.StatusOK, DirectoryResponse{
		Token: h.sessions.Open(view),
		Page:  view.Render(),
	})
}

// ImportCaseRequest is the payload for backfilling a legacy record
type ImportCaseRequest struct {
	CaseNumber string `json:"case_number"`
	Suspect    string `json:"suspect"`
	Status     string `json:"status"`
}

// ImportCase backfills a pre-system record under its historical number
func (h *CaseHandler) ImportCase(c echo.Context) error {
	var req ImportCaseRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if strings.TrimSpace(req.CaseNumber) == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Case number is required")
	}
	if !models.IsValidCaseStatus(strings.ToUpper(req.Status)) {
		return echo.NewHTTPError(http.StatusBadRequest, "Unknown case status")
	}

	caller := middleware.GetCaller(c)
	record, err := h.cases.ImportLegacy(req.CaseNumber, caller.Name, req.Suspect, req.Status)
	if err != nil {
		return fail(c, err)
	}

	return notice(c, http.StatusCreated,
		fmt.Sprintf("%s Case %s imported.", services.PrefixOK, record.CaseNumber))
}

// DeleteCase permanently removes a case and its jackets. Idempotent.
func (h *CaseHandler) DeleteCase(c echo.Context) error {
	caseNumber := c.Param("number")

	if err := h.cases.Delete(caseNumber); err != nil {
		return fail(c, err)
	}

	return notice(c, http.StatusOK,
		fmt.Sprintf("%s Deleted %s.", services.PrefixDeleted, caseNumber))
}

func (h *CaseHandler) validDepartment(code string) bool {
	for _, dept := range h.cfg.DepartmentCodes {
		if dept == code {
			return true
		}
	}
	return false
}
