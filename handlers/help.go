package handlers

import (
	"net/http"

	"case_desk_app_go/config"
	"case_desk_app_go/services"

	"github.com/labstack/echo/v4"
)

// HelpHandler renders the system manual
func HelpHandler(cfg *config.Config) echo.HandlerFunc {
	fields := []services.Field{
		{Name: "POST /api/cases", Value: "Start a new investigation."},
		{Name: "PATCH /api/cases/:number", Value: "Update status, suspect, or narrative."},
		{Name: "GET /api/cases", Value: "Scroll through all current cases."},
		{Name: "GET /api/cases/:number", Value: "View details, evidence, and jackets."},
		{Name: "POST /api/cases/:number/jackets", Value: "Link a document."},
		{Name: "POST /api/cases/:number/evidence", Value: "Append a media link to the narrative."},
		{Name: "POST /api/cases/import", Value: "Manually add a legacy case."},
		{Name: "DELETE /api/cases/:number", Value: "[ADMIN] Permanently wipe a case."},
	}
	if cfg.EnableStatutes {
		fields = append(fields,
			services.Field{Name: "POST /api/statutes", Value: "Add a statute to the directory."},
			services.Field{Name: "GET /api/statutes/search", Value: "Search statutes by code or title."},
		)
	}

	manual := services.Render{
		Title:       "🛡️ Case Desk System Manual",
		Description: "Authorized use only.",
		Color:       services.ColorGrey,
		Fields:      fields,
	}

	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, manual)
	}
}
