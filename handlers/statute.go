package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"case_desk_app_go/config"
	"case_desk_app_go/models"
	"case_desk_app_go/services"

	"github.com/labstack/echo/v4"
)

// StatuteHandler exposes the statute directory commands (extended variant)
type StatuteHandler struct {
	cfg      *config.Config
	statutes *services.StatuteService
	sessions *services.DirectorySessions
}

// NewStatuteHandler creates a new statute handler
func NewStatuteHandler(cfg *config.Config, statutes *services.StatuteService, sessions *services.DirectorySessions) *StatuteHandler {
	return &StatuteHandler{cfg: cfg, statutes: statutes, sessions: sessions}
}

// AddStatuteRequest is the payload for adding a statute entry
type AddStatuteRequest struct {
	CodeID         string `json:"code_id"`
	Title          string `json:"title"`
	Classification string `json:"classification"`
	Description    string `json:"description"`
}

// AddStatute inserts a statute entry into the directory
func (h *StatuteHandler) AddStatute(c echo.Context) error {
	var req AddStatuteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if strings.TrimSpace(req.CodeID) == "" || strings.TrimSpace(req.Title) == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Code and title are required")
	}

	statute, err := h.statutes.Add(req.CodeID, req.Title, req.Classification, req.Description)
	if err != nil {
		return fail(c, err)
	}

	return notice(c, http.StatusCreated,
		fmt.Sprintf("%s Statute %s added.", services.PrefixOK, statute.CodeID))
}

// SearchStatutes matches the query against statute codes and titles.
// Zero matches is a not-found notice, one match renders as a detail view,
// several render as a paginated directory reporting the total count.
func (h *StatuteHandler) SearchStatutes(c echo.Context) error {
	query := strings.TrimSpace(c.QueryParam("q"))
	if query == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Query is required")
	}

	matches, err := h.statutes.Search(query)
	if err != nil {
		return fail(c, err)
	}

	switch len(matches) {
	case 0:
		return notice(c, http.StatusNotFound,
			fmt.Sprintf("%s No statutes matching %q.", services.PrefixNotFound, query))
	case 1:
		return c.JSON(http.StatusOK, statuteDetail(matches[0]))
	default:
		view := services.NewPaginator(
			fmt.Sprintf("Statute Directory (%d results)", len(matches)),
			services.ColorBlue, matches, h.cfg.DirectoryPageSize,
			func(s models.Statute) services.Field {
				return services.Field{
					Name:  fmt.Sprintf("%s - %s", s.CodeID, services.Clean(s.Title)),
					Value: fmt.Sprintf("Class: %s", services.Clean(s.Classification)),
				}
			})
		return c.JSON(http.StatusOK, DirectoryResponse{
			Token: h.sessions.Open(view),
			Page:  view.Render(),
		})
	}
}

func statuteDetail(s models.Statute) services.Render {
	return services.Render{
		Title: fmt.Sprintf("📖 Statute: %s", s.CodeID),
		Color: services.ColorBlue,
		Fields: []services.Field{
			{Name: "Title", Value: services.Clean(s.Title), Inline: true},
			{Name: "Classification", Value: services.Clean(s.Classification), Inline: true},
			{Name: "Description", Value: services.Clean(s.Description)},
		},
	}
}
