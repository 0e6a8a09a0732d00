package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"case_desk_app_go/config"
	"case_desk_app_go/middleware"
	"case_desk_app_go/models"
	"case_desk_app_go/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	// Unique shared-cache memory database so every pooled connection sees
	// the same schema
	dsn := "file:mem_" + uuid.New().String() + "?mode=memory&cache=shared"
	database, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(&models.Case{}, &models.CaseJacket{}, &models.Statute{}))
	return database
}

type testEnv struct {
	e     *echo.Echo
	cases *services.CaseService
}

// newTestEnv wires the full command surface the way cmd/server does
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	cfg := &config.Config{
		DepartmentCodes:   []string{"CID", "DTF"},
		UnitRoles:         []string{"detective"},
		AdminRoles:        []string{"command"},
		DirectoryPageSize: 5,
		DirectoryTimeout:  time.Minute,
		EnableStatutes:    true,
	}

	database := setupTestDB(t)
	caseService := services.NewCaseService(database)
	statuteService := services.NewStatuteService(database)
	sessions := services.NewDirectorySessions(cfg.DirectoryTimeout)
	gate := middleware.NewGate(cfg.UnitRoles, cfg.AdminRoles)

	caseHandler := NewCaseHandler(cfg, caseService, sessions)
	statuteHandler := NewStatuteHandler(cfg, statuteService, sessions)
	directoryHandler := NewDirectoryHandler(sessions)

	e := echo.New()
	e.Use(middleware.ResolveCaller())

	unit := e.Group("/api", middleware.RequireCapability(gate, middleware.CapabilityUnit))
	unit.POST("/cases", caseHandler.FileCase)
	unit.PATCH("/cases/:number", caseHandler.EditCase)
	unit.GET("/cases", caseHandler.Directory)
	unit.GET("/cases/:number", caseHandler.Lookup)
	unit.POST("/cases/:number/jackets", caseHandler.AttachJacket)
	unit.POST("/cases/:number/evidence", caseHandler.AddEvidence)
	unit.POST("/cases/import", caseHandler.ImportCase)
	unit.POST("/directory/:token/previous", directoryHandler.Previous)
	unit.POST("/directory/:token/next", directoryHandler.Next)
	unit.POST("/statutes", statuteHandler.AddStatute)
	unit.GET("/statutes/search", statuteHandler.SearchStatutes)

	admin := e.Group("/api", middleware.RequireCapability(gate, middleware.CapabilityAdmin))
	admin.DELETE("/cases/:number", caseHandler.DeleteCase)

	return &testEnv{e: e, cases: caseService}
}

// request performs a JSON request against the test server as the named
// caller
func (env *testEnv) request(t *testing.T, method, path string, body interface{}, roles string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	req.Header.Set(middleware.HeaderCallerName, "Det. Mills")
	req.Header.Set(middleware.HeaderCallerRoles, roles)

	rec := httptest.NewRecorder()
	env.e.ServeHTTP(rec, req)
	return rec
}

func decodeRender(t *testing.T, rec *httptest.ResponseRecorder) services.Render {
	t.Helper()
	var render services.Render
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &render))
	return render
}

func decodeDirectory(t *testing.T, rec *httptest.ResponseRecorder) DirectoryResponse {
	t.Helper()
	var resp DirectoryResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}
