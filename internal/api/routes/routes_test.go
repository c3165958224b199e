package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"hr-payroll-backend/internal/config"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func testConfig() *config.Config {
	return &config.Config{
		AllowedOrigins:     []string{"http://localhost:3000"},
		MaxWeeklyHours:     48,
		LeaderPremium:      1.1,
		PayrollAggregation: config.AggregationPerTerm,
	}
}

func mockGorm(t *testing.T) *gorm.DB {
	t.Helper()

	mockDB, _, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: mockDB}), &gorm.Config{DisableAutomaticPing: true})
	require.NoError(t, err)
	return gdb
}

func TestSetupRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router, err := SetupRoutes(mockGorm(t), testConfig())
	require.NoError(t, err)

	t.Run("Metrics", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/metrics", nil))

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "go_goroutines")
	})

	t.Run("Unknown Route", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/nope", nil)
		req.Header.Set("X-Request-ID", "req-404")

		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
		assert.JSONEq(t, `{"error":"Endpoint not found","path":"/api/v1/nope","method":"GET","request_id":"req-404"}`, recorder.Body.String())
	})

	t.Run("Routes Registered", func(t *testing.T) {
		registered := map[string]bool{}
		for _, r := range router.Routes() {
			registered[r.Method+" "+r.Path] = true
		}
		for _, want := range []string{
			"GET /api/v1/employees",
			"POST /api/v1/employees",
			"PUT /api/v1/employees/:employee_id",
			"DELETE /api/v1/employees/:employee_id",
			"GET /api/v1/teams",
			"PUT /api/v1/teams/:name",
			"DELETE /api/v1/teams/:name",
			"GET /api/v1/team-employee-relations",
			"POST /api/v1/team-employee-relations",
			"PUT /api/v1/team-employee-relations",
			"DELETE /api/v1/team-employee-relations",
			"GET /api/v1/financials",
			"GET /health/ready",
			"GET /swagger/*any",
		} {
			assert.True(t, registered[want], want)
		}
	})
}

func TestSetupRoutesRejectsUnknownAggregation(t *testing.T) {
	cfg := testConfig()
	cfg.PayrollAggregation = "average"

	_, err := SetupRoutes(mockGorm(t), cfg)

	assert.ErrorContains(t, err, "payroll aggregator")
}
