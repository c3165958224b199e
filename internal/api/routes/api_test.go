//go:build integration
// +build integration

package routes

import (
	"fmt"
	"net/http"
	"testing"

	"hr-payroll-backend/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
)

// APITestSuite drives the full stack over HTTP against Postgres
type APITestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	http          *testutils.HTTPTestSuite
}

func (suite *APITestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	gin.SetMode(gin.TestMode)
	router, err := SetupRoutes(suite.baseTestSuite.DB, suite.baseTestSuite.Config)
	suite.Require().NoError(err)
	suite.http = &testutils.HTTPTestSuite{Router: router}
}

func (suite *APITestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

func (suite *APITestSuite) SetupTest() {
	suite.baseTestSuite.CleanTestDB()
	suite.seedRoster()
}

func (suite *APITestSuite) post(url string, body map[string]interface{}) {
	recorder := suite.http.MakeRequest(http.MethodPost, url, body)
	suite.Require().Equal(http.StatusCreated, recorder.Code, recorder.Body.String())
}

// seedRoster creates two employees sharing two teams, each leading one
func (suite *APITestSuite) seedRoster() {
	suite.post("/api/v1/employees", map[string]interface{}{"name": "George", "hourly_rate": 12, "employee_id": "A123"})
	suite.post("/api/v1/employees", map[string]interface{}{"name": "Maria", "hourly_rate": 13, "employee_id": "B123"})
	suite.post("/api/v1/teams", map[string]interface{}{"name": "Team1"})
	suite.post("/api/v1/teams", map[string]interface{}{"name": "Team2"})

	for _, a := range []struct {
		employee, team, role string
		hours                int
	}{
		{"A123", "Team1", "LEADER", 24},
		{"A123", "Team2", "EMPLOYEE", 16},
		{"B123", "Team1", "EMPLOYEE", 18},
		{"B123", "Team2", "LEADER", 30},
	} {
		suite.post("/api/v1/team-employee-relations", map[string]interface{}{
			"employee": a.employee, "team": a.team, "employee_type": a.role, "work_arr": a.hours,
		})
	}
}

func (suite *APITestSuite) getJSON(url string, target interface{}) {
	recorder := suite.http.MakeRequest(http.MethodGet, url, nil)
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, target)
}

func (suite *APITestSuite) TestFinancials() {
	var single map[string]interface{}
	suite.getJSON("/api/v1/financials?employee_id=A123&team=Team1", &single)
	suite.Equal(316.8, single["pay"])

	var employee map[string]interface{}
	suite.getJSON("/api/v1/financials?employee_id=A123", &employee)
	suite.Equal(192.0, employee["employee_pay"])
	suite.Equal(316.8, employee["leader_pay"])
	suite.Equal(508.8, employee["total_pay"])

	var team map[string]interface{}
	suite.getJSON("/api/v1/financials?team=Team1", &team)
	suite.Equal(550.8, team["compensation"])
	suite.Len(team["assignments"], 2)

	var company map[string]interface{}
	suite.getJSON("/api/v1/financials", &company)
	suite.Equal(1171.8, company["total_compensation"])
}

func (suite *APITestSuite) TestInvariants() {
	suite.post("/api/v1/employees", map[string]interface{}{"name": "Ivan", "hourly_rate": 10, "employee_id": "C123"})
	suite.post("/api/v1/teams", map[string]interface{}{"name": "Team3"})

	suite.Run("second leader", func() {
		recorder := suite.http.MakeRequest(http.MethodPost, "/api/v1/team-employee-relations", map[string]interface{}{
			"employee": "C123", "team": "Team1", "employee_type": "LEADER", "work_arr": 1,
		})
		testutils.AssertErrorResponse(suite.T(), recorder, http.StatusConflict, "already has a leader George A123")
	})

	suite.Run("duplicate pair", func() {
		recorder := suite.http.MakeRequest(http.MethodPost, "/api/v1/team-employee-relations", map[string]interface{}{
			"employee": "A123", "team": "Team1",
		})
		testutils.AssertErrorResponse(suite.T(), recorder, http.StatusConflict, "assignment already exists")
	})

	suite.Run("hour cap", func() {
		recorder := suite.http.MakeRequest(http.MethodPost, "/api/v1/team-employee-relations", map[string]interface{}{
			"employee": "A123", "team": "Team3", "work_arr": 120,
		})
		testutils.AssertErrorResponse(suite.T(), recorder, http.StatusUnprocessableEntity, "exceeding by 112")

		var assignments []map[string]interface{}
		suite.getJSON("/api/v1/team-employee-relations?employee_id=A123", &assignments)
		suite.Len(assignments, 2)
	})

	suite.Run("hour cap on update", func() {
		recorder := suite.http.MakeRequest(http.MethodPut, "/api/v1/team-employee-relations", map[string]interface{}{
			"employee_pk": "B123", "team_pk": "Team1", "work_arr": 19,
		})
		testutils.AssertErrorResponse(suite.T(), recorder, http.StatusUnprocessableEntity, "exceeding by 1")
	})
}

func (suite *APITestSuite) TestReKeyAndCascade() {
	suite.post("/api/v1/teams", map[string]interface{}{"name": "Team3"})

	recorder := suite.http.MakeRequest(http.MethodPut, "/api/v1/team-employee-relations", map[string]interface{}{
		"employee_pk": "A123", "team_pk": "Team2", "team_update": "Team3",
	})
	var moved map[string]interface{}
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &moved)
	suite.Equal("Team3", moved["team"])
	suite.Equal(16.0, moved["work_arr"])

	recorder = suite.http.MakeRequest(http.MethodDelete, "/api/v1/employees/A123", nil)
	suite.Equal(http.StatusNoContent, recorder.Code)

	var remaining []map[string]interface{}
	suite.getJSON("/api/v1/team-employee-relations", &remaining)
	suite.Len(remaining, 2)
	for _, a := range remaining {
		suite.Equal("B123", a["employee"])
	}

	recorder = suite.http.MakeRequest(http.MethodDelete, fmt.Sprintf("/api/v1/team-employee-relations?employee_pk=%s&team_pk=%s", "B123", "Team2"), nil)
	suite.Equal(http.StatusNoContent, recorder.Code)

	var company map[string]interface{}
	suite.getJSON("/api/v1/financials", &company)
	suite.Equal(234.0, company["total_compensation"])
}

func TestAPITestSuite(t *testing.T) {
	suite.Run(t, new(APITestSuite))
}
