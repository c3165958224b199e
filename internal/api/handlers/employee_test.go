package handlers_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"hr-payroll-backend/internal/api/handlers"
	apperrors "hr-payroll-backend/internal/errors"
	"hr-payroll-backend/internal/mocks"
	"hr-payroll-backend/internal/service"
	"hr-payroll-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// EmployeeHandlerTestSuite defines the test suite for EmployeeHandler
type EmployeeHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockEmployeeServiceInterface
	handler     *handlers.EmployeeHandler
	httpSuite   *testutils.HTTPTestSuite
}

func (suite *EmployeeHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockEmployeeServiceInterface(suite.ctrl)
	suite.handler = handlers.NewEmployeeHandler(suite.mockService)
	suite.httpSuite = testutils.SetupHTTPTest()

	employees := suite.httpSuite.Router.Group("/api/v1/employees")
	{
		employees.GET("", suite.handler.ListEmployees)
		employees.POST("", suite.handler.CreateEmployee)
		employees.PUT("/:employee_id", suite.handler.UpdateEmployee)
		employees.DELETE("/:employee_id", suite.handler.DeleteEmployee)
	}
}

func (suite *EmployeeHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *EmployeeHandlerTestSuite) TestListEmployees() {
	suite.mockService.EXPECT().
		ListEmployees().
		Return([]service.EmployeeResponse{
			{Name: "George", HourlyRate: 12, EmployeeID: "A123"},
			{Name: "Maria", HourlyRate: 13, EmployeeID: "B123"},
		}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/employees", nil)

	var response []service.EmployeeResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	suite.Len(response, 2)
	suite.Equal("B123", response[1].EmployeeID)
}

func (suite *EmployeeHandlerTestSuite) TestListEmployeesByEmployeeID() {
	suite.T().Run("Found", func(t *testing.T) {
		suite.mockService.EXPECT().
			GetEmployee("A123").
			Return(&service.EmployeeResponse{Name: "George", HourlyRate: 12, EmployeeID: "A123"}, nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/employees?employee_id=A123", nil)

		var response service.EmployeeResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
		assert.Equal(t, "George", response.Name)
	})

	suite.T().Run("Unknown", func(t *testing.T) {
		suite.mockService.EXPECT().
			GetEmployee("Z999").
			Return(nil, apperrors.NewNotFoundError("employee", "Z999"))

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/employees?employee_id=Z999", nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, "employee Z999 not found")
	})
}

func (suite *EmployeeHandlerTestSuite) TestCreateEmployee() {
	suite.T().Run("Success", func(t *testing.T) {
		suite.mockService.EXPECT().
			CreateEmployee(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req *service.CreateEmployeeRequest) (*service.EmployeeResponse, error) {
				require.NotNil(t, req.Name)
				require.NotNil(t, req.HourlyRate)
				require.NotNil(t, req.EmployeeID)
				assert.Equal(t, 12.5, *req.HourlyRate)
				return &service.EmployeeResponse{Name: *req.Name, HourlyRate: *req.HourlyRate, EmployeeID: *req.EmployeeID}, nil
			})

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/employees", map[string]interface{}{
			"name":        "George",
			"hourly_rate": 12.5,
			"employee_id": "A123",
		})

		var response service.EmployeeResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusCreated, &response)
		assert.Equal(t, "A123", response.EmployeeID)
	})

	suite.T().Run("Wrong Type", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRawRequest(http.MethodPost, "/api/v1/employees",
			`{"name": "George", "hourly_rate": "twelve", "employee_id": "A123"}`)

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "hourly_rate")
	})

	suite.T().Run("Malformed JSON", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRawRequest(http.MethodPost, "/api/v1/employees", `{"name":`)

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "malformed JSON body")
	})

	suite.T().Run("Empty Body", func(t *testing.T) {
		suite.mockService.EXPECT().
			CreateEmployee(gomock.Any(), &service.CreateEmployeeRequest{}).
			Return(nil, apperrors.NewMissingFieldError("name"))

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/employees", nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "name")
	})

	suite.T().Run("Duplicate", func(t *testing.T) {
		suite.mockService.EXPECT().
			CreateEmployee(gomock.Any(), gomock.Any()).
			Return(nil, apperrors.ErrEmployeeExists)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/employees", map[string]interface{}{
			"name": "George", "hourly_rate": 12, "employee_id": "A123",
		})

		testutils.AssertErrorResponse(t, recorder, http.StatusConflict, "employee already exists")
	})

	suite.T().Run("Internal Error", func(t *testing.T) {
		suite.mockService.EXPECT().
			CreateEmployee(gomock.Any(), gomock.Any()).
			Return(nil, errors.New("connection reset"))

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/employees", map[string]interface{}{
			"name": "George", "hourly_rate": 12, "employee_id": "A123",
		})

		testutils.AssertErrorResponse(t, recorder, http.StatusInternalServerError, "internal server error")
		assert.NotContains(t, recorder.Body.String(), "connection reset")
	})
}

func (suite *EmployeeHandlerTestSuite) TestUpdateEmployee() {
	suite.T().Run("Partial", func(t *testing.T) {
		suite.mockService.EXPECT().
			UpdateEmployee(gomock.Any(), "A123", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, req *service.UpdateEmployeeRequest) (*service.EmployeeResponse, error) {
				assert.Nil(t, req.Name)
				assert.Nil(t, req.EmployeeID)
				require.NotNil(t, req.HourlyRate)
				return &service.EmployeeResponse{Name: "George", HourlyRate: *req.HourlyRate, EmployeeID: "A123"}, nil
			})

		recorder := suite.httpSuite.MakeRawRequest(http.MethodPut, "/api/v1/employees/A123", `{"hourly_rate": 15, "name": null}`)

		var response service.EmployeeResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
		assert.Equal(t, 15.0, response.HourlyRate)
	})

	suite.T().Run("Key Taken", func(t *testing.T) {
		suite.mockService.EXPECT().
			UpdateEmployee(gomock.Any(), "A123", gomock.Any()).
			Return(nil, apperrors.ErrEmployeeExists)

		recorder := suite.httpSuite.MakeRequest(http.MethodPut, "/api/v1/employees/A123", map[string]interface{}{"employee_id": "B123"})

		testutils.AssertErrorResponse(t, recorder, http.StatusConflict, "employee_id")
	})

	suite.T().Run("Invalid Identifier Type", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRawRequest(http.MethodPut, "/api/v1/employees/A123", `{"employee_id": 123}`)

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "employee_id - must be a string")
	})
}

func (suite *EmployeeHandlerTestSuite) TestDeleteEmployee() {
	suite.T().Run("Success", func(t *testing.T) {
		suite.mockService.EXPECT().DeleteEmployee(gomock.Any(), "A123").Return(nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodDelete, "/api/v1/employees/A123", nil)

		assert.Equal(t, http.StatusNoContent, recorder.Code)
		assert.Empty(t, recorder.Body.String())
	})

	suite.T().Run("Unknown", func(t *testing.T) {
		suite.mockService.EXPECT().
			DeleteEmployee(gomock.Any(), "Z999").
			Return(apperrors.NewNotFoundError("employee", "Z999"))

		recorder := suite.httpSuite.MakeRequest(http.MethodDelete, "/api/v1/employees/Z999", nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, "not found")
	})
}

func TestEmployeeHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(EmployeeHandlerTestSuite))
}
