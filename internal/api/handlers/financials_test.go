package handlers_test

import (
	"net/http"
	"testing"

	"hr-payroll-backend/internal/api/handlers"
	apperrors "hr-payroll-backend/internal/errors"
	"hr-payroll-backend/internal/mocks"
	"hr-payroll-backend/internal/service"
	"hr-payroll-backend/internal/testutils"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func setupFinancials(t *testing.T) (*mocks.MockFinancialsServiceInterface, *testutils.HTTPTestSuite) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockFinancialsServiceInterface(ctrl)

	httpSuite := testutils.SetupHTTPTest()
	httpSuite.Router.GET("/api/v1/financials", handlers.NewFinancialsHandler(mockService).GetFinancials)

	return mockService, httpSuite
}

func TestGetFinancials(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		mockFunc   func(m *mocks.MockFinancialsServiceInterface)
		wantStatus int
		wantBody   string
	}{
		{
			name:  "single assignment",
			query: "?employee_id=A123&team=Team1",
			mockFunc: func(m *mocks.MockFinancialsServiceInterface) {
				m.EXPECT().AssignmentPay("A123", "Team1").Return(&service.AssignmentPayResponse{
					EmployeeID:  "A123",
					Team:        "Team1",
					Role:        "LEADER",
					WeeklyHours: 24,
					Pay:         service.NewAmount(decimal.RequireFromString("316.8")),
					Message:     "A123 paid 316.8 for work in team Team1",
				}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"employee_id":"A123","team":"Team1","employee_type":"LEADER","work_arr":24,"pay":316.8,"message":"A123 paid 316.8 for work in team Team1"}`,
		},
		{
			name:  "employee",
			query: "?employee_id=A123",
			mockFunc: func(m *mocks.MockFinancialsServiceInterface) {
				m.EXPECT().EmployeePay("A123").Return(&service.EmployeePayResponse{
					EmployeeID:  "A123",
					EmployeePay: service.NewAmount(decimal.RequireFromString("192")),
					LeaderPay:   service.NewAmount(decimal.RequireFromString("316.8")),
					TotalPay:    service.NewAmount(decimal.RequireFromString("508.8")),
					Message:     "A123 paid 508.8",
				}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"employee_id":"A123","employee_pay":192,"leader_pay":316.8,"total_pay":508.8,"message":"A123 paid 508.8"}`,
		},
		{
			name:  "team",
			query: "?team=Team1",
			mockFunc: func(m *mocks.MockFinancialsServiceInterface) {
				m.EXPECT().TeamCompensation("Team1").Return(&service.TeamCompensationResponse{
					Team:         "Team1",
					Assignments:  []service.AssignmentResponse{},
					Compensation: service.NewAmount(decimal.RequireFromString("550.8")),
				}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"team":"Team1","assignments":[],"compensation":550.8}`,
		},
		{
			name: "company",
			mockFunc: func(m *mocks.MockFinancialsServiceInterface) {
				m.EXPECT().CompanyCompensation().Return(&service.CompanyCompensationResponse{
					TotalCompensation: service.NewAmount(decimal.RequireFromString("1171.8")),
				}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"total_compensation":1171.8}`,
		},
		{
			name:  "employee without assignments",
			query: "?employee_id=C123",
			mockFunc: func(m *mocks.MockFinancialsServiceInterface) {
				m.EXPECT().EmployeePay("C123").Return(nil, apperrors.NewNotFoundError("assignment", "for employee C123"))
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `{"error":"assignment for employee C123 not found"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService, httpSuite := setupFinancials(t)
			tt.mockFunc(mockService)

			recorder := httpSuite.MakeRequest(http.MethodGet, "/api/v1/financials"+tt.query, nil)

			assert.Equal(t, tt.wantStatus, recorder.Code)
			assert.JSONEq(t, tt.wantBody, recorder.Body.String())
		})
	}
}
