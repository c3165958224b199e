package service

import (
	"fmt"

	apperrors "hr-payroll-backend/internal/errors"
	"hr-payroll-backend/internal/metrics"
	"hr-payroll-backend/internal/repository"
)

// FinancialsService answers payroll queries over stored assignments
type FinancialsService struct {
	store   repository.StoreInterface
	payroll *PayrollAggregator
}

// NewFinancialsService creates a new financials service
func NewFinancialsService(store repository.StoreInterface, payroll *PayrollAggregator) *FinancialsService {
	return &FinancialsService{
		store:   store,
		payroll: payroll,
	}
}

// AssignmentPayResponse is the weekly pay of one employee for one team
type AssignmentPayResponse struct {
	EmployeeID  string `json:"employee_id"`
	Team        string `json:"team"`
	Role        string `json:"employee_type"`
	WeeklyHours int    `json:"work_arr"`
	Pay         Amount `json:"pay" swaggertype:"number"`
	Message     string `json:"message"`
}

// EmployeePayResponse is the weekly pay of one employee across all teams
type EmployeePayResponse struct {
	EmployeeID  string `json:"employee_id"`
	EmployeePay Amount `json:"employee_pay" swaggertype:"number"`
	LeaderPay   Amount `json:"leader_pay" swaggertype:"number"`
	TotalPay    Amount `json:"total_pay" swaggertype:"number"`
	Message     string `json:"message"`
}

// TeamCompensationResponse is the weekly compensation of a team
type TeamCompensationResponse struct {
	Team         string               `json:"team"`
	Assignments  []AssignmentResponse `json:"assignments"`
	Compensation Amount               `json:"compensation" swaggertype:"number"`
}

// CompanyCompensationResponse is the weekly compensation of the whole company
type CompanyCompensationResponse struct {
	TotalCompensation Amount `json:"total_compensation" swaggertype:"number"`
}

// AssignmentPay returns the pay of employeeID for its work in team
func (s *FinancialsService) AssignmentPay(employeeID, team string) (resp *AssignmentPayResponse, err error) {
	defer func() { metrics.ObservePayroll("assignment", err) }()

	lookup := NewLookup(s.store)
	employee, err := lookup.ResolveEmployee(employeeID)
	if err != nil {
		return nil, err
	}
	t, err := lookup.ResolveTeam(team)
	if err != nil {
		return nil, err
	}
	assignment, err := getAssignment(s.store, employee, t)
	if err != nil {
		return nil, err
	}

	pay := s.payroll.AssignmentPay(employee.HourlyRate, assignment.WeeklyHours, assignment.Role)
	return &AssignmentPayResponse{
		EmployeeID:  employee.Code,
		Team:        t.Name,
		Role:        string(assignment.Role),
		WeeklyHours: assignment.WeeklyHours,
		Pay:         NewAmount(pay),
		Message:     fmt.Sprintf("%s paid %s for work in team %s", employee.DisplayName(), pay, t.Name),
	}, nil
}

// EmployeePay returns the pay of employeeID split by role
func (s *FinancialsService) EmployeePay(employeeID string) (resp *EmployeePayResponse, err error) {
	defer func() { metrics.ObservePayroll("employee", err) }()

	employee, err := NewLookup(s.store).ResolveEmployee(employeeID)
	if err != nil {
		return nil, err
	}
	assignments, err := s.store.Assignments().GetByEmployeeID(employee.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get assignments: %w", err)
	}
	if len(assignments) == 0 {
		return nil, apperrors.NewNotFoundError("assignment", "for employee "+employee.Code)
	}

	pay := s.payroll.EmployeePay(employee.HourlyRate, assignments)
	return &EmployeePayResponse{
		EmployeeID:  employee.Code,
		EmployeePay: NewAmount(pay.Employee),
		LeaderPay:   NewAmount(pay.Leader),
		TotalPay:    NewAmount(pay.Total),
		Message: fmt.Sprintf("Employee %s pay is %s as employee, %s as leader, total %s",
			employee.DisplayName(), pay.Employee, pay.Leader, pay.Total),
	}, nil
}

// TeamCompensation returns the assignments of team and their total compensation
func (s *FinancialsService) TeamCompensation(team string) (resp *TeamCompensationResponse, err error) {
	defer func() { metrics.ObservePayroll("team", err) }()

	lookup := NewLookup(s.store)
	t, err := lookup.ResolveTeam(team)
	if err != nil {
		return nil, err
	}
	assignments, err := s.store.Assignments().GetByTeamID(t.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get assignments: %w", err)
	}
	if len(assignments) == 0 {
		return nil, apperrors.NewNotFoundError("assignment", "for team "+t.Name)
	}

	rendered, err := lookup.RenderAssignments(assignments)
	if err != nil {
		return nil, err
	}
	return &TeamCompensationResponse{
		Team:         t.Name,
		Assignments:  rendered,
		Compensation: NewAmount(s.payroll.TeamCompensation(assignments)),
	}, nil
}

// CompanyCompensation returns the compensation of every assignment in the company
func (s *FinancialsService) CompanyCompensation() (resp *CompanyCompensationResponse, err error) {
	defer func() { metrics.ObservePayroll("company", err) }()

	assignments, err := s.store.Assignments().GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to get assignments: %w", err)
	}
	return &CompanyCompensationResponse{
		TotalCompensation: NewAmount(s.payroll.CompanyCompensation(assignments)),
	}, nil
}

