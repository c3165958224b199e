package service

import (
	"fmt"

	"hr-payroll-backend/internal/config"
	"hr-payroll-backend/internal/repository"
)

// Services bundles the service layer built over one store
type Services struct {
	Employees   EmployeeServiceInterface
	Teams       TeamServiceInterface
	Assignments AssignmentServiceInterface
	Financials  FinancialsServiceInterface
}

// NewServices builds the service layer over store with the payroll rules from cfg
func NewServices(store repository.StoreInterface, cfg *config.Config) (*Services, error) {
	payroll, err := NewPayrollAggregator(cfg.LeaderPremium, cfg.PayrollAggregation)
	if err != nil {
		return nil, fmt.Errorf("payroll aggregator: %w", err)
	}

	validator := NewValidator()
	rules := NewAssignmentValidator(cfg.MaxWeeklyHours)

	return &Services{
		Employees:   NewEmployeeService(store, validator),
		Teams:       NewTeamService(store, validator),
		Assignments: NewAssignmentService(store, rules, validator),
		Financials:  NewFinancialsService(store, payroll),
	}, nil
}
