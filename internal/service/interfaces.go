package service

import (
	"context"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// EmployeeServiceInterface defines the interface for employee service
type EmployeeServiceInterface interface {
	CreateEmployee(ctx context.Context, req *CreateEmployeeRequest) (*EmployeeResponse, error)
	GetEmployee(employeeID string) (*EmployeeResponse, error)
	ListEmployees() ([]EmployeeResponse, error)
	UpdateEmployee(ctx context.Context, employeeID string, req *UpdateEmployeeRequest) (*EmployeeResponse, error)
	DeleteEmployee(ctx context.Context, employeeID string) error
}

// TeamServiceInterface defines the interface for team service
type TeamServiceInterface interface {
	CreateTeam(ctx context.Context, req *TeamRequest) (*TeamResponse, error)
	GetTeam(name string) (*TeamResponse, error)
	ListTeams() ([]TeamResponse, error)
	RenameTeam(ctx context.Context, name string, req *TeamRequest) (*TeamResponse, error)
	DeleteTeam(ctx context.Context, name string) error
}

// AssignmentServiceInterface defines the interface for employee-team assignment service
type AssignmentServiceInterface interface {
	CreateAssignment(ctx context.Context, req *CreateAssignmentRequest) (*AssignmentResponse, error)
	ListAssignments(employeeID *string) ([]AssignmentResponse, error)
	UpdateAssignment(ctx context.Context, req *UpdateAssignmentRequest) (*AssignmentResponse, error)
	DeleteAssignment(ctx context.Context, req *AssignmentKeyRequest) error
}

// FinancialsServiceInterface defines the interface for payroll queries
type FinancialsServiceInterface interface {
	AssignmentPay(employeeID, team string) (*AssignmentPayResponse, error)
	EmployeePay(employeeID string) (*EmployeePayResponse, error)
	TeamCompensation(team string) (*TeamCompensationResponse, error)
	CompanyCompensation() (*CompanyCompensationResponse, error)
}
