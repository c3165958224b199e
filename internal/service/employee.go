package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"hr-payroll-backend/internal/database/models"
	apperrors "hr-payroll-backend/internal/errors"
	"hr-payroll-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// EmployeeService handles business logic for employees
type EmployeeService struct {
	store     repository.StoreInterface
	validator *validator.Validate
}

// NewEmployeeService creates a new employee service
func NewEmployeeService(store repository.StoreInterface, validator *validator.Validate) *EmployeeService {
	return &EmployeeService{
		store:     store,
		validator: validator,
	}
}

// CreateEmployeeRequest represents the data needed to create an employee
type CreateEmployeeRequest struct {
	Name       *string  `json:"name" validate:"omitempty,min=1,max=20" example:"George"`
	HourlyRate *float64 `json:"hourly_rate" validate:"omitempty,gte=0" example:"12"`
	EmployeeID *string  `json:"employee_id" validate:"omitempty,min=1,max=10" example:"A123"`
}

// UpdateEmployeeRequest represents a partial employee update. Absent fields are left unchanged.
type UpdateEmployeeRequest struct {
	Name       *string  `json:"name" validate:"omitempty,min=1,max=20"`
	HourlyRate *float64 `json:"hourly_rate" validate:"omitempty,gte=0"`
	EmployeeID *string  `json:"employee_id" validate:"omitempty,min=1,max=10"`
}

// EmployeeResponse represents the response data for an employee
type EmployeeResponse struct {
	Name       string  `json:"name"`
	HourlyRate float64 `json:"hourly_rate"`
	EmployeeID string  `json:"employee_id"`
}

// CreateEmployee creates a new employee
func (s *EmployeeService) CreateEmployee(ctx context.Context, req *CreateEmployeeRequest) (resp *EmployeeResponse, err error) {
	start := time.Now()
	defer func() {
		recordWrite(ctx, "employee", "create", start, err, map[string]interface{}{"employee_id": stringOrEmpty(req.EmployeeID)})
	}()

	if err := required(req.Name, "name"); err != nil {
		return nil, err
	}
	if err := required(req.HourlyRate, "hourly_rate"); err != nil {
		return nil, err
	}
	if err := required(req.EmployeeID, "employee_id"); err != nil {
		return nil, err
	}
	if err := validate(s.validator, req); err != nil {
		return nil, err
	}

	employee := &models.Employee{
		Name:       *req.Name,
		HourlyRate: *req.HourlyRate,
		Code:       *req.EmployeeID,
	}

	err = s.store.Transaction(ctx, func(tx repository.StoreInterface) error {
		return tx.Employees().Create(employee)
	})
	if err != nil {
		if apperrors.IsAlreadyExists(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create employee: %w", err)
	}

	return s.convertToResponse(employee), nil
}

// GetEmployee retrieves an employee by employee_id
func (s *EmployeeService) GetEmployee(employeeID string) (*EmployeeResponse, error) {
	employee, err := NewLookup(s.store).ResolveEmployee(employeeID)
	if err != nil {
		return nil, err
	}
	return s.convertToResponse(employee), nil
}

// ListEmployees retrieves all employees
func (s *EmployeeService) ListEmployees() ([]EmployeeResponse, error) {
	employees, err := s.store.Employees().GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	responses := make([]EmployeeResponse, len(employees))
	for i := range employees {
		responses[i] = *s.convertToResponse(&employees[i])
	}
	return responses, nil
}

// UpdateEmployee applies a partial update to the employee identified by employeeID
func (s *EmployeeService) UpdateEmployee(ctx context.Context, employeeID string, req *UpdateEmployeeRequest) (resp *EmployeeResponse, err error) {
	start := time.Now()
	defer func() {
		recordWrite(ctx, "employee", "update", start, err, map[string]interface{}{"employee_id": employeeID})
	}()

	if err := validate(s.validator, req); err != nil {
		return nil, err
	}

	err = s.store.Transaction(ctx, func(tx repository.StoreInterface) error {
		employee, err := NewLockingLookup(tx).ResolveEmployee(employeeID)
		if err != nil {
			return err
		}

		if req.EmployeeID != nil && *req.EmployeeID != employee.Code {
			taken, err := tx.Employees().GetByEmployeeID(*req.EmployeeID)
			if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("failed to check employee_id: %w", err)
			}
			if taken != nil {
				return apperrors.ErrEmployeeExists
			}
			employee.Code = *req.EmployeeID
		}
		if req.Name != nil {
			employee.Name = *req.Name
		}
		if req.HourlyRate != nil {
			employee.HourlyRate = *req.HourlyRate
		}

		if err := tx.Employees().Update(employee); err != nil {
			return err
		}
		resp = s.convertToResponse(employee)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// DeleteEmployee deletes an employee and, by cascade, its assignments
func (s *EmployeeService) DeleteEmployee(ctx context.Context, employeeID string) (err error) {
	start := time.Now()
	defer func() {
		recordWrite(ctx, "employee", "delete", start, err, map[string]interface{}{"employee_id": employeeID})
	}()

	return s.store.Transaction(ctx, func(tx repository.StoreInterface) error {
		employee, err := NewLockingLookup(tx).ResolveEmployee(employeeID)
		if err != nil {
			return err
		}
		if err := tx.Employees().Delete(employee.ID); err != nil {
			return fmt.Errorf("failed to delete employee: %w", err)
		}
		return nil
	})
}

func (s *EmployeeService) convertToResponse(employee *models.Employee) *EmployeeResponse {
	return &EmployeeResponse{
		Name:       employee.Name,
		HourlyRate: employee.HourlyRate,
		EmployeeID: employee.Code,
	}
}

func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
