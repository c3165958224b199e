package repository

import (
	"context"

	"hr-payroll-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// EmployeeRepositoryInterface defines the interface for employee repository operations
type EmployeeRepositoryInterface interface {
	Create(employee *models.Employee) error
	GetByID(id uuid.UUID) (*models.Employee, error)
	GetByEmployeeID(employeeID string) (*models.Employee, error)
	GetByEmployeeIDForUpdate(employeeID string) (*models.Employee, error)
	GetAll() ([]models.Employee, error)
	Update(employee *models.Employee) error
	Delete(id uuid.UUID) error
}

// TeamRepositoryInterface defines the interface for team repository operations
type TeamRepositoryInterface interface {
	Create(team *models.Team) error
	GetByID(id uuid.UUID) (*models.Team, error)
	GetByName(name string) (*models.Team, error)
	GetByNameForUpdate(name string) (*models.Team, error)
	GetAll() ([]models.Team, error)
	Update(team *models.Team) error
	Delete(id uuid.UUID) error
}

// AssignmentRepositoryInterface defines the interface for employee-team assignment operations
type AssignmentRepositoryInterface interface {
	Create(assignment *models.Assignment) error
	GetByPair(employeeID, teamID uuid.UUID) (*models.Assignment, error)
	GetAll() ([]models.Assignment, error)
	GetByEmployeeID(employeeID uuid.UUID) ([]models.Assignment, error)
	GetByTeamID(teamID uuid.UUID) ([]models.Assignment, error)
	GetLeader(teamID uuid.UUID, excludeID *uuid.UUID) (*models.Assignment, error)
	SumWeeklyHours(employeeID uuid.UUID, excludeID *uuid.UUID) (int64, error)
	Update(assignment *models.Assignment) error
	Delete(id uuid.UUID) error
}

// StoreInterface groups the repositories and runs units of work atomically.
// Repositories returned from the store passed to fn share fn's transaction.
type StoreInterface interface {
	Employees() EmployeeRepositoryInterface
	Teams() TeamRepositoryInterface
	Assignments() AssignmentRepositoryInterface
	Transaction(ctx context.Context, fn func(tx StoreInterface) error) error
}
