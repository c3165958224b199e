package testutils

import (
	"time"

	"hr-payroll-backend/internal/database/models"

	"github.com/google/uuid"
)

// EmployeeFactory provides methods to create test Employee data
type EmployeeFactory struct{}

// NewEmployeeFactory creates a new EmployeeFactory
func NewEmployeeFactory() *EmployeeFactory {
	return &EmployeeFactory{}
}

// Create creates a test Employee with default values
func (f *EmployeeFactory) Create() *models.Employee {
	id := uuid.New()
	// Unique natural key derived from the UUID to avoid conflicts
	employeeID := "E" + id.String()[:6]

	return &models.Employee{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:       "Ada",
		HourlyRate: 20,
		Code:       employeeID,
	}
}

// WithEmployeeID sets a custom natural key for the employee
func (f *EmployeeFactory) WithEmployeeID(employeeID string) *models.Employee {
	employee := f.Create()
	employee.Code = employeeID
	return employee
}

// WithRate sets a custom hourly rate for the employee
func (f *EmployeeFactory) WithRate(rate float64) *models.Employee {
	employee := f.Create()
	employee.HourlyRate = rate
	return employee
}

// TeamFactory provides methods to create test Team data
type TeamFactory struct{}

// NewTeamFactory creates a new TeamFactory
func NewTeamFactory() *TeamFactory {
	return &TeamFactory{}
}

// Create creates a test Team with a unique name
func (f *TeamFactory) Create() *models.Team {
	id := uuid.New()
	return &models.Team{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name: "team-" + id.String()[:8],
	}
}

// WithName sets a custom name for the team
func (f *TeamFactory) WithName(name string) *models.Team {
	team := f.Create()
	team.Name = name
	return team
}

// AssignmentFactory provides methods to create test Assignment data
type AssignmentFactory struct{}

// NewAssignmentFactory creates a new AssignmentFactory
func NewAssignmentFactory() *AssignmentFactory {
	return &AssignmentFactory{}
}

// Create creates a test EMPLOYEE assignment with the default weekly hours
func (f *AssignmentFactory) Create(employeeID, teamID uuid.UUID) *models.Assignment {
	return &models.Assignment{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		EmployeeID:  employeeID,
		TeamID:      teamID,
		Role:        models.RoleEmployee,
		WeeklyHours: models.DefaultWeeklyHours,
	}
}

// Leader creates a test LEADER assignment
func (f *AssignmentFactory) Leader(employeeID, teamID uuid.UUID) *models.Assignment {
	assignment := f.Create(employeeID, teamID)
	assignment.Role = models.RoleLeader
	return assignment
}

// WithHours creates a test EMPLOYEE assignment with custom weekly hours
func (f *AssignmentFactory) WithHours(employeeID, teamID uuid.UUID, hours int) *models.Assignment {
	assignment := f.Create(employeeID, teamID)
	assignment.WeeklyHours = hours
	return assignment
}

// FactorySet provides access to all factories
type FactorySet struct {
	Employee   *EmployeeFactory
	Team       *TeamFactory
	Assignment *AssignmentFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Employee:   NewEmployeeFactory(),
		Team:       NewTeamFactory(),
		Assignment: NewAssignmentFactory(),
	}
}
