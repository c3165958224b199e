package service

import (
	"errors"
	"fmt"
	"slices"

	"hr-payroll-backend/internal/database/models"
	apperrors "hr-payroll-backend/internal/errors"
	"hr-payroll-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Lookup translates between natural keys (employee_id, team name) and
// internal record references. Resolved keys are memoized, so a Lookup
// should live no longer than one request or transaction.
type Lookup struct {
	employees repository.EmployeeRepositoryInterface
	teams     repository.TeamRepositoryInterface
	forUpdate bool

	employeeKeys map[uuid.UUID]string
	teamKeys     map[uuid.UUID]string
}

// NewLookup creates a read-only lookup over store
func NewLookup(store repository.StoreInterface) *Lookup {
	return &Lookup{
		employees:    store.Employees(),
		teams:        store.Teams(),
		employeeKeys: make(map[uuid.UUID]string),
		teamKeys:     make(map[uuid.UUID]string),
	}
}

// NewLockingLookup creates a lookup whose resolutions lock the resolved rows.
// tx must be a transactional store.
func NewLockingLookup(tx repository.StoreInterface) *Lookup {
	l := NewLookup(tx)
	l.forUpdate = true
	return l
}

// ResolveEmployee returns the employee identified by employeeID
func (l *Lookup) ResolveEmployee(employeeID string) (*models.Employee, error) {
	var (
		employee *models.Employee
		err      error
	)
	if l.forUpdate {
		employee, err = l.employees.GetByEmployeeIDForUpdate(employeeID)
	} else {
		employee, err = l.employees.GetByEmployeeID(employeeID)
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("employee", employeeID)
		}
		return nil, fmt.Errorf("failed to resolve employee: %w", err)
	}

	l.employeeKeys[employee.ID] = employee.Code
	return employee, nil
}

// ResolveTeam returns the team identified by name
func (l *Lookup) ResolveTeam(name string) (*models.Team, error) {
	var (
		team *models.Team
		err  error
	)
	if l.forUpdate {
		team, err = l.teams.GetByNameForUpdate(name)
	} else {
		team, err = l.teams.GetByName(name)
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("team", name)
		}
		return nil, fmt.Errorf("failed to resolve team: %w", err)
	}

	l.teamKeys[team.ID] = team.Name
	return team, nil
}

// ResolveEmployees resolves every distinct key in ascending key order, so
// concurrent transactions lock rows in the same sequence
func (l *Lookup) ResolveEmployees(employeeIDs ...string) (map[string]*models.Employee, error) {
	keys := slices.Clone(employeeIDs)
	slices.Sort(keys)
	keys = slices.Compact(keys)

	resolved := make(map[string]*models.Employee, len(keys))
	for _, key := range keys {
		employee, err := l.ResolveEmployee(key)
		if err != nil {
			return nil, err
		}
		resolved[key] = employee
	}
	return resolved, nil
}

// ResolveTeams resolves every distinct team name in ascending order
func (l *Lookup) ResolveTeams(names ...string) (map[string]*models.Team, error) {
	keys := slices.Clone(names)
	slices.Sort(keys)
	keys = slices.Compact(keys)

	resolved := make(map[string]*models.Team, len(keys))
	for _, key := range keys {
		team, err := l.ResolveTeam(key)
		if err != nil {
			return nil, err
		}
		resolved[key] = team
	}
	return resolved, nil
}

// EmployeeKeyOf returns the employee_id of the employee with internal id
func (l *Lookup) EmployeeKeyOf(id uuid.UUID) (string, error) {
	if key, ok := l.employeeKeys[id]; ok {
		return key, nil
	}

	employee, err := l.employees.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", apperrors.NewNotFoundError("employee", id.String())
		}
		return "", fmt.Errorf("failed to get employee: %w", err)
	}

	l.employeeKeys[id] = employee.Code
	return employee.Code, nil
}

// TeamKeyOf returns the name of the team with internal id
func (l *Lookup) TeamKeyOf(id uuid.UUID) (string, error) {
	if key, ok := l.teamKeys[id]; ok {
		return key, nil
	}

	team, err := l.teams.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", apperrors.NewNotFoundError("team", id.String())
		}
		return "", fmt.Errorf("failed to get team: %w", err)
	}

	l.teamKeys[id] = team.Name
	return team.Name, nil
}

// RenderAssignment converts an assignment to its natural-key form. Preloaded
// associations are used when present.
func (l *Lookup) RenderAssignment(assignment *models.Assignment) (*AssignmentResponse, error) {
	if assignment.Employee.ID == assignment.EmployeeID && assignment.Employee.Code != "" {
		l.employeeKeys[assignment.EmployeeID] = assignment.Employee.Code
	}
	if assignment.Team.ID == assignment.TeamID && assignment.Team.Name != "" {
		l.teamKeys[assignment.TeamID] = assignment.Team.Name
	}

	employeeKey, err := l.EmployeeKeyOf(assignment.EmployeeID)
	if err != nil {
		return nil, err
	}
	teamKey, err := l.TeamKeyOf(assignment.TeamID)
	if err != nil {
		return nil, err
	}

	return &AssignmentResponse{
		EmployeeType: string(assignment.Role),
		WorkArr:      assignment.WeeklyHours,
		Employee:     employeeKey,
		Team:         teamKey,
	}, nil
}

// RenderAssignments converts a list of assignments, never returning nil
func (l *Lookup) RenderAssignments(assignments []models.Assignment) ([]AssignmentResponse, error) {
	rendered := make([]AssignmentResponse, 0, len(assignments))
	for i := range assignments {
		resp, err := l.RenderAssignment(&assignments[i])
		if err != nil {
			return nil, err
		}
		rendered = append(rendered, *resp)
	}
	return rendered, nil
}
