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

// AssignmentService handles employee-team assignments. Every write resolves,
// validates and persists inside one transaction holding row locks on the
// employees and teams involved.
type AssignmentService struct {
	store     repository.StoreInterface
	rules     *AssignmentValidator
	validator *validator.Validate
}

// NewAssignmentService creates a new assignment service
func NewAssignmentService(store repository.StoreInterface, rules *AssignmentValidator, validator *validator.Validate) *AssignmentService {
	return &AssignmentService{
		store:     store,
		rules:     rules,
		validator: validator,
	}
}

// CreateAssignmentRequest represents the data needed to assign an employee to a team
type CreateAssignmentRequest struct {
	Employee     *string `json:"employee" example:"A123"`
	Team         *string `json:"team" example:"Team1"`
	EmployeeType *string `json:"employee_type" validate:"omitempty,oneof=EMPLOYEE LEADER" example:"EMPLOYEE" default:"EMPLOYEE"`
	WorkArr      *int    `json:"work_arr" validate:"omitempty,gte=0" example:"40" default:"40"`
}

// UpdateAssignmentRequest identifies an assignment by employee_pk and team_pk
// and carries the fields to change. employee_update and team_update move the
// assignment to another employee or team.
type UpdateAssignmentRequest struct {
	EmployeePK     *string `json:"employee_pk" example:"A123"`
	TeamPK         *string `json:"team_pk" example:"Team1"`
	WorkArr        *int    `json:"work_arr" validate:"omitempty,gte=0"`
	EmployeeType   *string `json:"employee_type" validate:"omitempty,oneof=EMPLOYEE LEADER"`
	EmployeeUpdate *string `json:"employee_update" validate:"omitempty,min=1,max=10"`
	TeamUpdate     *string `json:"team_update" validate:"omitempty,min=1,max=20"`
}

// AssignmentKeyRequest identifies an assignment by its natural keys
type AssignmentKeyRequest struct {
	EmployeePK *string `json:"employee_pk" form:"employee_pk" example:"A123"`
	TeamPK     *string `json:"team_pk" form:"team_pk" example:"Team1"`
}

// AssignmentResponse renders an assignment with natural keys
type AssignmentResponse struct {
	EmployeeType string `json:"employee_type"`
	WorkArr      int    `json:"work_arr"`
	Employee     string `json:"employee"`
	Team         string `json:"team"`
}

// CreateAssignment assigns an employee to a team
func (s *AssignmentService) CreateAssignment(ctx context.Context, req *CreateAssignmentRequest) (resp *AssignmentResponse, err error) {
	start := time.Now()
	defer func() {
		recordWrite(ctx, "assignment", "create", start, err, map[string]interface{}{
			"employee_id": stringOrEmpty(req.Employee),
			"team":        stringOrEmpty(req.Team),
		})
	}()

	if err := required(req.Employee, "employee"); err != nil {
		return nil, err
	}
	if err := required(req.Team, "team"); err != nil {
		return nil, err
	}
	if err := validate(s.validator, req); err != nil {
		return nil, err
	}

	role := models.RoleEmployee
	if req.EmployeeType != nil {
		role = models.Role(*req.EmployeeType)
	}
	hours := models.DefaultWeeklyHours
	if req.WorkArr != nil {
		hours = *req.WorkArr
	}

	err = s.store.Transaction(ctx, func(tx repository.StoreInterface) error {
		lookup := NewLockingLookup(tx)
		employee, err := lookup.ResolveEmployee(*req.Employee)
		if err != nil {
			return err
		}
		team, err := lookup.ResolveTeam(*req.Team)
		if err != nil {
			return err
		}

		if err := s.rules.ValidateCreate(tx.Assignments(), employee, team, role, hours); err != nil {
			return err
		}

		assignment := &models.Assignment{
			EmployeeID:  employee.ID,
			TeamID:      team.ID,
			Role:        role,
			WeeklyHours: hours,
		}
		if err := tx.Assignments().Create(assignment); err != nil {
			return storeError(err, team)
		}

		resp, err = lookup.RenderAssignment(assignment)
		return err
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// ListAssignments lists all assignments, or those of one employee when employeeID is set
func (s *AssignmentService) ListAssignments(employeeID *string) ([]AssignmentResponse, error) {
	lookup := NewLookup(s.store)

	var (
		assignments []models.Assignment
		err         error
	)
	if employeeID != nil {
		employee, resolveErr := lookup.ResolveEmployee(*employeeID)
		if resolveErr != nil {
			return nil, resolveErr
		}
		assignments, err = s.store.Assignments().GetByEmployeeID(employee.ID)
	} else {
		assignments, err = s.store.Assignments().GetAll()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list assignments: %w", err)
	}

	return lookup.RenderAssignments(assignments)
}

// UpdateAssignment changes role, hours or the employee/team of an assignment.
// All invariants are re-checked against the would-be state.
func (s *AssignmentService) UpdateAssignment(ctx context.Context, req *UpdateAssignmentRequest) (resp *AssignmentResponse, err error) {
	start := time.Now()
	defer func() {
		recordWrite(ctx, "assignment", "update", start, err, map[string]interface{}{
			"employee_id": stringOrEmpty(req.EmployeePK),
			"team":        stringOrEmpty(req.TeamPK),
		})
	}()

	if err := required(req.EmployeePK, "employee_pk"); err != nil {
		return nil, err
	}
	if err := required(req.TeamPK, "team_pk"); err != nil {
		return nil, err
	}
	if err := validate(s.validator, req); err != nil {
		return nil, err
	}

	targetEmployee := *req.EmployeePK
	if req.EmployeeUpdate != nil {
		targetEmployee = *req.EmployeeUpdate
	}
	targetTeam := *req.TeamPK
	if req.TeamUpdate != nil {
		targetTeam = *req.TeamUpdate
	}

	err = s.store.Transaction(ctx, func(tx repository.StoreInterface) error {
		lookup := NewLockingLookup(tx)
		employees, err := lookup.ResolveEmployees(*req.EmployeePK, targetEmployee)
		if err != nil {
			return err
		}
		teams, err := lookup.ResolveTeams(*req.TeamPK, targetTeam)
		if err != nil {
			return err
		}

		existing, err := getAssignment(tx, employees[*req.EmployeePK], teams[*req.TeamPK])
		if err != nil {
			return err
		}

		role := existing.Role
		if req.EmployeeType != nil {
			role = models.Role(*req.EmployeeType)
		}
		hours := existing.WeeklyHours
		if req.WorkArr != nil {
			hours = *req.WorkArr
		}

		employee, team := employees[targetEmployee], teams[targetTeam]
		if err := s.rules.ValidateUpdate(tx.Assignments(), existing, employee, team, role, hours); err != nil {
			return err
		}

		existing.EmployeeID = employee.ID
		existing.TeamID = team.ID
		existing.Role = role
		existing.WeeklyHours = hours
		existing.Employee = *employee
		existing.Team = *team
		if err := tx.Assignments().Update(existing); err != nil {
			return storeError(err, team)
		}

		resp, err = lookup.RenderAssignment(existing)
		return err
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// DeleteAssignment removes the assignment identified by employee_pk and team_pk
func (s *AssignmentService) DeleteAssignment(ctx context.Context, req *AssignmentKeyRequest) (err error) {
	start := time.Now()
	defer func() {
		recordWrite(ctx, "assignment", "delete", start, err, map[string]interface{}{
			"employee_id": stringOrEmpty(req.EmployeePK),
			"team":        stringOrEmpty(req.TeamPK),
		})
	}()

	if err := required(req.EmployeePK, "employee_pk"); err != nil {
		return err
	}
	if err := required(req.TeamPK, "team_pk"); err != nil {
		return err
	}

	return s.store.Transaction(ctx, func(tx repository.StoreInterface) error {
		lookup := NewLockingLookup(tx)
		employee, err := lookup.ResolveEmployee(*req.EmployeePK)
		if err != nil {
			return err
		}
		team, err := lookup.ResolveTeam(*req.TeamPK)
		if err != nil {
			return err
		}

		existing, err := getAssignment(tx, employee, team)
		if err != nil {
			return err
		}
		if err := tx.Assignments().Delete(existing.ID); err != nil {
			return fmt.Errorf("failed to delete assignment: %w", err)
		}
		return nil
	})
}

func getAssignment(store repository.StoreInterface, employee *models.Employee, team *models.Team) (*models.Assignment, error) {
	assignment, err := store.Assignments().GetByPair(employee.ID, team.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("assignment", fmt.Sprintf("for employee %s in team %s", employee.Code, team.Name))
		}
		return nil, fmt.Errorf("failed to get assignment: %w", err)
	}
	return assignment, nil
}

// storeError names the team in leader conflicts raised by the store's unique index
func storeError(err error, team *models.Team) error {
	var leaderErr *apperrors.LeaderConflictError
	if errors.As(err, &leaderErr) && leaderErr.Team == "" {
		return apperrors.NewLeaderConflictError(team.Name, leaderErr.Leader)
	}
	if apperrors.IsAlreadyExists(err) {
		return err
	}
	return fmt.Errorf("failed to save assignment: %w", err)
}
