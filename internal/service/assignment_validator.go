package service

import (
	"errors"
	"fmt"

	"hr-payroll-backend/internal/database/models"
	apperrors "hr-payroll-backend/internal/errors"
	"hr-payroll-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AssignmentValidator decides whether a proposed assignment state may be
// committed. It reads current state through the repository it is given, which
// must be the transactional one for the write being validated.
type AssignmentValidator struct {
	maxWeeklyHours float64
}

// NewAssignmentValidator creates a validator enforcing maxWeeklyHours per employee
func NewAssignmentValidator(maxWeeklyHours float64) *AssignmentValidator {
	return &AssignmentValidator{maxWeeklyHours: maxWeeklyHours}
}

// MaxWeeklyHours returns the configured hour cap
func (v *AssignmentValidator) MaxWeeklyHours() float64 {
	return v.maxWeeklyHours
}

// ValidateCreate checks a new assignment of employee to team
func (v *AssignmentValidator) ValidateCreate(repo repository.AssignmentRepositoryInterface, employee *models.Employee, team *models.Team, role models.Role, weeklyHours int) error {
	existing, err := repo.GetByPair(employee.ID, team.ID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check existing assignment: %w", err)
	}
	if existing != nil {
		return apperrors.ErrAssignmentExists
	}

	if err := v.checkLeader(repo, team, role, nil); err != nil {
		return err
	}

	return v.checkHours(repo, employee, weeklyHours, nil)
}

// ValidateUpdate checks the would-be state of existing after moving it to
// employee and team with role and weeklyHours. existing itself is left out of
// the leader search and the hour total.
func (v *AssignmentValidator) ValidateUpdate(repo repository.AssignmentRepositoryInterface, existing *models.Assignment, employee *models.Employee, team *models.Team, role models.Role, weeklyHours int) error {
	if employee.ID != existing.EmployeeID || team.ID != existing.TeamID {
		other, err := repo.GetByPair(employee.ID, team.ID)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to check existing assignment: %w", err)
		}
		if other != nil && other.ID != existing.ID {
			return apperrors.ErrAssignmentExists
		}
	}

	if err := v.checkLeader(repo, team, role, existing); err != nil {
		return err
	}

	return v.checkHours(repo, employee, weeklyHours, existing)
}

func (v *AssignmentValidator) checkLeader(repo repository.AssignmentRepositoryInterface, team *models.Team, role models.Role, existing *models.Assignment) error {
	if !role.IsLeader() {
		return nil
	}

	leader, err := repo.GetLeader(team.ID, excludeID(existing))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return fmt.Errorf("failed to look up team leader: %w", err)
	}

	return apperrors.NewLeaderConflictError(team.Name, leader.Employee.DisplayName())
}

func (v *AssignmentValidator) checkHours(repo repository.AssignmentRepositoryInterface, employee *models.Employee, weeklyHours int, existing *models.Assignment) error {
	current, err := repo.SumWeeklyHours(employee.ID, excludeID(existing))
	if err != nil {
		return fmt.Errorf("failed to sum weekly hours: %w", err)
	}

	total := float64(current) + float64(weeklyHours)
	if total > v.maxWeeklyHours {
		return apperrors.NewHourCapExceededError(employee.DisplayName(), v.maxWeeklyHours, total)
	}
	return nil
}

func excludeID(existing *models.Assignment) *uuid.UUID {
	if existing == nil {
		return nil
	}
	id := existing.ID
	return &id
}
