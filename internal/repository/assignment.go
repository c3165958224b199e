package repository

import (
	"hr-payroll-backend/internal/database/models"
	apperrors "hr-payroll-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const leaderIndexName = "idx_assignments_team_leader"

// AssignmentRepository handles database operations for employee-team assignments
type AssignmentRepository struct {
	db *gorm.DB
}

// NewAssignmentRepository creates a new assignment repository
func NewAssignmentRepository(db *gorm.DB) *AssignmentRepository {
	return &AssignmentRepository{db: db}
}

// Create creates a new assignment
func (r *AssignmentRepository) Create(assignment *models.Assignment) error {
	return translateAssignmentError(r.db.Omit("Employee", "Team").Create(assignment).Error)
}

// GetByPair retrieves the assignment of an employee to a team
func (r *AssignmentRepository) GetByPair(employeeID, teamID uuid.UUID) (*models.Assignment, error) {
	var assignment models.Assignment
	err := r.preloaded().First(&assignment, "employee_id = ? AND team_id = ?", employeeID, teamID).Error
	if err != nil {
		return nil, err
	}
	return &assignment, nil
}

// GetAll retrieves every assignment in creation order
func (r *AssignmentRepository) GetAll() ([]models.Assignment, error) {
	var assignments []models.Assignment
	err := r.preloaded().Order("created_at, id").Find(&assignments).Error
	return assignments, err
}

// GetByEmployeeID retrieves all assignments of an employee
func (r *AssignmentRepository) GetByEmployeeID(employeeID uuid.UUID) ([]models.Assignment, error) {
	var assignments []models.Assignment
	err := r.preloaded().Where("employee_id = ?", employeeID).Order("created_at, id").Find(&assignments).Error
	return assignments, err
}

// GetByTeamID retrieves all assignments of a team
func (r *AssignmentRepository) GetByTeamID(teamID uuid.UUID) ([]models.Assignment, error) {
	var assignments []models.Assignment
	err := r.preloaded().Where("team_id = ?", teamID).Order("created_at, id").Find(&assignments).Error
	return assignments, err
}

// GetLeader retrieves the LEADER assignment of a team, ignoring excludeID when set
func (r *AssignmentRepository) GetLeader(teamID uuid.UUID, excludeID *uuid.UUID) (*models.Assignment, error) {
	query := r.preloaded().Where("team_id = ? AND role = ?", teamID, models.RoleLeader)
	if excludeID != nil {
		query = query.Where("id <> ?", *excludeID)
	}

	var assignment models.Assignment
	if err := query.First(&assignment).Error; err != nil {
		return nil, err
	}
	return &assignment, nil
}

// SumWeeklyHours returns the total weekly hours of an employee, ignoring excludeID when set
func (r *AssignmentRepository) SumWeeklyHours(employeeID uuid.UUID, excludeID *uuid.UUID) (int64, error) {
	query := r.db.Model(&models.Assignment{}).Where("employee_id = ?", employeeID)
	if excludeID != nil {
		query = query.Where("id <> ?", *excludeID)
	}

	var total int64
	err := query.Select("COALESCE(SUM(weekly_hours), 0)").Scan(&total).Error
	return total, err
}

// Update writes the relation keys, role and hours of an assignment
func (r *AssignmentRepository) Update(assignment *models.Assignment) error {
	err := r.db.Model(&models.Assignment{}).Where("id = ?", assignment.ID).Updates(map[string]interface{}{
		"employee_id":  assignment.EmployeeID,
		"team_id":      assignment.TeamID,
		"role":         assignment.Role,
		"weekly_hours": assignment.WeeklyHours,
	}).Error
	return translateAssignmentError(err)
}

// Delete deletes an assignment
func (r *AssignmentRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Assignment{}, "id = ?", id).Error
}

func (r *AssignmentRepository) preloaded() *gorm.DB {
	return r.db.Preload("Employee").Preload("Team")
}

func translateAssignmentError(err error) error {
	constraint, ok := uniqueViolation(err)
	if !ok {
		return err
	}
	if constraint == leaderIndexName {
		return &apperrors.LeaderConflictError{}
	}
	return apperrors.ErrAssignmentExists
}
