package repository

import (
	"hr-payroll-backend/internal/database/models"
	apperrors "hr-payroll-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TeamRepository handles database operations for teams
type TeamRepository struct {
	db *gorm.DB
}

// NewTeamRepository creates a new team repository
func NewTeamRepository(db *gorm.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

// Create creates a new team
func (r *TeamRepository) Create(team *models.Team) error {
	err := r.db.Create(team).Error
	if _, ok := uniqueViolation(err); ok {
		return apperrors.ErrTeamExists
	}
	return err
}

// GetByID retrieves a team by ID
func (r *TeamRepository) GetByID(id uuid.UUID) (*models.Team, error) {
	var team models.Team
	err := r.db.First(&team, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// GetByName retrieves a team by its unique name
func (r *TeamRepository) GetByName(name string) (*models.Team, error) {
	var team models.Team
	err := r.db.First(&team, "name = ?", name).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// GetByNameForUpdate retrieves a team by name and locks the row until the
// surrounding transaction ends
func (r *TeamRepository) GetByNameForUpdate(name string) (*models.Team, error) {
	var team models.Team
	err := r.db.Clauses(clause.Locking{Strength: "UPDATE"}).First(&team, "name = ?", name).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// GetAll retrieves all teams in creation order
func (r *TeamRepository) GetAll() ([]models.Team, error) {
	var teams []models.Team
	err := r.db.Order("created_at, id").Find(&teams).Error
	return teams, err
}

// Update renames a team
func (r *TeamRepository) Update(team *models.Team) error {
	err := r.db.Model(&models.Team{}).Where("id = ?", team.ID).Update("name", team.Name).Error
	if _, ok := uniqueViolation(err); ok {
		return apperrors.ErrTeamExists
	}
	return err
}

// Delete deletes a team; assignments are removed by the foreign-key cascade
func (r *TeamRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Team{}, "id = ?", id).Error
}
