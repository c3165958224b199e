package repository

import (
	"hr-payroll-backend/internal/database/models"
	apperrors "hr-payroll-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// EmployeeRepository handles database operations for employees
type EmployeeRepository struct {
	db *gorm.DB
}

// NewEmployeeRepository creates a new employee repository
func NewEmployeeRepository(db *gorm.DB) *EmployeeRepository {
	return &EmployeeRepository{db: db}
}

// Create creates a new employee
func (r *EmployeeRepository) Create(employee *models.Employee) error {
	err := r.db.Create(employee).Error
	if _, ok := uniqueViolation(err); ok {
		return apperrors.ErrEmployeeExists
	}
	return err
}

// GetByID retrieves an employee by internal ID
func (r *EmployeeRepository) GetByID(id uuid.UUID) (*models.Employee, error) {
	var employee models.Employee
	err := r.db.First(&employee, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &employee, nil
}

// GetByEmployeeID retrieves an employee by its natural key
func (r *EmployeeRepository) GetByEmployeeID(employeeID string) (*models.Employee, error) {
	var employee models.Employee
	err := r.db.First(&employee, "employee_id = ?", employeeID).Error
	if err != nil {
		return nil, err
	}
	return &employee, nil
}

// GetByEmployeeIDForUpdate retrieves an employee by natural key and locks the
// row until the surrounding transaction ends
func (r *EmployeeRepository) GetByEmployeeIDForUpdate(employeeID string) (*models.Employee, error) {
	var employee models.Employee
	err := r.db.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&employee, "employee_id = ?", employeeID).Error
	if err != nil {
		return nil, err
	}
	return &employee, nil
}

// GetAll retrieves all employees ordered by employee_id
func (r *EmployeeRepository) GetAll() ([]models.Employee, error) {
	var employees []models.Employee
	err := r.db.Order("employee_id").Find(&employees).Error
	return employees, err
}

// Update writes the mutable fields of an employee
func (r *EmployeeRepository) Update(employee *models.Employee) error {
	err := r.db.Model(&models.Employee{}).Where("id = ?", employee.ID).Updates(map[string]interface{}{
		"name":        employee.Name,
		"hourly_rate": employee.HourlyRate,
		"employee_id": employee.Code,
	}).Error
	if _, ok := uniqueViolation(err); ok {
		return apperrors.ErrEmployeeExists
	}
	return err
}

// Delete deletes an employee; assignments are removed by the foreign-key cascade
func (r *EmployeeRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Employee{}, "id = ?", id).Error
}
