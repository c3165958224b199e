package repository

import (
	"context"

	"gorm.io/gorm"
)

// Store is the gorm-backed record store
type Store struct {
	db          *gorm.DB
	employees   *EmployeeRepository
	teams       *TeamRepository
	assignments *AssignmentRepository
}

// NewStore creates a store whose repositories share db
func NewStore(db *gorm.DB) *Store {
	return &Store{
		db:          db,
		employees:   NewEmployeeRepository(db),
		teams:       NewTeamRepository(db),
		assignments: NewAssignmentRepository(db),
	}
}

// Employees returns the employee repository
func (s *Store) Employees() EmployeeRepositoryInterface {
	return s.employees
}

// Teams returns the team repository
func (s *Store) Teams() TeamRepositoryInterface {
	return s.teams
}

// Assignments returns the assignment repository
func (s *Store) Assignments() AssignmentRepositoryInterface {
	return s.assignments
}

// Transaction runs fn inside a database transaction. Returning an error from
// fn rolls back every write made through tx.
func (s *Store) Transaction(ctx context.Context, fn func(tx StoreInterface) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewStore(tx))
	})
}
