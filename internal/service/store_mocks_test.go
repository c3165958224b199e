package service_test

import (
	"context"

	"hr-payroll-backend/internal/database/models"
	"hr-payroll-backend/internal/mocks"
	"hr-payroll-backend/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"
)

// storeMocks wires a mock store to mock repositories. Transactions run their
// function directly against the same mock store.
type storeMocks struct {
	store       *mocks.MockStoreInterface
	employees   *mocks.MockEmployeeRepositoryInterface
	teams       *mocks.MockTeamRepositoryInterface
	assignments *mocks.MockAssignmentRepositoryInterface
}

func newStoreMocks(ctrl *gomock.Controller) *storeMocks {
	m := &storeMocks{
		store:       mocks.NewMockStoreInterface(ctrl),
		employees:   mocks.NewMockEmployeeRepositoryInterface(ctrl),
		teams:       mocks.NewMockTeamRepositoryInterface(ctrl),
		assignments: mocks.NewMockAssignmentRepositoryInterface(ctrl),
	}
	m.store.EXPECT().Employees().Return(m.employees).AnyTimes()
	m.store.EXPECT().Teams().Return(m.teams).AnyTimes()
	m.store.EXPECT().Assignments().Return(m.assignments).AnyTimes()
	m.store.EXPECT().Transaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fn func(repository.StoreInterface) error) error {
			return fn(m.store)
		}).AnyTimes()
	return m
}

func newEmployee(employeeID string, rate float64) *models.Employee {
	return &models.Employee{
		BaseModel:  models.BaseModel{ID: uuid.New()},
		Name:       "George",
		HourlyRate: rate,
		Code:       employeeID,
	}
}

func newTeam(name string) *models.Team {
	return &models.Team{BaseModel: models.BaseModel{ID: uuid.New()}, Name: name}
}

func newAssignment(employee *models.Employee, team *models.Team, role models.Role, hours int) models.Assignment {
	return models.Assignment{
		BaseModel:   models.BaseModel{ID: uuid.New()},
		EmployeeID:  employee.ID,
		TeamID:      team.ID,
		Role:        role,
		WeeklyHours: hours,
		Employee:    *employee,
		Team:        *team,
	}
}

func ptr[T any](v T) *T {
	return &v
}
