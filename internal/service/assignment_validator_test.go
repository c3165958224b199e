package service_test

import (
	"errors"
	"testing"

	"hr-payroll-backend/internal/database/models"
	apperrors "hr-payroll-backend/internal/errors"
	"hr-payroll-backend/internal/mocks"
	"hr-payroll-backend/internal/service"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// AssignmentValidatorTestSuite tests the assignment invariants
type AssignmentValidatorTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	repo      *mocks.MockAssignmentRepositoryInterface
	validator *service.AssignmentValidator

	employee *models.Employee
	team     *models.Team
}

func (suite *AssignmentValidatorTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.repo = mocks.NewMockAssignmentRepositoryInterface(suite.ctrl)
	suite.validator = service.NewAssignmentValidator(48)

	suite.employee = newEmployee("A123", 12)
	suite.team = newTeam("Team1")
}

func (suite *AssignmentValidatorTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *AssignmentValidatorTestSuite) TestValidateCreateAccepts() {
	suite.repo.EXPECT().GetByPair(suite.employee.ID, suite.team.ID).Return(nil, gorm.ErrRecordNotFound)
	suite.repo.EXPECT().GetLeader(suite.team.ID, nil).Return(nil, gorm.ErrRecordNotFound)
	suite.repo.EXPECT().SumWeeklyHours(suite.employee.ID, nil).Return(int64(8), nil)

	err := suite.validator.ValidateCreate(suite.repo, suite.employee, suite.team, models.RoleLeader, 40)

	suite.NoError(err)
}

func (suite *AssignmentValidatorTestSuite) TestValidateCreateDuplicatePair() {
	existing := newAssignment(suite.employee, suite.team, models.RoleEmployee, 10)
	suite.repo.EXPECT().GetByPair(suite.employee.ID, suite.team.ID).Return(&existing, nil)

	err := suite.validator.ValidateCreate(suite.repo, suite.employee, suite.team, models.RoleEmployee, 10)

	suite.ErrorIs(err, apperrors.ErrAssignmentExists)
}

func (suite *AssignmentValidatorTestSuite) TestValidateCreateSecondLeader() {
	current := newEmployee("B123", 13)
	current.Name = "Maria"
	leader := newAssignment(current, suite.team, models.RoleLeader, 30)

	suite.repo.EXPECT().GetByPair(suite.employee.ID, suite.team.ID).Return(nil, gorm.ErrRecordNotFound)
	suite.repo.EXPECT().GetLeader(suite.team.ID, nil).Return(&leader, nil)

	err := suite.validator.ValidateCreate(suite.repo, suite.employee, suite.team, models.RoleLeader, 1)

	suite.True(apperrors.IsLeaderConflict(err))
	suite.EqualError(err, "team Team1 already has a leader Maria B123")
}

func (suite *AssignmentValidatorTestSuite) TestValidateCreateEmployeeSkipsLeaderCheck() {
	suite.repo.EXPECT().GetByPair(suite.employee.ID, suite.team.ID).Return(nil, gorm.ErrRecordNotFound)
	suite.repo.EXPECT().GetLeader(gomock.Any(), gomock.Any()).Times(0)
	suite.repo.EXPECT().SumWeeklyHours(suite.employee.ID, nil).Return(int64(0), nil)

	suite.NoError(suite.validator.ValidateCreate(suite.repo, suite.employee, suite.team, models.RoleEmployee, 48))
}

func (suite *AssignmentValidatorTestSuite) TestValidateCreateHourCap() {
	suite.repo.EXPECT().GetByPair(suite.employee.ID, suite.team.ID).Return(nil, gorm.ErrRecordNotFound)
	suite.repo.EXPECT().SumWeeklyHours(suite.employee.ID, nil).Return(int64(40), nil)

	err := suite.validator.ValidateCreate(suite.repo, suite.employee, suite.team, models.RoleEmployee, 120)

	var capErr *apperrors.HourCapExceededError
	suite.Require().True(errors.As(err, &capErr))
	suite.Equal(112.0, capErr.Overage)
	suite.Equal(160.0, capErr.Total)
	suite.Contains(err.Error(), "exceeding by 112")
}

func (suite *AssignmentValidatorTestSuite) TestValidateCreateStoreError() {
	suite.repo.EXPECT().GetByPair(suite.employee.ID, suite.team.ID).Return(nil, errors.New("connection reset"))

	err := suite.validator.ValidateCreate(suite.repo, suite.employee, suite.team, models.RoleEmployee, 1)

	suite.ErrorContains(err, "connection reset")
	suite.False(apperrors.IsAlreadyExists(err))
}

func (suite *AssignmentValidatorTestSuite) TestValidateUpdateExcludesExisting() {
	existing := newAssignment(suite.employee, suite.team, models.RoleLeader, 30)

	suite.repo.EXPECT().GetLeader(suite.team.ID, &existing.ID).Return(nil, gorm.ErrRecordNotFound)
	suite.repo.EXPECT().SumWeeklyHours(suite.employee.ID, &existing.ID).Return(int64(10), nil)

	err := suite.validator.ValidateUpdate(suite.repo, &existing, suite.employee, suite.team, models.RoleLeader, 38)

	suite.NoError(err)
}

func (suite *AssignmentValidatorTestSuite) TestValidateUpdateHourCapUsesWouldBeTotal() {
	existing := newAssignment(suite.employee, suite.team, models.RoleEmployee, 30)

	suite.repo.EXPECT().SumWeeklyHours(suite.employee.ID, &existing.ID).Return(int64(10), nil)

	err := suite.validator.ValidateUpdate(suite.repo, &existing, suite.employee, suite.team, models.RoleEmployee, 40)

	var capErr *apperrors.HourCapExceededError
	suite.Require().True(errors.As(err, &capErr))
	suite.Equal(2.0, capErr.Overage)
}

func (suite *AssignmentValidatorTestSuite) TestValidateUpdateRekeyToTakenPair() {
	existing := newAssignment(suite.employee, suite.team, models.RoleEmployee, 10)
	target := newTeam("Team2")
	other := newAssignment(suite.employee, target, models.RoleEmployee, 10)

	suite.repo.EXPECT().GetByPair(suite.employee.ID, target.ID).Return(&other, nil)

	err := suite.validator.ValidateUpdate(suite.repo, &existing, suite.employee, target, models.RoleEmployee, 10)

	suite.ErrorIs(err, apperrors.ErrAssignmentExists)
}

func (suite *AssignmentValidatorTestSuite) TestValidateUpdateRekeyChecksTargetTeamLeader() {
	existing := newAssignment(suite.employee, suite.team, models.RoleLeader, 10)
	target := newTeam("Team2")
	leader := newAssignment(newEmployee("B123", 13), target, models.RoleLeader, 10)

	suite.repo.EXPECT().GetByPair(suite.employee.ID, target.ID).Return(nil, gorm.ErrRecordNotFound)
	suite.repo.EXPECT().GetLeader(target.ID, &existing.ID).Return(&leader, nil)

	err := suite.validator.ValidateUpdate(suite.repo, &existing, suite.employee, target, models.RoleLeader, 10)

	suite.True(apperrors.IsLeaderConflict(err))
	suite.Contains(err.Error(), "Team2")
}

func TestAssignmentValidatorTestSuite(t *testing.T) {
	suite.Run(t, new(AssignmentValidatorTestSuite))
}
