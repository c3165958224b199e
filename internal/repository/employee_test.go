//go:build integration
// +build integration

package repository

import (
	"testing"

	apperrors "hr-payroll-backend/internal/errors"
	"hr-payroll-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// EmployeeRepositoryTestSuite tests the EmployeeRepository
type EmployeeRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *EmployeeRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *EmployeeRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewEmployeeRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *EmployeeRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *EmployeeRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *EmployeeRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *EmployeeRepositoryTestSuite) TestCreate() {
	employee := suite.factories.Employee.Create()

	err := suite.repo.Create(employee)

	suite.NoError(err)
	suite.NotEqual(uuid.Nil, employee.ID)
	suite.NotZero(employee.CreatedAt)
}

func (suite *EmployeeRepositoryTestSuite) TestCreateDuplicateEmployeeID() {
	suite.NoError(suite.repo.Create(suite.factories.Employee.WithEmployeeID("A123")))

	err := suite.repo.Create(suite.factories.Employee.WithEmployeeID("A123"))

	suite.ErrorIs(err, apperrors.ErrEmployeeExists)
}

func (suite *EmployeeRepositoryTestSuite) TestGetByEmployeeID() {
	employee := suite.factories.Employee.WithEmployeeID("A123")
	suite.NoError(suite.repo.Create(employee))

	found, err := suite.repo.GetByEmployeeID("A123")
	suite.NoError(err)
	suite.Equal(employee.ID, found.ID)
	suite.Equal(employee.Name, found.Name)
	suite.Equal(employee.HourlyRate, found.HourlyRate)

	locked, err := suite.repo.GetByEmployeeIDForUpdate("A123")
	suite.NoError(err)
	suite.Equal(employee.ID, locked.ID)
}

func (suite *EmployeeRepositoryTestSuite) TestGetByEmployeeIDNotFound() {
	found, err := suite.repo.GetByEmployeeID("missing")

	suite.ErrorIs(err, gorm.ErrRecordNotFound)
	suite.Nil(found)
}

func (suite *EmployeeRepositoryTestSuite) TestGetAllOrderedByEmployeeID() {
	suite.NoError(suite.repo.Create(suite.factories.Employee.WithEmployeeID("B2")))
	suite.NoError(suite.repo.Create(suite.factories.Employee.WithEmployeeID("A1")))

	employees, err := suite.repo.GetAll()

	suite.NoError(err)
	suite.Len(employees, 2)
	suite.Equal("A1", employees[0].Code)
	suite.Equal("B2", employees[1].Code)
}

func (suite *EmployeeRepositoryTestSuite) TestUpdateRekey() {
	employee := suite.factories.Employee.WithEmployeeID("A123")
	suite.NoError(suite.repo.Create(employee))

	employee.Code = "Z999"
	employee.HourlyRate = 33.5
	suite.NoError(suite.repo.Update(employee))

	found, err := suite.repo.GetByID(employee.ID)
	suite.NoError(err)
	suite.Equal("Z999", found.Code)
	suite.Equal(33.5, found.HourlyRate)
}

func (suite *EmployeeRepositoryTestSuite) TestUpdateToTakenKey() {
	suite.NoError(suite.repo.Create(suite.factories.Employee.WithEmployeeID("A1")))
	other := suite.factories.Employee.WithEmployeeID("B2")
	suite.NoError(suite.repo.Create(other))

	other.Code = "A1"
	err := suite.repo.Update(other)

	suite.ErrorIs(err, apperrors.ErrEmployeeExists)
}

func (suite *EmployeeRepositoryTestSuite) TestDelete() {
	employee := suite.factories.Employee.Create()
	suite.NoError(suite.repo.Create(employee))

	suite.NoError(suite.repo.Delete(employee.ID))

	_, err := suite.repo.GetByID(employee.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

func TestEmployeeRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(EmployeeRepositoryTestSuite))
}
