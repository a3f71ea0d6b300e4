//go:build integration
// +build integration

package repository

import (
	"context"
	"testing"

	"github.com/Top-Technologies/downtime/internal/database/models"
	"github.com/Top-Technologies/downtime/internal/testutils"

	"github.com/stretchr/testify/suite"
)

// DowntimeReasonRepositoryTestSuite tests the DowntimeReasonRepository
type DowntimeReasonRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *DowntimeReasonRepository
	deptRepo      *DepartmentRepository
	userRepo      *UserRepository
	factories     *testutils.FactorySet
	ctx           context.Context
}

// SetupSuite runs before all tests in the suite
func (suite *DowntimeReasonRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewDowntimeReasonRepository(suite.baseTestSuite.DB)
	suite.deptRepo = NewDepartmentRepository(suite.baseTestSuite.DB)
	suite.userRepo = NewUserRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
	suite.ctx = context.Background()
}

// TearDownSuite runs after all tests in the suite
func (suite *DowntimeReasonRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *DowntimeReasonRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

func (suite *DowntimeReasonRepositoryTestSuite) createDepartmentWithUser() (*models.Department, *models.User) {
	dept := suite.factories.Department.Create()
	suite.Require().NoError(suite.deptRepo.Create(suite.ctx, dept))
	user := suite.factories.User.WithDepartment(dept.ID)
	suite.Require().NoError(suite.userRepo.Create(suite.ctx, user))
	return dept, user
}

// TestCreateWithResponsibleUsers tests that the join rows are written
func (suite *DowntimeReasonRepositoryTestSuite) TestCreateWithResponsibleUsers() {
	dept, user := suite.createDepartmentWithUser()

	reason := suite.factories.DowntimeReason.Create(dept.ID, *user)
	suite.NoError(suite.repo.Create(suite.ctx, reason))

	got, err := suite.repo.GetByID(suite.ctx, reason.ID)
	suite.Require().NoError(err)
	suite.Equal(dept.Name, got.Department.Name)
	suite.Require().Len(got.ResponsibleUsers, 1)
	suite.Equal(user.ID, got.ResponsibleUsers[0].ID)
}

// TestUpdateReplacesResponsibleUsers tests department move with new users
func (suite *DowntimeReasonRepositoryTestSuite) TestUpdateReplacesResponsibleUsers() {
	dept, user := suite.createDepartmentWithUser()
	reason := suite.factories.DowntimeReason.Create(dept.ID, *user)
	suite.Require().NoError(suite.repo.Create(suite.ctx, reason))

	otherDept, otherUser := suite.createDepartmentWithUser()
	reason.SetDepartment(otherDept.ID)
	reason.ResponsibleUsers = []models.User{*otherUser}
	suite.NoError(suite.repo.Update(suite.ctx, reason))

	got, err := suite.repo.GetByID(suite.ctx, reason.ID)
	suite.Require().NoError(err)
	suite.Equal(otherDept.ID, got.DepartmentID)
	suite.Require().Len(got.ResponsibleUsers, 1)
	suite.Equal(otherUser.ID, got.ResponsibleUsers[0].ID)
}

// TestListFiltersActive tests that archived reasons are hidden
func (suite *DowntimeReasonRepositoryTestSuite) TestListFiltersActive() {
	dept, user := suite.createDepartmentWithUser()

	active := suite.factories.DowntimeReason.Create(dept.ID, *user)
	active.Name = "B active"
	archived := suite.factories.DowntimeReason.Create(dept.ID, *user)
	archived.Name = "A archived"
	archived.Active = false
	suite.Require().NoError(suite.repo.Create(suite.ctx, active))
	suite.Require().NoError(suite.repo.Create(suite.ctx, archived))

	activeOnly := true
	reasons, total, err := suite.repo.List(suite.ctx, DowntimeReasonFilter{Active: &activeOnly})
	suite.NoError(err)
	suite.Equal(int64(1), total)
	suite.Require().Len(reasons, 1)
	suite.Equal("B active", reasons[0].Name)

	all, total, err := suite.repo.List(suite.ctx, DowntimeReasonFilter{})
	suite.NoError(err)
	suite.Equal(int64(2), total)
	suite.Equal("A archived", all[0].Name)
}

// TestDowntimeReasonRepositoryTestSuite runs the test suite
func TestDowntimeReasonRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(DowntimeReasonRepositoryTestSuite))
}
