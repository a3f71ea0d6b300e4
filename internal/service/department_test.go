package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/Top-Technologies/downtime/internal/database/models"
	apperrors "github.com/Top-Technologies/downtime/internal/errors"
	"github.com/Top-Technologies/downtime/internal/mocks"
	"github.com/Top-Technologies/downtime/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type DepartmentServiceTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	mockRepo *mocks.MockDepartmentRepositoryInterface
	service  *service.DepartmentService
}

func (suite *DepartmentServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockDepartmentRepositoryInterface(suite.ctrl)
	suite.service = service.NewDepartmentService(suite.mockRepo, validator.New())
}

func (suite *DepartmentServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *DepartmentServiceTestSuite) TestCreate_Success() {
	suite.mockRepo.EXPECT().GetByName(gomock.Any(), "Maintenance").Return(nil, gorm.ErrRecordNotFound)
	suite.mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, dept *models.Department) error {
			assert.True(suite.T(), dept.Active)
			dept.ID = uuid.New()
			return nil
		})

	resp, err := suite.service.Create(context.Background(), &service.CreateDepartmentRequest{Name: "  Maintenance ", Code: "MNT"})

	suite.Require().NoError(err)
	assert.Equal(suite.T(), "Maintenance", resp.Name)
	assert.Equal(suite.T(), "MNT", resp.Code)
	assert.NotEqual(suite.T(), uuid.Nil, resp.ID)
}

func (suite *DepartmentServiceTestSuite) TestCreate_Duplicate() {
	suite.mockRepo.EXPECT().GetByName(gomock.Any(), "Maintenance").Return(&models.Department{Name: "Maintenance"}, nil)

	_, err := suite.service.Create(context.Background(), &service.CreateDepartmentRequest{Name: "Maintenance"})

	assert.ErrorIs(suite.T(), err, apperrors.ErrDepartmentExists)
}

func (suite *DepartmentServiceTestSuite) TestCreate_ValidationError() {
	_, err := suite.service.Create(context.Background(), &service.CreateDepartmentRequest{Name: "   "})

	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *DepartmentServiceTestSuite) TestGetByID_NotFound() {
	id := uuid.New()
	suite.mockRepo.EXPECT().GetByID(gomock.Any(), id).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.service.GetByID(context.Background(), id)

	assert.ErrorIs(suite.T(), err, apperrors.ErrDepartmentNotFound)
}

func (suite *DepartmentServiceTestSuite) TestList_Pagination() {
	depts := []models.Department{
		{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "Logistics", Active: true},
		{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "Maintenance", Active: true},
	}
	suite.mockRepo.EXPECT().GetAll(gomock.Any(), 10, 10).Return(depts, int64(12), nil)

	resp, err := suite.service.List(context.Background(), 2, 10)

	suite.Require().NoError(err)
	assert.Equal(suite.T(), int64(12), resp.Total)
	assert.Len(suite.T(), resp.Departments, 2)
	assert.Equal(suite.T(), "Logistics", resp.Departments[0].Name)
}

func (suite *DepartmentServiceTestSuite) TestList_RepositoryError() {
	suite.mockRepo.EXPECT().GetAll(gomock.Any(), 20, 0).Return(nil, int64(0), errors.New("db failed"))

	_, err := suite.service.List(context.Background(), 0, 0)

	assert.Error(suite.T(), err)
	assert.Contains(suite.T(), err.Error(), "db failed")
}

func TestDepartmentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(DepartmentServiceTestSuite))
}
