package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/Top-Technologies/downtime/internal/database/models"
	apperrors "github.com/Top-Technologies/downtime/internal/errors"
	"github.com/Top-Technologies/downtime/internal/mocks"
	"github.com/Top-Technologies/downtime/internal/repository"
	"github.com/Top-Technologies/downtime/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type DowntimeReasonServiceTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	reasonRepo *mocks.MockDowntimeReasonRepositoryInterface
	deptRepo   *mocks.MockDepartmentRepositoryInterface
	userRepo   *mocks.MockUserRepositoryInterface
	cache      *mocks.MockReasonCache
	service    *service.DowntimeReasonService

	maintenance *models.Department
	logistics   *models.Department
	tech        *models.User
	planner     *models.User
}

func (suite *DowntimeReasonServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.reasonRepo = mocks.NewMockDowntimeReasonRepositoryInterface(suite.ctrl)
	suite.deptRepo = mocks.NewMockDepartmentRepositoryInterface(suite.ctrl)
	suite.userRepo = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.cache = mocks.NewMockReasonCache(suite.ctrl)
	suite.service = service.NewDowntimeReasonService(suite.reasonRepo, suite.deptRepo, suite.userRepo, suite.cache, validator.New())

	suite.maintenance = &models.Department{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "Maintenance", Active: true}
	suite.logistics = &models.Department{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "Logistics", Active: true}
	suite.tech = newTestUser("tech", "Maintenance Tech")
	suite.planner = newTestUser("planner", "Logistics Planner")
}

func (suite *DowntimeReasonServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *DowntimeReasonServiceTestSuite) existingReason() *models.DowntimeReason {
	return &models.DowntimeReason{
		BaseModel:        models.BaseModel{ID: uuid.New()},
		Name:             "Conveyor jam",
		Category:         models.DowntimeCategoryMechanical,
		DepartmentID:     suite.maintenance.ID,
		Department:       *suite.maintenance,
		NotificationType: models.NotificationTypeActivity,
		Active:           true,
		ResponsibleUsers: []models.User{*suite.tech},
	}
}

func (suite *DowntimeReasonServiceTestSuite) TestCreate_Success() {
	req := &service.CreateDowntimeReasonRequest{
		Name:               "Conveyor jam",
		Category:           models.DowntimeCategoryMechanical,
		DepartmentID:       suite.maintenance.ID,
		ResponsibleUserIDs: []uuid.UUID{suite.tech.ID, suite.tech.ID},
	}

	suite.deptRepo.EXPECT().GetByID(gomock.Any(), suite.maintenance.ID).Return(suite.maintenance, nil)
	suite.userRepo.EXPECT().GetByIDs(gomock.Any(), []uuid.UUID{suite.tech.ID}).Return([]models.User{*suite.tech}, nil)
	suite.reasonRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, reason *models.DowntimeReason) error {
			assert.True(suite.T(), reason.Active)
			assert.Equal(suite.T(), models.NotificationTypeActivity, reason.NotificationType)
			reason.ID = uuid.New()
			return nil
		})
	suite.cache.EXPECT().Invalidate(gomock.Any()).Return(nil)

	resp, err := suite.service.Create(context.Background(), req)

	suite.Require().NoError(err)
	assert.Equal(suite.T(), "Conveyor jam", resp.Name)
	assert.Equal(suite.T(), "Maintenance", resp.DepartmentName)
	assert.Len(suite.T(), resp.ResponsibleUsers, 1)
	assert.Equal(suite.T(), "tech", resp.ResponsibleUsers[0].Login)
}

func (suite *DowntimeReasonServiceTestSuite) TestCreate_DefaultsCategoryToOther() {
	req := &service.CreateDowntimeReasonRequest{
		Name:               "Unclassified",
		DepartmentID:       suite.maintenance.ID,
		ResponsibleUserIDs: []uuid.UUID{suite.tech.ID},
	}

	suite.deptRepo.EXPECT().GetByID(gomock.Any(), suite.maintenance.ID).Return(suite.maintenance, nil)
	suite.userRepo.EXPECT().GetByIDs(gomock.Any(), gomock.Any()).Return([]models.User{*suite.tech}, nil)
	suite.reasonRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	suite.cache.EXPECT().Invalidate(gomock.Any()).Return(errors.New("redis down"))

	resp, err := suite.service.Create(context.Background(), req)

	suite.Require().NoError(err)
	assert.Equal(suite.T(), models.DowntimeCategoryOther, resp.Category)
}

func (suite *DowntimeReasonServiceTestSuite) TestCreate_RequiresResponsibleUsers() {
	_, err := suite.service.Create(context.Background(), &service.CreateDowntimeReasonRequest{
		Name:         "Conveyor jam",
		DepartmentID: suite.maintenance.ID,
	})
	assert.ErrorIs(suite.T(), err, apperrors.ErrResponsibleUsersRequired)
}

func (suite *DowntimeReasonServiceTestSuite) TestCreate_InvalidCategory() {
	_, err := suite.service.Create(context.Background(), &service.CreateDowntimeReasonRequest{
		Name:               "Conveyor jam",
		Category:           "hydraulic",
		DepartmentID:       suite.maintenance.ID,
		ResponsibleUserIDs: []uuid.UUID{suite.tech.ID},
	})
	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidCategory)
}

func (suite *DowntimeReasonServiceTestSuite) TestCreate_InvalidNotificationType() {
	_, err := suite.service.Create(context.Background(), &service.CreateDowntimeReasonRequest{
		Name:               "Conveyor jam",
		DepartmentID:       suite.maintenance.ID,
		ResponsibleUserIDs: []uuid.UUID{suite.tech.ID},
		NotificationType:   "email",
	})
	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidNotificationType)
}

func (suite *DowntimeReasonServiceTestSuite) TestCreate_UnknownDepartment() {
	suite.deptRepo.EXPECT().GetByID(gomock.Any(), suite.maintenance.ID).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.service.Create(context.Background(), &service.CreateDowntimeReasonRequest{
		Name:               "Conveyor jam",
		DepartmentID:       suite.maintenance.ID,
		ResponsibleUserIDs: []uuid.UUID{suite.tech.ID},
	})
	assert.ErrorIs(suite.T(), err, apperrors.ErrDepartmentNotFound)
}

func (suite *DowntimeReasonServiceTestSuite) TestCreate_UnknownResponsibleUser() {
	missing := uuid.New()
	suite.deptRepo.EXPECT().GetByID(gomock.Any(), suite.maintenance.ID).Return(suite.maintenance, nil)
	suite.userRepo.EXPECT().GetByIDs(gomock.Any(), []uuid.UUID{suite.tech.ID, missing}).Return([]models.User{*suite.tech}, nil)

	_, err := suite.service.Create(context.Background(), &service.CreateDowntimeReasonRequest{
		Name:               "Conveyor jam",
		DepartmentID:       suite.maintenance.ID,
		ResponsibleUserIDs: []uuid.UUID{suite.tech.ID, missing},
	})
	assert.ErrorIs(suite.T(), err, apperrors.ErrUserNotFound)
}

func (suite *DowntimeReasonServiceTestSuite) TestUpdate_DepartmentChangeRequiresReselection() {
	reason := suite.existingReason()
	suite.reasonRepo.EXPECT().GetByID(gomock.Any(), reason.ID).Return(reason, nil)
	suite.deptRepo.EXPECT().GetByID(gomock.Any(), suite.logistics.ID).Return(suite.logistics, nil)

	_, err := suite.service.Update(context.Background(), reason.ID, &service.UpdateDowntimeReasonRequest{DepartmentID: &suite.logistics.ID})

	assert.ErrorIs(suite.T(), err, apperrors.ErrResponsibleUsersReselect)
}

func (suite *DowntimeReasonServiceTestSuite) TestUpdate_DepartmentChangeWithNewUsers() {
	reason := suite.existingReason()
	suite.reasonRepo.EXPECT().GetByID(gomock.Any(), reason.ID).Return(reason, nil)
	suite.deptRepo.EXPECT().GetByID(gomock.Any(), suite.logistics.ID).Return(suite.logistics, nil)
	suite.userRepo.EXPECT().GetByIDs(gomock.Any(), []uuid.UUID{suite.planner.ID}).Return([]models.User{*suite.planner}, nil)
	suite.reasonRepo.EXPECT().Update(gomock.Any(), reason).Return(nil)
	suite.cache.EXPECT().Invalidate(gomock.Any()).Return(nil)

	resp, err := suite.service.Update(context.Background(), reason.ID, &service.UpdateDowntimeReasonRequest{
		DepartmentID:       &suite.logistics.ID,
		ResponsibleUserIDs: []uuid.UUID{suite.planner.ID},
	})

	suite.Require().NoError(err)
	assert.Equal(suite.T(), suite.logistics.ID, resp.DepartmentID)
	assert.Equal(suite.T(), "Logistics", resp.DepartmentName)
	suite.Require().Len(resp.ResponsibleUsers, 1)
	assert.Equal(suite.T(), "planner", resp.ResponsibleUsers[0].Login)
}

func (suite *DowntimeReasonServiceTestSuite) TestUpdate_SameDepartmentKeepsUsers() {
	reason := suite.existingReason()
	name := "Conveyor belt jam"
	suite.reasonRepo.EXPECT().GetByID(gomock.Any(), reason.ID).Return(reason, nil)
	suite.deptRepo.EXPECT().GetByID(gomock.Any(), suite.maintenance.ID).Return(suite.maintenance, nil)
	suite.reasonRepo.EXPECT().Update(gomock.Any(), reason).Return(nil)
	suite.cache.EXPECT().Invalidate(gomock.Any()).Return(nil)

	resp, err := suite.service.Update(context.Background(), reason.ID, &service.UpdateDowntimeReasonRequest{
		Name:         &name,
		DepartmentID: &suite.maintenance.ID,
	})

	suite.Require().NoError(err)
	assert.Equal(suite.T(), name, resp.Name)
	assert.Len(suite.T(), resp.ResponsibleUsers, 1)
}

func (suite *DowntimeReasonServiceTestSuite) TestUpdate_EmptyResponsibleUsersRejected() {
	reason := suite.existingReason()
	suite.reasonRepo.EXPECT().GetByID(gomock.Any(), reason.ID).Return(reason, nil)

	_, err := suite.service.Update(context.Background(), reason.ID, &service.UpdateDowntimeReasonRequest{ResponsibleUserIDs: []uuid.UUID{}})

	assert.ErrorIs(suite.T(), err, apperrors.ErrResponsibleUsersRequired)
}

func (suite *DowntimeReasonServiceTestSuite) TestUpdate_Archive() {
	reason := suite.existingReason()
	inactive := false
	suite.reasonRepo.EXPECT().GetByID(gomock.Any(), reason.ID).Return(reason, nil)
	suite.reasonRepo.EXPECT().Update(gomock.Any(), reason).Return(nil)
	suite.cache.EXPECT().Invalidate(gomock.Any()).Return(nil)

	resp, err := suite.service.Update(context.Background(), reason.ID, &service.UpdateDowntimeReasonRequest{Active: &inactive})

	suite.Require().NoError(err)
	assert.False(suite.T(), resp.Active)
}

func (suite *DowntimeReasonServiceTestSuite) TestUpdate_NotFound() {
	id := uuid.New()
	suite.reasonRepo.EXPECT().GetByID(gomock.Any(), id).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.service.Update(context.Background(), id, &service.UpdateDowntimeReasonRequest{})

	assert.ErrorIs(suite.T(), err, apperrors.ErrDowntimeReasonNotFound)
}

func (suite *DowntimeReasonServiceTestSuite) TestList_CacheHit() {
	suite.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, dest interface{}) (bool, error) {
			out := dest.(*service.DowntimeReasonListResponse)
			out.Reasons = []service.DowntimeReasonResponse{{Name: "Cached"}}
			out.Total = 1
			return true, nil
		})

	resp, err := suite.service.List(context.Background(), nil)

	suite.Require().NoError(err)
	assert.Equal(suite.T(), int64(1), resp.Total)
	assert.Equal(suite.T(), "Cached", resp.Reasons[0].Name)
}

func (suite *DowntimeReasonServiceTestSuite) TestList_CacheMissDefaultsToActive() {
	reason := suite.existingReason()
	suite.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)
	suite.reasonRepo.EXPECT().List(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, filter repository.DowntimeReasonFilter) ([]models.DowntimeReason, int64, error) {
			suite.Require().NotNil(filter.Active)
			assert.True(suite.T(), *filter.Active)
			assert.Equal(suite.T(), 20, filter.Limit)
			return []models.DowntimeReason{*reason}, int64(1), nil
		})
	suite.cache.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	resp, err := suite.service.List(context.Background(), &service.ListDowntimeReasonsRequest{})

	suite.Require().NoError(err)
	assert.Len(suite.T(), resp.Reasons, 1)
}

func (suite *DowntimeReasonServiceTestSuite) TestList_AllIncludesArchived() {
	suite.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, errors.New("redis down"))
	suite.reasonRepo.EXPECT().List(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, filter repository.DowntimeReasonFilter) ([]models.DowntimeReason, int64, error) {
			assert.Nil(suite.T(), filter.Active)
			return nil, int64(0), nil
		})
	suite.cache.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("redis down"))

	resp, err := suite.service.List(context.Background(), &service.ListDowntimeReasonsRequest{All: true})

	suite.Require().NoError(err)
	assert.Empty(suite.T(), resp.Reasons)
}

func (suite *DowntimeReasonServiceTestSuite) TestList_InvalidCategory() {
	_, err := suite.service.List(context.Background(), &service.ListDowntimeReasonsRequest{Category: "hydraulic"})
	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidCategory)
}

func (suite *DowntimeReasonServiceTestSuite) TestList_WithoutCache() {
	svc := service.NewDowntimeReasonService(suite.reasonRepo, suite.deptRepo, suite.userRepo, nil, validator.New())
	suite.reasonRepo.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, int64(0), nil)

	resp, err := svc.List(context.Background(), nil)

	suite.Require().NoError(err)
	assert.Equal(suite.T(), 1, resp.Page)
}

func (suite *DowntimeReasonServiceTestSuite) TestGetByID_NotFound() {
	id := uuid.New()
	suite.reasonRepo.EXPECT().GetByID(gomock.Any(), id).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.service.GetByID(context.Background(), id)

	assert.ErrorIs(suite.T(), err, apperrors.ErrDowntimeReasonNotFound)
}

func TestDowntimeReasonServiceTestSuite(t *testing.T) {
	suite.Run(t, new(DowntimeReasonServiceTestSuite))
}
