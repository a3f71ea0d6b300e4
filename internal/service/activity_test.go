package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/Top-Technologies/downtime/internal/database/models"
	apperrors "github.com/Top-Technologies/downtime/internal/errors"
	"github.com/Top-Technologies/downtime/internal/mocks"
	"github.com/Top-Technologies/downtime/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type ActivityServiceTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	mockRepo *mocks.MockActivityRepositoryInterface
	service  *service.ActivityService
	assignee *models.User
}

func (suite *ActivityServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockActivityRepositoryInterface(suite.ctrl)
	suite.service = service.NewActivityService(suite.mockRepo)
	suite.assignee = newTestUser("bob", "Bob Supervisor")
}

func (suite *ActivityServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ActivityServiceTestSuite) plannedActivity() *models.Activity {
	return &models.Activity{
		BaseModel:    models.BaseModel{ID: uuid.New()},
		ResModel:     models.ResModelDowntimeLog,
		ResID:        uuid.New(),
		UserID:       suite.assignee.ID,
		User:         *suite.assignee,
		ActivityType: models.ActivityTypeTodo,
		Summary:      "Downtime requires review",
		State:        models.ActivityStatePlanned,
		DueDate:      time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
	}
}

func (suite *ActivityServiceTestSuite) TestListMine_FiltersByState() {
	suite.mockRepo.EXPECT().ListByUser(gomock.Any(), suite.assignee.ID, models.ActivityStatePlanned, 20, 0).
		Return([]models.Activity{*suite.plannedActivity()}, int64(1), nil)

	resp, err := suite.service.ListMine(context.Background(), suite.assignee.ID, models.ActivityStatePlanned, 1, 20)

	suite.Require().NoError(err)
	suite.Require().Len(resp.Activities, 1)
	assert.Equal(suite.T(), "Downtime requires review", resp.Activities[0].Summary)
	assert.Equal(suite.T(), "bob", resp.Activities[0].AssignedTo.Login)
}

func (suite *ActivityServiceTestSuite) TestListMine_InvalidState() {
	_, err := suite.service.ListMine(context.Background(), suite.assignee.ID, "snoozed", 1, 20)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *ActivityServiceTestSuite) TestListMine_RequiresUser() {
	_, err := suite.service.ListMine(context.Background(), uuid.Nil, "", 1, 20)
	assert.ErrorIs(suite.T(), err, apperrors.ErrMissingActingUser)
}

func (suite *ActivityServiceTestSuite) TestMarkDone_Assignee() {
	activity := suite.plannedActivity()
	suite.mockRepo.EXPECT().GetByID(gomock.Any(), activity.ID).Return(activity, nil)
	suite.mockRepo.EXPECT().Update(gomock.Any(), activity).Return(nil)

	resp, err := suite.service.MarkDone(context.Background(), suite.assignee.ID, activity.ID)

	suite.Require().NoError(err)
	assert.Equal(suite.T(), models.ActivityStateDone, resp.State)
	assert.NotNil(suite.T(), resp.DoneAt)
}

func (suite *ActivityServiceTestSuite) TestMarkDone_AlreadyDoneIsNoop() {
	activity := suite.plannedActivity()
	activity.MarkDone(time.Now())
	suite.mockRepo.EXPECT().GetByID(gomock.Any(), activity.ID).Return(activity, nil)

	resp, err := suite.service.MarkDone(context.Background(), suite.assignee.ID, activity.ID)

	suite.Require().NoError(err)
	assert.Equal(suite.T(), models.ActivityStateDone, resp.State)
}

func (suite *ActivityServiceTestSuite) TestMarkDone_OtherUser() {
	activity := suite.plannedActivity()
	suite.mockRepo.EXPECT().GetByID(gomock.Any(), activity.ID).Return(activity, nil)

	_, err := suite.service.MarkDone(context.Background(), uuid.New(), activity.ID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrActivityNotAssignedToUser)
}

func (suite *ActivityServiceTestSuite) TestMarkDone_NotFound() {
	id := uuid.New()
	suite.mockRepo.EXPECT().GetByID(gomock.Any(), id).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.service.MarkDone(context.Background(), suite.assignee.ID, id)

	assert.ErrorIs(suite.T(), err, apperrors.ErrActivityNotFound)
}

func TestActivityServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ActivityServiceTestSuite))
}
