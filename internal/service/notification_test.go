package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Top-Technologies/downtime/internal/database/models"
	"github.com/Top-Technologies/downtime/internal/mocks"
	"github.com/Top-Technologies/downtime/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestNotificationService_PostNote(t *testing.T) {
	ctrl := gomock.NewController(t)
	messageRepo := mocks.NewMockMessageRepositoryInterface(ctrl)
	svc := service.NewNotificationService(messageRepo, mocks.NewMockActivityRepositoryInterface(ctrl))

	author := newTestUser("alice", "Alice Operator")
	resID := uuid.New()

	messageRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, msg *models.Message) error {
			assert.Equal(t, models.ResModelDowntimeLog, msg.ResModel)
			assert.Equal(t, resID, msg.ResID)
			assert.Equal(t, "Downtime submitted by Alice Operator", msg.Body)
			require.NotNil(t, msg.AuthorID)
			assert.Equal(t, author.ID, *msg.AuthorID)
			assert.Equal(t, "alice", msg.CreatedBy)
			return nil
		})

	err := svc.PostNote(context.Background(), models.ResModelDowntimeLog, resID, author, "Downtime submitted by Alice Operator")
	assert.NoError(t, err)
}

func TestNotificationService_PostNote_WithoutAuthor(t *testing.T) {
	ctrl := gomock.NewController(t)
	messageRepo := mocks.NewMockMessageRepositoryInterface(ctrl)
	svc := service.NewNotificationService(messageRepo, mocks.NewMockActivityRepositoryInterface(ctrl))

	messageRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, msg *models.Message) error {
			assert.Nil(t, msg.AuthorID)
			return errors.New("insert failed")
		})

	err := svc.PostNote(context.Background(), models.ResModelDowntimeLog, uuid.New(), nil, "note")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "insert failed")
}

func TestNotificationService_ScheduleActivity(t *testing.T) {
	ctrl := gomock.NewController(t)
	activityRepo := mocks.NewMockActivityRepositoryInterface(ctrl)
	svc := service.NewNotificationService(mocks.NewMockMessageRepositoryInterface(ctrl), activityRepo)

	resID := uuid.New()
	userID := uuid.New()
	today := time.Now()

	activityRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, a *models.Activity) error {
			assert.Equal(t, userID, a.UserID)
			assert.Equal(t, resID, a.ResID)
			assert.Equal(t, models.ActivityTypeTodo, a.ActivityType)
			assert.Equal(t, models.ActivityStatePlanned, a.State)
			assert.Equal(t, "Downtime requires review", a.Summary)
			assert.Equal(t, "Downtime reported: Conveyor jam", a.Note)
			assert.Equal(t, today.Day(), a.DueDate.Day())
			assert.Zero(t, a.DueDate.Hour())
			return nil
		})

	err := svc.ScheduleActivity(context.Background(), models.ResModelDowntimeLog, resID, userID, "Downtime requires review", "Downtime reported: Conveyor jam")
	assert.NoError(t, err)
}
