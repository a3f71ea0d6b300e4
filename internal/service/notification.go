package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Top-Technologies/downtime/internal/database/models"
	"github.com/Top-Technologies/downtime/internal/logger"
	"github.com/Top-Technologies/downtime/internal/repository"

	"github.com/google/uuid"
)

// NotificationService persists audit notes and to-do activities. It is the
// AuditLogger and TaskScheduler used by the downtime workflow.
type NotificationService struct {
	messageRepo  repository.MessageRepositoryInterface
	activityRepo repository.ActivityRepositoryInterface
	now          func() time.Time
}

var (
	_ AuditLogger   = (*NotificationService)(nil)
	_ TaskScheduler = (*NotificationService)(nil)
)

// NewNotificationService creates a new notification service
func NewNotificationService(messageRepo repository.MessageRepositoryInterface, activityRepo repository.ActivityRepositoryInterface) *NotificationService {
	return &NotificationService{
		messageRepo:  messageRepo,
		activityRepo: activityRepo,
		now:          time.Now,
	}
}

// PostNote appends body to the record's timeline
func (s *NotificationService) PostNote(ctx context.Context, resModel string, resID uuid.UUID, author *models.User, body string) error {
	msg := &models.Message{
		ResModel: resModel,
		ResID:    resID,
		Body:     body,
	}
	if author != nil {
		msg.AuthorID = &author.ID
		msg.CreatedBy = author.Login
	}
	if err := s.messageRepo.Create(ctx, msg); err != nil {
		return fmt.Errorf("failed to post note: %w", err)
	}
	return nil
}

// ScheduleActivity creates a planned to-do for userID, due today
func (s *NotificationService) ScheduleActivity(ctx context.Context, resModel string, resID uuid.UUID, userID uuid.UUID, summary, note string) error {
	now := s.now()
	activity := &models.Activity{
		ResModel:     resModel,
		ResID:        resID,
		UserID:       userID,
		ActivityType: models.ActivityTypeTodo,
		Summary:      summary,
		Note:         note,
		State:        models.ActivityStatePlanned,
		DueDate:      time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()),
	}
	if err := s.activityRepo.Create(ctx, activity); err != nil {
		return fmt.Errorf("failed to schedule activity: %w", err)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"res_model": resModel,
		"res_id":    resID,
		"assignee":  userID,
		"summary":   summary,
	}).Debug("Scheduled activity")
	return nil
}
