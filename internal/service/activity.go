package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Top-Technologies/downtime/internal/database/models"
	apperrors "github.com/Top-Technologies/downtime/internal/errors"
	"github.com/Top-Technologies/downtime/internal/logger"
	"github.com/Top-Technologies/downtime/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ActivityService lists and completes the to-dos assigned to a user
type ActivityService struct {
	repo repository.ActivityRepositoryInterface
	now  func() time.Time
}

var _ ActivityServiceInterface = (*ActivityService)(nil)

// NewActivityService creates a new activity service
func NewActivityService(repo repository.ActivityRepositoryInterface) *ActivityService {
	return &ActivityService{
		repo: repo,
		now:  time.Now,
	}
}

// ActivityResponse represents a scheduled to-do
type ActivityResponse struct {
	ID           uuid.UUID            `json:"id"`
	ResModel     string               `json:"res_model"`
	ResID        uuid.UUID            `json:"res_id"`
	ActivityType models.ActivityType  `json:"activity_type"`
	Summary      string               `json:"summary"`
	Note         string               `json:"note"`
	State        models.ActivityState `json:"state"`
	DueDate      time.Time            `json:"due_date"`
	DoneAt       *time.Time           `json:"done_at,omitempty"`
	AssignedTo   *UserSummary         `json:"assigned_to,omitempty"`
}

// ActivityListResponse represents a paginated list of activities
type ActivityListResponse struct {
	Activities []ActivityResponse `json:"activities"`
	Total      int64              `json:"total"`
	Page       int                `json:"page"`
	PageSize   int                `json:"page_size"`
}

// ListMine returns the activities assigned to userID, optionally in one state
func (s *ActivityService) ListMine(ctx context.Context, userID uuid.UUID, state models.ActivityState, page, pageSize int) (*ActivityListResponse, error) {
	if userID == uuid.Nil {
		return nil, apperrors.ErrMissingActingUser
	}
	if state != "" && !state.IsValid() {
		return nil, apperrors.NewValidationError("state", "unknown activity state")
	}
	page, pageSize, limit, offset := normalizePagination(page, pageSize)

	activities, total, err := s.repo.ListByUser(ctx, userID, state, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list activities: %w", err)
	}

	items := make([]ActivityResponse, len(activities))
	for i := range activities {
		items[i] = toActivityResponse(&activities[i])
	}
	return &ActivityListResponse{
		Activities: items,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
	}, nil
}

// MarkDone completes an activity. Only its assignee may do this; completing a done
// activity is a no-op.
func (s *ActivityService) MarkDone(ctx context.Context, actorID, id uuid.UUID) (*ActivityResponse, error) {
	activity, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrActivityNotFound
		}
		return nil, fmt.Errorf("failed to get activity: %w", err)
	}
	if activity.UserID != actorID {
		return nil, apperrors.ErrActivityNotAssignedToUser
	}

	if activity.State != models.ActivityStateDone {
		activity.MarkDone(s.now())
		if err := s.repo.Update(ctx, activity); err != nil {
			return nil, fmt.Errorf("failed to complete activity: %w", err)
		}
		logger.WithContext(ctx).WithField("activity_id", id).Info("Activity marked done")
	}

	resp := toActivityResponse(activity)
	return &resp, nil
}

func toActivityResponse(a *models.Activity) ActivityResponse {
	resp := ActivityResponse{
		ID:           a.ID,
		ResModel:     a.ResModel,
		ResID:        a.ResID,
		ActivityType: a.ActivityType,
		Summary:      a.Summary,
		Note:         a.Note,
		State:        a.State,
		DueDate:      a.DueDate,
		DoneAt:       a.DoneAt,
	}
	if a.User.ID != uuid.Nil {
		resp.AssignedTo = &UserSummary{ID: a.User.ID, Login: a.User.Login, Name: a.User.Name}
	}
	return resp
}
