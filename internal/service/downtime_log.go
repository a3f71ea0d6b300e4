package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Top-Technologies/downtime/internal/database/models"
	apperrors "github.com/Top-Technologies/downtime/internal/errors"
	"github.com/Top-Technologies/downtime/internal/logger"
	"github.com/Top-Technologies/downtime/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Texts posted on the downtime timeline and on review to-dos
const (
	noteCreated     = "Downtime Log created by %s"
	noteSubmitted   = "Downtime submitted by %s"
	noteUnlocked    = "Downtime unlocked for editing by %s"
	noteUpdated     = "Downtime updated by %s"
	noteApproved    = "Downtime approved by %s"
	noteNeedsUpdate = "Downtime modified by %s, requires re-submission"
	reviewSummary   = "Downtime requires review"
	reviewNote      = "Downtime reported: %s"
	updatedSummary  = "Downtime updated"
	updatedNote     = "Downtime log was modified after submission"
)

// referencePending is the placeholder reference replaced by the next sequence value
const referencePending = "New"

// DowntimeLogService implements the downtime log approval workflow
type DowntimeLogService struct {
	txManager            repository.TransactionManagerInterface
	logRepo              repository.DowntimeLogRepositoryInterface
	reasonRepo           repository.DowntimeReasonRepositoryInterface
	userRepo             repository.UserRepositoryInterface
	orderRepo            repository.ProductionOrderRepositoryInterface
	sequenceRepo         repository.SequenceRepositoryInterface
	messageRepo          repository.MessageRepositoryInterface
	activityRepo         repository.ActivityRepositoryInterface
	audit                AuditLogger
	scheduler            TaskScheduler
	validator            *validator.Validate
	enforceEndAfterStart bool
}

var _ DowntimeLogServiceInterface = (*DowntimeLogService)(nil)

// DowntimeLogDeps groups the collaborators of DowntimeLogService
type DowntimeLogDeps struct {
	TxManager    repository.TransactionManagerInterface
	LogRepo      repository.DowntimeLogRepositoryInterface
	ReasonRepo   repository.DowntimeReasonRepositoryInterface
	UserRepo     repository.UserRepositoryInterface
	OrderRepo    repository.ProductionOrderRepositoryInterface
	SequenceRepo repository.SequenceRepositoryInterface
	MessageRepo  repository.MessageRepositoryInterface
	ActivityRepo repository.ActivityRepositoryInterface
	Audit        AuditLogger
	Scheduler    TaskScheduler
	Validator    *validator.Validate
	// EnforceEndAfterStart rejects logs whose end time is before their start time
	EnforceEndAfterStart bool
}

// NewDowntimeLogService creates a new downtime log service
func NewDowntimeLogService(deps DowntimeLogDeps) *DowntimeLogService {
	return &DowntimeLogService{
		txManager:            deps.TxManager,
		logRepo:              deps.LogRepo,
		reasonRepo:           deps.ReasonRepo,
		userRepo:             deps.UserRepo,
		orderRepo:            deps.OrderRepo,
		sequenceRepo:         deps.SequenceRepo,
		messageRepo:          deps.MessageRepo,
		activityRepo:         deps.ActivityRepo,
		audit:                deps.Audit,
		scheduler:            deps.Scheduler,
		validator:            deps.Validator,
		enforceEndAfterStart: deps.EnforceEndAfterStart,
	}
}

// CreateDowntimeLogRequest represents the request to record a downtime
type CreateDowntimeLogRequest struct {
	Reference         string     `json:"reference,omitempty" validate:"max=64"`
	ProductionOrderID *uuid.UUID `json:"production_order_id,omitempty"`
	StartTime         *time.Time `json:"start_time" validate:"required"`
	EndTime           *time.Time `json:"end_time" validate:"required"`
	ReasonID          uuid.UUID  `json:"reason_id" validate:"required"`
	Description       string     `json:"description,omitempty"`
}

// UpdateDowntimeLogRequest represents a partial field write. Absent fields are untouched.
type UpdateDowntimeLogRequest struct {
	ProductionOrderID    *uuid.UUID `json:"production_order_id,omitempty"`
	ClearProductionOrder bool       `json:"clear_production_order,omitempty"`
	StartTime            *time.Time `json:"start_time,omitempty"`
	EndTime              *time.Time `json:"end_time,omitempty"`
	ReasonID             *uuid.UUID `json:"reason_id,omitempty"`
	Description          *string    `json:"description,omitempty"`
}

// ListDowntimeLogsRequest represents filters for listing downtime logs
type ListDowntimeLogsRequest struct {
	State             models.DowntimeState `form:"state" json:"state,omitempty"`
	ReasonID          *uuid.UUID           `form:"reason_id" json:"reason_id,omitempty"`
	ProductionOrderID *uuid.UUID           `form:"production_order_id" json:"production_order_id,omitempty"`
	ReportedByMe      bool                 `form:"mine" json:"mine,omitempty"`
	ToReview          bool                 `form:"to_review" json:"to_review,omitempty"`
	From              *time.Time           `form:"from" time_format:"2006-01-02T15:04:05Z07:00" json:"from,omitempty"`
	To                *time.Time           `form:"to" time_format:"2006-01-02T15:04:05Z07:00" json:"to,omitempty"`
	Page              int                  `form:"page" json:"page,omitempty"`
	PageSize          int                  `form:"page_size" json:"page_size,omitempty"`
}

// UserSummary is the short form of a user embedded in other responses
type UserSummary struct {
	ID    uuid.UUID `json:"id"`
	Login string    `json:"login"`
	Name  string    `json:"name"`
}

// DowntimeLogResponse represents a downtime log as seen by one viewer
type DowntimeLogResponse struct {
	ID                 uuid.UUID               `json:"id"`
	Reference          string                  `json:"reference"`
	ProductionOrderID  *uuid.UUID              `json:"production_order_id,omitempty"`
	ProductionOrderRef string                  `json:"production_order_reference,omitempty"`
	StartTime          time.Time               `json:"start_time"`
	EndTime            time.Time               `json:"end_time"`
	DurationMinutes    float64                 `json:"duration_minutes"`
	ReasonID           uuid.UUID               `json:"reason_id"`
	ReasonName         string                  `json:"reason_name"`
	Category           models.DowntimeCategory `json:"category"`
	ResponsibleUsers   []UserSummary           `json:"responsible_users"`
	ReportedBy         UserSummary             `json:"reported_by"`
	Description        string                  `json:"description"`
	State              models.DowntimeState    `json:"state"`
	IsEditable         bool                    `json:"is_editable"`
	WasSubmitted       bool                    `json:"was_submitted"`
	IsReporter         bool                    `json:"is_reporter"`
	IsResponsible      bool                    `json:"is_responsible"`
	EndBeforeStart     bool                    `json:"end_before_start,omitempty"`
	CreatedAt          time.Time               `json:"created_at"`
	UpdatedAt          time.Time               `json:"updated_at"`
}

// DowntimeLogListResponse represents a paginated list of downtime logs
type DowntimeLogListResponse struct {
	DowntimeLogs []DowntimeLogResponse `json:"downtime_logs"`
	Total        int64                 `json:"total"`
	Page         int                   `json:"page"`
	PageSize     int                   `json:"page_size"`
}

// MessageResponse represents one timeline note
type MessageResponse struct {
	ID        uuid.UUID    `json:"id"`
	Body      string       `json:"body"`
	Author    *UserSummary `json:"author,omitempty"`
	CreatedAt time.Time    `json:"created_at"`
}

// Create records a new draft downtime reported by actorID
func (s *DowntimeLogService) Create(ctx context.Context, actorID uuid.UUID, req *CreateDowntimeLogRequest) (*DowntimeLogResponse, error) {
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}
	if err := s.checkInterval(*req.StartTime, *req.EndTime); err != nil {
		return nil, err
	}

	var created *models.DowntimeLog
	err := s.txManager.WithinTransaction(ctx, func(ctx context.Context) error {
		actor, err := s.loadActor(ctx, actorID)
		if err != nil {
			return err
		}

		reason, err := s.loadSelectableReason(ctx, req.ReasonID)
		if err != nil {
			return err
		}

		log := models.NewDowntimeLog(actor.ID)
		log.ReasonID = reason.ID
		log.StartTime = *req.StartTime
		log.EndTime = *req.EndTime
		log.Description = req.Description
		log.CreatedBy = actor.Login
		log.UpdatedBy = actor.Login

		if req.ProductionOrderID != nil {
			order, err := s.loadOrder(ctx, *req.ProductionOrderID)
			if err != nil {
				return err
			}
			log.ProductionOrderID = &order.ID
			log.ProductionOrder = order
		}

		log.Reference, err = s.assignReference(ctx, req.Reference)
		if err != nil {
			return err
		}

		log.ComputeDuration()
		if err := s.logRepo.Create(ctx, log); err != nil {
			return fmt.Errorf("failed to create downtime log: %w", err)
		}

		if err := s.audit.PostNote(ctx, models.ResModelDowntimeLog, log.ID, actor, fmt.Sprintf(noteCreated, actor.DisplayName())); err != nil {
			return err
		}

		log.Reason = *reason
		log.ReportedBy = *actor
		created = log
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"reference": created.Reference,
		"reason":    created.Reason.Name,
	}).Info("Downtime log created")

	return s.toResponse(created, actorID), nil
}

// GetByID returns a downtime log with viewer-specific flags
func (s *DowntimeLogService) GetByID(ctx context.Context, viewerID, id uuid.UUID) (*DowntimeLogResponse, error) {
	log, err := s.logRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrDowntimeLogNotFound
		}
		return nil, fmt.Errorf("failed to get downtime log: %w", err)
	}
	return s.toResponse(log, viewerID), nil
}

// List returns downtime logs matching the filters, newest reference first
func (s *DowntimeLogService) List(ctx context.Context, viewerID uuid.UUID, req *ListDowntimeLogsRequest) (*DowntimeLogListResponse, error) {
	if req == nil {
		req = &ListDowntimeLogsRequest{}
	}
	filter, err := s.buildFilter(viewerID, req)
	if err != nil {
		return nil, err
	}

	page, pageSize, limit, offset := normalizePagination(req.Page, req.PageSize)
	filter.Limit = limit
	filter.Offset = offset

	logs, total, err := s.logRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list downtime logs: %w", err)
	}

	items := make([]DowntimeLogResponse, len(logs))
	for i := range logs {
		items[i] = *s.toResponse(&logs[i], viewerID)
	}

	return &DowntimeLogListResponse{
		DowntimeLogs: items,
		Total:        total,
		Page:         page,
		PageSize:     pageSize,
	}, nil
}

// Update applies a field write. A tracked change on a submitted log that
// was unlocked for editing moves it to needs_update.
func (s *DowntimeLogService) Update(ctx context.Context, actorID, id uuid.UUID, req *UpdateDowntimeLogRequest) (*DowntimeLogResponse, error) {
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}

	return s.withLockedLog(ctx, actorID, id, func(ctx context.Context, actor *models.User, log *models.DowntimeLog) error {
		changes := models.DowntimeLogChanges{
			StartTime:         req.StartTime,
			EndTime:           req.EndTime,
			Description:       req.Description,
			ProductionOrderID: req.ProductionOrderID,
			ClearOrder:        req.ClearProductionOrder,
		}

		var newReason *models.DowntimeReason
		if req.ReasonID != nil && *req.ReasonID != log.ReasonID {
			reason, err := s.loadSelectableReason(ctx, *req.ReasonID)
			if err != nil {
				return err
			}
			newReason = reason
			changes.ReasonID = req.ReasonID
		}

		var newOrder *models.ProductionOrder
		if req.ProductionOrderID != nil && !req.ClearProductionOrder {
			order, err := s.loadOrder(ctx, *req.ProductionOrderID)
			if err != nil {
				return err
			}
			newOrder = order
		}

		changed := log.Apply(changes)
		if len(changed) == 0 {
			return nil
		}
		if err := s.checkInterval(log.StartTime, log.EndTime); err != nil {
			return err
		}

		flagged := log.FlagForResubmission(changed)
		log.UpdatedBy = actor.Login
		if err := s.logRepo.Update(ctx, log); err != nil {
			return fmt.Errorf("failed to update downtime log: %w", err)
		}

		if newReason != nil {
			log.Reason = *newReason
		}
		if newOrder != nil {
			log.ProductionOrder = newOrder
		}

		if flagged {
			return s.audit.PostNote(ctx, models.ResModelDowntimeLog, log.ID, actor, fmt.Sprintf(noteNeedsUpdate, actor.DisplayName()))
		}
		return nil
	})
}

// Submit sends the log for review and notifies the responsible users.
// It is accepted from any state.
func (s *DowntimeLogService) Submit(ctx context.Context, actorID, id uuid.UUID) (*DowntimeLogResponse, error) {
	return s.withLockedLog(ctx, actorID, id, func(ctx context.Context, actor *models.User, log *models.DowntimeLog) error {
		if log.State == models.DowntimeStateApproved {
			logger.WithContext(ctx).WithField("reference", log.Reference).Warn("Submitting an already approved downtime log")
		}

		log.MarkSubmitted()
		log.UpdatedBy = actor.Login
		if err := s.logRepo.Update(ctx, log); err != nil {
			return fmt.Errorf("failed to submit downtime log: %w", err)
		}

		if err := s.audit.PostNote(ctx, models.ResModelDowntimeLog, log.ID, actor, fmt.Sprintf(noteSubmitted, actor.DisplayName())); err != nil {
			return err
		}
		return s.notifyResponsible(ctx, log, reviewSummary, fmt.Sprintf(reviewNote, log.Reason.Name))
	})
}

// Edit unlocks the log for editing. Only the reporter may do this.
func (s *DowntimeLogService) Edit(ctx context.Context, actorID, id uuid.UUID) (*DowntimeLogResponse, error) {
	return s.withLockedLog(ctx, actorID, id, func(ctx context.Context, actor *models.User, log *models.DowntimeLog) error {
		if !log.IsReporter(actor.ID) {
			return apperrors.ErrOnlyReporterCanEdit
		}

		log.Unlock()
		log.UpdatedBy = actor.Login
		if err := s.logRepo.Update(ctx, log); err != nil {
			return fmt.Errorf("failed to unlock downtime log: %w", err)
		}

		return s.audit.PostNote(ctx, models.ResModelDowntimeLog, log.ID, actor, fmt.Sprintf(noteUnlocked, actor.DisplayName()))
	})
}

// UpdateSubmit locks the log again after editing and re-notifies the responsible users
func (s *DowntimeLogService) UpdateSubmit(ctx context.Context, actorID, id uuid.UUID) (*DowntimeLogResponse, error) {
	return s.withLockedLog(ctx, actorID, id, func(ctx context.Context, actor *models.User, log *models.DowntimeLog) error {
		log.Lock()
		log.UpdatedBy = actor.Login
		if err := s.logRepo.Update(ctx, log); err != nil {
			return fmt.Errorf("failed to lock downtime log: %w", err)
		}

		if err := s.audit.PostNote(ctx, models.ResModelDowntimeLog, log.ID, actor, fmt.Sprintf(noteUpdated, actor.DisplayName())); err != nil {
			return err
		}
		return s.notifyResponsible(ctx, log, updatedSummary, updatedNote)
	})
}

// Approve marks the log approved. Only responsible users of its reason may do this.
func (s *DowntimeLogService) Approve(ctx context.Context, actorID, id uuid.UUID) (*DowntimeLogResponse, error) {
	return s.withLockedLog(ctx, actorID, id, func(ctx context.Context, actor *models.User, log *models.DowntimeLog) error {
		if !log.IsResponsible(actor.ID) {
			return apperrors.ErrOnlyResponsibleCanApprove
		}

		log.MarkApproved()
		log.UpdatedBy = actor.Login
		if err := s.logRepo.Update(ctx, log); err != nil {
			return fmt.Errorf("failed to approve downtime log: %w", err)
		}

		return s.audit.PostNote(ctx, models.ResModelDowntimeLog, log.ID, actor, fmt.Sprintf(noteApproved, actor.DisplayName()))
	})
}

// GetMessages returns the timeline notes of a downtime log, oldest first
func (s *DowntimeLogService) GetMessages(ctx context.Context, id uuid.UUID) ([]MessageResponse, error) {
	if err := s.ensureExists(ctx, id); err != nil {
		return nil, err
	}

	msgs, err := s.messageRepo.ListByRecord(ctx, models.ResModelDowntimeLog, id)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}

	out := make([]MessageResponse, len(msgs))
	for i, m := range msgs {
		out[i] = MessageResponse{ID: m.ID, Body: m.Body, CreatedAt: m.CreatedAt}
		if m.Author != nil {
			out[i].Author = &UserSummary{ID: m.Author.ID, Login: m.Author.Login, Name: m.Author.Name}
		}
	}
	return out, nil
}

// GetActivities returns the to-dos scheduled against a downtime log
func (s *DowntimeLogService) GetActivities(ctx context.Context, id uuid.UUID) ([]ActivityResponse, error) {
	if err := s.ensureExists(ctx, id); err != nil {
		return nil, err
	}

	activities, err := s.activityRepo.ListByRecord(ctx, models.ResModelDowntimeLog, id)
	if err != nil {
		return nil, fmt.Errorf("failed to list activities: %w", err)
	}

	out := make([]ActivityResponse, len(activities))
	for i := range activities {
		out[i] = toActivityResponse(&activities[i])
	}
	return out, nil
}

// withLockedLog loads the actor and the row-locked log in one transaction, runs fn and
// returns the resulting log as seen by the actor
func (s *DowntimeLogService) withLockedLog(ctx context.Context, actorID, id uuid.UUID, fn func(ctx context.Context, actor *models.User, log *models.DowntimeLog) error) (*DowntimeLogResponse, error) {
	var result *models.DowntimeLog
	err := s.txManager.WithinTransaction(ctx, func(ctx context.Context) error {
		actor, err := s.loadActor(ctx, actorID)
		if err != nil {
			return err
		}

		log, err := s.logRepo.GetForUpdate(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrDowntimeLogNotFound
			}
			return fmt.Errorf("failed to load downtime log: %w", err)
		}

		if err := fn(ctx, actor, log); err != nil {
			return err
		}
		result = log
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"reference": result.Reference,
		"state":     result.State,
		"editable":  result.IsEditable,
	}).Info("Downtime log updated")

	return s.toResponse(result, actorID), nil
}

func (s *DowntimeLogService) notifyResponsible(ctx context.Context, log *models.DowntimeLog, summary, note string) error {
	if !log.Reason.NotifiesByActivity() {
		return nil
	}
	for _, user := range log.Reason.ResponsibleUsers {
		if err := s.scheduler.ScheduleActivity(ctx, models.ResModelDowntimeLog, log.ID, user.ID, summary, note); err != nil {
			return err
		}
	}
	return nil
}

func (s *DowntimeLogService) assignReference(ctx context.Context, requested string) (string, error) {
	requested = strings.TrimSpace(requested)
	if requested == "" || requested == referencePending {
		ref, err := s.sequenceRepo.NextByCode(ctx, models.SequenceCodeDowntime)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return "", apperrors.ErrSequenceNotFound
			}
			return "", fmt.Errorf("failed to allocate reference: %w", err)
		}
		return ref, nil
	}

	_, err := s.logRepo.GetByReference(ctx, requested)
	if err == nil {
		return "", apperrors.ErrDowntimeLogExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", fmt.Errorf("failed to check reference: %w", err)
	}
	return requested, nil
}

func (s *DowntimeLogService) checkInterval(start, end time.Time) error {
	if s.enforceEndAfterStart && end.Before(start) {
		return apperrors.ErrEndBeforeStart
	}
	return nil
}

func (s *DowntimeLogService) loadActor(ctx context.Context, actorID uuid.UUID) (*models.User, error) {
	if actorID == uuid.Nil {
		return nil, apperrors.ErrMissingActingUser
	}
	actor, err := s.userRepo.GetByID(ctx, actorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMissingActingUser
		}
		return nil, fmt.Errorf("failed to load acting user: %w", err)
	}
	return actor, nil
}

func (s *DowntimeLogService) loadSelectableReason(ctx context.Context, id uuid.UUID) (*models.DowntimeReason, error) {
	reason, err := s.reasonRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewValidationError("reason_id", "downtime reason not found")
		}
		return nil, fmt.Errorf("failed to load downtime reason: %w", err)
	}
	if !reason.Active {
		return nil, apperrors.ErrInactiveReason
	}
	return reason, nil
}

func (s *DowntimeLogService) loadOrder(ctx context.Context, id uuid.UUID) (*models.ProductionOrder, error) {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewValidationError("production_order_id", "production order not found")
		}
		return nil, fmt.Errorf("failed to load production order: %w", err)
	}
	return order, nil
}

func (s *DowntimeLogService) ensureExists(ctx context.Context, id uuid.UUID) error {
	if _, err := s.logRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrDowntimeLogNotFound
		}
		return fmt.Errorf("failed to get downtime log: %w", err)
	}
	return nil
}

func (s *DowntimeLogService) buildFilter(viewerID uuid.UUID, req *ListDowntimeLogsRequest) (repository.DowntimeLogFilter, error) {
	filter := repository.DowntimeLogFilter{
		State:             req.State,
		ReasonID:          req.ReasonID,
		ProductionOrderID: req.ProductionOrderID,
		From:              req.From,
		To:                req.To,
	}
	if req.State != "" && !req.State.IsValid() {
		return filter, apperrors.ErrInvalidState
	}
	if req.ReportedByMe {
		id := viewerID
		filter.ReportedByID = &id
	}
	if req.ToReview {
		id := viewerID
		filter.ResponsibleUserID = &id
	}
	return filter, nil
}

func (s *DowntimeLogService) toResponse(log *models.DowntimeLog, viewerID uuid.UUID) *DowntimeLogResponse {
	resp := &DowntimeLogResponse{
		ID:                log.ID,
		Reference:         log.Reference,
		ProductionOrderID: log.ProductionOrderID,
		StartTime:         log.StartTime,
		EndTime:           log.EndTime,
		DurationMinutes:   log.DurationMinutes,
		ReasonID:          log.ReasonID,
		ReasonName:        log.Reason.Name,
		Category:          log.Category(),
		ResponsibleUsers:  toUserSummaries(log.Reason.ResponsibleUsers),
		ReportedBy: UserSummary{
			ID:    log.ReportedByID,
			Login: log.ReportedBy.Login,
			Name:  log.ReportedBy.Name,
		},
		Description:    log.Description,
		State:          log.State,
		IsEditable:     log.IsEditable,
		WasSubmitted:   log.WasSubmitted,
		IsReporter:     log.IsReporter(viewerID),
		IsResponsible:  log.IsResponsible(viewerID),
		EndBeforeStart: log.DurationMinutes < 0,
		CreatedAt:      log.CreatedAt,
		UpdatedAt:      log.UpdatedAt,
	}
	if log.ProductionOrder != nil {
		resp.ProductionOrderRef = log.ProductionOrder.Reference
	}
	return resp
}

func toUserSummaries(users []models.User) []UserSummary {
	out := make([]UserSummary, len(users))
	for i, u := range users {
		out[i] = UserSummary{ID: u.ID, Login: u.Login, Name: u.Name}
	}
	return out
}
