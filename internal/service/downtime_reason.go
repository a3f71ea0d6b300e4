package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Top-Technologies/downtime/internal/database/models"
	apperrors "github.com/Top-Technologies/downtime/internal/errors"
	"github.com/Top-Technologies/downtime/internal/logger"
	"github.com/Top-Technologies/downtime/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DowntimeReasonService manages the downtime reason catalog
type DowntimeReasonService struct {
	reasonRepo repository.DowntimeReasonRepositoryInterface
	deptRepo   repository.DepartmentRepositoryInterface
	userRepo   repository.UserRepositoryInterface
	cache      ReasonCache
	validator  *validator.Validate
}

var _ DowntimeReasonServiceInterface = (*DowntimeReasonService)(nil)

// NewDowntimeReasonService creates a new downtime reason service. cache may be nil.
func NewDowntimeReasonService(reasonRepo repository.DowntimeReasonRepositoryInterface, deptRepo repository.DepartmentRepositoryInterface, userRepo repository.UserRepositoryInterface, cache ReasonCache, validator *validator.Validate) *DowntimeReasonService {
	return &DowntimeReasonService{
		reasonRepo: reasonRepo,
		deptRepo:   deptRepo,
		userRepo:   userRepo,
		cache:      cache,
		validator:  validator,
	}
}

// CreateDowntimeReasonRequest represents the request to add a reason to the catalog
type CreateDowntimeReasonRequest struct {
	Name               string                  `json:"name" validate:"required,min=1,max=200"`
	Category           models.DowntimeCategory `json:"category,omitempty"`
	DepartmentID       uuid.UUID               `json:"department_id" validate:"required"`
	ResponsibleUserIDs []uuid.UUID             `json:"responsible_user_ids" validate:"required,min=1"`
	NotificationType   models.NotificationType `json:"notification_type,omitempty"`
	Active             *bool                   `json:"active,omitempty"`
}

// UpdateDowntimeReasonRequest represents a partial update of a reason.
// Changing department_id requires responsible_user_ids in the same request.
type UpdateDowntimeReasonRequest struct {
	Name               *string                  `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Category           *models.DowntimeCategory `json:"category,omitempty"`
	DepartmentID       *uuid.UUID               `json:"department_id,omitempty"`
	ResponsibleUserIDs []uuid.UUID              `json:"responsible_user_ids,omitempty"`
	NotificationType   *models.NotificationType `json:"notification_type,omitempty"`
	Active             *bool                    `json:"active,omitempty"`
}

// ListDowntimeReasonsRequest represents filters for the reason catalog.
// Active defaults to true so archived reasons stay out of pickers.
type ListDowntimeReasonsRequest struct {
	Active       *bool                   `form:"active" json:"active,omitempty"`
	All          bool                    `form:"all" json:"all,omitempty"`
	DepartmentID *uuid.UUID              `form:"department_id" json:"department_id,omitempty"`
	Category     models.DowntimeCategory `form:"category" json:"category,omitempty"`
	Page         int                     `form:"page" json:"page,omitempty"`
	PageSize     int                     `form:"page_size" json:"page_size,omitempty"`
}

// DowntimeReasonResponse represents a catalog entry
type DowntimeReasonResponse struct {
	ID               uuid.UUID               `json:"id"`
	Name             string                  `json:"name"`
	Category         models.DowntimeCategory `json:"category"`
	DepartmentID     uuid.UUID               `json:"department_id"`
	DepartmentName   string                  `json:"department_name"`
	ResponsibleUsers []UserSummary           `json:"responsible_users"`
	NotificationType models.NotificationType `json:"notification_type"`
	Active           bool                    `json:"active"`
}

// DowntimeReasonListResponse represents a paginated list of reasons
type DowntimeReasonListResponse struct {
	Reasons  []DowntimeReasonResponse `json:"reasons"`
	Total    int64                    `json:"total"`
	Page     int                      `json:"page"`
	PageSize int                      `json:"page_size"`
}

// Create adds a reason to the catalog
func (s *DowntimeReasonService) Create(ctx context.Context, req *CreateDowntimeReasonRequest) (*DowntimeReasonResponse, error) {
	if len(req.ResponsibleUserIDs) == 0 {
		return nil, apperrors.ErrResponsibleUsersRequired
	}
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}

	category := req.Category
	if category == "" {
		category = models.DowntimeCategoryOther
	}
	if !category.IsValid() {
		return nil, apperrors.ErrInvalidCategory
	}
	notification := req.NotificationType
	if notification == "" {
		notification = models.NotificationTypeActivity
	}
	if !notification.IsValid() {
		return nil, apperrors.ErrInvalidNotificationType
	}

	dept, err := s.loadDepartment(ctx, req.DepartmentID)
	if err != nil {
		return nil, err
	}
	users, err := s.loadUsers(ctx, req.ResponsibleUserIDs)
	if err != nil {
		return nil, err
	}

	reason := &models.DowntimeReason{
		Name:             req.Name,
		Category:         category,
		DepartmentID:     dept.ID,
		NotificationType: notification,
		Active:           req.Active == nil || *req.Active,
		ResponsibleUsers: users,
	}
	if err := s.reasonRepo.Create(ctx, reason); err != nil {
		return nil, fmt.Errorf("failed to create downtime reason: %w", err)
	}
	reason.Department = *dept
	s.invalidate(ctx)

	return toReasonResponse(reason), nil
}

// GetByID returns one catalog entry
func (s *DowntimeReasonService) GetByID(ctx context.Context, id uuid.UUID) (*DowntimeReasonResponse, error) {
	reason, err := s.reasonRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrDowntimeReasonNotFound
		}
		return nil, fmt.Errorf("failed to get downtime reason: %w", err)
	}
	return toReasonResponse(reason), nil
}

// List returns catalog entries ordered by name, served from the cache when possible
func (s *DowntimeReasonService) List(ctx context.Context, req *ListDowntimeReasonsRequest) (*DowntimeReasonListResponse, error) {
	if req == nil {
		req = &ListDowntimeReasonsRequest{}
	}
	if req.Category != "" && !req.Category.IsValid() {
		return nil, apperrors.ErrInvalidCategory
	}

	page, pageSize, limit, offset := normalizePagination(req.Page, req.PageSize)
	filter := repository.DowntimeReasonFilter{
		DepartmentID: req.DepartmentID,
		Category:     req.Category,
		Limit:        limit,
		Offset:       offset,
	}
	if !req.All {
		active := true
		if req.Active != nil {
			active = *req.Active
		}
		filter.Active = &active
	}

	key := reasonCacheKey(filter)
	if s.cache != nil {
		var cached DowntimeReasonListResponse
		hit, err := s.cache.Get(ctx, key, &cached)
		if err != nil {
			logger.WithContext(ctx).WithField("error", err.Error()).Warn("Reason cache read failed")
		} else if hit {
			return &cached, nil
		}
	}

	reasons, total, err := s.reasonRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list downtime reasons: %w", err)
	}

	items := make([]DowntimeReasonResponse, len(reasons))
	for i := range reasons {
		items[i] = *toReasonResponse(&reasons[i])
	}
	resp := &DowntimeReasonListResponse{
		Reasons:  items,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, resp); err != nil {
			logger.WithContext(ctx).WithField("error", err.Error()).Warn("Reason cache write failed")
		}
	}
	return resp, nil
}

// Update modifies a catalog entry. Moving it to another department clears the
// responsible users, so new ones must be supplied with the move.
func (s *DowntimeReasonService) Update(ctx context.Context, id uuid.UUID, req *UpdateDowntimeReasonRequest) (*DowntimeReasonResponse, error) {
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}

	reason, err := s.reasonRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrDowntimeReasonNotFound
		}
		return nil, fmt.Errorf("failed to get downtime reason: %w", err)
	}

	if req.Name != nil {
		reason.Name = *req.Name
	}
	if req.Category != nil {
		if !req.Category.IsValid() {
			return nil, apperrors.ErrInvalidCategory
		}
		reason.Category = *req.Category
	}
	if req.NotificationType != nil {
		if !req.NotificationType.IsValid() {
			return nil, apperrors.ErrInvalidNotificationType
		}
		reason.NotificationType = *req.NotificationType
	}
	if req.Active != nil {
		reason.Active = *req.Active
	}

	if req.DepartmentID != nil {
		dept, err := s.loadDepartment(ctx, *req.DepartmentID)
		if err != nil {
			return nil, err
		}
		if reason.SetDepartment(dept.ID) && req.ResponsibleUserIDs == nil {
			return nil, apperrors.ErrResponsibleUsersReselect
		}
		reason.Department = *dept
	}

	if req.ResponsibleUserIDs != nil {
		if len(req.ResponsibleUserIDs) == 0 {
			return nil, apperrors.ErrResponsibleUsersRequired
		}
		users, err := s.loadUsers(ctx, req.ResponsibleUserIDs)
		if err != nil {
			return nil, err
		}
		reason.ResponsibleUsers = users
	}

	if err := s.reasonRepo.Update(ctx, reason); err != nil {
		return nil, fmt.Errorf("failed to update downtime reason: %w", err)
	}
	s.invalidate(ctx)

	return toReasonResponse(reason), nil
}

func (s *DowntimeReasonService) loadDepartment(ctx context.Context, id uuid.UUID) (*models.Department, error) {
	dept, err := s.deptRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrDepartmentNotFound
		}
		return nil, fmt.Errorf("failed to get department: %w", err)
	}
	return dept, nil
}

// loadUsers resolves every id or fails with ErrUserNotFound
func (s *DowntimeReasonService) loadUsers(ctx context.Context, ids []uuid.UUID) ([]models.User, error) {
	unique := make([]uuid.UUID, 0, len(ids))
	seen := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}

	users, err := s.userRepo.GetByIDs(ctx, unique)
	if err != nil {
		return nil, fmt.Errorf("failed to load responsible users: %w", err)
	}
	if len(users) != len(unique) {
		return nil, apperrors.ErrUserNotFound
	}
	return users, nil
}

func (s *DowntimeReasonService) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		logger.WithContext(ctx).WithField("error", err.Error()).Warn("Reason cache invalidation failed")
	}
}

func reasonCacheKey(f repository.DowntimeReasonFilter) string {
	active := "all"
	if f.Active != nil {
		active = fmt.Sprintf("%t", *f.Active)
	}
	dept := "any"
	if f.DepartmentID != nil {
		dept = f.DepartmentID.String()
	}
	return fmt.Sprintf("active=%s:dept=%s:cat=%s:limit=%d:offset=%d", active, dept, f.Category, f.Limit, f.Offset)
}

func toReasonResponse(r *models.DowntimeReason) *DowntimeReasonResponse {
	return &DowntimeReasonResponse{
		ID:               r.ID,
		Name:             r.Name,
		Category:         r.Category,
		DepartmentID:     r.DepartmentID,
		DepartmentName:   r.Department.Name,
		ResponsibleUsers: toUserSummaries(r.ResponsibleUsers),
		NotificationType: r.NotificationType,
		Active:           r.Active,
	}
}
