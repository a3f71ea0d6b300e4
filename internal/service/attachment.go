package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/Top-Technologies/downtime/internal/database/models"
	apperrors "github.com/Top-Technologies/downtime/internal/errors"
	"github.com/Top-Technologies/downtime/internal/logger"
	"github.com/Top-Technologies/downtime/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	attachmentURLExpiry = time.Hour
	attachmentMaxSize   = 20 << 20
	noteAttachmentAdded = "Attachment %s added by %s"
)

// AttachmentUpload is a file received for a downtime log
type AttachmentUpload struct {
	FileName    string
	ContentType string
	Size        int64
	Reader      io.Reader
}

// AttachmentResponse represents an attachment with a temporary download link
type AttachmentResponse struct {
	ID          uuid.UUID `json:"id"`
	FileName    string    `json:"file_name"`
	ContentType string    `json:"content_type"`
	Size        int64     `json:"size"`
	URL         string    `json:"url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// AttachmentService stores files against downtime logs
type AttachmentService struct {
	repo     repository.AttachmentRepositoryInterface
	logRepo  repository.DowntimeLogRepositoryInterface
	userRepo repository.UserRepositoryInterface
	storage  ObjectStorage
	audit    AuditLogger
}

var _ AttachmentServiceInterface = (*AttachmentService)(nil)

// NewAttachmentService creates a new attachment service. A nil storage disables uploads.
func NewAttachmentService(repo repository.AttachmentRepositoryInterface, logRepo repository.DowntimeLogRepositoryInterface, userRepo repository.UserRepositoryInterface, storage ObjectStorage, audit AuditLogger) *AttachmentService {
	return &AttachmentService{
		repo:     repo,
		logRepo:  logRepo,
		userRepo: userRepo,
		storage:  storage,
		audit:    audit,
	}
}

// Upload stores file in object storage and links it to the downtime log
func (s *AttachmentService) Upload(ctx context.Context, actorID, logID uuid.UUID, file *AttachmentUpload) (*AttachmentResponse, error) {
	if s.storage == nil {
		return nil, apperrors.ErrStorageNotConfigured
	}
	if file == nil || strings.TrimSpace(file.FileName) == "" {
		return nil, apperrors.NewValidationError("file", "a file is required")
	}
	if file.Size <= 0 || file.Size > attachmentMaxSize {
		return nil, apperrors.NewValidationError("file", fmt.Sprintf("size must be between 1 and %d bytes", attachmentMaxSize))
	}

	actor, err := s.userRepo.GetByID(ctx, actorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMissingActingUser
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	log, err := s.logRepo.GetByID(ctx, logID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrDowntimeLogNotFound
		}
		return nil, fmt.Errorf("failed to get downtime log: %w", err)
	}

	contentType := file.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	name := path.Base(file.FileName)
	key := fmt.Sprintf("%s/%s/%s%s", models.ResModelDowntimeLog, log.ID, uuid.New().String(), strings.ToLower(path.Ext(name)))

	if err := s.storage.PutObject(ctx, key, file.Reader, file.Size, contentType); err != nil {
		return nil, fmt.Errorf("failed to store attachment: %w", err)
	}

	attachment := &models.Attachment{
		ResModel:     models.ResModelDowntimeLog,
		ResID:        log.ID,
		FileName:     name,
		ObjectKey:    key,
		ContentType:  contentType,
		Size:         file.Size,
		UploadedByID: actor.ID,
	}
	attachment.CreatedBy = actor.Login
	if err := s.repo.Create(ctx, attachment); err != nil {
		return nil, fmt.Errorf("failed to save attachment: %w", err)
	}

	if err := s.audit.PostNote(ctx, models.ResModelDowntimeLog, log.ID, actor, fmt.Sprintf(noteAttachmentAdded, name, actor.DisplayName())); err != nil {
		logger.WithContext(ctx).WithError(err).Warn("Failed to post attachment note")
	}

	return s.toResponse(ctx, attachment), nil
}

// List returns the attachments of a downtime log with fresh download links
func (s *AttachmentService) List(ctx context.Context, logID uuid.UUID) ([]AttachmentResponse, error) {
	if _, err := s.logRepo.GetByID(ctx, logID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrDowntimeLogNotFound
		}
		return nil, fmt.Errorf("failed to get downtime log: %w", err)
	}

	attachments, err := s.repo.ListByRecord(ctx, models.ResModelDowntimeLog, logID)
	if err != nil {
		return nil, fmt.Errorf("failed to list attachments: %w", err)
	}

	out := make([]AttachmentResponse, len(attachments))
	for i := range attachments {
		out[i] = *s.toResponse(ctx, &attachments[i])
	}
	return out, nil
}

func (s *AttachmentService) toResponse(ctx context.Context, a *models.Attachment) *AttachmentResponse {
	resp := &AttachmentResponse{
		ID:          a.ID,
		FileName:    a.FileName,
		ContentType: a.ContentType,
		Size:        a.Size,
		CreatedAt:   a.CreatedAt,
	}
	if s.storage != nil {
		url, err := s.storage.PresignedGetURL(ctx, a.ObjectKey, attachmentURLExpiry)
		if err != nil {
			logger.WithContext(ctx).WithError(err).WithField("object_key", a.ObjectKey).Warn("Failed to sign attachment URL")
		} else {
			resp.URL = url
		}
	}
	return resp
}
