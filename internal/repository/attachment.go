package repository

import (
	"context"

	"github.com/Top-Technologies/downtime/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AttachmentRepository handles database operations for attachment metadata
type AttachmentRepository struct {
	db *gorm.DB
}

var _ AttachmentRepositoryInterface = (*AttachmentRepository)(nil)

// NewAttachmentRepository creates a new attachment repository
func NewAttachmentRepository(db *gorm.DB) *AttachmentRepository {
	return &AttachmentRepository{db: db}
}

// Create stores attachment metadata
func (r *AttachmentRepository) Create(ctx context.Context, attachment *models.Attachment) error {
	return conn(ctx, r.db).Create(attachment).Error
}

// GetByID retrieves an attachment by ID
func (r *AttachmentRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Attachment, error) {
	var attachment models.Attachment
	err := conn(ctx, r.db).First(&attachment, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &attachment, nil
}

// ListByRecord returns the attachments of a record
func (r *AttachmentRepository) ListByRecord(ctx context.Context, resModel string, resID uuid.UUID) ([]models.Attachment, error) {
	var attachments []models.Attachment
	err := conn(ctx, r.db).
		Where("res_model = ? AND res_id = ?", resModel, resID).
		Order("created_at ASC").
		Find(&attachments).Error
	return attachments, err
}
