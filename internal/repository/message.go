package repository

import (
	"context"

	"github.com/Top-Technologies/downtime/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// MessageRepository handles database operations for audit messages
type MessageRepository struct {
	db *gorm.DB
}

var _ MessageRepositoryInterface = (*MessageRepository)(nil)

// NewMessageRepository creates a new message repository
func NewMessageRepository(db *gorm.DB) *MessageRepository {
	return &MessageRepository{db: db}
}

// Create appends a message to a record's timeline
func (r *MessageRepository) Create(ctx context.Context, msg *models.Message) error {
	return conn(ctx, r.db).Omit(clause.Associations).Create(msg).Error
}

// ListByRecord returns a record's messages, oldest first
func (r *MessageRepository) ListByRecord(ctx context.Context, resModel string, resID uuid.UUID) ([]models.Message, error) {
	var msgs []models.Message
	err := conn(ctx, r.db).
		Preload("Author").
		Where("res_model = ? AND res_id = ?", resModel, resID).
		Order("created_at ASC").
		Find(&msgs).Error
	return msgs, err
}
