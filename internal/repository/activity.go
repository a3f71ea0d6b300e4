package repository

import (
	"context"

	"github.com/Top-Technologies/downtime/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ActivityRepository handles database operations for scheduled activities
type ActivityRepository struct {
	db *gorm.DB
}

var _ ActivityRepositoryInterface = (*ActivityRepository)(nil)

// NewActivityRepository creates a new activity repository
func NewActivityRepository(db *gorm.DB) *ActivityRepository {
	return &ActivityRepository{db: db}
}

// Create schedules a new activity
func (r *ActivityRepository) Create(ctx context.Context, activity *models.Activity) error {
	return conn(ctx, r.db).Omit(clause.Associations).Create(activity).Error
}

// GetByID retrieves an activity by ID
func (r *ActivityRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Activity, error) {
	var activity models.Activity
	err := conn(ctx, r.db).Preload("User").First(&activity, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &activity, nil
}

// ListByRecord returns the activities scheduled against a record
func (r *ActivityRepository) ListByRecord(ctx context.Context, resModel string, resID uuid.UUID) ([]models.Activity, error) {
	var activities []models.Activity
	err := conn(ctx, r.db).
		Preload("User").
		Where("res_model = ? AND res_id = ?", resModel, resID).
		Order("created_at ASC").
		Find(&activities).Error
	return activities, err
}

// ListByUser returns the activities assigned to a user, optionally filtered by state
func (r *ActivityRepository) ListByUser(ctx context.Context, userID uuid.UUID, state models.ActivityState, limit, offset int) ([]models.Activity, int64, error) {
	var activities []models.Activity
	var total int64

	query := conn(ctx, r.db).Model(&models.Activity{}).Where("user_id = ?", userID)
	if state != "" {
		query = query.Where("state = ?", state)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("due_date ASC, created_at ASC").Limit(limit).Offset(offset).Find(&activities).Error
	return activities, total, err
}

// Update updates an activity
func (r *ActivityRepository) Update(ctx context.Context, activity *models.Activity) error {
	return conn(ctx, r.db).Omit(clause.Associations).Save(activity).Error
}
