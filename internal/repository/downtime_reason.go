package repository

import (
	"context"

	"github.com/Top-Technologies/downtime/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DowntimeReasonRepository handles database operations for the downtime reason catalog
type DowntimeReasonRepository struct {
	db *gorm.DB
}

var _ DowntimeReasonRepositoryInterface = (*DowntimeReasonRepository)(nil)

// NewDowntimeReasonRepository creates a new downtime reason repository
func NewDowntimeReasonRepository(db *gorm.DB) *DowntimeReasonRepository {
	return &DowntimeReasonRepository{db: db}
}

// Create creates a new reason and links its responsible users
func (r *DowntimeReasonRepository) Create(ctx context.Context, reason *models.DowntimeReason) error {
	return conn(ctx, r.db).Omit("Department", "ResponsibleUsers.*").Create(reason).Error
}

// GetByID retrieves a reason with its department and responsible users
func (r *DowntimeReasonRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.DowntimeReason, error) {
	var reason models.DowntimeReason
	err := conn(ctx, r.db).
		Preload("Department").
		Preload("ResponsibleUsers", func(db *gorm.DB) *gorm.DB { return db.Order("users.name ASC") }).
		First(&reason, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &reason, nil
}

// List retrieves reasons ordered by name
func (r *DowntimeReasonRepository) List(ctx context.Context, filter DowntimeReasonFilter) ([]models.DowntimeReason, int64, error) {
	var reasons []models.DowntimeReason
	var total int64

	query := conn(ctx, r.db).Model(&models.DowntimeReason{})
	if filter.Active != nil {
		query = query.Where("active = ?", *filter.Active)
	}
	if filter.DepartmentID != nil {
		query = query.Where("department_id = ?", *filter.DepartmentID)
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = query.Preload("Department").Preload("ResponsibleUsers").Order("name ASC")
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit).Offset(filter.Offset)
	}
	err := query.Find(&reasons).Error
	return reasons, total, err
}

// Update saves the reason columns and replaces its responsible users
func (r *DowntimeReasonRepository) Update(ctx context.Context, reason *models.DowntimeReason) error {
	return conn(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Department", "ResponsibleUsers").Save(reason).Error; err != nil {
			return err
		}
		return tx.Model(reason).Association("ResponsibleUsers").Replace(reason.ResponsibleUsers)
	})
}
