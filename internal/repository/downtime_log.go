package repository

import (
	"context"

	"github.com/Top-Technologies/downtime/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DowntimeLogRepository handles database operations for downtime logs
type DowntimeLogRepository struct {
	db *gorm.DB
}

var _ DowntimeLogRepositoryInterface = (*DowntimeLogRepository)(nil)

// NewDowntimeLogRepository creates a new downtime log repository
func NewDowntimeLogRepository(db *gorm.DB) *DowntimeLogRepository {
	return &DowntimeLogRepository{db: db}
}

func withDetails(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Reason").
		Preload("Reason.Department").
		Preload("Reason.ResponsibleUsers").
		Preload("ReportedBy").
		Preload("ProductionOrder")
}

// Create inserts a downtime log without touching related records
func (r *DowntimeLogRepository) Create(ctx context.Context, log *models.DowntimeLog) error {
	return conn(ctx, r.db).Omit(clause.Associations).Create(log).Error
}

// GetByID retrieves a downtime log with reason, reporter and order
func (r *DowntimeLogRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.DowntimeLog, error) {
	var log models.DowntimeLog
	err := withDetails(conn(ctx, r.db)).First(&log, "downtime_logs.id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &log, nil
}

// GetForUpdate loads a downtime log and locks its row until the surrounding transaction ends
func (r *DowntimeLogRepository) GetForUpdate(ctx context.Context, id uuid.UUID) (*models.DowntimeLog, error) {
	var log models.DowntimeLog
	err := withDetails(conn(ctx, r.db)).
		Clauses(clause.Locking{Strength: "UPDATE", Table: clause.Table{Name: clause.CurrentTable}}).
		First(&log, "downtime_logs.id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &log, nil
}

// GetByReference retrieves a downtime log by reference
func (r *DowntimeLogRepository) GetByReference(ctx context.Context, reference string) (*models.DowntimeLog, error) {
	var log models.DowntimeLog
	err := conn(ctx, r.db).First(&log, "reference = ?", reference).Error
	if err != nil {
		return nil, err
	}
	return &log, nil
}

// List retrieves downtime logs ordered by reference, newest first
func (r *DowntimeLogRepository) List(ctx context.Context, filter DowntimeLogFilter) ([]models.DowntimeLog, int64, error) {
	var logs []models.DowntimeLog
	var total int64

	query := conn(ctx, r.db).Model(&models.DowntimeLog{})
	if filter.State != "" {
		query = query.Where("downtime_logs.state = ?", filter.State)
	}
	if filter.ReasonID != nil {
		query = query.Where("downtime_logs.reason_id = ?", *filter.ReasonID)
	}
	if filter.ReportedByID != nil {
		query = query.Where("downtime_logs.reported_by_id = ?", *filter.ReportedByID)
	}
	if filter.ProductionOrderID != nil {
		query = query.Where("downtime_logs.production_order_id = ?", *filter.ProductionOrderID)
	}
	if filter.ResponsibleUserID != nil {
		query = query.Where(
			"downtime_logs.reason_id IN (SELECT downtime_reason_id FROM downtime_reason_responsible_users WHERE user_id = ?)",
			*filter.ResponsibleUserID,
		)
	}
	if filter.From != nil {
		query = query.Where("downtime_logs.start_time >= ?", *filter.From)
	}
	if filter.To != nil {
		query = query.Where("downtime_logs.start_time < ?", *filter.To)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = withDetails(query).Order("downtime_logs.reference DESC")
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit).Offset(filter.Offset)
	}
	err := query.Find(&logs).Error
	return logs, total, err
}

// Update saves the downtime log columns
func (r *DowntimeLogRepository) Update(ctx context.Context, log *models.DowntimeLog) error {
	return conn(ctx, r.db).Omit(clause.Associations).Save(log).Error
}
